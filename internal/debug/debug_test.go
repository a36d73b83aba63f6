package debug

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"0", false},
		{"nope", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Setenv("SDL_DEBUG_TEST", tt.value)
			require.Equal(t, tt.expected, boolEnv("SDL_DEBUG_TEST"))
		})
	}
}

func TestEnableInstallsLogger(t *testing.T) {
	restore(t)

	core, logs := observer.New(zap.DebugLevel)
	Enable(zap.New(core))
	require.True(t, Parse())
	require.True(t, Literal())

	Logger().Debugw("state", "from", "expectName", "to", "expectValue")
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "state", logs.All()[0].Message)

	SetLogger(nil)
	require.NotNil(t, Logger())
}

func TestEnableWhileReading(t *testing.T) {
	restore(t)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if Parse() || Literal() {
					Logger().Debugw("trace")
				}
			}
		}()
	}
	Enable(zap.NewNop())
	wg.Wait()
	require.True(t, Parse())
}

func restore(t *testing.T) {
	parse, literal, prev := Parse(), Literal(), Logger()
	t.Cleanup(func() {
		d.Parse.Store(parse)
		d.Literal.Store(literal)
		logger.Store(prev)
	})
}
