package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/KimNorgaard/go-sdl/errors"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "structural with line",
			err:      errors.NewStructural(3, "unexpected %q", "}"),
			expected: `sdl: structural error at line 3: unexpected "}"`,
		},
		{
			name:     "identifier without line",
			err:      errors.NewInvalidIdentifier("@foo", 0),
			expected: `sdl: invalid identifier: "@foo" is not a valid identifier`,
		},
		{
			name:     "missing attribute name",
			err:      errors.NewMissingName(2),
			expected: "sdl: invalid identifier at line 2: missing attribute name before '='",
		},
		{
			name:     "type",
			err:      errors.NewType("[]int", "no literal kind for Go type %s", "[]int"),
			expected: "sdl: type error: no literal kind for Go type []int",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("loading config: %w", errors.NewStructural(1, "missing '}'"))
	require.True(t, stderrors.Is(err, errors.ErrStructural))
	require.False(t, stderrors.Is(err, errors.ErrType))

	var e *errors.Error
	require.True(t, stderrors.As(err, &e))
	require.Equal(t, 1, e.Line)
}

func TestAtLine(t *testing.T) {
	err := errors.AtLine(errors.NewInvalidIdentifier("1abc", 0), 7)
	require.EqualError(t, err, `sdl: invalid identifier at line 7: "1abc" is not a valid identifier`)

	positioned := errors.NewStructural(2, "x")
	require.Same(t, positioned, errors.AtLine(positioned, 9))

	plain := stderrors.New("plain")
	require.Same(t, plain, errors.AtLine(plain, 9))
}
