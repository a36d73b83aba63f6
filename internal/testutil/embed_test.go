package testutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-sdl/internal/testutil"
	"github.com/KimNorgaard/go-sdl/parser"
)

func TestFixturesParse(t *testing.T) {
	names, err := testutil.Names()
	require.NoError(t, err)
	require.Contains(t, names, "catalog.sdl")
	require.Contains(t, names, "large.sdl")

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			_, err := parser.Parse(testutil.MustReadTestData(t, name))
			require.NoError(t, err)
		})
	}
}

func TestReadMissing(t *testing.T) {
	_, err := testutil.ReadTestData("nope.sdl")
	require.ErrorContains(t, err, "nope.sdl")
}
