package sdl

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.sdl")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var actual []byte
			root, err := Parse(src)
			if err != nil {
				// Documents that fail to parse keep the error message in
				// their golden file.
				actual = []byte(err.Error())
			} else {
				actual, err = Marshal(root)
				require.NoError(t, err)
			}

			goldenFile := strings.TrimSuffix(file, ".sdl") + ".golden"
			if *update {
				err := os.WriteFile(goldenFile, actual, 0o644)
				require.NoError(t, err)
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")
			require.Equal(t, string(expected), string(actual), "Output does not match golden file.")

			if root != nil {
				again, err := Parse(actual)
				require.NoError(t, err)
				require.Equal(t, string(actual), string(mustMarshal(t, again)), "Encoding is not stable.")
			}
		})
	}
}

func mustMarshal(t *testing.T, v any, opts ...Option) []byte {
	t.Helper()
	out, err := Marshal(v, opts...)
	require.NoError(t, err)
	return out
}
