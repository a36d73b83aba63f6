// Package testutil provides SDL fixtures shared by the tests of several
// packages.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"testing"
)

// TestdataFS holds the embedded fixture documents.
//
//go:embed testdata
var TestdataFS embed.FS

// ReadTestData returns the content of an embedded fixture.
func ReadTestData(name string) ([]byte, error) {
	data, err := fs.ReadFile(TestdataFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read test data file '%s': %w", name, err)
	}
	return data, nil
}

// MustReadTestData is ReadTestData for tests; it fails tb on error.
func MustReadTestData(tb testing.TB, name string) []byte {
	tb.Helper()
	data, err := ReadTestData(name)
	if err != nil {
		tb.Fatal(err)
	}
	return data
}

// Names lists the embedded SDL fixtures.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(TestdataFS, "testdata")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".sdl") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}
