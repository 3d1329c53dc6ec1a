package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// LoadFixture reads an HTML fixture file for the given portal package.
func LoadFixture(t *testing.T, portalCode, name string) string {
	t.Helper()

	// Resolve relative to this file so tests can run from any directory.
	_, filename, _, _ := runtime.Caller(0)
	baseDir := filepath.Dir(filepath.Dir(filename)) // up to automator/

	path := filepath.Join(baseDir, "portal", portalCode, "testdata", "fixtures", name+".html")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to load fixture %s/%s: %v", portalCode, name, err)
	}

	return string(data)
}
