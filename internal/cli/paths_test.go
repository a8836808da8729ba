package cli

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir == "" {
		t.Fatal("cacheDir() returned empty string")
	}
	if !strings.HasSuffix(dir, appName) {
		t.Errorf("cacheDir() = %q, should end with %q", dir, appName)
	}
	if !strings.Contains(dir, ".cache") {
		t.Errorf("cacheDir() = %q, should contain '.cache'", dir)
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	custom := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", custom)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join(custom, appName) {
		t.Errorf("cacheDir() = %q, want %q", dir, filepath.Join(custom, appName))
	}
}
