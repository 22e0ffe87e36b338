package cli

import (
	"os"
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

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}

	expected := filepath.Join(home, ".cache", appName)
	if dir != expected {
		t.Errorf("cacheDir() = %q, want %q", dir, expected)
	}
}

func TestCacheDirXDG(t *testing.T) {
	customCache := filepath.Join(t.TempDir(), "custom-cache")
	t.Setenv("XDG_CACHE_HOME", customCache)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	expected := filepath.Join(customCache, appName)
	if dir != expected {
		t.Errorf("cacheDir() with XDG_CACHE_HOME = %q, want %q", dir, expected)
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input, format, want string
	}{
		{"graph.json", "svg", "graph.svg"},
		{"graphs/k5.yaml", "png", "graphs/k5.png"},
		{"noext", "svg", "noext.svg"},
		{"dir.v1/g.g6", "dot", "dir.v1/g.dot"},
	}
	for _, tt := range tests {
		if got := outputPath(tt.input, tt.format); got != tt.want {
			t.Errorf("outputPath(%q, %q) = %q, want %q", tt.input, tt.format, got, tt.want)
		}
	}
}
