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
	if !strings.HasSuffix(dir, filepath.Join(".cache", appName)) {
		t.Errorf("cacheDir() = %q, want suffix .cache/%s", dir, appName)
	}
}

func TestCacheDirXDG(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if want := filepath.Join(xdg, appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCLIConfig(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOLOMAP_CACHE_BACKEND", "none")

	c := New(&strings.Builder{}, LogInfo)
	cfg, err := c.config()
	if err != nil {
		t.Fatalf("config() error: %v", err)
	}
	if cfg.Cache.Backend != "none" {
		t.Errorf("Cache.Backend = %q, want none", cfg.Cache.Backend)
	}
	if want := filepath.Join(xdg, appName); cfg.Cache.Dir != want {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, want)
	}
	if cacheLocation(cfg.Cache) != "none" {
		t.Errorf("cacheLocation = %q", cacheLocation(cfg.Cache))
	}
}
