package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/matzehuels/holomap/pkg/errors"
	"github.com/matzehuels/holomap/pkg/layout"
)

func noEnv(string) (string, bool) { return "", false }

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	got, want := cfg.LayoutConfig(), layout.DefaultConfig()
	assert.InDelta(t, want.Arc, got.Arc, 1e-12)
	got.Arc = want.Arc
	assert.Equal(t, want, got)
}

func TestDefaultArcRoundTrip(t *testing.T) {
	assert.InDelta(t, 45.0, Default().Layout.ArcDegrees, 1e-9)
	assert.InDelta(t, math.Pi/4, Default().LayoutConfig().Arc, 1e-12)
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	cfg, err := Load(Options{DotEnv: filepath.Join(t.TempDir(), ".env"), LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, Default().API, cfg.API)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(Options{Path: filepath.Join(t.TempDir(), "nope.toml"), LookupEnv: noEnv})
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[api]
base_url = "http://localhost:9000"
timeout = "3s"
max_pages = 5

[cache]
backend = "none"

[layout]
film_radius = 200.0
starship_radius = 500.0
arc_degrees = 90.0
starship_scope = "global"

[server]
addr = "127.0.0.1:9999"
`)
	cfg, err := Load(Options{Path: path, DotEnv: filepath.Join(dir, ".env"), LookupEnv: noEnv})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.API.MaxPages)
	assert.Equal(t, Default().API.RateLimit, cfg.API.RateLimit, "unset keys keep defaults")
	assert.Equal(t, CacheNone, cfg.Cache.Backend)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)

	lc := cfg.LayoutConfig()
	assert.Equal(t, 200.0, lc.FilmRadius)
	assert.Equal(t, 500.0, lc.StarshipRadius)
	assert.InDelta(t, math.Pi/2, lc.Arc, 1e-12)
	assert.Equal(t, layout.ScopeGlobal, lc.StarshipScope)
}

func TestLoadUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[api]\nbase_uri = \"http://x\"\n")

	_, err := Load(Options{Path: path, DotEnv: filepath.Join(dir, ".env"), LookupEnv: noEnv})
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidConfig))
	assert.Contains(t, err.Error(), "api.base_uri")
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", "[api\n")

	_, err := Load(Options{Path: path, DotEnv: filepath.Join(dir, ".env"), LookupEnv: noEnv})
	require.Error(t, err)
	assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidConfig))
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[api]
base_url = "http://from-file"
rate_limit = 1.0
max_pages = 7
`)
	dotenv := writeFile(t, dir, ".env", `
HOLOMAP_API_RATE_LIMIT=2.5
HOLOMAP_API_MAX_PAGES=8
`)
	env := envMap(map[string]string{
		"HOLOMAP_API_MAX_PAGES": "9",
		"HOLOMAP_SERVER_ADDR":   ":7000",
	})

	cfg, err := Load(Options{Path: path, DotEnv: dotenv, LookupEnv: env})
	require.NoError(t, err)

	assert.Equal(t, "http://from-file", cfg.API.BaseURL, "file overrides default")
	assert.Equal(t, 2.5, cfg.API.RateLimit, ".env overrides file")
	assert.Equal(t, 9, cfg.API.MaxPages, "environment overrides .env")
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoadBadEnvValue(t *testing.T) {
	env := envMap(map[string]string{"HOLOMAP_API_TIMEOUT": "soon"})
	_, err := Load(Options{Path: writeFile(t, t.TempDir(), "c.toml", ""), DotEnv: "/nonexistent/.env", LookupEnv: env})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOLOMAP_API_TIMEOUT")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }, true},
		{"non-http base url", func(c *Config) { c.API.BaseURL = "ftp://example.com" }, true},
		{"zero timeout", func(c *Config) { c.API.Timeout = 0 }, true},
		{"zero max pages", func(c *Config) { c.API.MaxPages = 0 }, true},
		{"unknown backend", func(c *Config) { c.Cache.Backend = "memcached" }, true},
		{"redis without url", func(c *Config) { c.Cache.Backend = CacheRedis }, true},
		{"redis with url", func(c *Config) {
			c.Cache.Backend = CacheRedis
			c.Cache.RedisURL = "redis://localhost:6379/0"
		}, false},
		{"space in base url", func(c *Config) { c.API.BaseURL = "https://swapi.dev/a pi" }, true},
		{"redis url with http scheme", func(c *Config) {
			c.Cache.Backend = CacheRedis
			c.Cache.RedisURL = "http://localhost:6379"
		}, true},
		{"redis url ignored for file backend", func(c *Config) { c.Cache.RedisURL = "not a url" }, false},
		{"empty addr", func(c *Config) { c.Server.Addr = "" }, true},
		{"rings too close", func(c *Config) { c.Layout.StarshipRadius = c.Layout.FilmRadius + 10 }, true},
		{"zero arc", func(c *Config) { c.Layout.ArcDegrees = 0 }, true},
		{"unknown scope", func(c *Config) { c.Layout.StarshipScope = "sideways" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, herrors.Is(err, herrors.ErrCodeInvalidConfig))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.toml")

	want := Default()
	want.Server.Addr = ":1234"
	want.Layout.StarshipScope = string(layout.ScopeGlobal)
	require.NoError(t, Write(want, path))

	got, err := Load(Options{Path: path, DotEnv: filepath.Join(dir, ".env"), LookupEnv: noEnv})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "holomap", "config.toml"), p)
}

func TestWriteReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}
	assert.Error(t, Write(Default(), "/dev/full"))
}
