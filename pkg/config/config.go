// Package config loads holomap settings.
//
// Sources are applied in order, later ones winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file, by default $XDG_CONFIG_HOME/holomap/config.toml
//  3. a .env file in the working directory
//  4. HOLOMAP_* environment variables
//
// Command-line flags are applied by the CLI on top of the loaded value.
// The result is validated before it is returned.
//
// Example config.toml:
//
//	[api]
//	base_url = "https://sw-api.starnavi.io"
//	timeout = "10s"
//	rate_limit = 10.0
//	max_pages = 100
//
//	[cache]
//	backend = "redis"
//	ttl = "24h"
//	redis_url = "redis://localhost:6379/0"
//
//	[layout]
//	film_radius = 350.0
//	starship_radius = 800.0
//	arc_degrees = 45.0
//	starship_scope = "per-film"
//
//	[server]
//	addr = ":8080"
package config

import (
	"math"
	"time"

	"github.com/matzehuels/holomap/pkg/integrations"
	"github.com/matzehuels/holomap/pkg/integrations/swapi"
	"github.com/matzehuels/holomap/pkg/layout"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Config is the complete holomap configuration.
type Config struct {
	API    APIConfig    `toml:"api"`
	Cache  CacheConfig  `toml:"cache"`
	Layout LayoutConfig `toml:"layout"`
	Server ServerConfig `toml:"server"`
}

// APIConfig selects and tunes the data provider.
type APIConfig struct {
	BaseURL   string        `toml:"base_url" validate:"required,http_url"`
	Timeout   time.Duration `toml:"timeout" validate:"gt=0"`
	RateLimit float64       `toml:"rate_limit" validate:"gte=0"`
	MaxPages  int           `toml:"max_pages" validate:"gte=1,lte=1000"`
	Retries   int           `toml:"retries" validate:"gte=1,lte=10"`
}

// CacheConfig selects the response cache backend.
type CacheConfig struct {
	Backend  string        `toml:"backend" validate:"oneof=file redis none"`
	Dir      string        `toml:"dir"`
	TTL      time.Duration `toml:"ttl" validate:"gte=0"`
	RedisURL string        `toml:"redis_url" validate:"required_if=Backend redis"`
}

// LayoutConfig is the radial layout geometry. Unlike [layout.Config] the
// arc is given in degrees.
type LayoutConfig struct {
	CenterX        float64 `toml:"center_x"`
	CenterY        float64 `toml:"center_y"`
	FilmRadius     float64 `toml:"film_radius"`
	StarshipRadius float64 `toml:"starship_radius"`
	ArcDegrees     float64 `toml:"arc_degrees"`
	NodeRadius     float64 `toml:"node_radius"`
	StarshipScope  string  `toml:"starship_scope"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr string `toml:"addr" validate:"required"`
}

// Default returns the built-in configuration.
func Default() Config {
	l := layout.DefaultConfig()
	return Config{
		API: APIConfig{
			BaseURL:   swapi.DefaultBaseURL,
			Timeout:   integrations.DefaultTimeout,
			RateLimit: integrations.DefaultRateLimit,
			MaxPages:  swapi.DefaultMaxPages,
			Retries:   integrations.DefaultRetries,
		},
		Cache: CacheConfig{
			Backend: CacheFile,
			TTL:     24 * time.Hour,
		},
		Layout: LayoutConfig{
			CenterX:        l.CenterX,
			CenterY:        l.CenterY,
			FilmRadius:     l.FilmRadius,
			StarshipRadius: l.StarshipRadius,
			ArcDegrees:     l.Arc * 180 / math.Pi,
			NodeRadius:     l.NodeRadius,
			StarshipScope:  string(l.StarshipScope),
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// LayoutConfig converts the layout section to the generator's config.
func (c Config) LayoutConfig() layout.Config {
	return layout.Config{
		CenterX:        c.Layout.CenterX,
		CenterY:        c.Layout.CenterY,
		FilmRadius:     c.Layout.FilmRadius,
		StarshipRadius: c.Layout.StarshipRadius,
		Arc:            c.Layout.ArcDegrees * math.Pi / 180,
		NodeRadius:     c.Layout.NodeRadius,
		StarshipScope:  layout.StarshipScope(c.Layout.StarshipScope),
	}
}
