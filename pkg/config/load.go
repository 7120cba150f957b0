package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	herrors "github.com/matzehuels/holomap/pkg/errors"
)

// EnvPrefix prefixes every environment variable read by [Load].
const EnvPrefix = "HOLOMAP_"

// DefaultDotEnv is the .env file read from the working directory.
const DefaultDotEnv = ".env"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Options controls where Load reads from.
type Options struct {
	// Path is the TOML file. Empty selects DefaultPath, which may be absent.
	// An explicit path must exist.
	Path string
	// DotEnv is the .env file. Empty selects DefaultDotEnv. A missing file
	// is skipped.
	DotEnv string
	// LookupEnv reads environment variables. Nil selects os.LookupEnv.
	LookupEnv func(string) (string, bool)
}

// DefaultPath returns $XDG_CONFIG_HOME/holomap/config.toml, falling back to
// ~/.config/holomap/config.toml.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "holomap", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "holomap", "config.toml"), nil
}

// Load builds the configuration from defaults, the TOML file, the .env file
// and the environment, then validates it.
func Load(opts Options) (Config, error) {
	cfg := Default()

	path, explicit := opts.Path, opts.Path != ""
	if !explicit {
		path, _ = DefaultPath()
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return Config{}, err
			}
		}
	}

	lookup := opts.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	dotenv := opts.DotEnv
	if dotenv == "" {
		dotenv = DefaultDotEnv
	}
	vars, err := godotenv.Read(dotenv)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "read %s", dotenv)
	}
	env := func(key string) (string, bool) {
		if v, ok := lookup(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}
	if err := applyEnv(&cfg, env); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return herrors.New(herrors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// envBinding maps one environment variable onto a config field.
type envBinding struct {
	name string
	set  func(*Config, string) error
}

var envBindings = []envBinding{
	{"API_BASE_URL", func(c *Config, v string) error { c.API.BaseURL = v; return nil }},
	{"API_TIMEOUT", func(c *Config, v string) error { return setDuration(&c.API.Timeout, v) }},
	{"API_RATE_LIMIT", func(c *Config, v string) error { return setFloat(&c.API.RateLimit, v) }},
	{"API_MAX_PAGES", func(c *Config, v string) error { return setInt(&c.API.MaxPages, v) }},
	{"API_RETRIES", func(c *Config, v string) error { return setInt(&c.API.Retries, v) }},
	{"CACHE_BACKEND", func(c *Config, v string) error { c.Cache.Backend = v; return nil }},
	{"CACHE_DIR", func(c *Config, v string) error { c.Cache.Dir = v; return nil }},
	{"CACHE_TTL", func(c *Config, v string) error { return setDuration(&c.Cache.TTL, v) }},
	{"REDIS_URL", func(c *Config, v string) error { c.Cache.RedisURL = v; return nil }},
	{"LAYOUT_FILM_RADIUS", func(c *Config, v string) error { return setFloat(&c.Layout.FilmRadius, v) }},
	{"LAYOUT_STARSHIP_RADIUS", func(c *Config, v string) error { return setFloat(&c.Layout.StarshipRadius, v) }},
	{"LAYOUT_ARC_DEGREES", func(c *Config, v string) error { return setFloat(&c.Layout.ArcDegrees, v) }},
	{"LAYOUT_STARSHIP_SCOPE", func(c *Config, v string) error { c.Layout.StarshipScope = v; return nil }},
	{"SERVER_ADDR", func(c *Config, v string) error { c.Server.Addr = v; return nil }},
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	for _, b := range envBindings {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok || v == "" {
			continue
		}
		if err := b.set(cfg, v); err != nil {
			return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "%s%s", EnvPrefix, b.name)
		}
	}
	return nil
}

func setDuration(dst *time.Duration, v string) error {
	d, err := time.ParseDuration(v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}

func setFloat(dst *float64, v string) error {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

func setInt(dst *int, v string) error {
	n, err := strconv.Atoi(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

// Validate checks every section, including the layout geometry.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "invalid configuration")
	}
	if err := herrors.ValidateURL(c.API.BaseURL); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "invalid api.base_url")
	}
	if c.Cache.Backend == CacheRedis {
		if err := herrors.ValidateURL(c.Cache.RedisURL, "redis", "rediss", "unix"); err != nil {
			return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "invalid cache.redis_url")
		}
	}
	if err := c.LayoutConfig().Validate(); err != nil {
		return herrors.Wrap(herrors.ErrCodeInvalidConfig, err, "invalid [layout] section")
	}
	return nil
}

// Write encodes cfg as TOML to path, creating parent directories.
func Write(cfg Config, path string) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
