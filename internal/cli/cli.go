package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/holomap/pkg/buildinfo"
	"github.com/matzehuels/holomap/pkg/cache"
	"github.com/matzehuels/holomap/pkg/config"
	"github.com/matzehuels/holomap/pkg/integrations"
	"github.com/matzehuels/holomap/pkg/integrations/swapi"
	"github.com/matzehuels/holomap/pkg/pipeline"
	"github.com/matzehuels/holomap/pkg/render"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "holomap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is the --config flag. Empty selects config.DefaultPath.
	ConfigPath string

	// Out receives status lines and artifacts written to "-". Nil means
	// os.Stdout.
	Out io.Writer

	// diag carries the spinner. It is the logger's writer.
	diag io.Writer

	cfg *config.Config
}

// New creates a CLI that logs and animates progress on w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), diag: w}
}

func (c *CLI) stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *CLI) stderr() io.Writer {
	if c.diag == nil {
		return os.Stderr
	}
	return c.diag
}

// ui returns the printer for human-facing status lines.
func (c *CLI) ui() printer {
	return printer{w: c.stdout()}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Holomap lays out Star Wars characters, films and starships as radial graphs",
		Long:         `Holomap fetches a character from SWAPI and places it at the center of a radial graph: its films on an inner ring, and the starships of each film fanned out on an outer ring.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (default $XDG_CONFIG_HOME/holomap/config.toml)")

	root.AddCommand(c.graphCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.charactersCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// config loads the configuration once per process.
func (c *CLI) config() (config.Config, error) {
	if c.cfg != nil {
		return *c.cfg, nil
	}
	cfg, err := config.Load(config.Options{Path: c.ConfigPath})
	if err != nil {
		return config.Config{}, err
	}
	if cfg.Cache.Dir == "" {
		if dir, err := cacheDir(); err == nil {
			cfg.Cache.Dir = dir
		}
	}
	c.cfg = &cfg
	c.Logger.Debug("loaded config", "backend", cfg.Cache.Backend, "api", cfg.API.BaseURL)
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, config.Config, error) {
	cfg, err := c.config()
	if err != nil {
		return nil, config.Config{}, err
	}
	backend, err := newCache(ctx, cfg.Cache, noCache)
	if err != nil {
		return nil, config.Config{}, err
	}
	keyer := newKeyer(cfg.API.BaseURL)
	provider := newProvider(cfg, backend, keyer)
	c.Logger.Debug("data source", "base_url", provider.BaseURL())
	return pipeline.NewRunner(provider, backend, keyer, c.Logger), cfg, nil
}

// newKeyer scopes cache keys to the SWAPI deployment at baseURL. The public
// API keeps the plain keys so existing caches stay warm.
func newKeyer(baseURL string) cache.Keyer {
	if strings.TrimRight(baseURL, "/") == strings.TrimRight(swapi.DefaultBaseURL, "/") {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, cache.SourceScope(baseURL))
}

func newCache(ctx context.Context, cfg config.CacheConfig, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	switch cfg.Backend {
	case config.CacheRedis:
		return cache.NewRedisCache(ctx, cfg.RedisURL)
	case config.CacheNone:
		return cache.NewNullCache(), nil
	default:
		if cfg.Dir == "" {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(cfg.Dir)
	}
}

func newProvider(cfg config.Config, backend cache.Cache, keyer cache.Keyer) *swapi.Client {
	return swapi.NewClient(backend, cfg.Cache.TTL,
		swapi.WithBaseURL(cfg.API.BaseURL),
		swapi.WithMaxPages(cfg.API.MaxPages),
		swapi.WithHTTPOptions(
			integrations.WithKeyer(keyer),
			integrations.WithHTTPClient(integrations.NewHTTPClient(cfg.API.Timeout)),
			integrations.WithRateLimit(cfg.API.RateLimit),
			integrations.WithRetry(cfg.API.Retries, integrations.DefaultRetryDelay),
		),
	)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/holomap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// Empty input selects SVG.
func parseFormats(s string) []string {
	if s == "" {
		return []string{render.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// basePath derives the base output path from output and a fallback name.
// A known format extension on output is stripped.
func basePath(output, fallback string) string {
	if output == "" {
		return strings.TrimSuffix(fallback, filepath.Ext(fallback))
	}
	ext := filepath.Ext(output)
	for _, f := range render.Formats {
		if ext == "."+f {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}

// writeArtifacts writes each artifact to base.<format> and lists the paths
// on w. A single artifact with output "-" is written to w instead.
func writeArtifacts(w io.Writer, artifacts map[string][]byte, formats []string, output, fallback string) error {
	if output == "-" {
		if len(artifacts) != 1 {
			return fmt.Errorf("stdout output needs exactly one format, got %d", len(artifacts))
		}
		for _, data := range artifacts {
			_, err := w.Write(data)
			return err
		}
	}

	base := basePath(output, fallback)
	if dir := filepath.Dir(base); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	written := map[string]bool{}
	for _, f := range formats {
		if written[f] {
			continue
		}
		path := base + "." + f
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		written[f] = true
		printer{w: w}.file(path)
	}
	return nil
}
