package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/holomap/pkg/cache"
	"github.com/matzehuels/holomap/pkg/config"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached responses, graphs and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			backend, err := newCache(cmd.Context(), cfg.Cache, false)
			if err != nil {
				return err
			}
			defer backend.Close()

			clearer, ok := backend.(cache.Clearer)
			if !ok {
				c.ui().info("Cache is disabled")
				return nil
			}
			count, err := clearer.Clear(cmd.Context())
			if err != nil {
				return fmt.Errorf("clear cache: %w", err)
			}

			c.ui().success("Cleared %d cached entries", count)
			c.ui().detail("Backend: %s", cacheLocation(cfg.Cache))
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache location",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.config()
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout(), cacheLocation(cfg.Cache))
			return nil
		},
	}
}

// cacheLocation describes where cfg stores entries.
func cacheLocation(cfg config.CacheConfig) string {
	switch cfg.Backend {
	case config.CacheRedis:
		return cfg.RedisURL
	case config.CacheNone:
		return "none"
	default:
		return cfg.Dir
	}
}
