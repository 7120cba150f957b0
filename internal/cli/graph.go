package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	herrors "github.com/matzehuels/holomap/pkg/errors"
	"github.com/matzehuels/holomap/pkg/layout"
	"github.com/matzehuels/holomap/pkg/pipeline"
)

// graphOpts holds the command-line flags for the graph command.
// Layout flags left at zero keep the configured value.
type graphOpts struct {
	output         string   // output file (single format) or base path
	formats        []string // output formats: json, yaml, dot, svg
	detailed       bool     // node attributes in DOT/SVG labels
	refresh        bool     // bypass cached responses
	noCache        bool     // disable caching entirely
	scope          string   // starship scope: per-film or global
	filmRadius     float64  // inner ring radius
	starshipRadius float64  // outer ring radius
	arcDegrees     float64  // starship fan width
}

// graphCommand creates the graph command, which fetches a character and
// writes its radial graph.
func (c *CLI) graphCommand() *cobra.Command {
	var formatsStr string
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "graph <character-id>",
		Short: "Fetch a character and write its radial graph",
		Example: `  holomap graph 1
  holomap graph 1 -f json,svg -o out/luke
  holomap graph 4 -f dot -o - | neato -n -Tpng > vader.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := herrors.ParseCharacterID(args[0])
			if err != nil {
				return err
			}
			opts.formats = parseFormats(formatsStr)
			ctx := cmd.Context()
			runner, cfg, err := c.newRunner(ctx, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()
			return c.runGraph(ctx, runner, cfg.LayoutConfig(), id, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, yaml, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node attributes in DOT and SVG labels")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached responses")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&opts.scope, "scope", "", "starship scope: per-film (default) or global")
	cmd.Flags().Float64Var(&opts.filmRadius, "film-radius", 0, "film ring radius")
	cmd.Flags().Float64Var(&opts.starshipRadius, "starship-radius", 0, "starship ring radius")
	cmd.Flags().Float64Var(&opts.arcDegrees, "arc", 0, "starship fan width in degrees")

	return cmd
}

// runGraph runs the pipeline for one character on runner and writes the
// artifacts. base is the configured layout before flag overrides.
func (c *CLI) runGraph(ctx context.Context, runner *pipeline.Runner, base layout.Config, id int, opts graphOpts) error {
	logger := loggerFromContext(ctx)

	spin := startSpinner(ctx, c.stderr(), fmt.Sprintf("Fetching character %d...", id))
	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		CharacterID: id,
		Refresh:     opts.refresh,
		Layout:      applyLayoutFlags(base, opts),
		Formats:     opts.formats,
		Detailed:    opts.detailed,
	})
	spin.Stop()
	if err != nil {
		if spin.Interrupted() {
			logger.Warn("interrupted while fetching", "character", id)
		}
		return err
	}

	name := result.Graph.Nodes[0].Data.Label
	prog.done("Generated graph for " + name)
	// stdout carries the artifact itself; the logger has already reported warnings.
	if opts.output != "-" {
		c.ui().summary(name, result)
	}

	return writeArtifacts(c.stdout(), result.Artifacts, opts.formats, opts.output, fmt.Sprintf("character-%d", id))
}

// applyLayoutFlags overrides lc with the layout flags that were set.
func applyLayoutFlags(lc layout.Config, opts graphOpts) layout.Config {
	if opts.scope != "" {
		lc.StarshipScope = layout.StarshipScope(opts.scope)
	}
	if opts.filmRadius > 0 {
		lc.FilmRadius = opts.filmRadius
	}
	if opts.starshipRadius > 0 {
		lc.StarshipRadius = opts.starshipRadius
	}
	if opts.arcDegrees > 0 {
		lc.Arc = opts.arcDegrees * math.Pi / 180
	}
	return lc
}
