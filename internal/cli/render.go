package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/holomap/pkg/graph"
	"github.com/matzehuels/holomap/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file path (or base path for multiple outputs)
	formats  []string // output formats: "json", "yaml", "dot", "svg"
	detailed bool     // show node attributes in DOT and SVG labels
}

// renderCommand creates the render command, which re-renders a graph saved
// with "holomap graph -f json" without contacting SWAPI.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a saved graph JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := render.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple) or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, yaml, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node attributes in DOT and SVG labels")

	return cmd
}

// runRender loads the graph from input, checks it and renders it to the
// requested formats. Output paths default to the input name.
func runRender(ctx context.Context, input string, opts renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Rendering %s", input)

	g, err := graph.ReadGraphFile(input)
	if err != nil {
		return err
	}
	if err := g.Validate(); err != nil {
		return err
	}
	logger.Infof("Loaded graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	prog := newProgress(logger)
	artifacts, err := render.RenderAll(ctx, g, opts.formats, render.Options{Detailed: opts.detailed})
	if err != nil {
		return err
	}
	prog.done("Rendered " + input)

	for _, f := range opts.formats {
		if opts.output != "-" && basePath(opts.output, input)+"."+f == input {
			return fmt.Errorf("output %s would overwrite the input, pass --output", input)
		}
	}
	return writeArtifacts(os.Stdout, artifacts, opts.formats, opts.output, input)
}
