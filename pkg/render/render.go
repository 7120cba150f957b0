package render

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	herrors "github.com/matzehuels/holomap/pkg/errors"
	"github.com/matzehuels/holomap/pkg/graph"
	"github.com/matzehuels/holomap/pkg/observability"
	"github.com/matzehuels/holomap/pkg/render/nodelink"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists every supported output format.
var Formats = []string{FormatJSON, FormatYAML, FormatDOT, FormatSVG}

// Options configures rendering.
type Options struct {
	// Detailed adds node attributes to DOT and SVG labels.
	Detailed bool
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := herrors.ValidateFormat(f, Formats); err != nil {
			return err
		}
	}
	return nil
}

// Render encodes g in a single format.
func Render(ctx context.Context, g graph.Graph, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatJSON:
		return graph.MarshalGraph(g)
	case FormatYAML:
		return yaml.Marshal(g)
	case FormatDOT:
		return []byte(nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed})), nil
	case FormatSVG:
		return nodelink.RenderSVG(ctx, nodelink.ToDOT(g, nodelink.Options{Detailed: opts.Detailed}))
	default:
		return nil, herrors.ValidateFormat(format, Formats)
	}
}

// RenderAll encodes g in every requested format. Duplicate formats are
// rendered once. The first failure aborts the run.
func RenderAll(ctx context.Context, g graph.Graph, formats []string, opts Options) (map[string][]byte, error) {
	if err := ValidateFormats(formats); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, formats)
	start := time.Now()

	out := make(map[string][]byte, len(formats))
	var err error
	for _, f := range formats {
		if _, done := out[f]; done {
			continue
		}
		var data []byte
		if data, err = Render(ctx, g, f, opts); err != nil {
			err = fmt.Errorf("render %s: %w", f, err)
			break
		}
		out[f] = data
	}

	hooks.OnRenderComplete(ctx, formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ContentType returns the MIME type served for format.
func ContentType(format string) string {
	switch format {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatDOT:
		return "text/vnd.graphviz"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
