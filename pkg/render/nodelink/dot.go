package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/holomap/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds node attributes (gender, height, mass, model) to labels.
	// When false, only the entity name is shown.
	Detailed bool
}

// nodeStyle is the per-type appearance of a node. Sizes are diameters in
// inches, the unit Graphviz uses for node geometry.
type nodeStyle struct {
	size      float64
	fill      string
	fontcolor string
}

var styles = map[graph.NodeType]nodeStyle{
	graph.NodeCharacter: {size: 2.2, fill: "#ffe81f", fontcolor: "black"},
	graph.NodeFilm:      {size: 1.8, fill: "#1f3b73", fontcolor: "white"},
	graph.NodeStarship:  {size: 1.5, fill: "#4a4a4a", fontcolor: "white"},
}

// ToDOT converts a positioned graph to Graphviz DOT format.
//
// Every node is pinned to its layout position (pos="x,y!" in points), so the
// neato engine used by [RenderSVG] reproduces the radial layout instead of
// computing its own. The y axis is flipped because Graphviz y grows upward.
//
// Placeholder nodes are drawn with dashed outlines.
func ToDOT(g graph.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  overlap=true;\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fixedsize=true, style=filled, fontsize=14, fontname=\"Helvetica\"];\n")
	buf.WriteString("  edge [color=\"#888888\", arrowsize=0.6];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(fmtAttrs(n, opts.Detailed), ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		style := "solid"
		if e.Type == graph.EdgeFilmStarship {
			style = "dashed"
		}
		fmt.Fprintf(&buf, "  %q -> %q [style=%s];\n", e.Source, e.Target, style)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n graph.Node, detailed bool) string {
	if !detailed || len(n.Data.Attributes) == 0 {
		return n.Data.Label
	}

	parts := []string{n.Data.Label}
	for _, k := range slices.Sorted(maps.Keys(n.Data.Attributes)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, n.Data.Attributes[k]))
	}
	return strings.Join(parts, "\n")
}

func fmtAttrs(n graph.Node, detailed bool) []string {
	s, ok := styles[n.Type]
	if !ok {
		s = styles[graph.NodeStarship]
	}
	size := strconv.FormatFloat(s.size, 'f', -1, 64)
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, detailed)),
		fmt.Sprintf("pos=\"%s,%s!\"", fmtCoord(n.Position.X), fmtCoord(-n.Position.Y)),
		"width=" + size,
		"height=" + size,
		fmt.Sprintf("fillcolor=%q", s.fill),
		fmt.Sprintf("fontcolor=%q", s.fontcolor),
	}
	if url := graph.ImageURL(n.Data.ImageKey); url != "" {
		attrs = append(attrs, fmt.Sprintf("tooltip=%q", url))
	}
	if n.Data.Placeholder {
		attrs = append(attrs, "style=\"filled,dashed\"")
	}
	return attrs
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// RenderSVG renders a DOT graph to SVG using the Graphviz neato engine.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
