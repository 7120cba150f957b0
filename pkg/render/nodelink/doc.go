// Package nodelink renders positioned graphs as node-link diagrams.
//
// # Overview
//
// This package produces SVG diagrams with Graphviz: circles for characters,
// films and starships connected by arrows. Unlike a regular Graphviz layout,
// positions are not computed here. Every node is pinned to the coordinate
// the layout package assigned it.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Detailed: When true, node labels include gender, height and mass for
//     characters and model for starships
//
// # DOT Format
//
// The [ToDOT] function produces Graphviz DOT source that can be:
//
//   - Rendered directly via [RenderSVG]
//   - Saved and processed with external Graphviz tools (neato -n)
//
// Node tooltips carry the entity's artwork URL.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
