// Package render converts positioned character graphs into output formats.
//
// # Formats
//
//   - json: the graph's canonical JSON form (see [graph.MarshalGraph])
//   - yaml: the same document as YAML
//   - dot: Graphviz source with nodes pinned to their layout positions
//   - svg: the DOT source rendered in-process by Graphviz
//
// Use [Render] for one format or [RenderAll] for several:
//
//	artifacts, err := render.RenderAll(ctx, g, []string{"json", "svg"}, render.Options{})
//	os.WriteFile("luke.svg", artifacts["svg"], 0644)
//
// The node-link drawing itself lives in the [nodelink] subpackage.
//
// [graph.MarshalGraph]: github.com/matzehuels/holomap/pkg/graph.MarshalGraph
// [nodelink]: github.com/matzehuels/holomap/pkg/render/nodelink
package render
