package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/holomap/pkg/graph"
	"github.com/matzehuels/holomap/pkg/pipeline"
)

func TestPrinterSummary(t *testing.T) {
	res := &pipeline.Result{
		Graph: graph.Graph{Nodes: []graph.Node{
			{ID: "character-1", Type: graph.NodeCharacter},
			{ID: "film-1", Type: graph.NodeFilm},
			{ID: "film-1-starship-12", Type: graph.NodeStarship},
		}},
		Warnings: []string{"starship catalog unavailable"},
		Stats:    pipeline.Stats{NodeCount: 3, EdgeCount: 2, Placeholders: 1},
	}

	tests := []struct {
		name string
		info pipeline.CacheInfo
		want string
	}{
		{"fresh", pipeline.CacheInfo{}, "fresh"},
		{"graph hit", pipeline.CacheInfo{GraphHit: true}, "cached graph"},
		{"full hit", pipeline.CacheInfo{GraphHit: true, RenderHit: true}, "cached"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b strings.Builder
			res.CacheInfo = tt.info
			printer{w: &b}.summary("Luke Skywalker", res)

			got := b.String()
			for _, want := range []string{"Luke Skywalker", "1 film ·", "1 starship", "2 edges", tt.want,
				"starship catalog unavailable", "1 placeholder node missing"} {
				if !strings.Contains(got, want) {
					t.Errorf("summary missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestPrinterPageFooter(t *testing.T) {
	var b strings.Builder
	printer{w: &b}.pageFooter(2, true)
	if got := b.String(); !strings.Contains(got, "Page 2") || !strings.Contains(got, "characters --page 3") {
		t.Errorf("footer = %q", got)
	}

	b.Reset()
	printer{w: &b}.pageFooter(9, false)
	if strings.Contains(b.String(), "--page") {
		t.Errorf("last page footer offers a next page: %q", b.String())
	}
}
