package cli

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/holomap/pkg/layout"
)

func TestRootCommandSubcommands(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"graph", "render", "characters", "browse", "serve", "cache", "config", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestExecuteVersion(t *testing.T) {
	if err := Execute(context.Background(), []string{"--version"}); err != nil {
		t.Fatalf("Execute(--version) error: %v", err)
	}
}

func TestExecuteRejectsBadCharacterID(t *testing.T) {
	err := Execute(context.Background(), []string{"graph", "luke"})
	if err == nil || !strings.Contains(err.Error(), "character id") {
		t.Errorf("Execute(graph luke) error = %v", err)
	}
}

func TestApplyLayoutFlags(t *testing.T) {
	base := layout.DefaultConfig()

	if got := applyLayoutFlags(base, graphOpts{}); got != base {
		t.Errorf("no flags changed config: %+v", got)
	}

	got := applyLayoutFlags(base, graphOpts{
		scope:          "global",
		filmRadius:     200,
		starshipRadius: 500,
		arcDegrees:     90,
	})
	if got.StarshipScope != layout.ScopeGlobal {
		t.Errorf("StarshipScope = %q", got.StarshipScope)
	}
	if got.FilmRadius != 200 || got.StarshipRadius != 500 {
		t.Errorf("radii = %v/%v", got.FilmRadius, got.StarshipRadius)
	}
	if math.Abs(got.Arc-math.Pi/2) > 1e-12 {
		t.Errorf("Arc = %v, want pi/2", got.Arc)
	}
	if got.CenterX != base.CenterX || got.NodeRadius != base.NodeRadius {
		t.Error("unset flags should keep the base values")
	}
}
