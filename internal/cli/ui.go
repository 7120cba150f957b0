package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/holomap/pkg/graph"
	"github.com/matzehuels/holomap/pkg/pipeline"
)

// Palette. The three ring colors match the node kinds of a graph.
var (
	colorCenter   = lipgloss.Color("220") // character: amber
	colorFilm     = lipgloss.Color("36")  // film: teal
	colorStarship = lipgloss.Color("75")  // starship: light blue
	colorGreen    = lipgloss.Color("35")
	colorRed      = lipgloss.Color("167")
	colorWhite    = lipgloss.Color("255")
	colorGray     = lipgloss.Color("245")
	colorDim      = lipgloss.Color("240")
)

var (
	// StyleTitle renders headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorFilm)
	// StyleDim renders secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	styleValue    = lipgloss.NewStyle().Foreground(colorWhite)
	styleOK       = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarn     = lipgloss.NewStyle().Foreground(colorCenter)
	styleInfo     = lipgloss.NewStyle().Foreground(colorGray)
	styleCommand  = lipgloss.NewStyle().Foreground(colorStarship)
	styleSpinner  = lipgloss.NewStyle().Foreground(colorFilm)
	styleCharName = lipgloss.NewStyle().Bold(true).Foreground(colorCenter)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// printer writes human-facing status lines. Artifacts written to stdout
// with "-o -" never go through it.
type printer struct {
	w io.Writer
}

func (p printer) line(s string) { fmt.Fprintln(p.w, s) }

func (p printer) success(format string, args ...any) {
	p.line(styleOK.Render(iconSuccess) + " " + fmt.Sprintf(format, args...))
}

func (p printer) warning(format string, args ...any) {
	p.line(styleWarn.Render(iconWarning) + " " + styleWarn.Render(fmt.Sprintf(format, args...)))
}

func (p printer) info(format string, args ...any) {
	p.line(styleInfo.Render(iconInfo) + " " + fmt.Sprintf(format, args...))
}

func (p printer) detail(format string, args ...any) {
	p.line("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file reports a written artifact.
func (p printer) file(path string) {
	p.line("  " + StyleDim.Render(iconArrow) + " " + styleValue.Render(path))
}

func (p printer) nextStep(description, cmd string) {
	p.line(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// summary reports a finished graph with its node counts and cache status.
//
//	✓ Luke Skywalker
//	  4 films · 3 starships · 7 edges · fresh
func (p printer) summary(name string, res *pipeline.Result) {
	p.line(styleOK.Render(iconSuccess) + " " + styleCharName.Render(name))

	s := res.Stats
	parts := []string{
		plural(len(res.Graph.NodesOfType(graph.NodeFilm)), "film"),
		plural(len(res.Graph.NodesOfType(graph.NodeStarship)), "starship"),
		plural(s.EdgeCount, "edge"),
	}
	switch {
	case res.CacheInfo.GraphHit && res.CacheInfo.RenderHit:
		parts = append(parts, styleOK.Render("cached"))
	case res.CacheInfo.GraphHit:
		parts = append(parts, styleOK.Render("cached graph"))
	default:
		parts = append(parts, styleInfo.Render("fresh"))
	}
	p.line("  " + strings.Join(parts, StyleDim.Render(" · ")))

	for _, w := range res.Warnings {
		p.warning("%s", w)
	}
	if s.Placeholders > 0 {
		p.warning("%s missing from the catalogs", plural(s.Placeholders, "placeholder node"))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
