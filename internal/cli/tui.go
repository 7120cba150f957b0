package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/holomap/pkg/pipeline"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// browseCommand creates the browse command: an interactive character picker
// that generates the graph of the chosen character.
func (c *CLI) browseCommand() *cobra.Command {
	var formatsStr string
	var opts graphOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Page through characters and generate a graph for one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, cfg, err := c.newRunner(ctx, opts.noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			load := func(page int) ([]pipeline.CharacterSummary, bool, error) {
				return runner.Characters(ctx, page, opts.refresh)
			}
			final, err := tea.NewProgram(NewCharacterListModel(load), tea.WithContext(ctx)).Run()
			if err != nil {
				return err
			}
			m, ok := final.(CharacterListModel)
			if !ok || m.Selected == nil {
				return nil
			}

			opts.formats = parseFormats(formatsStr)
			return c.runGraph(ctx, runner, cfg.LayoutConfig(), m.Selected.ID, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, yaml, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node attributes in DOT and SVG labels")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached responses")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

// =============================================================================
// CharacterListModel - Interactive character selection
// =============================================================================

// PageLoader fetches one page of characters and reports whether another
// page follows.
type PageLoader func(page int) ([]pipeline.CharacterSummary, bool, error)

// pageLoadedMsg carries the result of a PageLoader call.
type pageLoadedMsg struct {
	page int
	rows []pipeline.CharacterSummary
	next bool
	err  error
}

// CharacterListModel is the bubbletea model for paginated character selection.
type CharacterListModel struct {
	Load     PageLoader
	Page     int
	Rows     []pipeline.CharacterSummary
	HasNext  bool
	Cursor   int
	Loading  bool
	Err      error
	Selected *pipeline.CharacterSummary
}

// NewCharacterListModel creates a model that starts on page 1.
func NewCharacterListModel(load PageLoader) CharacterListModel {
	return CharacterListModel{Load: load, Page: 1, Loading: true}
}

func (m CharacterListModel) Init() tea.Cmd {
	return m.loadPage(m.Page)
}

func (m CharacterListModel) loadPage(page int) tea.Cmd {
	load := m.Load
	return func() tea.Msg {
		rows, next, err := load(page)
		return pageLoadedMsg{page: page, rows: rows, next: next, err: err}
	}
}

func (m CharacterListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pageLoadedMsg:
		m.Loading = false
		if msg.err != nil {
			m.Err = msg.err
			return m, nil
		}
		m.Err = nil
		m.Page = msg.page
		m.Rows = msg.rows
		m.HasNext = msg.next
		m.Cursor = 0
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.Loading {
			return m, nil
		}
		switch msg.String() {
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
			}
		case "right", "n":
			if m.HasNext {
				m.Loading = true
				return m, m.loadPage(m.Page + 1)
			}
		case "left", "p":
			if m.Page > 1 {
				m.Loading = true
				return m, m.loadPage(m.Page - 1)
			}
		case "enter":
			if len(m.Rows) == 0 {
				return m, nil
			}
			row := m.Rows[m.Cursor]
			m.Selected = &row
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m CharacterListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Character"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ←/→ page  ⏎ select  q quit"))
	b.WriteString("\n\n")

	switch {
	case m.Err != nil:
		b.WriteString(listErrorStyle.Render(iconError + " " + m.Err.Error()))
	case m.Loading && len(m.Rows) == 0:
		b.WriteString(listDimStyle.Render("Loading..."))
	default:
		b.WriteString(characterTable(m.Rows, m.Cursor))
	}
	b.WriteString("\n\n")

	status := fmt.Sprintf("  page %d", m.Page)
	if m.Loading && len(m.Rows) > 0 {
		status += " · loading"
	}
	b.WriteString(listDimStyle.Render(status))

	return b.String()
}
