package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/holomap/pkg/pipeline"
)

// charactersCommand creates the characters command, which lists one page of
// the SWAPI character collection.
func (c *CLI) charactersCommand() *cobra.Command {
	var page int
	var refresh, noCache bool

	cmd := &cobra.Command{
		Use:     "characters",
		Aliases: []string{"people"},
		Short:   "List one page of characters",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner, _, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			rows, next, err := runner.Characters(ctx, page, refresh)
			if err != nil {
				return err
			}
			ui := c.ui()
			ui.line(characterTable(rows, -1))
			ui.pageFooter(page, next)
			return nil
		},
	}

	cmd.Flags().IntVarP(&page, "page", "p", 1, "page number")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "bypass cached responses")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// characterTable renders rows as a table. The row at index selected, if
// any, is highlighted.
func characterTable(rows []pipeline.CharacterSummary, selected int) string {
	data := make([][]string, 0, len(rows))
	for i, r := range rows {
		cursor := "  "
		if i == selected {
			cursor = "▸ "
		}
		data = append(data, []string{cursor, strconv.Itoa(r.ID), r.Name, strconv.Itoa(r.Films)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Name", "Films").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == selected:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col == 1 || col == 3:
				return lipgloss.NewStyle().Foreground(colorFilm)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		}).
		Render()
}

// pageFooter names the current page and the commands that follow from it.
func (p printer) pageFooter(page int, next bool) {
	p.detail("Page %d", page)
	if next {
		p.nextStep("Next page", fmt.Sprintf("%s characters --page %d", appName, page+1))
	}
	p.nextStep("Generate a graph", appName+" graph <id>")
}
