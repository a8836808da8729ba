package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pinpress/pinpress/pkg/catalog"
	"github.com/pinpress/pinpress/pkg/layout"
	"github.com/pinpress/pinpress/pkg/placement"
)

// sizesCommand creates the sizes command listing the button catalog.
func (c *CLI) sizesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "List available button sizes",
		RunE: func(cmd *cobra.Command, args []string) error {
			printSizesTable()
			printNewline()
			printNextStep("Render a sheet", "pinpress render art.png --size 1.25")
			return nil
		},
	}
}

// printSizesTable renders the catalog as a table, including how many
// buttons of each size fit on a US Letter page.
func printSizesTable() {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{}
	for _, size := range catalog.All() {
		rows = append(rows, []string{
			size.Name,
			fmt.Sprintf("%.3f in", float64(size.CutLineDiameter)),
			fmt.Sprintf("%.3f in", float64(size.ContentGuideDiameter)),
			size.Layout.String(),
			fmt.Sprintf("%d", perPage(size)),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Size", "Cut line", "Safe area", "Packing", "Per page").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 || col == 4 {
				return StyleHighlight
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}

// perPage returns how many buttons of the given size fit on US Letter.
func perPage(size catalog.ButtonSize) int {
	l := layout.Generate(placement.Placement{Scale: 1, Size: size}, layout.USLetter)
	return l.Grid.Total
}
