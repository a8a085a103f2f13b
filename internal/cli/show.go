package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dense2d/array2d"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	indexStyle  = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Render a grid file as a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, h, err := loadGrid(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if h.Title != "" {
				fmt.Fprintln(out, titleStyle.Render(h.Title))
			}
			fmt.Fprintln(out, renderTable(a))
			return nil
		},
	}
}

// renderTable lays a grid out with column indices as headers and row indices
// in the first column.
func renderTable(a *array2d.Array[float64]) string {
	headers := make([]string, a.Cols()+1)
	for c := range a.Cols() {
		headers[c+1] = strconv.Itoa(c)
	}

	rows := make([][]string, 0, a.Rows())
	for r, vals := range a.RowSlices() {
		cells := make([]string, len(vals)+1)
		cells[0] = strconv.Itoa(r)
		for c, v := range vals {
			cells[c+1] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		rows = append(rows, cells)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0:
				return indexStyle
			default:
				return cellStyle
			}
		})

	return t.Render()
}
