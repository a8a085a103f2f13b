package cli

import (
	"github.com/spf13/cobra"
)

func newResizeCmd() *cobra.Command {
	var (
		out        string
		rows, cols int
		fill       float64
	)

	cmd := &cobra.Command{
		Use:   "resize FILE",
		Short: "Change a grid's shape, keeping the overlapping block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, h, err := loadGrid(ctx, args[0])
			if err != nil {
				return err
			}

			logger := loggerFrom(ctx)
			logger.Debug("resizing", "from_rows", a.Rows(), "from_cols", a.Cols(), "rows", rows, "cols", cols)
			if cmd.Flags().Changed("fill") {
				err = a.ResizeFill(rows, cols, fill)
			} else {
				err = a.Resize(rows, cols)
			}
			if err != nil {
				return err
			}

			return writeGrid(ctx, cmd.OutOrStdout(), out, a, h.Title)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().IntVar(&rows, "rows", 0, "new row count")
	cmd.Flags().IntVar(&cols, "cols", 0, "new column count")
	cmd.Flags().Float64Var(&fill, "fill", 0, "value for new cells (default: zero)")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")

	return cmd
}
