package cli

import (
	"github.com/spf13/cobra"
)

func newTransposeCmd() *cobra.Command {
	var (
		out     string
		inPlace bool
	)

	cmd := &cobra.Command{
		Use:   "transpose FILE",
		Short: "Transpose a grid file",
		Long: `Transpose FILE and write the result to --output, or to stdout when no output is given.
--in-place permutes the loaded buffer directly and requires a square grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, h, err := loadGrid(ctx, args[0])
			if err != nil {
				return err
			}

			sw := startStopwatch(loggerFrom(ctx))
			if inPlace {
				if err := a.Transpose(); err != nil {
					return err
				}
			} else {
				a = a.Transposed()
			}
			sw.stop("transposed", "in_place", inPlace, "rows", a.Rows(), "cols", a.Cols())

			return writeGrid(ctx, cmd.OutOrStdout(), out, a, h.Title)
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&inPlace, "in-place", false, "transpose in place (square grids only)")

	return cmd
}
