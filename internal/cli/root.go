package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dense2d/array2d"
	"github.com/katalvlaran/dense2d/gridfile"
)

var version = "dev"

// SetVersion sets the version reported by --version. Called from main with a
// value injected via ldflags.
func SetVersion(v string) { version = v }

// Execute runs the dense2d CLI with the given arguments and returns the first
// command error. Logs go to stderr.
func Execute(ctx context.Context, args []string) error {
	root := newRootCmd(os.Stderr)
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Logs are written to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "dense2d",
		Short:         "Inspect and reshape dense 2-D grid files",
		Long:          `dense2d loads TOML grid documents into row-major arrays, transposes or resizes them, renders them as tables and benchmarks the container kernels.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(logOut, verbose)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath)
			}

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with array tunables")

	root.AddCommand(newShowCmd())
	root.AddCommand(newTransposeCmd())
	root.AddCommand(newResizeCmd())
	root.AddCommand(newBenchCmd())

	return root
}

// loadGrid reads a float64 grid using the configured tunables.
func loadGrid(ctx context.Context, path string) (*array2d.Array[float64], gridfile.Header, error) {
	logger := loggerFrom(ctx)
	a, h, err := gridfile.Load[float64](path, configFromContext(ctx).Options()...)
	if err != nil {
		return nil, h, err
	}
	logger.Debug("loaded grid", "path", path, "rows", a.Rows(), "cols", a.Cols())

	return a, h, nil
}

// writeGrid saves a to out, or encodes it to w when out is empty.
func writeGrid(ctx context.Context, w io.Writer, out string, a *array2d.Array[float64], title string) error {
	if out == "" {
		return gridfile.Encode(w, a, title)
	}
	if err := gridfile.Save(out, a, title); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	loggerFrom(ctx).Info("wrote grid", "path", out, "rows", a.Rows(), "cols", a.Cols())

	return nil
}
