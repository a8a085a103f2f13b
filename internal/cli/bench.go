package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dense2d/array2d"
)

type benchStep struct {
	name string
	run  func(a *array2d.Array[float64]) error
}

var benchSteps = []benchStep{
	{"fill", func(a *array2d.Array[float64]) error { a.Fill(1); return nil }},
	{"fill-parallel", func(a *array2d.Array[float64]) error { a.FillParallel(2); return nil }},
	{"transposed", func(a *array2d.Array[float64]) error { _ = a.Transposed(); return nil }},
	{"transpose", func(a *array2d.Array[float64]) error { return a.Transpose() }},
	{"resize", func(a *array2d.Array[float64]) error {
		r, c := a.Shape()
		if err := a.Resize(r+r/2, c+c/2); err != nil {
			return err
		}
		return a.Resize(r, c)
	}},
}

func newBenchCmd() *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the bulk kernels on a synthetic grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runBench(cmd.Context(), rows, cols)
			if err != nil {
				return err
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", r.name, r.elapsed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 1024, "grid rows")
	cmd.Flags().IntVar(&cols, "cols", 1024, "grid columns")

	return cmd
}

type benchResult struct {
	name    string
	elapsed time.Duration
}

// runBench runs every step once on a fresh rows×cols grid, stopping early when
// ctx is cancelled.
func runBench(ctx context.Context, rows, cols int) ([]benchResult, error) {
	logger := loggerFrom(ctx)
	a, err := array2d.New[float64](rows, cols, configFromContext(ctx).Options()...)
	if err != nil {
		return nil, err
	}
	logger.Debug("bench grid", "rows", rows, "cols", cols,
		"parallel_threshold", a.Options().ParallelThreshold(), "max_workers", a.Options().MaxWorkers())

	results := make([]benchResult, 0, len(benchSteps))
	for _, step := range benchSteps {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if step.name == "transpose" && !a.IsSquare() {
			logger.Debug("skipping in-place transpose of non-square grid")
			continue
		}
		sw := startStopwatch(logger)
		if err := step.run(a); err != nil {
			return results, fmt.Errorf("%s: %w", step.name, err)
		}
		results = append(results, benchResult{name: step.name, elapsed: sw.stop(step.name)})
	}

	return results, nil
}
