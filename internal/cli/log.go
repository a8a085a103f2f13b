// Package cli implements the dense2d command-line interface.
//
// The CLI is a thin consumer of the array2d and gridfile packages: it loads
// TOML grid documents, runs one container operation on them and writes the
// result back (or renders it as a table). It is built with cobra and logs via
// charmbracelet/log.
//
// # Commands
//
//   - show: Render a grid file as a table
//   - transpose: Transpose a grid file (in place for square grids)
//   - resize: Change a grid's shape, keeping the overlapping block
//   - bench: Time the bulk kernels on a synthetic grid
//
// # Configuration
//
// --config points at a TOML file with the array2d tunables
// (cache_line_bytes, parallel_threshold, max_workers).
//
// # Logging
//
// Every command logs through one charmbracelet/log logger built by the root
// command and stored in the command context; --verbose (-v) lowers it to
// debug level. Timed operations report an "elapsed" field.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// _clockFormat keeps sub-second precision so bench steps are distinguishable.
const _clockFormat = "15:04:05.000"

// newLogger writes to w at info level, or debug level when verbose is set.
func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      _clockFormat,
		Level:           level,
	})
}

// stopwatch times one grid operation. Not shared between goroutines.
type stopwatch struct {
	logger  *log.Logger
	started time.Time
}

func startStopwatch(l *log.Logger) stopwatch {
	return stopwatch{logger: l, started: time.Now()}
}

// stop logs op with an "elapsed" field plus any extra key/value pairs and
// returns the measured duration.
func (s stopwatch) stop(op string, kv ...any) time.Duration {
	elapsed := time.Since(s.started)
	s.logger.Info(op, append([]any{"elapsed", elapsed.Round(time.Microsecond)}, kv...)...)

	return elapsed
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFrom returns the command logger stored in ctx, or log.Default for
// contexts that never went through the root command (tests, direct calls).
func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
