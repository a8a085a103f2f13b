// SPDX-License-Identifier: MIT

package array2d_test

import (
	"testing"

	"github.com/katalvlaran/dense2d/array2d"
	"github.com/stretchr/testify/require"
)

// mustNew builds a rows×cols zero array or fails the test.
func mustNew[T any](tb testing.TB, rows, cols int, opts ...array2d.Option) *array2d.Array[T] {
	tb.Helper()
	a, err := array2d.New[T](rows, cols, opts...)
	require.NoError(tb, err)

	return a
}

// mustFromRows builds an array from a nested literal or fails the test.
func mustFromRows[T any](tb testing.TB, rows [][]T, opts ...array2d.Option) *array2d.Array[T] {
	tb.Helper()
	a, err := array2d.FromRows(rows, opts...)
	require.NoError(tb, err)

	return a
}

// sequential returns a rows×cols int array holding 1..rows*cols in row-major order.
func sequential(tb testing.TB, rows, cols int, opts ...array2d.Option) *array2d.Array[int] {
	tb.Helper()
	a := mustNew[int](tb, rows, cols, opts...)
	v := 0
	a.Apply(func(_, _ int, _ int) int {
		v++
		return v
	})

	return a
}

// toRows snapshots an array as [][]T for readable require.Equal diffs.
func toRows[T any](a *array2d.Array[T]) [][]T {
	out := make([][]T, 0, a.Rows())
	for _, row := range a.RowSlices() {
		out = append(out, append([]T(nil), row...))
	}

	return out
}
