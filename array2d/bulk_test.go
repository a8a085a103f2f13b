// SPDX-License-Identifier: MIT

package array2d_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/dense2d/array2d"
	"github.com/stretchr/testify/require"
)

// TestFillRowThenCopyRow: fill row 0 with 7 and copy it onto row 1.
func TestFillRowThenCopyRow(t *testing.T) {
	a, err := array2d.NewFilled(2, 3, 0)
	require.NoError(t, err)

	a.FillRow(0, 7)
	a.CopyRow(0, 1)
	require.Equal(t, []int{7, 7, 7}, a.Row(1))

	a.CopyRow(1, 1) // no-op
	require.Equal(t, [][]int{{7, 7, 7}, {7, 7, 7}}, toRows(a))
}

// TestSwapRows exchanges two rows and treats r1 == r2 as a no-op.
func TestSwapRows(t *testing.T) {
	a := sequential(t, 3, 2)
	a.SwapRows(0, 2)
	require.Equal(t, [][]int{{5, 6}, {3, 4}, {1, 2}}, toRows(a))

	a.SwapRows(1, 1)
	require.Equal(t, [][]int{{5, 6}, {3, 4}, {1, 2}}, toRows(a))
}

// TestFill covers sizes around the doubling boundaries.
func TestFill(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3, 7, 8, 9, 1000} {
		a := mustNew[int](t, 1, n)
		a.Fill(3)
		for _, v := range a.AsSpan() {
			require.Equal(t, 3, v)
		}
	}
}

// TestFillParallel matches Fill on both sides of the threshold.
func TestFillParallel(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []array2d.Option
	}{
		{"below threshold", 10, 10, nil},
		{"default threshold", 200, 101, nil},
		{"forced parallel", 7, 13, []array2d.Option{array2d.WithParallelThreshold(0), array2d.WithMaxWorkers(4)}},
		{"single worker", 50, 50, []array2d.Option{array2d.WithParallelThreshold(1), array2d.WithMaxWorkers(1)}},
		{"more workers than elements", 1, 3, []array2d.Option{array2d.WithParallelThreshold(0), array2d.WithMaxWorkers(16)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustNew[float64](t, tc.rows, tc.cols, tc.opts...)
			a.FillParallel(2.5)
			for i, v := range a.AsSpan() {
				require.Equal(t, 2.5, v, "offset %d", i)
			}
		})
	}
}

// TestFillParallelEmpty is a no-op on zero-area arrays.
func TestFillParallelEmpty(t *testing.T) {
	a := mustNew[int](t, 0, 5, array2d.WithParallelThreshold(0))
	a.FillParallel(1)
	require.True(t, a.Empty())
}

// TestResetModes checks the byte patterns for plain numeric types.
func TestResetModes(t *testing.T) {
	u8 := mustNew[uint8](t, 2, 2)
	u8.Reset(array2d.ResetOnes)
	require.Equal(t, []uint8{255, 255, 255, 255}, u8.AsSpan())

	i32 := mustNew[int32](t, 1, 3)
	i32.Reset(array2d.ResetSafeMax)
	require.Equal(t, []int32{0x3F3F3F3F, 0x3F3F3F3F, 0x3F3F3F3F}, i32.AsSpan())

	i64 := mustNew[int64](t, 1, 2)
	i64.Reset(array2d.ResetOnes)
	require.Equal(t, []int64{-1, -1}, i64.AsSpan())

	f64 := mustNew[float64](t, 1, 2)
	f64.Fill(1.5)
	f64.Reset(array2d.ResetOnes)
	require.True(t, math.IsNaN(f64.Get(0, 0)))
	f64.Reset(array2d.ResetZero)
	require.Equal(t, []float64{0, 0}, f64.AsSpan())
}

type point struct {
	X, Y int16
	W    [2]uint8
}

// TestResetStructs covers composite plain types and non-plain fallbacks.
func TestResetStructs(t *testing.T) {
	p := mustNew[point](t, 1, 1)
	p.Reset(array2d.ResetSafeMax)
	require.Equal(t, point{X: 0x3F3F, Y: 0x3F3F, W: [2]uint8{0x3F, 0x3F}}, p.Get(0, 0))

	s, err := array2d.NewFilled(2, 2, "keep")
	require.NoError(t, err)
	s.Reset(array2d.ResetOnes) // strings cannot take a raw bit pattern
	require.Equal(t, []string{"", "", "", ""}, s.AsSpan())

	b, err := array2d.NewFilled(1, 2, true)
	require.NoError(t, err)
	b.Reset(array2d.ResetSafeMax)
	require.Equal(t, []bool{false, false}, b.AsSpan())
}

// TestEachStopsEarly visits in row-major order and honours early exit.
func TestEachStopsEarly(t *testing.T) {
	a := sequential(t, 2, 3)
	var seen [][3]int
	a.Each(func(r, c int, v int) bool {
		seen = append(seen, [3]int{r, c, v})
		return v < 4
	})
	require.Equal(t, [][3]int{{0, 0, 1}, {0, 1, 2}, {0, 2, 3}, {1, 0, 4}}, seen)
}

// TestApply rewrites every element with its coordinates.
func TestApply(t *testing.T) {
	a := mustNew[int](t, 2, 2)
	a.Apply(func(r, c int, _ int) int { return r*10 + c })
	require.Equal(t, [][]int{{0, 1}, {10, 11}}, toRows(a))
}
