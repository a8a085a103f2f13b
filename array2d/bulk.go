// SPDX-License-Identifier: MIT

// Package array2d - bulk mutation: fill, row copy/swap, visitors, parallel fill.
//
// Purpose:
//   - Whole-buffer and whole-row writes expressed as tight loops over the
//     contiguous buffer (no per-element index arithmetic).
//   - FillParallel: the only internal concurrency; disjoint chunks joined before return.
//
// Complexity quicksheet:
//   - Fill/FillParallel: O(r*c); CopyRow/SwapRows/FillRow: O(c); Each/Apply: O(r*c).

package array2d

import (
	"golang.org/x/sync/errgroup"
)

// fillSlice writes v into every element of s using doubling copies:
// after seeding s[0], each round duplicates the filled prefix.
func fillSlice[T any](s []T, v T) {
	if len(s) == 0 {
		return
	}
	s[0] = v
	for n := 1; n < len(s); n *= 2 {
		copy(s[n:], s[:n])
	}
}

// Fill sets every element to v. Observably identical to assigning v to each
// element in turn. Complexity: O(r*c).
func (a *Array[T]) Fill(v T) { fillSlice(a.data, v) }

// FillParallel sets every element to v, splitting the buffer across workers when
// Size() exceeds Options().ParallelThreshold().
// MAIN DESCRIPTION:
//   - Parallel counterpart of Fill for large arrays.
//
// Implementation:
//   - Stage 1: Size() <= threshold ⇒ sequential Fill.
//   - Stage 2: workers = min(MaxWorkers(), Size()); chunk = ceil(Size()/workers).
//   - Stage 3: errgroup fan-out, one goroutine per disjoint [lo,hi) chunk; Wait joins.
//
// Behavior highlights:
//   - Never fails; the result equals Fill(v).
//   - No two goroutines touch the same element.
//
// Complexity:
//   - Time O(r*c / workers) wall, O(r*c) total; Space O(workers) goroutines.
func (a *Array[T]) FillParallel(v T) {
	n := len(a.data)
	if n <= a.opts.ParallelThreshold() {
		a.Fill(v)
		return
	}

	workers := min(a.opts.MaxWorkers(), n)
	if workers <= 1 {
		a.Fill(v)
		return
	}
	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for lo := 0; lo < n; lo += chunk {
		part := a.data[lo:min(lo+chunk, n)]
		g.Go(func() error {
			fillSlice(part, v)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error
}

// CopyRow overwrites row dst with the contents of row src. No-op when src == dst.
// Unchecked: both indices must be in [0, Rows()). Complexity: O(c).
func (a *Array[T]) CopyRow(src, dst int) {
	if src == dst {
		return
	}
	copy(a.Row(dst), a.Row(src))
}

// SwapRows exchanges rows r1 and r2 element-wise. No-op when r1 == r2.
// Unchecked: both indices must be in [0, Rows()). Complexity: O(c).
func (a *Array[T]) SwapRows(r1, r2 int) {
	if r1 == r2 {
		return
	}
	x, y := a.Row(r1), a.Row(r2)
	for i := range x {
		x[i], y[i] = y[i], x[i]
	}
}

// FillRow sets every element of row r to v. Unchecked. Complexity: O(c).
func (a *Array[T]) FillRow(r int, v T) { fillSlice(a.Row(r), v) }

// Each visits every element in row-major order and stops early when fn returns false.
// Complexity: O(r*c).
func (a *Array[T]) Each(fn func(r, c int, v T) bool) {
	if a.cols == 0 {
		return
	}
	for i, v := range a.data {
		if !fn(i/a.cols, i%a.cols, v) {
			return
		}
	}
}

// Apply replaces every element with fn(r, c, old) in row-major order.
// Complexity: O(r*c).
func (a *Array[T]) Apply(fn func(r, c int, v T) T) {
	if a.cols == 0 {
		return
	}
	for i, v := range a.data {
		a.data[i] = fn(i/a.cols, i%a.cols, v)
	}
}
