// SPDX-License-Identifier: MIT

// Package array2d - zero-copy views and copy-based extraction.
//
// Purpose:
//   - Expose the row-major buffer as Go slices (whole buffer, single row, row-major
//     sub-block) that alias the array storage.
//   - Materialize strided shapes (columns, index-selected submatrices) as copies.
//
// AI-Hints:
//   - Every slice returned here is bounded with a full slice expression, so an
//     append on it reallocates instead of spilling into the next row.
//   - Views die with the next reallocating call (Resize, Reserve, ShrinkToFit, Move, Swap).

package array2d

import (
	"iter"
)

// Data returns the backing buffer (len == Size()). Same as AsSpan.
func (a *Array[T]) Data() []T { return a.AsSpan() }

// AsSpan returns the whole row-major buffer as one slice aliasing the array.
// Complexity: O(1).
func (a *Array[T]) AsSpan() []T { return a.data[:len(a.data):len(a.data)] }

// Col returns a copy of column c (length Rows()). Columns are strided in a
// row-major layout, so they cannot alias the buffer. Unchecked.
// Complexity: O(r).
func (a *Array[T]) Col(c int) []T {
	assertIndex("col", c, a.cols)
	out := make([]T, a.rows)
	for r := range out {
		out[r] = a.data[r*a.cols+c]
	}

	return out
}

// SubmatrixRowMajor returns a slice view of the nr×nc block whose top-left corner
// is (sr,sc).
// MAIN DESCRIPTION:
//   - Zero-copy access to a sub-block when its rows are adjacent in memory.
//
// Implementation:
//   - Stage 1: sc == 0 && nc == Cols() ⇒ the block is nr*Cols() consecutive elements;
//     return that span and contiguous == true.
//   - Stage 2: otherwise return only the first requested row's nc elements and
//     contiguous == false. Use Region for full access to narrow blocks.
//
// Behavior highlights:
//   - nr == 0 or nc == 0 yields an empty span with contiguous == true.
//   - Unchecked: the block must lie inside the array (asserted in debug builds).
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array[T]) SubmatrixRowMajor(sr, sc, nr, nc int) (span []T, contiguous bool) {
	if nr == 0 || nc == 0 {
		return a.data[:0:0], true
	}
	assertIndex("row", sr, a.rows)
	assertIndex("col", sc, a.cols)
	assertIndex("row", sr+nr-1, a.rows)
	assertIndex("col", sc+nc-1, a.cols)

	if sc == 0 && nc == a.cols {
		lo := sr * a.cols
		hi := lo + nr*a.cols
		return a.data[lo:hi:hi], true
	}
	lo := sr*a.cols + sc

	return a.data[lo : lo+nc : lo+nc], false
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Implementation:
//   - Stage 1: validate every index up front so a failure allocates nothing.
//   - Stage 2: allocate len(rowIdx)×len(colIdx) via New.
//   - Stage 3: nested loops with direct offset math.
//
// Behavior highlights:
//   - Options are carried over from the receiver.
//   - Empty index lists yield a legal zero-area result.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (a *Array[T]) Induced(rowIdx, colIdx []int) (*Array[T], error) {
	for _, r := range rowIdx {
		if r < 0 || r >= a.rows {
			return nil, arrayErrorf(ctxInduced, ErrOutOfRange, r, -1)
		}
	}
	for _, c := range colIdx {
		if c < 0 || c >= a.cols {
			return nil, arrayErrorf(ctxInduced, ErrOutOfRange, -1, c)
		}
	}

	rp, cp := len(rowIdx), len(colIdx)
	res, err := New[T](rp, cp)
	if err != nil {
		return nil, arrayErrorf(ctxInduced, err, rp, cp)
	}
	res.opts = a.opts

	var dst int
	for _, r := range rowIdx {
		base := r * a.cols
		for _, c := range colIdx {
			res.data[dst] = a.data[base+c]
			dst++
		}
	}

	return res, nil
}

// All yields (flat offset, value) pairs in row-major order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward yields (flat offset, value) pairs from the last element to the first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// RowSlices yields (row index, row view) for every row. Each row view aliases
// the buffer like Row(r).
func (a *Array[T]) RowSlices() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := range a.rows {
			lo := r * a.cols
			hi := lo + a.cols
			if !yield(r, a.data[lo:hi:hi]) {
				return
			}
		}
	}
}
