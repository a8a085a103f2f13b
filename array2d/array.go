// SPDX-License-Identifier: MIT

// Package array2d - Array storage (row-major), construction & ownership.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula r*cols + c.
//   - Route every allocation through ComputeSize/allocate (overflow and oversize are errors).
//   - Keep ownership single: the Array owns its buffer; iterators and views only borrow.
//
// AI-Hints:
//   - The zero Array[T] is a valid 0×0 array; no constructor is needed for it.
//   - Use Move to hand a buffer to a new owner without copying, Clone to deep-copy.
//   - Any reallocating call (Resize, Reserve, ShrinkToFit, Move, Swap) invalidates
//     outstanding Row/AsSpan views and iterators.
//
// Complexity quicksheet:
//   - New/NewFilled/FromRows/FromSlice: O(r*c); Clone: O(r*c); Move/Swap: O(1).

package array2d

import (
	"iter"
)

// Array is a dense rows×cols grid of T stored in one row-major slice.
//   - rows, cols hold the dimensions (>= 0).
//   - data has len == rows*cols; element (r,c) is data[r*cols+c].
//   - opts carries performance tunables; preserved by Clone and CopyFrom.
type Array[T any] struct {
	rows, cols int
	data       []T
	opts       Options
}

// Empty returns a new 0×0 array carrying opts.
func Empty[T any](opts ...Option) *Array[T] {
	return &Array[T]{opts: gatherOptions(opts)}
}

// New creates a rows×cols array whose elements are the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: ComputeSize(rows, cols) (negative ⇒ ErrInvalidArgument, too large ⇒ ErrOverflow).
//   - Stage 2: allocate the zero-filled buffer (ErrAllocation when impossible).
//
// Behavior highlights:
//   - 0×N and N×0 are legal; Size() is then 0 while Rows()/Cols() keep the request.
//
// Errors:
//   - ErrInvalidArgument, ErrOverflow, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T any](rows, cols int, opts ...Option) (*Array[T], error) {
	size, err := ComputeSize(rows, cols)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err, rows, cols)
	}
	buf, err := allocate[T](size)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err, rows, cols)
	}

	return &Array[T]{rows: rows, cols: cols, data: buf, opts: gatherOptions(opts)}, nil
}

// NewFilled creates a rows×cols array with every element a copy of value.
//
// Errors:
//   - ErrInvalidArgument, ErrOverflow, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFilled[T any](rows, cols int, value T, opts ...Option) (*Array[T], error) {
	size, err := ComputeSize(rows, cols)
	if err != nil {
		return nil, arrayErrorf(ctxNewFilled, err, rows, cols)
	}
	buf, err := allocateFilled(size, value)
	if err != nil {
		return nil, arrayErrorf(ctxNewFilled, err, rows, cols)
	}

	return &Array[T]{rows: rows, cols: cols, data: buf, opts: gatherOptions(opts)}, nil
}

// FromRows builds an array from a nested literal, one inner slice per row.
// MAIN DESCRIPTION:
//   - Copy a rectangular [][]T into row-major storage.
//
// Implementation:
//   - Stage 1: empty outer slice ⇒ 0×0.
//   - Stage 2: every inner slice must have len(rows[0]); otherwise ErrInvalidArgument.
//   - Stage 3: ComputeSize, allocate, copy row by row.
//
// Behavior highlights:
//   - The result never aliases the input.
//   - A single empty inner slice yields N×0 (rows kept, zero columns).
//
// Errors:
//   - ErrInvalidArgument (ragged input), ErrOverflow, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T any](rows [][]T, opts ...Option) (*Array[T], error) {
	if len(rows) == 0 {
		return Empty[T](opts...), nil
	}
	r, c := len(rows), len(rows[0])
	for i, row := range rows {
		if len(row) != c {
			return nil, arrayErrorf(ctxFromRows, ErrInvalidArgument, i, len(row))
		}
	}
	size, err := ComputeSize(r, c)
	if err != nil {
		return nil, arrayErrorf(ctxFromRows, err, r, c)
	}
	buf, err := allocate[T](size)
	if err != nil {
		return nil, arrayErrorf(ctxFromRows, err, r, c)
	}
	for i, row := range rows {
		copy(buf[i*c:(i+1)*c], row)
	}

	return &Array[T]{rows: r, cols: c, data: buf, opts: gatherOptions(opts)}, nil
}

// FromSlice builds a rows×cols array from a flat row-major source.
// len(src) must equal rows*cols exactly. The source is copied, never aliased.
//
// Errors:
//   - ErrInvalidArgument (negative dimension or length mismatch), ErrOverflow, ErrAllocation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromSlice[T any](rows, cols int, src []T, opts ...Option) (*Array[T], error) {
	size, err := ComputeSize(rows, cols)
	if err != nil {
		return nil, arrayErrorf(ctxFromSlice, err, rows, cols)
	}
	if len(src) != size {
		return nil, arrayErrorf(ctxFromSlice, ErrInvalidArgument, rows, cols)
	}
	buf, err := allocate[T](size)
	if err != nil {
		return nil, arrayErrorf(ctxFromSlice, err, rows, cols)
	}
	copy(buf, src)

	return &Array[T]{rows: rows, cols: cols, data: buf, opts: gatherOptions(opts)}, nil
}

// Collect builds a rows×cols array from a sequence that must yield exactly
// rows*cols values in row-major order. Iteration stops as soon as one value
// too many is seen.
//
// Errors:
//   - ErrInvalidArgument (count mismatch), ErrOverflow, ErrAllocation.
func Collect[T any](rows, cols int, seq iter.Seq[T], opts ...Option) (*Array[T], error) {
	size, err := ComputeSize(rows, cols)
	if err != nil {
		return nil, arrayErrorf(ctxCollect, err, rows, cols)
	}
	buf, err := allocate[T](size)
	if err != nil {
		return nil, arrayErrorf(ctxCollect, err, rows, cols)
	}
	n := 0
	for v := range seq {
		if n == size {
			n++ // mark overflow and stop pulling
			break
		}
		buf[n] = v
		n++
	}
	if n != size {
		return nil, arrayErrorf(ctxCollect, ErrInvalidArgument, rows, cols)
	}

	return &Array[T]{rows: rows, cols: cols, data: buf, opts: gatherOptions(opts)}, nil
}

// Clone returns a deep copy with identical shape, data and options.
// Complexity: O(r*c).
func (a *Array[T]) Clone() *Array[T] {
	cp := make([]T, len(a.data))
	copy(cp, a.data)

	return &Array[T]{rows: a.rows, cols: a.cols, data: cp, opts: a.opts}
}

// CopyFrom replaces the receiver's contents with a deep copy of src.
// The receiver's buffer is reused when its capacity suffices.
// Complexity: O(r*c).
func (a *Array[T]) CopyFrom(src *Array[T]) {
	if a == src {
		return
	}
	n := len(src.data)
	if cap(a.data) >= n {
		if n < len(a.data) {
			clear(a.data[n:]) // drop references held past the new length
		}
		a.data = a.data[:n]
	} else {
		a.data = make([]T, n)
	}
	copy(a.data, src.data)
	a.rows, a.cols, a.opts = src.rows, src.cols, src.opts
}

// Move transfers buffer ownership to a new Array and leaves the receiver 0×0.
// Iterators and views taken from the receiver now borrow the returned Array.
// Complexity: O(1).
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{rows: a.rows, cols: a.cols, data: a.data, opts: a.opts}
	a.rows, a.cols, a.data = 0, 0, nil

	return moved
}

// Swap exchanges dimensions and buffers with other in O(1). Never fails.
// Options stay with their Array.
func (a *Array[T]) Swap(other *Array[T]) {
	a.rows, other.rows = other.rows, a.rows
	a.cols, other.cols = other.cols, a.cols
	a.data, other.data = other.data, a.data
}

// Swap is the free-function form of a.Swap(b).
func Swap[T any](a, b *Array[T]) { a.Swap(b) }

// Rows returns the row count. Complexity: O(1).
func (a *Array[T]) Rows() int { return a.rows }

// Cols returns the column count. Complexity: O(1).
func (a *Array[T]) Cols() int { return a.cols }

// Shape packs Rows() and Cols() into a single call.
func (a *Array[T]) Shape() (rows, cols int) { return a.rows, a.cols }

// Size returns the element count rows*cols.
func (a *Array[T]) Size() int { return len(a.data) }

// Empty reports whether the array holds no elements (either dimension may be 0).
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// IsSquare reports rows == cols. A 0×0 array is square.
func (a *Array[T]) IsSquare() bool { return a.rows == a.cols }

// Capacity returns the number of elements the buffer can hold without reallocating.
func (a *Array[T]) Capacity() int { return cap(a.data) }

// Options returns the array's tunables.
func (a *Array[T]) Options() Options { return a.opts }

// Reserve grows the buffer capacity to at least rows*cols elements without
// changing shape or contents. Shrinking requests are ignored.
//
// Errors:
//   - ErrInvalidArgument, ErrOverflow, ErrAllocation. The array is untouched on error.
func (a *Array[T]) Reserve(rows, cols int) error {
	want, err := ComputeSize(rows, cols)
	if err != nil {
		return arrayErrorf(ctxReserve, err, rows, cols)
	}
	if want <= cap(a.data) {
		return nil
	}
	buf, err := allocate[T](want)
	if err != nil {
		return arrayErrorf(ctxReserve, err, rows, cols)
	}
	n := copy(buf, a.data)
	a.data = buf[:n]

	return nil
}

// ShrinkToFit releases spare capacity so that Capacity() == Size().
func (a *Array[T]) ShrinkToFit() {
	if cap(a.data) == len(a.data) {
		return
	}
	buf := make([]T, len(a.data))
	copy(buf, a.data)
	a.data = buf
}
