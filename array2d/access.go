// SPDX-License-Identifier: MIT

package array2d

// Offset returns the flat row-major position of (r,c): r*cols + c.
// No bounds check; callers that need one use At/SetAt/RefAt.
func (a *Array[T]) Offset(r, c int) int { return r*a.cols + c }

// indexOf validates (r,c) and returns the flat offset, or ErrOutOfRange.
func (a *Array[T]) indexOf(r, c int) (int, error) {
	if r < 0 || r >= a.rows || c < 0 || c >= a.cols {
		return 0, ErrOutOfRange
	}

	return r*a.cols + c, nil
}

// Row returns row r as a slice aliasing the buffer (len == cap == Cols()).
// Writes through the slice are writes to the array. Unchecked: r must be in [0, Rows()).
// The slice is invalidated by any reallocating call.
func (a *Array[T]) Row(r int) []T {
	assertIndex("row", r, a.rows)
	lo := r * a.cols
	hi := lo + a.cols

	return a.data[lo:hi:hi]
}

// Get returns element (r,c). Unchecked beyond Go's own slice bounds.
func (a *Array[T]) Get(r, c int) T {
	assertIndex("row", r, a.rows)
	assertIndex("col", c, a.cols)

	return a.data[r*a.cols+c]
}

// Set writes v at (r,c). Unchecked beyond Go's own slice bounds.
func (a *Array[T]) Set(r, c int, v T) {
	assertIndex("row", r, a.rows)
	assertIndex("col", c, a.cols)
	a.data[r*a.cols+c] = v
}

// Ref returns a pointer to element (r,c) for in-place mutation. Unchecked.
// The pointer is invalidated by any reallocating call.
func (a *Array[T]) Ref(r, c int) *T {
	assertIndex("row", r, a.rows)
	assertIndex("col", c, a.cols)

	return &a.data[r*a.cols+c]
}

// At returns element (r,c) with bounds checking.
//
// Errors:
//   - ErrOutOfRange if r ∉ [0,Rows()) or c ∉ [0,Cols()).
//
// Complexity: O(1).
func (a *Array[T]) At(r, c int) (T, error) {
	idx, err := a.indexOf(r, c)
	if err != nil {
		var zero T
		return zero, arrayErrorf(ctxAt, err, r, c)
	}

	return a.data[idx], nil
}

// SetAt writes v at (r,c) with bounds checking. On error nothing is written.
//
// Errors:
//   - ErrOutOfRange.
func (a *Array[T]) SetAt(r, c int, v T) error {
	idx, err := a.indexOf(r, c)
	if err != nil {
		return arrayErrorf(ctxSetAt, err, r, c)
	}
	a.data[idx] = v

	return nil
}

// RefAt returns a pointer to (r,c) with bounds checking.
//
// Errors:
//   - ErrOutOfRange.
func (a *Array[T]) RefAt(r, c int) (*T, error) {
	idx, err := a.indexOf(r, c)
	if err != nil {
		return nil, arrayErrorf(ctxRefAt, err, r, c)
	}

	return &a.data[idx], nil
}
