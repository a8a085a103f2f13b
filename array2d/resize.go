// SPDX-License-Identifier: MIT

package array2d

// Resize changes the shape to rows×cols, keeping the overlapping top-left
// min(rows)×min(cols) block and zero-filling everything else.
// See ResizeFill for the implementation notes.
//
// Errors:
//   - ErrInvalidArgument, ErrOverflow, ErrAllocation. On error the array is unchanged.
func (a *Array[T]) Resize(rows, cols int) error {
	if err := a.resize(rows, cols, nil); err != nil {
		return arrayErrorf(ctxResize, err, rows, cols)
	}

	return nil
}

// ResizeFill changes the shape to rows×cols, keeping the overlapping block and
// filling new cells with fill.
// MAIN DESCRIPTION:
//   - Shape change with strong failure safety: build the new buffer, then adopt.
//
// Implementation:
//   - Stage 1: validate dimensions and compute the new size (nothing touched yet).
//   - Stage 2: same shape ⇒ no-op.
//   - Stage 3: new size 0 ⇒ drop the contents and adopt the new dimensions.
//   - Stage 4: allocate a fresh buffer (zero or fill), copy the overlap row by row
//     under the new column count, then swap it in.
//
// Behavior highlights:
//   - Old data survives at the same (r,c) for r < min(rows), c < min(cols).
//   - Shrinking and growing the column count both re-stride rows.
//
// Errors:
//   - ErrInvalidArgument, ErrOverflow, ErrAllocation. On error the array is unchanged.
//
// Complexity:
//   - Time O(new r*c), Space O(new r*c).
func (a *Array[T]) ResizeFill(rows, cols int, fill T) error {
	if err := a.resize(rows, cols, &fill); err != nil {
		return arrayErrorf(ctxResizeFill, err, rows, cols)
	}

	return nil
}

func (a *Array[T]) resize(rows, cols int, fill *T) error {
	size, err := ComputeSize(rows, cols)
	if err != nil {
		return err
	}
	if rows == a.rows && cols == a.cols {
		return nil
	}

	if size == 0 {
		clear(a.data)
		a.data = a.data[:0]
		a.rows, a.cols = rows, cols
		return nil
	}

	var buf []T
	if fill != nil {
		buf, err = allocateFilled(size, *fill)
	} else {
		buf, err = allocate[T](size)
	}
	if err != nil {
		return err
	}

	if a.rows > 0 && a.cols > 0 {
		keepRows, keepCols := min(a.rows, rows), min(a.cols, cols)
		for r := range keepRows {
			copy(buf[r*cols:r*cols+keepCols], a.data[r*a.cols:r*a.cols+keepCols])
		}
	}
	a.data = buf
	a.rows, a.cols = rows, cols

	return nil
}
