// Package array2d provides Array[T], a dense row-major two-dimensional array,
// and the random-access iterators and views derived from its buffer.
//
// The array owns exactly one contiguous slice of Rows()*Cols() elements;
// element (r,c) always lives at offset r*Cols()+c. Rows are therefore plain Go
// slices, and the whole grid is one slice, which keeps cache behaviour and
// interop with slices/iter simple.
//
// Two access tiers, never merged:
//
//	Get/Set/Ref/Row     unchecked (debug builds with -tags array2d_debug assert bounds)
//	At/SetAt/RefAt      checked, return ErrOutOfRange
//
// Views and iterators borrow the buffer:
//
//	AsSpan()                      whole buffer
//	Row(r), RowSlices()           one row / every row
//	SubmatrixRowMajor(...)        full-width blocks as one span, else the first row
//	Region(...)                   any rectangle, row by row
//	Begin/End, CBegin/CEnd,       random-access iterators (read-write, read-only,
//	RBegin/REnd, CRBegin/CREnd    and reverse)
//
// Any call that may reallocate (Resize, ResizeFill, Reserve, ShrinkToFit, Move,
// Swap) invalidates every outstanding view and iterator.
//
// Errors are sentinel values (ErrInvalidArgument, ErrOverflow, ErrOutOfRange,
// ErrAllocation, ErrNonContiguous) wrapped with call-site context; match them
// with errors.Is. Resize and Transpose leave the array untouched on failure.
//
// Array is not safe for concurrent mutation. FillParallel is the only
// operation that starts goroutines, and it joins them before returning.
//
// Example:
//
//	a, _ := array2d.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	t := a.Transposed()  // 3×2
//	_ = a.Resize(3, 3)   // keeps the 2×3 overlap, zero-fills the rest
//	fmt.Print(t)
package array2d
