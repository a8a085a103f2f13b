// SPDX-License-Identifier: MIT

package array2d

// Region is a non-owning rectangular window into an Array (shared storage).
// Unlike SubmatrixRowMajor it exposes every row of a narrow block.
// Valid only until the next reallocating call on the base array.
type Region[T any] struct {
	base   *Array[T] // underlying storage owner
	r0, c0 int       // top-left corner in base
	r, c   int       // region height, width
}

// Region returns the nr×nc window whose top-left corner is (sr,sc).
//
// Errors:
//   - ErrOutOfRange if any coordinate or extent is negative or the window
//     extends past the array.
//
// Complexity: O(1).
func (a *Array[T]) Region(sr, sc, nr, nc int) (*Region[T], error) {
	if sr < 0 || sc < 0 || nr < 0 || nc < 0 ||
		sr > a.rows || nr > a.rows-sr || sc > a.cols || nc > a.cols-sc {
		return nil, arrayErrorf(ctxRegion, ErrOutOfRange, sr, sc, nr, nc)
	}

	return &Region[T]{base: a, r0: sr, c0: sc, r: nr, c: nc}, nil
}

// Rows returns the region height.
func (g *Region[T]) Rows() int { return g.r }

// Cols returns the region width.
func (g *Region[T]) Cols() int { return g.c }

// Contiguous reports whether the region occupies one unbroken run of the base
// buffer: it spans full rows, has at most one row, or is empty.
func (g *Region[T]) Contiguous() bool {
	return g.r <= 1 || g.c == 0 || g.c == g.base.cols
}

// Row returns row i of the region as a slice aliasing the base buffer. Unchecked.
func (g *Region[T]) Row(i int) []T {
	assertIndex("region row", i, g.r)
	lo := (g.r0+i)*g.base.cols + g.c0
	hi := lo + g.c

	return g.base.data[lo:hi:hi]
}

// At reads element (i,j) of the region.
//
// Errors:
//   - ErrOutOfRange if (i,j) is outside the region.
func (g *Region[T]) At(i, j int) (T, error) {
	if i < 0 || i >= g.r || j < 0 || j >= g.c {
		var zero T
		return zero, arrayErrorf(ctxRegion, ErrOutOfRange, i, j)
	}

	return g.base.data[(g.r0+i)*g.base.cols+g.c0+j], nil
}

// Set writes v at region element (i,j).
//
// Errors:
//   - ErrOutOfRange if (i,j) is outside the region.
func (g *Region[T]) Set(i, j int, v T) error {
	if i < 0 || i >= g.r || j < 0 || j >= g.c {
		return arrayErrorf(ctxRegion, ErrOutOfRange, i, j)
	}
	g.base.data[(g.r0+i)*g.base.cols+g.c0+j] = v

	return nil
}

// Span returns the whole region as one slice aliasing the base buffer.
//
// Errors:
//   - ErrNonContiguous when the region is narrower than the base and spans
//     more than one row.
func (g *Region[T]) Span() ([]T, error) {
	if !g.Contiguous() {
		return nil, arrayErrorf(ctxRegion, ErrNonContiguous, g.r0, g.c0, g.r, g.c)
	}
	if g.r == 0 || g.c == 0 {
		return g.base.data[:0:0], nil
	}
	lo := g.r0*g.base.cols + g.c0
	hi := lo + g.r*g.c

	return g.base.data[lo:hi:hi], nil
}

// Clone copies the region into a new independent Array carrying the base options.
// Complexity: O(r*c).
func (g *Region[T]) Clone() *Array[T] {
	out := &Array[T]{rows: g.r, cols: g.c, data: make([]T, g.r*g.c), opts: g.base.opts}
	for i := range g.r {
		copy(out.data[i*g.c:(i+1)*g.c], g.Row(i))
	}

	return out
}
