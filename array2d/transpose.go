// SPDX-License-Identifier: MIT

package array2d

import "fmt"

// Transpose permutes a square array in place so that (i,j) and (j,i) swap.
// MAIN DESCRIPTION:
//   - Cache-blocked in-place transpose; a pure data-layout permutation.
//
// Implementation:
//   - Stage 1: reject non-square shapes before touching any element.
//   - Stage 2: walk square blocks of edge bs = CacheLineBytes/sizeof(T) on and
//     above the diagonal (block column j starts at block row i).
//   - Stage 3: inside a block swap (bi,bj) with (bj,bi); diagonal blocks start at
//     bj = bi+1 so each pair is swapped exactly once.
//
// Behavior highlights:
//   - Transposing twice restores the original.
//   - 0×0 and 1×1 are no-ops.
//
// Errors:
//   - ErrInvalidArgument if Rows() != Cols(); the array is left untouched.
//
// Complexity:
//   - Time O(n²), Space O(1).
func (a *Array[T]) Transpose() error {
	if !a.IsSquare() {
		return arrayErrorf(ctxTranspose,
			fmt.Errorf("%w: in-place transpose needs a square array", ErrInvalidArgument),
			a.rows, a.cols)
	}

	n := a.rows
	bs := blockSize[T](a.opts)
	d := a.data
	for i := 0; i < n; i += bs {
		iEnd := min(i+bs, n)
		for j := i; j < n; j += bs {
			jEnd := min(j+bs, n)
			for bi := i; bi < iEnd; bi++ {
				start := j
				if i == j {
					start = bi + 1
				}
				for bj := start; bj < jEnd; bj++ {
					d[bi*n+bj], d[bj*n+bi] = d[bj*n+bi], d[bi*n+bj]
				}
			}
		}
	}

	return nil
}

// Transposed returns a new cols×rows array t with t(j,i) == a(i,j).
// Works for any shape; the receiver is not modified. Options are carried over.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (a *Array[T]) Transposed() *Array[T] {
	r, c := a.rows, a.cols
	out := &Array[T]{rows: c, cols: r, data: make([]T, len(a.data)), opts: a.opts}

	bs := blockSize[T](a.opts)
	for i := 0; i < r; i += bs {
		iEnd := min(i+bs, r)
		for j := 0; j < c; j += bs {
			jEnd := min(j+bs, c)
			for bi := i; bi < iEnd; bi++ {
				for bj := j; bj < jEnd; bj++ {
					out.data[bj*r+bi] = a.data[bi*c+bj]
				}
			}
		}
	}

	return out
}
