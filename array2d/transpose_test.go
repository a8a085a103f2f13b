// SPDX-License-Identifier: MIT

package array2d_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/dense2d/array2d"
	"github.com/stretchr/testify/require"
)

// TestTransposeSquare: a 3×3 holding 1..9 swaps (0,1) and (1,0).
func TestTransposeSquare(t *testing.T) {
	a := sequential(t, 3, 3)
	before := a.Get(1, 0)

	require.NoError(t, a.Transpose())
	require.Equal(t, before, a.Get(0, 1))
	require.Equal(t, 4, a.Get(0, 1))
	require.Equal(t, [][]int{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}, toRows(a))
}

// TestTransposeNonSquare fails and leaves the array untouched.
func TestTransposeNonSquare(t *testing.T) {
	a := sequential(t, 2, 3)
	err := a.Transpose()
	require.ErrorIs(t, err, array2d.ErrInvalidArgument)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, toRows(a))
}

// TestTransposeInvolution: transposing twice is the identity, across block
// boundaries and cache line sizes.
func TestTransposeInvolution(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 16, 17, 33} {
		for _, line := range []int{1, 8, 64} {
			t.Run(fmt.Sprintf("n=%d/line=%d", n, line), func(t *testing.T) {
				a := sequential(t, n, n, array2d.WithCacheLineBytes(line))
				orig := a.Clone()

				require.NoError(t, a.Transpose())
				for i := range n {
					for j := range n {
						require.Equal(t, orig.Get(i, j), a.Get(j, i))
					}
				}
				require.NoError(t, a.Transpose())
				require.True(t, array2d.Equal(orig, a))
			})
		}
	}
}

// TestTransposedAnyShape builds a new cols×rows array and keeps the original.
func TestTransposedAnyShape(t *testing.T) {
	for _, s := range [][2]int{{0, 3}, {3, 0}, {1, 5}, {2, 3}, {9, 20}, {20, 9}} {
		t.Run(fmt.Sprintf("%dx%d", s[0], s[1]), func(t *testing.T) {
			a := sequential(t, s[0], s[1], array2d.WithCacheLineBytes(32))
			orig := a.Clone()

			tr := a.Transposed()
			require.Equal(t, s[1], tr.Rows())
			require.Equal(t, s[0], tr.Cols())
			for i := range s[0] {
				for j := range s[1] {
					require.Equal(t, a.Get(i, j), tr.Get(j, i))
				}
			}
			require.True(t, array2d.Equal(orig, a))             // original untouched
			require.True(t, array2d.Equal(a, tr.Transposed()))  // involution
			require.Equal(t, 32, tr.Options().CacheLineBytes()) // options carried
		})
	}
}

// TestResizeGrowPreserves keeps the overlap and zero-fills new cells.
func TestResizeGrowPreserves(t *testing.T) {
	a := sequential(t, 2, 3)
	require.NoError(t, a.Resize(3, 4))
	require.Equal(t, [][]int{{1, 2, 3, 0}, {4, 5, 6, 0}, {0, 0, 0, 0}}, toRows(a))
}

// TestResizeFill uses the fill value for new cells only.
func TestResizeFill(t *testing.T) {
	a := sequential(t, 2, 2)
	require.NoError(t, a.ResizeFill(3, 3, -1))
	require.Equal(t, [][]int{{1, 2, -1}, {3, 4, -1}, {-1, -1, -1}}, toRows(a))
}

// TestResizeShrinkRestride keeps the top-left block under a new column count.
func TestResizeShrinkRestride(t *testing.T) {
	a := sequential(t, 3, 3)
	require.NoError(t, a.Resize(2, 2))
	require.Equal(t, [][]int{{1, 2}, {4, 5}}, toRows(a))

	require.NoError(t, a.Resize(1, 4))
	require.Equal(t, [][]int{{1, 2, 0, 0}}, toRows(a))
}

// TestResizeRoundTrip: growing then shrinking back restores the original.
func TestResizeRoundTrip(t *testing.T) {
	for _, s := range [][4]int{{2, 3, 5, 7}, {4, 4, 4, 9}, {3, 2, 6, 2}} {
		a := sequential(t, s[0], s[1])
		orig := a.Clone()
		require.NoError(t, a.Resize(s[2], s[3]))
		require.NoError(t, a.Resize(s[0], s[1]))
		require.True(t, array2d.Equal(orig, a), "%v", s)
	}
}

// TestResizeToZeroAndBack adopts zero-area shapes.
func TestResizeToZeroAndBack(t *testing.T) {
	a := sequential(t, 2, 2)
	require.NoError(t, a.Resize(0, 5))
	require.Equal(t, 0, a.Rows())
	require.Equal(t, 5, a.Cols())
	require.True(t, a.Empty())

	require.NoError(t, a.ResizeFill(1, 2, 8))
	require.Equal(t, [][]int{{8, 8}}, toRows(a))
}

// TestResizeFailureLeavesArrayUnchanged covers every failing path.
func TestResizeFailureLeavesArrayUnchanged(t *testing.T) {
	a := sequential(t, 2, 2)

	require.ErrorIs(t, a.Resize(-1, 2), array2d.ErrInvalidArgument)
	require.ErrorIs(t, a.ResizeFill(2, -1, 0), array2d.ErrInvalidArgument)

	err := a.Resize(math.MaxInt/2, math.MaxInt/2)
	require.ErrorIs(t, err, array2d.ErrOverflow)

	require.Equal(t, [][]int{{1, 2}, {3, 4}}, toRows(a))
}

// TestResizeSameShapeNoop does not reallocate.
func TestResizeSameShapeNoop(t *testing.T) {
	a := sequential(t, 2, 2)
	span := a.AsSpan()
	require.NoError(t, a.Resize(2, 2))
	span[0] = 9
	require.Equal(t, 9, a.Get(0, 0)) // same buffer
}
