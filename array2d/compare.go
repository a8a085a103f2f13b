// SPDX-License-Identifier: MIT

package array2d

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same shape and element-wise equal data.
// A 0×5 and a 5×0 array are not equal: shape is compared before data.
func Equal[T comparable](a, b *Array[T]) bool {
	return a.rows == b.rows && a.cols == b.cols && slices.Equal(a.data, b.data)
}

// EqualFunc is Equal with a caller-supplied element predicate.
func EqualFunc[T, U any](a *Array[T], b *Array[U], eq func(T, U) bool) bool {
	return a.rows == b.rows && a.cols == b.cols && slices.EqualFunc(a.data, b.data, eq)
}

// Compare orders arrays by rows, then cols, then row-major lexicographic data.
// Returns -1, 0 or +1.
//
// Behavior highlights:
//   - A 2×2 array sorts before any 2×3 array regardless of contents.
//   - Floating-point NaNs follow cmp.Compare (NaN sorts before every number).
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied three-way element comparator.
func CompareFunc[T, U any](a *Array[T], b *Array[U], cmpFn func(T, U) int) int {
	if c := cmp.Compare(a.rows, b.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(a.cols, b.cols); c != 0 {
		return c
	}

	return slices.CompareFunc(a.data, b.data, cmpFn)
}
