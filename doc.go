// Package dense2d is a generic, dense, row-major two-dimensional array for Go,
// with the iterator and view family that lets it plug into ordinary slice and
// sequence code.
//
// What is inside:
//
//	array2d/     Array[T]: construction, checked/unchecked access, bulk fill,
//	               reset, row ops, transpose, resize, random-access iterators,
//	               row/span/region views, equality and ordering
//	gridfile/    TOML grid documents ⇄ Array[T]
//	cmd/dense2d  CLI: show, transpose, resize, bench
//
// Design in one breath: one contiguous []T of rows*cols elements, element
// (r,c) at r*cols+c, size arithmetic that reports overflow instead of wrapping,
// and every view a borrow that dies with the next reallocation.
//
// Quick example:
//
//	a, _ := array2d.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	a.FillRow(0, 7)
//	t := a.Transposed()          // 3×2
//	for _, row := range t.RowSlices() {
//		fmt.Println(row)
//	}
//
// Not included: linear algebra. Transpose is a data-layout permutation only.
//
//	go get github.com/katalvlaran/dense2d
package dense2d
