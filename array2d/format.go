// SPDX-License-Identifier: MIT

package array2d

import (
	"fmt"
	"strings"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// String renders the array one row per line, e.g. "[1, 2]\n[3, 4]\n".
// Elements use the %v verb. Intended for diagnostics and tests.
// Complexity: O(r*c).
func (a *Array[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < a.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * a.cols
		for j = 0; j < a.cols; j++ {
			fmt.Fprintf(&b, "%v", a.data[base+j])
			if j+1 < a.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
