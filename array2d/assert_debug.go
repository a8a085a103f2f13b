// SPDX-License-Identifier: MIT

//go:build array2d_debug

package array2d

import (
	"fmt"
	"unsafe"
)

// debugAssertions enables precondition checks on the unchecked accessors.
const debugAssertions = true

func assertIndex(what string, i, limit int) {
	if i < 0 || i >= limit {
		panic(fmt.Sprintf("array2d: %s index %d out of range [0,%d)", what, i, limit))
	}
}

func assertSameBuffer[T any](a, b []T) {
	if unsafe.SliceData(a) != unsafe.SliceData(b) {
		panic("array2d: iterators from different buffers")
	}
}
