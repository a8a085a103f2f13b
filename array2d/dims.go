// SPDX-License-Identifier: MIT
// Package array2d: dimension and size arithmetic.
//
// Purpose:
//   - Single source of truth for dimension validation and rows*cols computation.
//   - Every allocation-affecting operation (constructors, Reserve, Resize) passes
//     through ComputeSize and allocate, so overflow and oversize requests are
//     reported uniformly instead of surfacing as runtime panics.
//
// Determinism & Performance:
//   - Pure functions, O(1), no allocations except inside allocate itself.

package array2d

import (
	"fmt"
	"math"
	"runtime"
	"unsafe"
)

// maxAllocBytes bounds a single backing buffer. It mirrors the Go runtime's
// addressable heap limit on 64-bit platforms; requests above it can never succeed.
const maxAllocBytes = 1 << 47

// ValidateDimension returns n unchanged when it is a legal row or column count.
//
// Errors:
//   - ErrInvalidArgument when n < 0.
//
// Complexity: O(1).
func ValidateDimension(n int) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("dimension %d must be non-negative: %w", n, ErrInvalidArgument)
	}

	return n, nil
}

// ComputeSize returns rows*cols or ErrOverflow.
// MAIN DESCRIPTION:
//   - Overflow-safe element count for a rows×cols array.
//
// Implementation:
//   - Stage 1: validate both dimensions (ErrInvalidArgument on negatives).
//   - Stage 2: multiply as uint64 and verify with the division test
//     (rows>0 && cols>0 && product/rows != cols ⇒ wraparound).
//   - Stage 3: reject products that do not fit in int (slice lengths are int).
//
// Behavior highlights:
//   - Zero in either dimension is legal and yields 0.
//
// Errors:
//   - ErrInvalidArgument (negative dimension), ErrOverflow (product not representable).
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Call this before any make([]T, n) that depends on user dimensions.
func ComputeSize(rows, cols int) (int, error) {
	if _, err := ValidateDimension(rows); err != nil {
		return 0, err
	}
	if _, err := ValidateDimension(cols); err != nil {
		return 0, err
	}

	r, c := uint64(rows), uint64(cols)
	size := r * c
	if r > 0 && c > 0 && size/r != c {
		return 0, fmt.Errorf("%d x %d: %w", rows, cols, ErrOverflow)
	}
	if size > math.MaxInt {
		return 0, fmt.Errorf("%d x %d: %w", rows, cols, ErrOverflow)
	}

	return int(size), nil
}

// allocate returns a zeroed slice of n elements, or ErrAllocation when the byte
// size is beyond what the runtime can ever hand out. The runtime's recoverable
// makeslice panic is converted into ErrAllocation as well.
func allocate[T any](n int) (buf []T, err error) {
	var zero T
	if elem := uint64(unsafe.Sizeof(zero)); elem > 0 && uint64(n) > maxAllocBytes/elem {
		return nil, fmt.Errorf("%d elements of %d bytes: %w", n, elem, ErrAllocation)
	}
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(runtime.Error); ok {
				buf, err = nil, fmt.Errorf("%v: %w", rerr, ErrAllocation)
				return
			}
			panic(r)
		}
	}()

	return make([]T, n), nil
}

// allocateFilled is allocate followed by fillSlice(value).
func allocateFilled[T any](n int, value T) ([]T, error) {
	buf, err := allocate[T](n)
	if err != nil {
		return nil, err
	}
	fillSlice(buf, value)

	return buf, nil
}
