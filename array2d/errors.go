// SPDX-License-Identifier: MIT
// Package array2d: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the array2d
// package. Every fallible operation returns one of these (possibly wrapped with
// call-site context) and callers MUST match them via errors.Is.
// Unchecked accessors never return errors; their misuse is a precondition violation.

package array2d

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NOTE ON WRAPPING
// ----------------
// Every message is prefixed with "array2d: ...". Detection sites wrap the sentinel
// as "Array.<Method>(args): %w" so logs show where it happened while errors.Is
// still matches the sentinel.

var (
	// ErrInvalidArgument is returned for a negative dimension, a ragged nested
	// literal, a source sequence of the wrong length, or an in-place transpose of a
	// non-square array.
	ErrInvalidArgument = errors.New("array2d: invalid argument")

	// ErrOverflow is returned when rows*cols cannot be represented without wraparound.
	ErrOverflow = errors.New("array2d: size calculation overflow")

	// ErrOutOfRange indicates that a row or column index is outside its bound.
	// Checked accessors (At/SetAt/RefAt, Region.At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("array2d: index out of range")

	// ErrAllocation is returned when the backing storage cannot be obtained.
	ErrAllocation = errors.New("array2d: allocation failure")

	// ErrNonContiguous is returned when a sub-region narrower than a full row is
	// requested as a single contiguous span.
	ErrNonContiguous = errors.New("array2d: region is not contiguous")
)

// ---------- error context tags ----------

const (
	ctxNew        = "New"
	ctxNewFilled  = "NewFilled"
	ctxFromRows   = "FromRows"
	ctxFromSlice  = "FromSlice"
	ctxCollect    = "Collect"
	ctxAt         = "At"
	ctxSetAt      = "SetAt"
	ctxRefAt      = "RefAt"
	ctxReserve    = "Reserve"
	ctxResize     = "Resize"
	ctxResizeFill = "ResizeFill"
	ctxTranspose  = "Transpose"
	ctxRegion     = "Region"
	ctxInduced    = "Induced"
)

// arrayErrorf wraps a sentinel with the method tag and its integer arguments,
// e.g. "Array.At(2,7): array2d: index out of range".
func arrayErrorf(method string, err error, args ...int) error {
	switch len(args) {
	case 0:
		return fmt.Errorf("Array.%s: %w", method, err)
	case 1:
		return fmt.Errorf("Array.%s(%d): %w", method, args[0], err)
	case 2:
		return fmt.Errorf("Array.%s(%d,%d): %w", method, args[0], args[1], err)
	default:
		parts := make([]string, len(args))
		for i, v := range args {
			parts[i] = strconv.Itoa(v)
		}
		return fmt.Errorf("Array.%s(%s): %w", method, strings.Join(parts, ","), err)
	}
}
