// SPDX-License-Identifier: MIT

package array2d

import (
	"reflect"
	"unsafe"
)

// ResetMode selects the byte pattern written by Reset.
type ResetMode int8

const (
	// ResetZero sets every element to its zero value.
	ResetZero ResetMode = 0
	// ResetOnes sets every bit of every element (0xFF bytes).
	ResetOnes ResetMode = -1
	// ResetSafeMax sets every byte to 0x3F: a large value that still leaves
	// headroom for additions without signed overflow (e.g. 0x3F3F3F3F for int32).
	ResetSafeMax ResetMode = 0x3F
)

// Reset overwrites the whole buffer with the byte pattern selected by mode.
// MAIN DESCRIPTION:
//   - Byte-level bulk reset for plain numeric element types.
//
// Implementation:
//   - Stage 1: ResetZero ⇒ clear(buffer) for any T.
//   - Stage 2: T made only of integers, floats, complex values and arrays/structs
//     of those ⇒ fill the raw bytes with byte(mode).
//   - Stage 3: any other T (bool, strings, pointers, slices, maps, interfaces...)
//     ⇒ zero value per element; a raw bit pattern would not be a valid value.
//
// Behavior highlights:
//   - Never fails.
//   - ResetOnes on float types produces NaN bit patterns, as the bytes dictate.
//
// Complexity:
//   - Time O(r*c*sizeof(T)), Space O(1).
func (a *Array[T]) Reset(mode ResetMode) {
	if len(a.data) == 0 {
		return
	}
	if mode == ResetZero {
		clear(a.data)
		return
	}

	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 || !isPlainData(reflect.TypeFor[T]()) {
		clear(a.data)
		return
	}
	raw := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(a.data))), uintptr(len(a.data))*size)
	fillSlice(raw, byte(mode))
}

// isPlainData reports whether every bit pattern of t is a valid value of t.
func isPlainData(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPlainData(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isPlainData(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
