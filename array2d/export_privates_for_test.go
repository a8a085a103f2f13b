// SPDX-License-Identifier: MIT

package array2d

// Test bridge: exposes unexported helpers to array2d_test only.

import "reflect"

// BlockSize_TestOnly reports the transpose block edge chosen for T under opts.
func BlockSize_TestOnly[T any](opts ...Option) int { return blockSize[T](gatherOptions(opts)) }

// IsPlainData_TestOnly reports whether Reset may write raw bytes into T.
func IsPlainData_TestOnly[T any]() bool { return isPlainData(reflect.TypeFor[T]()) }

// DebugAssertions_TestOnly reports whether the array2d_debug build tag is set.
const DebugAssertions_TestOnly = debugAssertions
