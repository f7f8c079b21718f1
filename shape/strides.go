// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//   - Row-major stride computation and the flat <-> coordinate bijection.
//   - Keep these loops allocation-light: the *Into variants reuse caller buffers
//     so that O(size) walks over an array do not allocate per element.
//
// Complexity quicksheet:
//   - Strides: O(ndim); FlatIndex: O(ndim); Unflatten: O(ndim).

package shape

// Strides returns the row-major strides of shape.
// strides[len-1] = 1 and strides[i] = strides[i+1]*shape[i+1].
// A zero-length axis yields zero strides to its left, which is harmless since
// such arrays have no elements to address.
// Complexity: O(ndim).
func Strides(shape []int) []int {
	st := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		st[i] = acc
		acc *= shape[i]
	}

	return st
}

// FlatIndex maps a coordinate to its offset in the flat buffer: Σ coord[d]*strides[d].
// The caller guarantees 0 ≤ coord[d] < shape[d]; no bounds are checked here.
// Complexity: O(ndim).
func FlatIndex(strides, coord []int) int {
	off := 0
	for d, c := range coord {
		off += c * strides[d]
	}

	return off
}

// Unflatten maps a flat offset back to its coordinate (repeated div/mod).
// Complexity: O(ndim), allocates the result.
func Unflatten(shape, strides []int, offset int) []int {
	coord := make([]int, len(shape))
	UnflattenInto(coord, strides, offset)

	return coord
}

// UnflattenInto is the allocation-free form of Unflatten; dst must have len(strides).
// Implementation:
//   - Stage 1: walk axes from outermost to innermost.
//   - Stage 2: coord[d] = rem / strides[d]; rem %= strides[d].
//
// Notes:
//   - A zero stride only occurs next to an empty axis; the coordinate is then 0.
func UnflattenInto(dst, strides []int, offset int) {
	rem := offset
	for d, s := range strides {
		if s == 0 {
			dst[d] = 0
			continue
		}
		dst[d] = rem / s
		rem %= s
	}
}

// Next advances coord to the next row-major position within shape and reports
// whether a next position exists. It is the odometer used by operations that
// walk a target shape while maintaining secondary offsets.
// Complexity: amortized O(1) per call.
func Next(coord, shape []int) bool {
	for d := len(shape) - 1; d >= 0; d-- {
		coord[d]++
		if coord[d] < shape[d] {
			return true
		}
		coord[d] = 0
	}

	return false
}
