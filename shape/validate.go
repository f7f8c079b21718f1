// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//   - Single source of truth for shape validation and small shape algebra
//     (size, equality, cloning, axis checks, axis removal/insertion).
//   - Validators return plain sentinels wrapped with their own tag.

package shape

import "math"

// Validate checks rank ≥ 1, every dim ≥ 0, and that the product fits in an int.
// Returns the element count on success.
// Complexity: O(ndim).
func Validate(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, shapeErrorf("Validate", ErrEmptyShape)
	}
	n := 1
	for _, d := range shape {
		if d < 0 {
			return 0, shapeErrorf("Validate", ErrNegativeDim)
		}
		if d != 0 && n > math.MaxInt/d {
			return 0, shapeErrorf("Validate", ErrTooLarge)
		}
		n *= d
	}

	return n, nil
}

// Size returns product(shape) without validation (1 for rank 0).
func Size(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}

// Equal reports whether two shapes are identical.
func Equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of shape.
func Clone(shape []int) []int {
	out := make([]int, len(shape))
	copy(out, shape)

	return out
}

// CheckAxis verifies 0 ≤ axis < ndim.
func CheckAxis(axis, ndim int) error {
	if axis < 0 || axis >= ndim {
		return shapeErrorf("CheckAxis", ErrAxisOutOfRange)
	}

	return nil
}

// RemoveAxis returns shape without the given axis; a rank-0 result becomes [1].
// The caller has already validated axis.
func RemoveAxis(shape []int, axis int) []int {
	out := make([]int, 0, len(shape))
	out = append(out, shape[:axis]...)
	out = append(out, shape[axis+1:]...)
	if len(out) == 0 {
		return []int{1}
	}

	return out
}

// InsertAxis returns shape with a new axis of length n at position axis (0 ≤ axis ≤ ndim).
func InsertAxis(shape []int, axis, n int) []int {
	out := make([]int, 0, len(shape)+1)
	out = append(out, shape[:axis]...)
	out = append(out, n)
	out = append(out, shape[axis:]...)

	return out
}

// LaneGeometry splits shape around axis into (outer, n, inner):
// outer = product(shape[:axis]), n = shape[axis], inner = product(shape[axis+1:]).
// A lane (o, i) starts at o*n*inner + i and advances by inner.
// Complexity: O(ndim).
func LaneGeometry(shape []int, axis int) (outer, n, inner int) {
	outer, inner = 1, 1
	for d := 0; d < axis; d++ {
		outer *= shape[d]
	}
	for d := axis + 1; d < len(shape); d++ {
		inner *= shape[d]
	}

	return outer, shape[axis], inner
}
