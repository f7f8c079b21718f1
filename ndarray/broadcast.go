// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Materializing broadcast: every broadcast result is a fresh, independently
//     mutable array (no strided views), trading memory for simplicity.
//
// Complexity:
//   - O(size_out * ndim) per materialization; equal shapes short-circuit to a copy.

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvnd/shape"
)

const (
	opBroadcastTo     = "BroadcastTo"
	opBroadcastArrays = "BroadcastArrays"
)

// broadcastData returns a's values laid out over target (which must be a valid
// broadcast of a.shape). Source coordinates are recovered by zeroing every axis
// where the source length is 1.
func broadcastData(a *NDArray, target []int) []float64 {
	n := shape.Size(target)
	out := make([]float64, n)
	if shape.Equal(a.shape, target) {
		copy(out, a.data)
		return out
	}
	if n == 0 {
		return out
	}
	st := shape.BroadcastStrides(a.shape, target)
	coord := make([]int, len(target))
	for i := 0; i < n; i++ {
		out[i] = a.data[shape.FlatIndex(st, coord)]
		shape.Next(coord, target)
	}

	return out
}

// BroadcastTo materializes a over target.
// Implementation:
//   - Stage 1: validate target as a shape and require Broadcast(a.shape, target) == target.
//   - Stage 2: copy every source value into each target coordinate that maps to it.
//
// Errors:
//   - ErrNilArray, ErrInvalidShape, ErrNotBroadcastable.
//
// Complexity:
//   - Time O(size_out*ndim), Space O(size_out).
func BroadcastTo(a *NDArray, target []int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opBroadcastTo, ErrNilArray)
	}
	if _, err := shape.Validate(target); err != nil {
		return nil, shapeErrorf(opBroadcastTo, err)
	}
	got, err := shape.Broadcast(a.shape, target)
	if err != nil {
		return nil, arrayErrorf(opBroadcastTo, err)
	}
	if !shape.Equal(got, target) {
		return nil, arrayErrorf(opBroadcastTo, fmt.Errorf("%v onto %v: %w", a.shape, target, ErrNotBroadcastable))
	}

	return wrap(shape.Clone(target), broadcastData(a, target)), nil
}

// BroadcastArrays broadcasts every operand to their common shape.
// Errors: ErrNilArray, ErrNotBroadcastable.
func BroadcastArrays(arrays ...*NDArray) ([]*NDArray, error) {
	if err := validateNotNil(arrays...); err != nil {
		return nil, arrayErrorf(opBroadcastArrays, err)
	}
	shapes := make([][]int, len(arrays))
	for i, a := range arrays {
		shapes[i] = a.shape
	}
	target, err := shape.BroadcastMany(shapes...)
	if err != nil {
		return nil, arrayErrorf(opBroadcastArrays, err)
	}
	out := make([]*NDArray, len(arrays))
	for i, a := range arrays {
		out[i] = wrap(shape.Clone(target), broadcastData(a, target))
	}

	return out, nil
}

// broadcastPair resolves the common shape of a and b and materializes both.
func broadcastPair(a, b *NDArray) ([]int, []float64, []float64, error) {
	target, err := shape.Broadcast(a.shape, b.shape)
	if err != nil {
		return nil, nil, nil, err
	}

	return target, broadcastData(a, target), broadcastData(b, target), nil
}
