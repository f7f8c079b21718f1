// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Joining (Concatenate, Stack) and splitting (Split, SplitAt) along an axis.
//
// Layout note:
//   - In row-major order, the elements of one outer index o along axis form a
//     contiguous block of shape[axis]*inner values, so joins are block copies.

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvnd/shape"
)

const (
	opConcatenate = "Concatenate"
	opStack       = "Stack"
	opSplit       = "Split"
)

// Concatenate joins arrays along an existing axis. All operands must share rank
// and every axis length except axis.
// Implementation:
//   - Stage 1: validate operands, rank, axis and the non-axis lengths.
//   - Stage 2: for every outer index copy each operand's contiguous block in turn.
//
// Errors:
//   - ErrInvalidArgument (no arrays), ErrNilArray, ErrAxisOutOfRange, ErrShapeMismatch.
//
// Complexity: O(size_out).
func Concatenate(arrays []*NDArray, axis int) (*NDArray, error) {
	if len(arrays) == 0 {
		return nil, arrayErrorf(opConcatenate, fmt.Errorf("no arrays: %w", ErrInvalidArgument))
	}
	if err := validateNotNil(arrays...); err != nil {
		return nil, arrayErrorf(opConcatenate, err)
	}
	first := arrays[0]
	if err := validateAxis(first, axis); err != nil {
		return nil, arrayErrorf(opConcatenate, err)
	}
	total := 0
	for k, a := range arrays {
		if len(a.shape) != len(first.shape) {
			return nil, arrayErrorf(opConcatenate, fmt.Errorf("array %d has rank %d, want %d: %w", k, len(a.shape), len(first.shape), ErrShapeMismatch))
		}
		for d := range a.shape {
			if d != axis && a.shape[d] != first.shape[d] {
				return nil, arrayErrorf(opConcatenate, fmt.Errorf("array %d shape %v vs %v on axis %d: %w", k, a.shape, first.shape, d, ErrShapeMismatch))
			}
		}
		total += a.shape[axis]
	}
	outShape := shape.Clone(first.shape)
	outShape[axis] = total
	out := zerosOf(outShape)
	outer, _, inner := shape.LaneGeometry(first.shape, axis)
	pos := 0
	for o := 0; o < outer; o++ {
		for _, a := range arrays {
			blk := a.shape[axis] * inner
			pos += copy(out.data[pos:], a.data[o*blk:(o+1)*blk])
		}
	}

	return out, nil
}

// Stack joins same-shaped arrays along a new axis ∈ [0, ndim] whose length is len(arrays).
// Errors: ErrInvalidArgument (no arrays), ErrNilArray, ErrAxisOutOfRange, ErrShapeMismatch.
// Complexity: O(size_out).
func Stack(arrays []*NDArray, axis int) (*NDArray, error) {
	if len(arrays) == 0 {
		return nil, arrayErrorf(opStack, fmt.Errorf("no arrays: %w", ErrInvalidArgument))
	}
	if err := validateNotNil(arrays...); err != nil {
		return nil, arrayErrorf(opStack, err)
	}
	first := arrays[0]
	for k, a := range arrays {
		if !shape.Equal(a.shape, first.shape) {
			return nil, arrayErrorf(opStack, fmt.Errorf("array %d shape %v vs %v: %w", k, a.shape, first.shape, ErrShapeMismatch))
		}
	}
	expanded := make([]*NDArray, len(arrays))
	for k, a := range arrays {
		e, err := ExpandDims(a, axis)
		if err != nil {
			return nil, arrayErrorf(opStack, err)
		}
		expanded[k] = e
	}

	return Concatenate(expanded, axis)
}

// sliceAxis returns the elements [start, stop) along axis.
func sliceAxis(a *NDArray, axis, start, stop int) *NDArray {
	idx := make([]int, stop-start)
	for k := range idx {
		idx[k] = start + k
	}

	return remapAxis(a, axis, idx, nil)
}

// Split divides a into sections equal parts along axis.
// Errors:
//   - ErrNilArray, ErrAxisOutOfRange, ErrInvalidArgument (sections ≤ 0 or not a divisor).
//
// Complexity: O(size).
func Split(a *NDArray, sections, axis int) ([]*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opSplit, err)
	}
	n := a.shape[axis]
	if sections <= 0 || n%sections != 0 {
		return nil, arrayErrorf(opSplit, fmt.Errorf("%d sections of axis length %d: %w", sections, n, ErrInvalidArgument))
	}
	step := n / sections
	out := make([]*NDArray, sections)
	for s := range out {
		out[s] = sliceAxis(a, axis, s*step, (s+1)*step)
	}

	return out, nil
}

// SplitAt cuts a along axis before every index in indices, yielding len(indices)+1
// parts. Indices beyond the axis are clamped, so trailing parts may be empty.
// Errors:
//   - ErrNilArray, ErrAxisOutOfRange, ErrIndexOutOfRange (negative or decreasing cut).
//
// Complexity: O(size).
func SplitAt(a *NDArray, indices []int, axis int) ([]*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opSplit, err)
	}
	n := a.shape[axis]
	out := make([]*NDArray, 0, len(indices)+1)
	prev := 0
	for _, c := range indices {
		if c < prev {
			return nil, arrayErrorf(opSplit, fmt.Errorf("cut %d after %d: %w", c, prev, ErrIndexOutOfRange))
		}
		if c > n {
			c = n
		}
		out = append(out, sliceAxis(a, axis, prev, c))
		prev = c
	}
	out = append(out, sliceAxis(a, axis, prev, n))

	return out, nil
}
