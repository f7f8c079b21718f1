// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Shape rewrites (Reshape, Flatten, Squeeze, ExpandDims) that keep the
//     row-major buffer order, and Transpose which permutes it.
//   - Every result owns a fresh buffer.

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvnd/shape"
)

const (
	opReshape    = "Reshape"
	opSqueeze    = "Squeeze"
	opExpandDims = "ExpandDims"
	opTranspose  = "Transpose"
)

// inferShape resolves at most one -1 entry so that product(dims) == size.
func inferShape(dims []int, size int) ([]int, error) {
	out := shape.Clone(dims)
	unknown := -1
	known := 1
	for i, d := range out {
		switch {
		case d == -1 && unknown >= 0:
			return nil, fmt.Errorf("more than one -1 in %v: %w", dims, ErrInvalidShape)
		case d == -1:
			unknown = i
		case d < 0:
			return nil, fmt.Errorf("%v: %w: %w", dims, ErrInvalidShape, shape.ErrNegativeDim)
		default:
			known *= d
		}
	}
	if unknown >= 0 {
		if known == 0 || size%known != 0 {
			return nil, fmt.Errorf("cannot infer -1 in %v for size %d: %w", dims, size, ErrSizeMismatch)
		}
		out[unknown] = size / known
	}

	return out, nil
}

// Reshape returns a copy of a with a new shape of the same size. One entry may
// be -1 and is inferred.
// Errors:
//   - ErrNilArray, ErrInvalidShape, ErrSizeMismatch.
//
// Complexity: O(size).
func Reshape(a *NDArray, dims ...int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opReshape, ErrNilArray)
	}
	if len(dims) == 0 {
		return nil, shapeErrorf(opReshape, shape.ErrEmptyShape)
	}
	resolved, err := inferShape(dims, len(a.data))
	if err != nil {
		return nil, arrayErrorf(opReshape, err)
	}
	n, err := shape.Validate(resolved)
	if err != nil {
		return nil, shapeErrorf(opReshape, err)
	}
	if n != len(a.data) {
		return nil, arrayErrorf(opReshape, fmt.Errorf("%v (size %d) to %v (size %d): %w", a.shape, len(a.data), resolved, n, ErrSizeMismatch))
	}

	return wrap(resolved, a.Data()), nil
}

// Flatten returns a 1-D copy.
// Errors: ErrNilArray.
func Flatten(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("Flatten", ErrNilArray)
	}

	return FromSlice(a.data), nil
}

// Ravel is Flatten.
func Ravel(a *NDArray) (*NDArray, error) { return Flatten(a) }

// Squeeze drops every axis of length 1; when nothing remains the shape is [1].
// Errors: ErrNilArray.
func Squeeze(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opSqueeze, ErrNilArray)
	}
	dims := make([]int, 0, len(a.shape))
	for _, d := range a.shape {
		if d != 1 {
			dims = append(dims, d)
		}
	}
	if len(dims) == 0 {
		dims = append(dims, 1)
	}

	return wrap(dims, a.Data()), nil
}

// SqueezeAxis drops one axis that must have length 1.
// Errors: ErrNilArray, ErrAxisOutOfRange, ErrInvalidArgument (length != 1).
func SqueezeAxis(a *NDArray, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opSqueeze, err)
	}
	if a.shape[axis] != 1 {
		return nil, arrayErrorf(opSqueeze, fmt.Errorf("axis %d has length %d: %w", axis, a.shape[axis], ErrInvalidArgument))
	}

	return wrap(shape.RemoveAxis(a.shape, axis), a.Data()), nil
}

// ExpandDims inserts a length-1 axis at position axis ∈ [0, ndim].
// Errors: ErrNilArray, ErrAxisOutOfRange.
func ExpandDims(a *NDArray, axis int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opExpandDims, ErrNilArray)
	}
	if err := shape.CheckAxis(axis, len(a.shape)+1); err != nil {
		return nil, arrayErrorf(opExpandDims, fmt.Errorf("axis %d for rank %d: %w", axis, len(a.shape), err))
	}

	return wrap(shape.InsertAxis(a.shape, axis, 1), a.Data()), nil
}

// Transpose permutes the axes. With no axes the order is reversed; otherwise
// axes must be a permutation of 0..ndim-1 and out.shape[i] == a.shape[axes[i]].
// Implementation:
//   - Stage 1: build the permutation and check it.
//   - Stage 2: permute the source strides.
//   - Stage 3: walk the output coordinates with an odometer, reading the source
//     at Σ coord[i]*permStrides[i].
//
// Errors:
//   - ErrNilArray, ErrInvalidArgument (not a permutation).
//
// Complexity: O(size*ndim).
func Transpose(a *NDArray, axes ...int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opTranspose, ErrNilArray)
	}
	nd := len(a.shape)
	perm := axes
	if len(perm) == 0 {
		perm = make([]int, nd)
		for i := range perm {
			perm[i] = nd - 1 - i
		}
	}
	if err := checkPermutation(perm, nd); err != nil {
		return nil, arrayErrorf(opTranspose, err)
	}
	src := shape.Strides(a.shape)
	outShape := make([]int, nd)
	ps := make([]int, nd)
	for i, p := range perm {
		outShape[i] = a.shape[p]
		ps[i] = src[p]
	}
	out := zerosOf(outShape)
	if len(out.data) == 0 {
		return out, nil
	}
	coord := make([]int, nd)
	for i := range out.data {
		out.data[i] = a.data[shape.FlatIndex(ps, coord)]
		shape.Next(coord, outShape)
	}

	return out, nil
}

func checkPermutation(perm []int, nd int) error {
	if len(perm) != nd {
		return fmt.Errorf("axes %v for rank %d: %w", perm, nd, ErrInvalidArgument)
	}
	seen := make([]bool, nd)
	for _, p := range perm {
		if p < 0 || p >= nd || seen[p] {
			return fmt.Errorf("axes %v is not a permutation: %w", perm, ErrInvalidArgument)
		}
		seen[p] = true
	}

	return nil
}

// SwapAxes exchanges two axes.
// Errors: ErrNilArray, ErrAxisOutOfRange.
func SwapAxes(a *NDArray, i, j int) (*NDArray, error) {
	if err := validateAxis(a, i); err != nil {
		return nil, arrayErrorf("SwapAxes", err)
	}
	if err := validateAxis(a, j); err != nil {
		return nil, arrayErrorf("SwapAxes", err)
	}
	perm := make([]int, len(a.shape))
	for k := range perm {
		perm[k] = k
	}
	perm[i], perm[j] = perm[j], perm[i]

	return Transpose(a, perm...)
}
