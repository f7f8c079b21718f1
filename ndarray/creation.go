// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Creation operations: Zeros, Ones, Full, Empty, Arange, Linspace, Random,
//     Randn, Eye, Identity and the *Like family.
//   - Every creation consults the allocation tracker BEFORE allocating; a refusal
//     fails the call atomically (no partial array is ever returned).
//
// Determinism:
//   - Random/Randn are reproducible under WithSeed; otherwise clock-seeded.

package ndarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvnd/shape"
)

// Operation name constants for creation error wrapping.
const (
	opZeros    = "Zeros"
	opFull     = "Full"
	opArange   = "Arange"
	opLinspace = "Linspace"
	opRandom   = "Random"
	opRandn    = "Randn"
	opEye      = "Eye"
)

// allocate validates dims, consults the tracker, then allocates a zero buffer.
// Implementation:
//   - Stage 1: limitSize (rank, sign, overflow, MaxElements).
//   - Stage 2: tracker.TryReserve(size*8); refusal returns before make().
//   - Stage 3: make the zero-filled buffer.
func allocate(tag string, o Options, dims []int) (*NDArray, error) {
	n, err := limitSize(tag, dims)
	if err != nil {
		return nil, err
	}
	if err = o.reserve(tag, n); err != nil {
		return nil, err
	}

	return wrap(shape.Clone(dims), make([]float64, n)), nil
}

// Zeros returns a zero-filled array of the given shape.
// Errors: ErrInvalidShape, ErrAllocationDenied.
// Complexity: O(size).
func Zeros(dims []int, opts ...Option) (*NDArray, error) {
	return allocate(opZeros, gatherOptions(opts...), dims)
}

// Empty returns an array of the given shape. Go buffers are always zeroed, so
// Empty is Zeros under a name that states the caller will overwrite every element.
func Empty(dims []int, opts ...Option) (*NDArray, error) {
	return allocate("Empty", gatherOptions(opts...), dims)
}

// Ones returns an array of the given shape filled with 1.
func Ones(dims []int, opts ...Option) (*NDArray, error) {
	return fullTagged("Ones", dims, 1, opts...)
}

// Full returns an array of the given shape filled with v.
func Full(dims []int, v float64, opts ...Option) (*NDArray, error) {
	return fullTagged(opFull, dims, v, opts...)
}

func fullTagged(tag string, dims []int, v float64, opts ...Option) (*NDArray, error) {
	out, err := allocate(tag, gatherOptions(opts...), dims)
	if err != nil {
		return nil, err
	}
	if v != 0 {
		for i := range out.data {
			out.data[i] = v
		}
	}

	return out, nil
}

// ZerosLike returns Zeros(a.Shape()).
func ZerosLike(a *NDArray, opts ...Option) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("ZerosLike", ErrNilArray)
	}

	return Zeros(a.shape, opts...)
}

// OnesLike returns Ones(a.Shape()).
func OnesLike(a *NDArray, opts ...Option) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("OnesLike", ErrNilArray)
	}

	return Ones(a.shape, opts...)
}

// FullLike returns Full(a.Shape(), v).
func FullLike(a *NDArray, v float64, opts ...Option) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("FullLike", ErrNilArray)
	}

	return Full(a.shape, v, opts...)
}

// EmptyLike returns Empty(a.Shape()).
func EmptyLike(a *NDArray, opts ...Option) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("EmptyLike", ErrNilArray)
	}

	return Empty(a.shape, opts...)
}

// Arange returns the 1-D sequence start, start+step, ... strictly before stop.
// Implementation:
//   - Stage 1: reject step == 0 and non-finite arguments.
//   - Stage 2: n = max(0, ceil((stop-start)/step)).
//   - Stage 3: out[i] = start + i*step (no accumulated drift).
//
// Errors: ErrInvalidArgument, ErrAllocationDenied.
// Complexity: O(n).
func Arange(start, stop, step float64, opts ...Option) (*NDArray, error) {
	if step == 0 || isNonFinite(start) || isNonFinite(stop) || isNonFinite(step) {
		return nil, arrayErrorf(opArange, fmt.Errorf("start=%g stop=%g step=%g: %w", start, stop, step, ErrInvalidArgument))
	}
	cnt := math.Ceil((stop - start) / step)
	if cnt < 0 {
		cnt = 0
	}
	if cnt > float64(MaxElements) {
		return nil, arrayErrorf(opArange, fmt.Errorf("%g elements: %w", cnt, ErrInvalidArgument))
	}
	out, err := allocate(opArange, gatherOptions(opts...), []int{int(cnt)})
	if err != nil {
		return nil, err
	}
	for i := range out.data {
		out.data[i] = start + float64(i)*step
	}

	return out, nil
}

// Linspace returns num evenly spaced samples over [start, stop], both endpoints included.
// num == 0 yields an empty array, num == 1 yields [start].
// Errors: ErrInvalidArgument (num < 0), ErrAllocationDenied.
// Complexity: O(num).
func Linspace(start, stop float64, num int, opts ...Option) (*NDArray, error) {
	if num < 0 {
		return nil, arrayErrorf(opLinspace, fmt.Errorf("num=%d: %w", num, ErrInvalidArgument))
	}
	out, err := allocate(opLinspace, gatherOptions(opts...), []int{num})
	if err != nil {
		return nil, err
	}
	switch num {
	case 0:
	case 1:
		out.data[0] = start
	default:
		floats.Span(out.data, start, stop)
	}

	return out, nil
}

// Random returns samples from the uniform distribution on [0, 1).
// Use WithSeed/WithSource for reproducibility.
// Complexity: O(size).
func Random(dims []int, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	out, err := allocate(opRandom, o, dims)
	if err != nil {
		return nil, err
	}
	u := distuv.Uniform{Min: 0, Max: 1, Src: o.source()}
	for i := range out.data {
		out.data[i] = u.Rand()
	}

	return out, nil
}

// Randn returns samples from the standard normal distribution N(0, 1).
// Complexity: O(size).
func Randn(dims []int, opts ...Option) (*NDArray, error) {
	o := gatherOptions(opts...)
	out, err := allocate(opRandn, o, dims)
	if err != nil {
		return nil, err
	}
	nd := distuv.Normal{Mu: 0, Sigma: 1, Src: o.source()}
	for i := range out.data {
		out.data[i] = nd.Rand()
	}

	return out, nil
}

// Eye returns an n×m matrix with ones on the k-th diagonal (k > 0 above the main one).
// Errors: ErrInvalidShape (n or m negative), ErrAllocationDenied.
// Complexity: O(n*m).
func Eye(n, m, k int, opts ...Option) (*NDArray, error) {
	out, err := allocate(opEye, gatherOptions(opts...), []int{n, m})
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		j := i + k
		if j >= 0 && j < m {
			out.data[i*m+j] = 1
		}
	}

	return out, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int, opts ...Option) (*NDArray, error) {
	return Eye(n, n, 0, opts...)
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
