// SPDX-License-Identifier: MIT
// Package: signal
//
// Purpose:
//   - 1-D piecewise linear interpolation over strictly increasing sample
//     points, with configurable fill values outside the sampled range.

package signal

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvnd/ndarray"
)

// InterpOption configures Interp.
type InterpOption func(*interpOptions)

type interpOptions struct {
	left, right float64
}

// WithLeft sets the value returned for x < xp[0]. Default: fp[0].
func WithLeft(v float64) InterpOption {
	return func(o *interpOptions) { o.left = v }
}

// WithRight sets the value returned for x > xp[len(xp)-1]. Default: fp[len(fp)-1].
func WithRight(v float64) InterpOption {
	return func(o *interpOptions) { o.right = v }
}

// Interp evaluates the piecewise-linear interpolant through the sample points
// (xp, fp) at every element of x. The result has the shape of x.
//
// Rules:
//   - xp and fp are 1-D, non-empty, of equal length; xp is strictly increasing.
//   - x exactly at a sample point returns the sample value.
//   - NaN in x yields NaN.
//
// Errors: ErrNotVector, ErrEmptyInput, ErrLengthMismatch, ErrNotIncreasing.
// Complexity: O(len(xp) + size(x)·log len(xp)).
func Interp(x, xp, fp *ndarray.NDArray, opts ...InterpOption) (*ndarray.NDArray, error) {
	if x == nil {
		return nil, signalErrorf(ctxInterp, ndarray.ErrNilArray)
	}
	px, py, err := vectors(ctxInterp, xp, fp)
	if err != nil {
		return nil, err
	}
	if len(px) != len(py) {
		return nil, signalErrorf(ctxInterp, fmt.Errorf("xp %d, fp %d: %w", len(px), len(py), ErrLengthMismatch))
	}
	for i := 1; i < len(px); i++ {
		if !(px[i] > px[i-1]) {
			return nil, signalErrorf(ctxInterp, fmt.Errorf("xp[%d]: %w", i, ErrNotIncreasing))
		}
	}

	o := interpOptions{left: py[0], right: py[len(py)-1]}
	for _, opt := range opts {
		opt(&o)
	}

	return x.Apply(func(_ []int, v float64) float64 {
		return interpAt(px, py, v, o.left, o.right)
	}), nil
}

func interpAt(xp, fp []float64, v, left, right float64) float64 {
	n := len(xp)
	switch {
	case math.IsNaN(v):
		return math.NaN()
	case v < xp[0]:
		return left
	case v > xp[n-1]:
		return right
	}
	i := sort.SearchFloat64s(xp, v) // first xp[i] >= v
	if xp[i] == v {
		return fp[i]
	}
	x0, x1 := xp[i-1], xp[i]
	t := (v - x0) / (x1 - x0)

	return fp[i-1] + t*(fp[i]-fp[i-1])
}
