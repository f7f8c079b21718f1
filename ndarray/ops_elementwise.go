// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Elementwise selection and sanitizing kernels: Where, Clip, NanToNum,
//     IsClose, AllClose.
//   - Fixed flat loop order over freshly broadcast buffers; no hidden allocations
//     beyond the output.

package ndarray

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvnd/shape"
)

// Where selects x[i] where cond[i] is non-zero and y[i] elsewhere, after
// broadcasting all three operands to one shape.
// Errors: ErrNilArray, ErrNotBroadcastable.
// Complexity: O(size_out*ndim).
func Where(cond, x, y *NDArray) (*NDArray, error) {
	const op = "Where"
	if err := validateNotNil(cond, x, y); err != nil {
		return nil, arrayErrorf(op, err)
	}
	target, err := shape.BroadcastMany(cond.shape, x.shape, y.shape)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	c := broadcastData(cond, target)
	xs := broadcastData(x, target)
	ys := broadcastData(y, target)
	for i, v := range c {
		if !truthy(v) {
			xs[i] = ys[i]
		}
	}

	return wrap(target, xs), nil
}

// Clip limits every element to [lo, hi]. Swapped bounds are reordered; NaN
// elements stay NaN.
// Errors: ErrNilArray, ErrInvalidArgument (NaN bound).
// Complexity: O(size).
func Clip(a *NDArray, lo, hi float64) (*NDArray, error) {
	const op = "Clip"
	if a == nil {
		return nil, arrayErrorf(op, ErrNilArray)
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return nil, arrayErrorf(op, fmt.Errorf("bounds [%g, %g]: %w", lo, hi, ErrInvalidArgument))
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	out := zerosOf(a.Shape())
	for i, v := range a.data {
		switch {
		case v < lo:
			v = lo
		case v > hi:
			v = hi
		}
		out.data[i] = v
	}

	return out, nil
}

// NanToNum replaces NaN with nan, +Inf with posInf and -Inf with negInf.
// Errors: ErrNilArray.
// Complexity: O(size).
func NanToNum(a *NDArray, nan, posInf, negInf float64) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("NanToNum", ErrNilArray)
	}
	out := zerosOf(a.Shape())
	for i, v := range a.data {
		switch {
		case math.IsNaN(v):
			v = nan
		case math.IsInf(v, 1):
			v = posInf
		case math.IsInf(v, -1):
			v = negInf
		}
		out.data[i] = v
	}

	return out, nil
}

// closeTo is |a-b| <= atol + rtol*|b|, with equal infinities close and NaN never close.
func closeTo(a, b, rtol, atol float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

func validateTolerances(rtol, atol float64) error {
	if rtol < 0 || atol < 0 || math.IsNaN(rtol) || math.IsNaN(atol) {
		return fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrInvalidArgument)
	}

	return nil
}

// IsClose marks with 1 the broadcast positions where a and b agree within tolerance.
// Errors: ErrNilArray, ErrInvalidArgument (negative/NaN tolerance), ErrNotBroadcastable.
// Complexity: O(size_out*ndim).
func IsClose(a, b *NDArray, rtol, atol float64) (*NDArray, error) {
	const op = "IsClose"
	if err := validateNotNil(a, b); err != nil {
		return nil, arrayErrorf(op, err)
	}
	if err := validateTolerances(rtol, atol); err != nil {
		return nil, arrayErrorf(op, err)
	}
	target, x, y, err := broadcastPair(a, b)
	if err != nil {
		return nil, arrayErrorf(op, err)
	}
	for i := range x {
		x[i] = boolf(closeTo(x[i], y[i], rtol, atol))
	}

	return wrap(target, x), nil
}

// AllClose reports whether every broadcast pair is close.
// Errors: as IsClose.
func AllClose(a, b *NDArray, rtol, atol float64) (bool, error) {
	const op = "AllClose"
	if err := validateNotNil(a, b); err != nil {
		return false, arrayErrorf(op, err)
	}
	if err := validateTolerances(rtol, atol); err != nil {
		return false, arrayErrorf(op, err)
	}
	_, x, y, err := broadcastPair(a, b)
	if err != nil {
		return false, arrayErrorf(op, err)
	}
	for i := range x {
		if !closeTo(x[i], y[i], rtol, atol) {
			return false, nil
		}
	}

	return true, nil
}
