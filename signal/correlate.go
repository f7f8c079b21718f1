// SPDX-License-Identifier: MIT
// Package: signal
//
// Purpose:
//   - Correlate and Convolve of two 1-D arrays. Both run one zero-padded
//     lag kernel; Convolve reverses v first. Mode picks the output window.

package signal

import (
	"slices"

	"github.com/katalvlaran/lvnd/ndarray"
)

// Correlate returns the discrete cross-correlation of the 1-D arrays a and v
// restricted to the window chosen by mode.
//
// Errors: ErrNotVector, ErrEmptyInput, ErrInvalidMode (all wrapped with the op tag).
// Complexity: O(n·m).
func Correlate(a, v *ndarray.NDArray, mode Mode) (*ndarray.NDArray, error) {
	x, y, err := vectors(ctxCorrelate, a, v)
	if err != nil {
		return nil, err
	}

	return correlate(ctxCorrelate, x, y, mode)
}

// Convolve returns the discrete linear convolution of a and v, i.e. the
// correlation of a with v reversed. Convolve is symmetric in its operands.
//
// Errors: as Correlate.
func Convolve(a, v *ndarray.NDArray, mode Mode) (*ndarray.NDArray, error) {
	x, y, err := vectors(ctxConvolve, a, v)
	if err != nil {
		return nil, err
	}
	slices.Reverse(y)

	return correlate(ctxConvolve, x, y, mode)
}

func vectors(tag string, a, v *ndarray.NDArray) ([]float64, []float64, error) {
	for _, arr := range []*ndarray.NDArray{a, v} {
		if arr == nil {
			return nil, nil, signalErrorf(tag, ndarray.ErrNilArray)
		}
		if arr.Ndim() != 1 {
			return nil, nil, signalErrorf(tag, ErrNotVector)
		}
		if arr.Size() == 0 {
			return nil, nil, signalErrorf(tag, ErrEmptyInput)
		}
	}

	return a.Data(), v.Data(), nil
}

// correlate evaluates the window of full[k] = Σ_j a[k+j-(m-1)]·v[j].
func correlate(tag string, a, v []float64, mode Mode) (*ndarray.NDArray, error) {
	n, m := len(a), len(v)
	offset, length, ok := mode.window(n, m)
	if !ok {
		return nil, signalErrorf(tag, ErrInvalidMode)
	}

	out := make([]float64, length)
	for o := range out {
		k := offset + o
		shift := k - (m - 1)
		// j range keeps a[shift+j] inside [0, n)
		jLo, jHi := max(0, -shift), min(m, n-shift)
		var s float64
		for j := jLo; j < jHi; j++ {
			s += a[shift+j] * v[j]
		}
		out[o] = s
	}

	return ndarray.FromSlice(out), nil
}
