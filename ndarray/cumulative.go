// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Running sums and products. The flattened forms return a 1-D array of
//     length size; the axis forms keep the input shape and accumulate along
//     each lane independently.

package ndarray

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnd/shape"
)

type accumulate func(acc, v float64) float64

func addAcc(acc, v float64) float64 { return acc + v }
func mulAcc(acc, v float64) float64 { return acc * v }

// cumulativeFlat runs a contiguous gonum kernel over the whole buffer.
func cumulativeFlat(tag string, a *NDArray, kernel func(dst, s []float64) []float64) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(tag, ErrNilArray)
	}
	out := zerosOf([]int{len(a.data)})
	kernel(out.data, a.data)

	return out, nil
}

func cumulativeAxis(tag string, a *NDArray, axis int, seed float64, f accumulate) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	out := zerosOf(shape.Clone(a.shape))
	n := a.shape[axis]
	forEachLane(a.shape, axis, func(_, base, step int) {
		acc := seed
		for k := 0; k < n; k++ {
			off := base + k*step
			acc = f(acc, a.data[off])
			out.data[off] = acc
		}
	})

	return out, nil
}

// CumSum returns the running sum of the flattened array.
// Errors: ErrNilArray. Complexity: O(size).
func CumSum(a *NDArray) (*NDArray, error) { return cumulativeFlat("CumSum", a, floats.CumSum) }

// CumSumAxis returns the running sums along axis, same shape as a.
// Errors: ErrNilArray, ErrAxisOutOfRange. Complexity: O(size).
func CumSumAxis(a *NDArray, axis int) (*NDArray, error) {
	return cumulativeAxis("CumSum", a, axis, 0, addAcc)
}

// CumProd returns the running product of the flattened array.
func CumProd(a *NDArray) (*NDArray, error) { return cumulativeFlat("CumProd", a, floats.CumProd) }

// CumProdAxis returns the running products along axis, same shape as a.
func CumProdAxis(a *NDArray, axis int) (*NDArray, error) {
	return cumulativeAxis("CumProd", a, axis, 1, mulAcc)
}
