// SPDX-License-Identifier: MIT

package interop

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnd/ndarray"
)

// ToDense copies a rank-2 array into a new *mat.Dense.
func ToDense(a *ndarray.NDArray) (*mat.Dense, error) {
	if err := exportable(ctxToDense, a, 2); err != nil {
		return nil, err
	}
	shp := a.Shape()

	return mat.NewDense(shp[0], shp[1], a.Data()), nil
}

// FromMatrix copies any gonum matrix into a rank-2 array.
func FromMatrix(m mat.Matrix) (*ndarray.NDArray, error) {
	r, c := m.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, m.At(i, j))
		}
	}

	return ndarray.New(data, r, c)
}

// ToVec copies a rank-1 array into a new *mat.VecDense.
func ToVec(a *ndarray.NDArray) (*mat.VecDense, error) {
	if err := exportable(ctxToVec, a, 1); err != nil {
		return nil, err
	}

	return mat.NewVecDense(a.Size(), a.Data()), nil
}

// FromVector copies any gonum vector into a rank-1 array.
func FromVector(v mat.Vector) *ndarray.NDArray {
	data := make([]float64, v.Len())
	for i := range data {
		data[i] = v.AtVec(i)
	}

	return ndarray.FromSlice(data)
}
