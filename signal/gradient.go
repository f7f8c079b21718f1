// SPDX-License-Identifier: MIT
// Package: signal
//
// Purpose:
//   - Numerical gradient with central differences inside and one-sided
//     differences at both edges of every lane.
//   - Gradient collects one result per axis in axis order.

package signal

import (
	"math"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/lvnd/ndarray"
)

// Gradients maps an axis (0-based) to the gradient along it. Iteration order
// is ascending axis order.
type Gradients = orderedmap.OrderedMap[int, *ndarray.NDArray]

// Gradient computes the gradient of a along every axis with uniform sample
// spacing h. Each entry has the shape of a.
//
// Errors: ErrInvalidSpacing, ErrInsufficientData (any axis shorter than 2).
func Gradient(a *ndarray.NDArray, h float64) (*Gradients, error) {
	if a == nil {
		return nil, signalErrorf(ctxGradient, ndarray.ErrNilArray)
	}

	out := orderedmap.New[int, *ndarray.NDArray]()
	for axis := range a.Ndim() {
		g, err := GradientAxis(a, h, axis)
		if err != nil {
			return nil, err
		}
		out.Set(axis, g)
	}

	return out, nil
}

// GradientAxis computes the gradient of a along one axis:
//
//	g[0]   = (f[1]-f[0]) / h
//	g[i]   = (f[i+1]-f[i-1]) / 2h     0 < i < n-1
//	g[n-1] = (f[n-1]-f[n-2]) / h
func GradientAxis(a *ndarray.NDArray, h float64, axis int) (*ndarray.NDArray, error) {
	if a == nil {
		return nil, signalErrorf(ctxGradient, ndarray.ErrNilArray)
	}
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return nil, signalErrorf(ctxGradient, ErrInvalidSpacing)
	}
	if axis >= 0 && axis < a.Ndim() && a.Shape()[axis] < 2 {
		return nil, signalErrorf(ctxGradient, ErrInsufficientData)
	}

	g, err := ndarray.ApplyAlongAxis(a, axis, func(f []float64) ([]float64, error) {
		return gradientLane(f, h), nil
	})
	if err != nil {
		return nil, signalErrorf(ctxGradient, err)
	}

	return g, nil
}

// gradientLane expects len(f) ≥ 2.
func gradientLane(f []float64, h float64) []float64 {
	n := len(f)
	g := make([]float64, n)
	g[0] = (f[1] - f[0]) / h
	g[n-1] = (f[n-1] - f[n-2]) / h
	for i := 1; i < n-1; i++ {
		g[i] = (f[i+1] - f[i-1]) / (2 * h)
	}

	return g
}
