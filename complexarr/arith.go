// SPDX-License-Identifier: MIT

package complexarr

import (
	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/lvnd/shape"
)

// Add returns a+b with broadcasting.
func Add(a, b *Array) (*Array, error) { return binary(a, b, cmplxs.AddTo) }

// Sub returns a-b with broadcasting.
func Sub(a, b *Array) (*Array, error) { return binary(a, b, cmplxs.SubTo) }

// Mul returns the elementwise product a·b with broadcasting.
func Mul(a, b *Array) (*Array, error) { return binary(a, b, cmplxs.MulTo) }

// Div returns the elementwise quotient a/b with broadcasting.
// Zero divisors follow complex128 arithmetic (Inf/NaN components).
func Div(a, b *Array) (*Array, error) { return binary(a, b, cmplxs.DivTo) }

// Scale returns c·a.
func Scale(a *Array, c complex128) (*Array, error) {
	if a == nil {
		return nil, complexErrorf(ctxBinary, ErrNilArray)
	}

	return &Array{shape: a.Shape(), data: cmplxs.ScaleTo(make([]complex128, len(a.data)), c, a.data)}, nil
}

// DivScalar returns a/c. A zero divisor is rejected with ErrDivisionByZero.
func DivScalar(a *Array, c complex128) (*Array, error) {
	if a == nil {
		return nil, complexErrorf(ctxDivScalar, ErrNilArray)
	}
	if c == 0 {
		return nil, complexErrorf(ctxDivScalar, ErrDivisionByZero)
	}
	out := make([]complex128, len(a.data))
	for i, z := range a.data {
		out[i] = z / c
	}

	return &Array{shape: a.Shape(), data: out}, nil
}

// binary broadcasts both operands to their common shape and applies kernel,
// which writes dst[i] = s[i] op t[i].
func binary(a, b *Array, kernel func(dst, s, t []complex128) []complex128) (*Array, error) {
	if a == nil || b == nil {
		return nil, complexErrorf(ctxBinary, ErrNilArray)
	}
	target, err := shape.Broadcast(a.shape, b.shape)
	if err != nil {
		return nil, complexErrorf(ctxBinary, err)
	}
	x, y := expand(a, target), expand(b, target)
	out := make([]complex128, len(x))
	if len(out) > 0 {
		kernel(out, x, y)
	}

	return &Array{shape: target, data: out}, nil
}

// expand lays a's values out over target, a valid broadcast of a.shape.
func expand(a *Array, target []int) []complex128 {
	if shape.Equal(a.shape, target) {
		return a.data
	}
	n := shape.Size(target)
	out := make([]complex128, n)
	if n == 0 {
		return out
	}
	st := shape.BroadcastStrides(a.shape, target)
	coord := make([]int, len(target))
	for i := range out {
		out[i] = a.data[shape.FlatIndex(st, coord)]
		shape.Next(coord, target)
	}

	return out
}
