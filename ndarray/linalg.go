// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Products (Dot, Inner, Matmul, Outer) and diagonal helpers (Trace,
//     Diagonal, Diag), plus the Frobenius norm.
//   - Matrix products run on gonum BLAS-backed mat kernels over the row-major
//     buffers; gonum rejects zero-length dimensions, so empty operands are
//     answered directly.

package ndarray

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opDot      = "Dot"
	opInner    = "Inner"
	opMatmul   = "Matmul"
	opOuter    = "Outer"
	opTrace    = "Trace"
	opDiagonal = "Diagonal"
	opDiag     = "Diag"
	opNorm     = "Norm"
)

func rankErr(a *NDArray, want string) error {
	return fmt.Errorf("rank %d, want %s: %w", len(a.shape), want, ErrUnsupportedRank)
}

// matMul computes the (m×k)·(k×n) product of two row-major buffers.
func matMul(x []float64, m, k int, y []float64, n int) []float64 {
	out := make([]float64, m*n)
	if m == 0 || n == 0 || k == 0 {
		return out
	}
	c := mat.NewDense(m, n, out)
	c.Mul(mat.NewDense(m, k, x), mat.NewDense(k, n, y))

	return out
}

// matVec computes the (m×k)·(k) product.
func matVec(x []float64, m, k int, v []float64) []float64 {
	out := make([]float64, m)
	if m == 0 || k == 0 {
		return out
	}
	y := mat.NewVecDense(m, out)
	y.MulVec(mat.NewDense(m, k, x), mat.NewVecDense(k, v))

	return out
}

// Dot computes:
//   - 1-D·1-D: the inner product as a shape-[1] array,
//   - 2-D·2-D: the matrix product,
//   - 2-D·1-D: the matrix-vector product (1-D result).
//
// The scalar case keeps the Scalar() convention; use Inner for a bare float64.
//
// Errors:
//   - ErrNilArray, ErrUnsupportedRank (any other rank pair),
//     ErrShapeMismatch (inner dimensions differ).
//
// Complexity: O(m*k*n).
func Dot(a, b *NDArray) (*NDArray, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, arrayErrorf(opDot, err)
	}
	switch {
	case len(a.shape) == 1 && len(b.shape) == 1:
		v, err := Inner(a, b)
		if err != nil {
			return nil, arrayErrorf(opDot, err)
		}
		return Scalar(v), nil
	case len(a.shape) == 2 && len(b.shape) == 2:
		m, k := a.shape[0], a.shape[1]
		if b.shape[0] != k {
			return nil, arrayErrorf(opDot, fmt.Errorf("%v · %v: %w", a.shape, b.shape, ErrShapeMismatch))
		}
		n := b.shape[1]
		return wrap([]int{m, n}, matMul(a.data, m, k, b.data, n)), nil
	case len(a.shape) == 2 && len(b.shape) == 1:
		m, k := a.shape[0], a.shape[1]
		if b.shape[0] != k {
			return nil, arrayErrorf(opDot, fmt.Errorf("%v · %v: %w", a.shape, b.shape, ErrShapeMismatch))
		}
		return wrap([]int{m}, matVec(a.data, m, k, b.data)), nil
	}

	return nil, arrayErrorf(opDot, fmt.Errorf("ranks %d and %d: %w", len(a.shape), len(b.shape), ErrUnsupportedRank))
}

// Inner returns Σ a[i]*b[i] for two 1-D arrays of equal length.
// Errors: ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch.
func Inner(a, b *NDArray) (float64, error) {
	if err := validateNotNil(a, b); err != nil {
		return 0, arrayErrorf(opInner, err)
	}
	if len(a.shape) != 1 || len(b.shape) != 1 {
		return 0, arrayErrorf(opInner, fmt.Errorf("ranks %d and %d: %w", len(a.shape), len(b.shape), ErrUnsupportedRank))
	}
	if len(a.data) != len(b.data) {
		return 0, arrayErrorf(opInner, fmt.Errorf("lengths %d and %d: %w", len(a.data), len(b.data), ErrShapeMismatch))
	}

	return floats.Dot(a.data, b.data), nil
}

// Matmul is the matrix product of rank-1 or rank-2 operands. A 1-D left operand
// acts as a row vector and a 1-D right operand as a column vector; the
// promoted axis is removed from the result (1-D@1-D gives shape [1]).
// Errors: ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch.
// Complexity: O(m*k*n).
func Matmul(a, b *NDArray) (*NDArray, error) {
	if err := validateNotNil(a, b); err != nil {
		return nil, arrayErrorf(opMatmul, err)
	}
	if len(a.shape) > 2 {
		return nil, arrayErrorf(opMatmul, rankErr(a, "1 or 2"))
	}
	if len(b.shape) > 2 {
		return nil, arrayErrorf(opMatmul, rankErr(b, "1 or 2"))
	}
	m, k := 1, a.shape[0]
	if len(a.shape) == 2 {
		m, k = a.shape[0], a.shape[1]
	}
	k2, n := b.shape[0], 1
	if len(b.shape) == 2 {
		n = b.shape[1]
	}
	if k != k2 {
		return nil, arrayErrorf(opMatmul, fmt.Errorf("%v @ %v: %w", a.shape, b.shape, ErrShapeMismatch))
	}
	data := matMul(a.data, m, k, b.data, n)
	var dims []int
	if len(a.shape) == 2 {
		dims = append(dims, m)
	}
	if len(b.shape) == 2 {
		dims = append(dims, n)
	}
	if len(dims) == 0 {
		dims = []int{1}
	}

	return wrap(dims, data), nil
}

// Outer returns the m×n matrix u[i]*v[j] of two 1-D arrays.
// Errors: ErrNilArray, ErrUnsupportedRank.
// Complexity: O(m*n).
func Outer(u, v *NDArray) (*NDArray, error) {
	if err := validateNotNil(u, v); err != nil {
		return nil, arrayErrorf(opOuter, err)
	}
	if len(u.shape) != 1 || len(v.shape) != 1 {
		return nil, arrayErrorf(opOuter, fmt.Errorf("ranks %d and %d: %w", len(u.shape), len(v.shape), ErrUnsupportedRank))
	}
	m, n := len(u.data), len(v.data)
	out := make([]float64, m*n)
	if m > 0 && n > 0 {
		d := mat.NewDense(m, n, out)
		d.Outer(1, mat.NewVecDense(m, u.data), mat.NewVecDense(n, v.data))
	}

	return wrap([]int{m, n}, out), nil
}

// diagLen is the number of elements on the k-th diagonal of an r×c matrix.
func diagLen(r, c, k int) int {
	var n int
	if k >= 0 {
		n = min(r, c-k)
	} else {
		n = min(r+k, c)
	}

	return max(n, 0)
}

// Diagonal returns the k-th diagonal of a 2-D array (k > 0 above the main one).
// Errors: ErrNilArray, ErrUnsupportedRank.
// Complexity: O(min(r, c)).
func Diagonal(a *NDArray, k int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opDiagonal, ErrNilArray)
	}
	if len(a.shape) != 2 {
		return nil, arrayErrorf(opDiagonal, rankErr(a, "2"))
	}
	r, c := a.shape[0], a.shape[1]
	n := diagLen(r, c, k)
	row0, col0 := 0, k
	if k < 0 {
		row0, col0 = -k, 0
	}
	out := zerosOf([]int{n})
	for i := 0; i < n; i++ {
		out.data[i] = a.data[(row0+i)*c+col0+i]
	}

	return out, nil
}

// Trace returns the sum of the k-th diagonal of a 2-D array.
// Errors: ErrNilArray, ErrUnsupportedRank.
func Trace(a *NDArray, k int) (float64, error) {
	d, err := Diagonal(a, k)
	if err != nil {
		return 0, arrayErrorf(opTrace, err)
	}

	return floats.Sum(d.data), nil
}

// Diag builds a square matrix with the 1-D input on its k-th diagonal, or
// extracts the k-th diagonal of a 2-D input.
// Errors: ErrNilArray, ErrUnsupportedRank.
// Complexity: O((n+|k|)²) when building.
func Diag(a *NDArray, k int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opDiag, ErrNilArray)
	}
	switch len(a.shape) {
	case 1:
		n := len(a.data)
		size := n + abs(k)
		out := zerosOf([]int{size, size})
		row0, col0 := 0, k
		if k < 0 {
			row0, col0 = -k, 0
		}
		for i, v := range a.data {
			out.data[(row0+i)*size+col0+i] = v
		}
		return out, nil
	case 2:
		return Diagonal(a, k)
	}

	return nil, arrayErrorf(opDiag, rankErr(a, "1 or 2"))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Norm returns the Frobenius norm (the 2-norm of the flattened array).
// Errors: ErrNilArray.
func Norm(a *NDArray) (float64, error) {
	if a == nil {
		return 0, arrayErrorf(opNorm, ErrNilArray)
	}

	return floats.Norm(a.data, 2), nil
}
