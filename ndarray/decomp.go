// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Doolittle LU with partial pivoting (P·A = L·U) on a flat n×n buffer and
//     the solvers built on it: Det, Inv, Solve.
//
// Numerics:
//   - Row pivoting picks the largest |pivot| per column; an exactly zero pivot
//     marks the matrix singular.
//   - Complexity O(n³) time, O(n²) memory.

package ndarray

import (
	"fmt"
	"math"
)

const (
	opLU    = "LU"
	opDet   = "Det"
	opInv   = "Inv"
	opSolve = "Solve"
)

// luFactor holds the packed factorization: strict lower part of lu is L (unit
// diagonal implied), upper part is U, and row i of P·A is row piv[i] of A.
type luFactor struct {
	n        int
	lu       []float64
	piv      []int
	sign     float64 // parity of the row permutation
	singular bool
}

// factor runs Doolittle elimination with partial pivoting on a copy of a (n×n).
func factor(a []float64, n int) luFactor {
	f := luFactor{n: n, lu: make([]float64, n*n), piv: make([]int, n), sign: 1}
	copy(f.lu, a)
	for i := range f.piv {
		f.piv[i] = i
	}
	lu := f.lu
	for k := 0; k < n; k++ {
		p := k
		best := math.Abs(lu[k*n+k])
		for r := k + 1; r < n; r++ {
			if v := math.Abs(lu[r*n+k]); v > best {
				p, best = r, v
			}
		}
		if best == 0 {
			f.singular = true
			continue
		}
		if p != k {
			for c := 0; c < n; c++ {
				lu[k*n+c], lu[p*n+c] = lu[p*n+c], lu[k*n+c]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.sign = -f.sign
		}
		pivot := lu[k*n+k]
		for r := k + 1; r < n; r++ {
			l := lu[r*n+k] / pivot
			lu[r*n+k] = l
			if l == 0 {
				continue
			}
			for c := k + 1; c < n; c++ {
				lu[r*n+c] -= l * lu[k*n+c]
			}
		}
	}

	return f
}

// solveInto solves A·x = b for one right-hand side, writing x into x.
// y is scratch of length n. The factor must not be singular.
func (f luFactor) solveInto(x, b, y []float64) {
	n, lu := f.n, f.lu
	// forward: L·y = P·b
	for i := 0; i < n; i++ {
		sum := b[f.piv[i]]
		for k := 0; k < i; k++ {
			sum -= lu[i*n+k] * y[k]
		}
		y[i] = sum
	}
	// backward: U·x = y
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= lu[i*n+k] * x[k]
		}
		x[i] = sum / lu[i*n+i]
	}
}

func squareSize(tag string, a *NDArray) (int, error) {
	if a == nil {
		return 0, arrayErrorf(tag, ErrNilArray)
	}
	if len(a.shape) != 2 {
		return 0, arrayErrorf(tag, rankErr(a, "2"))
	}
	if a.shape[0] != a.shape[1] {
		return 0, arrayErrorf(tag, fmt.Errorf("non-square %v: %w", a.shape, ErrShapeMismatch))
	}

	return a.shape[0], nil
}

// LU factors a square matrix as P·A = L·U and returns P (permutation matrix),
// L (unit lower triangular) and U (upper triangular). Singular inputs still
// factor; their U has a zero on the diagonal.
// Errors: ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch (non-square).
func LU(a *NDArray) (p, l, u *NDArray, err error) {
	n, err := squareSize(opLU, a)
	if err != nil {
		return nil, nil, nil, err
	}
	f := factor(a.data, n)
	p = zerosOf([]int{n, n})
	l = zerosOf([]int{n, n})
	u = zerosOf([]int{n, n})
	for i := 0; i < n; i++ {
		p.data[i*n+f.piv[i]] = 1
		l.data[i*n+i] = 1
		for j := 0; j < n; j++ {
			if j < i {
				l.data[i*n+j] = f.lu[i*n+j]
			} else {
				u.data[i*n+j] = f.lu[i*n+j]
			}
		}
	}

	return p, l, u, nil
}

// Det returns the determinant of a square matrix (1 for 0×0).
// Errors: ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch.
func Det(a *NDArray) (float64, error) {
	n, err := squareSize(opDet, a)
	if err != nil {
		return 0, err
	}
	f := factor(a.data, n)
	if f.singular {
		return 0, nil
	}
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu[i*n+i]
	}

	return det, nil
}

// Inv returns the inverse of a square matrix, solving one identity column at a time.
// Errors: ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch, ErrSingular.
func Inv(a *NDArray) (*NDArray, error) {
	n, err := squareSize(opInv, a)
	if err != nil {
		return nil, err
	}
	f := factor(a.data, n)
	if f.singular {
		return nil, arrayErrorf(opInv, ErrSingular)
	}
	out := zerosOf([]int{n, n})
	e := make([]float64, n)
	x := make([]float64, n)
	y := make([]float64, n)
	for col := 0; col < n; col++ {
		clear(e)
		e[col] = 1
		f.solveInto(x, e, y)
		for i := 0; i < n; i++ {
			out.data[i*n+col] = x[i]
		}
	}

	return out, nil
}

// Solve returns x with A·x = b, where b is 1-D (length n) or 2-D (n×k, one
// system per column).
// Errors: ErrNilArray, ErrUnsupportedRank, ErrShapeMismatch, ErrSingular.
func Solve(a, b *NDArray) (*NDArray, error) {
	n, err := squareSize(opSolve, a)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, arrayErrorf(opSolve, ErrNilArray)
	}
	if len(b.shape) > 2 {
		return nil, arrayErrorf(opSolve, rankErr(b, "1 or 2"))
	}
	if b.shape[0] != n {
		return nil, arrayErrorf(opSolve, fmt.Errorf("%v and %v: %w", a.shape, b.shape, ErrShapeMismatch))
	}
	f := factor(a.data, n)
	if f.singular {
		return nil, arrayErrorf(opSolve, ErrSingular)
	}
	k := 1
	if len(b.shape) == 2 {
		k = b.shape[1]
	}
	out := zerosOf(append([]int(nil), b.shape...))
	rhs := make([]float64, n)
	x := make([]float64, n)
	y := make([]float64, n)
	for c := 0; c < k; c++ {
		for i := 0; i < n; i++ {
			rhs[i] = b.data[i*k+c]
		}
		f.solveInto(x, rhs, y)
		for i := 0; i < n; i++ {
			out.data[i*k+c] = x[i]
		}
	}

	return out, nil
}
