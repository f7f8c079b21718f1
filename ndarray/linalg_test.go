// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnd/ndarray"
)

func TestDot_RankCombinations(t *testing.T) {
	u := ndarray.FromSlice([]float64{1, 2, 3})
	v := ndarray.FromSlice([]float64{4, 5, 6})
	d, err := ndarray.Dot(u, v)
	require.NoError(t, err)
	requireArray(t, d, []int{1}, []float64{32})

	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	b := mustNew(t, []float64{7, 8, 9, 10, 11, 12}, 3, 2)
	mm, err := ndarray.Dot(a, b)
	require.NoError(t, err)
	requireArray(t, mm, []int{2, 2}, []float64{58, 64, 139, 154})

	mv, err := ndarray.Dot(a, u)
	require.NoError(t, err)
	requireArray(t, mv, []int{2}, []float64{14, 32})

	_, err = ndarray.Dot(u, a)
	require.ErrorIs(t, err, ndarray.ErrUnsupportedRank)
	_, err = ndarray.Dot(a, a)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	_, err = ndarray.Dot(u, ndarray.FromSlice([]float64{1}))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	empty, err := ndarray.Dot(mustNew(t, nil, 2, 0), mustNew(t, nil, 0, 3))
	require.NoError(t, err)
	requireArray(t, empty, []int{2, 3}, make([]float64, 6))
}

func TestMatmul_PromotesVectors(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	row := ndarray.FromSlice([]float64{1, 1})

	left, err := ndarray.Matmul(row, a)
	require.NoError(t, err)
	requireArray(t, left, []int{2}, []float64{4, 6})

	right, err := ndarray.Matmul(a, row)
	require.NoError(t, err)
	requireArray(t, right, []int{2}, []float64{3, 7})

	inner, err := ndarray.Matmul(row, row)
	require.NoError(t, err)
	requireArray(t, inner, []int{1}, []float64{2})

	_, err = ndarray.Matmul(mustNew(t, make([]float64, 8), 2, 2, 2), a)
	require.ErrorIs(t, err, ndarray.ErrUnsupportedRank)
}

func TestOuterInner(t *testing.T) {
	o, err := ndarray.Outer(ndarray.FromSlice([]float64{1, 2}), ndarray.FromSlice([]float64{3, 4, 5}))
	require.NoError(t, err)
	requireArray(t, o, []int{2, 3}, []float64{3, 4, 5, 6, 8, 10})

	_, err = ndarray.Outer(mustNew(t, []float64{1}, 1, 1), ndarray.Scalar(1))
	require.ErrorIs(t, err, ndarray.ErrUnsupportedRank)

	in, err := ndarray.Inner(ndarray.FromSlice([]float64{1, 2}), ndarray.FromSlice([]float64{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, 11.0, in)
}

func TestDiagonalTraceDiag(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, 3)
	d0, err := ndarray.Diagonal(m, 0)
	require.NoError(t, err)
	requireArray(t, d0, []int{3}, []float64{1, 5, 9})
	d1, err := ndarray.Diagonal(m, 1)
	require.NoError(t, err)
	requireArray(t, d1, []int{2}, []float64{2, 6})
	dm, err := ndarray.Diagonal(m, -2)
	require.NoError(t, err)
	requireArray(t, dm, []int{1}, []float64{7})
	far, err := ndarray.Diagonal(m, 5)
	require.NoError(t, err)
	assert.Zero(t, far.Size())

	tr, err := ndarray.Trace(m, 0)
	require.NoError(t, err)
	assert.Equal(t, 15.0, tr)
	tr1, err := ndarray.Trace(m, -1)
	require.NoError(t, err)
	assert.Equal(t, 12.0, tr1)

	built, err := ndarray.Diag(ndarray.FromSlice([]float64{1, 2}), 1)
	require.NoError(t, err)
	requireArray(t, built, []int{3, 3}, []float64{0, 1, 0, 0, 0, 2, 0, 0, 0})
	ext, err := ndarray.Diag(m, 0)
	require.NoError(t, err)
	assert.True(t, ext.Equal(d0))

	_, err = ndarray.Trace(ndarray.FromSlice([]float64{1}), 0)
	require.ErrorIs(t, err, ndarray.ErrUnsupportedRank)
}

func TestNorm(t *testing.T) {
	n, err := ndarray.Norm(mustNew(t, []float64{3, 4, 0, 0}, 2, 2))
	require.NoError(t, err)
	assert.InDelta(t, 5, n, 1e-12)
}

func TestLUDetInvSolve(t *testing.T) {
	a := mustNew(t, []float64{0, 2, 1, 1, 1, 0, 3, 0, 1}, 3, 3)

	p, l, u, err := ndarray.LU(a)
	require.NoError(t, err)
	pa, err := ndarray.Matmul(p, a)
	require.NoError(t, err)
	lu, err := ndarray.Matmul(l, u)
	require.NoError(t, err)
	ok, err := ndarray.AllClose(pa, lu, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	det, err := ndarray.Det(a)
	require.NoError(t, err)
	assert.InDelta(t, -5.0, det, 1e-12)

	inv, err := ndarray.Inv(a)
	require.NoError(t, err)
	prod, err := ndarray.Matmul(a, inv)
	require.NoError(t, err)
	eye, err := ndarray.Identity(3)
	require.NoError(t, err)
	ok, err = ndarray.AllClose(prod, eye, 1e-12, 1e-12)
	require.NoError(t, err)
	assert.True(t, ok)

	b := ndarray.FromSlice([]float64{3, 2, 4})
	x, err := ndarray.Solve(a, b)
	require.NoError(t, err)
	back, err := ndarray.Dot(a, x)
	require.NoError(t, err)
	requireArray(t, back, []int{3}, []float64{3, 2, 4})

	singular := mustNew(t, []float64{1, 2, 2, 4}, 2, 2)
	sd, err := ndarray.Det(singular)
	require.NoError(t, err)
	assert.Zero(t, sd)
	_, err = ndarray.Inv(singular)
	require.ErrorIs(t, err, ndarray.ErrSingular)
	_, err = ndarray.Solve(singular, ndarray.FromSlice([]float64{1, 1}))
	require.ErrorIs(t, err, ndarray.ErrSingular)
	_, err = ndarray.Det(mustNew(t, make([]float64, 6), 2, 3))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestHistogram(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 2, 3, 4})
	h, err := ndarray.Histogram(a, 3)
	require.NoError(t, err)
	requireArray(t, h.Counts, []int{3}, []float64{1, 2, 2})
	requireArray(t, h.Edges, []int{4}, []float64{1, 2, 3, 4})

	flat, err := ndarray.Histogram(ndarray.FromSlice([]float64{5, 5}), 2)
	require.NoError(t, err)
	requireArray(t, flat.Edges, []int{3}, []float64{4.5, 5, 5.5})
	requireArray(t, flat.Counts, []int{2}, []float64{0, 2})

	r, err := ndarray.HistogramRange(a, 2, 2, 3)
	require.NoError(t, err)
	requireArray(t, r.Counts, []int{2}, []float64{2, 1})

	_, err = ndarray.Histogram(a, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
}

func TestBincount(t *testing.T) {
	x := ndarray.FromSlice([]float64{0, 1, 1, 3})
	c, err := ndarray.Bincount(x, nil, 0)
	require.NoError(t, err)
	requireArray(t, c, []int{4}, []float64{1, 2, 0, 1})

	w, err := ndarray.Bincount(x, ndarray.FromSlice([]float64{0.5, 1, 1, 2}), 6)
	require.NoError(t, err)
	requireArray(t, w, []int{6}, []float64{0.5, 2, 0, 2, 0, 0})

	_, err = ndarray.Bincount(ndarray.FromSlice([]float64{1.5}), nil, 0)
	require.ErrorIs(t, err, ndarray.ErrNotInteger)
	_, err = ndarray.Bincount(ndarray.FromSlice([]float64{-1}), nil, 0)
	require.ErrorIs(t, err, ndarray.ErrNegativeValue)
	assert.True(t, ndarray.IsPreconditionError(err))

	for _, huge := range []float64{1e300, 1e15, float64(ndarray.MaxElements)} {
		_, err = ndarray.Bincount(ndarray.FromSlice([]float64{0, huge}), nil, 0)
		require.ErrorIs(t, err, ndarray.ErrInvalidArgument, "value %g", huge)
	}
	_, err = ndarray.Bincount(x, nil, 1<<62)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
}

func TestCovCorrcoef(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 2, 4, 6, 3, 3, 3}, 3, 3)
	c, err := ndarray.Cov(a)
	require.NoError(t, err)
	requireArray(t, c, []int{3, 3}, []float64{1, 2, 0, 2, 4, 0, 0, 0, 0})

	r, err := ndarray.Corrcoef(a)
	require.NoError(t, err)
	data := r.Data()
	assert.InDelta(t, 1, data[0], 1e-12)
	assert.InDelta(t, 1, data[1], 1e-12)
	assert.True(t, math.IsNaN(data[8]), "constant variable")

	v, err := ndarray.Cov(ndarray.FromSlice([]float64{1, 3}))
	require.NoError(t, err)
	requireArray(t, v, []int{1, 1}, []float64{2})

	_, err = ndarray.Cov(ndarray.FromSlice([]float64{1}))
	require.ErrorIs(t, err, ndarray.ErrInsufficientData)
}
