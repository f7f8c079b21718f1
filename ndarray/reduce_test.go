// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvnd/ndarray"
)

type ReduceSuite struct {
	suite.Suite
	m *ndarray.NDArray // [[1, 2, 3], [4, 5, 6]]
}

func (s *ReduceSuite) SetupTest() {
	m, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	s.Require().NoError(err)
	s.m = m
}

func (s *ReduceSuite) TestGlobal() {
	sum, err := ndarray.Sum(s.m)
	s.Require().NoError(err)
	s.Equal(21.0, sum)

	mean, err := ndarray.Mean(s.m)
	s.Require().NoError(err)
	s.Equal(3.5, mean)

	v, err := ndarray.Var(s.m)
	s.Require().NoError(err)
	s.InDelta(35.0/12.0, v, 1e-12)

	sd, err := ndarray.Std(s.m)
	s.Require().NoError(err)
	s.InDelta(math.Sqrt(35.0/12.0), sd, 1e-12)

	p, err := ndarray.Prod(s.m)
	s.Require().NoError(err)
	s.Equal(720.0, p)

	lo, err := ndarray.Min(s.m)
	s.Require().NoError(err)
	hi, err := ndarray.Max(s.m)
	s.Require().NoError(err)
	ptp, err := ndarray.Ptp(s.m)
	s.Require().NoError(err)
	s.Equal(1.0, lo)
	s.Equal(6.0, hi)
	s.Equal(5.0, ptp)

	med, err := ndarray.Median(s.m)
	s.Require().NoError(err)
	s.Equal(3.5, med)
}

func (s *ReduceSuite) TestAxis() {
	cols, err := ndarray.SumAxis(s.m, 0)
	s.Require().NoError(err)
	requireArray(s.T(), cols, []int{3}, []float64{5, 7, 9})

	rows, err := ndarray.MeanAxis(s.m, 1)
	s.Require().NoError(err)
	requireArray(s.T(), rows, []int{2}, []float64{2, 5})

	mx, err := ndarray.MaxAxis(s.m, 1)
	s.Require().NoError(err)
	requireArray(s.T(), mx, []int{2}, []float64{3, 6})

	am, err := ndarray.ArgMaxAxis(s.m, 0)
	s.Require().NoError(err)
	requireArray(s.T(), am, []int{3}, []float64{1, 1, 1})

	pr, err := ndarray.ProdAxis(s.m, 1)
	s.Require().NoError(err)
	requireArray(s.T(), pr, []int{2}, []float64{6, 120})

	_, err = ndarray.SumAxis(s.m, 2)
	s.Require().ErrorIs(err, ndarray.ErrAxisOutOfRange)
	s.True(ndarray.IsShapeError(err))
}

func (s *ReduceSuite) TestCustomFold() {
	count := func(lane []float64) float64 { return float64(len(lane)) }
	got, err := ndarray.Reduce(s.m, 1, count)
	s.Require().NoError(err)
	requireArray(s.T(), got, []int{2}, []float64{3, 3})

	all, err := ndarray.ReduceAll(s.m, count)
	s.Require().NoError(err)
	s.Equal(6.0, all)

	_, err = ndarray.Reduce(s.m, 0, nil)
	s.Require().ErrorIs(err, ndarray.ErrInvalidArgument)
}

func TestReduceSuite(t *testing.T) {
	suite.Run(t, new(ReduceSuite))
}

func TestReduction_Identities(t *testing.T) {
	for _, dims := range [][]int{{1}, {3}, {2, 3}, {2, 1, 4}} {
		z, err := ndarray.Zeros(dims)
		require.NoError(t, err)
		sum, err := ndarray.Sum(z)
		require.NoError(t, err)
		assert.Zero(t, sum, "sum(zeros(%v))", dims)

		o, err := ndarray.Ones(dims)
		require.NoError(t, err)
		prod, err := ndarray.Prod(o)
		require.NoError(t, err)
		assert.Equal(t, 1.0, prod, "prod(ones(%v))", dims)
	}
}

func TestReduce_SizeOneAxisKeepsValues(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 1, 3)
	got, err := ndarray.SumAxis(a, 1)
	require.NoError(t, err)
	requireArray(t, got, []int{2, 3}, []float64{1, 2, 3, 4, 5, 6})

	v := ndarray.FromSlice([]float64{7, 8})
	one, err := ndarray.SumAxis(v, 0)
	require.NoError(t, err)
	requireArray(t, one, []int{1}, []float64{15})
}

func TestPercentile_LinearInterpolation(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3, 4})
	p, err := ndarray.Percentile(a, 50)
	require.NoError(t, err)
	assert.Equal(t, 2.5, p)

	q, err := ndarray.Quantile(a, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 1.75, q, 1e-12)

	q0, err := ndarray.Quantile(ndarray.FromSlice([]float64{4, 1, 3}), 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, q0)

	_, err = ndarray.Percentile(a, 101)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	_, err = ndarray.Quantile(a, -0.1)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	m := mustNew(t, []float64{1, 3, 2, 10, 30, 20}, 2, 3)
	pa, err := ndarray.PercentileAxis(m, 50, 1)
	require.NoError(t, err)
	requireArray(t, pa, []int{2}, []float64{2, 20})
}

func TestReduce_EmptyAndNaN(t *testing.T) {
	empty := ndarray.FromSlice(nil)
	s, err := ndarray.Sum(empty)
	require.NoError(t, err)
	assert.Zero(t, s)
	p, err := ndarray.Prod(empty)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)
	m, err := ndarray.Mean(empty)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(m))

	for _, f := range []func(*ndarray.NDArray) (float64, error){ndarray.Min, ndarray.Max, ndarray.Median, ndarray.Ptp} {
		_, err = f(empty)
		require.ErrorIs(t, err, ndarray.ErrEmptyArray)
	}
	_, err = ndarray.ArgMin(empty)
	require.ErrorIs(t, err, ndarray.ErrEmptyArray)
	_, err = ndarray.MinAxis(mustNew(t, nil, 2, 0), 1)
	require.ErrorIs(t, err, ndarray.ErrEmptyArray)

	withNaN := ndarray.FromSlice([]float64{3, math.NaN(), 1, math.NaN()})
	mx, err := ndarray.Max(withNaN)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(mx))
	idx, err := ndarray.ArgMin(withNaN)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestArgMinArgMax_FirstOccurrence(t *testing.T) {
	a := ndarray.FromSlice([]float64{2, 0, 5, 0, 5})
	i, err := ndarray.ArgMin(a)
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	j, err := ndarray.ArgMax(a)
	require.NoError(t, err)
	assert.Equal(t, 2, j)
}

func TestAllAny(t *testing.T) {
	a := mustNew(t, []float64{1, 0, 2, 3}, 2, 2)
	all, err := ndarray.All(a)
	require.NoError(t, err)
	assert.False(t, all)
	anyv, err := ndarray.Any(a)
	require.NoError(t, err)
	assert.True(t, anyv)

	rows, err := ndarray.AllAxis(a, 1)
	require.NoError(t, err)
	requireArray(t, rows, []int{2}, []float64{0, 1})
	cols, err := ndarray.AnyAxis(mustNew(t, []float64{0, 0, 0, 4}, 2, 2), 0)
	require.NoError(t, err)
	requireArray(t, cols, []int{2}, []float64{0, 1})

	emptyAll, err := ndarray.All(ndarray.FromSlice(nil))
	require.NoError(t, err)
	assert.True(t, emptyAll)
}

func TestCumulative(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	cs, err := ndarray.CumSum(a)
	require.NoError(t, err)
	requireArray(t, cs, []int{6}, []float64{1, 3, 6, 10, 15, 21})

	cs0, err := ndarray.CumSumAxis(a, 0)
	require.NoError(t, err)
	requireArray(t, cs0, []int{2, 3}, []float64{1, 2, 3, 5, 7, 9})

	cp1, err := ndarray.CumProdAxis(a, 1)
	require.NoError(t, err)
	requireArray(t, cp1, []int{2, 3}, []float64{1, 2, 6, 4, 20, 120})

	cp, err := ndarray.CumProd(ndarray.FromSlice([]float64{2, 2, 2}))
	require.NoError(t, err)
	requireArray(t, cp, []int{3}, []float64{2, 4, 8})
}

func TestAverage(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3})
	plain, err := ndarray.Average(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, plain)

	w, err := ndarray.Average(a, ndarray.FromSlice([]float64{0, 0, 1}))
	require.NoError(t, err)
	assert.Equal(t, 3.0, w)

	_, err = ndarray.Average(a, ndarray.FromSlice([]float64{1, -1, 0}))
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	_, err = ndarray.Average(a, ndarray.FromSlice([]float64{1}))
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestApplyAlongAxis(t *testing.T) {
	a := mustNew(t, []float64{3, 1, 2, 9, 7, 8}, 2, 3)
	got, err := ndarray.ApplyAlongAxis(a, 1, func(lane []float64) ([]float64, error) {
		return []float64{lane[0] + lane[2], lane[1]}, nil
	})
	require.NoError(t, err)
	requireArray(t, got, []int{2, 2}, []float64{5, 1, 17, 7})

	n := 0
	_, err = ndarray.ApplyAlongAxis(a, 1, func(lane []float64) ([]float64, error) {
		n++
		return make([]float64, n), nil
	})
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}
