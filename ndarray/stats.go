// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Counting and second-moment statistics: Histogram, Bincount, Average,
//     Cov, Corrcoef.
//
// Conventions:
//   - Cov/Corrcoef treat every row as one variable and every column as one
//     observation; the 1-D input is a single variable. Sample covariance
//     (N-1 denominator) through gonum stat.
//   - Corrcoef of a constant variable is NaN; other entries are clipped to [-1, 1].

package ndarray

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvnd/shape"
)

const (
	opHistogram = "Histogram"
	opBincount  = "Bincount"
	opAverage   = "Average"
	opCov       = "Cov"
	opCorrcoef  = "Corrcoef"
)

// HistogramResult holds bin counts and the bins+1 monotone edges.
type HistogramResult struct {
	Counts *NDArray
	Edges  *NDArray
}

// Histogram counts the flattened values into bins equal-width bins spanning
// [min, max] of the data. Coinciding extrema widen the range by 0.5 each way;
// empty data uses [0, 1].
// Errors: ErrNilArray, ErrInvalidArgument (bins ≤ 0, non-finite extrema).
// Complexity: O(size + bins).
func Histogram(a *NDArray, bins int) (HistogramResult, error) {
	if a == nil {
		return HistogramResult{}, arrayErrorf(opHistogram, ErrNilArray)
	}
	lo, hi := 0.0, 1.0
	if len(a.data) > 0 {
		lo, hi = floats.Min(a.data), floats.Max(a.data)
	}

	return histogram(a, bins, lo, hi)
}

// HistogramRange is Histogram over the explicit range [lo, hi]; values outside
// it are not counted. The maximum value falls into the last bin.
// Errors: ErrNilArray, ErrInvalidArgument (bins ≤ 0, lo > hi, non-finite bounds).
func HistogramRange(a *NDArray, bins int, lo, hi float64) (HistogramResult, error) {
	if a == nil {
		return HistogramResult{}, arrayErrorf(opHistogram, ErrNilArray)
	}
	if lo > hi {
		return HistogramResult{}, arrayErrorf(opHistogram, fmt.Errorf("range [%g, %g]: %w", lo, hi, ErrInvalidArgument))
	}

	return histogram(a, bins, lo, hi)
}

func histogram(a *NDArray, bins int, lo, hi float64) (HistogramResult, error) {
	if bins <= 0 {
		return HistogramResult{}, arrayErrorf(opHistogram, fmt.Errorf("bins=%d: %w", bins, ErrInvalidArgument))
	}
	if isNonFinite(lo) || isNonFinite(hi) {
		return HistogramResult{}, arrayErrorf(opHistogram, fmt.Errorf("range [%g, %g]: %w", lo, hi, ErrInvalidArgument))
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}
	counts := make([]float64, bins)
	width := hi - lo
	for _, v := range a.data {
		if v < lo || v > hi || math.IsNaN(v) {
			continue
		}
		b := int((v - lo) / width * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		counts[b]++
	}
	edges := make([]float64, bins+1)
	floats.Span(edges, lo, hi)

	return HistogramResult{Counts: wrap([]int{bins}, counts), Edges: wrap([]int{bins + 1}, edges)}, nil
}

// Bincount counts occurrences of each non-negative integer in the 1-D array x,
// summing weights instead of ones when weights is non-nil. The result length
// is max(max(x)+1, minLength).
// Errors:
//   - ErrNilArray, ErrUnsupportedRank, ErrNotInteger, ErrNegativeValue,
//     ErrShapeMismatch (weights length), ErrInvalidArgument (minLength < 0,
//     or a value or minLength that would need more than MaxElements bins).
//
// Complexity: O(len(x) + result length).
func Bincount(x, weights *NDArray, minLength int) (*NDArray, error) {
	if x == nil {
		return nil, arrayErrorf(opBincount, ErrNilArray)
	}
	if len(x.shape) != 1 {
		return nil, arrayErrorf(opBincount, rankErr(x, "1"))
	}
	if minLength < 0 || int64(minLength) > MaxElements {
		return nil, arrayErrorf(opBincount, fmt.Errorf("minLength=%d: %w", minLength, ErrInvalidArgument))
	}
	if weights != nil && !shape.Equal(x.shape, weights.shape) {
		return nil, arrayErrorf(opBincount, fmt.Errorf("weights %v for %v: %w", weights.shape, x.shape, ErrShapeMismatch))
	}
	n := minLength
	for i, v := range x.data {
		if v != math.Trunc(v) || isNonFinite(v) {
			return nil, arrayErrorf(opBincount, fmt.Errorf("x[%d]=%g: %w", i, v, ErrNotInteger))
		}
		if v < 0 {
			return nil, arrayErrorf(opBincount, fmt.Errorf("x[%d]=%g: %w", i, v, ErrNegativeValue))
		}
		if v >= float64(MaxElements) {
			return nil, arrayErrorf(opBincount, fmt.Errorf("x[%d]=%g needs more than %d bins: %w", i, v, MaxElements, ErrInvalidArgument))
		}
		n = max(n, int(v)+1)
	}
	out := zerosOf([]int{n})
	for i, v := range x.data {
		w := 1.0
		if weights != nil {
			w = weights.data[i]
		}
		out.data[int(v)] += w
	}

	return out, nil
}

// Average returns Σ w[i]*a[i] / Σ w[i]; nil weights give the plain mean.
// Errors: ErrNilArray, ErrShapeMismatch, ErrInvalidArgument (weights sum to zero).
func Average(a, weights *NDArray) (float64, error) {
	if a == nil {
		return 0, arrayErrorf(opAverage, ErrNilArray)
	}
	if weights == nil {
		return Mean(a)
	}
	if !shape.Equal(a.shape, weights.shape) {
		return 0, arrayErrorf(opAverage, fmt.Errorf("weights %v for %v: %w", weights.shape, a.shape, ErrShapeMismatch))
	}
	ws := floats.Sum(weights.data)
	if ws == 0 {
		return 0, arrayErrorf(opAverage, fmt.Errorf("weights sum to zero: %w", ErrInvalidArgument))
	}

	return floats.Dot(a.data, weights.data) / ws, nil
}

// covariance returns the v×v sample covariance of a (variables in rows).
func covariance(tag string, a *NDArray) ([]float64, int, error) {
	if a == nil {
		return nil, 0, arrayErrorf(tag, ErrNilArray)
	}
	var v, obs int
	switch len(a.shape) {
	case 1:
		v, obs = 1, a.shape[0]
	case 2:
		v, obs = a.shape[0], a.shape[1]
	default:
		return nil, 0, arrayErrorf(tag, rankErr(a, "1 or 2"))
	}
	if v == 0 {
		return nil, 0, arrayErrorf(tag, fmt.Errorf("no variables: %w", ErrEmptyArray))
	}
	if obs < 2 {
		return nil, 0, arrayErrorf(tag, fmt.Errorf("%d observations: %w", obs, ErrInsufficientData))
	}
	var sym mat.SymDense
	stat.CovarianceMatrix(&sym, mat.NewDense(v, obs, a.data).T(), nil)
	out := make([]float64, v*v)
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			out[i*v+j] = sym.At(i, j)
		}
	}

	return out, v, nil
}

// Cov returns the sample covariance matrix (shape [v, v]; [1, 1] for 1-D input).
// Errors: ErrNilArray, ErrUnsupportedRank, ErrEmptyArray, ErrInsufficientData (< 2 observations).
// Complexity: O(v²·N).
func Cov(a *NDArray) (*NDArray, error) {
	c, v, err := covariance(opCov, a)
	if err != nil {
		return nil, err
	}

	return wrap([]int{v, v}, c), nil
}

// Corrcoef returns the Pearson correlation matrix c[i,j]/sqrt(c[i,i]*c[j,j]).
// Errors: as Cov.
func Corrcoef(a *NDArray) (*NDArray, error) {
	c, v, err := covariance(opCorrcoef, a)
	if err != nil {
		return nil, err
	}
	out := make([]float64, v*v)
	for i := 0; i < v; i++ {
		for j := 0; j < v; j++ {
			r := c[i*v+j] / math.Sqrt(c[i*v+i]*c[j*v+j])
			if !math.IsNaN(r) {
				r = math.Max(-1, math.Min(1, r))
			}
			out[i*v+j] = r
		}
	}

	return wrap([]int{v, v}, out), nil
}
