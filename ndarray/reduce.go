// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - One reduction primitive, Reduce(a, axis, fold), plus its global twin
//     ReduceAll(a, fold). Every named reduction is a Fold plugged into them.
//
// Contract:
//   - The reduced shape drops axis; an empty result shape becomes [1].
//   - Each source element is visited exactly once (lane gather + fold).
//   - Reductions without an identity (min, max, argmin, argmax, median,
//     percentile, quantile, ptp) fail with ErrEmptyArray on zero-length input.
//   - Sum of nothing is 0, Prod of nothing is 1, Mean/Var/Std of nothing is NaN.
//   - NaN propagates through Min/Max/Median/quantiles; ArgMin/ArgMax report the
//     first NaN position.
//
// Indices returned by ArgMin/ArgMax are 0-based.

package ndarray

import (
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvnd/shape"
)

// Fold collapses one lane to a single value. The slice is reused between calls
// and must not be retained or modified.
type Fold func(lane []float64) float64

// reduction tags
const (
	opReduce     = "Reduce"
	opSum        = "Sum"
	opProd       = "Prod"
	opMean       = "Mean"
	opVar        = "Var"
	opStd        = "Std"
	opMin        = "Min"
	opMax        = "Max"
	opArgMin     = "ArgMin"
	opArgMax     = "ArgMax"
	opAll        = "All"
	opAny        = "Any"
	opMedian     = "Median"
	opPercentile = "Percentile"
	opQuantile   = "Quantile"
	opPtp        = "Ptp"
)

// Reduce applies fold to every lane along axis.
// Implementation:
//   - Stage 1: validate a and axis.
//   - Stage 2: reduced shape = shape without axis ([1] when nothing remains).
//   - Stage 3: gather each lane into one reused buffer and store fold(lane).
//
// Errors:
//   - ErrNilArray, ErrAxisOutOfRange, ErrInvalidArgument (nil fold).
//
// Complexity:
//   - Time O(size + Σ cost(fold)), Space O(shape[axis] + size_out).
func Reduce(a *NDArray, axis int, fold Fold) (*NDArray, error) {
	if fold == nil {
		return nil, arrayErrorf(opReduce, ErrInvalidArgument)
	}

	return reduceAxis(opReduce, a, axis, false, fold)
}

// ReduceAll applies fold to the whole flattened buffer.
// Errors: ErrNilArray, ErrInvalidArgument (nil fold).
func ReduceAll(a *NDArray, fold Fold) (float64, error) {
	if fold == nil {
		return 0, arrayErrorf(opReduce, ErrInvalidArgument)
	}

	return reduceGlobal(opReduce, a, false, fold)
}

func reduceAxis(tag string, a *NDArray, axis int, nonEmpty bool, fold Fold) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(tag, err)
	}
	n := a.shape[axis]
	if nonEmpty && n == 0 {
		return nil, arrayErrorf(tag, fmt.Errorf("axis %d has length 0: %w", axis, ErrEmptyArray))
	}
	out := zerosOf(shape.RemoveAxis(a.shape, axis))
	buf := make([]float64, n)
	forEachLane(a.shape, axis, func(lane, base, step int) {
		gatherLane(buf, a.data, base, step)
		out.data[lane] = fold(buf)
	})

	return out, nil
}

func reduceGlobal(tag string, a *NDArray, nonEmpty bool, fold Fold) (float64, error) {
	if a == nil {
		return 0, arrayErrorf(tag, ErrNilArray)
	}
	if nonEmpty && len(a.data) == 0 {
		return 0, arrayErrorf(tag, ErrEmptyArray)
	}

	return fold(a.data), nil
}

// ---------- folds ----------

func foldSum(x []float64) float64  { return floats.Sum(x) }
func foldProd(x []float64) float64 { return floats.Prod(x) }

func foldMean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}

	return floats.Sum(x) / float64(len(x))
}

// foldVar is the two-pass population variance.
func foldVar(x []float64) float64 {
	m := foldMean(x)
	if math.IsNaN(m) {
		return m
	}
	var ss float64
	for _, v := range x {
		d := v - m
		ss += d * d
	}

	return ss / float64(len(x))
}

func foldStd(x []float64) float64 { return math.Sqrt(foldVar(x)) }

func foldMin(x []float64) float64 {
	if floats.HasNaN(x) {
		return math.NaN()
	}

	return floats.Min(x)
}

func foldMax(x []float64) float64 {
	if floats.HasNaN(x) {
		return math.NaN()
	}

	return floats.Max(x)
}

func foldPtp(x []float64) float64 { return foldMax(x) - foldMin(x) }

// firstNaN returns the index of the first NaN, or -1.
func firstNaN(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) {
			return i
		}
	}

	return -1
}

func foldArgMin(x []float64) float64 {
	if i := firstNaN(x); i >= 0 {
		return float64(i)
	}

	return float64(floats.MinIdx(x))
}

func foldArgMax(x []float64) float64 {
	if i := firstNaN(x); i >= 0 {
		return float64(i)
	}

	return float64(floats.MaxIdx(x))
}

func foldAll(x []float64) float64 {
	for _, v := range x {
		if v == 0 {
			return 0
		}
	}

	return 1
}

func foldAny(x []float64) float64 {
	for _, v := range x {
		if v != 0 {
			return 1
		}
	}

	return 0
}

// quantileOf is the linear-interpolation quantile (index = q*(n-1)) of a
// non-empty lane; q must already be in [0, 1]. Any NaN yields NaN.
func quantileOf(x []float64, q float64) float64 {
	if floats.HasNaN(x) {
		return math.NaN()
	}
	s := slices.Clone(x)
	slices.Sort(s)
	pos := q * float64(len(s)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return s[lo]
	}

	return s[lo] + (s[hi]-s[lo])*(pos-float64(lo))
}

func quantileFold(q float64) Fold {
	return func(x []float64) float64 { return quantileOf(x, q) }
}

func checkQuantile(q float64) error {
	if math.IsNaN(q) || q < 0 || q > 1 {
		return fmt.Errorf("q=%g outside [0, 1]: %w", q, ErrInvalidArgument)
	}

	return nil
}

func checkPercentile(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 100 {
		return fmt.Errorf("percentile %g outside [0, 100]: %w", p, ErrInvalidArgument)
	}

	return nil
}

// ---------- named reductions ----------

// Sum returns the sum of all elements (0 for an empty array).
func Sum(a *NDArray) (float64, error) { return reduceGlobal(opSum, a, false, foldSum) }

// SumAxis sums along axis.
func SumAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opSum, a, axis, false, foldSum)
}

// Prod returns the product of all elements (1 for an empty array).
func Prod(a *NDArray) (float64, error) { return reduceGlobal(opProd, a, false, foldProd) }

// ProdAxis multiplies along axis.
func ProdAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opProd, a, axis, false, foldProd)
}

// Mean returns the arithmetic mean (NaN for an empty array).
func Mean(a *NDArray) (float64, error) { return reduceGlobal(opMean, a, false, foldMean) }

// MeanAxis averages along axis.
func MeanAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opMean, a, axis, false, foldMean)
}

// Var returns the population variance (two-pass).
func Var(a *NDArray) (float64, error) { return reduceGlobal(opVar, a, false, foldVar) }

// VarAxis returns the population variance along axis.
func VarAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opVar, a, axis, false, foldVar)
}

// Std returns the population standard deviation.
func Std(a *NDArray) (float64, error) { return reduceGlobal(opStd, a, false, foldStd) }

// StdAxis returns the population standard deviation along axis.
func StdAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opStd, a, axis, false, foldStd)
}

// Min returns the smallest element; NaN if any element is NaN.
// Errors: ErrNilArray, ErrEmptyArray.
func Min(a *NDArray) (float64, error) { return reduceGlobal(opMin, a, true, foldMin) }

// MinAxis returns the minima along axis.
func MinAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opMin, a, axis, true, foldMin)
}

// Max returns the largest element; NaN if any element is NaN.
// Errors: ErrNilArray, ErrEmptyArray.
func Max(a *NDArray) (float64, error) { return reduceGlobal(opMax, a, true, foldMax) }

// MaxAxis returns the maxima along axis.
func MaxAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opMax, a, axis, true, foldMax)
}

// ArgMin returns the 0-based flat index of the first minimum (or first NaN).
// Errors: ErrNilArray, ErrEmptyArray.
func ArgMin(a *NDArray) (int, error) {
	v, err := reduceGlobal(opArgMin, a, true, foldArgMin)

	return int(v), err
}

// ArgMinAxis returns the 0-based lane positions of the minima along axis.
func ArgMinAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opArgMin, a, axis, true, foldArgMin)
}

// ArgMax returns the 0-based flat index of the first maximum (or first NaN).
// Errors: ErrNilArray, ErrEmptyArray.
func ArgMax(a *NDArray) (int, error) {
	v, err := reduceGlobal(opArgMax, a, true, foldArgMax)

	return int(v), err
}

// ArgMaxAxis returns the 0-based lane positions of the maxima along axis.
func ArgMaxAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opArgMax, a, axis, true, foldArgMax)
}

// All reports whether every element is non-zero (true for an empty array).
func All(a *NDArray) (bool, error) {
	v, err := reduceGlobal(opAll, a, false, foldAll)

	return v == 1, err
}

// AllAxis returns 1 where every lane element is non-zero, else 0.
func AllAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opAll, a, axis, false, foldAll)
}

// Any reports whether some element is non-zero (false for an empty array).
func Any(a *NDArray) (bool, error) {
	v, err := reduceGlobal(opAny, a, false, foldAny)

	return v == 1, err
}

// AnyAxis returns 1 where some lane element is non-zero, else 0.
func AnyAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opAny, a, axis, false, foldAny)
}

// Median returns the middle value (mean of the two middles for even sizes).
// Errors: ErrNilArray, ErrEmptyArray.
func Median(a *NDArray) (float64, error) {
	return reduceGlobal(opMedian, a, true, quantileFold(0.5))
}

// MedianAxis returns the medians along axis.
func MedianAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opMedian, a, axis, true, quantileFold(0.5))
}

// Quantile returns the q-th quantile, q ∈ [0, 1], by linear interpolation.
// Errors: ErrNilArray, ErrInvalidArgument, ErrEmptyArray.
func Quantile(a *NDArray, q float64) (float64, error) {
	if err := checkQuantile(q); err != nil {
		return 0, arrayErrorf(opQuantile, err)
	}

	return reduceGlobal(opQuantile, a, true, quantileFold(q))
}

// QuantileAxis returns the q-th quantiles along axis.
func QuantileAxis(a *NDArray, q float64, axis int) (*NDArray, error) {
	if err := checkQuantile(q); err != nil {
		return nil, arrayErrorf(opQuantile, err)
	}

	return reduceAxis(opQuantile, a, axis, true, quantileFold(q))
}

// Percentile returns the p-th percentile, p ∈ [0, 100], by linear interpolation.
// Percentile([1,2,3,4], 50) == 2.5.
// Errors: ErrNilArray, ErrInvalidArgument, ErrEmptyArray.
func Percentile(a *NDArray, p float64) (float64, error) {
	if err := checkPercentile(p); err != nil {
		return 0, arrayErrorf(opPercentile, err)
	}

	return reduceGlobal(opPercentile, a, true, quantileFold(p/100))
}

// PercentileAxis returns the p-th percentiles along axis.
func PercentileAxis(a *NDArray, p float64, axis int) (*NDArray, error) {
	if err := checkPercentile(p); err != nil {
		return nil, arrayErrorf(opPercentile, err)
	}

	return reduceAxis(opPercentile, a, axis, true, quantileFold(p/100))
}

// Ptp returns max - min ("peak to peak").
// Errors: ErrNilArray, ErrEmptyArray.
func Ptp(a *NDArray) (float64, error) { return reduceGlobal(opPtp, a, true, foldPtp) }

// PtpAxis returns max - min along axis.
func PtpAxis(a *NDArray, axis int) (*NDArray, error) {
	return reduceAxis(opPtp, a, axis, true, foldPtp)
}
