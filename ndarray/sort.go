// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Sorting (flattened or per lane), index sorting, distinct values and
//     non-zero enumeration.
//
// Ordering:
//   - Ascending, stable; NaNs order after every number (and keep their
//     relative order). Indices are 0-based.

package ndarray

import (
	"math"
	"slices"

	"github.com/katalvlaran/lvnd/shape"
)

// cmpNaNLast orders numbers ascending with NaN greater than everything.
func cmpNaNLast(x, y float64) int {
	xn, yn := math.IsNaN(x), math.IsNaN(y)
	switch {
	case xn && yn:
		return 0
	case xn:
		return 1
	case yn:
		return -1
	case x < y:
		return -1
	case x > y:
		return 1
	}

	return 0
}

// argsortInto writes the stable sorting permutation of x into idx.
func argsortInto(idx []int, x []float64) {
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int { return cmpNaNLast(x[i], x[j]) })
}

// Sort returns the flattened elements in ascending order as a 1-D array.
// Errors: ErrNilArray. Complexity: O(size log size).
func Sort(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("Sort", ErrNilArray)
	}
	out := FromSlice(a.data)
	slices.SortStableFunc(out.data, cmpNaNLast)

	return out, nil
}

// SortAxis sorts every lane along axis independently; the shape is kept.
// Errors: ErrNilArray, ErrAxisOutOfRange.
// Complexity: O(size log shape[axis]).
func SortAxis(a *NDArray, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf("Sort", err)
	}
	out := zerosOf(shape.Clone(a.shape))
	buf := make([]float64, a.shape[axis])
	forEachLane(a.shape, axis, func(_, base, step int) {
		gatherLane(buf, a.data, base, step)
		slices.SortStableFunc(buf, cmpNaNLast)
		scatterLane(out.data, buf, base, step)
	})

	return out, nil
}

// ArgSort returns the 0-based flat indices that sort a, as a 1-D array:
// a.Data()[ArgSort(a)[i]] == Sort(a)[i].
// Errors: ErrNilArray. Complexity: O(size log size).
func ArgSort(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("ArgSort", ErrNilArray)
	}
	idx := make([]int, len(a.data))
	argsortInto(idx, a.data)

	return intsToArray(idx), nil
}

// ArgSortAxis returns, per lane along axis, the 0-based positions that sort the lane.
// Errors: ErrNilArray, ErrAxisOutOfRange.
func ArgSortAxis(a *NDArray, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf("ArgSort", err)
	}
	n := a.shape[axis]
	out := zerosOf(shape.Clone(a.shape))
	buf := make([]float64, n)
	idx := make([]int, n)
	forEachLane(a.shape, axis, func(_, base, step int) {
		gatherLane(buf, a.data, base, step)
		argsortInto(idx, buf)
		for k, p := range idx {
			out.data[base+k*step] = float64(p)
		}
	})

	return out, nil
}

// intsToArray converts indices to a 1-D float64 array.
func intsToArray(idx []int) *NDArray {
	out := zerosOf([]int{len(idx)})
	for i, v := range idx {
		out.data[i] = float64(v)
	}

	return out
}

// UniqueOptions selects the companion arrays returned by Unique.
type UniqueOptions struct {
	ReturnIndex   bool // first occurrence of each distinct value
	ReturnInverse bool // position in Values of every input element
	ReturnCounts  bool // occurrences of each distinct value
}

// UniqueResult holds the sorted distinct values and the requested companions.
// Unrequested companions are nil. All indices are 0-based.
type UniqueResult struct {
	Values  *NDArray
	Indices *NDArray
	Inverse *NDArray
	Counts  *NDArray
}

// Unique returns the sorted distinct values of the flattened array. All NaNs
// collapse into one trailing value.
// Implementation:
//   - Stage 1: stable argsort, so the first index of each run is the first occurrence.
//   - Stage 2: walk runs of equal values, recording value, first index and count.
//   - Stage 3: fill the inverse mapping per run.
//
// Errors: ErrNilArray.
// Complexity: O(size log size).
func Unique(a *NDArray, opts UniqueOptions) (UniqueResult, error) {
	if a == nil {
		return UniqueResult{}, arrayErrorf("Unique", ErrNilArray)
	}
	n := len(a.data)
	perm := make([]int, n)
	argsortInto(perm, a.data)

	var values, first, counts []float64
	inverse := make([]float64, n)
	for i := 0; i < n; {
		v := a.data[perm[i]]
		j := i + 1
		for j < n && cmpNaNLast(a.data[perm[j]], v) == 0 {
			j++
		}
		g := float64(len(values))
		for k := i; k < j; k++ {
			inverse[perm[k]] = g
		}
		values = append(values, v)
		first = append(first, float64(perm[i]))
		counts = append(counts, float64(j-i))
		i = j
	}

	res := UniqueResult{Values: FromSlice(values)}
	if opts.ReturnIndex {
		res.Indices = FromSlice(first)
	}
	if opts.ReturnInverse {
		res.Inverse = wrap([]int{n}, inverse)
	}
	if opts.ReturnCounts {
		res.Counts = FromSlice(counts)
	}

	return res, nil
}

// nonzeroCoords returns the coordinates of the non-zero elements in row-major order.
func nonzeroCoords(a *NDArray) [][]int {
	var out [][]int
	if len(a.data) == 0 {
		return out
	}
	coord := make([]int, len(a.shape))
	for _, v := range a.data {
		if v != 0 {
			out = append(out, slices.Clone(coord))
		}
		shape.Next(coord, a.shape)
	}

	return out
}

// ArgWhere returns an N×ndim array whose rows are the 0-based coordinates of
// the N non-zero elements, in row-major order.
// Errors: ErrNilArray. Complexity: O(size*ndim).
func ArgWhere(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("ArgWhere", ErrNilArray)
	}
	coords := nonzeroCoords(a)
	nd := len(a.shape)
	out := zerosOf([]int{len(coords), nd})
	for r, c := range coords {
		for d, v := range c {
			out.data[r*nd+d] = float64(v)
		}
	}

	return out, nil
}

// Nonzero returns one 1-D array per axis holding the 0-based coordinates of
// the non-zero elements along that axis.
// Errors: ErrNilArray. Complexity: O(size*ndim).
func Nonzero(a *NDArray) ([]*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf("Nonzero", ErrNilArray)
	}
	coords := nonzeroCoords(a)
	out := make([]*NDArray, len(a.shape))
	for d := range out {
		out[d] = zerosOf([]int{len(coords)})
		for r, c := range coords {
			out[d].data[r] = float64(c[d])
		}
	}

	return out, nil
}
