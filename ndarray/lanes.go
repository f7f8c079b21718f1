// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - The "hold every other coordinate fixed, walk one axis" primitive shared by
//     reductions, cumulative ops, per-axis sort, flip/roll/repeat/insert/delete,
//     diff and ApplyAlongAxis.
//
// Geometry:
//   - For shape s and axis k: outer = Π s[:k], n = s[k], inner = Π s[k+1:].
//   - Lane (o, i), o ∈ [0,outer), i ∈ [0,inner), starts at o*n*inner + i and
//     advances by inner; its index in the reduced shape is o*inner + i.
//   - Every element belongs to exactly one lane, so a full pass is O(size).

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvnd/shape"
)

// forEachLane calls fn(lane, base, step) for every lane along axis in reduced-shape order.
func forEachLane(shp []int, axis int, fn func(lane, base, step int)) {
	outer, n, inner := shape.LaneGeometry(shp, axis)
	lane := 0
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			fn(lane, o*n*inner+i, inner)
			lane++
		}
	}
}

// gatherLane copies the lane (base, step) of src into dst (len(dst) elements).
func gatherLane(dst, src []float64, base, step int) {
	for k := range dst {
		dst[k] = src[base+k*step]
	}
}

// scatterLane writes src into the lane (base, step) of dst.
func scatterLane(dst, src []float64, base, step int) {
	for k, v := range src {
		dst[base+k*step] = v
	}
}

// remapAxis builds a new array whose axis has len(idx) entries: position k of
// every output lane takes source lane element idx[k], or fill[k] when idx[k] < 0.
// It is the shared engine of Insert/Delete/Repeat/Flip/Roll along an axis.
// Complexity: O(size_out).
func remapAxis(a *NDArray, axis int, idx []int, fill []float64) *NDArray {
	outShape := shape.Clone(a.shape)
	outShape[axis] = len(idx)
	out := zerosOf(outShape)
	outer, n, inner := shape.LaneGeometry(a.shape, axis)
	m := len(idx)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			srcBase := o*n*inner + i
			dstBase := o*m*inner + i
			for k, s := range idx {
				if s >= 0 {
					out.data[dstBase+k*inner] = a.data[srcBase+s*inner]
				} else {
					out.data[dstBase+k*inner] = fill[k]
				}
			}
		}
	}

	return out
}

// ApplyAlongAxis applies fn to every 1-D lane along axis and stacks the results
// back along the same axis. All lanes must produce the same length; that length
// replaces shape[axis] in the result.
// Implementation:
//   - Stage 1: validate axis; gather each lane into a reusable buffer.
//   - Stage 2: call fn; the first lane fixes the output length.
//   - Stage 3: scatter the produced values into the output lane.
//
// Errors:
//   - ErrNilArray, ErrAxisOutOfRange, ErrShapeMismatch (ragged lane results),
//     and any error returned by fn (wrapped).
//
// Complexity:
//   - Time O(size + Σ cost(fn)), Space O(size_out).
func ApplyAlongAxis(a *NDArray, axis int, fn func(lane []float64) ([]float64, error)) (*NDArray, error) {
	const op = "ApplyAlongAxis"
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(op, err)
	}
	outer, n, inner := shape.LaneGeometry(a.shape, axis)
	buf := make([]float64, n)
	var out *NDArray
	m := -1
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			gatherLane(buf, a.data, o*n*inner+i, inner)
			res, err := fn(buf)
			if err != nil {
				return nil, arrayErrorf(op, err)
			}
			if m < 0 {
				m = len(res)
				outShape := shape.Clone(a.shape)
				outShape[axis] = m
				out = zerosOf(outShape)
			} else if len(res) != m {
				return nil, arrayErrorf(op, fmt.Errorf("lane length %d != %d: %w", len(res), m, ErrShapeMismatch))
			}
			scatterLane(out.data, res, o*m*inner+i, inner)
		}
	}
	if out == nil { // no lanes at all: keep the axis length
		out = zerosOf(shape.Clone(a.shape))
	}

	return out, nil
}
