// SPDX-License-Identifier: MIT

// Package ndarray - NDArray storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer addressed by Σ coord[d]*strides[d].
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration in results).
//   - Enforce the single storage invariant len(data) == product(shape) at every constructor.
//
// Value semantics:
//   - Every operation returns a new *NDArray with its own buffer.
//   - Set is the only mutator; it rewrites one element of an array the caller owns.
//     Treat the result as a new logical value: never Set on an array another
//     goroutine is reading.
//
// Complexity quicksheet:
//   - New: O(size) copy; At/Set: O(ndim); Clone: O(size); Shape/Strides: O(ndim) copies.

package ndarray

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvnd/shape"
)

// ---------- error context tags ----------

const (
	ctxNew  = "New"
	ctxAt   = "At"
	ctxSet  = "Set"
	ctxItem = "Item"
)

// NDArray is a dense, row-major, float64 N-dimensional array.
//   - shape holds per-axis lengths (rank ≥ 1, entries ≥ 0).
//   - data is a flat buffer of length product(shape); the last axis varies fastest.
//
// Strides are derived from shape on demand and never stored.
type NDArray struct {
	shape []int     // per-axis lengths, never empty
	data  []float64 // contiguous row-major storage (len == product(shape))
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*NDArray)(nil)

// New builds an array of the given shape from a copy of data.
// Implementation:
//   - Stage 1: validate shape (rank ≥ 1, dims ≥ 0, no overflow).
//   - Stage 2: require len(data) == product(shape).
//   - Stage 3: copy data so the caller keeps ownership of its slice.
//
// Errors:
//   - ErrInvalidShape, ErrSizeMismatch.
//
// Complexity:
//   - Time O(size), Space O(size).
func New(data []float64, dims ...int) (*NDArray, error) {
	n, err := shape.Validate(dims)
	if err != nil {
		return nil, shapeErrorf(ctxNew, err)
	}
	if len(data) != n {
		return nil, arrayErrorf(ctxNew, fmt.Errorf("len(data)=%d, shape %v needs %d: %w", len(data), dims, n, ErrSizeMismatch))
	}
	buf := make([]float64, n)
	copy(buf, data)

	return &NDArray{shape: shape.Clone(dims), data: buf}, nil
}

// FromSlice returns a 1-D array holding a copy of data.
func FromSlice(data []float64) *NDArray {
	buf := make([]float64, len(data))
	copy(buf, data)

	return &NDArray{shape: []int{len(data)}, data: buf}
}

// Scalar returns the shape-[1] array holding v.
func Scalar(v float64) *NDArray {
	return &NDArray{shape: []int{1}, data: []float64{v}}
}

// wrap adopts shp and data without copying. Internal: callers guarantee
// len(data) == product(shp) and that nobody else holds either slice.
func wrap(shp []int, data []float64) *NDArray {
	return &NDArray{shape: shp, data: data}
}

// limitSize validates dims and rejects element counts above MaxElements,
// so the later make and byte accounting cannot overflow.
func limitSize(tag string, dims []int) (int, error) {
	n, err := shape.Validate(dims)
	if err != nil {
		return 0, shapeErrorf(tag, err)
	}
	if int64(n) > MaxElements {
		return 0, shapeErrorf(tag, fmt.Errorf("%d elements above %d: %w", n, MaxElements, shape.ErrTooLarge))
	}

	return n, nil
}

// zerosOf allocates an unaccounted zero array; used for derived results whose
// size is bounded by their inputs.
func zerosOf(shp []int) *NDArray {
	return &NDArray{shape: shp, data: make([]float64, shape.Size(shp))}
}

// Shape returns a copy of the per-axis lengths.
// Complexity: O(ndim).
func (a *NDArray) Shape() []int { return shape.Clone(a.shape) }

// Ndim returns the rank.
func (a *NDArray) Ndim() int { return len(a.shape) }

// Size returns the element count.
func (a *NDArray) Size() int { return len(a.data) }

// Len returns the length of the first axis.
func (a *NDArray) Len() int { return a.shape[0] }

// Strides returns the row-major strides (in elements) derived from the shape.
func (a *NDArray) Strides() []int { return shape.Strides(a.shape) }

// Data returns a copy of the flat row-major buffer.
// Complexity: O(size).
func (a *NDArray) Data() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

// offsetOf bounds-checks coord and returns its flat offset.
func (a *NDArray) offsetOf(coord []int) (int, error) {
	if len(coord) != len(a.shape) {
		return 0, fmt.Errorf("rank %d index for rank %d array: %w", len(coord), len(a.shape), ErrIndexOutOfRange)
	}
	off, stride := 0, 1
	for d := len(a.shape) - 1; d >= 0; d-- {
		c := coord[d]
		if c < 0 || c >= a.shape[d] {
			return 0, fmt.Errorf("index %d on axis %d (len %d): %w", c, d, a.shape[d], ErrIndexOutOfRange)
		}
		off += c * stride
		stride *= a.shape[d]
	}

	return off, nil
}

// At returns the element at coord (one 0-based index per axis).
// Errors:
//   - ErrIndexOutOfRange on wrong rank or any out-of-bounds coordinate.
//
// Complexity: O(ndim).
func (a *NDArray) At(coord ...int) (float64, error) {
	off, err := a.offsetOf(coord)
	if err != nil {
		return 0, arrayErrorf(ctxAt, err)
	}

	return a.data[off], nil
}

// Set stores v at coord. This is the only in-place mutator of the package;
// the caller must own the array exclusively.
// Errors:
//   - ErrIndexOutOfRange.
//
// Complexity: O(ndim).
func (a *NDArray) Set(v float64, coord ...int) error {
	off, err := a.offsetOf(coord)
	if err != nil {
		return arrayErrorf(ctxSet, err)
	}
	a.data[off] = v

	return nil
}

// Item returns the only element of a size-1 array.
func (a *NDArray) Item() (float64, error) {
	if len(a.data) != 1 {
		return 0, arrayErrorf(ctxItem, fmt.Errorf("size %d: %w", len(a.data), ErrSizeMismatch))
	}

	return a.data[0], nil
}

// Clone returns a deep copy.
// Complexity: O(size).
func (a *NDArray) Clone() *NDArray {
	return wrap(shape.Clone(a.shape), a.Data())
}

// Equal reports whether b has the same shape and bitwise-equal values
// (NaN == NaN for the purpose of this structural comparison).
func (a *NDArray) Equal(b *NDArray) bool {
	if a == nil || b == nil {
		return a == b
	}
	if !shape.Equal(a.shape, b.shape) {
		return false
	}
	for i, v := range a.data {
		w := b.data[i]
		if v != w && !(v != v && w != w) {
			return false
		}
	}

	return true
}

// Do visits every element in row-major order with its flat offset; stops when f returns false.
// Complexity: O(size).
func (a *NDArray) Do(f func(offset int, v float64) bool) {
	for i, v := range a.data {
		if !f(i, v) {
			return
		}
	}
}

// Apply returns a new array with f applied to every element (and its coordinate).
// The coordinate slice is reused between calls; copy it if retained.
// Complexity: O(size*ndim).
func (a *NDArray) Apply(f func(coord []int, v float64) float64) *NDArray {
	out := zerosOf(shape.Clone(a.shape))
	if len(a.data) == 0 {
		return out
	}
	coord := make([]int, len(a.shape))
	for i, v := range a.data {
		out.data[i] = f(coord, v)
		shape.Next(coord, a.shape)
	}

	return out
}

// String renders nested brackets, e.g. [[1, 2], [3, 4]].
// Intended for diagnostics; not for hot paths.
// Complexity: O(size).
func (a *NDArray) String() string {
	if a == nil {
		return "<nil>"
	}
	var b strings.Builder
	st := shape.Strides(a.shape)
	var rec func(axis, base int)
	rec = func(axis, base int) {
		b.WriteString("[")
		for i := 0; i < a.shape[axis]; i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			if axis == len(a.shape)-1 {
				b.WriteString(strconv.FormatFloat(a.data[base+i], 'g', -1, 64))
			} else {
				rec(axis+1, base+i*st[axis])
			}
		}
		b.WriteString("]")
	}
	rec(0, 0)

	return b.String()
}

// validateNotNil is the first step of every composite validation.
func validateNotNil(arrays ...*NDArray) error {
	for _, a := range arrays {
		if a == nil {
			return ErrNilArray
		}
	}

	return nil
}

// validateAxis checks a non-nil array and 0 ≤ axis < ndim.
func validateAxis(a *NDArray, axis int) error {
	if a == nil {
		return ErrNilArray
	}
	if err := shape.CheckAxis(axis, len(a.shape)); err != nil {
		return fmt.Errorf("axis %d for rank %d: %w", axis, len(a.shape), err)
	}

	return nil
}
