// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Replication and reordering: Tile, Repeat, Flip, Roll, Pad, Diff.
//   - Axis forms run on the shared lane geometry (remapAxis); flattened forms
//     work on the row-major buffer and, where noted, keep the input shape.

package ndarray

import (
	"fmt"

	"github.com/katalvlaran/lvnd/shape"
)

const (
	opTile   = "Tile"
	opRepeat = "Repeat"
	opFlip   = "Flip"
	opRoll   = "Roll"
	opPad    = "Pad"
	opDiff   = "Diff"
)

// Tile replicates a reps[d] times along every axis d. A shorter reps is
// left-padded with 1; a shorter shape is left-padded with 1 as well.
// Errors: ErrNilArray, ErrInvalidArgument (empty or negative reps),
// ErrInvalidShape (result above MaxElements).
// Complexity: O(size_out*ndim_out).
func Tile(a *NDArray, reps []int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opTile, ErrNilArray)
	}
	if len(reps) == 0 {
		return nil, arrayErrorf(opTile, fmt.Errorf("empty reps: %w", ErrInvalidArgument))
	}
	for _, r := range reps {
		if r < 0 {
			return nil, arrayErrorf(opTile, fmt.Errorf("reps %v: %w", reps, ErrInvalidArgument))
		}
	}
	rank := max(len(a.shape), len(reps))
	src := shape.LeftPad(a.shape, rank)
	rp := shape.LeftPad(reps, rank)
	outShape := make([]int, rank)
	for d := range outShape {
		if rp[d] > 0 && int64(src[d]) > MaxElements/int64(rp[d]) {
			return nil, shapeErrorf(opTile, fmt.Errorf("%d×%d on axis %d: %w", src[d], rp[d], d, shape.ErrTooLarge))
		}
		outShape[d] = src[d] * rp[d]
	}
	if _, err := limitSize(opTile, outShape); err != nil {
		return nil, err
	}
	out := zerosOf(outShape)
	if len(out.data) == 0 {
		return out, nil
	}
	st := shape.Strides(src)
	coord := make([]int, rank)
	for i := range out.data {
		off := 0
		for d, c := range coord {
			off += (c % src[d]) * st[d]
		}
		out.data[i] = a.data[off]
		shape.Next(coord, outShape)
	}

	return out, nil
}

// Repeat returns the flattened array with every element repeated n times.
// Errors: ErrNilArray, ErrInvalidArgument (n < 0).
// Complexity: O(size*n).
func Repeat(a *NDArray, n int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opRepeat, ErrNilArray)
	}
	if n < 0 {
		return nil, arrayErrorf(opRepeat, fmt.Errorf("n=%d: %w", n, ErrInvalidArgument))
	}
	if err := repeatLimit(len(a.data), n); err != nil {
		return nil, err
	}
	out := zerosOf([]int{len(a.data) * n})
	for i, v := range a.data {
		for k := 0; k < n; k++ {
			out.data[i*n+k] = v
		}
	}

	return out, nil
}

// repeatLimit rejects repeat counts whose result would exceed MaxElements.
func repeatLimit(size, n int) error {
	if n > 0 && int64(size) > MaxElements/int64(n) {
		return shapeErrorf(opRepeat, fmt.Errorf("%d×%d elements: %w", size, n, shape.ErrTooLarge))
	}

	return nil
}

// RepeatAxis repeats every slice along axis n times in place.
// Errors: ErrNilArray, ErrAxisOutOfRange, ErrInvalidArgument (n < 0).
func RepeatAxis(a *NDArray, n, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opRepeat, err)
	}
	if n < 0 {
		return nil, arrayErrorf(opRepeat, fmt.Errorf("n=%d: %w", n, ErrInvalidArgument))
	}
	if err := repeatLimit(len(a.data), n); err != nil {
		return nil, err
	}
	idx := make([]int, 0, a.shape[axis]*n)
	for s := 0; s < a.shape[axis]; s++ {
		for k := 0; k < n; k++ {
			idx = append(idx, s)
		}
	}

	return remapAxis(a, axis, idx, nil), nil
}

// Flip reverses the order along every axis, which for a row-major buffer is a
// reversal of the flat data. The shape is kept.
// Errors: ErrNilArray.
func Flip(a *NDArray) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opFlip, ErrNilArray)
	}
	out := zerosOf(shape.Clone(a.shape))
	n := len(a.data)
	for i, v := range a.data {
		out.data[n-1-i] = v
	}

	return out, nil
}

// FlipAxis reverses the order along one axis.
// Errors: ErrNilArray, ErrAxisOutOfRange.
func FlipAxis(a *NDArray, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opFlip, err)
	}
	n := a.shape[axis]
	idx := make([]int, n)
	for k := range idx {
		idx[k] = n - 1 - k
	}

	return remapAxis(a, axis, idx, nil), nil
}

// normShift maps any shift onto [0, n).
func normShift(shift, n int) int {
	return ((shift % n) + n) % n
}

// Roll shifts the flattened elements circularly by shift (negative shifts move
// left). The shape is kept.
// Errors: ErrNilArray.
func Roll(a *NDArray, shift int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opRoll, ErrNilArray)
	}
	out := zerosOf(shape.Clone(a.shape))
	n := len(a.data)
	if n == 0 {
		return out, nil
	}
	s := normShift(shift, n)
	for i, v := range a.data {
		out.data[(i+s)%n] = v
	}

	return out, nil
}

// RollAxis shifts circularly along one axis.
// Errors: ErrNilArray, ErrAxisOutOfRange.
func RollAxis(a *NDArray, shift, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opRoll, err)
	}
	n := a.shape[axis]
	if n == 0 {
		return a.Clone(), nil
	}
	s := normShift(shift, n)
	idx := make([]int, n)
	for k := range idx {
		idx[k] = normShift(k-s, n)
	}

	return remapAxis(a, axis, idx, nil), nil
}

// PadMode selects how Pad fills positions outside the source.
type PadMode int

const (
	// PadConstant fills with a constant value.
	PadConstant PadMode = iota
	// PadEdge repeats the nearest edge value.
	PadEdge
	// PadWrap continues periodically from the opposite edge.
	PadWrap
	// PadReflect mirrors around the edges without repeating the edge value.
	PadReflect
)

var padModeNames = [...]string{PadConstant: "constant", PadEdge: "edge", PadWrap: "wrap", PadReflect: "reflect"}

// String returns the mode name.
func (m PadMode) String() string {
	if m < PadConstant || m > PadReflect {
		return fmt.Sprintf("PadMode(%d)", int(m))
	}

	return padModeNames[m]
}

// ParsePadMode maps "constant", "edge", "wrap" or "reflect" to a PadMode.
func ParsePadMode(s string) (PadMode, error) {
	for m, name := range padModeNames {
		if name == s {
			return PadMode(m), nil
		}
	}

	return 0, fmt.Errorf("pad mode %q: %w", s, ErrInvalidArgument)
}

// padSource maps padded position p (relative to the source start) to a source
// index along an axis of length n, or -1 for the constant fill.
func padSource(p, n int, mode PadMode) int {
	if p >= 0 && p < n {
		return p
	}
	switch mode {
	case PadEdge:
		if p < 0 {
			return 0
		}
		return n - 1
	case PadWrap:
		return normShift(p, n)
	case PadReflect:
		if n == 1 {
			return 0
		}
		period := 2 * (n - 1)
		m := normShift(p, period)
		if m >= n {
			m = period - m
		}
		return m
	}

	return -1
}

// Pad surrounds a with widths[d] = {before, after} positions on every axis d.
// A single widths entry applies to every axis.
// Implementation:
//   - Stage 1: validate widths and mode; non-constant modes need non-empty axes.
//   - Stage 2: for every output coordinate map each axis through padSource;
//     any -1 selects constant, otherwise read the mapped source element.
//
// Errors:
//   - ErrNilArray, ErrShapeMismatch (widths count), ErrInvalidArgument (negative
//     width, unknown mode, padding an empty axis by edge/wrap/reflect).
//
// Complexity: O(size_out*ndim).
func Pad(a *NDArray, widths [][2]int, mode PadMode, constant float64) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opPad, ErrNilArray)
	}
	nd := len(a.shape)
	if len(widths) == 1 && nd > 1 {
		w := widths[0]
		widths = make([][2]int, nd)
		for d := range widths {
			widths[d] = w
		}
	}
	if len(widths) != nd {
		return nil, arrayErrorf(opPad, fmt.Errorf("%d widths for rank %d: %w", len(widths), nd, ErrShapeMismatch))
	}
	if mode < PadConstant || mode > PadReflect {
		return nil, arrayErrorf(opPad, fmt.Errorf("%v: %w", mode, ErrInvalidArgument))
	}
	outShape := make([]int, nd)
	for d, w := range widths {
		if w[0] < 0 || w[1] < 0 {
			return nil, arrayErrorf(opPad, fmt.Errorf("widths %v on axis %d: %w", w, d, ErrInvalidArgument))
		}
		if int64(w[0]) > MaxElements || int64(w[1]) > MaxElements {
			return nil, shapeErrorf(opPad, fmt.Errorf("widths %v on axis %d: %w", w, d, shape.ErrTooLarge))
		}
		if mode != PadConstant && a.shape[d] == 0 && w[0]+w[1] > 0 {
			return nil, arrayErrorf(opPad, fmt.Errorf("%v padding of empty axis %d: %w", mode, d, ErrInvalidArgument))
		}
		outShape[d] = a.shape[d] + w[0] + w[1]
	}
	if _, err := limitSize(opPad, outShape); err != nil {
		return nil, err
	}
	out := zerosOf(outShape)
	if len(out.data) == 0 {
		return out, nil
	}
	st := shape.Strides(a.shape)
	coord := make([]int, nd)
	for i := range out.data {
		off := 0
		for d, c := range coord {
			s := padSource(c-widths[d][0], a.shape[d], mode)
			if s < 0 {
				off = -1
				break
			}
			off += s * st[d]
		}
		if off < 0 {
			out.data[i] = constant
		} else {
			out.data[i] = a.data[off]
		}
		shape.Next(coord, outShape)
	}

	return out, nil
}

// Diff returns the n-th discrete difference along axis; each pass shrinks the
// axis by one (out[k] = x[k+1] - x[k]). n == 0 returns a copy.
// Errors:
//   - ErrNilArray, ErrAxisOutOfRange, ErrInvalidArgument (n < 0),
//     ErrInsufficientData (shape[axis] <= n).
//
// Complexity: O(n*size).
func Diff(a *NDArray, n, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opDiff, err)
	}
	if n < 0 {
		return nil, arrayErrorf(opDiff, fmt.Errorf("n=%d: %w", n, ErrInvalidArgument))
	}
	if n > 0 && a.shape[axis] <= n {
		return nil, arrayErrorf(opDiff, fmt.Errorf("axis %d length %d with n=%d: %w", axis, a.shape[axis], n, ErrInsufficientData))
	}
	cur := a.Clone()
	for pass := 0; pass < n; pass++ {
		cur = diffOnce(cur, axis)
	}

	return cur, nil
}

func diffOnce(a *NDArray, axis int) *NDArray {
	outer, n, inner := shape.LaneGeometry(a.shape, axis)
	outShape := shape.Clone(a.shape)
	outShape[axis] = n - 1
	out := zerosOf(outShape)
	for o := 0; o < outer; o++ {
		for i := 0; i < inner; i++ {
			src := o*n*inner + i
			dst := o*(n-1)*inner + i
			for k := 0; k < n-1; k++ {
				out.data[dst+k*inner] = a.data[src+(k+1)*inner] - a.data[src+k*inner]
			}
		}
	}

	return out
}
