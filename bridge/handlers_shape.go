// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"

	"github.com/katalvlaran/lvnd/ndarray"
)

// ---------- creation ----------

func hArray(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil || !in.has(1) {
		return arrayResult(a, err)
	}
	dims, err := in.ints(1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Reshape(a, dims...))
}

func hFill(create func([]int, ...ndarray.Option) (*ndarray.NDArray, error)) handler {
	return func(e *Engine, in args) (Value, error) {
		dims, err := in.ints(0)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(create(dims, e.creation()...))
	}
}

func hFull(e *Engine, in args) (Value, error) {
	dims, err := in.ints(0)
	if err != nil {
		return Value{}, err
	}
	v, err := in.float(1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Full(dims, v, e.creation()...))
}

func hLike(create func(*ndarray.NDArray, ...ndarray.Option) (*ndarray.NDArray, error)) handler {
	return func(e *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(create(a, e.creation()...))
	}
}

func hFullLike(e *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	v, err := in.float(1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.FullLike(a, v, e.creation()...))
}

// hArange accepts (stop), (start, stop) or (start, stop, step).
func hArange(e *Engine, in args) (Value, error) {
	first, err := in.float(0)
	if err != nil {
		return Value{}, err
	}
	if !in.has(1) {
		return arrayResult(ndarray.Arange(0, first, 1, e.creation()...))
	}
	stop, err := in.float(1)
	if err != nil {
		return Value{}, err
	}
	step, err := in.floatOr(2, 1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Arange(first, stop, step, e.creation()...))
}

func hLinspace(e *Engine, in args) (Value, error) {
	start, err := in.float(0)
	if err != nil {
		return Value{}, err
	}
	stop, err := in.float(1)
	if err != nil {
		return Value{}, err
	}
	num, err := in.intOr(2, 50)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Linspace(start, stop, num, e.creation()...))
}

// hEye accepts (n), (n, m) or (n, m, k); k is a diagonal offset, not an index.
func hEye(e *Engine, in args) (Value, error) {
	n, err := in.int(0)
	if err != nil {
		return Value{}, err
	}
	m, err := in.intOr(1, n)
	if err != nil {
		return Value{}, err
	}
	k, err := in.intOr(2, 0)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Eye(n, m, k, e.creation()...))
}

func hIdentity(e *Engine, in args) (Value, error) {
	n, err := in.int(0)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Identity(n, e.creation()...))
}

// ---------- introspection ----------

func hShape(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	shp := a.Shape()
	out := make([]float64, len(shp))
	for i, d := range shp {
		out[i] = float64(d)
	}

	return ArrayValue(ndarray.FromSlice(out)), nil
}

func hNdim(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}

	return ScalarValue(float64(a.Ndim())), nil
}

func hSize(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}

	return ScalarValue(float64(a.Size())), nil
}

// ---------- manipulation ----------

func hReshape(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	dims, err := in.ints(1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Reshape(a, dims...))
}

func hTranspose(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	if !in.has(1) {
		return arrayResult(ndarray.Transpose(a))
	}
	axes, err := in.positions(1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Transpose(a, axes...))
}

func hFlatten(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Flatten(a))
}

func hSqueeze(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(1)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return arrayResult(ndarray.SqueezeAxis(a, axis))
	}

	return arrayResult(ndarray.Squeeze(a))
}

func hExpandDims(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(1)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return Value{}, in.missing(1)
	}

	return arrayResult(ndarray.ExpandDims(a, axis))
}

func hJoin(join func([]*ndarray.NDArray, int) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		parts, err := in.arrays(0)
		if err != nil {
			return Value{}, err
		}
		axis, err := in.axisOr(1, 0)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(join(parts, axis))
	}
}

// hSplit accepts (a, sections [, axis]) or (a, positions [, axis]); a
// sequence names the 1-based positions at which new parts start.
func hSplit(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	axis, err := in.axisOr(2, 0)
	if err != nil {
		return Value{}, err
	}
	if in.sequence(1) {
		cuts, err := in.positions(1)
		if err != nil {
			return Value{}, err
		}

		return listResult(ndarray.SplitAt(a, cuts, axis))
	}
	sections, err := in.int(1)
	if err != nil {
		return Value{}, err
	}

	return listResult(ndarray.Split(a, sections, axis))
}

func hTile(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	reps, err := in.ints(1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Tile(a, reps))
}

func hRepeat(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	n, err := in.int(1)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(2)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return arrayResult(ndarray.RepeatAxis(a, n, axis))
	}

	return arrayResult(ndarray.Repeat(a, n))
}

func hFlip(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(1)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return arrayResult(ndarray.FlipAxis(a, axis))
	}

	return arrayResult(ndarray.Flip(a))
}

func hRoll(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	shift, err := in.int(1)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(2)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return arrayResult(ndarray.RollAxis(a, shift, axis))
	}

	return arrayResult(ndarray.Roll(a, shift))
}

// hPad accepts (a, width [, mode [, constant]]) where width is n, {before, after}
// or one {before, after} row per axis.
func hPad(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	w, err := in.array(1)
	if err != nil {
		return Value{}, err
	}
	widths, err := padWidths(w)
	if err != nil {
		return Value{}, err
	}
	name, err := in.str(2, "constant")
	if err != nil {
		return Value{}, err
	}
	mode, err := ndarray.ParsePadMode(name)
	if err != nil {
		return Value{}, err
	}
	constant, err := in.floatOr(3, 0)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Pad(a, widths, mode, constant))
}

func padWidths(w *ndarray.NDArray) ([][2]int, error) {
	data := w.Data()
	ints := make([]int, len(data))
	for i, f := range data {
		n, err := integral(1, f)
		if err != nil {
			return nil, err
		}
		ints[i] = n
	}
	shp := w.Shape()
	switch {
	case len(ints) == 1:
		return [][2]int{{ints[0], ints[0]}}, nil
	case len(shp) == 1 && len(ints) == 2:
		return [][2]int{{ints[0], ints[1]}}, nil
	case len(shp) == 2 && shp[1] == 2:
		out := make([][2]int, shp[0])
		for i := range out {
			out[i] = [2]int{ints[2*i], ints[2*i+1]}
		}

		return out, nil
	}

	return nil, fmt.Errorf("pad widths of shape %v: %w", shp, ErrArgType)
}

// hDiff accepts (a [, n [, axis]]); the default axis is the last one.
func hDiff(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	n, err := in.intOr(1, 1)
	if err != nil {
		return Value{}, err
	}
	axis, err := in.axisOr(2, a.Ndim()-1)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Diff(a, n, axis))
}

// ---------- element access & editing ----------

func hGet(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	coord, err := in.positions(1)
	if err != nil {
		return Value{}, err
	}

	return scalarResult(a.At(coord...))
}

// hSet returns a copy of a with one element replaced; the host's array is untouched.
func hSet(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	coord, err := in.positions(1)
	if err != nil {
		return Value{}, err
	}
	v, err := in.float(2)
	if err != nil {
		return Value{}, err
	}
	out := a.Clone()
	if err := out.Set(v, coord...); err != nil {
		return Value{}, err
	}

	return ArrayValue(out), nil
}

func hInsert(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	pos, err := in.positions(1)
	if err != nil {
		return Value{}, err
	}
	vals, err := in.array(2)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(3)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return arrayResult(ndarray.InsertAxis(a, pos, vals.Data(), axis))
	}

	return arrayResult(ndarray.Insert(a, pos, vals.Data()))
}

func hDelete(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	pos, err := in.positions(1)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(2)
	if err != nil {
		return Value{}, err
	}
	if ok {
		return arrayResult(ndarray.DeleteAxis(a, pos, axis))
	}

	return arrayResult(ndarray.Delete(a, pos))
}

func hWhere(_ *Engine, in args) (Value, error) {
	cond, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	x, err := in.array(1)
	if err != nil {
		return Value{}, err
	}
	y, err := in.array(2)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Where(cond, x, y))
}

func hClip(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	lo, err := in.float(1)
	if err != nil {
		return Value{}, err
	}
	hi, err := in.float(2)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Clip(a, lo, hi))
}
