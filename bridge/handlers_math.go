// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvnd/ndarray"
	"github.com/katalvlaran/lvnd/signal"
)

// ---------- reductions ----------

// hReduce adapts (a [, axis]) reductions: scalar without an axis, array with one.
func hReduce(global func(*ndarray.NDArray) (float64, error), along func(*ndarray.NDArray, int) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		axis, ok, err := in.axis(1)
		if err != nil {
			return Value{}, err
		}
		if ok {
			return arrayResult(along(a, axis))
		}

		return scalarResult(global(a))
	}
}

// hArgReduce is hReduce for position-valued results, returned 1-based.
func hArgReduce(global func(*ndarray.NDArray) (int, error), along func(*ndarray.NDArray, int) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		axis, ok, err := in.axis(1)
		if err != nil {
			return Value{}, err
		}
		if ok {
			idx, err := along(a, axis)
			if err != nil {
				return Value{}, err
			}

			return arrayResult(oneBasedArray(idx))
		}
		i, err := global(a)
		if err != nil {
			return Value{}, err
		}

		return ScalarValue(float64(i + 1)), nil
	}
}

func hTruth(global func(*ndarray.NDArray) (bool, error), along func(*ndarray.NDArray, int) (*ndarray.NDArray, error)) handler {
	return hReduce(func(a *ndarray.NDArray) (float64, error) {
		b, err := global(a)
		return boolf(b), err
	}, along)
}

func hQuantile(global func(*ndarray.NDArray, float64) (float64, error), along func(*ndarray.NDArray, float64, int) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		q, err := in.float(1)
		if err != nil {
			return Value{}, err
		}
		axis, ok, err := in.axis(2)
		if err != nil {
			return Value{}, err
		}
		if ok {
			return arrayResult(along(a, q, axis))
		}

		return scalarResult(global(a, q))
	}
}

// hAlong adapts (a [, axis]) operations whose flat form works on the flattened array.
func hAlong(flat func(*ndarray.NDArray) (*ndarray.NDArray, error), along func(*ndarray.NDArray, int) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		axis, ok, err := in.axis(1)
		if err != nil {
			return Value{}, err
		}
		if ok {
			return arrayResult(along(a, axis))
		}

		return arrayResult(flat(a))
	}
}

// ---------- sorting & searching ----------

func hArgSort(e *Engine, in args) (Value, error) {
	v, err := hAlong(ndarray.ArgSort, ndarray.ArgSortAxis)(e, in)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(oneBasedArray(v.arr))
}

// hUnique returns values plus 1-based first indices and inverse, and counts.
func hUnique(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	res, err := ndarray.Unique(a, ndarray.UniqueOptions{ReturnIndex: true, ReturnInverse: true, ReturnCounts: true})
	if err != nil {
		return Value{}, err
	}
	indices, err := oneBasedArray(res.Indices)
	if err != nil {
		return Value{}, err
	}
	inverse, err := oneBasedArray(res.Inverse)
	if err != nil {
		return Value{}, err
	}

	out := NewKeyed()
	out.Set("values", ArrayValue(res.Values))
	out.Set("indices", ArrayValue(indices))
	out.Set("inverse", ArrayValue(inverse))
	out.Set("counts", ArrayValue(res.Counts))

	return KeyedValue(out), nil
}

// hSearchSorted returns 1-based insertion positions.
func hSearchSorted(_ *Engine, in args) (Value, error) {
	sorted, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	values, err := in.array(1)
	if err != nil {
		return Value{}, err
	}
	name, err := in.str(2, "left")
	if err != nil {
		return Value{}, err
	}
	var side ndarray.Side
	switch name {
	case "left":
		side = ndarray.SideLeft
	case "right":
		side = ndarray.SideRight
	default:
		return Value{}, fmt.Errorf("side %q: %w", name, ErrArgType)
	}
	pos, err := ndarray.SearchSorted(sorted, values, side)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(oneBasedArray(pos))
}

// hNonzero returns one 1-based coordinate array per axis.
func hNonzero(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	coords, err := ndarray.Nonzero(a)
	if err != nil {
		return Value{}, err
	}
	for i, c := range coords {
		if coords[i], err = oneBasedArray(c); err != nil {
			return Value{}, err
		}
	}

	return listResult(coords, nil)
}

// hArgWhere returns one row of 1-based coordinates per non-zero element.
func hArgWhere(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	coords, err := ndarray.ArgWhere(a)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(oneBasedArray(coords))
}

// ---------- linear algebra ----------

// hOffset adapts the (a [, k]) diagonal operations.
func hOffset(f func(*ndarray.NDArray, int) (*ndarray.NDArray, error)) handler {
	return func(_ *Engine, in args) (Value, error) {
		a, err := in.array(0)
		if err != nil {
			return Value{}, err
		}
		k, err := in.intOr(1, 0)
		if err != nil {
			return Value{}, err
		}

		return arrayResult(f(a, k))
	}
}

func hInner(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	b, err := in.array(1)
	if err != nil {
		return Value{}, err
	}

	return scalarResult(ndarray.Inner(a, b))
}

func hTrace(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	k, err := in.intOr(1, 0)
	if err != nil {
		return Value{}, err
	}

	return scalarResult(ndarray.Trace(a, k))
}

// ---------- statistics ----------

// hHistogram accepts (a [, bins [, lo, hi]]) and returns {counts, edges}.
func hHistogram(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	bins, err := in.intOr(1, 10)
	if err != nil {
		return Value{}, err
	}
	var res ndarray.HistogramResult
	if in.has(2) {
		lo, err := in.float(2)
		if err != nil {
			return Value{}, err
		}
		hi, err := in.float(3)
		if err != nil {
			return Value{}, err
		}
		res, err = ndarray.HistogramRange(a, bins, lo, hi)
		if err != nil {
			return Value{}, err
		}
	} else if res, err = ndarray.Histogram(a, bins); err != nil {
		return Value{}, err
	}

	out := NewKeyed()
	out.Set("counts", ArrayValue(res.Counts))
	out.Set("edges", ArrayValue(res.Edges))

	return KeyedValue(out), nil
}

func hBincount(_ *Engine, in args) (Value, error) {
	x, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	var weights *ndarray.NDArray
	if in.has(1) {
		if weights, err = in.array(1); err != nil {
			return Value{}, err
		}
	}
	minLength, err := in.intOr(2, 0)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(ndarray.Bincount(x, weights, minLength))
}

func hAverage(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	var weights *ndarray.NDArray
	if in.has(1) {
		if weights, err = in.array(1); err != nil {
			return Value{}, err
		}
	}

	return scalarResult(ndarray.Average(a, weights))
}

func hAllClose(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	b, err := in.array(1)
	if err != nil {
		return Value{}, err
	}
	rtol, err := in.floatOr(2, ndarray.DefaultRTol)
	if err != nil {
		return Value{}, err
	}
	atol, err := in.floatOr(3, ndarray.DefaultATol)
	if err != nil {
		return Value{}, err
	}
	ok, err := ndarray.AllClose(a, b, rtol, atol)

	return scalarResult(boolf(ok), err)
}

// ---------- signal ----------

func hConvolve(_ *Engine, in args) (Value, error) { return correlateLike(in, signal.Convolve) }

func hCorrelate(_ *Engine, in args) (Value, error) { return correlateLike(in, signal.Correlate) }

func correlateLike(in args, f func(a, v *ndarray.NDArray, mode signal.Mode) (*ndarray.NDArray, error)) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	v, err := in.array(1)
	if err != nil {
		return Value{}, err
	}
	name, err := in.str(2, "full")
	if err != nil {
		return Value{}, err
	}
	mode, err := signal.ParseMode(name)
	if err != nil {
		return Value{}, err
	}

	return arrayResult(f(a, v, mode))
}

// hGradient accepts (a [, spacing [, axis]]). A rank-1 input or an explicit
// axis yields one array; otherwise the result is keyed by 1-based axis.
func hGradient(_ *Engine, in args) (Value, error) {
	a, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	h, err := in.floatOr(1, 1)
	if err != nil {
		return Value{}, err
	}
	axis, ok, err := in.axis(2)
	if err != nil {
		return Value{}, err
	}
	if ok || a.Ndim() == 1 {
		return arrayResult(signal.GradientAxis(a, h, axis))
	}

	grads, err := signal.Gradient(a, h)
	if err != nil {
		return Value{}, err
	}
	out := NewKeyed()
	for pair := grads.Oldest(); pair != nil; pair = pair.Next() {
		out.Set(strconv.Itoa(pair.Key+1), ArrayValue(pair.Value))
	}

	return KeyedValue(out), nil
}

// hInterp accepts (x, xp, fp [, left [, right]]).
func hInterp(_ *Engine, in args) (Value, error) {
	x, err := in.array(0)
	if err != nil {
		return Value{}, err
	}
	xp, err := in.array(1)
	if err != nil {
		return Value{}, err
	}
	fp, err := in.array(2)
	if err != nil {
		return Value{}, err
	}
	var opts []signal.InterpOption
	if in.has(3) {
		left, err := in.float(3)
		if err != nil {
			return Value{}, err
		}
		opts = append(opts, signal.WithLeft(left))
	}
	if in.has(4) {
		right, err := in.float(4)
		if err != nil {
			return Value{}, err
		}
		opts = append(opts, signal.WithRight(right))
	}

	return arrayResult(signal.Interp(x, xp, fp, opts...))
}
