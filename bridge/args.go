// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/lvnd/ndarray"
)

// args is the positional argument list of one host call.
type args []any

func (in args) has(i int) bool { return i < len(in) && in[i] != nil }

func (in args) missing(i int) error {
	return fmt.Errorf("argument %d: %w", i+1, ErrArity)
}

func (in args) array(i int) (*ndarray.NDArray, error) {
	if !in.has(i) {
		return nil, in.missing(i)
	}

	return Decode(in[i])
}

func (in args) float(i int) (float64, error) {
	if !in.has(i) {
		return 0, in.missing(i)
	}
	f, ok := toFloat(reflect.ValueOf(in[i]))
	if !ok {
		return 0, fmt.Errorf("argument %d is %T: %w", i+1, in[i], ErrArgType)
	}

	return f, nil
}

func (in args) floatOr(i int, def float64) (float64, error) {
	if !in.has(i) {
		return def, nil
	}

	return in.float(i)
}

func (in args) int(i int) (int, error) {
	f, err := in.float(i)
	if err != nil {
		return 0, err
	}

	return integral(i, f)
}

func (in args) intOr(i, def int) (int, error) {
	if !in.has(i) {
		return def, nil
	}

	return in.int(i)
}

// ints reads a scalar or a sequence of integers (shapes, repetitions).
func (in args) ints(i int) ([]int, error) {
	a, err := in.array(i)
	if err != nil {
		return nil, err
	}
	data := a.Data()
	out := make([]int, len(data))
	for k, f := range data {
		if out[k], err = integral(i, f); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// sequence reports whether argument i was passed as a sequence rather than a
// bare number.
func (in args) sequence(i int) bool {
	if !in.has(i) {
		return false
	}
	switch v := in[i].(type) {
	case Value:
		return v.Kind() != KindScalar
	case *ndarray.NDArray, Pair:
		return true
	}

	return isList(unwrap(reflect.ValueOf(in[i])))
}

// positions reads 1-based host positions and returns engine positions.
func (in args) positions(i int) ([]int, error) {
	idx, err := in.ints(i)
	if err != nil {
		return nil, err
	}

	return ToZeroBased(idx)
}

// axis reads an optional 1-based axis.
func (in args) axis(i int) (axis int, ok bool, err error) {
	if !in.has(i) {
		return 0, false, nil
	}
	n, err := in.int(i)
	if err != nil {
		return 0, false, err
	}
	zero, err := ToZeroBased([]int{n})
	if err != nil {
		return 0, false, err
	}

	return zero[0], true, nil
}

func (in args) axisOr(i, def int) (int, error) {
	axis, ok, err := in.axis(i)
	if err != nil || !ok {
		return def, err
	}

	return axis, nil
}

func (in args) str(i int, def string) (string, error) {
	if !in.has(i) {
		return def, nil
	}
	s, ok := in[i].(string)
	if !ok {
		return "", fmt.Errorf("argument %d is %T: %w", i+1, in[i], ErrArgType)
	}

	return s, nil
}

// arrays reads a list whose items decode independently (they may differ in shape).
func (in args) arrays(i int) ([]*ndarray.NDArray, error) {
	if !in.has(i) {
		return nil, in.missing(i)
	}
	if v, ok := in[i].(Value); ok && v.kind == KindList {
		out := make([]*ndarray.NDArray, len(v.list))
		for k, item := range v.list {
			a, err := Decode(item)
			if err != nil {
				return nil, err
			}
			out[k] = a
		}

		return out, nil
	}
	rv := unwrap(reflect.ValueOf(in[i]))
	if !isList(rv) {
		return nil, fmt.Errorf("argument %d is %T: %w", i+1, in[i], ErrArgType)
	}
	out := make([]*ndarray.NDArray, rv.Len())
	for k := range out {
		a, err := Decode(rv.Index(k).Interface())
		if err != nil {
			return nil, err
		}
		out[k] = a
	}

	return out, nil
}

func integral(i int, f float64) (int, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, fmt.Errorf("argument %d: %v is not an integer: %w", i+1, f, ErrArgType)
	}

	return int(f), nil
}
