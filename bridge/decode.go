// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/lvnd/ndarray"
)

const ctxDecode = "Decode"

// Decode converts host data into an array.
//
// Accepted forms:
//   - numeric scalars (any int, uint or float kind, and bool) → shape [1];
//   - slices and arrays of numbers, nested to any depth (including []any);
//   - Pair, Value (scalar or array), *ndarray.NDArray.
//
// The shape of nested input is read from the first element at every depth;
// every sibling must match it or Decode fails with ErrRagged.
func Decode(x any) (*ndarray.NDArray, error) {
	switch t := x.(type) {
	case nil:
		return nil, bridgeErrorf(ctxDecode, fmt.Errorf("nil: %w", ErrArgType))
	case *ndarray.NDArray:
		if t == nil {
			return nil, bridgeErrorf(ctxDecode, ndarray.ErrNilArray)
		}

		return t, nil
	case Pair:
		return t.Array()
	case Value:
		switch t.kind {
		case KindArray:
			return t.arr, nil
		case KindScalar:
			return ndarray.Scalar(t.num), nil
		}

		return nil, bridgeErrorf(ctxDecode, fmt.Errorf("%s value: %w", t.kind, ErrArgType))
	}

	rv := reflect.ValueOf(x)
	if f, ok := toFloat(rv); ok {
		return ndarray.Scalar(f), nil
	}
	if !isList(rv) {
		return nil, bridgeErrorf(ctxDecode, fmt.Errorf("%T: %w", x, ErrArgType))
	}

	shp := probe(rv)
	data := make([]float64, 0, product(shp))
	if err := flatten(rv, 0, shp, &data); err != nil {
		return nil, bridgeErrorf(ctxDecode, err)
	}

	return ndarray.New(data, shp...)
}

// probe follows the first element down to a leaf, recording lengths.
func probe(v reflect.Value) []int {
	var shp []int
	for {
		v = unwrap(v)
		if !isList(v) {
			return shp
		}
		shp = append(shp, v.Len())
		if v.Len() == 0 {
			return shp
		}
		v = v.Index(0)
	}
}

func flatten(v reflect.Value, depth int, shp []int, data *[]float64) error {
	v = unwrap(v)
	if depth == len(shp) {
		f, ok := toFloat(v)
		if !ok {
			if isList(v) {
				return fmt.Errorf("depth %d: %w", depth, ErrRagged)
			}

			return fmt.Errorf("element %s: %w", v.Kind(), ErrArgType)
		}
		*data = append(*data, f)

		return nil
	}
	if !isList(v) || v.Len() != shp[depth] {
		return fmt.Errorf("depth %d: %w", depth, ErrRagged)
	}
	for i := 0; i < v.Len(); i++ {
		if err := flatten(v.Index(i), depth+1, shp, data); err != nil {
			return err
		}
	}

	return nil
}

func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}

	return v
}

func isList(v reflect.Value) bool {
	return v.IsValid() && (v.Kind() == reflect.Slice || v.Kind() == reflect.Array)
}

// toFloat reads a numeric (or bool) leaf.
func toFloat(v reflect.Value) (float64, bool) {
	v = unwrap(v)
	if !v.IsValid() {
		return 0, false
	}
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(v.Uint()), true
	case reflect.Bool:
		if v.Bool() {
			return 1, true
		}

		return 0, true
	}

	return 0, false
}

func product(shp []int) int {
	n := 1
	for _, d := range shp {
		n *= d
	}

	return n
}
