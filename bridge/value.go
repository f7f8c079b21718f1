// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/katalvlaran/lvnd/ndarray"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	// KindScalar holds one float64.
	KindScalar Kind = iota
	// KindArray holds an *ndarray.NDArray.
	KindArray
	// KindList holds an ordered list of Values.
	KindList
	// KindKeyed holds string-keyed Values in insertion order.
	KindKeyed
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindList:
		return "list"
	case KindKeyed:
		return "keyed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Keyed is the insertion-ordered map behind KindKeyed values.
type Keyed = orderedmap.OrderedMap[string, Value]

// NewKeyed returns an empty Keyed map.
func NewKeyed() *Keyed { return orderedmap.New[string, Value]() }

// Value is the result of an Engine call.
type Value struct {
	kind  Kind
	num   float64
	arr   *ndarray.NDArray
	list  []Value
	keyed *Keyed
}

// ScalarValue wraps a number.
func ScalarValue(v float64) Value { return Value{kind: KindScalar, num: v} }

// ArrayValue wraps an array.
func ArrayValue(a *ndarray.NDArray) Value { return Value{kind: KindArray, arr: a} }

// ListValue wraps an ordered list.
func ListValue(vs ...Value) Value { return Value{kind: KindList, list: vs} }

// KeyedValue wraps a keyed map.
func KeyedValue(m *Keyed) Value { return Value{kind: KindKeyed, keyed: m} }

// Kind reports the held variant.
func (v Value) Kind() Kind { return v.kind }

// Float returns the scalar, if v holds one.
func (v Value) Float() (float64, bool) { return v.num, v.kind == KindScalar }

// NDArray returns the array, if v holds one.
func (v Value) NDArray() (*ndarray.NDArray, bool) { return v.arr, v.kind == KindArray }

// Items returns the list, if v holds one.
func (v Value) Items() ([]Value, bool) { return v.list, v.kind == KindList }

// Keyed returns the keyed map, if v holds one.
func (v Value) Keyed() (*Keyed, bool) { return v.keyed, v.kind == KindKeyed }

// Export converts v into plain host data: float64, Pair, []any, or an
// insertion-ordered map[string]any.
func (v Value) Export() any {
	switch v.kind {
	case KindArray:
		return Encode(v.arr)
	case KindList:
		out := make([]any, len(v.list))
		for i, item := range v.list {
			out[i] = item.Export()
		}

		return out
	case KindKeyed:
		out := orderedmap.New[string, any]()
		for pair := v.keyed.Oldest(); pair != nil; pair = pair.Next() {
			out.Set(pair.Key, pair.Value.Export())
		}

		return out
	default:
		return v.num
	}
}

// Pair is the outbound representation of an array.
type Pair struct {
	Shape []int
	Data  []float64
}

// Encode copies a into a Pair.
func Encode(a *ndarray.NDArray) Pair {
	return Pair{Shape: a.Shape(), Data: a.Data()}
}

// Array rebuilds the array described by p.
func (p Pair) Array() (*ndarray.NDArray, error) {
	return ndarray.New(p.Data, p.Shape...)
}
