// SPDX-License-Identifier: MIT

package interop

import (
	"fmt"

	"github.com/pdevine/tensor"

	"github.com/katalvlaran/lvnd/ndarray"
)

// ToTensor copies a into a new float64 *tensor.Dense of the same shape.
func ToTensor(a *ndarray.NDArray) (*tensor.Dense, error) {
	if err := exportable(ctxToTensor, a, 0); err != nil {
		return nil, err
	}

	return tensor.New(tensor.WithShape(a.Shape()...), tensor.WithBacking(a.Data())), nil
}

// FromTensor copies a float64 tensor into an array. Views and transposed
// tensors are materialized first; scalar tensors become shape [1].
func FromTensor(t tensor.Tensor) (*ndarray.NDArray, error) {
	if t == nil {
		return nil, interopErrorf(ctxFromTensor, ErrNilArray)
	}
	if t.Dtype() != tensor.Float64 {
		return nil, interopErrorf(ctxFromTensor, fmt.Errorf("%v: %w", t.Dtype(), ErrUnsupportedDtype))
	}
	if d, ok := t.(*tensor.Dense); ok && d.IsMaterializable() {
		t = d.Materialize()
	}

	dims := []int(t.Shape().Clone())
	var data []float64
	switch v := t.Data().(type) {
	case []float64:
		data = v
	case float64:
		data = []float64{v}
	}
	if len(dims) == 0 {
		dims = []int{1}
	}

	a, err := ndarray.New(data, dims...)
	if err != nil {
		return nil, interopErrorf(ctxFromTensor, err)
	}

	return a, nil
}
