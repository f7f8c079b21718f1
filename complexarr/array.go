// SPDX-License-Identifier: MIT

package complexarr

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/cmplxs"

	"github.com/katalvlaran/lvnd/ndarray"
	"github.com/katalvlaran/lvnd/shape"
)

// Array is a dense, row-major complex128 N-dimensional array.
// len(data) == product(shape) always holds.
type Array struct {
	shape []int
	data  []complex128
}

// New copies data into a new Array of the given shape.
func New(data []complex128, dims ...int) (*Array, error) {
	n, err := shape.Validate(dims)
	if err != nil {
		return nil, complexErrorf(ctxNew, fmt.Errorf("%w: %w", ErrInvalidShape, err))
	}
	if n != len(data) {
		return nil, complexErrorf(ctxNew, fmt.Errorf("len %d, shape %v: %w", len(data), dims, ErrSizeMismatch))
	}

	return &Array{shape: shape.Clone(dims), data: append(make([]complex128, 0, n), data...)}, nil
}

// FromReal lifts a non-nil real array to a complex one with zero imaginary parts.
func FromReal(a *ndarray.NDArray) *Array {
	re := a.Data()
	return &Array{shape: a.Shape(), data: cmplxs.Complex(make([]complex128, len(re)), re, make([]float64, len(re)))}
}

// FromParts combines equally shaped real and imaginary parts.
func FromParts(re, im *ndarray.NDArray) (*Array, error) {
	if re == nil || im == nil {
		return nil, complexErrorf(ctxFromParts, ErrNilArray)
	}
	if !shape.Equal(re.Shape(), im.Shape()) {
		return nil, complexErrorf(ctxFromParts, fmt.Errorf("%v vs %v: %w", re.Shape(), im.Shape(), ErrShapeMismatch))
	}

	return &Array{
		shape: re.Shape(),
		data:  cmplxs.Complex(make([]complex128, re.Size()), re.Data(), im.Data()),
	}, nil
}

// Shape returns a copy of the shape.
func (a *Array) Shape() []int { return shape.Clone(a.shape) }

// Ndim returns the rank.
func (a *Array) Ndim() int { return len(a.shape) }

// Size returns the element count.
func (a *Array) Size() int { return len(a.data) }

// Data returns a copy of the row-major buffer.
func (a *Array) Data() []complex128 { return append([]complex128(nil), a.data...) }

// At returns the element at coord.
func (a *Array) At(coord ...int) (complex128, error) {
	if len(coord) != len(a.shape) {
		return 0, complexErrorf(ctxAt, fmt.Errorf("%d indices for rank %d: %w", len(coord), len(a.shape), ErrIndexOutOfRange))
	}
	for d, c := range coord {
		if c < 0 || c >= a.shape[d] {
			return 0, complexErrorf(ctxAt, fmt.Errorf("index %d on axis %d: %w", c, d, ErrIndexOutOfRange))
		}
	}

	return a.data[shape.FlatIndex(shape.Strides(a.shape), coord)], nil
}

// Equal reports equal shapes and elementwise-equal values.
func (a *Array) Equal(b *Array) bool {
	return a != nil && b != nil && shape.Equal(a.shape, b.shape) && cmplxs.Equal(a.data, b.data)
}

// Real returns the real parts.
func (a *Array) Real() *ndarray.NDArray {
	return a.real(cmplxs.Real(make([]float64, len(a.data)), a.data))
}

// Imag returns the imaginary parts.
func (a *Array) Imag() *ndarray.NDArray {
	return a.real(cmplxs.Imag(make([]float64, len(a.data)), a.data))
}

// Abs returns the elementwise magnitude |z|.
func (a *Array) Abs() *ndarray.NDArray {
	out := make([]float64, len(a.data))
	cmplxs.Abs(out, a.data)

	return a.real(out)
}

// Angle returns the elementwise phase in (-π, π].
func (a *Array) Angle() *ndarray.NDArray {
	out := make([]float64, len(a.data))
	for i, z := range a.data {
		out[i] = cmplx.Phase(z)
	}

	return a.real(out)
}

// Conj returns the elementwise complex conjugate.
func (a *Array) Conj() *Array {
	out := make([]complex128, len(a.data))
	for i, z := range a.data {
		out[i] = cmplx.Conj(z)
	}

	return &Array{shape: a.Shape(), data: out}
}

// Sum returns the sum of all elements (0 for an empty array).
func (a *Array) Sum() complex128 { return cmplxs.Sum(a.data) }

// real wraps a buffer of a's size in a real array of a's shape.
func (a *Array) real(buf []float64) *ndarray.NDArray {
	out, err := ndarray.New(buf, a.shape...)
	if err != nil {
		// a.shape was validated at construction.
		panic(err)
	}

	return out
}

// String renders nested brackets, e.g. [(1+2i), (3-1i)].
func (a *Array) String() string {
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
				b.WriteString(strconv.FormatComplex(a.data[base+i], 'g', -1, 128))
			} else {
				rec(axis+1, base+i*st[axis])
			}
		}
		b.WriteString("]")
	}
	rec(0, 0)

	return b.String()
}
