// SPDX-License-Identifier: MIT

package interop_test

import (
	"testing"

	"github.com/pdevine/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnd/interop"
	"github.com/katalvlaran/lvnd/ndarray"
)

func TestDense_RoundTrip(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	d, err := interop.ToDense(a)
	require.NoError(t, err)
	assert.True(t, mat.Equal(d, mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6})))

	// the export is a copy
	d.Set(0, 0, 100)
	v, err := a.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	back, err := interop.FromMatrix(d.T())
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, back.Shape())
	assert.Equal(t, []float64{100, 4, 2, 5, 3, 6}, back.Data())
}

func TestVec_RoundTrip(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3})
	v, err := interop.ToVec(a)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.Equal(t, 2.0, v.AtVec(1))

	assert.True(t, interop.FromVector(v).Equal(a))
}

func TestExport_Errors(t *testing.T) {
	_, err := interop.ToDense(ndarray.FromSlice([]float64{1}))
	require.ErrorIs(t, err, interop.ErrUnsupportedRank)

	empty, err := ndarray.Zeros([]int{0, 2})
	require.NoError(t, err)
	_, err = interop.ToDense(empty)
	require.ErrorIs(t, err, interop.ErrEmptyArray)

	_, err = interop.ToVec(nil)
	require.ErrorIs(t, err, interop.ErrNilArray)
	_, err = interop.ToTensor(ndarray.FromSlice(nil))
	require.ErrorIs(t, err, interop.ErrEmptyArray)
}

func TestTensor_RoundTrip(t *testing.T) {
	a, err := ndarray.New([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)

	tt, err := interop.ToTensor(a)
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3}, tt.Shape())
	v, err := tt.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)

	back, err := interop.FromTensor(tt)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))
}

func TestFromTensor_TransposedAndScalar(t *testing.T) {
	tt := tensor.New(tensor.WithShape(2, 3), tensor.WithBacking([]float64{1, 2, 3, 4, 5, 6}))
	require.NoError(t, tt.T())

	tr, err := interop.FromTensor(tt)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, tr.Shape())
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, tr.Data())

	s, err := interop.FromTensor(tensor.New(tensor.FromScalar(3.5)))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, s.Shape())
	assert.Equal(t, []float64{3.5}, s.Data())
}

func TestFromTensor_RejectsOtherDtypes(t *testing.T) {
	f32 := tensor.New(tensor.WithShape(2), tensor.WithBacking([]float32{1, 2}))
	_, err := interop.FromTensor(f32)
	require.ErrorIs(t, err, interop.ErrUnsupportedDtype)
}
