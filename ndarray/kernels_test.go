// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvnd/ndarray"
)

func TestPyMod_SignFollowsDivisor(t *testing.T) {
	assert.Equal(t, 1.0, ndarray.ExportedPyMod(7, 3))
	assert.Equal(t, 2.0, ndarray.ExportedPyMod(-7, 3))
	assert.Equal(t, -1.0, ndarray.ExportedPyMod(-7, -3))
	assert.Equal(t, 0.0, ndarray.ExportedPyMod(6, -3))
	assert.True(t, math.IsNaN(ndarray.ExportedPyMod(1, 0)))
}

func TestQuantileOf_Interpolates(t *testing.T) {
	lane := []float64{4, 1, 3, 2}
	assert.Equal(t, 1.0, ndarray.ExportedQuantileOf(lane, 0))
	assert.Equal(t, 4.0, ndarray.ExportedQuantileOf(lane, 1))
	assert.Equal(t, 2.5, ndarray.ExportedQuantileOf(lane, 0.5))
	assert.Equal(t, []float64{4, 1, 3, 2}, lane, "input lane is not reordered")
	assert.True(t, math.IsNaN(ndarray.ExportedQuantileOf([]float64{1, math.NaN()}, 0.5)))
}

func TestPadSource_Mappings(t *testing.T) {
	const n = 4
	for p := 0; p < n; p++ {
		assert.Equal(t, p, ndarray.ExportedPadSource(p, n, ndarray.PadReflect))
	}
	assert.Equal(t, -1, ndarray.ExportedPadSource(-1, n, ndarray.PadConstant))
	assert.Equal(t, 3, ndarray.ExportedPadSource(9, n, ndarray.PadEdge))
	assert.Equal(t, 1, ndarray.ExportedPadSource(-3, n, ndarray.PadWrap))
	assert.Equal(t, 2, ndarray.ExportedPadSource(4, n, ndarray.PadReflect))
	assert.Equal(t, 1, ndarray.ExportedPadSource(-1, n, ndarray.PadReflect))
	assert.Equal(t, 0, ndarray.ExportedPadSource(5, 1, ndarray.PadReflect))
}

func TestDiagLen(t *testing.T) {
	assert.Equal(t, 3, ndarray.ExportedDiagLen(3, 4, 0))
	assert.Equal(t, 3, ndarray.ExportedDiagLen(3, 4, 1))
	assert.Equal(t, 1, ndarray.ExportedDiagLen(3, 4, -2))
	assert.Equal(t, 0, ndarray.ExportedDiagLen(3, 4, 4))
	assert.Equal(t, 0, ndarray.ExportedDiagLen(3, 4, -3))
}

func TestCmpNaNLast(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, -1, ndarray.ExportedCmpNaNLast(1, 2))
	assert.Equal(t, 1, ndarray.ExportedCmpNaNLast(nan, 2))
	assert.Equal(t, -1, ndarray.ExportedCmpNaNLast(math.Inf(1), nan))
	assert.Equal(t, 0, ndarray.ExportedCmpNaNLast(nan, nan))
}
