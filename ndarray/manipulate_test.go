// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnd/ndarray"
)

func TestReshapeTranspose_Scenario(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6})
	m, err := ndarray.Reshape(a, 2, 3)
	require.NoError(t, err)
	tr, err := ndarray.Transpose(m)
	require.NoError(t, err)
	requireArray(t, tr, []int{3, 2}, []float64{1, 4, 2, 5, 3, 6})
}

func TestReshape_RoundTripAndInference(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 3, 4)
	for _, s1 := range [][]int{{12}, {2, 6}, {2, 2, 3}, {1, 12, 1}} {
		r, err := ndarray.Reshape(a, s1...)
		require.NoError(t, err)
		requireInvariant(t, r)
		back, err := ndarray.Reshape(r, a.Shape()...)
		require.NoError(t, err)
		assert.True(t, a.Equal(back), "via %v", s1)
	}

	inferred, err := ndarray.Reshape(a, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 6}, inferred.Shape())

	_, err = ndarray.Reshape(a, 5, -1)
	require.ErrorIs(t, err, ndarray.ErrSizeMismatch)
	_, err = ndarray.Reshape(a, -1, -1)
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
	_, err = ndarray.Reshape(a, 5, 5)
	require.ErrorIs(t, err, ndarray.ErrSizeMismatch)
	_, err = ndarray.Reshape(a)
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestTranspose_Permutations(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, 2, 3, 2)

	twice, err := ndarray.Transpose(a)
	require.NoError(t, err)
	twice, err = ndarray.Transpose(twice)
	require.NoError(t, err)
	assert.True(t, a.Equal(twice))

	p, err := ndarray.Transpose(a, 1, 0, 2)
	require.NoError(t, err)
	requireArray(t, p, []int{3, 2, 2}, []float64{1, 2, 7, 8, 3, 4, 9, 10, 5, 6, 11, 12})

	_, err = ndarray.Transpose(a, 0, 0, 1)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	sw, err := ndarray.SwapAxes(mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3), 0, 1)
	require.NoError(t, err)
	requireArray(t, sw, []int{3, 2}, []float64{1, 4, 2, 5, 3, 6})
}

func TestSqueezeExpandFlatten(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3}, 1, 3, 1)
	sq, err := ndarray.Squeeze(a)
	require.NoError(t, err)
	requireArray(t, sq, []int{3}, []float64{1, 2, 3})

	one, err := ndarray.Squeeze(mustNew(t, []float64{9}, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, one.Shape())

	sa, err := ndarray.SqueezeAxis(a, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, sa.Shape())
	_, err = ndarray.SqueezeAxis(a, 1)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	ex, err := ndarray.ExpandDims(sq, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, ex.Shape())
	ex, err = ndarray.ExpandDims(sq, 1+sq.Ndim())
	require.ErrorIs(t, err, ndarray.ErrAxisOutOfRange)
	assert.Nil(t, ex)

	fl, err := ndarray.Flatten(mustNew(t, []float64{1, 2, 3, 4}, 2, 2))
	require.NoError(t, err)
	requireArray(t, fl, []int{4}, []float64{1, 2, 3, 4})
}

func TestConcatenateStack(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	b := mustNew(t, []float64{5, 6}, 1, 2)

	c0, err := ndarray.Concatenate([]*ndarray.NDArray{a, b}, 0)
	require.NoError(t, err)
	requireArray(t, c0, []int{3, 2}, []float64{1, 2, 3, 4, 5, 6})

	bt, err := ndarray.Transpose(b)
	require.NoError(t, err)
	c1, err := ndarray.Concatenate([]*ndarray.NDArray{a, bt}, 1)
	require.NoError(t, err)
	requireArray(t, c1, []int{2, 3}, []float64{1, 2, 5, 3, 4, 6})

	_, err = ndarray.Concatenate([]*ndarray.NDArray{a, b}, 1)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	_, err = ndarray.Concatenate(nil, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	x := ndarray.FromSlice([]float64{1, 2})
	y := ndarray.FromSlice([]float64{3, 4})
	s0, err := ndarray.Stack([]*ndarray.NDArray{x, y}, 0)
	require.NoError(t, err)
	requireArray(t, s0, []int{2, 2}, []float64{1, 2, 3, 4})
	s1, err := ndarray.Stack([]*ndarray.NDArray{x, y}, 1)
	require.NoError(t, err)
	requireArray(t, s1, []int{2, 2}, []float64{1, 3, 2, 4})
	_, err = ndarray.Stack([]*ndarray.NDArray{x, b}, 0)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
}

func TestSplit(t *testing.T) {
	a := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	parts, err := ndarray.Split(a, 3, 1)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	requireArray(t, parts[1], []int{2, 1}, []float64{2, 5})

	_, err = ndarray.Split(a, 2, 1)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	cuts, err := ndarray.SplitAt(ndarray.FromSlice([]float64{0, 1, 2, 3, 4}), []int{1, 3, 9}, 0)
	require.NoError(t, err)
	require.Len(t, cuts, 4)
	requireArray(t, cuts[0], []int{1}, []float64{0})
	requireArray(t, cuts[1], []int{2}, []float64{1, 2})
	requireArray(t, cuts[2], []int{2}, []float64{3, 4})
	assert.Zero(t, cuts[3].Size())

	_, err = ndarray.SplitAt(a, []int{2, 1}, 1)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

func TestTileRepeat(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2})
	tl, err := ndarray.Tile(a, []int{2, 2})
	require.NoError(t, err)
	requireArray(t, tl, []int{2, 4}, []float64{1, 2, 1, 2, 1, 2, 1, 2})

	m := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	tm, err := ndarray.Tile(m, []int{2})
	require.NoError(t, err)
	requireArray(t, tm, []int{2, 4}, []float64{1, 2, 1, 2, 3, 4, 3, 4})

	rp, err := ndarray.Repeat(a, 3)
	require.NoError(t, err)
	requireArray(t, rp, []int{6}, []float64{1, 1, 1, 2, 2, 2})

	ra, err := ndarray.RepeatAxis(m, 2, 0)
	require.NoError(t, err)
	requireArray(t, ra, []int{4, 2}, []float64{1, 2, 1, 2, 3, 4, 3, 4})

	_, err = ndarray.Tile(a, []int{-1})
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	_, err = ndarray.Tile(a, []int{1 << 62})
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
	_, err = ndarray.Tile(a, []int{1 << 30, 1 << 30})
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
	_, err = ndarray.Repeat(a, 1<<62)
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
	_, err = ndarray.RepeatAxis(m, 1<<62, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
	_, err = ndarray.Pad(a, [][2]int{{1 << 62, 0}}, ndarray.PadConstant, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidShape)
}

func TestFlipRoll(t *testing.T) {
	m := mustNew(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	f, err := ndarray.Flip(m)
	require.NoError(t, err)
	requireArray(t, f, []int{2, 3}, []float64{6, 5, 4, 3, 2, 1})

	f1, err := ndarray.FlipAxis(m, 1)
	require.NoError(t, err)
	requireArray(t, f1, []int{2, 3}, []float64{3, 2, 1, 6, 5, 4})

	r, err := ndarray.Roll(m, 2)
	require.NoError(t, err)
	requireArray(t, r, []int{2, 3}, []float64{5, 6, 1, 2, 3, 4})

	rn, err := ndarray.RollAxis(m, -1, 1)
	require.NoError(t, err)
	requireArray(t, rn, []int{2, 3}, []float64{2, 3, 1, 5, 6, 4})

	same, err := ndarray.RollAxis(m, 3, 1)
	require.NoError(t, err)
	assert.True(t, m.Equal(same))
}

func TestPad_Modes(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3})
	w := [][2]int{{2, 3}}
	tests := []struct {
		mode ndarray.PadMode
		want []float64
	}{
		{ndarray.PadConstant, []float64{9, 9, 1, 2, 3, 9, 9, 9}},
		{ndarray.PadEdge, []float64{1, 1, 1, 2, 3, 3, 3, 3}},
		{ndarray.PadWrap, []float64{2, 3, 1, 2, 3, 1, 2, 3}},
		{ndarray.PadReflect, []float64{3, 2, 1, 2, 3, 2, 1, 2}},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			got, err := ndarray.Pad(a, w, tc.mode, 9)
			require.NoError(t, err)
			requireArray(t, got, []int{8}, tc.want)
		})
	}

	m := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	p2, err := ndarray.Pad(m, [][2]int{{1, 0}, {0, 1}}, ndarray.PadConstant, 0)
	require.NoError(t, err)
	requireArray(t, p2, []int{3, 3}, []float64{0, 0, 0, 1, 2, 0, 3, 4, 0})

	mode, err := ndarray.ParsePadMode("reflect")
	require.NoError(t, err)
	assert.Equal(t, ndarray.PadReflect, mode)
	_, err = ndarray.ParsePadMode("mirror")
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	_, err = ndarray.Pad(m, [][2]int{{1, 1}, {1, 1}, {1, 1}}, ndarray.PadEdge, 0)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)
	_, err = ndarray.Pad(ndarray.FromSlice(nil), w, ndarray.PadWrap, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
}

func TestInsertDelete(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 2, 3})
	ins, err := ndarray.Insert(a, []int{1, 3, 1}, []float64{10, 20})
	require.NoError(t, err)
	requireArray(t, ins, []int{6}, []float64{1, 10, 20, 2, 3, 20})

	m := mustNew(t, []float64{1, 2, 3, 4}, 2, 2)
	ia, err := ndarray.InsertAxis(m, []int{1}, []float64{0}, 1)
	require.NoError(t, err)
	requireArray(t, ia, []int{2, 3}, []float64{1, 0, 2, 3, 0, 4})

	_, err = ndarray.Insert(a, []int{4}, []float64{1})
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
	_, err = ndarray.Insert(a, []int{0}, nil)
	require.ErrorIs(t, err, ndarray.ErrShapeMismatch)

	del, err := ndarray.Delete(a, []int{0, 2, 2})
	require.NoError(t, err)
	requireArray(t, del, []int{1}, []float64{2})

	da, err := ndarray.DeleteAxis(m, []int{0}, 0)
	require.NoError(t, err)
	requireArray(t, da, []int{1, 2}, []float64{3, 4})

	_, err = ndarray.Delete(a, []int{0, 1, 2})
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	_, err = ndarray.Delete(a, []int{3})
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfRange)
}

func TestDiff(t *testing.T) {
	a := ndarray.FromSlice([]float64{1, 4, 9, 16})
	d1, err := ndarray.Diff(a, 1, 0)
	require.NoError(t, err)
	requireArray(t, d1, []int{3}, []float64{3, 5, 7})
	d2, err := ndarray.Diff(a, 2, 0)
	require.NoError(t, err)
	requireArray(t, d2, []int{2}, []float64{2, 2})

	m := mustNew(t, []float64{1, 2, 4, 10, 20, 40}, 2, 3)
	dm, err := ndarray.Diff(m, 1, 0)
	require.NoError(t, err)
	requireArray(t, dm, []int{1, 3}, []float64{9, 18, 36})

	_, err = ndarray.Diff(a, 4, 0)
	require.ErrorIs(t, err, ndarray.ErrInsufficientData)
	same, err := ndarray.Diff(a, 0, 0)
	require.NoError(t, err)
	assert.True(t, a.Equal(same))
}
