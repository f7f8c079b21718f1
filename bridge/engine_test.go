// SPDX-License-Identifier: MIT

package bridge_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvnd/alloc"
	"github.com/katalvlaran/lvnd/bridge"
	"github.com/katalvlaran/lvnd/ndarray"
)

type EngineSuite struct {
	suite.Suite
	e *bridge.Engine
}

func (s *EngineSuite) SetupTest() { s.e = bridge.NewEngine() }

// call runs a named operation and fails the test on error.
func (s *EngineSuite) call(name string, in ...any) bridge.Value {
	v, err := s.e.CallName(name, in...)
	s.Require().NoError(err, name)

	return v
}

func (s *EngineSuite) array(v bridge.Value) *ndarray.NDArray {
	a, ok := v.NDArray()
	s.Require().True(ok, "kind %s", v.Kind())

	return a
}

func (s *EngineSuite) scalar(v bridge.Value) float64 {
	f, ok := v.Float()
	s.Require().True(ok, "kind %s", v.Kind())

	return f
}

func (s *EngineSuite) requirePair(v bridge.Value, shape []int, data []float64) {
	p := bridge.Encode(s.array(v))
	s.Equal(shape, p.Shape)
	s.Equal(data, p.Data)
}

func (s *EngineSuite) TestScenarios() {
	s.requirePair(s.call("zeros", []int{2, 3}), []int{2, 3}, []float64{0, 0, 0, 0, 0, 0})

	m := s.call("array", []float64{1, 2, 3, 4, 5, 6}, []int{2, 3})
	s.requirePair(s.call("transpose", m), []int{3, 2}, []float64{1, 4, 2, 5, 3, 6})

	s.requirePair(s.call("add", []float64{1, 2, 3}, 10), []int{3}, []float64{11, 12, 13})
	s.requirePair(s.call("add", [][]float64{{1}, {2}}, []float64{10, 20, 30}),
		[]int{2, 3}, []float64{11, 21, 31, 12, 22, 32})

	s.requirePair(s.call("sort", []float64{3, 1, 2}), []int{3}, []float64{1, 2, 3})
	s.requirePair(s.call("argsort", []float64{3, 1, 2}), []int{3}, []float64{2, 3, 1})

	s.Equal(2.5, s.scalar(s.call("percentile", []float64{1, 2, 3, 4}, 50)))
}

func (s *EngineSuite) TestOneBasedPositions() {
	s.Equal(2.0, s.scalar(s.call("argmin", []float64{3, 1, 2})))
	s.requirePair(s.call("argmax", [][]float64{{1, 5}, {7, 2}}, 2), []int{2}, []float64{2, 1})

	m := [][]float64{{1, 2}, {3, 4}}
	s.Equal(3.0, s.scalar(s.call("get", m, []int{2, 1})))

	updated := s.call("set", m, []int{1, 2}, 9)
	s.requirePair(updated, []int{2, 2}, []float64{1, 9, 3, 4})
	s.Equal(2.0, m[0][1], "host data untouched")

	s.requirePair(s.call("insert", []float64{1, 2, 3}, 1, 9), []int{4}, []float64{9, 1, 2, 3})
	s.requirePair(s.call("insert", []float64{1, 2, 3}, 4, 9), []int{4}, []float64{1, 2, 3, 9})
	s.requirePair(s.call("delete", []float64{1, 2, 3}, 2), []int{2}, []float64{1, 3})
	s.requirePair(s.call("delete", m, 1, 1), []int{1, 2}, []float64{3, 4})

	s.requirePair(s.call("searchsorted", []float64{1, 2, 2, 5}, 2, "right"), []int{1}, []float64{4})
	s.requirePair(s.call("sum", m, 1), []int{2}, []float64{4, 6})
	s.requirePair(s.call("sum", m, 2), []int{2}, []float64{3, 7})

	nz := s.call("nonzero", [][]float64{{0, 5}, {6, 0}})
	items, ok := nz.Items()
	s.Require().True(ok)
	s.Require().Len(items, 2)
	s.requirePair(items[0], []int{2}, []float64{1, 2})
	s.requirePair(items[1], []int{2}, []float64{2, 1})

	_, err := s.e.CallName("get", m, []int{0, 1})
	s.Require().ErrorIs(err, bridge.ErrIndexBase)
	_, err = s.e.CallName("sum", m, 3)
	s.Require().ErrorIs(err, ndarray.ErrAxisOutOfRange)
}

func (s *EngineSuite) TestKeyedResults() {
	u := s.call("unique", []float64{3, 1, 3, 2})
	keyed, ok := u.Keyed()
	s.Require().True(ok)

	var keys []string
	for pair := keyed.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	s.Equal([]string{"values", "indices", "inverse", "counts"}, keys)

	values, _ := keyed.Get("values")
	s.requirePair(values, []int{3}, []float64{1, 2, 3})
	indices, _ := keyed.Get("indices")
	s.requirePair(indices, []int{3}, []float64{2, 4, 1})
	inverse, _ := keyed.Get("inverse")
	s.requirePair(inverse, []int{4}, []float64{3, 1, 3, 2})
	counts, _ := keyed.Get("counts")
	s.requirePair(counts, []int{3}, []float64{1, 1, 2})

	h := s.call("histogram", []float64{1, 2, 2, 3, 4}, 3)
	hk, ok := h.Keyed()
	s.Require().True(ok)
	c, _ := hk.Get("counts")
	s.requirePair(c, []int{3}, []float64{1, 2, 2})

	g := s.call("gradient", [][]float64{{1, 2, 6}, {3, 4, 5}})
	gk, ok := g.Keyed()
	s.Require().True(ok)
	s.Equal(2, gk.Len())
	g2, ok := gk.Get("2")
	s.Require().True(ok)
	s.requirePair(g2, []int{2, 3}, []float64{1, 2.5, 4, 1, 1, 1})

	exported, ok := h.Export().(interface{ Len() int })
	s.Require().True(ok)
	s.Equal(2, exported.Len())
}

func (s *EngineSuite) TestListResults() {
	parts := s.call("split", []float64{1, 2, 3, 4}, 2)
	items, ok := parts.Items()
	s.Require().True(ok)
	s.Require().Len(items, 2)
	s.requirePair(items[1], []int{2}, []float64{3, 4})

	exported, ok := parts.Export().([]any)
	s.Require().True(ok)
	s.Equal(bridge.Pair{Shape: []int{2}, Data: []float64{1, 2}}, exported[0])

	joined := s.call("concatenate", parts)
	s.requirePair(joined, []int{4}, []float64{1, 2, 3, 4})
	stacked := s.call("stack", []any{[]float64{1, 2}, []float64{3, 4}}, 2)
	s.requirePair(stacked, []int{2, 2}, []float64{1, 3, 2, 4})
}

func (s *EngineSuite) TestMiscOperations() {
	s.requirePair(s.call("arange", 4), []int{4}, []float64{0, 1, 2, 3})
	s.requirePair(s.call("linspace", 0, 1, 3), []int{3}, []float64{0, 0.5, 1})
	s.requirePair(s.call("eye", 2), []int{2, 2}, []float64{1, 0, 0, 1})
	s.requirePair(s.call("shape", [][]float64{{1, 2, 3}}), []int{2}, []float64{1, 3})
	s.requirePair(s.call("sqrt", []float64{4, 9}), []int{2}, []float64{2, 3})
	s.requirePair(s.call("multiply", []float64{1, 2}, 3), []int{2}, []float64{3, 6})
	s.requirePair(s.call("pad", []float64{1, 2, 3}, 2, "reflect"), []int{7}, []float64{3, 2, 1, 2, 3, 2, 1})
	s.requirePair(s.call("convolve", []float64{1, 2, 3}, []float64{0, 1, 0.5}, "same"), []int{3}, []float64{1, 2.5, 4})
	s.requirePair(s.call("interp", []float64{0, 1.5, 9}, []float64{1, 2}, []float64{10, 20}, -1), []int{3}, []float64{-1, 15, 20})
	s.requirePair(s.call("diff", []float64{1, 4, 9}), []int{2}, []float64{3, 5})
	s.InDelta(-2.0, s.scalar(s.call("det", [][]float64{{1, 2}, {3, 4}})), 1e-12)
	s.Equal(1.0, s.scalar(s.call("allclose", []float64{1}, []float64{1 + 1e-12})))
	s.Equal(0.0, s.scalar(s.call("all", []float64{1, 0})))
}

func (s *EngineSuite) TestCoordinateAndDiagonalOperations() {
	s.requirePair(s.call("argwhere", [][]float64{{0, 2}, {3, 0}}), []int{2, 2}, []float64{1, 2, 2, 1})
	none := s.call("argwhere", []float64{0, 0})
	s.requirePair(none, []int{0, 1}, []float64{})

	m := [][]float64{{1, 2}, {3, 4}}
	s.requirePair(s.call("diagonal", m), []int{2}, []float64{1, 4})
	s.requirePair(s.call("diagonal", m, 1), []int{1}, []float64{2})
	s.requirePair(s.call("diag", []float64{1, 2}), []int{2, 2}, []float64{1, 0, 0, 2})
	s.requirePair(s.call("diag", m, -1), []int{1}, []float64{3})
}

func (s *EngineSuite) TestPredicatesAndLikeCreation() {
	v := []float64{1, math.NaN(), math.Inf(-1)}
	s.requirePair(s.call("isnan", v), []int{3}, []float64{0, 1, 0})
	s.requirePair(s.call("isinf", v), []int{3}, []float64{0, 0, 1})
	s.requirePair(s.call("isfinite", v), []int{3}, []float64{1, 0, 0})

	m := [][]float64{{1, 2, 3}}
	s.requirePair(s.call("zeros_like", m), []int{1, 3}, []float64{0, 0, 0})
	s.requirePair(s.call("ones_like", m), []int{1, 3}, []float64{1, 1, 1})
	s.requirePair(s.call("full_like", m, 7), []int{1, 3}, []float64{7, 7, 7})
	s.requirePair(s.call("empty_like", m), []int{1, 3}, []float64{0, 0, 0})
}

func (s *EngineSuite) TestSplitAtPositions() {
	parts := s.call("split", []float64{1, 2, 3, 4}, []int{2, 4})
	items, ok := parts.Items()
	s.Require().True(ok)
	s.Require().Len(items, 3)
	s.requirePair(items[0], []int{1}, []float64{1})
	s.requirePair(items[1], []int{2}, []float64{2, 3})
	s.requirePair(items[2], []int{1}, []float64{4})

	cols := s.call("split", [][]float64{{1, 2, 3}, {4, 5, 6}}, []int{3}, 2)
	items, ok = cols.Items()
	s.Require().True(ok)
	s.Require().Len(items, 2)
	s.requirePair(items[0], []int{2, 2}, []float64{1, 2, 4, 5})
	s.requirePair(items[1], []int{2, 1}, []float64{3, 6})

	_, err := s.e.CallName("split", []float64{1, 2}, []int{0})
	s.Require().ErrorIs(err, bridge.ErrIndexBase)
}

func (s *EngineSuite) TestErrors() {
	_, err := s.e.Call(bridge.Op(12345))
	s.Require().ErrorIs(err, bridge.ErrUnknownOp)
	_, err = s.e.CallName("nope")
	s.Require().ErrorIs(err, bridge.ErrUnknownOp)
	_, err = s.e.CallName("add", []float64{1})
	s.Require().ErrorIs(err, bridge.ErrArity)
	_, err = s.e.CallName("zeros", []float64{1.5})
	s.Require().ErrorIs(err, bridge.ErrArgType)
	_, err = s.e.CallName("add", [][]float64{{1, 2}, {3}}, 1)
	s.Require().ErrorIs(err, bridge.ErrRagged)
	_, err = s.e.CallName("add", []float64{1, 2}, []float64{1, 2, 3})
	s.Require().ErrorIs(err, ndarray.ErrNotBroadcastable)
	_, err = s.e.CallName("searchsorted", []float64{1}, 1, "middle")
	s.Require().ErrorIs(err, bridge.ErrArgType)
	_, err = s.e.CallName("bincount", []float64{0, 1e300})
	s.Require().ErrorIs(err, ndarray.ErrInvalidArgument)
	_, err = s.e.CallName("zeros", []int{1 << 30, 1 << 30})
	s.Require().ErrorIs(err, ndarray.ErrInvalidShape)
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestEngine_TrackerAndLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	budget := alloc.NewBudget(16, alloc.WithLogger(logger))
	e := bridge.NewEngine(bridge.WithTracker(budget), bridge.WithLogger(logger))

	_, err := e.CallName("zeros", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(16), budget.Used())

	_, err = e.CallName("ones", 1)
	require.ErrorIs(t, err, ndarray.ErrAllocationDenied)
	require.ErrorIs(t, err, alloc.ErrBudgetExceeded)
	assert.Contains(t, buf.String(), "bridge call failed")
	assert.Contains(t, buf.String(), "op=ones")
}

func TestEngine_SeededRandomIsReproducible(t *testing.T) {
	a := bridge.NewEngine(bridge.WithSeed(7))
	b := bridge.NewEngine(bridge.WithSeed(7))
	for range 2 {
		x, err := a.CallName("random", 4)
		require.NoError(t, err)
		y, err := b.CallName("random", 4)
		require.NoError(t, err)
		assert.Equal(t, x.Export(), y.Export())
	}
}

func TestEngine_OptionsPanicOnNil(t *testing.T) {
	assert.Panics(t, func() { bridge.WithTracker(nil) })
	assert.Panics(t, func() { bridge.WithLogger(nil) })
}
