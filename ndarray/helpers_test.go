// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnd/ndarray"
)

// floatOpts compares float slices up to rounding with NaN == NaN.
var floatOpts = cmp.Options{cmpopts.EquateApprox(0, 1e-9), cmpopts.EquateNaNs()}

// mustNew builds an array or fails the test.
func mustNew(t testing.TB, data []float64, dims ...int) *ndarray.NDArray {
	t.Helper()
	a, err := ndarray.New(data, dims...)
	require.NoError(t, err)

	return a
}

// requireArray checks shape and values of got.
func requireArray(t testing.TB, got *ndarray.NDArray, wantShape []int, want []float64) {
	t.Helper()
	require.NotNil(t, got)
	require.Equal(t, wantShape, got.Shape())
	if diff := cmp.Diff(want, got.Data(), floatOpts); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}
}

// requireInvariant checks len(data) == product(shape).
func requireInvariant(t testing.TB, a *ndarray.NDArray) {
	t.Helper()
	n := 1
	for _, d := range a.Shape() {
		n *= d
	}
	require.Equal(t, n, a.Size())
	require.Len(t, a.Data(), n)
}
