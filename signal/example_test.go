// SPDX-License-Identifier: MIT

package signal_test

import (
	"fmt"

	"github.com/katalvlaran/lvnd/ndarray"
	"github.com/katalvlaran/lvnd/signal"
)

func ExampleConvolve() {
	a := ndarray.FromSlice([]float64{1, 2, 3})
	v := ndarray.FromSlice([]float64{0, 1, 0.5})

	for _, mode := range []signal.Mode{signal.Full, signal.Same, signal.Valid} {
		c, err := signal.Convolve(a, v, mode)
		if err != nil {
			panic(err)
		}
		fmt.Println(mode, c)
	}
	// Output:
	// full [0, 1, 2.5, 4, 1.5]
	// same [1, 2.5, 4]
	// valid [2.5]
}

func ExampleGradient() {
	f, _ := ndarray.New([]float64{1, 2, 6, 3, 4, 5}, 2, 3)
	grads, err := signal.Gradient(f, 1)
	if err != nil {
		panic(err)
	}
	for pair := grads.Oldest(); pair != nil; pair = pair.Next() {
		fmt.Println("axis", pair.Key, pair.Value)
	}
	// Output:
	// axis 0 [[2, 2, -1], [2, 2, -1]]
	// axis 1 [[1, 2.5, 4], [1, 1, 1]]
}

func ExampleInterp() {
	xp := ndarray.FromSlice([]float64{0, 10})
	fp := ndarray.FromSlice([]float64{0, 100})
	y, _ := signal.Interp(ndarray.FromSlice([]float64{-5, 2.5, 12}), xp, fp, signal.WithLeft(-1))
	fmt.Println(y)
	// Output: [-1, 25, 100]
}
