// SPDX-License-Identifier: MIT

// Package lvnd is a dense N-dimensional float64 array engine in the spirit
// of NumPy: typed arrays over flat row-major storage, broadcasting
// arithmetic, axis-aware reductions, shape manipulation, sorting and
// statistics, basic linear algebra and 1-D signal primitives.
//
// Everything lives in subpackages:
//
//	shape/      - strides, flat offsets, broadcasting rules, axis checks
//	alloc/      - memory accounting hook (Tracker, Budget) for creation ops
//	ndarray/    - the NDArray type and every operation on it
//	signal/     - correlate, convolve, gradient, interp
//	complexarr/ - a smaller complex128 array variant
//	interop/    - conversion to and from gonum mat and tensor.Dense
//	bridge/     - host marshaling boundary (1-based indices, named ops)
//
// Every operation returns a fresh array; NDArray.Set is the only mutator.
// Indices and axes are 0-based inside the engine. Only the bridge speaks
// the 1-based convention of scripting hosts.
//
// Quick example:
//
//	a, _ := ndarray.New([]float64{1, 2, 3, 4}, 2, 2)
//	b, _ := ndarray.Add(a, ndarray.FromSlice([]float64{10, 20}))
//	fmt.Println(b) // [[11, 22], [13, 24]]
//
//	go get github.com/katalvlaran/lvnd
package lvnd
