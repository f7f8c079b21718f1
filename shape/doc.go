// SPDX-License-Identifier: MIT

// Package shape holds the stride arithmetic shared by every array operation.
//
// A shape is an ordered []int of per-axis lengths (rank ≥ 1, entries ≥ 0).
// Layout is always row-major (C order): the last axis varies fastest, and
//
//	strides[i] = shape[i+1] * shape[i+2] * ... * shape[n-1]
//
// Strides are derived on demand and never stored next to the data. The
// helpers here are deliberately unchecked on the hot path: FlatIndex and
// Unflatten trust their caller to pass in-range coordinates. Public bounds
// checks live in the ndarray package.
//
// Broadcast implements the NumPy rule: right-align the shapes, pad the shorter
// one with 1s on the left, and require each aligned pair to be equal or 1.
package shape
