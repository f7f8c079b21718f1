// SPDX-License-Identifier: MIT

// Package interop converts ndarray values to and from the array types of the
// wider Go numeric ecosystem:
//
//   - gonum mat: ToDense / FromMatrix for rank-2 arrays, ToVec / FromVector for rank-1.
//   - tensor (gorgonia-compatible): ToTensor / FromTensor for float64 tensors of any rank.
//
// Every conversion copies; neither side ever aliases the other's storage.
// gonum and tensor cannot represent zero-length dimensions, so exporting an
// empty array fails with ErrEmptyArray.
package interop
