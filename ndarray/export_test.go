// SPDX-License-Identifier: MIT

package ndarray

// Test bridge for private kernels. Compiled only with the package tests.
var (
	ExportedPyMod      = pyMod
	ExportedQuantileOf = quantileOf
	ExportedPadSource  = padSource
	ExportedDiagLen    = diagLen
	ExportedCmpNaNLast = cmpNaNLast
)
