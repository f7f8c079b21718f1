// SPDX-License-Identifier: MIT

// Package signal provides 1-D signal-processing primitives over ndarray values:
// discrete correlation and convolution, numerical gradients and piecewise-linear
// interpolation.
//
// Correlation and convolution share one zero-padded kernel. For a of length n
// and v of length m the full correlation has length n+m-1:
//
//	full[k] = Σ_j a[k+j-(m-1)]·v[j]   (terms with an out-of-range a index are zero)
//
// Convolution is the correlation with v reversed. Mode selects the window of
// the full result that is returned:
//
//	Full  → all n+m-1 values
//	Same  → max(n, m) values centred on the full result
//	Valid → max(n, m)-min(n, m)+1 values where the inputs overlap completely
//
// Gradient uses second-order central differences in the interior and
// first-order one-sided differences at the two edges, so the output has the
// same shape as the input. Gradients over every axis are returned in an
// insertion-ordered map keyed by axis (0-based).
//
// Interp evaluates the piecewise-linear interpolant through (xp, fp) at every
// element of x. xp must be strictly increasing; points left of xp[0] and right
// of xp[len-1] take the configurable Left/Right fill values (fp[0] and
// fp[len-1] by default).
//
// All functions are pure: inputs are never modified and results own their data.
package signal
