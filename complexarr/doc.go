// SPDX-License-Identifier: MIT

// Package complexarr is the complex128 variant of ndarray.
//
// An Array pairs a row-major shape with a []complex128 buffer. It covers the
// subset of operations that have a natural complex meaning: construction from
// real/imaginary parts, broadcasting arithmetic, conjugation, magnitude and
// phase, scaling and summation. Ordering operations (sort, min/max, argmin)
// are deliberately absent because complex numbers are unordered.
//
// Division follows complex128 arithmetic: an element divided by 0+0i yields
// Inf/NaN components. Only DivScalar with a zero divisor is an error, because
// the whole result would be undefined.
package complexarr
