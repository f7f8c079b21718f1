// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// This file defines ONLY package-level sentinels. Every public operation
// returns one of these (wrapped with an operation tag via arrayErrorf) and
// tests match them with errors.Is. No operation panics on user input.
//
// Error kinds:
//   - shape errors: ErrInvalidShape, ErrSizeMismatch, ErrShapeMismatch,
//     ErrNotBroadcastable, ErrAxisOutOfRange, ErrUnsupportedRank.
//   - precondition errors: ErrEmptyArray, ErrInsufficientData, ErrNotInteger,
//     ErrNegativeValue, ErrInvalidArgument, ErrSingular, ErrIndexOutOfRange.
//   - resource errors: ErrAllocationDenied.
//
// IEEE domain results (x/0, log(-1), asin(2)) are NOT errors: they produce
// NaN/±Inf exactly as float64 arithmetic does.

package ndarray

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnd/alloc"
	"github.com/katalvlaran/lvnd/shape"
)

var (
	// ErrNilArray indicates a nil *NDArray operand.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrInvalidShape indicates a missing/empty/negative/overflowing shape.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrSizeMismatch indicates len(data) != product(shape), or a reshape that changes size.
	ErrSizeMismatch = errors.New("ndarray: size mismatch")

	// ErrShapeMismatch indicates operands whose shapes must agree but do not
	// (concatenate, stack, weights, sorted/values ranks).
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrNotBroadcastable aliases the shape sentinel so both packages match.
	ErrNotBroadcastable = shape.ErrNotBroadcastable

	// ErrAxisOutOfRange aliases the shape sentinel so both packages match.
	ErrAxisOutOfRange = shape.ErrAxisOutOfRange

	// ErrUnsupportedRank indicates an operation called on a rank it does not define.
	ErrUnsupportedRank = errors.New("ndarray: unsupported rank")

	// ErrIndexOutOfRange indicates an element/insert/delete index outside bounds.
	ErrIndexOutOfRange = errors.New("ndarray: index out of range")

	// ErrEmptyArray indicates a reduction that has no identity (min, max, median, ...)
	// applied to zero elements.
	ErrEmptyArray = errors.New("ndarray: empty array")

	// ErrInsufficientData indicates too few elements along an axis (diff, cov, gradient).
	ErrInsufficientData = errors.New("ndarray: insufficient data")

	// ErrNotInteger indicates a non-integral value where integers are required (bincount).
	ErrNotInteger = errors.New("ndarray: value is not an integer")

	// ErrNegativeValue indicates a negative value where non-negative ones are required.
	ErrNegativeValue = errors.New("ndarray: negative value")

	// ErrInvalidArgument indicates a scalar argument outside its domain
	// (zero step, bins ≤ 0, q ∉ [0,1], unknown mode, ...).
	ErrInvalidArgument = errors.New("ndarray: invalid argument")

	// ErrSingular indicates a zero pivot during inversion or solve.
	ErrSingular = errors.New("ndarray: singular matrix")

	// ErrAllocationDenied indicates the injected tracker refused the allocation.
	// Errors carrying it also match alloc.ErrBudgetExceeded.
	ErrAllocationDenied = errors.New("ndarray: allocation denied")
)

// arrayErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func arrayErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeErrorf maps a shape.Validate failure onto ErrInvalidShape while keeping
// the precise shape sentinel reachable through errors.Is.
func shapeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrInvalidShape, err)
}

// allocErrorf reports a refused reservation of n bytes.
func allocErrorf(tag string, n int64) error {
	return fmt.Errorf("%s: %d bytes: %w: %w", tag, n, ErrAllocationDenied, alloc.ErrBudgetExceeded)
}

// IsShapeError reports whether err belongs to the shape-error kind.
func IsShapeError(err error) bool {
	for _, s := range []error{
		ErrInvalidShape, ErrSizeMismatch, ErrShapeMismatch,
		ErrNotBroadcastable, ErrAxisOutOfRange, ErrUnsupportedRank,
	} {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}

// IsPreconditionError reports whether err belongs to the precondition-error kind.
func IsPreconditionError(err error) bool {
	for _, s := range []error{
		ErrEmptyArray, ErrInsufficientData, ErrNotInteger, ErrNegativeValue,
		ErrInvalidArgument, ErrSingular, ErrIndexOutOfRange,
	} {
		if errors.Is(err, s) {
			return true
		}
	}

	return false
}
