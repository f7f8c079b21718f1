// SPDX-License-Identifier: MIT
// Package shape: sentinel error set.
// Every message is prefixed with "shape: ..." for grep-ability. Callers wrap
// these with an operation tag and match them via errors.Is.

package shape

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyShape is returned when a shape has rank 0 (rank ≥ 1 is required).
	ErrEmptyShape = errors.New("shape: empty shape")

	// ErrNegativeDim indicates a negative axis length.
	ErrNegativeDim = errors.New("shape: negative dimension")

	// ErrTooLarge indicates that product(shape) overflows int.
	ErrTooLarge = errors.New("shape: size overflows int")

	// ErrNotBroadcastable indicates two shapes violate the broadcasting rule.
	ErrNotBroadcastable = errors.New("shape: shapes are not broadcastable")

	// ErrAxisOutOfRange indicates an axis outside [0, ndim).
	ErrAxisOutOfRange = errors.New("shape: axis out of range")
)

// shapeErrorf tags err with the helper name, preserving the sentinel via %w.
func shapeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
