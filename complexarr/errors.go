// SPDX-License-Identifier: MIT

package complexarr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnd/ndarray"
)

var (
	// ErrDivisionByZero indicates DivScalar with a zero divisor.
	ErrDivisionByZero = errors.New("complexarr: division by zero")

	// Shared with ndarray so callers match one sentinel set.
	ErrNilArray         = ndarray.ErrNilArray
	ErrInvalidShape     = ndarray.ErrInvalidShape
	ErrSizeMismatch     = ndarray.ErrSizeMismatch
	ErrShapeMismatch    = ndarray.ErrShapeMismatch
	ErrNotBroadcastable = ndarray.ErrNotBroadcastable
	ErrIndexOutOfRange  = ndarray.ErrIndexOutOfRange
)

const (
	ctxNew       = "New"
	ctxFromParts = "FromParts"
	ctxAt        = "At"
	ctxBinary    = "Binary"
	ctxDivScalar = "DivScalar"
)

func complexErrorf(tag string, err error) error {
	return fmt.Errorf("complexarr: %s: %w", tag, err)
}
