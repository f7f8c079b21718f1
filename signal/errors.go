// SPDX-License-Identifier: MIT

package signal

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnd/ndarray"
)

var (
	// ErrNotVector indicates an operand that must be 1-D but is not.
	ErrNotVector = errors.New("signal: operand must be 1-D")

	// ErrEmptyInput indicates a zero-length operand.
	ErrEmptyInput = errors.New("signal: empty input")

	// ErrLengthMismatch indicates xp and fp of different lengths.
	ErrLengthMismatch = errors.New("signal: length mismatch")

	// ErrInvalidMode indicates a Mode outside Full/Same/Valid.
	ErrInvalidMode = errors.New("signal: invalid mode")

	// ErrInvalidSpacing indicates a zero or non-finite gradient spacing.
	ErrInvalidSpacing = errors.New("signal: spacing must be finite and non-zero")

	// ErrNotIncreasing indicates sample points that are not strictly increasing.
	ErrNotIncreasing = errors.New("signal: sample points must be strictly increasing")

	// ErrInsufficientData aliases the ndarray sentinel: fewer than two samples
	// along a gradient axis.
	ErrInsufficientData = ndarray.ErrInsufficientData
)

// Operation tags.
const (
	ctxCorrelate = "Correlate"
	ctxConvolve  = "Convolve"
	ctxGradient  = "Gradient"
	ctxInterp    = "Interp"
)

func signalErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
