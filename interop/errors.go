// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnd/ndarray"
)

var (
	// ErrUnsupportedDtype indicates a tensor whose element type is not float64.
	ErrUnsupportedDtype = errors.New("interop: unsupported dtype")

	// Shared with ndarray.
	ErrNilArray        = ndarray.ErrNilArray
	ErrUnsupportedRank = ndarray.ErrUnsupportedRank
	ErrEmptyArray      = ndarray.ErrEmptyArray
)

const (
	ctxToDense    = "ToDense"
	ctxToVec      = "ToVec"
	ctxToTensor   = "ToTensor"
	ctxFromTensor = "FromTensor"
)

func interopErrorf(tag string, err error) error {
	return fmt.Errorf("interop: %s: %w", tag, err)
}

// exportable checks a against a required rank (0 means any) and non-emptiness.
func exportable(tag string, a *ndarray.NDArray, rank int) error {
	switch {
	case a == nil:
		return interopErrorf(tag, ErrNilArray)
	case rank > 0 && a.Ndim() != rank:
		return interopErrorf(tag, fmt.Errorf("rank %d, want %d: %w", a.Ndim(), rank, ErrUnsupportedRank))
	case a.Size() == 0:
		return interopErrorf(tag, ErrEmptyArray)
	}

	return nil
}
