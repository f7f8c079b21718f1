// SPDX-License-Identifier: MIT
// Package: ndarray

package ndarray

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvnd/shape"
)

// Side selects where SearchSorted places a value equal to existing elements.
type Side int

const (
	// SideLeft returns the index before all equal elements.
	SideLeft Side = iota
	// SideRight returns the index after all equal elements.
	SideRight
)

// String returns "left" or "right".
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}

	return fmt.Sprintf("Side(%d)", int(s))
}

// SearchSorted returns, for every element of values, the 0-based insertion
// index into the ascending 1-D array sorted that keeps it ordered. The result
// has the shape of values. sorted is not checked for order; NaNs are treated
// as larger than every number, matching Sort.
// Errors:
//   - ErrNilArray, ErrUnsupportedRank (sorted not 1-D), ErrInvalidArgument (side).
//
// Complexity:
//   - O(len(values) * log len(sorted)).
func SearchSorted(sorted, values *NDArray, side Side) (*NDArray, error) {
	const op = "SearchSorted"
	if err := validateNotNil(sorted, values); err != nil {
		return nil, arrayErrorf(op, err)
	}
	if len(sorted.shape) != 1 {
		return nil, arrayErrorf(op, fmt.Errorf("sorted has rank %d: %w", len(sorted.shape), ErrUnsupportedRank))
	}
	if side != SideLeft && side != SideRight {
		return nil, arrayErrorf(op, fmt.Errorf("%v: %w", side, ErrInvalidArgument))
	}
	s := sorted.data
	out := zerosOf(shape.Clone(values.shape))
	for i, v := range values.data {
		var k int
		if side == SideLeft {
			k = sort.Search(len(s), func(j int) bool { return cmpNaNLast(s[j], v) >= 0 })
		} else {
			k = sort.Search(len(s), func(j int) bool { return cmpNaNLast(s[j], v) > 0 })
		}
		out.data[i] = float64(k)
	}

	return out, nil
}
