// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Insert and Delete along an axis (or on the flattened array).
//   - Both build one index map for the axis and hand it to remapAxis, so every
//     lane is rewritten in a single O(size_out) pass.

package ndarray

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/v2/sets/treeset"
)

const (
	opInsert = "Insert"
	opDelete = "Delete"
)

// insertPlan returns the remap indices and fill values for inserting values
// before the given positions of an axis of length n. Equal positions keep
// their argument order; when values is shorter than positions the last value
// is reused.
func insertPlan(n int, positions []int, values []float64) ([]int, []float64, error) {
	if len(positions) == 0 {
		return nil, nil, fmt.Errorf("no positions: %w", ErrInvalidArgument)
	}
	if len(values) == 0 || len(values) > len(positions) {
		return nil, nil, fmt.Errorf("%d values for %d positions: %w", len(values), len(positions), ErrShapeMismatch)
	}
	order := make([]int, len(positions))
	for k, p := range positions {
		if p < 0 || p > n {
			return nil, nil, fmt.Errorf("position %d for axis length %d: %w", p, n, ErrIndexOutOfRange)
		}
		order[k] = k
	}
	slices.SortStableFunc(order, func(x, y int) int { return positions[x] - positions[y] })

	m := n + len(positions)
	idx := make([]int, 0, m)
	fill := make([]float64, 0, m)
	q := 0
	for s := 0; s <= n; s++ {
		for q < len(order) && positions[order[q]] == s {
			v := values[min(order[q], len(values)-1)]
			idx = append(idx, -1)
			fill = append(fill, v)
			q++
		}
		if s < n {
			idx = append(idx, s)
			fill = append(fill, 0)
		}
	}

	return idx, fill, nil
}

// Insert inserts values before the given 0-based positions of the flattened
// array and returns a 1-D result.
// Errors: ErrNilArray, ErrInvalidArgument, ErrShapeMismatch, ErrIndexOutOfRange.
// Complexity: O(size + k log k).
func Insert(a *NDArray, positions []int, values []float64) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opInsert, ErrNilArray)
	}

	return InsertAxis(FromSlice(a.data), positions, values, 0)
}

// InsertAxis inserts, before each position along axis, a slice filled with the
// matching value.
// Errors: ErrNilArray, ErrAxisOutOfRange, ErrInvalidArgument, ErrShapeMismatch,
// ErrIndexOutOfRange.
// Complexity: O(size_out + k log k).
func InsertAxis(a *NDArray, positions []int, values []float64, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opInsert, err)
	}
	idx, fill, err := insertPlan(a.shape[axis], positions, values)
	if err != nil {
		return nil, arrayErrorf(opInsert, err)
	}

	return remapAxis(a, axis, idx, fill), nil
}

// Delete removes the given 0-based positions of the flattened array and
// returns a 1-D result. Duplicate positions count once.
// Errors: ErrNilArray, ErrIndexOutOfRange, ErrInvalidArgument (nothing would survive).
func Delete(a *NDArray, positions []int) (*NDArray, error) {
	if a == nil {
		return nil, arrayErrorf(opDelete, ErrNilArray)
	}

	return DeleteAxis(FromSlice(a.data), positions, 0)
}

// DeleteAxis removes the given positions along axis. Duplicates collapse
// through an ordered set; at least one slice must survive.
// Errors: ErrNilArray, ErrAxisOutOfRange, ErrIndexOutOfRange, ErrInvalidArgument.
// Complexity: O(size_out + k log k).
func DeleteAxis(a *NDArray, positions []int, axis int) (*NDArray, error) {
	if err := validateAxis(a, axis); err != nil {
		return nil, arrayErrorf(opDelete, err)
	}
	n := a.shape[axis]
	drop := treeset.New[int]()
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, arrayErrorf(opDelete, fmt.Errorf("position %d for axis length %d: %w", p, n, ErrIndexOutOfRange))
		}
		drop.Add(p)
	}
	if drop.Size() >= n {
		return nil, arrayErrorf(opDelete, fmt.Errorf("deleting %d of %d: %w", drop.Size(), n, ErrInvalidArgument))
	}
	idx := make([]int, 0, n-drop.Size())
	for s := 0; s < n; s++ {
		if !drop.Contains(s) {
			idx = append(idx, s)
		}
	}

	return remapAxis(a, axis, idx, nil), nil
}
