// SPDX-License-Identifier: MIT
// Package: shape
//
// Purpose:
//   - NumPy broadcasting rule for shape inference.
//   - Source-offset mapping used by the materializing broadcast in ndarray.

package shape

import "fmt"

// Broadcast returns the common shape of a and b under the NumPy rule.
// Implementation:
//   - Stage 1: outRank = max(len(a), len(b)); treat missing leading dims as 1.
//   - Stage 2: per aligned dim require equality or a 1 on either side.
//
// Behavior highlights:
//   - Commutative: Broadcast(a,b) == Broadcast(b,a).
//   - A 0-length dim broadcasts only against 0 or 1.
//
// Errors:
//   - ErrNotBroadcastable (wrapped with both shapes for diagnostics).
//
// Complexity:
//   - Time O(max rank), Space O(max rank).
func Broadcast(a, b []int) ([]int, error) {
	rank := max(len(a), len(b))
	out := make([]int, rank)
	for i := 0; i < rank; i++ {
		ad, bd := 1, 1
		if j := i - (rank - len(a)); j >= 0 {
			ad = a[j]
		}
		if j := i - (rank - len(b)); j >= 0 {
			bd = b[j]
		}
		switch {
		case ad == bd || ad == 1:
			out[i] = bd
		case bd == 1:
			out[i] = ad
		default:
			return nil, fmt.Errorf("Broadcast(%v,%v): %w", a, b, ErrNotBroadcastable)
		}
	}

	return out, nil
}

// BroadcastMany folds Broadcast over all shapes (left to right).
func BroadcastMany(shapes ...[]int) ([]int, error) {
	if len(shapes) == 0 {
		return nil, shapeErrorf("BroadcastMany", ErrEmptyShape)
	}
	out := Clone(shapes[0])
	var err error
	for _, s := range shapes[1:] {
		if out, err = Broadcast(out, s); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// LeftPad returns shape left-padded with 1s up to rank.
func LeftPad(shape []int, rank int) []int {
	if len(shape) >= rank {
		return Clone(shape)
	}
	out := make([]int, rank)
	pad := rank - len(shape)
	for i := 0; i < pad; i++ {
		out[i] = 1
	}
	copy(out[pad:], shape)

	return out
}

// BroadcastStrides returns strides for reading src (shape srcShape) while walking
// target: axes where src has length 1 (or is missing) get stride 0, so the same
// source element is reused along them. target must be Broadcast-compatible.
// Complexity: O(len(target)).
func BroadcastStrides(srcShape, target []int) []int {
	padded := LeftPad(srcShape, len(target))
	st := Strides(padded)
	for d := range padded {
		if padded[d] == 1 && target[d] != 1 {
			st[d] = 0
		}
	}

	return st
}
