// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"

	"github.com/katalvlaran/lvnd/ndarray"
)

// ToZeroBased converts 1-based host positions to engine positions.
// Any position below 1 fails with ErrIndexBase.
func ToZeroBased(idx []int) ([]int, error) {
	out := make([]int, len(idx))
	for i, p := range idx {
		if p < 1 {
			return nil, fmt.Errorf("position %d is %d: %w", i+1, p, ErrIndexBase)
		}
		out[i] = p - 1
	}

	return out, nil
}

// ToOneBased converts engine positions to 1-based host positions.
func ToOneBased(idx []int) []int {
	out := make([]int, len(idx))
	for i, p := range idx {
		out[i] = p + 1
	}

	return out
}

// oneBasedArray shifts an array of engine positions to host positions.
func oneBasedArray(a *ndarray.NDArray) (*ndarray.NDArray, error) {
	return ndarray.AddScalar(a, 1)
}
