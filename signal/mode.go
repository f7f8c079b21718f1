// SPDX-License-Identifier: MIT
// Package: signal
//
// Purpose:
//   - Output windows (full, same, valid) shared by Correlate and Convolve.

package signal

import (
	"fmt"
	"strings"
)

// Mode selects the output window of Correlate and Convolve.
//
//   - Full: every lag with at least one overlapping sample.
//   - Same: max(n, m) lags centred on the full result.
//   - Valid: only lags where the shorter input lies entirely inside the longer one.
type Mode int

const (
	// Full returns n+m-1 values.
	Full Mode = iota

	// Same returns max(n, m) values.
	Same

	// Valid returns max(n, m)-min(n, m)+1 values.
	Valid
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Full:
		return "full"
	case Same:
		return "same"
	case Valid:
		return "valid"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "full", "same" or "valid" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "full":
		return Full, nil
	case "same":
		return Same, nil
	case "valid":
		return Valid, nil
	}

	return Full, fmt.Errorf("%q: %w", s, ErrInvalidMode)
}

// window returns the [offset, offset+length) slice of the full correlation
// of inputs with lengths n and k.
func (m Mode) window(n, k int) (offset, length int, ok bool) {
	full := n + k - 1
	lo, hi := min(n, k), max(n, k)
	switch m {
	case Full:
		return 0, full, true
	case Same:
		return (full - hi) / 2, hi, true
	case Valid:
		return lo - 1, hi - lo + 1, true
	}

	return 0, 0, false
}
