// SPDX-License-Identifier: MIT

package bridge

import (
	"errors"
	"fmt"
)

var (
	// ErrRagged indicates nested input whose lengths differ at some depth.
	ErrRagged = errors.New("bridge: ragged nested sequence")

	// ErrArgType indicates an argument of the wrong kind (string for a number,
	// fractional value for an integer, ...).
	ErrArgType = errors.New("bridge: invalid argument type")

	// ErrArity indicates a missing required argument.
	ErrArity = errors.New("bridge: missing argument")

	// ErrIndexBase indicates a host index below 1.
	ErrIndexBase = errors.New("bridge: host indices are 1-based")

	// ErrUnknownOp indicates an operation name or value outside the Op set.
	ErrUnknownOp = errors.New("bridge: unknown operation")
)

func bridgeErrorf(tag string, err error) error {
	return fmt.Errorf("bridge: %s: %w", tag, err)
}
