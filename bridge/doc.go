// SPDX-License-Identifier: MIT

// Package bridge is the marshaling boundary between a scripting host and the
// numeric core.
//
// The core is 0-based and typed; hosts are usually 1-based and dynamically
// typed. bridge owns every conversion between the two, applied exactly once:
//
//   - Inbound data: Decode accepts numeric scalars, flat or nested slices
//     ([]float64, []int, [][]float64, []any, ...), Pair values and arrays.
//     Nested slices must be uniform at every depth; ragged input fails with
//     ErrRagged.
//   - Inbound indices and axes: ToZeroBased converts 1-based host positions.
//   - Outbound: arrays become Pair{Shape, Data}; multi-output operations become
//     list values or keyed values backed by an insertion-ordered map.
//   - Dispatch: Op is a closed enum. ParseOp is the single place where a host
//     operation name is resolved; Engine.Call executes the variant.
//
// Index-bearing operations (argmin, argmax, argsort, searchsorted, unique
// companions, nonzero, get, set, insert, delete) and every axis argument are
// 1-based at this boundary.
//
// An Engine carries the collaborators the host injects: the allocation
// tracker consulted by creation operations, an optional seed for random
// creation, and a slog logger for failed calls.
package bridge
