// SPDX-License-Identifier: MIT

// Package alloc is the memory-accounting hook consulted before large buffers
// are created.
//
// The engine never owns the budget: the host injects a Tracker, and every
// creation operation asks it for permission (TryReserve) before allocating.
// A refusal aborts the operation atomically; nothing partial is observable.
//
// Provided implementations:
//   - Unlimited: accepts every request (the default when no tracker is injected).
//   - TrackerFunc: adapts a plain callback.
//   - Budget: a goroutine-safe bounded counter with optional slog diagnostics.
//
// Arrays are released by the garbage collector, so there is no Release call in
// the hook contract; Budget.Reset lets a host start a fresh accounting window.
package alloc

import (
	"errors"
	"log/slog"
	"sync"
)

// ErrBudgetExceeded is reported (wrapped) by callers when TryReserve refuses.
var ErrBudgetExceeded = errors.New("alloc: allocation budget exceeded")

// Tracker decides whether byteCount more bytes may be allocated.
// Implementations must be safe to call from the goroutine that owns the engine;
// Budget is additionally safe for concurrent use.
type Tracker interface {
	TryReserve(byteCount int64) bool
}

// TrackerFunc adapts an ordinary function to the Tracker interface.
type TrackerFunc func(byteCount int64) bool

// TryReserve calls f(byteCount).
func (f TrackerFunc) TryReserve(byteCount int64) bool { return f(byteCount) }

type unlimited struct{}

func (unlimited) TryReserve(int64) bool { return true }

// Unlimited accepts every reservation.
var Unlimited Tracker = unlimited{}

// Budget is a bounded tracker: a reservation succeeds only while used+n ≤ limit.
// The zero value is not usable; construct with NewBudget.
type Budget struct {
	mu     sync.Mutex
	limit  int64
	used   int64
	logger *slog.Logger
}

// BudgetOption configures a Budget.
type BudgetOption func(*Budget)

// WithLogger routes denial diagnostics to l (Debug level). A nil logger panics:
// that is a programmer error, not a runtime condition.
func WithLogger(l *slog.Logger) BudgetOption {
	if l == nil {
		panic("alloc: WithLogger: nil logger")
	}

	return func(b *Budget) { b.logger = l }
}

// NewBudget returns a Budget allowing at most limit bytes in total.
// A negative limit is treated as 0 (every non-empty reservation fails).
func NewBudget(limit int64, opts ...BudgetOption) *Budget {
	if limit < 0 {
		limit = 0
	}
	b := &Budget{limit: limit, logger: slog.Default()}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// TryReserve implements Tracker.
// Implementation:
//   - Stage 1: reject negative requests outright.
//   - Stage 2: under the lock, admit the request only if it fits the remaining budget.
//
// Complexity: O(1).
func (b *Budget) TryReserve(byteCount int64) bool {
	if byteCount < 0 {
		return false
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if byteCount > b.limit-b.used {
		b.logger.Debug("allocation denied",
			"requested", byteCount, "used", b.used, "limit", b.limit)
		return false
	}
	b.used += byteCount

	return true
}

// Used returns the bytes reserved so far.
func (b *Budget) Used() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.used
}

// Remaining returns limit - used.
func (b *Budget) Remaining() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.limit - b.used
}

// Reset forgets all reservations.
func (b *Budget) Reset() {
	b.mu.Lock()
	b.used = 0
	b.mu.Unlock()
}
