// SPDX-License-Identifier: MIT

package bridge

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvnd/alloc"
	"github.com/katalvlaran/lvnd/ndarray"
)

// Option configures an Engine.
type Option func(*Engine)

// WithTracker sets the allocation tracker consulted by creation operations.
// Panics on nil; pass alloc.Unlimited to disable accounting.
func WithTracker(t alloc.Tracker) Option {
	if t == nil {
		panic("bridge: WithTracker: tracker must not be nil")
	}

	return func(e *Engine) { e.tracker = t }
}

// WithLogger routes diagnostics for failed calls to l (Debug level).
// Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("bridge: WithLogger: logger must not be nil")
	}

	return func(e *Engine) { e.logger = l }
}

// WithSeed makes random creation reproducible: an engine built with the same
// seed yields the same sequence of random arrays.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.src = rand.NewSource(seed) }
}

// Engine executes host calls. It is safe for concurrent use; calls are
// serialized because a seeded engine shares one random source.
type Engine struct {
	mu      sync.Mutex
	tracker alloc.Tracker
	logger  *slog.Logger
	src     rand.Source // nil ⇒ time-seeded per call
}

// NewEngine builds an Engine with unlimited allocation and slog.Default().
func NewEngine(opts ...Option) *Engine {
	e := &Engine{tracker: alloc.Unlimited, logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Call executes op with positional host arguments.
func (e *Engine) Call(op Op, in ...any) (Value, error) {
	h, ok := handlerFor(op)
	if !ok {
		return Value{}, fmt.Errorf("bridge: %v: %w", op, ErrUnknownOp)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	v, err := h(e, args(in))
	if err != nil {
		e.logger.Debug("bridge call failed", "op", op.String(), "args", len(in), "err", err)
		return Value{}, bridgeErrorf(op.String(), err)
	}

	return v, nil
}

// CallName resolves name with ParseOp and executes it.
func (e *Engine) CallName(name string, in ...any) (Value, error) {
	op, err := ParseOp(name)
	if err != nil {
		return Value{}, err
	}

	return e.Call(op, in...)
}

// creation returns the ndarray options every creation call carries.
func (e *Engine) creation() []ndarray.Option {
	opts := []ndarray.Option{ndarray.WithTracker(e.tracker)}
	if e.src != nil {
		opts = append(opts, ndarray.WithSource(e.src))
	}

	return opts
}
