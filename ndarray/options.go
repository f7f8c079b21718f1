// SPDX-License-Identifier: MIT

// Package ndarray: functional configuration for creation operations.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper that resolves the effective configuration.
//
// Design goals:
//   - No global state: every creation call carries its own tracker and source.
//   - Safe by construction: panic only on programmer errors (nil tracker/source).
//   - Deterministic when asked: WithSeed makes Random/Randn reproducible.
package ndarray

import (
	"time"

	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvnd/alloc"
)

// Numeric policy defaults.
const (
	// DefaultRTol is the relative tolerance used by AllClose/IsClose callers that
	// have no better value (matches the NumPy default).
	DefaultRTol = 1e-5

	// DefaultATol is the absolute tolerance companion of DefaultRTol.
	DefaultATol = 1e-8

	// ElementBytes is the accounted size of one float64 element.
	ElementBytes = 8

	// MaxElements caps the element count of any buffer the package allocates
	// (2^48 bytes, the Go runtime's allocation ceiling on 64-bit platforms).
	MaxElements int64 = 1 << 45
)

const (
	panicNilTracker = "ndarray: WithTracker: tracker must not be nil"
	panicNilSource  = "ndarray: WithSource: source must not be nil"
)

// Option mutates creation options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective creation configuration.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tracker alloc.Tracker // consulted before every creation allocation
	src     rand.Source   // random source for Random/Randn; nil ⇒ time-seeded
}

// WithTracker injects the allocation-accounting hook.
// Panics on nil (programmer error); pass alloc.Unlimited to disable accounting.
func WithTracker(t alloc.Tracker) Option {
	if t == nil {
		panic(panicNilTracker)
	}

	return func(o *Options) { o.tracker = t }
}

// WithSeed makes Random/Randn deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return func(o *Options) { o.src = rand.NewSource(seed) }
}

// WithSource uses src for Random/Randn. The source is advanced by the call.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic(panicNilSource)
	}

	return func(o *Options) { o.src = src }
}

// gatherOptions resolves opts over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{tracker: alloc.Unlimited}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// source returns the configured random source, seeding one from the clock when absent.
func (o Options) source() rand.Source {
	if o.src != nil {
		return o.src
	}

	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// reserve asks the tracker for n elements worth of bytes.
func (o Options) reserve(tag string, n int) error {
	bytes := int64(n) * ElementBytes
	if !o.tracker.TryReserve(bytes) {
		return allocErrorf(tag, bytes)
	}

	return nil
}
