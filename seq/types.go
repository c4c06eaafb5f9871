// SPDX-License-Identifier: MIT

// Package seq: generator kinds, element constraints, and functional
// configuration for Sequence construction.

package seq

import "go.uber.org/zap"

// GenFunc is a pure, random-access generator: it produces the value at
// any index independently of every other index. The engine may invoke
// it for indices in any order, but at most once per index (I1).
//
// A returned error propagates unchanged to the caller of At/Range and
// is not memoized; the index stays uncomputed and may be retried.
type GenFunc[T any] func(index int) (T, error)

// RecurrenceFunc computes the value at index from the fully resolved
// prefix prev, where prev[j] is the memoized value at index j for every
// j < index. The engine guarantees len(prev) == index on every call
// (I3) and never invokes the rule twice for the same index (I1).
//
// The rule must read prev instead of calling back into its own
// Sequence; re-entering the owning Sequence deadlocks on its mutex.
type RecurrenceFunc[T any] func(prev []T, index int) (T, error)

// Number constrains sequence elements usable with the arithmetic
// combinators and partial folds (combine.Add, combine.Convolve, …).
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Pair is the element type produced by zip and enumerate combinators.
type Pair[A, B any] struct {
	// First is the element drawn from the first (or index) source.
	First A

	// Second is the element drawn from the second source.
	Second B
}

// Internal panic messages for programmer errors (no magic strings).
const (
	panicNilGenerator  = "seq: New: generator must be non-nil"
	panicNilRecurrence = "seq: NewRecurrence: recurrence must be non-nil"
	panicNilLogger     = "seq: WithLogger: logger must be non-nil"
)

// Option configures a Sequence at construction time. Safe to apply
// repeatedly; last-writer-wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option
// setters. Fields are unexported; public constructors accept ...Option
// and resolve them via gatherOptions.
type Options struct {
	logger *zap.Logger // cache instrumentation; nop by default
}

// WithLogger attaches a zap logger to the sequence's cache. Every
// first-time fill is logged at Debug level with the sequence identity
// and index. The default is zap.NewNop(), so instrumentation costs
// nothing unless requested.
//
// Panics with a stable message when logger is nil (programmer error).
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies user-provided setters on top of defaults.
// Canonical internal entry point; constructors never default ad hoc.
func gatherOptions(user ...Option) Options {
	o := Options{
		logger: zap.NewNop(),
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
