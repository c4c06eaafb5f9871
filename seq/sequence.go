// SPDX-License-Identifier: MIT

// Package seq: the Sequence type — one generator bound to one owned
// memoizing store, plus the index/prepend/preview operations.

package seq

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Sequence is a lazy, memoized, infinite sequence of T. It is created
// with exactly one generator and owns exactly one cache; values are
// computed on first access and never recomputed (I1) or changed (I2).
//
// Derived sequences (combinators, slices, prepends) hold shared
// pointers to their parents: siblings derived from the same parent
// reuse the parent's cache, so common prefixes are computed once
// globally, not once per derivation.
//
// The zero value is not usable; construct with New or NewRecurrence.
type Sequence[T any] struct {
	id    uuid.UUID
	store memoStore[T]
}

// New returns a Sequence backed by the pure random-access generator
// fn. Values are cached sparsely: only the requested indices are ever
// computed.
//
// Panics with a stable message when fn is nil (programmer error).
func New[T any](fn GenFunc[T], opts ...Option) *Sequence[T] {
	if fn == nil {
		panic(panicNilGenerator)
	}
	o := gatherOptions(opts...)

	id := uuid.New()

	return &Sequence[T]{
		id:    id,
		store: newRandomCache(fn, o.logger.With(zap.String("sequence", id.String()))),
	}
}

// NewRecurrence returns a Sequence backed by the recurrence rule fn
// with the given seed values occupying indices 0..len(seeds)-1. The
// rule is first invoked for index len(seeds); the cache fills forward
// from there and never skips an index (I3).
//
// seeds may be empty when fn itself handles the base indices from an
// empty prefix. The seed slice is copied; the caller keeps ownership
// of its argument.
//
// Panics with a stable message when fn is nil (programmer error).
func NewRecurrence[T any](fn RecurrenceFunc[T], seeds []T, opts ...Option) *Sequence[T] {
	if fn == nil {
		panic(panicNilRecurrence)
	}
	o := gatherOptions(opts...)

	id := uuid.New()

	return &Sequence[T]{
		id:    id,
		store: newRecurrenceCache(fn, seeds, o.logger.With(zap.String("sequence", id.String()))),
	}
}

// ID returns the sequence's identity, assigned at construction. Two
// sequences are the same computation (and share a cache) exactly when
// their IDs are equal.
func (s *Sequence[T]) ID() uuid.UUID { return s.id }

// At returns the value at index i, computing it on first access.
//
// Errors:
//   - ErrNegativeIndex — i < 0.
//   - any error returned by the generator, propagated unchanged and
//     not memoized (the index stays retryable).
//
// Complexity: O(1) for a cached index; for a recurrence, an uncached
// index costs one rule invocation per unfilled index up to i.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 {
		var zero T

		return zero, ErrNegativeIndex
	}

	return s.store.at(i)
}

// Cached reports how many values are currently memoized. For a
// recurrence-backed sequence this is the contiguous frontier; for a
// random-access sequence it is the number of distinct indices served.
func (s *Sequence[T]) Cached() int { return s.store.size() }

// Prepend returns a new Sequence whose indices 0..len(values)-1 are
// the given literals and whose index i >= len(values) delegates to the
// receiver at i-len(values). The receiver is never mutated; it is
// captured as a shared parent.
func (s *Sequence[T]) Prepend(values ...T) *Sequence[T] {
	head := make([]T, len(values))
	copy(head, values)

	return New(func(i int) (T, error) {
		if i < len(head) {
			return head[i], nil
		}

		return s.At(i - len(head))
	})
}

// Preview returns the first n values as a materialized slice, intended
// for display collaborators. n <= 0 yields an empty slice. Repeat
// calls serve entirely from the cache: the generator invocation count
// never exceeds n (I1).
func (s *Sequence[T]) Preview(n int) ([]T, error) {
	if n <= 0 {
		return []T{}, nil
	}

	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := s.At(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}
