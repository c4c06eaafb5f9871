// SPDX-License-Identifier: MIT

// Package seq: memoizing stores behind the Sequence type.
//
// Two store shapes exist, one per generator kind:
//   - randomCache  — sparse map storage for pure random-access generators.
//   - recurrenceCache — contiguous slice storage with forward fill for
//     recurrence generators (I3: never skip an index).
//
// Both guard the miss → compute → store section with a mutex so the
// at-most-once invariant (I1) holds under concurrent callers. Generator
// failures are returned without being stored: a retry re-attempts.

package seq

import (
	"sync"

	"go.uber.org/zap"
)

// memoStore is the internal contract shared by both cache shapes.
type memoStore[T any] interface {
	// at returns the memoized value for index i, computing and storing
	// it on first access. i is validated by the caller (i >= 0).
	at(i int) (T, error)

	// size reports how many values are currently memoized.
	size() int
}

// randomCache memoizes a pure random-access generator. Storage is
// sparse: requesting index 1000 first stores exactly one value.
type randomCache[T any] struct {
	mu     sync.Mutex
	gen    GenFunc[T]
	values map[int]T
	log    *zap.Logger
}

func newRandomCache[T any](gen GenFunc[T], log *zap.Logger) *randomCache[T] {
	return &randomCache[T]{
		gen:    gen,
		values: make(map[int]T),
		log:    log,
	}
}

// at serves index i from the map, invoking the generator on first
// access only. The mutex spans compute + store, so two goroutines
// racing on the same uncached index cannot both invoke the generator.
func (c *randomCache[T]) at(i int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.values[i]; ok {
		return v, nil
	}

	v, err := c.gen(i)
	if err != nil {
		// Failures are not memoized; the index stays uncomputed.
		var zero T

		return zero, err
	}
	c.values[i] = v
	c.log.Debug("seq: memoized", zap.Int("index", i))

	return v, nil
}

func (c *randomCache[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.values)
}

// recurrenceCache memoizes a recurrence generator. Storage is
// contiguous: values[j] is the value at index j for every j < len.
// A request beyond the frontier fills forward one index at a time,
// storing every intermediate value (I3).
type recurrenceCache[T any] struct {
	mu     sync.Mutex
	rec    RecurrenceFunc[T]
	values []T // contiguous prefix; seeds occupy the head
	log    *zap.Logger
}

func newRecurrenceCache[T any](rec RecurrenceFunc[T], seeds []T, log *zap.Logger) *recurrenceCache[T] {
	// Seeds are copied: the cache owns its storage exclusively (I2).
	values := make([]T, len(seeds))
	copy(values, seeds)

	return &recurrenceCache[T]{
		rec:    rec,
		values: values,
		log:    log,
	}
}

// at serves index i, advancing the frontier up to i if needed. The
// recurrence receives the resolved prefix with a capped capacity so it
// cannot grow the cache's backing array through append.
func (c *recurrenceCache[T]) at(i int) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i < len(c.values) {
		return c.values[i], nil
	}

	for next := len(c.values); next <= i; next++ {
		v, err := c.rec(c.values[:next:next], next)
		if err != nil {
			// Prefix stored so far stays valid; the failing index and
			// everything beyond remain uncomputed and retryable.
			var zero T

			return zero, err
		}
		c.values = append(c.values, v)
		c.log.Debug("seq: memoized", zap.Int("index", next))
	}

	return c.values[i], nil
}

func (c *recurrenceCache[T]) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.values)
}
