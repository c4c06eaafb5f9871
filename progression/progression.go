// SPDX-License-Identifier: MIT

// Package progression: canonical sequence constructors.

package progression

import "github.com/katalvlaran/infseq/seq"

// Constant returns the sequence v, v, v, … for all indices.
func Constant[T any](v T) *seq.Sequence[T] {
	return seq.New(func(int) (T, error) { return v, nil })
}

// Arithmetic returns the progression start, start+step, start+2·step, …
// via the closed form index i ↦ start + i·step (random access, no
// forward fill required).
func Arithmetic[T seq.Number](start, step T) *seq.Sequence[T] {
	return seq.New(func(i int) (T, error) {
		return start + T(i)*step, nil
	})
}

// GeometricOption configures a geometric progression.
type GeometricOption[T seq.Number] func(*geometricConfig[T])

type geometricConfig[T seq.Number] struct {
	start T
}

// WithStartValue overrides the progression's first value (default 1).
func WithStartValue[T seq.Number](v T) GeometricOption[T] {
	return func(c *geometricConfig[T]) { c.start = v }
}

// Geometric returns the recurrence g(0) = start (default 1),
// g(i) = g(i-1) · ratio. Being recurrence-backed, indexing g at n
// fills and stores every value up to n, so g[n] == start · ratio**n
// is reachable only through its predecessors.
func Geometric[T seq.Number](ratio T, opts ...GeometricOption[T]) *seq.Sequence[T] {
	cfg := geometricConfig[T]{start: 1}
	for _, set := range opts {
		set(&cfg)
	}

	return seq.NewRecurrence(func(prev []T, i int) (T, error) {
		return prev[i-1] * ratio, nil
	}, []T{cfg.start})
}

// Cycle returns the infinite repetition of items:
// index i ↦ items[i mod len(items)]. The item slice is copied.
//
// Errors:
//   - ErrEmptyCycle — len(items) == 0.
func Cycle[T any](items ...T) (*seq.Sequence[T], error) {
	if len(items) == 0 {
		return nil, ErrEmptyCycle
	}
	own := make([]T, len(items))
	copy(own, items)

	return seq.New(func(i int) (T, error) {
		return own[i%len(own)], nil
	}), nil
}

// Fibonacci returns the sequence f(0)=0, f(1)=1, f(i)=f(i-1)+f(i-2).
// The recurrence reads its own memoized prefix, so f(n) is computed in
// O(n) rule invocations total, without recursion.
func Fibonacci[T seq.Number]() *seq.Sequence[T] {
	return seq.NewRecurrence(func(prev []T, i int) (T, error) {
		return prev[i-1] + prev[i-2], nil
	}, []T{0, 1})
}

// FromValues builds a sequence from explicit literal values with
// arithmetic extrapolation: indices 0..len(values)-1 return the
// literals verbatim; beyond them, the last two values fix the step and
// the progression continues. FromValues(1, 2, 3) is 1, 2, 3, 4, 5, …;
// FromValues(5, 5) is the constant 5.
//
// Errors:
//   - ErrNeedTwoValues — fewer than two values; a single value fixes
//     no step, and guessing one is not supported.
func FromValues[T seq.Number](values ...T) (*seq.Sequence[T], error) {
	if len(values) < 2 {
		return nil, ErrNeedTwoValues
	}
	own := make([]T, len(values))
	copy(own, values)

	k := len(own)
	last := own[k-1]
	step := last - own[k-2]

	return seq.New(func(i int) (T, error) {
		if i < k {
			return own[i], nil
		}

		return last + T(i-k+1)*step, nil
	}), nil
}
