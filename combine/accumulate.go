// SPDX-License-Identifier: MIT

// Package combine: running reductions (accumulate).

package combine

import "github.com/katalvlaran/infseq/seq"

// Accumulate returns the running reduction of s under op:
//
//	result[0] = s[0]
//	result[i] = op(result[i-1], s[i])
//
// The result is recurrence-backed: its cache fills forward and stores
// every intermediate value, so result[n] costs n rule invocations the
// first time and O(1) afterwards. The parent is a shared pointer; its
// own cache absorbs the s[i] reads.
//
// Panics with a stable message when op is nil (programmer error).
func Accumulate[T any](s *seq.Sequence[T], op func(T, T) (T, error)) *seq.Sequence[T] {
	if op == nil {
		panic(panicNilOp)
	}

	return seq.NewRecurrence(func(prev []T, i int) (T, error) {
		v, err := s.At(i)
		if err != nil {
			var zero T

			return zero, err
		}
		if i == 0 {
			return v, nil
		}

		return op(prev[i-1], v)
	}, nil)
}

// AccumulateSum returns the running sums of s: the sequence of partial
// sums s[0], s[0]+s[1], s[0]+s[1]+s[2], …
func AccumulateSum[T seq.Number](s *seq.Sequence[T]) *seq.Sequence[T] {
	return Accumulate(s, func(x, y T) (T, error) { return x + y, nil })
}

// AccumulateProduct returns the running products of s. Applied to the
// natural numbers it yields the factorials.
func AccumulateProduct[T seq.Number](s *seq.Sequence[T]) *seq.Sequence[T] {
	return Accumulate(s, func(x, y T) (T, error) { return x * y, nil })
}
