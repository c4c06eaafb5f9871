// SPDX-License-Identifier: MIT

// Package combine: finite folds over a bounded index range.
//
// Folds read through the parent's cache: already-computed indices are
// served in O(1), so each call costs O(range length) reads, never
// recomputation.

package combine

import "github.com/katalvlaran/infseq/seq"

// PartialSum returns s[start] + s[start+1] + … + s[stop-1]. An empty
// range (stop <= start) sums to zero.
//
// Errors:
//   - seq.ErrNegativeIndex — start < 0 or stop < 0.
//   - any generator error, propagated unchanged.
func PartialSum[T seq.Number](s *seq.Sequence[T], start, stop int) (T, error) {
	var sum, zero T
	if start < 0 || stop < 0 {
		return zero, seq.ErrNegativeIndex
	}

	for i := start; i < stop; i++ {
		v, err := s.At(i)
		if err != nil {
			return zero, err
		}
		sum += v
	}

	return sum, nil
}

// PartialProduct returns s[start] * s[start+1] * … * s[stop-1].
//
// Errors:
//   - seq.ErrNegativeIndex — start < 0 or stop < 0.
//   - ErrEmptyRange — stop <= start; a product of nothing has no seed.
//   - any generator error, propagated unchanged.
func PartialProduct[T seq.Number](s *seq.Sequence[T], start, stop int) (T, error) {
	return PartialReduce(s, start, stop, func(x, y T) (T, error) { return x * y, nil })
}

// PartialReduce folds s[start..stop) through op, seeding with
// s[start]: op(…op(op(s[start], s[start+1]), s[start+2])…, s[stop-1]).
//
// Errors:
//   - seq.ErrNegativeIndex — start < 0 or stop < 0.
//   - ErrEmptyRange — stop <= start.
//   - any error from op or the generator, propagated unchanged.
//
// Panics with a stable message when op is nil (programmer error).
func PartialReduce[T any](s *seq.Sequence[T], start, stop int, op func(T, T) (T, error)) (T, error) {
	if op == nil {
		panic(panicNilOp)
	}

	var zero T
	if start < 0 || stop < 0 {
		return zero, seq.ErrNegativeIndex
	}
	if stop <= start {
		return zero, ErrEmptyRange
	}

	acc, err := s.At(start)
	if err != nil {
		return zero, err
	}
	for i := start + 1; i < stop; i++ {
		v, err := s.At(i)
		if err != nil {
			return zero, err
		}
		if acc, err = op(acc, v); err != nil {
			return zero, err
		}
	}

	return acc, nil
}
