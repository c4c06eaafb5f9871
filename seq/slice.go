// SPDX-License-Identifier: MIT

// Package seq: the slicing protocol.
//
// Bounded slices (Range) are finite, lazily pulled views realized by
// repeated indexing into the parent; they are not Sequences. Open-ended
// slices (From) re-index the parent into a new infinite Sequence.
// Reversal is only defined for bounded ranges.

package seq

// Range is a finite, lazily produced view over a parent Sequence:
// the values at start, start+step, … bounded by stop (exclusive).
// Values are pulled one at a time with Next; nothing is materialized
// eagerly. A Range is single-use and not safe for concurrent pulls.
//
// For a negative step the view emits in reverse index order. The
// parent still resolves indices forward (recurrences only run
// forward), so the first pull of a reverse range may fill the parent's
// cache up to the range's highest index before yielding.
type Range[T any] struct {
	src  *Sequence[T]
	next int // next parent index to emit
	stop int // exclusive bound, in step direction
	step int
}

// Range returns a bounded lazy view over [start, stop) with the given
// step. step > 0 walks forward while index < stop; step < 0 walks
// backward while index > stop (pass stop = -1 to include index 0).
// A forward range with start >= stop is valid and empty; a reverse
// range requires start >= stop.
//
// Errors:
//   - ErrZeroStep — step == 0.
//   - ErrNegativeIndex — start < 0, or stop < 0 with a positive step,
//     or stop < -1 with a negative step.
//   - ErrReverseBounds — step < 0 with start < stop.
func (s *Sequence[T]) Range(start, stop, step int) (*Range[T], error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	if start < 0 {
		return nil, ErrNegativeIndex
	}
	if step > 0 && stop < 0 {
		return nil, ErrNegativeIndex
	}
	if step < 0 {
		// Reverse ranges stop exclusively, so -1 is the legal floor.
		if stop < -1 {
			return nil, ErrNegativeIndex
		}
		if start < stop {
			return nil, ErrReverseBounds
		}
	}

	return &Range[T]{src: s, next: start, stop: stop, step: step}, nil
}

// Next pulls the next value. ok is false once the range is exhausted.
// On a generator failure the error is returned and the range stays
// positioned at the failing index, so the pull may be retried.
func (r *Range[T]) Next() (v T, ok bool, err error) {
	if r.step > 0 && r.next >= r.stop {
		return v, false, nil
	}
	if r.step < 0 && r.next <= r.stop {
		return v, false, nil
	}

	v, err = r.src.At(r.next)
	if err != nil {
		var zero T

		return zero, false, err
	}
	r.next += r.step

	return v, true, nil
}

// Collect drains the remaining values into a slice. The result is
// empty (never nil) for an exhausted or empty range.
func (r *Range[T]) Collect() ([]T, error) {
	out := make([]T, 0, r.Len())
	for {
		v, ok, err := r.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// Len reports how many values remain to be pulled.
func (r *Range[T]) Len() int {
	span := r.stop - r.next
	if r.step > 0 {
		if span <= 0 {
			return 0
		}

		return (span + r.step - 1) / r.step
	}
	if span >= 0 {
		return 0
	}

	// Both span and step are negative; the division is exact-ceiling.
	return (span + r.step + 1) / r.step
}

// From returns a new infinite Sequence re-indexed over the receiver:
// result[j] == parent[start + j*step]. This is the open-ended slice —
// no values are computed up front, and the parent's cache is shared.
//
// Errors:
//   - ErrNegativeIndex — start < 0.
//   - ErrZeroStep — step == 0.
//   - ErrReverseUnbounded — step < 0; an unbounded range cannot be
//     reversed.
func (s *Sequence[T]) From(start, step int) (*Sequence[T], error) {
	if start < 0 {
		return nil, ErrNegativeIndex
	}
	if step == 0 {
		return nil, ErrZeroStep
	}
	if step < 0 {
		return nil, ErrReverseUnbounded
	}

	return New(func(j int) (T, error) {
		return s.At(start + j*step)
	}), nil
}
