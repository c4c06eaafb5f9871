// SPDX-License-Identifier: MIT

// Package combine: function application, zipping and enumeration.

package combine

import "github.com/katalvlaran/infseq/seq"

// Apply returns the sequence with result[i] = f(s[i]). The element
// type may change: Apply is how a caller lifts an arbitrary
// transformation (including into non-numeric types) over a sequence.
// Errors from f propagate unchanged and are not memoized.
//
// Panics with a stable message when f is nil (programmer error).
func Apply[T, U any](s *seq.Sequence[T], f func(T) (U, error)) *seq.Sequence[U] {
	if f == nil {
		panic(panicNilFunc)
	}

	return seq.New(func(i int) (U, error) {
		v, err := s.At(i)
		if err != nil {
			var zero U

			return zero, err
		}

		return f(v)
	})
}

// Zip returns the sequence of pairs result[i] = (a[i], b[i]).
func Zip[A, B any](a *seq.Sequence[A], b *seq.Sequence[B]) *seq.Sequence[seq.Pair[A, B]] {
	return seq.New(func(i int) (seq.Pair[A, B], error) {
		var zero seq.Pair[A, B]
		va, err := a.At(i)
		if err != nil {
			return zero, err
		}
		vb, err := b.At(i)
		if err != nil {
			return zero, err
		}

		return seq.Pair[A, B]{First: va, Second: vb}, nil
	})
}

// Enumerate returns the sequence of pairs result[i] = (start+i, s[i]),
// attaching a running counter to every element.
func Enumerate[T any](s *seq.Sequence[T], start int) *seq.Sequence[seq.Pair[int, T]] {
	return seq.New(func(i int) (seq.Pair[int, T], error) {
		v, err := s.At(i)
		if err != nil {
			var zero seq.Pair[int, T]

			return zero, err
		}

		return seq.Pair[int, T]{First: start + i, Second: v}, nil
	})
}
