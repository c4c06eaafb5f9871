// SPDX-License-Identifier: MIT

// Package combine: elementwise and scalar arithmetic over sequences.

package combine

import (
	"math"

	"github.com/katalvlaran/infseq/seq"
)

// Internal panic messages for programmer errors (no magic strings).
const (
	panicNilOp   = "combine: operator must be non-nil"
	panicNilFunc = "combine: function must be non-nil"
)

// Elementwise returns the sequence with result[i] = op(a[i], b[i]).
// Both parents are captured by shared pointer. Any error from op (or
// from either parent) propagates unchanged and is not memoized.
//
// Panics with a stable message when op is nil (programmer error).
func Elementwise[T any](a, b *seq.Sequence[T], op func(T, T) (T, error)) *seq.Sequence[T] {
	if op == nil {
		panic(panicNilOp)
	}

	return seq.New(func(i int) (T, error) {
		var zero T
		va, err := a.At(i)
		if err != nil {
			return zero, err
		}
		vb, err := b.At(i)
		if err != nil {
			return zero, err
		}

		return op(va, vb)
	})
}

// Scalar returns the sequence with result[i] = op(s[i], k): the scalar
// k is broadcast across every element of the parent.
//
// Panics with a stable message when op is nil (programmer error).
func Scalar[T any](s *seq.Sequence[T], k T, op func(T, T) (T, error)) *seq.Sequence[T] {
	if op == nil {
		panic(panicNilOp)
	}

	return seq.New(func(i int) (T, error) {
		v, err := s.At(i)
		if err != nil {
			var zero T

			return zero, err
		}

		return op(v, k)
	})
}

// Add returns the elementwise sum a[i] + b[i].
func Add[T seq.Number](a, b *seq.Sequence[T]) *seq.Sequence[T] {
	return Elementwise(a, b, func(x, y T) (T, error) { return x + y, nil })
}

// Sub returns the elementwise difference a[i] - b[i].
func Sub[T seq.Number](a, b *seq.Sequence[T]) *seq.Sequence[T] {
	return Elementwise(a, b, func(x, y T) (T, error) { return x - y, nil })
}

// Mul returns the elementwise product a[i] * b[i].
func Mul[T seq.Number](a, b *seq.Sequence[T]) *seq.Sequence[T] {
	return Elementwise(a, b, func(x, y T) (T, error) { return x * y, nil })
}

// Div returns the elementwise quotient a[i] / b[i]: true division for
// floating-point element types, truncated division for integer types.
// A zero divisor yields ErrDivisionByZero for every element type —
// the failure is reported, never an IEEE infinity.
func Div[T seq.Number](a, b *seq.Sequence[T]) *seq.Sequence[T] {
	return Elementwise(a, b, divValue[T])
}

// Pow returns the elementwise power a[i] ** b[i]. Floating-point
// element types use math.Pow; integer types use iterated
// multiplication and reject negative exponents with
// ErrNegativeExponent.
func Pow[T seq.Number](a, b *seq.Sequence[T]) *seq.Sequence[T] {
	return Elementwise(a, b, powValue[T])
}

// AddScalar returns the sequence s[i] + k.
func AddScalar[T seq.Number](s *seq.Sequence[T], k T) *seq.Sequence[T] {
	return Scalar(s, k, func(x, y T) (T, error) { return x + y, nil })
}

// SubScalar returns the sequence s[i] - k.
func SubScalar[T seq.Number](s *seq.Sequence[T], k T) *seq.Sequence[T] {
	return Scalar(s, k, func(x, y T) (T, error) { return x - y, nil })
}

// MulScalar returns the sequence s[i] * k.
func MulScalar[T seq.Number](s *seq.Sequence[T], k T) *seq.Sequence[T] {
	return Scalar(s, k, func(x, y T) (T, error) { return x * y, nil })
}

// DivScalar returns the sequence s[i] / k, with the same zero-divisor
// and integer-truncation rules as Div.
func DivScalar[T seq.Number](s *seq.Sequence[T], k T) *seq.Sequence[T] {
	return Scalar(s, k, divValue[T])
}

// PowScalar returns the sequence s[i] ** k, with the same integer
// exponent rules as Pow.
func PowScalar[T seq.Number](s *seq.Sequence[T], k T) *seq.Sequence[T] {
	return Scalar(s, k, powValue[T])
}

// divValue computes x / y for any Number element type, rejecting a
// zero divisor up front so integer division cannot panic.
func divValue[T seq.Number](x, y T) (T, error) {
	if y == 0 {
		var zero T

		return zero, ErrDivisionByZero
	}

	return x / y, nil
}

// powValue computes base ** exp for any Number element type.
func powValue[T seq.Number](base, exp T) (T, error) {
	if isFloat[T]() {
		return T(math.Pow(float64(base), float64(exp))), nil
	}
	if exp < 0 {
		var zero T

		return zero, ErrNegativeExponent
	}

	result := T(1)
	for n := int64(exp); n > 0; n-- {
		result *= base
	}

	return result, nil
}

// isFloat reports whether T has a floating-point underlying type.
// Integer division truncates 1/2 to 0; float division does not.
func isFloat[T seq.Number]() bool {
	return T(1)/T(2) != 0
}
