// SPDX-License-Identifier: MIT

// Package combine: convolution (matrix-style composition).

package combine

import "github.com/katalvlaran/infseq/seq"

// Convolve returns the convolution of a and b:
//
//	result[n] = Σ_{k=0..n} a[k] * b[n-k]
//
// The sum is computed directly from the formula when index n is first
// requested; both parents memoize their own values, so an uncached
// result[n] costs O(n) cached reads plus at most O(n) fresh parent
// computations, and a cached result[n] costs O(1).
func Convolve[T seq.Number](a, b *seq.Sequence[T]) *seq.Sequence[T] {
	return seq.New(func(n int) (T, error) {
		var sum, zero T
		for k := 0; k <= n; k++ {
			va, err := a.At(k)
			if err != nil {
				return zero, err
			}
			vb, err := b.At(n - k)
			if err != nil {
				return zero, err
			}
			sum += va * vb
		}

		return sum, nil
	})
}
