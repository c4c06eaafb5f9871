// Package infseq is your in-memory playground for building, composing,
// and sampling infinite sequences — progressions, recurrences and
// convolutions expressed as lazy, memoized values instead of loops.
//
// 🚀 What is infseq?
//
//	A small, thread-safe library that brings together:
//		• Core engine: lazy evaluation + at-most-once memoization per index
//		• Generators: pure random-access functions and forward recurrences
//		• Slicing: bounded lazy ranges (forward & reverse) and open-ended re-indexing
//		• Combinators: elementwise arithmetic, scalar broadcast, zip, enumerate,
//		  accumulate (running reduction), convolution, partial folds
//		• Canonical sequences: constant, arithmetic & geometric progressions,
//		  cycles, Fibonacci, literal-values-then-extrapolation
//
// ✨ Why choose infseq?
//
//   - Compute-once guarantee – every index is evaluated at most once,
//     even under concurrent access
//   - Shared parents – derived sequences reuse their parents' caches,
//     so siblings never recompute common prefixes
//   - Explicit laziness – nothing is evaluated before first use;
//     only bounded ranges ever materialize
//
// Under the hood, everything is organized under four subpackages:
//
//	seq/         — Sequence, generator kinds, memoizing cache, slicing, prepend
//	combine/     — derived-sequence algebra (Add, Mul, Zip, Accumulate, Convolve…)
//	progression/ — canonical constructors (Constant, Arithmetic, Geometric, Cycle, Fibonacci…)
//	render/      — truncated human-readable previews of a sequence's head
//
// Quick taste:
//
//	fib := progression.Fibonacci[int]()
//	v, _ := fib.At(10) // 55, computed once, cached forever
//
// Dive into the per-package docs for the full contract: invariants,
// error sentinels, and complexity notes.
//
//	go get github.com/katalvlaran/infseq
package infseq
