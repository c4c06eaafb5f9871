// Package seq implements the core engine for lazy, memoized, infinite
// sequences: the generator abstraction, the memoizing cache, and the
// Sequence type with its indexing, slicing, prepend and preview operations.
//
// A Sequence binds exactly one generator to exactly one owned cache.
// Two generator kinds exist:
//
//   - GenFunc — a pure function from index to value. Any index may be
//     requested in any order; the cache stores values sparsely.
//   - RecurrenceFunc — a rule that computes index i from the already
//     resolved prefix [0, i). The cache stores values contiguously and
//     fills forward, never skipping an index.
//
// Invariants (enforced by the cache, relied upon by every combinator):
//
//	I1 (at-most-once) — the generator is invoked at most once per index
//	    over the sequence's lifetime; repeat reads hit the cache.
//	I2 (determinism)  — a cached value never changes after it is stored.
//	I3 (sequential)   — a recurrence at index i only runs after indices
//	    0..i-1 are resolved; intermediate values are always stored.
//
// Generator failures propagate to the caller and are never memoized:
// a later retry of the same index is allowed to re-attempt.
//
// The cache grows monotonically and is never evicted. Unbounded growth
// is the documented resource cost of infinite memoization, not a leak.
//
// All operations are safe for concurrent use: a per-sequence mutex
// guards the miss → compute → store critical section, so I1 holds even
// when multiple goroutines race on the same uncached index.
//
// Errors:
//
//	ErrNegativeIndex    - index or range bound below the valid domain.
//	ErrZeroStep         - slice step of zero.
//	ErrReverseUnbounded - negative step on an open-ended slice.
//	ErrReverseBounds    - reverse slice whose bounds run forward.
package seq
