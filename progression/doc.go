// Package progression provides the canonical ready-made sequences:
// constants, arithmetic and geometric progressions, cyclic repetition,
// the Fibonacci recurrence, and literal-values-then-extrapolation
// construction.
//
// Constructors that cannot fail return *seq.Sequence directly;
// constructors with a validation rule (Cycle, FromValues) return an
// error sentinel matchable with errors.Is.
//
// Closed-form rules (Constant, Arithmetic, Cycle, FromValues) are
// random-access generators: any index can be computed directly and is
// cached sparsely. Recurrence rules (Geometric, Fibonacci) fill their
// caches forward from seed values, one index at a time.
//
// Errors:
//
//	ErrEmptyCycle    - Cycle called with no items.
//	ErrNeedTwoValues - FromValues needs at least two seed values.
package progression
