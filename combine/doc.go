// Package combine builds derived sequences from existing ones:
// elementwise and scalar arithmetic, function application, zipping,
// enumeration, running reduction (accumulate), convolution, and finite
// partial folds.
//
// Every combinator returns a fresh *seq.Sequence whose generator holds
// shared pointers to one or two parent sequences — parents are never
// copied, so siblings derived from the same parent reuse its cache.
// Each derived sequence also memoizes its own values: requesting a
// derived index twice performs the combining work once.
//
// Combinators are free functions rather than methods because Go
// methods cannot introduce type parameters (Apply and Zip change the
// element type). Arithmetic combinators are constrained to seq.Number;
// incompatible element types are rejected at compile time, which
// replaces the runtime type-mismatch errors of dynamically typed
// renditions of this algebra. Caller-supplied operators on arbitrary
// element types report incompatible operands by returning
// ErrTypeMismatch, which the engine propagates unchanged.
//
// Errors:
//
//	ErrTypeMismatch     - operands incompatible under a caller-supplied op.
//	ErrNegativeExponent - integer Pow with a negative exponent.
//	ErrDivisionByZero   - Div/DivScalar met a zero divisor.
//	ErrEmptyRange       - partial product/reduce over an empty range.
package combine
