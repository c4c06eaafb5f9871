package seq

import "errors"

// Sentinel errors for core sequence operations. Callers match them with
// errors.Is; none of the public entry points panic on user input.
var (
	// ErrNegativeIndex indicates an index or range bound below zero
	// (below -1 for the exclusive stop of a reverse range).
	ErrNegativeIndex = errors.New("seq: index must be non-negative")

	// ErrZeroStep indicates a slice step of zero, which never advances.
	ErrZeroStep = errors.New("seq: step must be non-zero")

	// ErrReverseUnbounded indicates a negative step on an open-ended
	// slice; reversing an unbounded range is undefined.
	ErrReverseUnbounded = errors.New("seq: cannot reverse an unbounded range")

	// ErrReverseBounds indicates a reverse slice whose bounds run
	// forward: a negative step requires start >= stop.
	ErrReverseBounds = errors.New("seq: reverse slice requires start >= stop")
)
