package progression

import "errors"

var (
	// ErrEmptyCycle indicates Cycle was called with no items; an empty
	// cycle has no value at any index.
	ErrEmptyCycle = errors.New("progression: cycle needs at least one item")

	// ErrNeedTwoValues indicates FromValues was given fewer than two
	// seed values; extrapolation needs two values to fix a step.
	ErrNeedTwoValues = errors.New("progression: extrapolation needs at least two values")
)
