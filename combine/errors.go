package combine

import "errors"

var (
	// ErrTypeMismatch is the documented sentinel a caller-supplied
	// operator returns when its operands are incompatible. The engine
	// propagates it unchanged and never swallows it.
	ErrTypeMismatch = errors.New("combine: incompatible operand types")

	// ErrNegativeExponent indicates Pow over an integer element type
	// with a negative exponent, which has no integer result.
	ErrNegativeExponent = errors.New("combine: negative exponent on integer sequence")

	// ErrDivisionByZero indicates Div or DivScalar met a zero divisor.
	ErrDivisionByZero = errors.New("combine: division by zero")

	// ErrEmptyRange indicates a partial product or reduce over an
	// empty range; a fold of nothing has no seed to return.
	ErrEmptyRange = errors.New("combine: fold over empty range")
)
