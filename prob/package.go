// Package prob computes exact discrete probability distributions over
// integer outcomes, with the operations needed to model dice: summing
// distributions, scaled sums and differences, conditioning on
// inequalities, n-fold repetition, and keeping the best or worst k of
// n identical rolls.
package prob

import "errors"

// Distributions are stored over a contiguous window of integers. The
// window may not exceed maxSlots entries; repeated-roll operations
// additionally may not require a factorial beyond maxFactorialN.
const (
	maxSlots      = 1000000
	maxDieSides   = 100000
	maxFactorialN = 170

	// sumTolerance bounds |Σ probs − 1| for user-supplied data.
	sumTolerance = 1e-8
)

var (
	ErrBadSlots          = errors.New("probability window must cover between 1 and 1000000 integers")
	ErrBadProbability    = errors.New("probability out of range [0.0,1.0]")
	ErrBadSum            = errors.New("probabilities do not sum to 1.0")
	ErrBadArgument       = errors.New("bad argument")
	ErrDivideByZero      = errors.New("cannot divide by zero probability")
	ErrTooManySlots      = errors.New("too many probability slots")
	ErrFactorialOverflow = errors.New("factorial overflow, requires n from 0 to 170 inclusive")
)
