package prob

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// GivenGe returns the conditional distribution of X given X >= target.
// The conditioning probability is taken before target is clamped into
// the window, so conditioning on an impossible event fails with
// ErrDivideByZero.
func (d *Dist) GivenGe(target int) (*Dist, error) {
	p := d.ProbGe(target)
	if p <= 0 {
		return nil, fmt.Errorf("%w: P(X >= %d) = 0", ErrDivideByZero, target)
	}
	if target < d.Min() {
		target = d.Min()
	}
	nd, err := newDist(target, d.Max()-target+1)
	if err != nil {
		return nil, err
	}
	copy(nd.probs, d.probs[target-d.offset:])
	floats.Scale(1/p, nd.probs)
	nd.calcCumulative()
	return nd, nil
}

// GivenLe returns the conditional distribution of X given X <= target.
func (d *Dist) GivenLe(target int) (*Dist, error) {
	p := d.ProbLe(target)
	if p <= 0 {
		return nil, fmt.Errorf("%w: P(X <= %d) = 0", ErrDivideByZero, target)
	}
	if target > d.Max() {
		target = d.Max()
	}
	nd, err := newDist(d.offset, target-d.offset+1)
	if err != nil {
		return nil, err
	}
	copy(nd.probs, d.probs[:target-d.offset+1])
	floats.Scale(1/p, nd.probs)
	nd.calcCumulative()
	return nd, nil
}
