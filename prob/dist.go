package prob

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Dist is an exact probability distribution over a contiguous
// window of integers. Slot i of probs holds P(X = offset+i), and the
// parallel cumulative array holds the running totals so that tail
// queries are O(1). A Dist is immutable after construction: every
// operation allocates a fresh result and never aliases its inputs.
type Dist struct {
	offset     int
	probs      []float64
	cumulative []float64
}

// newDist allocates a zeroed distribution covering slots integers
// starting at offset.
func newDist(offset, slots int) (*Dist, error) {
	if slots < 1 || slots > maxSlots {
		return nil, fmt.Errorf("%w: requested %d", ErrBadSlots, slots)
	}
	return &Dist{
		offset:     offset,
		probs:      make([]float64, slots),
		cumulative: make([]float64, slots),
	}, nil
}

// calcCumulative regenerates the cumulative array from probs. Every
// operation that writes probs must call this before returning.
func (d *Dist) calcCumulative() {
	floats.CumSum(d.cumulative, d.probs)
}

func (d *Dist) clone() *Dist {
	nd := &Dist{
		offset:     d.offset,
		probs:      make([]float64, len(d.probs)),
		cumulative: make([]float64, len(d.cumulative)),
	}
	copy(nd.probs, d.probs)
	copy(nd.cumulative, d.cumulative)
	return nd
}

// checkProb rejects values outside [0,1]. The negated comparison also
// catches NaN.
func checkProb(p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%w: %v", ErrBadProbability, p)
	}
	return nil
}

// New returns the distribution with P(X = offset+i) = probs[i]. The
// supplied probabilities must each lie in [0,1] and sum to 1 within
// sumTolerance. The input slice is copied, not retained.
func New(probs []float64, offset int) (*Dist, error) {
	d, err := newDist(offset, len(probs))
	if err != nil {
		return nil, err
	}
	for _, p := range probs {
		if err := checkProb(p); err != nil {
			return nil, err
		}
	}
	if sum := floats.Sum(probs); math.Abs(sum-1) > sumTolerance {
		return nil, fmt.Errorf("%w: total is %v", ErrBadSum, sum)
	}
	copy(d.probs, probs)
	d.calcCumulative()
	return d, nil
}

// FromMap returns the distribution described by a value→probability
// mapping. Missing values inside the window have probability zero.
// The window is tightened to the least and greatest values with
// positive probability, so leading and trailing zero entries in the
// map do not widen the support.
func FromMap(m map[int]float64) (*Dist, error) {
	lo, hi := 0, 0
	seen := false
	sum := 0.0
	for v, p := range m {
		if err := checkProb(p); err != nil {
			return nil, err
		}
		sum += p
		if p > 0 {
			if !seen || v < lo {
				lo = v
			}
			if !seen || v > hi {
				hi = v
			}
			seen = true
		}
	}
	if !seen {
		return nil, fmt.Errorf("%w: no positive probabilities supplied", ErrBadSlots)
	}
	if math.Abs(sum-1) > sumTolerance {
		return nil, fmt.Errorf("%w: total is %v", ErrBadSum, sum)
	}
	d, err := newDist(lo, hi-lo+1)
	if err != nil {
		return nil, err
	}
	for v, p := range m {
		if p > 0 {
			d.probs[v-lo] = p
		}
	}
	d.calcCumulative()
	return d, nil
}

// FairDie returns the uniform distribution over 1..sides.
func FairDie(sides int) (*Dist, error) {
	if sides < 1 || sides > maxDieSides {
		return nil, fmt.Errorf("%w: die must have between 1 and %d sides, got %d", ErrBadSlots, maxDieSides, sides)
	}
	d, err := newDist(1, sides)
	if err != nil {
		return nil, err
	}
	p := 1 / float64(sides)
	for i := range d.probs {
		d.probs[i] = p
	}
	d.calcCumulative()
	return d, nil
}

// Each calls fn for every value with positive probability, in
// ascending value order.
func (d *Dist) Each(fn func(value int, p float64)) {
	for i, p := range d.probs {
		if p > 0 {
			fn(d.offset+i, p)
		}
	}
}

// Map exports the distribution as a value→probability mapping,
// omitting zero-probability slots.
func (d *Dist) Map() map[int]float64 {
	m := make(map[int]float64)
	d.Each(func(v int, p float64) {
		m[v] = p
	})
	return m
}
