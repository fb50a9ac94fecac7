package prob

import (
	"fmt"
	"math"
)

// Keep selects which end of the ordered rolls RepeatNSumK retains.
type Keep int

const (
	KeepBest Keep = iota
	KeepWorst
)

func (k Keep) String() string {
	switch k {
	case KeepBest:
		return "keep best"
	case KeepWorst:
		return "keep worst"
	}
	return fmt.Sprintf("Keep(%d)", int(k))
}

// RepeatSum returns the distribution of the sum of n independent
// draws, computed by binary exponentiation on Add so a chain of n
// convolutions becomes O(log n) of them.
func (d *Dist) RepeatSum(n int) (*Dist, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: number of repeats must be at least 1, got %d", ErrBadArgument, n)
	}
	if w := len(d.probs) - 1; w > 0 && n > maxSlots/w {
		return nil, fmt.Errorf("%w: %d repeats over %d slots", ErrTooManySlots, n, len(d.probs))
	}
	power := d
	var result *Dist
	var err error
	for {
		if n&1 == 1 {
			if result == nil {
				result = power.clone()
			} else if result, err = Add(result, power); err != nil {
				return nil, err
			}
		}
		n >>= 1
		if n == 0 {
			return result, nil
		}
		if power, err = Add(power, power); err != nil {
			return nil, err
		}
	}
}

// RepeatNSumK returns the distribution of the sum of the k best
// (mode KeepBest) or k worst (mode KeepWorst) of n independent draws.
//
// Rather than enumerate orderings, decompose on the pivot: the value
// q taken by the k-th best (resp. worst) die. Conditioned on q, an
// arrangement is characterised by how many dice fell strictly on the
// kept side of q, strictly on the dropped side, or exactly at q. The
// kept dice beyond the pivot follow the single-die distribution
// conditioned past q, repeated and summed; the multinomial counts the
// orderings of each class.
func (d *Dist) RepeatNSumK(n, k int, mode Keep) (*Dist, error) {
	if n < 1 || k < 1 {
		return nil, fmt.Errorf("%w: need n >= 1 and k >= 1, got n=%d k=%d", ErrBadArgument, n, k)
	}
	if mode != KeepBest && mode != KeepWorst {
		return nil, fmt.Errorf("%w: unknown keep mode %d", ErrBadArgument, int(mode))
	}
	if k >= n {
		return d.RepeatSum(n)
	}
	if n > maxFactorialN {
		return nil, fmt.Errorf("%w: ordering %d dice needs %d!", ErrFactorialOverflow, n, n)
	}
	if w := len(d.probs) - 1; w > 0 && k*w >= maxSlots {
		return nil, fmt.Errorf("%w: keeping %d over %d slots", ErrTooManySlots, k, len(d.probs))
	}
	out, err := newDist(k*d.offset, k*(len(d.probs)-1)+1)
	if err != nil {
		return nil, err
	}

	for qi, pEq := range d.probs {
		if pEq <= 0 {
			continue
		}
		q := d.offset + qi

		// Single-die probabilities of landing strictly on the kept
		// or dropped side of the pivot.
		var pKept, pDropped float64
		if mode == KeepBest {
			pKept, pDropped = d.ProbGt(q), d.ProbLt(q)
		} else {
			pKept, pDropped = d.ProbLt(q), d.ProbGt(q)
		}

		// One die conditioned onto the kept side of the pivot.
		var beyond *Dist
		if pKept > 0 {
			if mode == KeepBest {
				beyond, err = d.GivenGe(q + 1)
			} else {
				beyond, err = d.GivenLe(q - 1)
			}
			if err != nil {
				return nil, err
			}
		}

		// tail accumulates the sum of kn dice drawn from beyond.
		var tail *Dist
		for kn := 0; kn < k; kn++ {
			if kn > 0 {
				if pKept <= 0 {
					break
				}
				if tail == nil {
					tail = beyond
				} else if tail, err = Add(tail, beyond); err != nil {
					return nil, err
				}
			}
			for dn := 0; dn <= n-k; dn++ {
				if dn > 0 && pDropped <= 0 {
					break
				}
				// The pivot and every die tied with it.
				mn := n - kn - dn
				combs, err := multinomial(dn, mn, kn)
				if err != nil {
					return nil, err
				}
				w := combs *
					math.Pow(pKept, float64(kn)) *
					math.Pow(pEq, float64(mn)) *
					math.Pow(pDropped, float64(dn))
				if w <= 0 {
					continue
				}
				if kn == 0 {
					// All k kept dice sit exactly at the pivot.
					out.probs[k*q-out.offset] += w
					continue
				}
				// kn kept dice beyond the pivot, k-kn at it.
				shift := tail.offset + (k-kn)*q - out.offset
				for i, tp := range tail.probs {
					if tp > 0 {
						out.probs[shift+i] += w * tp
					}
				}
			}
		}
	}
	out.calcCumulative()
	return out, nil
}
