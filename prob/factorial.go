package prob

import "fmt"

// factorials holds n! as float64 for n in [0, maxFactorialN]. 170! is
// about 7.26e306, the largest factorial representable in IEEE-754
// double precision.
var factorials [maxFactorialN + 1]float64

func init() {
	factorials[0] = 1
	for n := 1; n <= maxFactorialN; n++ {
		factorials[n] = factorials[n-1] * float64(n)
	}
}

// multinomial returns (Σ groups)! / Π groups[i]!, the number of
// distinct orderings of a multiset with the given group sizes.
func multinomial(groups ...int) (float64, error) {
	total := 0
	for _, g := range groups {
		if g < 0 {
			return 0, fmt.Errorf("%w: negative group size %d", ErrBadArgument, g)
		}
		total += g
	}
	if total > maxFactorialN {
		return 0, fmt.Errorf("%w: needed %d!", ErrFactorialOverflow, total)
	}
	r := factorials[total]
	for _, g := range groups {
		r /= factorials[g]
	}
	return r, nil
}
