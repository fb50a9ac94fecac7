package prob

// Add returns the distribution of X+Y where X and Y are independent
// draws from a and b.
func Add(a, b *Dist) (*Dist, error) {
	d, err := newDist(a.offset+b.offset, len(a.probs)+len(b.probs)-1)
	if err != nil {
		return nil, err
	}
	for i, pa := range a.probs {
		if pa == 0 {
			continue
		}
		for j, pb := range b.probs {
			d.probs[i+j] += pa * pb
		}
	}
	d.calcCumulative()
	return d, nil
}

// AddMult returns the distribution of mulA*X + mulB*Y where X and Y
// are independent draws from a and b. Negative multipliers express
// subtraction and reflection.
func AddMult(mulA int, a *Dist, mulB int, b *Dist) (*Dist, error) {
	// The window extremes are among the four corner combinations.
	corners := [4]int{
		mulA*a.Min() + mulB*b.Min(),
		mulA*a.Max() + mulB*b.Min(),
		mulA*a.Min() + mulB*b.Max(),
		mulA*a.Max() + mulB*b.Max(),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	d, err := newDist(lo, hi-lo+1)
	if err != nil {
		return nil, err
	}
	for i, pa := range a.probs {
		if pa == 0 {
			continue
		}
		base := mulA*(a.offset+i) - lo
		for j, pb := range b.probs {
			d.probs[base+mulB*(b.offset+j)] += pa * pb
		}
	}
	d.calcCumulative()
	return d, nil
}
