package prob

// Min returns the least value covered by the probability window.
func (d *Dist) Min() int {
	return d.offset
}

// Max returns the greatest value covered by the probability window.
func (d *Dist) Max() int {
	return d.offset + len(d.probs) - 1
}

// ProbEq returns P(X == target).
func (d *Dist) ProbEq(target int) float64 {
	i := target - d.offset
	if i < 0 || i >= len(d.probs) {
		return 0
	}
	return d.probs[i]
}

// ProbLe returns P(X <= target).
//
// At or past the top of the window this returns an exact 1.0 rather
// than reading the (drift-prone) final cumulative entry, so the
// complementary queries return an exact 0 at the boundary.
func (d *Dist) ProbLe(target int) float64 {
	i := target - d.offset
	if i < 0 {
		return 0
	}
	if i >= len(d.probs)-1 {
		return 1
	}
	return d.cumulative[i]
}

// ProbLt returns P(X < target).
func (d *Dist) ProbLt(target int) float64 {
	return d.ProbLe(target - 1)
}

// ProbGe returns P(X >= target).
func (d *Dist) ProbGe(target int) float64 {
	return 1 - d.ProbLe(target-1)
}

// ProbGt returns P(X > target).
func (d *Dist) ProbGt(target int) float64 {
	return 1 - d.ProbLe(target)
}

// Expected returns the mean of the distribution.
func (d *Dist) Expected() float64 {
	total := 0.0
	for i, p := range d.probs {
		total += float64(d.offset+i) * p
	}
	return total
}
