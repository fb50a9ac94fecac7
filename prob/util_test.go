package prob

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
)

// aeq returns true if expect and got are equal to 8 significant
// figures (1 part in 100 million).
func aeq(expect, got float64) bool {
	if expect < 0 && got < 0 {
		expect, got = -expect, -got
	}
	return expect*(1-0.00000001) <= got && got <= expect*(1+0.00000001)
}

func testFunc(t *testing.T, name string, f func(int) float64, vals map[int]float64) {
	t.Helper()
	for x, want := range vals {
		if got := f(x); !aeq(want, got) {
			t.Errorf("%s(%d) = %v, want %v", name, x, got, want)
		}
	}
}

// checkDist fails if d violates the distribution invariants: probs in
// range summing to 1, cumulative non-decreasing and ending at the sum.
func checkDist(t *testing.T, name string, d *Dist) {
	t.Helper()
	if len(d.probs) < 1 || len(d.probs) != len(d.cumulative) {
		t.Fatalf("%s: bad storage, %d probs and %d cumulative", name, len(d.probs), len(d.cumulative))
	}
	for i, p := range d.probs {
		if p < 0 || p > 1+1e-9 {
			t.Errorf("%s: probs[%d] = %v out of range", name, i, p)
		}
	}
	sum := floats.Sum(d.probs)
	if math.Abs(sum-1) > 1e-6 {
		t.Errorf("%s: probabilities sum to %v", name, sum)
	}
	prev := 0.0
	for i, c := range d.cumulative {
		if c < prev-1e-12 {
			t.Errorf("%s: cumulative decreases at slot %d: %v after %v", name, i, c, prev)
		}
		prev = c
	}
	if last := d.cumulative[len(d.cumulative)-1]; math.Abs(last-sum) > 1e-9 {
		t.Errorf("%s: cumulative ends at %v, probs sum to %v", name, last, sum)
	}
}

func mustDie(t *testing.T, sides int) *Dist {
	t.Helper()
	d, err := FairDie(sides)
	if err != nil {
		t.Fatalf("FairDie(%d): %v", sides, err)
	}
	return d
}

func mustFromMap(t *testing.T, m map[int]float64) *Dist {
	t.Helper()
	d, err := FromMap(m)
	if err != nil {
		t.Fatalf("FromMap(%v): %v", m, err)
	}
	return d
}
