package prob

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAddTwoDice(t *testing.T) {
	d6 := mustDie(t, 6)
	sum, err := Add(d6, d6)
	if err != nil {
		t.Fatal(err)
	}
	checkDist(t, "2d6", sum)
	if sum.Min() != 2 || sum.Max() != 12 {
		t.Errorf("support = [%d, %d], want [2, 12]", sum.Min(), sum.Max())
	}
	want := map[int]float64{}
	for v, ways := range map[int]int{2: 1, 3: 2, 4: 3, 5: 4, 6: 5, 7: 6, 8: 5, 9: 4, 10: 3, 11: 2, 12: 1} {
		want[v] = float64(ways) / 36
	}
	if diff := cmp.Diff(want, sum.Map(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("2d6 Map() mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCommutes(t *testing.T) {
	a := mustFromMap(t, map[int]float64{-1: 0.5, 2: 0.25, 3: 0.25})
	b := mustDie(t, 4)
	ab, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Add(b, a)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(ab.Map(), ba.Map(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Add(a, b) != Add(b, a) (-ab +ba):\n%s", diff)
	}
}

func TestAddDoesNotAliasInputs(t *testing.T) {
	// Passing the same distribution on both sides must still produce
	// the convolution, not scribble over the shared input.
	d6 := mustDie(t, 6)
	sum, err := Add(d6, d6)
	if err != nil {
		t.Fatal(err)
	}
	checkDist(t, "Add(P, P)", sum)
	if !aeq(6.0/36, sum.ProbEq(7)) {
		t.Errorf("Add(P, P).ProbEq(7) = %v, want %v", sum.ProbEq(7), 6.0/36)
	}
	checkDist(t, "input after Add(P, P)", d6)
	if !aeq(1.0/6, d6.ProbEq(3)) {
		t.Errorf("input modified by Add: ProbEq(3) = %v", d6.ProbEq(3))
	}
}

func TestAddWindowTooWide(t *testing.T) {
	probs := make([]float64, 600001)
	probs[0] = 1.0
	huge, err := New(probs, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Add(huge, huge); !errors.Is(err, ErrBadSlots) {
		t.Errorf("Add over the slot cap: got error %v, want %v", err, ErrBadSlots)
	}
}

func TestAddMultDifference(t *testing.T) {
	d6 := mustDie(t, 6)
	diff, err := AddMult(1, d6, -1, d6)
	if err != nil {
		t.Fatal(err)
	}
	checkDist(t, "d6-d6", diff)
	if diff.Min() != -5 || diff.Max() != 5 {
		t.Errorf("support = [%d, %d], want [-5, 5]", diff.Min(), diff.Max())
	}
	if !aeq(6.0/36, diff.ProbEq(0)) {
		t.Errorf("ProbEq(0) = %v, want %v", diff.ProbEq(0), 6.0/36)
	}
	for v := 1; v <= 5; v++ {
		if !aeq(diff.ProbEq(-v), diff.ProbEq(v)) {
			t.Errorf("asymmetric: ProbEq(%d) = %v, ProbEq(%d) = %v", -v, diff.ProbEq(-v), v, diff.ProbEq(v))
		}
	}
	if e, g := 0.0, diff.Expected(); g < -1e-12 || g > 1e-12 {
		t.Errorf("Expected() = %v, want %v", g, e)
	}
}

func TestAddMultMatchesAdd(t *testing.T) {
	a := mustFromMap(t, map[int]float64{0: 0.5, 4: 0.5})
	b := mustDie(t, 3)
	plain, err := Add(a, b)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := AddMult(1, a, 1, b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(plain.Map(), scaled.Map(), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("AddMult(1, a, 1, b) != Add(a, b):\n%s", diff)
	}
}

func TestAddMultScalingLeavesGaps(t *testing.T) {
	d2 := mustDie(t, 2)
	one, err := New([]float64{1}, 0)
	if err != nil {
		t.Fatal(err)
	}
	doubled, err := AddMult(2, d2, 1, one)
	if err != nil {
		t.Fatal(err)
	}
	checkDist(t, "2*d2", doubled)
	if doubled.Min() != 2 || doubled.Max() != 4 {
		t.Errorf("support = [%d, %d], want [2, 4]", doubled.Min(), doubled.Max())
	}
	testFunc(t, "ProbEq", doubled.ProbEq, map[int]float64{2: 0.5, 3: 0, 4: 0.5})
}
