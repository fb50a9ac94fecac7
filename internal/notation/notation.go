// Package notation parses dice expressions such as "3d6", "4d6k3" or
// "2d8+1d6-1" into exact probability distributions.
//
// Grammar:
//
//	expr := part (('+'|'-') part)*
//	part := [COUNT]'d'SIDES[('k'|'w')KEEP] | INT
//
// "NdS" sums N fair S-sided dice. A "k" suffix keeps the best KEEP of
// the N rolls, "w" the worst. A bare integer is a constant.
package notation

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/neilslater/games-dice/prob"
)

// Parse evaluates a dice expression and returns the distribution of
// its total.
func Parse(expr string) (*prob.Dist, error) {
	s := strings.ReplaceAll(expr, " ", "")
	if s == "" {
		return nil, errors.Errorf("empty dice expression")
	}
	var acc *prob.Dist
	for len(s) > 0 {
		sign := 1
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			sign = -1
			s = s[1:]
		}
		end := len(s)
		if i := strings.IndexAny(s, "+-"); i >= 0 {
			end = i
		}
		tok := s[:end]
		s = s[end:]
		term, err := parseTerm(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", expr)
		}
		switch {
		case acc == nil && sign > 0:
			acc = term
		case acc == nil:
			acc, err = prob.AddMult(-1, term, 1, pointMass(0))
		case sign > 0:
			acc, err = prob.Add(acc, term)
		default:
			acc, err = prob.AddMult(1, acc, -1, term)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "combining %q", tok)
		}
	}
	return acc, nil
}

// parseTerm evaluates one additive part of an expression.
func parseTerm(tok string) (*prob.Dist, error) {
	if tok == "" {
		return nil, errors.Errorf("empty dice term")
	}
	di := strings.IndexByte(tok, 'd')
	if di < 0 {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "bad constant %q", tok)
		}
		return pointMass(v), nil
	}

	count := 1
	if di > 0 {
		c, err := strconv.Atoi(tok[:di])
		if err != nil {
			return nil, errors.Wrapf(err, "bad dice count in %q", tok)
		}
		count = c
	}

	rest := tok[di+1:]
	keep := 0
	mode := prob.KeepBest
	if ki := strings.IndexAny(rest, "kw"); ki >= 0 {
		if rest[ki] == 'w' {
			mode = prob.KeepWorst
		}
		k, err := strconv.Atoi(rest[ki+1:])
		if err != nil {
			return nil, errors.Wrapf(err, "bad keep count in %q", tok)
		}
		keep = k
		rest = rest[:ki]
	}

	sides, err := strconv.Atoi(rest)
	if err != nil {
		return nil, errors.Wrapf(err, "bad side count in %q", tok)
	}
	die, err := prob.FairDie(sides)
	if err != nil {
		return nil, errors.Wrapf(err, "bad die in %q", tok)
	}
	switch {
	case keep > 0:
		return die.RepeatNSumK(count, keep, mode)
	case count > 1:
		return die.RepeatSum(count)
	case count == 1:
		return die, nil
	}
	return nil, errors.Errorf("bad dice count in %q", tok)
}

// pointMass returns the certain distribution at v.
func pointMass(v int) *prob.Dist {
	d, err := prob.New([]float64{1}, v)
	if err != nil {
		panic(err)
	}
	return d
}
