// Diceprob computes exact statistics about dice expressions.
//
// Usage:
//
//	diceprob [options] expr [expr ...]
//
// Each expression uses dice notation: "3d6" sums three six-sided
// dice, "4d6k3" keeps the best three of four, "4d6w3" the worst
// three, and terms combine with + and - ("2d8+1d6-1"). For each
// expression diceprob prints the range and mean of the total, and
// with -t the full probability table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"unicode/utf8"

	"github.com/neilslater/games-dice/internal/notation"
	"github.com/neilslater/games-dice/prob"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: diceprob [options] expr [expr ...]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagTable = flag.Bool("t", false, "print the full probability table for each expression")
)

type row struct {
	cols []string
}

func newRow(cols ...string) *row {
	return &row{cols: cols}
}

func (r *row) add(col string) {
	r.cols = append(r.cols, col)
}

func main() {
	log.SetPrefix("diceprob: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
	}

	dists := make([]*prob.Dist, flag.NArg())
	for i, expr := range flag.Args() {
		d, err := notation.Parse(expr)
		if err != nil {
			log.Fatal(err)
		}
		dists[i] = d
	}

	var tables [][]*row
	summary := []*row{newRow("expr", "min", "max", "mean")}
	for i, expr := range flag.Args() {
		d := dists[i]
		summary = append(summary, newRow(expr,
			fmt.Sprint(d.Min()),
			fmt.Sprint(d.Max()),
			fmt.Sprintf("%.6g", d.Expected())))
	}
	tables = append(tables, summary)

	if *flagTable {
		for i, expr := range flag.Args() {
			tables = append(tables, distTable(expr, dists[i]))
		}
	}

	os.Stdout.Write(format(tables))
}

// distTable lists every value of the distribution with its
// probability and the cumulative probability up to it.
func distTable(expr string, d *prob.Dist) []*row {
	table := []*row{newRow(expr, "prob", "cumulative")}
	d.Each(func(v int, p float64) {
		table = append(table, newRow(
			fmt.Sprint(v),
			fmt.Sprintf("%.6g", p),
			fmt.Sprintf("%.6g", d.ProbLe(v))))
	})
	return table
}

// format renders the tables with columns aligned across all of them.
func format(tables [][]*row) []byte {
	numColumn := 0
	for _, table := range tables {
		for _, row := range table {
			if numColumn < len(row.cols) {
				numColumn = len(row.cols)
			}
		}
	}

	max := make([]int, numColumn)
	for _, table := range tables {
		for _, row := range table {
			for i, s := range row.cols {
				n := utf8.RuneCountInString(s)
				if max[i] < n {
					max[i] = n
				}
			}
		}
	}

	var buf bytes.Buffer
	for i, table := range tables {
		if i > 0 {
			fmt.Fprintf(&buf, "\n")
		}

		// headings
		row := table[0]
		for i, s := range row.cols {
			switch i {
			case 0:
				fmt.Fprintf(&buf, "%-*s", max[i], s)
			default:
				fmt.Fprintf(&buf, "  %-*s", max[i], s)
			case len(row.cols) - 1:
				fmt.Fprintf(&buf, "  %s\n", s)
			}
		}

		// data
		for _, row := range table[1:] {
			for i, s := range row.cols {
				switch i {
				case 0:
					fmt.Fprintf(&buf, "%-*s", max[i], s)
				default:
					fmt.Fprintf(&buf, "  %*s", max[i], s)
				}
			}
			fmt.Fprintf(&buf, "\n")
		}
	}
	return buf.Bytes()
}
