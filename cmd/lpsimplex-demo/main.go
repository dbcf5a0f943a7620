// SPDX-License-Identifier: MIT
//
// Command lpsimplex-demo reproduces the original Python reference implementation's run()
// helper and its three worked scenarios (S1-S3, the same systems as the
// simplex package's tests) as a runnable CLI, optionally printing the solver's
// debug dump of the final tableau and permutation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/lpsimplex/expr"
	"github.com/katalvlaran/lpsimplex/rational"
	"github.com/katalvlaran/lpsimplex/simplex"
)

func main() {
	verbose := flag.Bool("v", false, "print the solver's debug dump after solving each scenario")
	flag.Parse()

	for _, scenario := range scenarios() {
		run(scenario.name, scenario.equations, *verbose)
		fmt.Println()
	}
}

type namedSystem struct {
	name      string
	equations []expr.Equation
}

func term(co int64, v string) expr.Term {
	return expr.NewTerm(rational.FromInt(co), expr.Name(v))
}

func scenarios() []namedSystem {
	return []namedSystem{
		{
			name: "S1",
			equations: []expr.Equation{
				expr.NewEquation([]expr.Term{term(1, "x1"), term(1, "x2")}, expr.LE, rational.FromInt(20)),
				expr.NewEquation([]expr.Term{term(1, "x1"), term(1, "x3")}, expr.EQ, rational.FromInt(5)),
				expr.NewEquation([]expr.Term{term(-1, "x2"), term(-1, "x3")}, expr.LE, rational.FromInt(-10)),
			},
		},
		{
			name: "S2",
			equations: []expr.Equation{
				expr.NewEquation([]expr.Term{term(1, "x")}, expr.GE, rational.FromInt(2)),
				expr.NewEquation([]expr.Term{term(2, "x")}, expr.LE, rational.FromInt(0)),
			},
		},
		{
			name: "S3",
			equations: []expr.Equation{
				expr.NewEquation([]expr.Term{term(1, "x"), term(1, "y")}, expr.GE, rational.FromInt(2)),
				expr.NewEquation([]expr.Term{term(2, "x"), term(-1, "y")}, expr.GE, rational.FromInt(0)),
				expr.NewEquation([]expr.Term{term(-1, "x"), term(2, "y")}, expr.GE, rational.FromInt(1)),
			},
		},
	}
}

func run(name string, equations []expr.Equation, verbose bool) {
	s := simplex.New(equations)

	fmt.Printf("Problem %s:\n", name)
	for _, eq := range equations {
		fmt.Println(" ", eq.String())
	}

	s.Prepare()
	got, ok := s.Solve()
	if ok {
		fmt.Print("Solution: ")
		for i, a := range got {
			if i > 0 {
				fmt.Print(" ")
			}
			fmt.Printf("%s=%s", a.Name, a.Value)
		}
		fmt.Println()
		fmt.Println("Result  : SAT")
	} else {
		fmt.Println("Result  : UNSAT")
	}
	fmt.Println("Pivots  :", s.NPivots())

	if verbose {
		fmt.Fprintln(os.Stdout, s.Debug())
	}
}
