// Package lpsimplex is the module root for an exact-rational simplex
// feasibility solver.
//
// 🚀 What is lpsimplex?
//
//	A pure-Go decision procedure that answers one question: does a
//	conjunction of linear equalities and inequalities over rational-valued
//	variables admit an assignment? It is feasibility-only — there is no
//	objective function, no floating point on the solving path, and no
//	incremental assert/retract API.
//
// Under the hood, everything is organized under five subpackages:
//
//	rational/ — exact Q arithmetic kernel (wraps math/big.Rat)
//	expr/     — variables, terms, relational operators, equations
//	tableau/  — sparse m×n rational matrix with lazy deletion
//	bounds/   — per-slot lower/upper bound store
//	simplex/  — Solver: prepare/pivot/select/solve, Bland's rule
//
// Quick usage:
//
//	x1, x2, x3 := expr.Name("x1"), expr.Name("x2"), expr.Name("x3")
//	eqs := []expr.Equation{
//	    expr.NewEquation([]expr.Term{expr.NewTerm(rational.One(), x1), expr.NewTerm(rational.One(), x2)}, expr.LE, rational.FromInt(20)),
//	    expr.NewEquation([]expr.Term{expr.NewTerm(rational.One(), x1), expr.NewTerm(rational.One(), x3)}, expr.EQ, rational.FromInt(5)),
//	}
//	s := simplex.New(eqs)
//	s.Prepare()
//	assignment, ok := s.Solve()
//
// See cmd/lpsimplex-demo for a runnable walkthrough of several worked
// feasibility scenarios, satisfiable and not.
//
//	go get github.com/katalvlaran/lpsimplex
package lpsimplex
