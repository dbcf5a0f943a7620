// SPDX-License-Identifier: MIT
//
// Package expr defines the pure, solver-agnostic value types for linear
// expressions: variable names, coefficient×variable terms, relational
// operators, and equations. Nothing here touches tableau/bounds/simplex
// state; these are carriers, grounded directly on
// the original Python reference implementation's Term/Equation/Operator dataclasses.
package expr

import (
	"errors"
	"strings"

	"github.com/katalvlaran/lpsimplex/rational"
)

// ErrZeroScale is returned by callers that choose to validate before
// scaling by zero. Equation.Scale and Term.Scale do not check for this
// themselves — scaling by zero is undefined behavior the caller must
// avoid — but the sentinel lets validating callers (e.g. a future host
// integration) reject it explicitly rather than silently collapsing an
// equation.
var ErrZeroScale = errors.New("expr: scale factor must be non-zero")

// Name is the opaque string identity of a user-visible variable.
type Name string

// RelOp is a relational operator relating a linear combination to a
// right-hand-side constant.
type RelOp int

const (
	// LE is "less than or equal to" (≤).
	LE RelOp = iota
	// GE is "greater than or equal to" (≥).
	GE
	// EQ is "equal to" (=).
	EQ
)

// Invert flips LE to GE and vice versa; EQ is fixed under inversion.
// Complexity: O(1).
func (op RelOp) Invert() RelOp {
	switch op {
	case LE:
		return GE
	case GE:
		return LE
	default:
		return EQ
	}
}

// String renders the operator using its familiar mathematical symbol.
func (op RelOp) String() string {
	switch op {
	case LE:
		return "<="
	case GE:
		return ">="
	default:
		return "="
	}
}

// Term is a coefficient paired with a variable name: co * var.
type Term struct {
	Co  rational.Q
	Var Name
}

// NewTerm builds a Term from a coefficient and a variable name.
func NewTerm(co rational.Q, v Name) Term {
	return Term{Co: co, Var: v}
}

// Scale returns a new Term with the coefficient multiplied by k.
// Complexity: O(1).
func (t Term) Scale(k rational.Q) Term {
	return Term{Co: t.Co.Mul(k), Var: t.Var}
}

// String renders the term the way the original Python reference implementation's
// Term.__str__ does: bare variable for coefficient 1, "-var" for -1,
// parenthesized coefficient for other negatives ("(-2)*x"), and a plain
// coefficient otherwise ("2*x").
func (t Term) String() string {
	one := rational.One()
	if t.Co.Equal(one) {
		return string(t.Var)
	}
	if t.Co.Equal(one.Neg()) {
		return "-" + string(t.Var)
	}
	if t.Co.Sign() < 0 {
		return "(" + t.Co.String() + ")*" + string(t.Var)
	}
	return t.Co.String() + "*" + string(t.Var)
}

// Equation is a sum of terms related to a rational right-hand side:
// Σ lhs ⊕ op ⊕ rhs.
type Equation struct {
	Lhs []Term
	Op  RelOp
	Rhs rational.Q
}

// NewEquation builds an Equation from its parts. The lhs slice is copied
// so the caller's slice may be reused or mutated afterwards without
// aliasing this Equation's state.
func NewEquation(lhs []Term, op RelOp, rhs rational.Q) Equation {
	cp := make([]Term, len(lhs))
	copy(cp, lhs)
	return Equation{Lhs: cp, Op: op, Rhs: rhs}
}

// Scale returns a new Equation with every lhs coefficient and the rhs
// multiplied by k; if k is negative, Op is inverted. Behavior is
// undefined if k is zero — callers must not do this, and Scale does
// not guard against it.
// Complexity: O(len(lhs)).
func (e Equation) Scale(k rational.Q) Equation {
	out := Equation{
		Lhs: make([]Term, len(e.Lhs)),
		Op:  e.Op,
		Rhs: e.Rhs.Mul(k),
	}
	for i, t := range e.Lhs {
		out.Lhs[i] = t.Scale(k)
	}
	if k.Sign() < 0 {
		out.Op = e.Op.Invert()
	}
	return out
}

// Variables yields the names of this equation's lhs terms in listed
// order; duplicates are possible and are merged by simplex.Prepare, not
// here.
// Complexity: O(len(lhs)).
func (e Equation) Variables() []Name {
	out := make([]Name, len(e.Lhs))
	for i, t := range e.Lhs {
		out[i] = t.Var
	}
	return out
}

// String renders the equation the way the original Python reference implementation's
// Equation.__str__ does: "t1 + t2 + ... op rhs".
func (e Equation) String() string {
	parts := make([]string, len(e.Lhs))
	for i, t := range e.Lhs {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ") + " " + e.Op.String() + " " + e.Rhs.String()
}
