// SPDX-License-Identifier: MIT
//
// Package rational provides Q, an exact, unbounded-precision rational
// number used throughout lpsimplex as the only numeric type that may
// appear on a feasibility-affecting path. Q wraps math/big.Rat: the
// retrieved reference corpus has no third-party exact-rational type (every
// LP-flavored repo in the pack — thinkeridea-optimize's simplex,
// wdfday-personalfinance-be's golp binding — is float64-based), so the
// standard library's arbitrary-precision rational is the only available
// primitive for this concern.
//
// Q is a value type: all operations return a new Q rather than mutating
// the receiver, matching the pure value semantics of the expression
// model (expr.Term, expr.Equation) that sits directly on top of it.
package rational

import (
	"fmt"
	"math/big"
)

// Q is an exact rational number. The zero value is 0/1 and is ready to use.
type Q struct {
	r big.Rat
}

// Zero returns the rational 0.
// Complexity: O(1).
func Zero() Q {
	return Q{}
}

// One returns the rational 1.
// Complexity: O(1).
func One() Q {
	var q Q
	q.r.SetInt64(1)
	return q
}

// FromInt builds Q from a signed integer numerator over denominator 1.
// Complexity: O(1).
func FromInt(n int64) Q {
	var q Q
	q.r.SetInt64(n)
	return q
}

// FromFrac builds Q from an explicit numerator/denominator pair.
// Panics if den == 0, mirroring the solver's "division by zero is a
// programming error" contract — construction of an invalid
// rational is the same class of defect as dividing by zero.
// Complexity: O(1).
func FromFrac(num, den int64) Q {
	if den == 0 {
		panic("rational: zero denominator")
	}
	var q Q
	q.r.SetFrac64(num, den)
	return q
}

// Add returns a + b.
// Complexity: O(1) amortized (big.Rat arithmetic on the operands' size).
func (a Q) Add(b Q) Q {
	var q Q
	q.r.Add(&a.r, &b.r)
	return q
}

// Sub returns a - b.
func (a Q) Sub(b Q) Q {
	var q Q
	q.r.Sub(&a.r, &b.r)
	return q
}

// Mul returns a * b.
func (a Q) Mul(b Q) Q {
	var q Q
	q.r.Mul(&a.r, &b.r)
	return q
}

// Div returns a / b. Panics if b is zero: the solver guarantees the
// pivot element is non-zero before dividing, so a zero
// divisor reaching here indicates a defect in the caller, not recoverable
// input data.
func (a Q) Div(b Q) Q {
	if b.Sign() == 0 {
		panic("rational: division by zero")
	}
	var q Q
	q.r.Quo(&a.r, &b.r)
	return q
}

// Neg returns -a.
func (a Q) Neg() Q {
	var q Q
	q.r.Neg(&a.r)
	return q
}

// Sign returns -1, 0, or +1 according to the sign of a.
func (a Q) Sign() int {
	return a.r.Sign()
}

// IsZero reports whether a == 0.
func (a Q) IsZero() bool {
	return a.r.Sign() == 0
}

// Cmp returns -1, 0, or +1 as a is less than, equal to, or greater than b.
// This is the total ordering the solver's bound comparisons rely on.
func (a Q) Cmp(b Q) int {
	return a.r.Cmp(&b.r)
}

// LessThan reports whether a < b.
func (a Q) LessThan(b Q) bool { return a.Cmp(b) < 0 }

// GreaterThan reports whether a > b.
func (a Q) GreaterThan(b Q) bool { return a.Cmp(b) > 0 }

// Equal reports whether a == b.
func (a Q) Equal(b Q) bool { return a.Cmp(b) == 0 }

// String renders a in "n/d" form, or plain "n" when the denominator is 1,
// matching the compact rendering the original Python reference implementation gets for free
// from Python's Fraction.__str__.
func (a Q) String() string {
	if a.r.IsInt() {
		return a.r.Num().String()
	}
	return fmt.Sprintf("%s/%s", a.r.Num().String(), a.r.Denom().String())
}
