// SPDX-License-Identifier: MIT
//
// Package simplex implements the feasibility solver itself: Solver state
// (assignment, basic/non-basic permutation, pivot counter) and the
// prepare/pivot/select/solve algorithms of an exact-rational,
// Bland's-rule-driven simplex decision procedure, in the style of
// the original Python reference implementation's Solver dataclass and
// generalized to match the data model in expr/tableau/bounds.
//
// A Solver is single-threaded and synchronous (no goroutines, no
// cancellation, no shared state between instances): it owns its tableau,
// bounds, assignment, and permutation exclusively, and concurrent
// invocation of its methods from multiple goroutines is not supported.
// Independent Solver instances may run in parallel.
package simplex

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/katalvlaran/lpsimplex/bounds"
	"github.com/katalvlaran/lpsimplex/expr"
	"github.com/katalvlaran/lpsimplex/rational"
	"github.com/katalvlaran/lpsimplex/tableau"
)

// Assignment binds one structural variable to its solved value.
type Assignment struct {
	Name  expr.Name
	Value rational.Q
}

// SolverOption configures a Solver at construction time.
type SolverOption func(*Solver)

// WithMaxPivots bounds the number of pivots Solve will perform before
// panicking. Bland's rule already guarantees termination in a finite
// number of pivots for any well-formed input, so this is a defensive
// guard against a defect elsewhere (a corrupted tableau, a
// non-conforming select implementation), not a normal feasibility
// outcome — hitting it indicates a programming error, not an Unsat
// verdict. A non-positive value (the default) means unlimited.
func WithMaxPivots(n int) SolverOption {
	return func(s *Solver) { s.maxPivots = n }
}

// Solver holds a problem in the form of a list of equations that can be
// checked for feasibility.
type Solver struct {
	equations []expr.Equation
	vars      []expr.Name
	varIndex  map[expr.Name]int

	tab    *tableau.Tableau
	bnd    *bounds.Store
	assign []rational.Q

	// slotOfPos[p] is the slot id currently at permutation position p;
	// posOfSlot is its inverse. Positions [0,n) are non-basic, [n,n+m)
	// are basic.
	slotOfPos []int
	posOfSlot []int

	n int // number of structural variables
	m int // number of equations

	nPivots   int
	maxPivots int

	prepared bool
}

// New constructs a Solver over the given equations. The slice is copied;
// equations are immutable once the Solver is constructed.
func New(equations []expr.Equation, opts ...SolverOption) *Solver {
	cp := make([]expr.Equation, len(equations))
	copy(cp, equations)
	s := &Solver{equations: cp}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Vars returns the sorted, de-duplicated set of structural variable
// names appearing across all equations. Valid before or after Prepare.
// Complexity: O(total terms · log total terms).
func (s *Solver) Vars() []expr.Name {
	seen := make(map[expr.Name]struct{})
	for _, eq := range s.equations {
		for _, name := range eq.Variables() {
			seen[name] = struct{}{}
		}
	}
	out := make([]expr.Name, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NPivots reports how many pivots have been performed since the last
// Prepare call.
func (s *Solver) NPivots() int {
	return s.nPivots
}

// Prepare normalises variable names to indices, introduces one slack
// variable per equation, fills the tableau, and records bounds on the
// slacks. It must be called once, before Solve.
func (s *Solver) Prepare() {
	s.vars = s.Vars()
	s.n = len(s.vars)
	s.m = len(s.equations)

	s.varIndex = make(map[expr.Name]int, s.n)
	for i, name := range s.vars {
		s.varIndex[name] = i
	}

	total := s.n + s.m
	s.assign = make([]rational.Q, total)
	for i := range s.assign {
		s.assign[i] = rational.Zero()
	}

	s.tab = tableau.New()
	s.bnd = bounds.New()

	for i, eq := range s.equations {
		s.tab.ReserveRow(i)
		for _, t := range eq.Lhs {
			j := s.varIndex[t.Var]
			s.tab.Set(i, j, s.tab.Get(i, j).Add(t.Co))
		}

		slack := s.n + i
		switch eq.Op {
		case expr.LE:
			s.bnd.SetUpper(slack, eq.Rhs)
		case expr.GE:
			s.bnd.SetLower(slack, eq.Rhs)
		case expr.EQ:
			s.bnd.SetEqual(slack, eq.Rhs)
		}
	}

	s.slotOfPos = make([]int, total)
	s.posOfSlot = make([]int, total)
	for k := 0; k < total; k++ {
		s.slotOfPos[k] = k
		s.posOfSlot[k] = k
	}

	s.nPivots = 0
	s.prepared = true
}

// selectKind tags the outcome of select.
type selectKind int

const (
	selOk selectKind = iota
	selUnsat
	selPivot
)

type selection struct {
	kind selectKind
	row  int
	pos  int
	v    rational.Q
}

// pivot exchanges basic slot at row i with the non-basic slot at
// position j, targeting value v for the leaving (currently basic) slot.
func (s *Solver) pivot(i, j int, v rational.Q) {
	aij := s.tab.Get(i, j)
	if aij.IsZero() {
		panic(fmt.Sprintf("simplex: pivot on zero entry at row %d, position %d", i, j))
	}

	ii := s.n + i
	basicSlot := s.slotOfPos[ii]
	enterSlot := s.slotOfPos[j]

	delta := v.Sub(s.assign[basicSlot]).Div(aij)
	s.assign[enterSlot] = s.assign[enterSlot].Add(delta)
	s.assign[basicSlot] = v

	// Swap the permutation now: positions ii and j exchange roles. The
	// remaining tableau rewrite below reads the assignment of
	// "whichever slot currently occupies position l", so later rows must
	// already see the post-swap occupant of position j (the leaving
	// slot) when recomputing their own basic values.
	s.slotOfPos[ii], s.slotOfPos[j] = s.slotOfPos[j], s.slotOfPos[ii]
	s.posOfSlot[s.slotOfPos[ii]] = ii
	s.posOfSlot[s.slotOfPos[j]] = j

	// Invert row i: snapshot first so the in-place rewrite is safe.
	rowSnap := s.tab.Row(i)
	for _, e := range rowSnap {
		if e.Pos == j {
			s.tab.Set(i, e.Pos, rational.One().Div(aij))
		} else {
			s.tab.Set(i, e.Pos, e.Val.Div(aij.Neg()))
		}
	}

	// Eliminate column j from every other row, using the freshly
	// inverted row i. Snapshot the affected rows (column j's non-zero
	// rows) before mutating any of them.
	invertedRow := s.tab.Row(i)
	colSnap := s.tab.Col(j)
	for _, ce := range colSnap {
		k := ce.Pos
		if k == i {
			continue
		}
		akj := ce.Val
		for _, re := range invertedRow {
			l := re.Pos
			var akl rational.Q
			if l == j {
				akl = akj.Div(aij)
			} else {
				akl = s.tab.Get(k, l).Add(re.Val.Mul(akj))
			}
			s.tab.Set(k, l, akl)
		}

		basicK := s.slotOfPos[s.n+k]
		sum := rational.Zero()
		for _, re := range s.tab.Row(k) {
			sum = sum.Add(re.Val.Mul(s.assign[s.slotOfPos[re.Pos]]))
		}
		s.assign[basicK] = sum
	}

	s.nPivots++

	if !s.checkInvariant() {
		panic("simplex: row invariant violated after pivot")
	}
}

// checkInvariant verifies that every basic slot's value equals the
// dot product of its row with the current non-basic assignment.
func (s *Solver) checkInvariant() bool {
	for i := 0; i < s.tab.NRows(); i++ {
		sum := rational.Zero()
		for _, e := range s.tab.Row(i) {
			sum = sum.Add(e.Val.Mul(s.assign[s.slotOfPos[e.Pos]]))
		}
		basic := s.assign[s.slotOfPos[s.n+i]]
		if !sum.Equal(basic) {
			return false
		}
	}
	return true
}

// selectPivot applies Bland's rule: among basic slots in
// ascending slot-id order, find the first that violates a bound, then
// among non-basic slots (also ascending slot-id order) find the first
// usable pivot column.
func (s *Solver) selectPivot() selection {
	type rowSlot struct {
		row, slot int
	}
	basic := make([]rowSlot, s.m)
	for i := 0; i < s.m; i++ {
		basic[i] = rowSlot{row: i, slot: s.slotOfPos[s.n+i]}
	}
	sort.Slice(basic, func(a, b int) bool { return basic[a].slot < basic[b].slot })

	type posSlot struct {
		pos, slot int
	}
	nonbasic := make([]posSlot, s.n)
	for j := 0; j < s.n; j++ {
		nonbasic[j] = posSlot{pos: j, slot: s.slotOfPos[j]}
	}
	sort.Slice(nonbasic, func(a, b int) bool { return nonbasic[a].slot < nonbasic[b].slot })

	for _, b := range basic {
		i, xi := b.row, b.slot
		axi := s.assign[xi]

		if lo, ok := s.bnd.GetLower(xi); ok && axi.LessThan(lo) {
			for _, nb := range nonbasic {
				j, xj := nb.pos, nb.slot
				aij := s.tab.Get(i, j)
				axj := s.assign[xj]
				switch {
				case aij.Sign() > 0:
					if hi, ok := s.bnd.GetUpper(xj); !ok || axj.LessThan(hi) {
						return selection{kind: selPivot, row: i, pos: j, v: lo}
					}
				case aij.Sign() < 0:
					if loj, ok := s.bnd.GetLower(xj); !ok || axj.GreaterThan(loj) {
						return selection{kind: selPivot, row: i, pos: j, v: lo}
					}
				}
			}
			return selection{kind: selUnsat}
		}

		if hi, ok := s.bnd.GetUpper(xi); ok && axi.GreaterThan(hi) {
			for _, nb := range nonbasic {
				j, xj := nb.pos, nb.slot
				aij := s.tab.Get(i, j)
				axj := s.assign[xj]
				switch {
				case aij.Sign() < 0:
					if ub, ok := s.bnd.GetUpper(xj); !ok || axj.LessThan(ub) {
						return selection{kind: selPivot, row: i, pos: j, v: hi}
					}
				case aij.Sign() > 0:
					if lb, ok := s.bnd.GetLower(xj); !ok || axj.GreaterThan(lb) {
						return selection{kind: selPivot, row: i, pos: j, v: hi}
					}
				}
			}
			return selection{kind: selUnsat}
		}
	}

	return selection{kind: selOk}
}

// Solve repeatedly consults selectPivot for a pivot candidate and applies
// pivot until selectPivot reports either a feasible state or
// unsatisfiability. It panics if called before Prepare: calling solve
// without prepare is a programming error.
//
// On success it returns the values of structural slots in sorted-name
// order and true. On Unsat it returns nil and false.
func (s *Solver) Solve() ([]Assignment, bool) {
	if !s.prepared {
		panic("simplex: Solve called before Prepare")
	}

	for {
		sel := s.selectPivot()
		switch sel.kind {
		case selOk:
			out := make([]Assignment, s.n)
			for i, name := range s.vars {
				out[i] = Assignment{Name: name, Value: s.assign[i]}
			}
			return out, true
		case selUnsat:
			return nil, false
		default:
			if s.maxPivots > 0 && s.nPivots >= s.maxPivots {
				panic(fmt.Sprintf("simplex: exceeded max pivots (%d)", s.maxPivots))
			}
			s.pivot(sel.row, sel.pos, sel.v)
		}
	}
}

// RenderOption configures Debug's output.
type RenderOption func(*renderConfig)

type renderConfig struct {
	w io.Writer
}

// WithWriter additionally streams the rendered debug text to w, in
// addition to Debug's returned string.
func WithWriter(w io.Writer) RenderOption {
	return func(c *renderConfig) { c.w = w }
}

// Debug renders the current permutation with per-slot values, followed
// by the dense projection of the tableau's rows. Diagnostic use only
// — not parsed by any caller.
func (s *Solver) Debug(opts ...RenderOption) string {
	cfg := &renderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "equations:\n")
	for _, eq := range s.equations {
		fmt.Fprintf(&b, "  %s\n", eq.String())
	}

	if s.prepared {
		fmt.Fprintf(&b, "permutation (position -> slot, value):\n")
		for p, slot := range s.slotOfPos {
			role := "non-basic"
			if p >= s.n {
				role = "basic"
			}
			fmt.Fprintf(&b, "  pos=%d slot=%d (%s) value=%s\n", p, slot, role, s.assign[slot])
		}

		fmt.Fprintf(&b, "tableau (dense, rows x %d cols):\n", s.n)
		for i := 0; i < s.m; i++ {
			row := make([]string, s.n)
			for j := 0; j < s.n; j++ {
				row[j] = s.tab.Get(i, j).String()
			}
			fmt.Fprintf(&b, "  [%s]\n", strings.Join(row, ", "))
		}

		fmt.Fprintf(&b, "n_pivots: %d\n", s.nPivots)
	}

	out := b.String()
	if cfg.w != nil {
		io.WriteString(cfg.w, out) //nolint:errcheck // diagnostic-only
	}
	return out
}
