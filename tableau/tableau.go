// SPDX-License-Identifier: MIT
//
// Package tableau implements the sparse rational matrix the simplex
// solver rewrites on every pivot: a two-index sparse store with lazy
// deletion, in the style of the original Python reference
// implementation's Tableau dataclass.
//
// Representation: a single map keyed by (row, col) holding the current
// value together with a 2-bit "still indexed" state — bit 0 means the
// cell is still referenced from its row's index list, bit 1 means it is
// still referenced from its column's index list — plus one index list
// per row and per column. Setting a cell to zero does not immediately
// remove it from those lists; the *next* traversal of the affected row
// or column compacts the list and, once both bits are cleared, drops the
// map entry entirely. This lets Set be O(1) regardless of how many
// zeroing writes a hot pivot loop performs.
package tableau

import "github.com/katalvlaran/lpsimplex/rational"

// Entry is one non-zero cell yielded by Row/Col: the position along the
// iterated axis and the value stored there.
type Entry struct {
	Pos int
	Val rational.Q
}

const (
	inRowList = 1 << 0
	inColList = 1 << 1
)

type cell struct {
	i, j int
}

type slot struct {
	v     rational.Q
	state uint8
}

// Tableau is a sparse m×n matrix of rational.Q with lazy deletion.
// The zero value is an empty, immediately usable tableau.
type Tableau struct {
	vals map[cell]slot
	rows map[int][]int
	cols map[int][]int
	nRows int
}

// New returns an empty Tableau.
func New() *Tableau {
	return &Tableau{
		vals: make(map[cell]slot),
		rows: make(map[int][]int),
		cols: make(map[int][]int),
	}
}

func (t *Tableau) reserveRow(i int) {
	if t.rows == nil {
		t.rows = make(map[int][]int)
	}
	if _, ok := t.rows[i]; !ok {
		t.rows[i] = nil
	}
	if i+1 > t.nRows {
		t.nRows = i + 1
	}
}

func (t *Tableau) reserveCol(j int) {
	if t.cols == nil {
		t.cols = make(map[int][]int)
	}
	if _, ok := t.cols[j]; !ok {
		t.cols[j] = nil
	}
}

// ReserveRow ensures row i exists (NRows() > i) even if it never
// receives a non-zero entry, e.g. an equation with an all-zero
// left-hand side. Complexity: O(1).
func (t *Tableau) ReserveRow(i int) {
	t.reserveRow(i)
}

// Get returns the value at (i, j), or 0 if no entry has ever been
// written there (or the last write there was 0).
// Complexity: O(1).
func (t *Tableau) Get(i, j int) rational.Q {
	if t.vals == nil {
		return rational.Zero()
	}
	return t.vals[cell{i, j}].v
}

// Set writes v at (i, j), including v == 0. A zero write does not
// compact the row/col index lists immediately; see package doc.
// Complexity: O(1) amortized.
func (t *Tableau) Set(i, j int, v rational.Q) {
	if t.vals == nil {
		t.vals = make(map[cell]slot)
	}
	c := cell{i, j}
	old, exists := t.vals[c]

	if v.IsZero() {
		if exists && !old.v.IsZero() {
			// Still referenced from both lists; mark both bits so the
			// next traversal of either compacts it away.
			t.vals[c] = slot{v: rational.Zero(), state: inRowList | inColList}
		}
		return
	}

	if !exists {
		t.reserveRow(i)
		t.rows[i] = append(t.rows[i], j)
		t.reserveCol(j)
		t.cols[j] = append(t.cols[j], i)
		t.vals[c] = slot{v: v, state: inRowList | inColList}
		return
	}

	if old.v.IsZero() {
		// Reviving a tombstoned cell: re-list it on whichever side
		// already compacted it away.
		if old.state&inRowList == 0 {
			t.reserveRow(i)
			t.rows[i] = append(t.rows[i], j)
		}
		if old.state&inColList == 0 {
			t.reserveCol(j)
			t.cols[j] = append(t.cols[j], i)
		}
	}
	t.vals[c] = slot{v: v, state: inRowList | inColList}
}

// Row returns the current non-zero entries of row i, compacting the
// row's internal index list as a side effect: after Row returns, the
// list contains exactly the positions of the entries it yielded. This
// also satisfies the mutation-during-iteration contract by
// materialising the result before the caller starts rewriting the row.
// Complexity: O(len of row i's index list, including tombstones).
func (t *Tableau) Row(i int) []Entry {
	t.reserveRow(i)
	list := t.rows[i]
	out := make([]Entry, 0, len(list))
	w := 0
	for _, j := range list {
		c := cell{i, j}
		s := t.vals[c]
		if s.v.IsZero() {
			s.state &^= inRowList
			if s.state == 0 {
				delete(t.vals, c)
			} else {
				t.vals[c] = s
			}
			continue
		}
		list[w] = j
		w++
		out = append(out, Entry{Pos: j, Val: s.v})
	}
	t.rows[i] = list[:w]
	return out
}

// Col returns the current non-zero entries of column j, symmetric to Row.
// Complexity: O(len of column j's index list, including tombstones).
func (t *Tableau) Col(j int) []Entry {
	t.reserveCol(j)
	list := t.cols[j]
	out := make([]Entry, 0, len(list))
	w := 0
	for _, i := range list {
		c := cell{i, j}
		s := t.vals[c]
		if s.v.IsZero() {
			s.state &^= inColList
			if s.state == 0 {
				delete(t.vals, c)
			} else {
				t.vals[c] = s
			}
			continue
		}
		list[w] = i
		w++
		out = append(out, Entry{Pos: i, Val: s.v})
	}
	t.cols[j] = list[:w]
	return out
}

// NRows returns the number of rows ever reserved in the tableau (the
// highest row index passed to ReserveRow or Row, or given a non-zero
// value by Set, plus one).
// Complexity: O(1).
func (t *Tableau) NRows() int {
	return t.nRows
}
