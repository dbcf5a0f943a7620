// SPDX-License-Identifier: MIT
package tableau_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lpsimplex/rational"
	"github.com/katalvlaran/lpsimplex/tableau"
	"github.com/stretchr/testify/require"
)

func entryMap(es []tableau.Entry) map[int]rational.Q {
	m := make(map[int]rational.Q, len(es))
	for _, e := range es {
		m[e.Pos] = e.Val
	}
	return m
}

func TestGetDefaultsToZero(t *testing.T) {
	tb := tableau.New()
	require.True(t, tb.Get(0, 0).IsZero()) // never written
}

func TestSetGetRoundTrip(t *testing.T) {
	tb := tableau.New()
	tb.Set(1, 2, rational.FromInt(7))
	require.True(t, tb.Get(1, 2).Equal(rational.FromInt(7))) // last written value

	tb.Set(1, 2, rational.FromInt(3))
	require.True(t, tb.Get(1, 2).Equal(rational.FromInt(3))) // overwrite

	tb.Set(1, 2, rational.Zero())
	require.True(t, tb.Get(1, 2).IsZero()) // zeroed
}

func TestRowColIterationCompleteness(t *testing.T) {
	tb := tableau.New()
	tb.Set(0, 0, rational.FromInt(1))
	tb.Set(0, 1, rational.FromInt(2))
	tb.Set(0, 2, rational.FromInt(3))
	tb.Set(1, 0, rational.FromInt(4))

	row0 := entryMap(tb.Row(0))
	require.Len(t, row0, 3)
	require.True(t, row0[0].Equal(rational.FromInt(1)))
	require.True(t, row0[1].Equal(rational.FromInt(2)))
	require.True(t, row0[2].Equal(rational.FromInt(3)))

	col0 := entryMap(tb.Col(0))
	require.Len(t, col0, 2)
	require.True(t, col0[0].Equal(rational.FromInt(1)))
	require.True(t, col0[1].Equal(rational.FromInt(4)))
}

func TestLazyDeletionCompaction(t *testing.T) {
	tb := tableau.New()
	tb.Set(0, 0, rational.FromInt(1))
	tb.Set(0, 1, rational.FromInt(2))
	tb.Set(0, 2, rational.FromInt(3))

	tb.Set(0, 1, rational.Zero()) // tombstone middle entry

	row := entryMap(tb.Row(0))
	require.Len(t, row, 2)
	_, stillThere := row[1]
	require.False(t, stillThere) // zeroed entry excluded

	// A second traversal must yield exactly the same compacted result.
	row2 := entryMap(tb.Row(0))
	require.Len(t, row2, 2)
}

func TestReviveTombstonedCell(t *testing.T) {
	tb := tableau.New()
	tb.Set(0, 0, rational.FromInt(5))
	tb.Set(0, 1, rational.FromInt(6))
	tb.Set(0, 0, rational.Zero()) // tombstone, not yet compacted from either list

	// Revive before any traversal compacts it: state bits were still set,
	// so Set must not double-list the cell.
	tb.Set(0, 0, rational.FromInt(9))
	row := entryMap(tb.Row(0))
	require.Len(t, row, 2)
	require.True(t, row[0].Equal(rational.FromInt(9)))

	// Revive after compaction on one axis only.
	tb.Set(0, 1, rational.Zero())
	_ = tb.Row(0) // compacts row list, col list for j=1 still stale
	tb.Set(0, 1, rational.FromInt(11))
	row = entryMap(tb.Row(0))
	require.True(t, row[1].Equal(rational.FromInt(11)))
	col := entryMap(tb.Col(1))
	require.True(t, col[0].Equal(rational.FromInt(11)))
}

func TestMutationDuringRowIteration(t *testing.T) {
	tb := tableau.New()
	tb.Set(0, 0, rational.FromInt(1))
	tb.Set(0, 1, rational.FromInt(2))
	tb.Set(0, 2, rational.FromInt(3))

	snapshot := tb.Row(0) // materialised before any rewrite
	for _, e := range snapshot {
		tb.Set(0, e.Pos, e.Val.Mul(rational.FromInt(10)))
	}

	row := entryMap(tb.Row(0))
	require.True(t, row[0].Equal(rational.FromInt(10)))
	require.True(t, row[1].Equal(rational.FromInt(20)))
	require.True(t, row[2].Equal(rational.FromInt(30)))
}

func TestMutationDuringColIteration(t *testing.T) {
	tb := tableau.New()
	tb.Set(0, 0, rational.FromInt(1))
	tb.Set(1, 0, rational.FromInt(2))
	tb.Set(2, 0, rational.FromInt(3))

	snapshot := tb.Col(0)
	for _, e := range snapshot {
		tb.Set(e.Pos, 0, e.Val.Add(rational.FromInt(100)))
	}

	col := entryMap(tb.Col(0))
	require.True(t, col[0].Equal(rational.FromInt(101)))
	require.True(t, col[1].Equal(rational.FromInt(102)))
	require.True(t, col[2].Equal(rational.FromInt(103)))
}

func TestNRows(t *testing.T) {
	tb := tableau.New()
	require.Equal(t, 0, tb.NRows())
	tb.ReserveRow(2)
	require.Equal(t, 3, tb.NRows())
	tb.Set(5, 0, rational.One())
	require.Equal(t, 6, tb.NRows())
}

// TestRandomizedSetGetAgainstModel checks round-trip and iteration
// completeness against a dense reference model, under a sequence of
// random writes including repeated zeroing and revival of the same
// cells.
func TestRandomizedSetGetAgainstModel(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const rows, cols, steps = 4, 4, 500

	model := make(map[[2]int]rational.Q)
	tb := tableau.New()

	for s := 0; s < steps; s++ {
		i := rng.Intn(rows)
		j := rng.Intn(cols)
		v := rational.FromInt(int64(rng.Intn(11) - 5)) // includes zero

		tb.Set(i, j, v)
		if v.IsZero() {
			delete(model, [2]int{i, j})
		} else {
			model[[2]int{i, j}] = v
		}

		got := tb.Get(i, j)
		want, ok := model[[2]int{i, j}]
		if !ok {
			want = rational.Zero()
		}
		require.Truef(t, got.Equal(want), "step %d: Get(%d,%d)=%s want %s", s, i, j, got, want)
	}

	for i := 0; i < rows; i++ {
		row := entryMap(tb.Row(i))
		for j := 0; j < cols; j++ {
			want, ok := model[[2]int{i, j}]
			if !ok {
				_, present := row[j]
				require.False(t, present)
				continue
			}
			require.True(t, row[j].Equal(want))
		}
	}
}
