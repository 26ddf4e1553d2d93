package sbva

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbva-tools/sbva/internal/cnf"
)

func TestSortLitsReturnsAscendingCopyWithoutMutatingInput(t *testing.T) {
	in := []cnf.Literal{3, -1, 2}
	out := sortLits(in)

	assert.Equal(t, []cnf.Literal{-1, 2, 3}, out)
	assert.Equal(t, []cnf.Literal{3, -1, 2}, in)
}

func TestReplaceEmitsDefinitionBodyAndDeletesSubsumedClauses(t *testing.T) {
	// Matrix: pivot=1, Mlit={1,2,3}, Mcls={{1,4},{1,5}}, fully discovered
	// by hand: every {x,4}/{x,5} pair for x in 1..3 gets subsumed.
	e := newTestEngine(5, [][]int{
		{1, 4}, {1, 5},
		{2, 4}, {2, 5},
		{3, 4}, {3, 5},
	})

	mlit := []cnf.Literal{1, 2, 3}
	idx14 := findClauseIndex(t, e.store, []cnf.Literal{1, 4})
	idx15 := findClauseIndex(t, e.store, []cnf.Literal{1, 5})
	mclsFinal := []int{idx14, idx15}

	toRemove := []removal{}
	for _, row := range [][]cnf.Literal{{1, 4}, {2, 4}, {3, 4}, {1, 5}, {2, 5}, {3, 5}} {
		toRemove = append(toRemove, removal{clauseIdx: findClauseIndex(t, e.store, row), tag: 0})
	}

	touched := e.replace(mlit, mclsFinal, toRemove)

	assert.Equal(t, 6, e.store.NumVars)
	newVar := cnf.Literal(6)

	rows := allClauses(e.store)
	// Definition clauses (m, f) have f positive; body clauses (¬f, rest)
	// have f negative (spec.md §4.5 steps 2-4).
	assert.Contains(t, rows, clauseKey([]cnf.Literal{1, newVar}))
	assert.Contains(t, rows, clauseKey([]cnf.Literal{2, newVar}))
	assert.Contains(t, rows, clauseKey([]cnf.Literal{3, newVar}))
	assert.Contains(t, rows, clauseKey([]cnf.Literal{newVar.Negate(), 4}))
	assert.Contains(t, rows, clauseKey([]cnf.Literal{newVar.Negate(), 5}))

	for _, r := range toRemove {
		assert.True(t, e.store.Clause(r.clauseIdx).Deleted)
	}

	assert.Contains(t, touched, newVar)
	assert.Contains(t, touched, cnf.Literal(1))
	assert.Contains(t, touched, cnf.Literal(4))

	// touched must be sorted ascending (spec §8, Determinism).
	for i := 1; i < len(touched); i++ {
		assert.Less(t, int(touched[i-1]), int(touched[i]))
	}
}

func TestReplaceAddsBlockingClauseWhenPreservingModelCount(t *testing.T) {
	e := newTestEngine(5, [][]int{
		{1, 4}, {1, 5},
		{2, 4}, {2, 5},
		{3, 4}, {3, 5},
	})
	e.cfg.PreserveModelCount = true

	mlit := []cnf.Literal{1, 2, 3}
	mclsFinal := []int{
		findClauseIndex(t, e.store, []cnf.Literal{1, 4}),
		findClauseIndex(t, e.store, []cnf.Literal{1, 5}),
	}
	e.replace(mlit, mclsFinal, nil)

	newVar := cnf.Literal(e.store.NumVars)
	rows := allClauses(e.store)
	// Blocking clause (¬f, ¬m1, ..., ¬mk) has f negative too.
	assert.Contains(t, rows, clauseKey([]cnf.Literal{newVar.Negate(), -3, -2, -1}))
}

func findClauseIndex(t *testing.T, store *cnf.Store, lits []cnf.Literal) int {
	t.Helper()
	found := -1
	store.Walk(func(idx int, c *cnf.Clause) {
		if found >= 0 || len(c.Lits) != len(lits) {
			return
		}
		for i, l := range lits {
			if c.Lits[i] != l {
				return
			}
		}
		found = idx
	})
	if found < 0 {
		t.Fatalf("no clause matching %v found", lits)
	}
	return found
}

func allClauses(store *cnf.Store) map[string]bool {
	out := make(map[string]bool)
	store.Walk(func(_ int, c *cnf.Clause) {
		out[clauseKey(c.Lits)] = true
	})
	return out
}

func clauseKey(lits []cnf.Literal) string {
	key := ""
	for _, l := range lits {
		key += l.String() + ","
	}
	return key
}
