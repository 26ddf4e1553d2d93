package cnf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbva-tools/sbva/internal/cnf"
)

func lits(vs ...int) []cnf.Literal {
	out := make([]cnf.Literal, len(vs))
	for i, v := range vs {
		out[i] = cnf.Literal(v)
	}
	return out
}

func TestAddClauseNormalizesAndDeduplicates(t *testing.T) {
	s := cnf.NewStore(3)

	idx, err := s.AddClause(lits(3, 1, 2, 1))
	assert.NoError(t, err)
	assert.Equal(t, lits(1, 2, 3), s.Clause(idx).Lits)

	dupIdx, err := s.AddClause(lits(2, 1, 3))
	assert.NoError(t, err)
	assert.True(t, s.Clause(dupIdx).Deleted)
	assert.Equal(t, 1, s.EffectiveClauseCount())
}

func TestAddClauseRejectsInvalidLiterals(t *testing.T) {
	s := cnf.NewStore(2)

	_, err := s.AddClause(lits(0, 1))
	assert.Error(t, err)

	_, err = s.AddClause(lits(1, 5))
	assert.Error(t, err)
}

func TestAddClauseAfterFinishFails(t *testing.T) {
	s := cnf.NewStore(1)
	s.Finish()
	_, err := s.AddClause(lits(1))
	assert.Error(t, err)
}

func TestDeleteClauseAdjustsEffectiveCounts(t *testing.T) {
	s := cnf.NewStore(2)
	idx, err := s.AddClause(lits(1, 2))
	assert.NoError(t, err)
	_, err = s.AddClause(lits(1, -2))
	assert.NoError(t, err)
	s.Finish()

	assert.Equal(t, 2, s.EffectiveCount(cnf.Literal(1)))

	removed := s.DeleteClause(idx)
	assert.Equal(t, lits(1, 2), removed)
	assert.Equal(t, 1, s.EffectiveCount(cnf.Literal(1)))
	assert.Equal(t, 0, s.EffectiveCount(cnf.Literal(2)))
	assert.Equal(t, 1, s.EffectiveClauseCount())

	// deleting twice is a no-op
	assert.Nil(t, s.DeleteClause(idx))
	assert.Equal(t, 1, s.EffectiveCount(cnf.Literal(1)))
}

func TestAppendSynthesizedBypassesDuplicateCache(t *testing.T) {
	s := cnf.NewStore(2)
	_, err := s.AddClause(lits(1, 2))
	assert.NoError(t, err)
	s.Finish()

	idx := s.AppendSynthesized(lits(1, 2))
	assert.False(t, s.Clause(idx).Deleted)
	assert.Equal(t, 2, s.EffectiveClauseCount())
}

func TestAppendSynthesizedPanicsWithInvariantViolationOnEmptyClause(t *testing.T) {
	s := cnf.NewStore(1)
	s.Finish()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for an empty synthesized clause")
		}
		iv, ok := r.(*cnf.InvariantViolation)
		if !ok {
			t.Fatalf("expected *cnf.InvariantViolation, got %T", r)
		}
		assert.NotEmpty(t, iv.Error())
	}()
	s.AppendSynthesized(nil)
}

func TestGrowVarsPreservesExistingOccurrences(t *testing.T) {
	s := cnf.NewStore(1)
	_, err := s.AddClause(lits(1))
	assert.NoError(t, err)
	s.Finish()

	s.GrowVars(3)
	assert.Equal(t, 3, s.NumVars)
	assert.Equal(t, 1, s.EffectiveCount(cnf.Literal(1)))
	assert.Equal(t, 0, s.EffectiveCount(cnf.Literal(3)))

	idx := s.AppendSynthesized(lits(3, -1))
	assert.False(t, s.Clause(idx).Deleted)
}

func TestAdjacencyOfCountsCoOccurringVariables(t *testing.T) {
	s := cnf.NewStore(3)
	_, err := s.AddClause(lits(1, 2, 3))
	assert.NoError(t, err)
	_, err = s.AddClause(lits(1, -2))
	assert.NoError(t, err)
	s.Finish()

	adj := s.AdjacencyOf(1)
	assert.Equal(t, 2, adj[0]) // var 1 co-occurs with itself across both clauses
	assert.Equal(t, 2, adj[1]) // var 2 appears (either polarity) in both clauses too
	assert.Equal(t, 1, adj[2]) // var 3 only appears in the first clause
}

func TestInvalidateAdjacencyForcesRebuild(t *testing.T) {
	s := cnf.NewStore(2)
	_, err := s.AddClause(lits(1, 2))
	assert.NoError(t, err)
	s.Finish()

	first := s.AdjacencyOf(1)
	assert.Equal(t, 1, first[1])

	idx := s.AppendSynthesized(lits(1, -2))
	s.InvalidateAdjacency(cnf.Literal(1))
	s.InvalidateAdjacency(cnf.Literal(-2))
	rebuilt := s.AdjacencyOf(1)
	assert.Equal(t, 2, rebuilt[0])
	_ = idx
}

func TestWalkSkipsDeletedClausesInInsertionOrder(t *testing.T) {
	s := cnf.NewStore(2)
	first, err := s.AddClause(lits(1))
	assert.NoError(t, err)
	_, err = s.AddClause(lits(2))
	assert.NoError(t, err)
	s.Finish()
	s.DeleteClause(first)

	var seen [][]cnf.Literal
	s.Walk(func(_ int, c *cnf.Clause) {
		seen = append(seen, c.Lits)
	})
	assert.Equal(t, [][]cnf.Literal{lits(2)}, seen)
}
