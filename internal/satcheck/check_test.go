package satcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbva-tools/sbva/internal/cnf"
	"github.com/sbva-tools/sbva/internal/satcheck"
)

func buildStore(numVars int, clauses [][]int) *cnf.Store {
	store := cnf.NewStore(numVars)
	for _, cl := range clauses {
		lits := make([]cnf.Literal, len(cl))
		for i, l := range cl {
			lits[i] = cnf.Literal(l)
		}
		if _, err := store.AddClause(lits); err != nil {
			panic(err)
		}
	}
	store.Finish()
	return store
}

func TestSatisfiableOnSatisfiableFormula(t *testing.T) {
	store := buildStore(2, [][]int{{1, 2}, {-1, 2}})
	assert.True(t, satcheck.Satisfiable(store))
}

func TestSatisfiableOnUnsatisfiableFormula(t *testing.T) {
	store := buildStore(1, [][]int{{1}, {-1}})
	assert.False(t, satcheck.Satisfiable(store))
}

func TestSameSatisfiabilityAgreesOnIdenticalFormulas(t *testing.T) {
	a := buildStore(2, [][]int{{1, 2}})
	b := buildStore(2, [][]int{{1, 2}})
	assert.True(t, satcheck.SameSatisfiability(a, b))
}

func TestSameSatisfiabilityDisagreesWhenOneIsUnsat(t *testing.T) {
	sat := buildStore(1, [][]int{{1}})
	unsat := buildStore(1, [][]int{{1}, {-1}})
	assert.False(t, satcheck.SameSatisfiability(sat, unsat))
}

func TestModelsOnVarsCountsExhaustively(t *testing.T) {
	// x1 != x2 has exactly two models over {x1, x2}: (T,F) and (F,T).
	store := buildStore(2, [][]int{{1, 2}, {-1, -2}})
	assert.Equal(t, 2, satcheck.ModelsOnVars(store, 2))
}
