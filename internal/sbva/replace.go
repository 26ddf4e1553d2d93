package sbva

import (
	"sort"

	"github.com/sbva-tools/sbva/internal/cnf"
)

// sortLits returns a sorted copy of lits, the normal form every
// synthesized clause must be appended in (cnf.Store.AppendSynthesized
// trusts its caller to have already sorted).
func sortLits(lits []cnf.Literal) []cnf.Literal {
	out := append([]cnf.Literal(nil), lits...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// replace performs the Tseitin-style substitution of spec §4.5 for a
// discovered matrix (mlit, mclsFinal, toRemove): it allocates a fresh
// variable v, emits the definition and body clauses that let v stand
// in for the whole submatrix, optionally emits the model-count
// preservation clause, deletes every clause the matrix subsumed, and
// returns every literal whose effective count changed so the caller
// can refresh the priority queue.
//
// mlit's first entry is always the pivot literal discover was called
// with, and every clause still referenced in mclsFinal still contains
// that pivot literal (discover never swaps a row to its partner
// clause, only narrows the row set); the row's rest is therefore that
// clause's literals minus the pivot.
func (e *Engine) replace(mlit []cnf.Literal, mclsFinal []int, toRemove []removal) []cnf.Literal {
	pivot := mlit[0]

	restByIdx := make(map[int][]cnf.Literal, len(mclsFinal))
	for _, idx := range mclsFinal {
		restByIdx[idx] = e.store.Clause(idx).Without(pivot)
	}

	newVarNum := e.store.NumVars + 1
	e.store.GrowVars(newVarNum)
	v := cnf.Literal(newVarNum)

	touched := make(map[cnf.Literal]bool)
	markTouched := func(l cnf.Literal) {
		touched[l] = true
		touched[l.Negate()] = true
		e.store.InvalidateAdjacency(l)
	}
	markTouched(v)

	removedIdx := make(map[int]bool, len(toRemove))
	var deleted [][]cnf.Literal
	for _, r := range toRemove {
		if removedIdx[r.clauseIdx] {
			continue
		}
		removedIdx[r.clauseIdx] = true
		lits := e.store.DeleteClause(r.clauseIdx)
		if lits == nil {
			continue
		}
		deleted = append(deleted, lits)
		for _, l := range lits {
			markTouched(l)
		}
	}

	for _, li := range mlit {
		def := sortLits([]cnf.Literal{li, v})
		e.store.AppendSynthesized(def)
		// Proof record lists f (the new variable) first, per spec §4.5
		// step 2 — a different order than the stored normal form.
		e.proof.AddClause([]cnf.Literal{v, li})
		markTouched(li)
	}

	for _, idx := range mclsFinal {
		body := sortLits(append([]cnf.Literal{v.Negate()}, restByIdx[idx]...))
		e.store.AppendSynthesized(body)
		e.proof.AddClause(body)
		for _, l := range restByIdx[idx] {
			markTouched(l)
		}
	}

	if e.cfg.PreserveModelCount {
		blocking := make([]cnf.Literal, 0, len(mlit)+1)
		blocking = append(blocking, v.Negate())
		for _, li := range mlit {
			blocking = append(blocking, li.Negate())
		}
		blocking = sortLits(blocking)
		e.store.AppendSynthesized(blocking)
		e.proof.AddClause(blocking)
	}

	// Deletion records follow every addition, so each added clause is
	// logged while the clauses it replaces are still present.
	for _, lits := range deleted {
		e.proof.DeleteClause(lits)
	}

	out := make([]cnf.Literal, 0, len(touched))
	for l := range touched {
		out = append(out, l)
	}
	// Sorted so queue refresh order is a pure function of the matched
	// matrix, not of Go's randomized map iteration (spec §8, "Determinism").
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
