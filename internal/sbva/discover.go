package sbva

import (
	"sort"

	"github.com/sbva-tools/sbva/internal/cnf"
)

// reduction is the profitability metric of spec §4.3 step 4:
// reduction(L, C) = L*C - L - C.
func reduction(lits, clauses int) int {
	return lits*clauses - lits - clauses
}

// removal pairs a clause index slated for deletion with the positional
// tag (within the pivot's original occurrence list) of the matrix row
// it belongs to. Only rows whose tag survives to the final Mcls_id are
// actually deleted (spec §4.3).
type removal struct {
	clauseIdx int
	tag       int
}

// matchEntry records one symmetric-difference probe match found while
// scanning a row's partner clauses: candidate literal x, the partner
// clause D that produced it, and the position within the current Mcls
// of the row C that produced it.
type matchEntry struct {
	lit      cnf.Literal
	partner  int
	rowIndex int
}

// setDiff returns the literals in a but not in b (a and b both sorted
// ascending), stopping early once more than maxDiff literals have been
// collected, or nil when every literal of a is in b. Mirrors clause_sub
// in the reference implementation.
func setDiff(a, b []cnf.Literal, maxDiff int) []cnf.Literal {
	diff := make([]cnf.Literal, 0, maxDiff+1)
	i, j := 0, 0
	for i < len(a) && j < len(b) && len(diff) <= maxDiff {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			diff = append(diff, a[i])
			i++
		default:
			j++
		}
	}
	for i < len(a) && len(diff) <= maxDiff {
		diff = append(diff, a[i])
		i++
	}
	if len(diff) == 0 {
		return nil
	}
	return diff
}

// leastFrequentExcluding returns the literal of c.Lits (other than
// exclude) with the smallest effective occurrence count, breaking ties
// by first-encountered order (c.Lits is already sorted).
func (e *Engine) leastFrequentExcluding(c *cnf.Clause, exclude cnf.Literal) (cnf.Literal, bool) {
	var lmin cnf.Literal
	lminCount := 0
	found := false
	for _, lit := range c.Lits {
		if lit == exclude {
			continue
		}
		count := e.store.EffectiveCount(lit)
		if !found || count < lminCount {
			lmin, lminCount, found = lit, count, true
		}
	}
	return lmin, found
}

// discover runs the matrix-discovery loop for pivot literal l,
// returning the final (Mlit, Mcls, Mcls_id) and the filtered set of
// clauses to remove if the result clears the profitability gate (spec
// §4.3).
//
// Mcls always holds indices of clauses that still contain pivot
// itself: each outer iteration only narrows the row set down to those
// whose rest also matches the newly discovered column literal, via a
// same-row partner clause (which substitutes that column literal for
// pivot). The partner clause discovered in each round is recorded in
// toRemove, tagged with the row's original position, while Mcls keeps
// pointing at the pivot-bearing row clause throughout.
func (e *Engine) discover(pivot cnf.Literal) (mlit []cnf.Literal, mcls, mclsID []int, toRemove []removal, profitable bool) {
	mlit = []cnf.Literal{pivot}

	occ := e.store.Occurrences(pivot)
	mcls = make([]int, 0, len(occ))
	mclsID = make([]int, 0, len(occ))
	toRemove = make([]removal, 0, len(occ))
	for i, ci := range occ {
		if e.store.Clause(ci).Deleted {
			continue
		}
		mcls = append(mcls, ci)
		mclsID = append(mclsID, i)
		toRemove = append(toRemove, removal{clauseIdx: ci, tag: i})
	}

	heuristicCache := make(map[cnf.Literal]int)

	for {
		entries := make([]matchEntry, 0, len(mcls))
		bucket := make([]cnf.Literal, 0, len(mcls))
		work := int64(0)

		for row, ci := range mcls {
			clause := e.store.Clause(ci)
			work++
			lmin, ok := e.leastFrequentExcluding(clause, pivot)
			if !ok {
				continue // singleton clause {pivot}: no partner possible
			}
			for _, di := range e.store.Occurrences(lmin) {
				other := e.store.Clause(di)
				if other.Deleted {
					continue
				}
				if len(other.Lits) != len(clause.Lits) {
					continue
				}
				work++
				diff := setDiff(clause.Lits, other.Lits, 2)
				if len(diff) != 1 || diff[0] != pivot {
					continue
				}
				back := setDiff(other.Lits, clause.Lits, 2)
				if len(back) != 1 {
					continue
				}
				x := back[0]
				if containsLit(mlit, x) {
					continue
				}
				entries = append(entries, matchEntry{lit: x, partner: di, rowIndex: row})
				bucket = append(bucket, x)
			}
		}
		e.budget.chargeSteps(work)

		lmax, lmaxCount, ties := bucketize(bucket)
		if lmaxCount == 0 {
			break
		}

		currentReduction := reduction(len(mlit), len(mcls))
		newReduction := reduction(len(mlit)+1, lmaxCount)
		if newReduction <= currentReduction {
			break
		}
		if e.cfg.ClauseCutoff > 0 && lmaxCount < e.cfg.ClauseCutoff {
			break
		}
		if e.cfg.LitCutoff > 0 && len(mlit)+1 < e.cfg.LitCutoff {
			break
		}

		if len(ties) > 1 && e.tiebreak == ThreeHop {
			lmax = e.breakTie(pivot, ties, heuristicCache)
		}

		mlit = append(mlit, lmax)

		newMcls := make([]int, 0, lmaxCount)
		newMclsID := make([]int, 0, lmaxCount)
		for _, me := range entries {
			if me.lit != lmax {
				continue
			}
			newMcls = append(newMcls, mcls[me.rowIndex])
			newMclsID = append(newMclsID, mclsID[me.rowIndex])
			toRemove = append(toRemove, removal{clauseIdx: me.partner, tag: mclsID[me.rowIndex]})
		}
		mcls, mclsID = newMcls, newMclsID
	}

	if len(mlit) == 1 {
		return mlit, mcls, mclsID, nil, false
	}
	if len(mlit) <= 2 && len(mcls) <= 2 {
		return mlit, mcls, mclsID, nil, false
	}

	valid := make(map[int]bool, len(mclsID))
	for _, id := range mclsID {
		valid[id] = true
	}
	filtered := toRemove[:0:0]
	for _, r := range toRemove {
		if valid[r.tag] {
			filtered = append(filtered, r)
		}
	}
	return mlit, mcls, mclsID, filtered, true
}

func containsLit(lits []cnf.Literal, l cnf.Literal) bool {
	for _, x := range lits {
		if x == l {
			return true
		}
	}
	return false
}

// bucketize sorts lits and returns the most frequent value (lmax), its
// count, and the set of values tied for that count (spec §4.3 step 3).
func bucketize(lits []cnf.Literal) (lmax cnf.Literal, lmaxCount int, ties []cnf.Literal) {
	sorted := append([]cnf.Literal(nil), lits...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	for i := 0; i < len(sorted); {
		lit := sorted[i]
		count := 0
		for i < len(sorted) && sorted[i] == lit {
			count++
			i++
		}
		switch {
		case count > lmaxCount:
			lmax, lmaxCount = lit, count
			ties = ties[:0]
			ties = append(ties, lit)
		case count == lmaxCount && lmaxCount > 0:
			ties = append(ties, lit)
		}
	}
	return lmax, lmaxCount, ties
}
