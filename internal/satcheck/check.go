// Package satcheck provides an external SAT-oracle check used only by
// tests to confirm that a transformed formula remains equisatisfiable
// with its input (spec §8). It is never imported by internal/sbva
// itself: the engine must never consult a SAT solver while running
// (spec §5, Non-goals).
package satcheck

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/sbva-tools/sbva/internal/cnf"
)

const satisfiable = 1

// Satisfiable reports whether store's current (non-deleted) clause set
// is satisfiable, using gini as an independent oracle.
func Satisfiable(store *cnf.Store) bool {
	g := gini.New()
	store.Walk(func(_ int, c *cnf.Clause) {
		for _, lit := range c.Lits {
			g.Add(z.Dimacs2Lit(int(lit)))
		}
		g.Add(z.LitNull)
	})
	return g.Solve() == satisfiable
}

// SameSatisfiability reports whether before and after agree on
// satisfiability, the property an SBVA run must always preserve.
func SameSatisfiability(before, after *cnf.Store) bool {
	return Satisfiable(before) == Satisfiable(after)
}

// ModelsOnVars counts the satisfying assignments of store restricted
// to variables 1..=limit, used by tests that exercise
// PreserveModelCount. It brute-forces by enumerating every assignment
// to the first limit variables and asking gini whether each extends to
// a full model, so it is only suitable for small fixtures.
func ModelsOnVars(store *cnf.Store, limit int) int {
	count := 0
	total := 1 << uint(limit)
	for mask := 0; mask < total; mask++ {
		g := gini.New()
		store.Walk(func(_ int, c *cnf.Clause) {
			for _, lit := range c.Lits {
				g.Add(z.Dimacs2Lit(int(lit)))
			}
			g.Add(z.LitNull)
		})
		assumptions := make([]z.Lit, 0, limit)
		for v := 1; v <= limit; v++ {
			if mask&(1<<uint(v-1)) != 0 {
				assumptions = append(assumptions, z.Dimacs2Lit(v))
			} else {
				assumptions = append(assumptions, z.Dimacs2Lit(-v))
			}
		}
		g.Assume(assumptions...)
		if g.Solve() == satisfiable {
			count++
		}
	}
	return count
}
