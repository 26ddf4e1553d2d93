package sbva

import "github.com/sbva-tools/sbva/internal/cnf"

// breakTie picks among literals tied for the largest bucket count using
// the three-hop heuristic of spec §4.4:
//
//	H(a, b) = sum over u with A(b)[u] > 0 of A(b)[u] * <A(u), A(a)>
//
// where a is the pivot and b ranges over the tied candidates, and A(x)
// is the sparse adjacency vector of x's underlying variable. The
// highest-scoring candidate wins; ties within the heuristic keep the
// first candidate encountered (matching the reference implementation's
// left-to-right scan).
//
// cache memoizes H(pivot, ·) per candidate literal across the calls
// made within a single outer iteration of the driver loop, since A(pivot)
// does not change until a replacement is actually performed.
func (e *Engine) breakTie(pivot cnf.Literal, candidates []cnf.Literal, cache map[cnf.Literal]int) cnf.Literal {
	best := candidates[0]
	bestScore := e.threeHopScore(pivot, best, cache)
	for _, c := range candidates[1:] {
		score := e.threeHopScore(pivot, c, cache)
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func (e *Engine) threeHopScore(pivot, candidate cnf.Literal, cache map[cnf.Literal]int) int {
	if score, ok := cache[candidate]; ok {
		return score
	}
	pivotAdj := e.store.AdjacencyOf(pivot.Var())
	candAdj := e.store.AdjacencyOf(candidate.Var())

	score := 0
	candAdj.ForEach(func(u, countAtU int) {
		if countAtU <= 0 {
			return
		}
		uAdj := e.store.AdjacencyOf(u + 1) // ForEach yields 0-based indices
		score += countAtU * uAdj.Dot(pivotAdj)
	})
	cache[candidate] = score
	return score
}
