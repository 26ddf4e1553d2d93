package cnf

// Store owns every clause (original and synthesized) in an SBVA run. A
// clause's index into Store is stable for its lifetime; removal is
// always logical (Clause.Deleted), never a slice compaction, so that
// the occurrence index and adjacency vectors can keep holding plain
// integer indices instead of pointers (spec §3, "Cyclic references").
type Store struct {
	NumVars int

	clauses    []Clause
	adjDeleted int

	// index maps a literal's slot (see slot) to the ordered list of
	// clause indices that literal appears in. Entries are never
	// eagerly removed on deletion; effective membership is index
	// length plus countAdjust.
	index [][]int

	// countAdjust holds a per-slot delta applied on top of len(index[slot])
	// to account for lazily deleted clauses without compacting index.
	countAdjust []int

	// dupCache suppresses exact-duplicate clauses during ingestion. It
	// is destroyed by Finish, after which AddClause may no longer be
	// called.
	dupCache map[uint32][]int

	// adjacency holds the per-variable sparse adjacency vector used by
	// the three-hop tie-break heuristic. A nil entry means "not built
	// yet, build lazily."
	adjacency []SparseVec
}

// NewStore allocates a Store for a CNF over variables 1..=numVars.
func NewStore(numVars int) *Store {
	s := &Store{
		NumVars:     numVars,
		index:       make([][]int, 2*numVars),
		countAdjust: make([]int, 2*numVars),
		dupCache:    make(map[uint32][]int),
		adjacency:   make([]SparseVec, numVars),
	}
	return s
}

// Ingesting reports whether the duplicate cache is still live, i.e.
// Finish has not yet been called.
func (s *Store) Ingesting() bool {
	return s.dupCache != nil
}

// AddClause validates, normalizes, and inserts a clause during
// ingestion. It is the single insertion primitive shared by both the
// bulk DIMACS parser and the incremental programmatic API (spec §9,
// Open Question: the two paths must be identical by construction). If
// the normalized clause already exists, the newly appended slot is
// marked deleted and the duplicate is otherwise ignored, preserving a
// stable index for every clause DIMACS line ever contributed.
func (s *Store) AddClause(lits []Literal) (int, error) {
	if !s.Ingesting() {
		return 0, formatErrorf("AddClause called after Finish")
	}
	normalized := make([]Literal, len(lits))
	copy(normalized, lits)
	for _, l := range normalized {
		if l == 0 {
			return 0, formatErrorf("literal 0 is not valid inside a clause")
		}
		if l.Var() > s.NumVars {
			return 0, formatErrorf("literal %d exceeds declared variable count %d", int(l), s.NumVars)
		}
	}
	normalized = normalizeLits(normalized)

	idx := len(s.clauses)
	c := Clause{Lits: normalized}
	s.clauses = append(s.clauses, c)

	fp := s.clauses[idx].Fingerprint()
	for _, other := range s.dupCache[fp] {
		if equalLits(s.clauses[other].Lits, normalized) {
			s.clauses[idx].Deleted = true
			s.adjDeleted++
			return idx, nil
		}
	}
	s.dupCache[fp] = append(s.dupCache[fp], idx)
	s.registerOccurrences(idx, normalized)
	return idx, nil
}

// Finish destroys the duplicate cache, ending the ingestion phase.
func (s *Store) Finish() {
	s.dupCache = nil
}

// AppendSynthesized appends a clause produced by the replacement step
// (spec §4.5), which by construction never duplicates an existing
// clause, so it bypasses the duplicate cache entirely and registers
// directly into the occurrence index. lits must already be normalized
// by the caller (replacement always builds already-sorted sequences).
func (s *Store) AppendSynthesized(lits []Literal) int {
	assertInvariant(len(lits) > 0, "AppendSynthesized called with an empty clause")
	idx := len(s.clauses)
	s.clauses = append(s.clauses, Clause{Lits: lits})
	s.registerOccurrences(idx, lits)
	return idx
}

func (s *Store) registerOccurrences(idx int, lits []Literal) {
	for _, l := range lits {
		sl := slot(l)
		s.index[sl] = append(s.index[sl], idx)
	}
}

// GrowVars extends every structure sized by variable count up to
// newNumVars, used when a replacement allocates a fresh variable.
func (s *Store) GrowVars(newNumVars int) {
	if newNumVars <= s.NumVars {
		return
	}
	grownIndex := make([][]int, 2*newNumVars)
	copy(grownIndex, s.index)
	s.index = grownIndex

	grownAdjust := make([]int, 2*newNumVars)
	copy(grownAdjust, s.countAdjust)
	s.countAdjust = grownAdjust

	grownAdjacency := make([]SparseVec, newNumVars)
	copy(grownAdjacency, s.adjacency)
	s.adjacency = grownAdjacency

	s.NumVars = newNumVars
}

// DeleteClause marks clause idx deleted, decrements the count adjuster
// for each of its literals, and returns the literals it held (for proof
// logging and priority-queue refresh). It is a no-op returning nil if
// the clause is already deleted.
func (s *Store) DeleteClause(idx int) []Literal {
	c := &s.clauses[idx]
	if c.Deleted {
		return nil
	}
	c.Deleted = true
	s.adjDeleted++
	for _, l := range c.Lits {
		s.countAdjust[slot(l)]--
	}
	return c.Lits
}

// Clause returns a pointer to clause idx.
func (s *Store) Clause(idx int) *Clause {
	return &s.clauses[idx]
}

// NumClauses returns the total number of clause slots ever allocated,
// including deleted ones.
func (s *Store) NumClauses() int {
	return len(s.clauses)
}

// EffectiveClauseCount returns the number of non-deleted clauses.
func (s *Store) EffectiveClauseCount() int {
	return len(s.clauses) - s.adjDeleted
}

// Occurrences returns the raw (possibly stale) list of clause indices
// registered for lit.
func (s *Store) Occurrences(lit Literal) []int {
	return s.index[slot(lit)]
}

// EffectiveCount returns the number of non-deleted clauses containing
// lit: len(Occurrences(lit)) adjusted by the lazily-accumulated deletion
// delta.
func (s *Store) EffectiveCount(lit Literal) int {
	return len(s.index[slot(lit)]) + s.countAdjust[slot(lit)]
}

// InvalidateAdjacency clears the cached adjacency vector for the
// variable underlying lit, forcing a lazy rebuild on next use.
func (s *Store) InvalidateAdjacency(lit Literal) {
	s.adjacency[varIndex(lit.Var())] = nil
}

// AdjacencyOf returns the sparse adjacency vector for variable v,
// building it lazily the first time it's requested after invalidation
// (spec §4.4): for every non-deleted clause containing either polarity
// of v, every literal's variable (both polarities collapsed) gets its
// count incremented.
func (s *Store) AdjacencyOf(v int) SparseVec {
	idx := varIndex(v)
	if s.adjacency[idx] != nil {
		return s.adjacency[idx]
	}
	vec := make(SparseVec)
	for _, lit := range [2]Literal{Literal(v), Literal(-v)} {
		for _, ci := range s.index[slot(lit)] {
			c := &s.clauses[ci]
			if c.Deleted {
				continue
			}
			for _, other := range c.Lits {
				vec.Inc(varIndex(other.Var()), 1)
			}
		}
	}
	s.adjacency[idx] = vec
	return vec
}

// Walk calls f once for every non-deleted clause, in store order
// (insertion order), which is also DIMACS output order (spec §6).
func (s *Store) Walk(f func(idx int, c *Clause)) {
	for i := range s.clauses {
		if !s.clauses[i].Deleted {
			f(i, &s.clauses[i])
		}
	}
}
