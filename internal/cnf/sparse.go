package cnf

// SparseVec is a sparse integer vector over 0-based variable indices,
// used by the three-hop tie-break heuristic's adjacency representation
// (spec §4.4). Any representation supporting indexed increment,
// iteration over nonzeros, and a sparse dot product satisfies the
// engine's needs; a Go map is the idiomatic choice here in place of the
// reference implementation's fixed-width Eigen::SparseVector.
type SparseVec map[int]int

// Inc increments the count at u by delta.
func (v SparseVec) Inc(u, delta int) {
	v[u] += delta
}

// ForEach calls f once per nonzero entry. Iteration order is
// unspecified; callers that need determinism must sort.
func (v SparseVec) ForEach(f func(u, count int)) {
	for u, c := range v {
		if c != 0 {
			f(u, c)
		}
	}
}

// Dot returns the sparse dot product of v and other.
func (v SparseVec) Dot(other SparseVec) int {
	small, big := v, other
	if len(other) < len(v) {
		small, big = other, v
	}
	total := 0
	for u, c := range small {
		total += c * big[u]
	}
	return total
}
