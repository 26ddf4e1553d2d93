// Package cnf implements the in-memory clause store, occurrence index,
// and adjacency structures that back the SBVA transformation engine.
package cnf

import "fmt"

// Literal is a nonzero signed integer: positive v asserts variable v,
// negative v asserts its negation. Zero never appears inside a clause;
// it is reserved for DIMACS' end-of-clause marker at the text boundary
// only (internal/dimacs strips it before literals reach this package).
type Literal int

// Var returns the variable index |l| >= 1.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Negative reports whether l asserts the negation of its variable.
func (l Literal) Negative() bool {
	return l < 0
}

// Negate returns the complementary literal.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int(l))
}

// slot encodes a literal into the index used by the occurrence index and
// count adjuster: slot 2(v-1) for the positive literal, 2(v-1)+1 for the
// negative one.
func slot(l Literal) int {
	v := l.Var()
	if l.Negative() {
		return 2*(v-1) + 1
	}
	return 2 * (v - 1)
}

// varIndex converts a 1-based variable number into a 0-based index, as
// used by the sparse adjacency vectors.
func varIndex(v int) int {
	return v - 1
}
