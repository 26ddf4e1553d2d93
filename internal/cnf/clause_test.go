package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeLits(t *testing.T) {
	tests := []struct {
		name string
		in   []Literal
		want []Literal
	}{
		{"empty", nil, nil},
		{"single", []Literal{5}, []Literal{5}},
		{"already sorted unique", []Literal{-2, 1, 3}, []Literal{-2, 1, 3}},
		{"unsorted with duplicates", []Literal{3, 1, 3, -2, 1}, []Literal{-2, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeLits(append([]Literal(nil), tt.in...))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClauseFingerprintIsCachedAndStable(t *testing.T) {
	c := Clause{Lits: []Literal{1, -2, 3}}
	first := c.Fingerprint()
	second := c.Fingerprint()
	assert.Equal(t, first, second)

	other := Clause{Lits: []Literal{1, -2, 3}}
	assert.Equal(t, first, other.Fingerprint())
}

func TestClauseWithout(t *testing.T) {
	c := Clause{Lits: []Literal{-3, 1, 4}}
	assert.Equal(t, []Literal{-3, 4}, c.Without(1))
}

func TestEqualLits(t *testing.T) {
	assert.True(t, equalLits([]Literal{1, 2}, []Literal{1, 2}))
	assert.False(t, equalLits([]Literal{1, 2}, []Literal{1, 3}))
	assert.False(t, equalLits([]Literal{1, 2}, []Literal{1}))
}
