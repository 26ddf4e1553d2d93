package dimacs_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbva-tools/sbva/internal/cnf"
	"github.com/sbva-tools/sbva/internal/dimacs"
)

func TestParseValidDocument(t *testing.T) {
	doc := "c a comment\np cnf 3 2\n1 2 3 0\n-1 -2 0\n"
	store, err := dimacs.Parse(strings.NewReader(doc))
	assert.NoError(t, err)
	assert.Equal(t, 3, store.NumVars)
	assert.Equal(t, 2, store.EffectiveClauseCount())
}

func TestParseDeduplicatesRepeatedClauses(t *testing.T) {
	doc := "p cnf 2 2\n1 2 0\n2 1 0\n"
	store, err := dimacs.Parse(strings.NewReader(doc))
	assert.NoError(t, err)
	assert.Equal(t, 1, store.EffectiveClauseCount())
	assert.Equal(t, 2, store.NumClauses())
}

func TestParseMissingHeaderFails(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("1 2 3 0\n"))
	assert.Error(t, err)
}

func TestParseClauseCountMismatchFails(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p cnf 2 2\n1 2 0\n"))
	assert.Error(t, err)
}

func TestParseVariableOutOfRangeFails(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p cnf 2 1\n1 3 0\n"))
	assert.Error(t, err)
}

func TestParseTrailingUnterminatedClauseFails(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p cnf 2 1\n1 2"))
	assert.Error(t, err)
}

func TestClauseLevelErrorsAreFormatErrors(t *testing.T) {
	_, err := dimacs.Parse(strings.NewReader("p cnf 2 1\n1 3 0\n"))
	assert.Error(t, err)
	var fe *cnf.FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestParseWriteRoundTrip(t *testing.T) {
	doc := "p cnf 3 2\n1 2 3 0\n-1 -2 0\n"
	store, err := dimacs.Parse(strings.NewReader(doc))
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, dimacs.Write(&buf, store))

	reparsed, err := dimacs.Parse(strings.NewReader(buf.String()))
	assert.NoError(t, err)
	assert.Equal(t, store.EffectiveClauseCount(), reparsed.EffectiveClauseCount())
	assert.Equal(t, store.NumVars, reparsed.NumVars)
}
