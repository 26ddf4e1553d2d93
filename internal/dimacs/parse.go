// Package dimacs implements reading and writing the DIMACS CNF text
// format described in spec §6, translating directly to and from
// internal/cnf.Store rather than through an intermediate string
// representation.
package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/sbva-tools/sbva/internal/cnf"
)

// errFormat is the sentinel wrapped by the parser's own header and
// clause-structure errors. Clause-level errors from cnf.Store.AddClause
// (a zero or out-of-range literal) are returned as *cnf.FormatError
// instead.
var errFormat = errors.New("invalid DIMACS input")

var (
	commentLine = regexp.MustCompile(`^c`)
	headerLine  = regexp.MustCompile(`^p\s+cnf\s+(\d+)\s+(\d+)\s*$`)
)

// Parse reads a DIMACS CNF document from r and returns a finished
// Store (spec §9 Open Question: this is init_cnf + add_clause* +
// finish_cnf in one pass, sharing Store.AddClause with the incremental
// programmatic path in pkg/sbva).
func Parse(r io.Reader) (*cnf.Store, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	var store *cnf.Store
	var numVars, numClauses int
	seenHeader := false
	clausesSeen := 0

	var pending []cnf.Literal

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if commentLine.MatchString(line) {
			continue
		}
		if m := headerLine.FindStringSubmatch(line); m != nil {
			if seenHeader {
				return nil, fmt.Errorf("%w: duplicate header line", errFormat)
			}
			var err error
			numVars, err = strconv.Atoi(m[1])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid variable count %q", errFormat, m[1])
			}
			numClauses, err = strconv.Atoi(m[2])
			if err != nil {
				return nil, fmt.Errorf("%w: invalid clause count %q", errFormat, m[2])
			}
			store = cnf.NewStore(numVars)
			seenHeader = true
			continue
		}
		if !seenHeader {
			return nil, fmt.Errorf("%w: clause data before header", errFormat)
		}
		for _, tok := range strings.Fields(line) {
			lit, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: %q is not an integer", errFormat, tok)
			}
			if lit == 0 {
				if clausesSeen >= numClauses {
					return nil, fmt.Errorf("%w: more clauses than header declared (%d)", errFormat, numClauses)
				}
				if _, err := store.AddClause(pending); err != nil {
					return nil, err
				}
				clausesSeen++
				pending = pending[:0]
				continue
			}
			pending = append(pending, cnf.Literal(lit))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading DIMACS input: %w", err)
	}
	if !seenHeader {
		return nil, fmt.Errorf("%w: missing \"p cnf <vars> <clauses>\" header", errFormat)
	}
	if len(pending) != 0 {
		return nil, fmt.Errorf("%w: trailing clause not terminated by 0", errFormat)
	}
	if clausesSeen != numClauses {
		return nil, fmt.Errorf("%w: header declared %d clauses, found %d", errFormat, numClauses, clausesSeen)
	}
	store.Finish()
	return store, nil
}
