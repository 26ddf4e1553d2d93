package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sbva-tools/sbva/internal/cnf"
)

// Write serializes store as DIMACS CNF text (spec §6): the header
// reflects the possibly-grown variable count and the effective clause
// count, and clauses are emitted in store (insertion) order with
// deleted clauses skipped.
func Write(w io.Writer, store *cnf.Store) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", store.NumVars, store.EffectiveClauseCount()); err != nil {
		return err
	}
	var werr error
	store.Walk(func(_ int, c *cnf.Clause) {
		if werr != nil {
			return
		}
		for _, lit := range c.Lits {
			if _, err := fmt.Fprintf(bw, "%d ", int(lit)); err != nil {
				werr = err
				return
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			werr = err
			return
		}
	})
	if werr != nil {
		return werr
	}
	return bw.Flush()
}
