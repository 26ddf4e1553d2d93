// Package sbva is the public, embeddable API for Structured Bounded
// Variable Addition: build a CNF incrementally or from a DIMACS
// stream, run the transformation, and emit the result and its proof.
package sbva

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/sbva-tools/sbva/internal/cnf"
	"github.com/sbva-tools/sbva/internal/dimacs"
	"github.com/sbva-tools/sbva/internal/proof"
	"github.com/sbva-tools/sbva/internal/sbva"
)

// Tiebreak selects the matrix-discovery loop's tie-breaking strategy.
type Tiebreak = sbva.Tiebreak

const (
	ThreeHop = sbva.ThreeHop
	None     = sbva.None
)

// Unbounded disables the step budget in a Config.
const Unbounded = sbva.Unbounded

// Config is the engine's tunable configuration, re-exported so callers
// never need to import internal/sbva directly.
type Config = sbva.Config

// DefaultConfig returns a Config with every optional feature off and
// no step, replacement, or time limit.
func DefaultConfig() Config {
	return sbva.DefaultConfig()
}

// CNF is a programmatically built or DIMACS-loaded formula, ready to
// be transformed by Run.
type CNF struct {
	store    *cnf.Store
	proof    *proof.Log
	log      *logrus.Entry
	finished bool
}

// New allocates a CNF over variables 1..=numVars.
func New(numVars int) *CNF {
	return &CNF{store: cnf.NewStore(numVars), log: logrus.NewEntry(logrus.StandardLogger())}
}

// FromDIMACS parses a DIMACS CNF stream into a ready-to-run CNF.
func FromDIMACS(r io.Reader) (*CNF, error) {
	store, err := dimacs.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("sbva: parsing dimacs input: %w", err)
	}
	return &CNF{store: store, log: logrus.NewEntry(logrus.StandardLogger()), finished: true}, nil
}

// SetLogger overrides the logger used for engine progress messages.
func (c *CNF) SetLogger(log *logrus.Entry) {
	c.log = log
}

// AddClause adds lits as a new clause while the CNF is still being
// built. It returns an error once Finish or Run has been called, or if
// lits contains an invalid literal.
func (c *CNF) AddClause(lits ...int) error {
	if c.finished {
		return fmt.Errorf("sbva: AddClause called after Finish")
	}
	converted := make([]cnf.Literal, len(lits))
	for i, l := range lits {
		converted[i] = cnf.Literal(l)
	}
	_, err := c.store.AddClause(converted)
	return err
}

// Finish ends the ingestion phase, after which no more clauses may be
// added via AddClause. FromDIMACS calls this implicitly.
func (c *CNF) Finish() {
	if !c.finished {
		c.store.Finish()
		c.finished = true
	}
}

// Run transforms the CNF in place according to cfg, breaking ties
// using tb, and returns the number of replacement steps performed.
// Run implicitly calls Finish if it has not already run. A non-nil
// error means an internal invariant was violated mid-run (spec.md §7);
// it is never returned for malformed input, which Finish/AddClause and
// FromDIMACS reject earlier.
func (c *CNF) Run(cfg Config, tb Tiebreak) (int, error) {
	c.Finish()
	proofLog := proof.NewLog(cfg.GenerateProof)
	engine := sbva.NewEngine(c.store, proofLog, cfg, c.log)
	replacements, err := engine.Run(tb)
	c.proof = proofLog
	return replacements, err
}

// NumVars returns the current variable count, including any variables
// introduced by Run.
func (c *CNF) NumVars() int {
	return c.store.NumVars
}

// NumClauses returns the number of live (non-deleted) clauses.
func (c *CNF) NumClauses() int {
	return c.store.EffectiveClauseCount()
}

// EmitCNF writes the current formula in DIMACS CNF text form.
func (c *CNF) EmitCNF(w io.Writer) error {
	return dimacs.Write(w, c.store)
}

// EmitProof writes the DRAT-like proof log accumulated by the most
// recent Run. It is empty unless Config.GenerateProof was set.
func (c *CNF) EmitProof(w io.Writer) error {
	if c.proof == nil {
		c.proof = proof.NewLog(false)
	}
	return c.proof.Write(w)
}

// GetCNF returns every live clause as a slice of literal slices, for
// callers that want to inspect or re-encode the result themselves
// rather than emit DIMACS text.
func (c *CNF) GetCNF() [][]int {
	out := make([][]int, 0, c.store.EffectiveClauseCount())
	c.store.Walk(func(_ int, cl *cnf.Clause) {
		lits := make([]int, len(cl.Lits))
		for i, l := range cl.Lits {
			lits[i] = int(l)
		}
		out = append(out, lits)
	})
	return out
}
