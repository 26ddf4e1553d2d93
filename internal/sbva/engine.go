package sbva

import (
	"github.com/sirupsen/logrus"

	"github.com/sbva-tools/sbva/internal/cnf"
	"github.com/sbva-tools/sbva/internal/proof"
)

// Engine drives the priority-queue-ordered matrix-discovery and
// replacement loop over a single Store (spec §4.2). An Engine is
// single-use: construct one per Run.
type Engine struct {
	store *cnf.Store
	proof *proof.Log
	cfg   Config
	log   *logrus.Entry

	budget       *budgetGovernor
	queue        *litQueue
	tiebreak     Tiebreak
	replacements int
}

// NewEngine builds an Engine over store, logging proof records to
// proofLog (a no-op log if proof generation was not requested) and
// tagging every log line with the component name. A nil log falls
// back to logrus's standard logger.
func NewEngine(store *cnf.Store, proofLog *proof.Log, cfg Config, log *logrus.Entry) *Engine {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{
		store:  store,
		proof:  proofLog,
		cfg:    cfg,
		log:    log.WithField("component", "sbva-engine"),
		budget: newBudgetGovernor(cfg),
		queue:  newLitQueue(),
	}
}

// Replacements returns the number of successful substitutions
// performed by the most recent Run.
func (e *Engine) Replacements() int {
	return e.replacements
}

// Run executes the discovery/replacement loop to exhaustion or until
// the budget governor calls a stop, using tb to break ties among
// equally-profitable candidate literals. It returns the number of
// replacements performed. A non-nil error indicates an internal
// invariant violation (spec.md §7), never a malformed input — those
// are rejected earlier, at ingestion.
func (e *Engine) Run(tb Tiebreak) (replacements int, err error) {
	defer func() {
		if r := recover(); r != nil {
			iv, ok := r.(*cnf.InvariantViolation)
			if !ok {
				panic(r)
			}
			err = iv
		}
	}()

	e.tiebreak = tb
	e.seedQueue()

	for !e.budget.stop() {
		entry, ok := e.queue.pop()
		if !ok {
			break
		}
		if entry.count != e.store.EffectiveCount(entry.lit) {
			continue // stale entry: a fresher one was pushed when the count changed
		}
		if entry.count < 2 {
			continue // a literal in fewer than two clauses can never seed a profitable matrix
		}

		mlit, mcls, _, toRemove, profitable := e.discover(entry.lit)
		e.budget.chargeSteps(1)
		if !profitable {
			continue
		}

		e.log.WithFields(logrus.Fields{
			"pivot":   int(entry.lit),
			"literals": len(mlit),
			"clauses":  len(mcls),
		}).Debug("replacing matched submatrix")

		touched := e.replace(mlit, mcls, toRemove)
		e.budget.recordReplacement()
		e.replacements++

		for _, lit := range touched {
			if count := e.store.EffectiveCount(lit); count > 0 {
				e.queue.push(count, lit)
			}
		}
	}

	e.log.WithField("replacements", e.replacements).Info("run complete")
	return e.replacements, nil
}

// seedQueue populates the priority queue with every literal that
// currently occurs in at least one clause, ordered by effective
// occurrence count (spec §4.2, initial population).
func (e *Engine) seedQueue() {
	for v := 1; v <= e.store.NumVars; v++ {
		for _, lit := range [2]cnf.Literal{cnf.Literal(v), cnf.Literal(-v)} {
			if count := e.store.EffectiveCount(lit); count > 0 {
				e.queue.push(count, lit)
			}
		}
	}
}
