// Package sbva implements the Structured Bounded Variable Addition
// engine: the priority-queue-driven matrix-discovery loop, the
// three-hop tie-break heuristic, the replacement step, and the budget
// governor (spec §4).
package sbva

import "time"

// Tiebreak selects how the matrix-discovery loop breaks ties between
// candidate literals that extend Mlit by the same bucket count.
type Tiebreak int

const (
	// ThreeHop selects the tie winner by the three-hop adjacency score
	// (spec §4.4); this is SBVA's default and the reason it finds
	// denser matrices than plain BVA.
	ThreeHop Tiebreak = iota
	// None retains the first tie encountered, equivalent to the
	// original (non-structured) BVA.
	None
)

// Unbounded marks a Config.Steps value that never triggers the step
// budget, as opposed to 0 which stops the driver before its first
// replacement (spec §8, "Idempotence under budget-zero").
const Unbounded int64 = -1

// Config carries every tunable knob named in spec §6.
type Config struct {
	// Steps is the step budget in raw computation-step units (the CLI
	// multiplies its millions-denominated flag by 1e6). Unbounded
	// disables the step budget entirely; 0 stops before any work.
	Steps int64
	// MaxReplacements caps the number of replacement steps performed;
	// 0 means unlimited.
	MaxReplacements int
	// EndTime, if non-zero, is the wall-clock deadline past which the
	// driver stops gracefully. Setting it to a past time before Run
	// produces an immediate stop (spec §5).
	EndTime time.Time
	// GenerateProof enables DRAT-like proof logging of every clause
	// addition and deletion.
	GenerateProof bool
	// PreserveModelCount enables the extra blocking clause described
	// in spec §4.5 step 4, preserving model counts across replacement.
	PreserveModelCount bool
	// ClauseCutoff and LitCutoff, when positive, impose an absolute
	// floor on the matched-clause / matched-literal count a candidate
	// extension must reach. The floor applies in addition to the default
	// reduction(...) profitability comparison, not in place of it
	// (spec §6.1).
	ClauseCutoff int
	LitCutoff    int
}

// DefaultConfig returns a Config with an unbounded step budget, no
// replacement cap, no deadline, and every optional feature off.
func DefaultConfig() Config {
	return Config{Steps: Unbounded}
}
