package sbva

import "time"

// budgetGovernor enforces the step, time, and replacement caps of spec
// §4.6. It is checked only at outer-iteration boundaries; there is no
// mid-operation cancellation (spec §5).
type budgetGovernor struct {
	stepsRemaining  int64
	maxReplacements int
	replacementsSoFar int
	endTime         time.Time
}

func newBudgetGovernor(cfg Config) *budgetGovernor {
	return &budgetGovernor{
		stepsRemaining:  cfg.Steps,
		maxReplacements: cfg.MaxReplacements,
		endTime:         cfg.EndTime,
	}
}

// stop reports whether the driver should terminate before starting its
// next outer iteration.
func (b *budgetGovernor) stop() bool {
	if !b.endTime.IsZero() && !time.Now().Before(b.endTime) {
		return true
	}
	if b.maxReplacements > 0 && b.replacementsSoFar >= b.maxReplacements {
		return true
	}
	if b.stepsRemaining == 0 {
		return true
	}
	return false
}

// chargeSteps debits n computation steps from the step budget. A
// negative stepsRemaining means "unbounded" and is never charged.
func (b *budgetGovernor) chargeSteps(n int64) {
	if b.stepsRemaining < 0 {
		return
	}
	b.stepsRemaining -= n
	if b.stepsRemaining < 0 {
		b.stepsRemaining = 0
	}
}

func (b *budgetGovernor) recordReplacement() {
	b.replacementsSoFar++
}
