package cnf

import "fmt"

// InvariantViolation reports a broken internal assumption of the clause
// store — e.g. an empty clause materializing mid-run — as opposed to a
// malformed input (see FormatError). It always indicates a bug in the
// caller, never bad input data.
type InvariantViolation struct {
	Reason string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Reason
}

// assertInvariant panics with an *InvariantViolation when cond is false.
// Callers at the engine's outer boundary recover this panic into a
// returned error; it must never surface as a bare panic to a library
// caller.
func assertInvariant(cond bool, format string, args ...interface{}) {
	if !cond {
		panic(&InvariantViolation{Reason: fmt.Sprintf(format, args...)})
	}
}
