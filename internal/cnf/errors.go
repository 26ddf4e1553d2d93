package cnf

import "fmt"

// FormatError reports a malformed clause: a nonzero literal out of the
// declared variable range, a zero literal inside a clause, or a clause
// added after ingestion has finished. Per spec §7 these are fatal
// input-format errors; callers must abort ingestion rather than retry.
// Header and clause-count errors are reported by the DIMACS parser.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid CNF input: %s", e.Reason)
}

func formatErrorf(format string, args ...interface{}) error {
	return &FormatError{Reason: fmt.Sprintf(format, args...)}
}
