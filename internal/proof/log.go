// Package proof implements the append-only DRAT-like proof log emitted
// by the replacement step, and its text serialization.
package proof

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sbva-tools/sbva/internal/cnf"
)

// Kind distinguishes a clause addition from a clause deletion record.
type Kind int

const (
	Add Kind = iota
	Delete
)

// Record is a single entry in the proof log: a clause addition or
// deletion, in the literal order it should be replayed.
type Record struct {
	Kind Kind
	Lits []cnf.Literal
}

// Log is the ordered, append-only sequence of proof records produced by
// a run of the engine. It is write-only during Run and read-only once
// serialized (spec §3, "Ownership & lifecycle").
type Log struct {
	enabled bool
	records []Record
}

// NewLog returns a Log. When enabled is false, every append is a no-op,
// so callers never need to branch on whether proof generation was
// requested (spec §6, -p/--proof is what turns this on).
func NewLog(enabled bool) *Log {
	return &Log{enabled: enabled}
}

// Enabled reports whether this log actually records anything.
func (l *Log) Enabled() bool {
	return l.enabled
}

// AddClause records a clause addition.
func (l *Log) AddClause(lits []cnf.Literal) {
	if !l.enabled {
		return
	}
	l.records = append(l.records, Record{Kind: Add, Lits: append([]cnf.Literal(nil), lits...)})
}

// DeleteClause records a clause deletion.
func (l *Log) DeleteClause(lits []cnf.Literal) {
	if !l.enabled {
		return
	}
	l.records = append(l.records, Record{Kind: Delete, Lits: append([]cnf.Literal(nil), lits...)})
}

// Records returns the recorded sequence, in order.
func (l *Log) Records() []Record {
	return l.records
}

// Write serializes the log in DRAT-like text form (spec §6): one record
// per line, additions as the literal sequence terminated by 0,
// deletions prefixed with "d ".
func (l *Log) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range l.records {
		if r.Kind == Delete {
			if _, err := bw.WriteString("d "); err != nil {
				return err
			}
		}
		for _, lit := range r.Lits {
			if _, err := fmt.Fprintf(bw, "%d ", int(lit)); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
