// Package reason accumulates the human readable audit trail returned to the
// host alongside every decision.
package reason

import (
	"fmt"
	"strings"
)

// Log is an ordered list of notes. The zero value is an empty log.
//
// Log is a value: Add and Addf return a new Log and the receiver keeps the
// notes it had before the call, so a Log can be handed to several stages
// without any of them observing the others' notes.
type Log struct {
	notes []string
}

// New returns a Log seeded with the given notes.
func New(notes ...string) Log {
	return Log{}.Add(notes...)
}

// Add returns a new Log with the notes appended. Empty notes are dropped.
func (l Log) Add(notes ...string) Log {
	out := make([]string, len(l.notes), len(l.notes)+len(notes))
	copy(out, l.notes)
	for _, n := range notes {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		out = append(out, n)
	}
	return Log{notes: out}
}

// Addf returns a new Log with a formatted note appended.
func (l Log) Addf(format string, args ...any) Log {
	return l.Add(fmt.Sprintf(format, args...))
}

// Merge returns a new Log holding l's notes followed by other's.
func (l Log) Merge(other Log) Log {
	return l.Add(other.notes...)
}

// Notes returns a copy of the notes in the order they were added.
func (l Log) Notes() []string {
	out := make([]string, len(l.notes))
	copy(out, l.notes)
	return out
}

// Len returns the number of notes.
func (l Log) Len() int {
	return len(l.notes)
}

// String joins the notes with a single space.
func (l Log) String() string {
	return strings.Join(l.notes, " ")
}
