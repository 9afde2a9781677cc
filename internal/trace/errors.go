package trace

import (
	"errors"
	"fmt"
)

// ErrEmptyTrace reports a document that resolved to zero states.
var ErrEmptyTrace = errors.New("trace produced no usable states")

// FormatError reports a document whose overall shape is none of the
// accepted trace encodings.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "unrecognized trace format: " + e.Reason
}

// ValidationError reports a single record that fails the field
// contract. One bad record rejects the whole trace: a partially loaded
// trace would bias the bounds computation.
type ValidationError struct {
	Kind   string // "state" or "triangle"
	Record int
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %s", e.Kind, e.Record, e.Reason)
}
