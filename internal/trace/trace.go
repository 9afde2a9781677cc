// Package trace loads recorded motion traces and computes their spatial
// extent for offline playback.
package trace

// State is one recorded sample of the traced process. Only the first
// two coordinate components drive projection; any extra components are
// carried through unchanged.
type State struct {
	Step   int
	Coords []float64
}

// Trace is an ordered state sequence whose insertion order is the
// temporal order. A Trace is immutable once loaded.
type Trace []State
