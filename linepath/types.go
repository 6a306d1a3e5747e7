// Package linepath defines the candidate type and sentinel errors for the
// incremental line-graph shortest-path solver.
package linepath

import (
	"errors"
	"math"
)

// Sentinel errors returned (or panicked) by the solver.
var (
	// ErrInvalidSize indicates a requested node count below 1.
	ErrInvalidSize = errors.New("linepath: node count must be at least 1")

	// ErrPositionOutOfRange indicates a candidate position outside [0, n).
	// Push panics with this error's message: positions are produced by the
	// caller's own edge logic, so an out-of-range value is a bug there, not
	// an input condition to recover from.
	ErrPositionOutOfRange = errors.New("linepath: candidate position out of range")
)

// Unreachable is the distance recorded for a node no candidate has reached
// yet. It is larger than any attainable real cost (costs are bounded by n).
const Unreachable = math.MaxInt

// Candidate is a proposed path of length Cost ending at node Position.
// Candidates are ephemeral: many may coexist in the queue for the same
// position, and only the one matching the current distance-table value is
// meaningful – the rest are stale and dropped on extraction.
type Candidate struct {
	Cost     int // length of the proposed path from node 0
	Position int // node the proposed path ends at, in [0, n)
}
