// Package shortcuts defines the sentinel errors for the driver and the
// text-format reader.
package shortcuts

import "errors"

// Sentinel errors for solving and parsing.
var (
	// ErrNoShortcuts indicates an empty shortcut mapping (n == 0).
	ErrNoShortcuts = errors.New("shortcuts: shortcut mapping must cover at least one node")

	// ErrShortcutOutOfRange indicates a shortcut target outside the node
	// range. ReadProblem reports it against the raw 1-indexed value,
	// Distances against the 0-indexed one.
	ErrShortcutOutOfRange = errors.New("shortcuts: shortcut target out of range")

	// ErrMissingNodeCount indicates input with no leading count token.
	ErrMissingNodeCount = errors.New("shortcuts: missing node count")

	// ErrBadNodeCount indicates a count token that is not a positive integer.
	ErrBadNodeCount = errors.New("shortcuts: node count must be a positive integer")

	// ErrBadShortcutList indicates a truncated or non-numeric target list.
	ErrBadShortcutList = errors.New("shortcuts: malformed shortcut list")
)
