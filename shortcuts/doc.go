// Package shortcuts solves the line-plus-shortcuts shortest-path problem:
// n nodes on a line (unit-cost edges between neighbors), where node i also
// has one extra directed unit-cost edge to shortcut[i].
//
// Overview:
//
//   - Distances is the driver over linepath.Solver: it pops each finalized
//     node and pushes the single shortcut edge leaving it, repeating until
//     the solver drains. That one injected push is all that distinguishes
//     this problem from a plain line walk – no other graph-specific logic
//     exists here.
//   - ReadProblem and WriteDistances are the text-format collaborators. The
//     source format is 1-indexed (targets in [1,n]); ReadProblem hands the
//     core a validated 0-indexed copy.
//
// Input format (whitespace-separated tokens, conventionally two lines):
//
//	n
//	t1 t2 ... tn        with each ti in [1, n]
//
// Output format: the n distances from node 0 in index order, separated by
// single spaces, terminated by a newline.
//
// Errors (sentinel):
//
//   - ErrNoShortcuts         if the shortcut mapping is empty.
//   - ErrShortcutOutOfRange  if any target lies outside the node range.
//   - ErrMissingNodeCount    if the input holds no leading count token.
//   - ErrBadNodeCount        if the count token is not a positive integer.
//   - ErrBadShortcutList     if the target list is short or malformed.
//
// All failures are surfaced immediately; the computation itself is
// deterministic and total on valid input, so there is nothing to retry.
package shortcuts
