package shortcuts

import (
	"fmt"

	"github.com/katalvlaran/shortline/linepath"
)

// Distances computes the shortest distance from node 0 to every node of the
// line-plus-shortcuts graph described by shortcut: len(shortcut) nodes on a
// line, plus one directed unit-cost edge i→shortcut[i] per node. The mapping
// is 0-indexed and is only read, never retained.
//
// The driver loop finalizes nodes in increasing distance order and injects
// the one shortcut edge leaving each finalized node before asking for the
// next. Once the solver drains, the returned table is final: dist[0] is 0,
// adjacent entries differ by at most 1, and dist[shortcut[i]] ≤ dist[i]+1
// for every i.
//
// Returns ErrNoShortcuts for an empty mapping, or a wrapped
// ErrShortcutOutOfRange naming the first offending index. Validation happens
// up front so the core never sees an out-of-range position.
func Distances(shortcut []int) ([]int, error) {
	n := len(shortcut)
	if n == 0 {
		return nil, ErrNoShortcuts
	}

	// 1) Validate the whole mapping before touching the solver.
	for i, target := range shortcut {
		if target < 0 || target >= n {
			return nil, fmt.Errorf("%w: shortcut[%d] = %d, want [0, %d)", ErrShortcutOutOfRange, i, target, n)
		}
	}

	// 2) Build the solver for the bare line.
	s, err := linepath.NewSolver(n)
	if err != nil {
		return nil, err
	}

	// 3) Pop each finalized node and push its shortcut edge. The solver
	//    handles the line neighbors itself.
	for {
		c, ok := s.Pop()
		if !ok {
			break
		}
		s.Push(linepath.Candidate{Cost: c.Cost + 1, Position: shortcut[c.Position]})
	}

	return s.Distances(), nil
}
