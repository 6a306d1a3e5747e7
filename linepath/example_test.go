// Package linepath_test provides runnable examples for the incremental
// solver, showing how extra edges are injected between Pop calls.
package linepath_test

import (
	"fmt"

	"github.com/katalvlaran/shortline/linepath"
)

// ExampleSolver demonstrates the incremental Pop/Push loop: the solver
// generates the line edges itself, and the caller grafts one extra directed
// unit-cost edge per node (here the mapping 0→2, 1→2, 2→0) onto the line.
func ExampleSolver() {
	shortcut := []int{2, 2, 0}

	// 1) Build a solver for a 3-node line; the source candidate is queued.
	s, err := linepath.NewSolver(len(shortcut))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Finalize nodes one by one. After each fresh extraction, push the
	//    extra edge leaving the finalized node; the solver already pushed
	//    its line neighbors.
	for {
		c, ok := s.Pop()
		if !ok {
			break // drained: every distance is final
		}
		s.Push(linepath.Candidate{Cost: c.Cost + 1, Position: shortcut[c.Position]})
	}

	// 3) Node 2 costs 1 via the shortcut 0→2, beating the cost-2 line walk.
	fmt.Println(s.Distances())
	// Output: [0 1 1]
}

// ExampleSolver_pureLine shows that with no extra edges the distances are
// simply the walk along the line.
func ExampleSolver_pureLine() {
	s, err := linepath.NewSolver(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for {
		if _, ok := s.Pop(); !ok {
			break
		}
	}

	fmt.Println(s.Distances())
	// Output: [0 1 2 3 4]
}
