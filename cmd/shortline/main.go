// Command shortline reads a line-plus-shortcuts instance from stdin and
// writes the shortest distances from node 0 to stdout.
//
// Input: the node count n, then n shortcut targets in [1, n] (1-indexed),
// as whitespace-separated integers. Output: the n distances in index order
// on a single newline-terminated line. Exits 0 on success, 1 on any error.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/shortline/shortcuts"
)

func main() {
	shortcut, err := shortcuts.ReadProblem(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shortline: %v\n", err)
		os.Exit(1)
	}

	dist, err := shortcuts.Distances(shortcut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shortline: %v\n", err)
		os.Exit(1)
	}

	if err = shortcuts.WriteDistances(os.Stdout, dist); err != nil {
		fmt.Fprintf(os.Stderr, "shortline: %v\n", err)
		os.Exit(1)
	}
}
