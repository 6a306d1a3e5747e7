// Package shortline computes single-source shortest paths on a line of n
// nodes (0..n-1, unit-cost edges between neighbors) augmented with one extra
// unit-cost directed "shortcut" edge per node.
//
// The line topology is never materialized: neighbor edges are generated
// algorithmically while the frontier is expanded, so the solver needs no
// adjacency structure at all – only a distance table and a priority queue.
//
// Everything is organized under two subpackages and one command:
//
//	linepath/     – the incremental solver: a priority-queue-driven relaxation
//	                engine over the implicit line, exposing Push/Pop so extra
//	                edges can be injected between steps
//	shortcuts/    – the driver that injects the shortcut edges, plus the
//	                text-format reader and writer
//	cmd/shortline – thin CLI: problem on stdin, distances on stdout
//
// Quick ASCII example (n = 3, shortcuts 0→2, 1→2, 2→0):
//
//	0───1───2
//	└───────┘
//
//	distances from node 0: 0 1 1
//
// Dive into the subpackage docs for the full API, complexity notes, and
// the error taxonomy.
package shortline
