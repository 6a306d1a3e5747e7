// Package linepath provides an incremental single-source shortest-path
// solver for an implicit line of n unit-cost nodes.
//
// Overview:
//
//   - The base topology is a line: node i is connected to i-1 and i+1 by
//     unit-cost edges. Because every weight is 1 and the line shape is known,
//     these edges are never stored – Pop generates them on the fly.
//   - The solver is deliberately incremental: Pop hands back the next node
//     whose distance just became final, and the caller may Push any extra
//     edges leaving that node before the next Pop. This is how callers graft
//     additional graph structure (e.g. per-node shortcut edges) onto the
//     line without the solver knowing about it.
//   - A min-heap priority queue drives extraction, ordered by cost ascending
//     with ties broken by position ascending, so extraction order – and
//     therefore output – is deterministic regardless of insertion order.
//
// Lazy decrease-key:
//
//   - container/heap offers no decrease-key, so Push never removes the old
//     queue entry for a position. Instead the distance table is updated
//     eagerly at proposal time and Pop silently drops any extracted entry
//     whose cost no longer matches the table (a stale entry). Only the
//     entry matching the authoritative table value is meaningful.
//   - Eager table writes are safe precisely because every edge weight is a
//     non-negative unit: a table entry never regresses, and no strictly
//     cheaper candidate for a position can still be queued by the time a
//     matching one is extracted.
//
// Complexity, for V nodes and E pushed edges:
//
//   - Time:  O((V + E) log (V + E)) – each node is finalized at most once,
//     each Push costs one heap insert, stale entries cost one heap pop each.
//   - Space: O(V + E) – O(V) for the distance table, O(E) worst case for
//     duplicate entries in the queue.
//
// Errors (sentinel):
//
//   - ErrInvalidSize        if the requested node count is less than 1.
//   - ErrPositionOutOfRange if a pushed candidate's position is outside
//     [0, n); surfaced as a panic, since this is a programming-contract
//     violation rather than a runtime condition.
//
// Thread safety:
//
//   - A Solver is a closed, synchronous computation owned by one goroutine.
//     Push and Pop never block and must not be called concurrently.
package linepath
