package linepath

import "container/heap"

// Solver owns the distance table and the candidate priority queue for one
// shortest-path computation over an implicit line of n nodes. It is the only
// holder of that state: construct one per solve, drive it with Push/Pop, and
// discard it once Pop reports exhaustion.
type Solver struct {
	dist []int         // dist[i] = best known path length from node 0 to i
	pq   candidateHeap // min-heap of candidates, may hold stale duplicates
}

// NewSolver prepares a solver for a line of n nodes. The distance table
// starts at dist[0]=0 with every other entry Unreachable, and the queue is
// seeded with the source candidate {Cost: 0, Position: 0}.
//
// Returns ErrInvalidSize if n < 1.
func NewSolver(n int) (*Solver, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}

	// 1) Initialize dist[i] = Unreachable for all nodes, then pin the source.
	dist := make([]int, n)
	for i := range dist {
		dist[i] = Unreachable
	}
	dist[0] = 0

	// 2) Seed the queue with the source. Capacity n is a reasonable starting
	//    point; lazy decrease-key may grow it past n under heavy ties.
	s := &Solver{
		dist: dist,
		pq:   make(candidateHeap, 0, n),
	}
	heap.Init(&s.pq)
	heap.Push(&s.pq, Candidate{Cost: 0, Position: 0})

	return s, nil
}

// Push proposes a candidate path. If the candidate strictly improves the
// recorded distance for its position, the table is updated immediately and
// the candidate is enqueued; otherwise Push is a no-op.
//
// The eager table write at proposal time (rather than at extraction) is what
// keeps dist monotonically non-increasing and lets Pop detect staleness by a
// single equality check. It is sound only because all edge weights are
// non-negative units.
//
// Note: improvement is strict (<, not ≤), so among equal-cost paths to a
// position only the first-discovered one is queued. Final distances are
// unaffected; only path identity would differ, and paths are not tracked.
//
// Push panics with ErrPositionOutOfRange's message if the position lies
// outside [0, n): edge generation is caller logic, so that is a bug to
// surface, not an error to return.
func (s *Solver) Push(c Candidate) {
	if c.Position < 0 || c.Position >= len(s.dist) {
		panic(ErrPositionOutOfRange.Error())
	}
	if c.Cost >= s.dist[c.Position] {
		return // not an improvement; drop silently
	}

	s.dist[c.Position] = c.Cost
	heap.Push(&s.pq, c)
}

// Pop extracts the next closest unexamined node. It discards stale entries
// (cost above the recorded distance) until it finds a fresh candidate; for
// that candidate it auto-pushes the two implicit line neighbors at Cost+1
// and returns it with ok=true. The returned node's distance is final – the
// caller should Push any additional edges leaving it before the next Pop.
//
// Once the queue is empty Pop returns ok=false; the solver is drained, a
// terminal state, and dist holds the true shortest distances for every node
// whose edges were all registered before exhaustion.
func (s *Solver) Pop() (Candidate, bool) {
	for s.pq.Len() > 0 {
		c := heap.Pop(&s.pq).(Candidate)

		// Stale entry: a cheaper path to this position was found after this
		// candidate was queued. Skip it.
		if c.Cost > s.dist[c.Position] {
			continue
		}

		// Fresh extraction: c.Cost == dist[c.Position] is now final.
		// Relax the implicit line edges to both neighbors.
		if next := c.Position + 1; next < len(s.dist) {
			s.Push(Candidate{Cost: c.Cost + 1, Position: next})
		}
		if c.Position > 0 {
			s.Push(Candidate{Cost: c.Cost + 1, Position: c.Position - 1})
		}

		return c, true
	}

	return Candidate{}, false
}

// NodeCount returns n, the number of nodes on the line.
func (s *Solver) NodeCount() int { return len(s.dist) }

// Distances returns a copy of the distance table. Entries for nodes not yet
// finalized hold the best cost proposed so far, or Unreachable if none;
// after the solver drains, every entry is the true shortest distance.
func (s *Solver) Distances() []int {
	out := make([]int, len(s.dist))
	copy(out, s.dist)

	return out
}
