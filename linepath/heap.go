package linepath

// candidateHeap is a min-heap (priority queue) of Candidates ordered by Cost
// ascending, ties broken by Position ascending. The secondary key makes the
// order total over distinct candidates, so extraction order is deterministic
// no matter in which order equal-cost candidates were inserted.
//
// We use the "lazy decrease-key" approach: when a shorter path to a queued
// position is found, a fresh Candidate is pushed. The outdated entry remains
// but is ignored when popped (checked against the distance table).
type candidateHeap []Candidate

// Len returns the number of candidates in the heap.
func (h candidateHeap) Len() int { return len(h) }

// Less defines the comparison: smaller Cost wins; equal costs fall back to
// smaller Position.
func (h candidateHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}

	return h[i].Position < h[j].Position
}

// Swap swaps two elements in the heap.
func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type Candidate.
func (h *candidateHeap) Push(x interface{}) { *h = append(*h, x.(Candidate)) }

// Pop removes and returns the last element, which heap.Pop has already
// moved the minimum into.
func (h *candidateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	c := old[n-1]
	*h = old[:n-1]

	return c
}
