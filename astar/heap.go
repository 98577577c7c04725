// This file implements the open set: an index-tracked binary min-heap over
// frontier records, keyed by f = g + h with true decrease-key via heap.Fix.
package astar

import "container/heap"

// openSet is a min-heap of frontier records ordered by f ascending.
// Equal f values break by insertion sequence (FIFO): the record discovered
// earlier wins. This tie-break is deliberate and documented — it makes
// searches fully deterministic for a deterministic graph.
//
// Unlike a lazy-deletion queue, records carry their heap index so a cheaper
// rediscovery updates the existing entry in place (heap.Fix) instead of
// pushing a duplicate; the heap never holds stale entries.
type openSet[N comparable] []*record[N]

// Len returns the number of open records.
func (h openSet[N]) Len() int { return len(h) }

// Less orders by f ascending, then insertion sequence ascending.
func (h openSet[N]) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}

	return h[i].seq < h[j].seq
}

// Swap exchanges two records and keeps their heap indices current.
func (h openSet[N]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

// Push appends a record; called by heap.Push.
func (h *openSet[N]) Push(x any) {
	rec := x.(*record[N])
	rec.heapIndex = len(*h)
	*h = append(*h, rec)
}

// Pop removes and returns the last record; called by heap.Pop.
func (h *openSet[N]) Pop() any {
	old := *h
	n := len(old)
	rec := old[n-1]
	old[n-1] = nil // release the reference so pooled buffers don't pin records
	rec.heapIndex = notInOpen
	*h = old[:n-1]

	return rec
}

// push inserts a newly discovered record into the open set.
func (s *state[N]) push(rec *record[N]) {
	heap.Push(&s.open, rec)
}

// fix restores heap order after rec's f was lowered by relaxation.
func (s *state[N]) fix(rec *record[N]) {
	heap.Fix(&s.open, rec.heapIndex)
}

// popMin extracts the open record with minimal f.
func (s *state[N]) popMin() *record[N] {
	return heap.Pop(&s.open).(*record[N])
}
