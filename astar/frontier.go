// This file implements the search frontier: per-visited-node came-from
// records, the reusable per-invocation state, and the Searcher that pools
// that state across invocations.
package astar

// notInOpen marks a record that is not currently in the open set.
const notInOpen = -1

// record is the per-visited-node frontier entry: best known accumulated
// cost g, the predecessor that achieved it, and open/closed bookkeeping.
// Created on first discovery, relaxed in place when a cheaper path is
// found, and never deleted until the whole state is cleared for reuse.
type record[N comparable] struct {
	node      N
	parent    N
	hasParent bool    // false only for seed nodes
	g         float64 // best known accumulated cost from the seed set
	f         float64 // g + heuristic estimate; equals g in Dijkstra mode
	seq       uint64  // insertion sequence, FIFO tie-break on equal f
	closed    bool    // true once dequeued and expanded
	heapIndex int     // position in the open set, notInOpen when absent
}

// state is the transient memory of one kernel invocation: the frontier map
// and the open set. It is private to the invocation — independent searches
// never share a state, which is what makes parallel invocations over an
// immutable graph safe with no coordination.
type state[N comparable] struct {
	frontier map[N]*record[N]
	open     openSet[N]
	nextSeq  uint64
}

func newState[N comparable]() *state[N] {
	return &state[N]{frontier: make(map[N]*record[N])}
}

// reset clears the state for reuse, keeping the allocated map and slice
// capacity. Clear-on-reuse rather than destroy-and-recreate is what makes
// repeated searches allocation-free after warm-up.
func (s *state[N]) reset() {
	clear(s.frontier)
	for i := range s.open {
		s.open[i] = nil
	}
	s.open = s.open[:0]
	s.nextSeq = 0
}

// discover creates the frontier record for a newly seen node and pushes it
// onto the open set.
func (s *state[N]) discover(node N, g, f float64) *record[N] {
	rec := &record[N]{
		node:      node,
		g:         g,
		f:         f,
		seq:       s.nextSeq,
		heapIndex: notInOpen,
	}
	s.nextSeq++
	s.frontier[node] = rec
	s.push(rec)

	return rec
}

// Searcher owns reusable frontier/open-set buffers and runs kernel
// invocations against them. The zero-value-equivalent NewSearcher form is
// ready for use; one Searcher serves one invocation at a time.
//
// Reusing a Searcher across queries is a performance optimization, not a
// correctness requirement: the package-level Search and Expand functions
// allocate fresh state per call and behave identically.
type Searcher[N comparable] struct {
	st *state[N]
}

// NewSearcher creates a Searcher with empty pooled buffers.
func NewSearcher[N comparable]() *Searcher[N] {
	return &Searcher[N]{st: newState[N]()}
}

// acquire returns cleared state ready for a new invocation.
func (s *Searcher[N]) acquire() *state[N] {
	if s.st == nil {
		s.st = newState[N]()
	}
	s.st.reset()

	return s.st
}
