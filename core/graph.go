// This file implements Adjacency, the reference in-memory Graph used by
// tests, examples and callers without a bespoke substrate.
package core

import (
	"sync"
)

// Adjacency is a generic in-memory adjacency-list graph implementing
// Graph[N]. Expansion order is edge insertion order, which makes searches
// over it fully deterministic.
//
// Mutation is guarded by an internal RWMutex so a graph may be built from
// several goroutines; once searches are running the graph must be treated
// as immutable (the kernel does not provide a locking/versioning layer).
type Adjacency[N comparable] struct {
	mu    sync.RWMutex
	edges map[N][]Neighbor[N]
}

// NewAdjacency creates an empty adjacency graph.
// Complexity: O(1)
func NewAdjacency[N comparable]() *Adjacency[N] {
	return &Adjacency[N]{edges: make(map[N][]Neighbor[N])}
}

// AddArc inserts the directed edge from→to with the given cost.
// Cost must pass ValidCost: zero is allowed, Infinity is allowed (the edge
// exists but is unwalkable), NaN and negative values return ErrBadCost.
// Complexity: O(1) amortized.
func (a *Adjacency[N]) AddArc(from, to N, cost float64) error {
	if err := ValidCost(cost); err != nil {
		return err
	}

	a.mu.Lock()
	a.edges[from] = append(a.edges[from], Neighbor[N]{Node: to, Cost: cost})
	// Ensure the target node exists so it expands to an empty slice rather
	// than being unknown to the graph.
	if _, ok := a.edges[to]; !ok {
		a.edges[to] = nil
	}
	a.mu.Unlock()

	return nil
}

// AddEdge inserts the undirected edge u—v as two directed arcs of equal
// cost. Complexity: O(1) amortized.
func (a *Adjacency[N]) AddEdge(u, v N, cost float64) error {
	if err := a.AddArc(u, v, cost); err != nil {
		return err
	}

	return a.AddArc(v, u, cost)
}

// AddNode registers a node with no outgoing edges. Adding a node twice is a
// no-op. Complexity: O(1).
func (a *Adjacency[N]) AddNode(n N) {
	a.mu.Lock()
	if _, ok := a.edges[n]; !ok {
		a.edges[n] = nil
	}
	a.mu.Unlock()
}

// Expand returns the outgoing edges of node in insertion order.
// The returned slice is the graph's internal storage: callers must not
// mutate it. Unknown nodes expand to nil. Complexity: O(1).
func (a *Adjacency[N]) Expand(node N) []Neighbor[N] {
	a.mu.RLock()
	out := a.edges[node]
	a.mu.RUnlock()

	return out
}

// Order returns the number of known nodes. Complexity: O(1).
func (a *Adjacency[N]) Order() int {
	a.mu.RLock()
	n := len(a.edges)
	a.mu.RUnlock()

	return n
}
