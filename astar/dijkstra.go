// This file implements the Dijkstra expansion mode: full-frontier
// single-source shortest paths, reusing the kernel's relaxation loop with
// the heuristic fixed at zero and no goal test.
package astar

import "github.com/katalvlaran/wayfind/core"

// Table is the result of a full-frontier expansion: a single-source
// shortest-path table holding, for every node finalized within budget, its
// cost from the seed set and its predecessor.
//
// A Table is an owned snapshot — it stays valid after the Searcher that
// produced it is reused.
type Table[N comparable] struct {
	source   N
	entries  map[N]tableEntry[N]
	expanded int
	stopped  StopReason
}

type tableEntry[N comparable] struct {
	cost    float64
	prev    N
	hasPrev bool
}

// Expand computes shortest-path costs from source to every node reachable
// within the cost budget, using fresh state.
//
// With the default infinite MaxCost, termination on an unbounded or
// procedurally generated graph is the caller's responsibility: supply
// WithMaxCost (or WithMaxExpand) to bound the frontier.
//
// Complexity: O((V + E) log V) over the reached subgraph.
func Expand[N comparable](g core.Graph[N], source N, opts ...Option[N]) (Table[N], error) {
	return NewSearcher[N]().Expand(g, source, opts...)
}

// Expand runs the full-frontier mode reusing the Searcher's pooled buffers.
// Behavior is identical to the package-level Expand.
func (s *Searcher[N]) Expand(g core.Graph[N], source N, opts ...Option[N]) (Table[N], error) {
	// 1) Build and validate the configuration.
	cfg := DefaultOptions[N]()
	var opt Option[N]
	for _, opt = range opts {
		opt(&cfg)
	}
	if g == nil {
		return Table[N]{}, ErrNilGraph
	}

	// 2) Assemble the runner: no heuristic (estimate 0), no goal test.
	r := &runner[N]{
		graph:   g,
		options: cfg,
		st:      s.acquire(),
	}
	if err := r.init(source); err != nil {
		return Table[N]{}, err
	}

	// 3) Run the loop to exhaustion (or budget cutoff).
	_, stop, err := r.process()
	if err != nil {
		return Table[N]{}, err
	}

	// 4) Materialize the table from finalized records only. Records still
	//    open at a budget cutoff have provisional costs and are omitted.
	entries := make(map[N]tableEntry[N], len(r.st.frontier))
	for node, rec := range r.st.frontier {
		if !rec.closed {
			continue
		}
		entries[node] = tableEntry[N]{cost: rec.g, prev: rec.parent, hasPrev: rec.hasParent}
	}

	return Table[N]{source: source, entries: entries, expanded: r.expanded, stopped: stop}, nil
}

// Source returns the expansion's seed node.
func (t Table[N]) Source() N { return t.source }

// Len returns the number of finalized nodes in the table.
func (t Table[N]) Len() int { return len(t.entries) }

// Expanded returns the number of nodes dequeued during the expansion.
func (t Table[N]) Expanded() int { return t.expanded }

// Stopped reports why the expansion terminated: StopExhausted for a
// complete table, StopBudget for one truncated by the expansion budget.
func (t Table[N]) Stopped() StopReason { return t.stopped }

// Reached reports whether n was finalized within budget.
func (t Table[N]) Reached(n N) bool {
	_, ok := t.entries[n]

	return ok
}

// Cost returns the shortest-path cost from the source to n, and whether n
// was reached.
func (t Table[N]) Cost(n N) (float64, bool) {
	e, ok := t.entries[n]
	if !ok {
		return 0, false
	}

	return e.cost, true
}

// PathTo reconstructs the shortest path from the source to n by walking
// predecessors. Returns ok=false if n was not reached.
// Complexity: O(path length).
func (t Table[N]) PathTo(n N) ([]N, bool) {
	e, ok := t.entries[n]
	if !ok {
		return nil, false
	}

	path := []N{n}
	for e.hasPrev {
		path = append(path, e.prev)
		e = t.entries[e.prev]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
