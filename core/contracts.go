// This file declares the pluggable capability contracts consumed by the
// search kernel: Graph, Heuristic, EdgeModifier and PathProcessor.
package core

// Neighbor is a transient (node, incrementalCost) pair produced while
// expanding a node. Cost must be non-negative; Infinity marks the edge as
// unwalkable and excludes it from relaxation.
type Neighbor[N comparable] struct {
	// Node is the reachable neighbor.
	Node N

	// Cost is the incremental cost of the edge into Node.
	Cost float64
}

// Graph is the sole substrate contract: anything that can enumerate the
// outgoing edges of a node can be searched.
//
// Expand must be deterministic for a fixed graph state, must terminate, and
// may return an empty slice for dead-end nodes. The kernel treats the graph
// as read-only for the duration of one search; callers are responsible for
// serializing graph mutation against in-flight searches.
type Graph[N comparable] interface {
	Expand(node N) []Neighbor[N]
}

// Heuristic estimates the remaining cost from node to the search goal.
// It must be non-negative. For the kernel's cheapest-path guarantee it must
// also never overestimate the true remaining cost (admissibility) — a
// caller contract the kernel does not verify.
type Heuristic[N comparable] func(node N) float64

// ZeroHeuristic returns 0 for every node, degrading A* to uniform-cost
// search. It is the heuristic used by the Dijkstra expansion mode.
func ZeroHeuristic[N comparable](N) float64 { return 0 }

// EdgeModifier is a per-edge cost hook applied after the graph's intrinsic
// edge cost. Returning ok=false vetoes the edge entirely (equivalent to an
// infinite cost). Returning ok=true passes the possibly adjusted cost on to
// relaxation; adjustments may raise or lower the cost but must keep it
// non-negative.
type EdgeModifier[N comparable] func(from, to N, cost float64) (adjusted float64, ok bool)

// PathProcessor converts a raw start→goal node sequence into an
// application-specific segment sequence (corners, portals, funnel output).
//
// Process must be a pure transformation with no side effects on the graph.
// InsertQueryStart reports whether the kernel should splice the precise
// query-start node in front of the raw sequence before processing — useful
// when the first node should carry the exact fractional start position
// rather than the substrate's canonical node value.
type PathProcessor[N comparable, S any] interface {
	Process(raw []N) []S
	InsertQueryStart() bool
}

// NodeProcessor is the identity PathProcessor: segments are the raw nodes
// themselves. It is the processor used when a caller supplies none.
type NodeProcessor[N comparable] struct{}

// Process returns the raw sequence unchanged.
func (NodeProcessor[N]) Process(raw []N) []N { return raw }

// InsertQueryStart reports false: the canonical node values are the output.
func (NodeProcessor[N]) InsertQueryStart() bool { return false }
