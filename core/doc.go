// Package core defines the generic contracts every wayfind search is built
// on: the Graph neighbor-expansion interface, the Heuristic and EdgeModifier
// hooks, the PathProcessor transform, and the cost semantics shared by all
// kernel modes.
//
// Overview:
//
//   - A search substrate is anything implementing Graph[N]: a single Expand
//     method producing (neighbor, incrementalCost) pairs. Navigation meshes,
//     grid graphs and 3D line graphs all reduce to this one method.
//   - Node identity is the node value itself: N must be comparable, and two
//     locations mapping to the same N are the same search node. Application
//     payload (flags, sub-cell offsets) rides along outside the node value.
//   - All costs are float64. Infinity marks an unwalkable edge and is never
//     relaxed. NaN and negative costs are rejected at the input boundary.
//
// Contracts:
//
//   - Graph[N].Expand must be deterministic for a fixed graph state and is
//     read-only for the duration of a search.
//   - Heuristic[N] must be non-negative; admissibility (never overestimate)
//     is required for cheapest-path guarantees but is not enforced here.
//   - EdgeModifier[N] may veto an edge (false) or adjust its cost, and is
//     applied after the graph's intrinsic edge cost.
//   - PathProcessor[N, S] is a pure transform from a raw node sequence to an
//     application segment sequence; it may request that the precise query
//     start be spliced in front of the raw sequence via InsertQueryStart.
//
// Errors (sentinel):
//
//   - ErrBadCost — a NaN or negative cost reached the input boundary.
//
// The package also ships Adjacency[N], a small in-memory reference graph
// used throughout the tests and examples, and available to callers that
// have no bespoke substrate of their own.
package core
