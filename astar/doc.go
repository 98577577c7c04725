// Package astar provides the wayfind search kernel: one generic best-first
// loop serving goal-directed A* and full-frontier Dijkstra expansion over
// any substrate implementing core.Graph.
//
// Overview:
//
//   - Search finds the cheapest path from a start node to a goal node,
//     guided by a caller-supplied heuristic (core.ZeroHeuristic degrades it
//     to uniform-cost search).
//   - Expand computes a single-source shortest-path table for every node
//     reachable within a cost budget — the heuristic fixed at zero, no goal.
//   - Both modes share the same frontier, open set, relaxation and budget
//     machinery; they differ only in goal test and result materialization.
//
// When to use:
//
//   - Directly, for one-shot path or distance-field queries on any graph
//     you can express as a neighbor-expansion function.
//   - Through package route, for multi-stop paths, competing-option
//     evaluation with retry, batched queries, and reusable request objects.
//
// Key properties:
//
//   - Deterministic: equal-f ties break by insertion sequence (FIFO), so a
//     deterministic graph always yields the same path.
//   - True decrease-key: the open set tracks heap indices and fixes records
//     in place — no stale duplicates, O(V) open-set bound.
//   - Budget-aware: expansion-count and accumulated-cost budgets cut the
//     search off early; Result.Stopped and Table.Stopped report whether a
//     miss means "provably unreachable" (StopExhausted) or "ran out of
//     budget" (StopBudget).
//   - Allocation-conscious: a Searcher reuses its frontier map and open-set
//     slice across invocations (clear-on-reuse); results are copied out and
//     own their memory.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) — V extractions, up to E relaxations, each
//     heap operation O(log V).
//   - Space: O(V) frontier records and open-set slots.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph, ErrNilHeuristic:
//     nil collaborators are caller bugs, rejected before the loop starts.
//   - ErrBadEdgeCost, ErrBadEstimate:
//     NaN or negative costs/estimates abort the search immediately.
//   - ErrBadMaxExpand, ErrBadMaxCost:
//     invalid budgets panic in the option constructor.
//
// "No path found" is never an error: it is a Result with Found=false.
//
// Concurrency:
//
//   - One invocation is synchronous and single-threaded; it owns its
//     frontier state exclusively. Independent invocations over the same
//     immutable graph run fully in parallel with no coordination.
//   - A Searcher serves one invocation at a time; give each goroutine its
//     own Searcher (or use the allocating package-level functions).
//   - The kernel never blocks and has no cancellation points beyond the
//     budgets; callers needing wall-clock cancellation should bound the
//     search with WithMaxExpand.
//
// See also:
//
//   - core: the Graph/Heuristic/EdgeModifier/PathProcessor contracts.
//   - route: request objects, multi-stop assembly, option evaluation,
//     batched multi-queries.
package astar
