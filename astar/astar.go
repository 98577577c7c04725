// Package astar implements the wayfind search kernel: a single best-first
// loop serving goal-directed A* (this file) and full-frontier Dijkstra
// expansion (dijkstra.go).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each node is dequeued and expanded at most once: V extractions.
//   - Each edge relaxation either pushes a record or fixes one in place:
//     up to E heap operations of O(log V) each.
//   - Space: O(V) frontier records plus O(V) open-set slots — the open set
//     never holds stale duplicates thanks to true decrease-key.
//
// Notes on implementation choices:
//
//   - Edges with cost = +Inf are treated as unwalkable and skipped before
//     the edge modifier runs; a modifier may also veto an edge outright.
//   - Equal-f ties break by insertion sequence (FIFO), making results
//     deterministic for a deterministic graph.
//   - A closed record is final: a cheaper path discovered later (possible
//     only under an inconsistent heuristic) is ignored. Consistency is the
//     caller's contract, as is admissibility.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// Search runs a goal-directed A* search from start to goal over g, using
// fresh state. Use core.ZeroHeuristic for uniform-cost (Dijkstra-ordered)
// goal search.
//
// The returned Result distinguishes three terminal states via Stopped:
// goal found, open set exhausted (provably no path within the cost budget),
// or expansion budget hit (reachability undetermined). Absence of a path is
// a result, never an error; errors signal caller bugs (nil graph or
// heuristic, NaN/negative costs).
//
// Degenerate case: start == goal returns found=true, cost 0 and a length-1
// path without entering the expand loop.
//
// Complexity: O((V + E) log V) time, O(V) space.
func Search[N comparable](g core.Graph[N], start, goal N, h core.Heuristic[N], opts ...Option[N]) (Result[N], error) {
	return NewSearcher[N]().Search(g, start, goal, h, opts...)
}

// Search runs a goal-directed A* search reusing the Searcher's pooled
// frontier/open-set buffers. Behavior is identical to the package-level
// Search; only the allocation profile differs.
func (s *Searcher[N]) Search(g core.Graph[N], start, goal N, h core.Heuristic[N], opts ...Option[N]) (Result[N], error) {
	// 1) Build and validate the configuration.
	cfg := DefaultOptions[N]()
	var opt Option[N]
	for _, opt = range opts {
		opt(&cfg)
	}
	if g == nil {
		return Result[N]{}, ErrNilGraph
	}
	if h == nil {
		return Result[N]{}, ErrNilHeuristic
	}

	// 2) Degenerate case: any seed equals the goal → zero-cost path,
	//    no expansion.
	if start == goal {
		return Result[N]{Found: true, Cost: 0, Path: []N{start}, Stopped: StopGoal}, nil
	}
	for _, seed := range cfg.Seeds {
		if seed == goal {
			return Result[N]{Found: true, Cost: 0, Path: []N{seed}, Stopped: StopGoal}, nil
		}
	}

	// 3) Assemble the runner over cleared pooled state and seed it.
	r := &runner[N]{
		graph:     g,
		heuristic: h,
		options:   cfg,
		st:        s.acquire(),
		goal:      goal,
		hasGoal:   true,
	}
	if err := r.init(start); err != nil {
		return Result[N]{}, err
	}

	// 4) Run the expand loop to one of its three terminal states.
	goalRec, stop, err := r.process()
	if err != nil {
		return Result[N]{}, err
	}

	// 5) Materialize the result. The path is copied out of the pooled
	//    frontier so it stays valid after the Searcher is reused.
	res := Result[N]{Expanded: r.expanded, Stopped: stop}
	if goalRec != nil {
		res.Found = true
		res.Cost = goalRec.g
		res.Path = r.reconstruct(goalRec)
	}

	return res, nil
}

// runner holds the mutable state of one kernel invocation.
type runner[N comparable] struct {
	graph     core.Graph[N]      // read-only during the invocation
	heuristic core.Heuristic[N]  // nil in Dijkstra mode (estimate = 0)
	options   Options[N]         // budgets, modifier, extra seeds
	st        *state[N]          // frontier map + open set, invocation-private
	goal      N                  // goal node; meaningful only if hasGoal
	hasGoal   bool               // false in Dijkstra mode
	expanded  int                // nodes dequeued and closed so far
}

// estimate returns the heuristic estimate for n, validating it at the
// boundary. Dijkstra mode has no heuristic and always estimates 0.
func (r *runner[N]) estimate(n N) (float64, error) {
	if r.heuristic == nil {
		return 0, nil
	}
	est := r.heuristic(n)
	if math.IsNaN(est) || est < 0 {
		return 0, fmt.Errorf("%w: node %v estimate=%g", ErrBadEstimate, n, est)
	}

	return est, nil
}

// init seeds the start node and any extra seeds with g=0, f=h(seed).
func (r *runner[N]) init(start N) error {
	seeds := make([]N, 0, 1+len(r.options.Seeds))
	seeds = append(seeds, start)
	seeds = append(seeds, r.options.Seeds...)

	var est float64
	var err error
	for _, seed := range seeds {
		if _, ok := r.st.frontier[seed]; ok {
			continue // duplicate seed
		}
		if est, err = r.estimate(seed); err != nil {
			return err
		}
		r.st.discover(seed, 0, est)
	}

	return nil
}

// process is the shared expand loop. It terminates when the goal is
// dequeued (StopGoal, goal-directed mode only), the open set drains
// (StopExhausted), or the expansion budget is hit (StopBudget).
func (r *runner[N]) process() (*record[N], StopReason, error) {
	var u *record[N]
	for r.st.open.Len() > 0 {
		// 1) Budget gate: checked before each extraction so a budget of n
		//    allows exactly n expansions.
		if r.options.MaxExpand > 0 && r.expanded >= r.options.MaxExpand {
			return nil, StopBudget, nil
		}

		// 2) Extract the open record with minimal f and finalize it.
		u = r.st.popMin()
		u.closed = true
		r.expanded++

		// 3) Goal test on dequeue: the first time the goal leaves the open
		//    set its g is the shortest-path cost (admissible heuristic).
		if r.hasGoal && u.node == r.goal {
			return u, StopGoal, nil
		}

		// 4) Relax every outgoing edge of u.
		if err := r.relax(u); err != nil {
			return nil, StopExhausted, err
		}
	}

	return nil, StopExhausted, nil
}

// relax examines each edge out of u and attempts to improve its neighbor's
// record: skip unwalkable or vetoed edges, validate the cost, prune against
// the cost budget, then discover or decrease-key.
func (r *runner[N]) relax(u *record[N]) error {
	var (
		cost      float64
		adjusted  float64
		ok        bool
		tentative float64
		est       float64
		err       error
	)
	for _, nb := range r.graph.Expand(u.node) {
		cost = nb.Cost

		// Unwalkable edges are excluded from relaxation entirely.
		if core.IsUnwalkable(cost) {
			continue
		}

		// The modifier runs after the graph's intrinsic cost and may veto
		// the edge or adjust its cost either way.
		if r.options.Modifier != nil {
			if adjusted, ok = r.options.Modifier(u.node, nb.Node, cost); !ok {
				continue
			}
			cost = adjusted
			if core.IsUnwalkable(cost) {
				continue
			}
		}

		// NaN and negative costs are caller bugs, surfaced immediately.
		if math.IsNaN(cost) || cost < 0 {
			return fmt.Errorf("%w: edge %v→%v cost=%g", ErrBadEdgeCost, u.node, nb.Node, cost)
		}

		tentative = u.g + cost

		// Cost-budget prune: over-budget nodes never enter the open set.
		if tentative > r.options.MaxCost {
			continue
		}

		rec, seen := r.st.frontier[nb.Node]
		if !seen {
			// First discovery: create the record and push it.
			if est, err = r.estimate(nb.Node); err != nil {
				return err
			}
			rec = r.st.discover(nb.Node, tentative, tentative+est)
			rec.parent = u.node
			rec.hasParent = true

			continue
		}

		// Closed records are final; equal-or-worse paths are ignored.
		if rec.closed || tentative >= rec.g {
			continue
		}

		// Cheaper path to an open record: decrease-key in place. The cached
		// estimate is rec.f - rec.g, unchanged by relaxation.
		est = rec.f - rec.g
		rec.g = tentative
		rec.f = tentative + est
		rec.parent = u.node
		rec.hasParent = true
		r.st.fix(rec)
	}

	return nil
}
