// This file implements multi-stop path assembly: one kernel run per
// consecutive stop pair, concatenated into a single raw sequence that the
// path processor sees exactly once, with full cross-leg context.
package route

import (
	"github.com/katalvlaran/wayfind/astar"
)

// assembly aggregates a multi-leg traversal before materialization.
type assembly[N comparable] struct {
	raw      []N
	cost     float64
	expanded int
	stopped  astar.StopReason
	found    bool
}

// assemble stitches a path through the ordered stop list: the kernel runs
// once per consecutive pair, node sequences concatenate with the duplicate
// boundary node dropped, and per-leg costs sum. Any leg without a path
// fails the whole query — partial results are discarded.
//
// A single stop is the degenerate "search from this location to itself":
// found, cost 0, length-1 sequence, no kernel invocation.
func (r *Request[N, S]) assemble(stops []N) (assembly[N], error) {
	if len(stops) == 0 {
		return assembly[N]{}, ErrNoStops
	}

	out := assembly[N]{stopped: astar.StopGoal, found: true}
	if len(stops) == 1 {
		out.raw = []N{stops[0]}

		return out, nil
	}

	opts := r.kernelOpts()
	var res astar.Result[N]
	var err error
	for i := 0; i+1 < len(stops); i++ {
		res, err = r.searcher.Search(r.graph, stops[i], stops[i+1], r.heuristicFor(stops[i+1]), opts...)
		if err != nil {
			return assembly[N]{}, err
		}
		out.expanded += res.Expanded
		out.stopped = res.Stopped

		if !res.Found {
			// The whole multi-stop query fails, but the expansion total and
			// the stop reason of the failing leg survive for observability.
			return assembly[N]{expanded: out.expanded, stopped: res.Stopped}, nil
		}

		if len(out.raw) == 0 {
			out.raw = append(out.raw, res.Path...)
		} else {
			// Drop the duplicate boundary node between legs.
			out.raw = append(out.raw, res.Path[1:]...)
		}
		out.cost += res.Cost
	}

	return out, nil
}
