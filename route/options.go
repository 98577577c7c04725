// This file implements option evaluation: N candidate goals sharing one
// start, resolved in FirstMatch, Cheapest or Priority mode, wrapped in the
// validate/reserve/retry protocol.
package route

import (
	"sort"

	"github.com/katalvlaran/wayfind/astar"
)

// attempt is the outcome of one evaluation pass over the remaining
// candidate pool: the winning pool position (or -1 if nothing is
// reachable) and its assembled traversal.
type attempt[N comparable] struct {
	pos      int
	asm      assembly[N]
	expanded int // expansions across the whole pass, winners and losers alike
}

// evaluate runs the retry loop: pick a winner by mode, validate it,
// reserve-and-return on success, or drop the candidate and re-run on
// rejection until the retry budget is spent or the pool empties. Retry
// exhaustion resolves as "no path found", never as an error.
//
// The loop is explicit rather than recursive, so a large retry budget
// cannot grow the call stack.
func (r *Request[N, S]) evaluate() (Path[N, S], error) {
	// Working pool of remaining candidates; rejected ones are removed and
	// no longer compete in subsequent attempts.
	pool := make([]Candidate[N], len(r.candidates))
	copy(pool, r.candidates)

	maxRetries := r.maxRetries
	if maxRetries < 0 {
		maxRetries = len(pool) // default: one retry per option
	}

	var (
		retries  int
		expanded int
		att      attempt[N]
		err      error
	)
	for len(pool) > 0 {
		if att, err = r.pick(pool); err != nil {
			return Path[N, S]{}, err
		}
		expanded += att.expanded

		if att.pos < 0 {
			// Nothing reachable in the remaining pool.
			return r.materialize(assembly[N]{expanded: expanded, stopped: att.asm.stopped}, retries, nil), nil
		}

		winner := pool[att.pos]
		if r.validator == nil || r.validator(winner) {
			if r.reserver != nil {
				r.reserver(winner)
			}
			att.asm.expanded = expanded

			return r.materialize(att.asm, retries, &winner), nil
		}

		// Validation rejected the winner: it no longer competes.
		pool = append(pool[:att.pos], pool[att.pos+1:]...)
		retries++
		if retries > maxRetries {
			break
		}
	}

	return r.materialize(assembly[N]{expanded: expanded, stopped: astar.StopExhausted}, retries, nil), nil
}

// pick selects this attempt's winner from the pool according to the mode.
func (r *Request[N, S]) pick(pool []Candidate[N]) (attempt[N], error) {
	switch r.mode {
	case Cheapest:
		return r.pickCheapest(pool)
	case Priority:
		// Rank pool positions with a stable sort: caller order survives
		// among equally ranked candidates, and the ranking is redone on
		// every retry (validity may have changed the pool).
		order := make([]int, len(pool))
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(i, j int) bool {
			return r.comparer(pool[order[i]], pool[order[j]])
		})

		return r.pickFirst(pool, order)
	default:
		order := make([]int, len(pool))
		for i := range order {
			order[i] = i
		}

		return r.pickFirst(pool, order)
	}
}

// pickFirst evaluates candidates in the given position order and returns
// the first reachable one — FirstMatch semantics.
func (r *Request[N, S]) pickFirst(pool []Candidate[N], order []int) (attempt[N], error) {
	out := attempt[N]{pos: -1, asm: assembly[N]{stopped: astar.StopExhausted}}
	var asm assembly[N]
	var err error
	for _, pos := range order {
		if asm, err = r.assemble(r.candidateStops(pool[pos])); err != nil {
			return attempt[N]{}, err
		}
		out.expanded += asm.expanded
		if asm.found {
			out.pos = pos
			out.asm = asm

			return out, nil
		}
		out.asm.stopped = asm.stopped
	}

	return out, nil
}

// pickCheapest finds the globally cheapest reachable candidate. When every
// candidate is a plain goal from the shared start (no via-stops, no stop
// prefix), one shared-frontier Dijkstra expansion serves all of them: each
// node is finalized at most once regardless of how many options compete,
// and running to exhaustion guarantees no later-finalized goal could have
// been cheaper. Otherwise each candidate's stop sequence is assembled
// independently and the minimum taken.
//
// Ties between equally cheap candidates resolve to the lowest pool index
// in both strategies.
func (r *Request[N, S]) pickCheapest(pool []Candidate[N]) (attempt[N], error) {
	if r.sharedFrontierEligible(pool) {
		return r.pickCheapestShared(pool)
	}

	out := attempt[N]{pos: -1, asm: assembly[N]{stopped: astar.StopExhausted}}
	var asm assembly[N]
	var err error
	for pos, c := range pool {
		if asm, err = r.assemble(r.candidateStops(c)); err != nil {
			return attempt[N]{}, err
		}
		out.expanded += asm.expanded
		if !asm.found {
			// Keep the stop reason while nothing has been found: a budget
			// cutoff must stay distinguishable from exhaustion.
			if out.pos < 0 {
				out.asm.stopped = asm.stopped
			}

			continue
		}
		// Strict < keeps the earliest (lowest-index) candidate on ties.
		if out.pos < 0 || asm.cost < out.asm.cost {
			out.pos = pos
			out.asm = asm
		}
	}

	return out, nil
}

// sharedFrontierEligible reports whether one expansion from the shared
// start can price every candidate: a single-stop prefix and no via-stops.
func (r *Request[N, S]) sharedFrontierEligible(pool []Candidate[N]) bool {
	if len(r.stops) != 1 {
		return false
	}
	for _, c := range pool {
		if len(c.Via) > 0 {
			return false
		}
	}

	return true
}

// pickCheapestShared prices all candidates off one full-frontier expansion
// from the shared start. The expansion ignores the heuristic (it is a
// Dijkstra sweep), so cheapest-mode correctness does not depend on
// admissibility here.
func (r *Request[N, S]) pickCheapestShared(pool []Candidate[N]) (attempt[N], error) {
	table, err := r.searcher.Expand(r.graph, r.stops[0], r.kernelOpts()...)
	if err != nil {
		return attempt[N]{}, err
	}

	out := attempt[N]{
		pos:      -1,
		asm:      assembly[N]{stopped: table.Stopped()},
		expanded: table.Expanded(),
	}
	var best float64
	for pos, c := range pool {
		cost, ok := table.Cost(c.Goal)
		if !ok {
			continue
		}
		if out.pos < 0 || cost < best {
			out.pos = pos
			best = cost
		}
	}
	if out.pos < 0 {
		return out, nil
	}

	raw, _ := table.PathTo(pool[out.pos].Goal)
	out.asm = assembly[N]{
		raw:      raw,
		cost:     best,
		expanded: table.Expanded(),
		stopped:  table.Stopped(),
		found:    true,
	}

	return out, nil
}

// candidateStops builds a candidate's full stop sequence: the request's
// shared stop prefix, the candidate's via-stops, then its goal.
func (r *Request[N, S]) candidateStops(c Candidate[N]) []N {
	stops := make([]N, 0, len(r.stops)+len(c.Via)+1)
	stops = append(stops, r.stops...)
	stops = append(stops, c.Via...)
	stops = append(stops, c.Goal)

	return stops
}
