// This file implements the batched multi-query: an array of independent
// stop-sequences over one read-only graph, executed sequentially in one
// unit of work or fanned out to a bounded worker pool.
package route

import (
	"math"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/core"
)

// Batch collects independent path queries sharing one graph and runs them
// as a single unit of work, amortizing per-query overhead. Requests share
// nothing but the graph, which must stay read-only for the duration of
// RunAll.
//
// Append and setter calls on a running batch fail loudly with
// ErrBatchRunning — the same immutability-while-in-flight contract as
// Request.
type Batch[N comparable, S any] struct {
	mu      sync.Mutex
	running bool

	graph     core.Graph[N]
	provider  HeuristicProvider[N]
	modifier  core.EdgeModifier[N]
	processor core.PathProcessor[N, S]
	maxExpand int
	maxCost   float64
	parallel  int
	queries   [][]N
}

// NewBatch creates an empty batch over g.
func NewBatch[N comparable, S any](g core.Graph[N]) *Batch[N, S] {
	return &Batch[N, S]{graph: g, maxCost: math.Inf(1)}
}

// mutate applies a configuration change if the batch is not running.
func (b *Batch[N, S]) mutate(apply func()) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running {
		return ErrBatchRunning
	}
	apply()

	return nil
}

// SetHeuristic installs the per-goal heuristic provider for all queries.
func (b *Batch[N, S]) SetHeuristic(p HeuristicProvider[N]) error {
	return b.mutate(func() { b.provider = p })
}

// SetModifier installs the per-edge hook for all queries.
func (b *Batch[N, S]) SetModifier(m core.EdgeModifier[N]) error {
	return b.mutate(func() { b.modifier = m })
}

// SetProcessor installs the path processor for all queries.
func (b *Batch[N, S]) SetProcessor(p core.PathProcessor[N, S]) error {
	return b.mutate(func() { b.processor = p })
}

// SetMaxExpand caps node expansions per leg for all queries.
// n must be ≥ 0; 0 disables the cap.
func (b *Batch[N, S]) SetMaxExpand(n int) error {
	if n < 0 {
		return astar.ErrBadMaxExpand
	}

	return b.mutate(func() { b.maxExpand = n })
}

// SetMaxCost caps the accumulated cost explored per leg for all queries.
func (b *Batch[N, S]) SetMaxCost(c float64) error {
	if math.IsNaN(c) || c < 0 {
		return astar.ErrBadMaxCost
	}

	return b.mutate(func() { b.maxCost = c })
}

// SetParallel sets the worker limit for RunAll: 0 or 1 runs queries
// sequentially on the calling goroutine, n > 1 fans out to at most n
// goroutines. Negative values return ErrBadParallelism.
func (b *Batch[N, S]) SetParallel(n int) error {
	if n < 0 {
		return ErrBadParallelism
	}

	return b.mutate(func() { b.parallel = n })
}

// Add appends one independent query as a full stop sequence.
// An empty sequence is rejected with ErrNoStops.
func (b *Batch[N, S]) Add(stops ...N) error {
	if len(stops) == 0 {
		return ErrNoStops
	}
	owned := make([]N, len(stops))
	copy(owned, stops)

	return b.mutate(func() { b.queries = append(b.queries, owned) })
}

// Len returns the number of queued queries.
func (b *Batch[N, S]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.queries)
}

// RunAll executes every queued query and returns per-query results in
// append order. Queries are independent: a not-found result for one does
// not affect the others, and only hard errors (caller bugs) abort the
// batch. The queue survives RunAll, so a batch can be re-run against an
// updated graph.
//
// With parallelism n > 1 each query gets its own request (own pooled
// kernel state) and the graph is read concurrently — legal because every
// invocation's frontier is private.
func (b *Batch[N, S]) RunAll() ([]Path[N, S], error) {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()

		return nil, ErrBatchRunning
	}
	if b.graph == nil {
		b.mu.Unlock()

		return nil, ErrNilGraph
	}
	b.running = true
	queries := b.queries
	parallel := b.parallel
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
	}()

	out := make([]Path[N, S], len(queries))
	if parallel <= 1 {
		// Sequential mode reuses one request (and its pooled kernel
		// buffers) across the whole batch.
		req := NewRequest[N, S]()
		for i, stops := range queries {
			p, err := b.runOne(req, stops)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}

		return out, nil
	}

	var eg errgroup.Group
	eg.SetLimit(parallel)
	for i, stops := range queries {
		i, stops := i, stops
		eg.Go(func() error {
			p, err := b.runOne(NewRequest[N, S](), stops)
			if err != nil {
				return err
			}
			out[i] = p

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// runOne configures req for one stop sequence and executes it.
func (b *Batch[N, S]) runOne(req *Request[N, S], stops []N) (Path[N, S], error) {
	if err := req.Clear(0); err != nil {
		return Path[N, S]{}, err
	}
	if err := req.SetGraph(b.graph); err != nil {
		return Path[N, S]{}, err
	}
	if err := req.SetHeuristic(b.provider); err != nil {
		return Path[N, S]{}, err
	}
	if b.modifier != nil {
		if err := req.SetModifier(b.modifier); err != nil {
			return Path[N, S]{}, err
		}
	}
	if b.processor != nil {
		if err := req.SetProcessor(b.processor); err != nil {
			return Path[N, S]{}, err
		}
	}
	if b.maxExpand > 0 {
		if err := req.SetMaxExpand(b.maxExpand); err != nil {
			return Path[N, S]{}, err
		}
	}
	if !math.IsInf(b.maxCost, 1) {
		if err := req.SetMaxCost(b.maxCost); err != nil {
			return Path[N, S]{}, err
		}
	}
	if err := req.AddStops(stops...); err != nil {
		return Path[N, S]{}, err
	}

	return req.Run()
}
