// This file implements the Request object: a mutable-state-machine query
// holder with an immutable-while-in-flight contract, clear-and-reuse with
// keep-flags, synchronous and asynchronous execution, and completion
// handlers that fire exactly once per query.
package route

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/core"
)

// HeuristicProvider builds a per-goal heuristic. The routing layer invokes
// it once per leg goal, so multi-stop queries get a correctly targeted
// estimate for every leg. A nil provider means zero heuristic everywhere
// (uniform-cost legs).
type HeuristicProvider[N comparable] func(goal N) core.Heuristic[N]

// Request is a reusable pathfinding query over one graph: either a plain
// (multi-)stop path, or an option evaluation when candidates are present.
//
// Lifecycle: configure while StateMutable, execute with Run or Go (the
// request becomes StateInFlight — every setter fails loudly with
// ErrRequestInFlight), then read the result in StateCompleted and Clear
// back to StateMutable. A hard kernel error leaves the request
// StateAborted; Clear recovers it.
//
// A Request owns a pooled kernel Searcher, so repeated queries reuse the
// frontier and open-set buffers.
type Request[N comparable, S any] struct {
	mu    sync.Mutex
	state State

	graph     core.Graph[N]
	provider  HeuristicProvider[N]
	modifier  core.EdgeModifier[N]
	processor core.PathProcessor[N, S]
	validator Validator[N]
	reserver  Reserver[N]
	comparer  Comparer[N]

	stops      []N
	candidates []Candidate[N]
	queryStart *N
	mode       Mode
	maxExpand  int
	maxCost    float64
	maxRetries int // -1 selects the default: the number of candidates
	reuse      bool
	handlers   []func(Path[N, S])

	searcher  *astar.Searcher[N]
	result    Path[N, S]
	hasResult bool
}

// NewRequest creates an empty, mutable request.
func NewRequest[N comparable, S any]() *Request[N, S] {
	return &Request[N, S]{
		maxCost:    math.Inf(1),
		maxRetries: -1,
		searcher:   astar.NewSearcher[N](),
	}
}

// mutate runs apply under the single mutability guard shared by every
// setter: configuration changes are legal only in StateMutable.
func (r *Request[N, S]) mutate(apply func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateMutable {
		return fmt.Errorf("%w: state=%s", ErrRequestInFlight, r.state)
	}
	apply()

	return nil
}

// State returns the current lifecycle state.
func (r *Request[N, S]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.state
}

// Result returns the last materialized result, if the request completed.
func (r *Request[N, S]) Result() (Path[N, S], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.result, r.hasResult
}

// SetGraph installs the graph to search.
func (r *Request[N, S]) SetGraph(g core.Graph[N]) error {
	return r.mutate(func() { r.graph = g })
}

// SetHeuristic installs the per-goal heuristic provider.
func (r *Request[N, S]) SetHeuristic(p HeuristicProvider[N]) error {
	return r.mutate(func() { r.provider = p })
}

// SetModifier installs the per-edge veto/adjustment hook.
func (r *Request[N, S]) SetModifier(m core.EdgeModifier[N]) error {
	return r.mutate(func() { r.modifier = m })
}

// SetProcessor installs the path processor applied once over the full
// concatenated raw sequence.
func (r *Request[N, S]) SetProcessor(p core.PathProcessor[N, S]) error {
	return r.mutate(func() { r.processor = p })
}

// SetValidator installs the option validator for the retry protocol.
func (r *Request[N, S]) SetValidator(v Validator[N]) error {
	return r.mutate(func() { r.validator = v })
}

// SetReserver installs the option reserver for the retry protocol.
func (r *Request[N, S]) SetReserver(rs Reserver[N]) error {
	return r.mutate(func() { r.reserver = rs })
}

// SetComparer installs the candidate ranking used by Priority mode.
func (r *Request[N, S]) SetComparer(c Comparer[N]) error {
	return r.mutate(func() { r.comparer = c })
}

// SetMode selects the option-evaluation mode. Ignored for plain path
// queries (no candidates).
func (r *Request[N, S]) SetMode(m Mode) error {
	return r.mutate(func() { r.mode = m })
}

// SetMaxExpand caps node expansions per kernel invocation (per leg).
// n must be ≥ 0; 0 disables the cap.
func (r *Request[N, S]) SetMaxExpand(n int) error {
	if n < 0 {
		return astar.ErrBadMaxExpand
	}

	return r.mutate(func() { r.maxExpand = n })
}

// SetMaxCost caps the accumulated cost explored per kernel invocation.
func (r *Request[N, S]) SetMaxCost(c float64) error {
	if math.IsNaN(c) || c < 0 {
		return astar.ErrBadMaxCost
	}

	return r.mutate(func() { r.maxCost = c })
}

// SetMaxRetries bounds validator-rejection retries during option
// evaluation. -1 selects the default (the number of candidates); 0 means a
// single rejection yields "no path" without a second attempt.
func (r *Request[N, S]) SetMaxRetries(n int) error {
	if n < -1 {
		return ErrBadMaxRetries
	}

	return r.mutate(func() { r.maxRetries = n })
}

// SetReuse toggles result-object reuse: when enabled, each Run writes into
// the same backing arrays, so a returned Path is valid only until the next
// Run. Off by default (every Run returns freshly owned memory).
func (r *Request[N, S]) SetReuse(on bool) error {
	return r.mutate(func() { r.reuse = on })
}

// SetQueryStart records the precise query-start node. If the configured
// processor requests it (InsertQueryStart), this value replaces the first
// raw node before processing — the canonical start node is swapped for the
// exact fractional start position.
func (r *Request[N, S]) SetQueryStart(n N) error {
	return r.mutate(func() { v := n; r.queryStart = &v })
}

// AddStop appends one stop to the stop sequence.
func (r *Request[N, S]) AddStop(n N) error {
	return r.mutate(func() { r.stops = append(r.stops, n) })
}

// AddStops appends a full stop sequence in order.
func (r *Request[N, S]) AddStops(ns ...N) error {
	return r.mutate(func() { r.stops = append(r.stops, ns...) })
}

// AddOption appends a competing candidate: a caller payload, a goal node,
// and optional via-stops between the shared start and the goal. The shared
// start (and any common prefix) is the request's stop list.
func (r *Request[N, S]) AddOption(value any, goal N, via ...N) error {
	return r.mutate(func() {
		r.candidates = append(r.candidates, Candidate[N]{Value: value, Goal: goal, Via: via})
	})
}

// OnComplete registers a completion handler. Handlers fire exactly once
// per successful query, after result materialization and before the
// request becomes usable again; they run on the executing goroutine.
func (r *Request[N, S]) OnComplete(fn func(Path[N, S])) error {
	if fn == nil {
		return r.mutate(func() {})
	}

	return r.mutate(func() { r.handlers = append(r.handlers, fn) })
}

// Clear resets the request for a new query, preserving the fields selected
// by keep, and returns the state to Mutable. Clearing an in-flight request
// fails with ErrRequestInFlight. Clearing an already mutable request is a
// no-op apart from the resets (idempotent).
//
// Mode, budgets, processor and comparer are always reset; the reuse flag
// is a property of the request object and survives Clear.
func (r *Request[N, S]) Clear(keep Keep) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == StateInFlight {
		return fmt.Errorf("%w: state=%s", ErrRequestInFlight, r.state)
	}

	if keep&KeepGraph == 0 {
		r.graph = nil
	}
	if keep&KeepHeuristic == 0 {
		r.provider = nil
	}
	if keep&KeepModifier == 0 {
		r.modifier = nil
	}
	if keep&KeepValidator == 0 {
		r.validator = nil
	}
	if keep&KeepReserver == 0 {
		r.reserver = nil
	}
	if keep&KeepNodes == 0 {
		r.stops = r.stops[:0]
		r.candidates = r.candidates[:0]
		r.queryStart = nil
	}
	if keep&KeepHandlers == 0 {
		r.handlers = nil
	}

	r.processor = nil
	r.comparer = nil
	r.mode = FirstMatch
	r.maxExpand = 0
	r.maxCost = math.Inf(1)
	r.maxRetries = -1
	r.hasResult = false
	if !r.reuse {
		r.result = Path[N, S]{}
	}
	r.state = StateMutable

	return nil
}

// Run executes the query synchronously: multi-stop path assembly when no
// candidates are present, option evaluation otherwise. The request is
// immutable for the duration and StateCompleted afterwards.
//
// Absence of a path is not an error: it comes back as Path{Found: false}.
// Errors signal caller bugs (nil graph, empty stop list, bad costs) and
// leave the request StateAborted.
func (r *Request[N, S]) Run() (Path[N, S], error) {
	if err := r.begin(); err != nil {
		return Path[N, S]{}, err
	}
	p, err := r.execute()

	return r.finish(p, err)
}

// Go executes the query asynchronously on a new goroutine. Completion
// handlers fire on that goroutine after materialization; callers without
// handlers can poll State and read Result. A hard error moves the request
// to StateAborted without firing handlers.
func (r *Request[N, S]) Go() error {
	if err := r.begin(); err != nil {
		return err
	}
	go func() {
		p, err := r.execute()
		_, _ = r.finish(p, err)
	}()

	return nil
}

// begin validates the configuration and transitions Mutable → InFlight.
func (r *Request[N, S]) begin() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateMutable {
		return fmt.Errorf("%w: state=%s", ErrRequestInFlight, r.state)
	}
	if r.graph == nil {
		return ErrNilGraph
	}
	if len(r.stops) == 0 {
		// Plain queries need at least one stop; option queries need the
		// shared start, which is the first stop.
		return ErrNoStops
	}
	if len(r.candidates) > 0 && r.mode == Priority && r.comparer == nil {
		return ErrNoComparer
	}
	r.state = StateInFlight

	return nil
}

// execute dispatches to the configured query kind. It runs in StateInFlight,
// where the immutability guard blocks all configuration writes, so reading
// the configuration without the lock is race-free.
func (r *Request[N, S]) execute() (Path[N, S], error) {
	if len(r.candidates) > 0 {
		return r.evaluate()
	}
	asm, err := r.assemble(r.stops)
	if err != nil {
		return Path[N, S]{}, err
	}

	return r.materialize(asm, 0, nil), nil
}

// finish stores the result, fires completion handlers exactly once, and
// transitions to Completed — or to Aborted on a hard error.
func (r *Request[N, S]) finish(p Path[N, S], err error) (Path[N, S], error) {
	if err != nil {
		r.mu.Lock()
		r.state = StateAborted
		r.mu.Unlock()

		return Path[N, S]{}, err
	}

	// The result store happens under the lock: with Go in flight a caller
	// may poll Result concurrently with this write.
	r.mu.Lock()
	r.result = p
	r.hasResult = true
	handlers := r.handlers
	r.mu.Unlock()

	// Handlers run before the state flips: the request is not usable again
	// until they return.
	for _, fn := range handlers {
		fn(p)
	}

	r.mu.Lock()
	r.state = StateCompleted
	r.mu.Unlock()

	return p, nil
}

// heuristicFor resolves the per-goal heuristic for one leg.
func (r *Request[N, S]) heuristicFor(goal N) core.Heuristic[N] {
	if r.provider == nil {
		return core.ZeroHeuristic[N]
	}
	if h := r.provider(goal); h != nil {
		return h
	}

	return core.ZeroHeuristic[N]
}

// kernelOpts translates the request budgets and modifier into kernel
// options, applied to every leg invocation.
func (r *Request[N, S]) kernelOpts() []astar.Option[N] {
	opts := make([]astar.Option[N], 0, 3)
	if r.maxExpand > 0 {
		opts = append(opts, astar.WithMaxExpand[N](r.maxExpand))
	}
	if !math.IsInf(r.maxCost, 1) {
		opts = append(opts, astar.WithMaxCost[N](r.maxCost))
	}
	if r.modifier != nil {
		opts = append(opts, astar.WithModifier[N](r.modifier))
	}

	return opts
}

// materialize converts an assembly into an owned Path: splices the precise
// query start when the processor asks for it, runs the processor exactly
// once over the full sequence, and honors the reuse mode.
func (r *Request[N, S]) materialize(asm assembly[N], retries int, winner *Candidate[N]) Path[N, S] {
	p := Path[N, S]{
		Found:    asm.found,
		Expanded: asm.expanded,
		Retries:  retries,
		Stopped:  asm.stopped,
	}
	if !asm.found {
		return p
	}
	p.Cost = asm.cost
	p.Winner = winner

	raw := asm.raw
	proc := r.resolveProcessor()
	if proc != nil && proc.InsertQueryStart() && r.queryStart != nil && len(raw) > 0 {
		raw[0] = *r.queryStart
	}

	if r.reuse {
		p.Raw = append(r.result.Raw[:0], raw...)
	} else {
		p.Raw = raw
	}
	if proc != nil {
		segments := proc.Process(p.Raw)
		if r.reuse {
			p.Segments = append(r.result.Segments[:0], segments...)
		} else {
			p.Segments = segments
		}
	}

	return p
}

// resolveProcessor returns the configured processor, falling back to the
// identity NodeProcessor when none is set and the segment type equals the
// node type.
func (r *Request[N, S]) resolveProcessor() core.PathProcessor[N, S] {
	if r.processor != nil {
		return r.processor
	}
	if ident, ok := any(core.NodeProcessor[N]{}).(core.PathProcessor[N, S]); ok {
		return ident
	}

	return nil
}
