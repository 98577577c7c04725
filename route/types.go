// Package route defines request states, keep-flags, option-evaluation
// modes, sentinel errors, and the materialized Path result type.
package route

import (
	"errors"

	"github.com/katalvlaran/wayfind/astar"
)

// Sentinel errors for request and batch usage. These signal caller bugs
// and are returned immediately at the call site; "no path found" is never
// an error (it is a Path with Found=false).
var (
	// ErrNilGraph indicates Run was invoked without a graph.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNoStops indicates an empty stop list where at least one stop is
	// required.
	ErrNoStops = errors.New("route: stop list is empty")

	// ErrNoComparer indicates Priority mode was requested without a
	// comparer to rank the candidates.
	ErrNoComparer = errors.New("route: Priority mode requires a comparer")

	// ErrRequestInFlight indicates a configuration mutation was attempted
	// while the request was in flight or not yet cleared. This is a hard
	// contract: violated calls fail loudly instead of corrupting state.
	ErrRequestInFlight = errors.New("route: request is not mutable")

	// ErrBatchRunning indicates a batch append while RunAll was executing.
	ErrBatchRunning = errors.New("route: batch mutated while running")

	// ErrBadParallelism indicates a negative worker limit.
	ErrBadParallelism = errors.New("route: parallelism must be non-negative")

	// ErrBadMaxRetries indicates a negative retry budget other than the
	// -1 "default" marker.
	ErrBadMaxRetries = errors.New("route: MaxRetries must be ≥ -1")
)

// State is the request lifecycle state. All configuration setters are
// guarded by one "must be mutable" check; a request executes exactly one
// query per Mutable→InFlight→Completed cycle and returns to Mutable via
// Clear.
type State int

const (
	// StateMutable — the request accepts configuration and can Run.
	StateMutable State = iota

	// StateInFlight — a query is executing; all mutation fails with
	// ErrRequestInFlight. Completion handlers run in this state.
	StateInFlight

	// StateCompleted — the query finished; the result is retrievable.
	// Call Clear to make the request mutable again.
	StateCompleted

	// StateAborted — the query hit a hard error (caller bug); the result
	// is unusable. Call Clear to recover.
	StateAborted
)

// String returns a human-readable form of the state.
func (s State) String() string {
	switch s {
	case StateMutable:
		return "mutable"
	case StateInFlight:
		return "in-flight"
	case StateCompleted:
		return "completed"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Keep selects fields Clear preserves, so unchanged configuration need not
// be re-specified between queries. Flags combine with bitwise OR.
type Keep uint16

const (
	// KeepGraph preserves the graph reference.
	KeepGraph Keep = 1 << iota

	// KeepHeuristic preserves the heuristic.
	KeepHeuristic

	// KeepModifier preserves the edge modifier.
	KeepModifier

	// KeepValidator preserves the option validator.
	KeepValidator

	// KeepReserver preserves the option reserver.
	KeepReserver

	// KeepNodes preserves the stop list, the option candidates, and the
	// precise query-start node.
	KeepNodes

	// KeepHandlers preserves the registered completion handlers.
	KeepHandlers

	// KeepAll preserves every recognized field.
	KeepAll = KeepGraph | KeepHeuristic | KeepModifier | KeepValidator |
		KeepReserver | KeepNodes | KeepHandlers
)

// Mode selects how competing option candidates are evaluated.
type Mode int

const (
	// FirstMatch evaluates candidates in caller-supplied order and returns
	// the first one that is reachable and passes validation.
	FirstMatch Mode = iota

	// Cheapest returns the globally cheapest reachable candidate. The
	// search runs to exhaustion over the relevant frontier; an early exit
	// on the first goal reached would miss cheaper later goals.
	Cheapest

	// Priority ranks candidates with the request's comparer, then applies
	// FirstMatch semantics over the ranked order. The ranking is redone on
	// every retry.
	Priority
)

// Candidate is one competing goal in an option evaluation: an arbitrary
// caller payload, the goal node, and optional via-stops between the shared
// start and the goal.
type Candidate[N comparable] struct {
	// Value is the caller's payload, carried through to the winner.
	Value any

	// Goal is the candidate's goal node.
	Goal N

	// Via are optional intermediate stops between the shared start and
	// Goal, visited in order.
	Via []N
}

// Validator confirms a chosen candidate before it is committed. Returning
// false removes the candidate from the running and triggers a retry over
// the remaining set.
type Validator[N comparable] func(c Candidate[N]) bool

// Reserver commits the winning candidate (e.g. marks a resource claimed).
// Invoked exactly once per successful evaluation, after validation.
type Reserver[N comparable] func(c Candidate[N])

// Comparer ranks candidates for Priority mode: it reports whether a should
// be evaluated before b.
type Comparer[N comparable] func(a, b Candidate[N]) bool

// Path is the materialized result of a request: an owned, caller-stable
// object independent of the kernel's pooled buffers.
//
// If Found is false, Cost is undefined and both sequences are empty;
// Stopped then distinguishes provable unreachability from a budget cutoff.
type Path[N comparable, S any] struct {
	// Found reports whether a path (and, for option queries, a valid
	// winner) was established.
	Found bool

	// Cost is the total accumulated cost across all legs.
	Cost float64

	// Raw is the concatenated node sequence across all legs.
	Raw []N

	// Segments is the path-processor output over the full raw sequence,
	// produced by exactly one processor pass. Nil when no processor is
	// configured and the segment type differs from the node type.
	Segments []S

	// Winner is the victorious candidate of an option evaluation; nil for
	// plain path queries and for failed evaluations.
	Winner *Candidate[N]

	// Expanded totals the node expansions across all kernel invocations
	// that served this query.
	Expanded int

	// Retries counts validator rejections that forced a re-evaluation.
	Retries int

	// Stopped records why the final kernel invocation terminated.
	Stopped astar.StopReason
}
