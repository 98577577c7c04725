// Package route is the request layer over the wayfind kernel: reusable
// query objects, multi-stop path assembly, competing-option evaluation
// with a validate/reserve/retry protocol, and batched multi-queries.
//
// Overview:
//
//   - Request[N, S] holds one query's full configuration — graph,
//     heuristic provider, edge modifier, path processor, stops, option
//     candidates, budgets, hooks — and executes it synchronously (Run) or
//     asynchronously (Go) with exactly-once completion handlers.
//   - Multi-stop queries run the kernel once per consecutive stop pair,
//     concatenate the legs (dropping duplicate boundary nodes), and hand
//     the full sequence to the path processor in a single pass, so
//     cross-leg smoothing sees complete context.
//   - Option queries pit N candidate goals sharing one start against each
//     other in FirstMatch, Cheapest or Priority mode; the winner must pass
//     the validator before the reserver commits it, and a rejected winner
//     is dropped and the evaluation retried over the remaining set.
//   - Batch[N, S] runs an array of independent stop-sequences over one
//     read-only graph — sequentially in one unit of work, or fanned out to
//     a bounded worker pool.
//
// Lifecycle contract:
//
//   - A request is a state machine: Mutable → InFlight → Completed (or
//     Aborted on a hard error), back to Mutable via Clear. Every setter is
//     guarded by one mutability check; mutating an in-flight request fails
//     loudly with ErrRequestInFlight, never silently corrupts state.
//   - Clear accepts keep-flags (KeepGraph, KeepHeuristic, KeepModifier,
//     KeepValidator, KeepReserver, KeepNodes, KeepHandlers) so unchanged
//     configuration survives between queries. Clearing and re-running an
//     identical query yields an identical result.
//   - Completion handlers fire exactly once, after result materialization,
//     before the request is usable again.
//
// Outcome semantics:
//
//   - "No path found", an exceeded expansion budget, and retry exhaustion
//     are results (Path with Found=false), never errors; Path.Stopped
//     tells provable unreachability (StopExhausted) apart from a budget
//     cutoff (StopBudget).
//   - Errors are reserved for caller bugs: nil graph, empty stop list,
//     Priority mode without a comparer, NaN/negative costs, mutation of
//     in-flight state.
//
// Retry protocol:
//
//	evaluate → validate → (reserve and return) or (drop candidate, retry)
//
// The loop is explicit, not recursive, and bounded by MaxRetries (default:
// the number of candidates). It guards against races where an external
// resource becomes unavailable between search and commit — several agents
// picking the same target on one tick, for instance.
//
// Concurrency:
//
//   - One request executes one query at a time; independent requests over
//     the same immutable graph run fully in parallel (each owns private
//     kernel state). Batch's parallel mode is built on exactly this
//     property, with golang.org/x/sync/errgroup bounding the fan-out.
//   - The graph, heuristic and modifier must not be mutated concurrently
//     with an in-flight query; serializing graph mutation against search
//     execution is the caller's responsibility.
//
// See also:
//
//   - astar: the underlying kernel (Search, Expand, budgets, StopReason).
//   - core: the Graph/Heuristic/EdgeModifier/PathProcessor contracts.
package route
