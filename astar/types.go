// Package astar defines configuration options, sentinel errors, and result
// types for the wayfind search kernel.
//
// The kernel is one best-first loop parameterized over a comparable node
// type. Two modes share it: goal-directed A* (Search) and full-frontier
// Dijkstra expansion (Expand).
//
// Options:
//
//   - WithMaxExpand(n): stop after n node expansions (0 = unlimited).
//   - WithMaxCost(c):   never relax a node whose accumulated cost exceeds c.
//   - WithModifier(m):  per-edge veto/adjustment hook.
//   - WithSeeds(s...):  additional start nodes seeded at cost 0.
//
// Errors (sentinel):
//
//   - ErrNilGraph      if the provided graph is nil.
//   - ErrNilHeuristic  if a nil heuristic is passed to Search.
//   - ErrBadEdgeCost   if a NaN or negative edge cost reaches relaxation.
//   - ErrBadMaxExpand  if MaxExpand is negative (panics in the constructor).
//   - ErrBadMaxCost    if MaxCost is negative or NaN (panics in the constructor).
package astar

import (
	"errors"
	"math"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for kernel invocation.
var (
	// ErrNilGraph indicates a nil graph was passed to Search or Expand.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic indicates a nil heuristic was passed to Search.
	// Use core.ZeroHeuristic to request uniform-cost search explicitly.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrBadEdgeCost indicates the graph or an edge modifier produced a NaN
	// or negative incremental cost during relaxation.
	ErrBadEdgeCost = errors.New("astar: NaN or negative edge cost encountered")

	// ErrBadEstimate indicates the heuristic produced a NaN or negative
	// estimate. Heuristics must be non-negative and finite-or-zero.
	ErrBadEstimate = errors.New("astar: NaN or negative heuristic estimate")

	// ErrBadMaxExpand indicates a negative expansion budget.
	ErrBadMaxExpand = errors.New("astar: MaxExpand must be non-negative")

	// ErrBadMaxCost indicates a negative or NaN cost budget.
	ErrBadMaxCost = errors.New("astar: MaxCost must be non-negative")
)

// StopReason explains why a search loop terminated. It lets callers tell a
// provably unreachable goal (StopExhausted) apart from a search that ran
// out of expansion budget before resolving reachability (StopBudget).
type StopReason int

const (
	// StopGoal means the goal node was dequeued: a shortest path was found.
	StopGoal StopReason = iota

	// StopExhausted means the open set drained without reaching the goal:
	// no finite-cost path exists (within the cost budget, if one was set).
	StopExhausted

	// StopBudget means the expansion budget was hit first: reachability was
	// not determined either way.
	StopBudget
)

// String returns a human-readable form of the stop reason.
func (s StopReason) String() string {
	switch s {
	case StopGoal:
		return "goal"
	case StopExhausted:
		return "exhausted"
	case StopBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// Options configures one kernel invocation.
//
// MaxExpand — expansion-count budget; 0 disables the cutoff.
// MaxCost   — accumulated-cost budget; nodes whose tentative cost exceeds
// it are pruned (not pushed to the open set). Default +Inf. On unbounded
// graphs Expand relies on a finite MaxCost for termination — a documented
// caller responsibility, not a kernel-enforced invariant.
// Modifier  — optional per-edge veto/adjustment hook, applied after the
// graph's intrinsic edge cost.
// Seeds     — additional start nodes, each seeded at accumulated cost 0.
type Options[N comparable] struct {
	MaxExpand int
	MaxCost   float64
	Modifier  core.EdgeModifier[N]
	Seeds     []N
}

// Option is a functional option for configuring a kernel invocation.
type Option[N comparable] func(*Options[N])

// DefaultOptions returns the kernel defaults: no expansion budget, no cost
// budget, no modifier, no extra seeds.
func DefaultOptions[N comparable]() Options[N] {
	return Options[N]{
		MaxExpand: 0,
		MaxCost:   math.Inf(1),
	}
}

// WithMaxExpand caps the number of node expansions. A search stopped by
// this cap reports StopBudget, distinct from StopExhausted.
// n must be ≥ 0; 0 disables the cap. Negative values panic with
// ErrBadMaxExpand.
func WithMaxExpand[N comparable](n int) Option[N] {
	return func(o *Options[N]) {
		if n < 0 {
			panic(ErrBadMaxExpand.Error())
		}
		o.MaxExpand = n
	}
}

// WithMaxCost caps the accumulated cost explored. Nodes whose tentative
// cost would exceed c are never pushed to the open set.
// c must be ≥ 0 and not NaN; violations panic with ErrBadMaxCost.
func WithMaxCost[N comparable](c float64) Option[N] {
	return func(o *Options[N]) {
		if math.IsNaN(c) || c < 0 {
			panic(ErrBadMaxCost.Error())
		}
		o.MaxCost = c
	}
}

// WithModifier installs a per-edge veto/adjustment hook. A nil modifier is
// ignored (no hook).
func WithModifier[N comparable](m core.EdgeModifier[N]) Option[N] {
	return func(o *Options[N]) {
		if m != nil {
			o.Modifier = m
		}
	}
}

// WithSeeds adds extra start nodes, each seeded at accumulated cost 0.
// Useful for "distance to the nearest of several sources" expansions.
func WithSeeds[N comparable](seeds ...N) Option[N] {
	return func(o *Options[N]) {
		o.Seeds = append(o.Seeds, seeds...)
	}
}

// Result is the outcome of one goal-directed search.
//
// If Found is false, Cost is undefined and Path is empty; Stopped then
// tells exhaustion apart from a budget cutoff. If the start equals the
// goal, the result is a length-1 path with cost 0 without entering the
// expand loop.
type Result[N comparable] struct {
	// Found reports whether a path to the goal was established.
	Found bool

	// Cost is the accumulated cost of the path; undefined when !Found.
	Cost float64

	// Path is the raw node sequence from start to goal, inclusive.
	Path []N

	// Expanded counts nodes dequeued and closed during the search.
	Expanded int

	// Stopped records why the search loop terminated.
	Stopped StopReason
}
