// Package route_test validates the request lifecycle: the
// immutable-while-in-flight contract, clear-and-reuse with keep-flags,
// completion handlers, async execution, and result materialization.
package route_test

import (
	"math"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/astar"
	"github.com/katalvlaran/wayfind/core"
	"github.com/katalvlaran/wayfind/route"
)

// diamond builds the reference graph: A—B(1), B—D(1), A—C(1), C—D(5).
func diamond(t *testing.T) *core.Adjacency[string] {
	t.Helper()
	g := core.NewAdjacency[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "D", 1))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 5))

	return g
}

// pathRequest builds a mutable request over g with the given stops.
func pathRequest(t *testing.T, g core.Graph[string], stops ...string) *route.Request[string, string] {
	t.Helper()
	req := route.NewRequest[string, string]()
	require.NoError(t, req.SetGraph(g))
	require.NoError(t, req.AddStops(stops...))

	return req
}

// gatedGraph blocks its first Expand until released, making the in-flight
// window deterministic in tests.
type gatedGraph struct {
	inner   core.Graph[string]
	entered chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedGraph(inner core.Graph[string]) *gatedGraph {
	return &gatedGraph{
		inner:   inner,
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (g *gatedGraph) Expand(n string) []core.Neighbor[string] {
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})

	return g.inner.Expand(n)
}

// segProc is a PathProcessor producing "seg:" prefixed segments.
type segProc struct{ insertStart bool }

func (p segProc) Process(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, n := range raw {
		out = append(out, "seg:"+n)
	}

	return out
}

func (p segProc) InsertQueryStart() bool { return p.insertStart }

// ------------------------------------------------------------------------
// 1. Validation and state-machine guards.
// ------------------------------------------------------------------------

func TestRequest_RunWithoutGraph(t *testing.T) {
	req := route.NewRequest[string, string]()
	require.NoError(t, req.AddStop("A"))
	_, err := req.Run()
	require.ErrorIs(t, err, route.ErrNilGraph)
}

func TestRequest_RunWithoutStops(t *testing.T) {
	req := route.NewRequest[string, string]()
	require.NoError(t, req.SetGraph(diamond(t)))
	_, err := req.Run()
	require.ErrorIs(t, err, route.ErrNoStops)
}

func TestRequest_PriorityWithoutComparer(t *testing.T) {
	req := pathRequest(t, diamond(t), "A")
	require.NoError(t, req.AddOption("x", "D"))
	require.NoError(t, req.SetMode(route.Priority))
	_, err := req.Run()
	require.ErrorIs(t, err, route.ErrNoComparer)
}

func TestRequest_SetterValidation(t *testing.T) {
	req := route.NewRequest[string, string]()
	require.ErrorIs(t, req.SetMaxExpand(-1), astar.ErrBadMaxExpand)
	require.ErrorIs(t, req.SetMaxCost(-1), astar.ErrBadMaxCost)
	require.ErrorIs(t, req.SetMaxCost(math.NaN()), astar.ErrBadMaxCost)
	require.ErrorIs(t, req.SetMaxRetries(-2), route.ErrBadMaxRetries)
	require.NoError(t, req.SetMaxRetries(-1)) // -1 is the default marker
}

func TestRequest_ImmutableWhileInFlight(t *testing.T) {
	gated := newGatedGraph(diamond(t))
	req := pathRequest(t, gated, "A", "D")

	done := make(chan route.Path[string, string], 1)
	require.NoError(t, req.OnComplete(func(p route.Path[string, string]) { done <- p }))
	require.NoError(t, req.Go())

	// Wait until the kernel is provably inside the expand loop.
	<-gated.entered
	require.Equal(t, route.StateInFlight, req.State())

	// Every mutation must fail loudly, and Clear too.
	require.ErrorIs(t, req.SetGraph(diamond(t)), route.ErrRequestInFlight)
	require.ErrorIs(t, req.AddStop("B"), route.ErrRequestInFlight)
	require.ErrorIs(t, req.AddOption("x", "D"), route.ErrRequestInFlight)
	require.ErrorIs(t, req.SetMode(route.Cheapest), route.ErrRequestInFlight)
	require.ErrorIs(t, req.Clear(route.KeepAll), route.ErrRequestInFlight)

	// A second launch is rejected as well.
	require.ErrorIs(t, req.Go(), route.ErrRequestInFlight)

	close(gated.release)
	p := <-done
	require.True(t, p.Found)
	require.Equal(t, 2.0, p.Cost)
	require.Equal(t, route.StateCompleted, req.State())
}

func TestRequest_RerunWithoutClearFails(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	_, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, route.StateCompleted, req.State())

	_, err = req.Run()
	require.ErrorIs(t, err, route.ErrRequestInFlight)
}

func TestRequest_HardErrorAbortsAndClearRecovers(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	poison := func(from, to string, cost float64) (float64, bool) { return math.NaN(), true }
	require.NoError(t, req.SetModifier(poison))

	_, err := req.Run()
	require.ErrorIs(t, err, astar.ErrBadEdgeCost)
	require.Equal(t, route.StateAborted, req.State())
	_, ok := req.Result()
	require.False(t, ok)

	// Clear recovers the request; the poisoned modifier is dropped.
	require.NoError(t, req.Clear(route.KeepGraph|route.KeepNodes))
	p, err := req.Run()
	require.NoError(t, err)
	require.True(t, p.Found)
}

// ------------------------------------------------------------------------
// 2. Basic execution and materialization.
// ------------------------------------------------------------------------

func TestRequest_SimplePath(t *testing.T) {
	p, err := pathRequest(t, diamond(t), "A", "D").Run()
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Equal(t, 2.0, p.Cost)
	require.Equal(t, []string{"A", "B", "D"}, p.Raw)
	// With no processor and S == N the identity processor applies.
	require.Equal(t, []string{"A", "B", "D"}, p.Segments)
	require.Nil(t, p.Winner)
	require.Equal(t, astar.StopGoal, p.Stopped)
}

func TestRequest_SingleStopDegenerate(t *testing.T) {
	p, err := pathRequest(t, diamond(t), "A").Run()
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Zero(t, p.Cost)
	require.Equal(t, []string{"A"}, p.Raw)
	require.Zero(t, p.Expanded)
}

func TestRequest_NotFoundIsAResultNotAnError(t *testing.T) {
	g := diamond(t)
	g.AddNode("Z")
	req := pathRequest(t, g, "A", "Z")
	p, err := req.Run()
	require.NoError(t, err)
	require.False(t, p.Found)
	require.Empty(t, p.Raw)
	require.Empty(t, p.Segments)
	require.Equal(t, astar.StopExhausted, p.Stopped)
	// A not-found query still completes normally.
	require.Equal(t, route.StateCompleted, req.State())
}

func TestRequest_ProcessorRunsOnceOverFullSequence(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	require.NoError(t, req.SetProcessor(segProc{}))

	p, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"seg:A", "seg:B", "seg:D"}, p.Segments)
	require.Equal(t, []string{"A", "B", "D"}, p.Raw)
}

func TestRequest_QueryStartSplicedWhenProcessorAsks(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	require.NoError(t, req.SetProcessor(segProc{insertStart: true}))
	require.NoError(t, req.SetQueryStart("A@0.25,0.75"))

	p, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"A@0.25,0.75", "B", "D"}, p.Raw)
	require.Equal(t, []string{"seg:A@0.25,0.75", "seg:B", "seg:D"}, p.Segments)
}

func TestRequest_QueryStartIgnoredWithoutProcessorOptIn(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	require.NoError(t, req.SetProcessor(segProc{insertStart: false}))
	require.NoError(t, req.SetQueryStart("A@0.25,0.75"))

	p, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, p.Raw)
}

func TestRequest_HeuristicProviderTargetsLegGoal(t *testing.T) {
	// The provider must be asked for the leg goal, not the final goal.
	var goals []string
	provider := func(goal string) core.Heuristic[string] {
		goals = append(goals, goal)

		return core.ZeroHeuristic[string]
	}
	req := pathRequest(t, diamond(t), "A", "B", "D")
	require.NoError(t, req.SetHeuristic(provider))

	p, err := req.Run()
	require.NoError(t, err)
	require.True(t, p.Found)
	require.Equal(t, []string{"B", "D"}, goals)
}

// ------------------------------------------------------------------------
// 3. Clear-and-reuse, completion handlers, async execution.
// ------------------------------------------------------------------------

func TestRequest_ClearAndRerunIsIdentical(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	first, err := req.Run()
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, req.Clear(route.KeepAll))
		again, err := req.Run()
		require.NoError(t, err)
		require.Equal(t, first, again, "iteration %d", i)
	}
}

func TestRequest_ClearKeepFlagsAreSelective(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	_, err := req.Run()
	require.NoError(t, err)

	// Keep the graph but drop the nodes: running again demands stops.
	require.NoError(t, req.Clear(route.KeepGraph))
	_, err = req.Run()
	require.ErrorIs(t, err, route.ErrNoStops)

	// Drop everything: running demands a graph first.
	require.NoError(t, req.Clear(0))
	require.NoError(t, req.AddStop("A"))
	_, err = req.Run()
	require.ErrorIs(t, err, route.ErrNilGraph)
}

func TestRequest_ClearIsIdempotent(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	require.NoError(t, req.Clear(route.KeepAll))
	require.NoError(t, req.Clear(route.KeepAll))
	p, err := req.Run()
	require.NoError(t, err)
	require.True(t, p.Found)
}

func TestRequest_CompletionFiresExactlyOnceBeforeReuse(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")

	var calls int
	var stateInside route.State
	require.NoError(t, req.OnComplete(func(p route.Path[string, string]) {
		calls++
		stateInside = req.State()
	}))

	_, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, 1, calls)
	// Handlers run before the request becomes usable again.
	require.Equal(t, route.StateInFlight, stateInside)

	// Handlers survive Clear(KeepHandlers) and fire once per query.
	require.NoError(t, req.Clear(route.KeepAll))
	_, err = req.Run()
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestRequest_GoDeliversResultAsynchronously(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	done := make(chan route.Path[string, string], 1)
	require.NoError(t, req.OnComplete(func(p route.Path[string, string]) { done <- p }))
	require.NoError(t, req.Go())

	select {
	case p := <-done:
		require.True(t, p.Found)
		require.Equal(t, 2.0, p.Cost)
	case <-time.After(5 * time.Second):
		t.Fatal("completion handler never fired")
	}

	stored, ok := req.Result()
	require.True(t, ok)
	require.Equal(t, 2.0, stored.Cost)
}

func TestRequest_ResultPollingRacesWithGo(t *testing.T) {
	// Polling Result while the query finishes on its own goroutine is the
	// documented way to consume Go without handlers; run it repeatedly so
	// the race detector sees the overlap.
	req := pathRequest(t, diamond(t), "A", "D")
	for i := 0; i < 100; i++ {
		require.NoError(t, req.Go())

		var p route.Path[string, string]
		for {
			var ok bool
			if p, ok = req.Result(); ok {
				break
			}
			runtime.Gosched()
		}
		require.True(t, p.Found)
		require.Equal(t, 2.0, p.Cost)

		// The handlers may still be running when the result appears; wait
		// for Completed before clearing.
		for req.State() != route.StateCompleted {
			runtime.Gosched()
		}
		require.NoError(t, req.Clear(route.KeepAll))
	}
}

func TestRequest_ReuseModeRecyclesResultBuffers(t *testing.T) {
	req := pathRequest(t, diamond(t), "A", "D")
	require.NoError(t, req.SetReuse(true))

	first, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "D"}, first.Raw)

	require.NoError(t, req.Clear(route.KeepGraph|route.KeepNodes))
	again, err := req.Run()
	require.NoError(t, err)
	require.Equal(t, first.Raw, again.Raw)
	require.Equal(t, first.Cost, again.Cost)
}
