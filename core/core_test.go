// Package core_test validates the contract helpers: cost boundary checks,
// the reference adjacency graph, and the identity path processor.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfind/core"
)

func TestValidCost_AcceptsZeroFiniteAndInfinity(t *testing.T) {
	require.NoError(t, core.ValidCost(0))
	require.NoError(t, core.ValidCost(3.5))
	require.NoError(t, core.ValidCost(core.Infinity()))
}

func TestValidCost_RejectsNaNAndNegative(t *testing.T) {
	require.ErrorIs(t, core.ValidCost(math.NaN()), core.ErrBadCost)
	require.ErrorIs(t, core.ValidCost(-1), core.ErrBadCost)
	require.ErrorIs(t, core.ValidCost(math.Inf(-1)), core.ErrBadCost)
}

func TestIsUnwalkable(t *testing.T) {
	require.True(t, core.IsUnwalkable(core.Infinity()))
	require.False(t, core.IsUnwalkable(0))
	require.False(t, core.IsUnwalkable(math.MaxFloat64))
}

func TestAdjacency_ArcIsDirected(t *testing.T) {
	g := core.NewAdjacency[string]()
	require.NoError(t, g.AddArc("A", "B", 2))

	// A expands to B; B expands to nothing but is a known node.
	require.Equal(t, []core.Neighbor[string]{{Node: "B", Cost: 2}}, g.Expand("A"))
	require.Empty(t, g.Expand("B"))
	require.Equal(t, 2, g.Order())
}

func TestAdjacency_EdgeIsSymmetric(t *testing.T) {
	g := core.NewAdjacency[int]()
	require.NoError(t, g.AddEdge(1, 2, 1.5))

	require.Equal(t, []core.Neighbor[int]{{Node: 2, Cost: 1.5}}, g.Expand(1))
	require.Equal(t, []core.Neighbor[int]{{Node: 1, Cost: 1.5}}, g.Expand(2))
}

func TestAdjacency_RejectsBadCost(t *testing.T) {
	g := core.NewAdjacency[string]()
	require.ErrorIs(t, g.AddArc("A", "B", math.NaN()), core.ErrBadCost)
	require.ErrorIs(t, g.AddEdge("A", "B", -0.5), core.ErrBadCost)

	// Nothing was recorded on failure.
	require.Empty(t, g.Expand("A"))
}

func TestAdjacency_ExpansionOrderIsInsertionOrder(t *testing.T) {
	g := core.NewAdjacency[string]()
	require.NoError(t, g.AddArc("S", "C", 3))
	require.NoError(t, g.AddArc("S", "A", 1))
	require.NoError(t, g.AddArc("S", "B", 2))

	got := g.Expand("S")
	require.Len(t, got, 3)
	require.Equal(t, "C", got[0].Node)
	require.Equal(t, "A", got[1].Node)
	require.Equal(t, "B", got[2].Node)
}

func TestAdjacency_UnwalkableEdgeIsStored(t *testing.T) {
	// Infinity is a legal stored cost; excluding it is the kernel's job.
	g := core.NewAdjacency[string]()
	require.NoError(t, g.AddArc("A", "B", core.Infinity()))

	out := g.Expand("A")
	require.Len(t, out, 1)
	require.True(t, core.IsUnwalkable(out[0].Cost))
}

func TestNodeProcessor_Identity(t *testing.T) {
	var p core.NodeProcessor[string]
	raw := []string{"A", "B", "C"}
	require.Equal(t, raw, p.Process(raw))
	require.False(t, p.InsertQueryStart())
}

func TestZeroHeuristic(t *testing.T) {
	require.Zero(t, core.ZeroHeuristic("anything"))
	require.Zero(t, core.ZeroHeuristic(42))
}
