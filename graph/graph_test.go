package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pickwalk/pickwalk/graph"
)

// buildSquare wires A-B-D-C-A with weight 1 per side and a heavy A-D
// diagonal.
func buildSquare(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	for id, p := range map[string]r2.Vec{
		"A": {X: 0, Y: 0}, "B": {X: 1, Y: 0}, "C": {X: 0, Y: 1}, "D": {X: 1, Y: 1},
	} {
		require.NoError(t, g.AddNode(id, p))
	}
	for _, e := range [][2]string{{"A", "B"}, {"B", "D"}, {"D", "C"}, {"C", "A"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	require.NoError(t, g.AddEdge("A", "D", 5))

	return g
}

func TestGraph_Construction(t *testing.T) {
	g := buildSquare(t)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Nodes())
	assert.Equal(t, []string{"B", "C", "D"}, g.Neighbors("A"))

	w, ok := g.Weight("A", "D")
	require.True(t, ok)
	assert.Equal(t, 5.0, w)
}

func TestGraph_ConstructionErrors(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddNode("A", r2.Vec{}))

	assert.ErrorIs(t, g.AddNode("", r2.Vec{}), graph.ErrEmptyNodeID)
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), graph.ErrSelfLoop)
	assert.ErrorIs(t, g.AddEdge("A", "missing", 1), graph.ErrNodeNotFound)
	assert.ErrorIs(t, g.AddEdge("A", "A2", -1), graph.ErrBadWeight)
}

func TestGraph_AddEdgeReplacesWeight(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddEdge("A", "B", 7))

	w, _ := g.Weight("B", "A")
	assert.Equal(t, 7.0, w)
	assert.Equal(t, 5, g.Size(), "re-adding an edge must not grow the edge count")
}

func TestShortestPath_PrefersCheapRoute(t *testing.T) {
	g := buildSquare(t)

	// A→D direct costs 5; going around the square costs 2.
	path, dist, err := g.ShortestPath("A", "D")
	require.NoError(t, err)
	assert.Equal(t, 2.0, dist)
	assert.Len(t, path, 3)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "D", path[2])
}

func TestShortestPath_NoPath(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddNode("island", r2.Vec{X: 9, Y: 9}))

	_, _, err := g.ShortestPath("A", "island")
	assert.ErrorIs(t, err, graph.ErrNoPath)

	_, _, err = g.ShortestPath("ghost", "A")
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}

func TestShortestPath_Determinism(t *testing.T) {
	g := buildSquare(t)

	// Two equal-cost A→D detours exist; tie-breaking must be stable.
	first, _, err := g.ShortestPath("A", "D")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, _, err := g.ShortestPath("A", "D")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestComponents(t *testing.T) {
	g := buildSquare(t)
	require.NoError(t, g.AddNode("X", r2.Vec{X: 8, Y: 8}))
	require.NoError(t, g.AddNode("Y", r2.Vec{X: 9, Y: 8}))
	require.NoError(t, g.AddEdge("X", "Y", 1))

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Equal(t, []string{"A", "B", "C", "D"}, comps[0])
	assert.Equal(t, []string{"X", "Y"}, comps[1])
	assert.False(t, g.Connected())
}

func TestClone_IsIndependent(t *testing.T) {
	g := buildSquare(t)
	c := g.Clone()

	require.NoError(t, c.AddNode("Z", r2.Vec{}))
	require.NoError(t, c.AddEdge("A", "Z", 1))

	assert.False(t, g.HasNode("Z"))
	assert.Equal(t, 5, g.Size())
	assert.Equal(t, 6, c.Size())
}
