package tsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pickwalk/pickwalk/graph"
)

// triangleGraph is the smallest interesting instance: start A, one pick
// B, end C, with a direct A-C shortcut the route must not take.
func triangleGraph(t *testing.T) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddNode("A", r2.Vec{X: 0, Y: 0}))
	require.NoError(t, g.AddNode("B", r2.Vec{X: 3, Y: 0}))
	require.NoError(t, g.AddNode("C", r2.Vec{X: 3, Y: 4}))
	require.NoError(t, g.AddEdge("A", "B", 3))
	require.NoError(t, g.AddEdge("B", "C", 4))
	require.NoError(t, g.AddEdge("A", "C", 5))
	return g
}

// lineGraph places the start at x=0 and picks along a line, fully
// connected with straight-line weights. Greedy zig-zags across the
// start and pays for it; the optimum sweeps one side then the other.
func lineGraph(t *testing.T) *graph.Graph {
	t.Helper()
	xs := map[string]float64{"S": 0, "A": 1, "B": -2, "D": 4, "E": -8, "F": 16}
	g := graph.New()
	for id, x := range xs {
		require.NoError(t, g.AddNode(id, r2.Vec{X: x}))
	}
	for u, xu := range xs {
		for v, xv := range xs {
			if u < v {
				require.NoError(t, g.AddEdge(u, v, math.Abs(xu-xv)))
			}
		}
	}
	return g
}

func linePicks() []string { return []string{"A", "B", "D", "E", "F"} }

func TestSolve_SinglePick(t *testing.T) {
	g := triangleGraph(t)
	for _, m := range []Method{Greedy, TwoOpt, Exhaustive, Approx} {
		opts := DefaultOptions()
		opts.Method = m
		route, err := Solve(g, "A", "C", []string{"B"}, opts)
		require.NoError(t, err, m)
		assert.Equal(t, []string{"A", "B", "C"}, route.Stops, m)
		assert.InDelta(t, 7, route.Distance, 1e-9, m)
	}
}

func TestSolve_NoPicks(t *testing.T) {
	g := triangleGraph(t)
	route, err := Solve(g, "A", "C", nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, route.Stops)
	assert.InDelta(t, 5, route.Distance, 1e-9)
}

func TestSolve_ClosedLoopNoPicks(t *testing.T) {
	g := triangleGraph(t)
	route, err := Solve(g, "A", "A", nil, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "A"}, route.Stops)
	assert.Zero(t, route.Distance)
}

func TestSolve_GreedyTrap(t *testing.T) {
	g := lineGraph(t)

	opts := DefaultOptions()
	opts.Method = Greedy
	greedy, err := Solve(g, "S", "S", linePicks(), opts)
	require.NoError(t, err)
	assert.InDelta(t, 62, greedy.Distance, 1e-9)

	opts.Method = Exhaustive
	exact, err := Solve(g, "S", "S", linePicks(), opts)
	require.NoError(t, err)
	assert.InDelta(t, 48, exact.Distance, 1e-9)
	assert.Less(t, exact.Distance, greedy.Distance)
}

func TestSolve_MethodQualityOrdering(t *testing.T) {
	g := lineGraph(t)

	dist := map[Method]float64{}
	for _, m := range []Method{Greedy, TwoOpt, Exhaustive, Approx} {
		opts := DefaultOptions()
		opts.Method = m
		route, err := Solve(g, "S", "S", linePicks(), opts)
		require.NoError(t, err, m)
		dist[m] = route.Distance
	}

	assert.LessOrEqual(t, dist[TwoOpt], dist[Greedy])
	assert.LessOrEqual(t, dist[Exhaustive], dist[TwoOpt])
	assert.LessOrEqual(t, dist[Exhaustive], dist[Approx])
	assert.LessOrEqual(t, dist[Approx], 2*dist[Exhaustive])
}

func TestSolve_RouteShape(t *testing.T) {
	g := lineGraph(t)
	for _, m := range []Method{Greedy, TwoOpt, Exhaustive, Approx} {
		opts := DefaultOptions()
		opts.Method = m
		route, err := Solve(g, "S", "S", linePicks(), opts)
		require.NoError(t, err, m)

		assert.Equal(t, "S", route.Stops[0], m)
		assert.Equal(t, "S", route.Stops[len(route.Stops)-1], m)
		assert.Len(t, route.Stops, len(linePicks())+2, m)

		seen := map[string]int{}
		for _, s := range route.Stops[1 : len(route.Stops)-1] {
			seen[s]++
		}
		for _, p := range linePicks() {
			assert.Equal(t, 1, seen[p], "%v visits %s once", m, p)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	g := lineGraph(t)
	for _, m := range []Method{Greedy, TwoOpt, Exhaustive, Approx} {
		opts := DefaultOptions()
		opts.Method = m
		first, err := Solve(g, "S", "S", linePicks(), opts)
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := Solve(g, "S", "S", linePicks(), opts)
			require.NoError(t, err)
			assert.Equal(t, first.Stops, again.Stops, m)
			assert.Equal(t, first.Distance, again.Distance, m)
		}
	}
}

func TestSolve_DuplicateAndTerminalPicks(t *testing.T) {
	g := triangleGraph(t)
	route, err := Solve(g, "A", "C", []string{"B", "B", "A", "C"}, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, route.Stops)
}

func TestSolve_NilGraph(t *testing.T) {
	_, err := Solve(nil, "A", "C", nil, DefaultOptions())
	assert.ErrorIs(t, err, ErrNilGraph)
}

func TestSolve_UnsupportedMethod(t *testing.T) {
	g := triangleGraph(t)
	_, err := Solve(g, "A", "C", []string{"B"}, Options{Method: Method(0)})
	assert.ErrorIs(t, err, ErrUnsupportedMethod)
}

func TestSolve_MissingPicksListedOnce(t *testing.T) {
	g := triangleGraph(t)
	_, err := Solve(g, "A", "C", []string{"B", "X", "Z", "X"}, DefaultOptions())
	require.ErrorIs(t, err, ErrPickNotFound)

	var pnf *PickNotFoundError
	require.ErrorAs(t, err, &pnf)
	assert.Equal(t, []string{"X", "Z"}, pnf.Missing)
}

func TestSolve_UnreachablePick(t *testing.T) {
	g := triangleGraph(t)
	require.NoError(t, g.AddNode("Island", r2.Vec{X: 100}))

	_, err := Solve(g, "A", "C", []string{"B", "Island"}, DefaultOptions())
	require.ErrorIs(t, err, ErrUnreachable)

	var ue *UnreachableError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, []string{ue.From, ue.To}, "Island")
}

func TestSolve_ExhaustiveCap(t *testing.T) {
	g := lineGraph(t)
	opts := DefaultOptions()
	opts.Method = Exhaustive
	opts.MaxExhaustivePicks = 3
	_, err := Solve(g, "S", "S", linePicks(), opts)
	assert.ErrorIs(t, err, ErrExhaustiveTooLarge)
}

func TestExpandRoute(t *testing.T) {
	// Square with a heavy diagonal: A-B-C-D unit sides, A-D costs 9.
	g := graph.New()
	for i, id := range []string{"A", "B", "C", "D"} {
		require.NoError(t, g.AddNode(id, r2.Vec{X: float64(i)}))
	}
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("A", "D", 9))

	walk, legs, err := ExpandRoute(g, []string{"A", "D", "A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "C", "B", "A"}, walk)
	require.Len(t, legs, 2)
	assert.Equal(t, []string{"A", "B", "C", "D"}, legs[0].Path)
	assert.InDelta(t, 3, legs[0].Distance, 1e-9)
	assert.InDelta(t, 3, legs[1].Distance, 1e-9)
}

func TestExpandRoute_Errors(t *testing.T) {
	_, _, err := ExpandRoute(nil, []string{"A"})
	assert.ErrorIs(t, err, ErrNilGraph)

	g := graph.New()
	require.NoError(t, g.AddNode("A", r2.Vec{}))
	require.NoError(t, g.AddNode("B", r2.Vec{X: 1}))

	_, _, err = ExpandRoute(g, []string{"A", "B"})
	assert.ErrorIs(t, err, graph.ErrNoPath)

	_, _, err = ExpandRoute(g, []string{"A", "Missing"})
	assert.ErrorIs(t, err, graph.ErrNodeNotFound)
}
