package tsp_test

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pickwalk/pickwalk/graph"
	"github.com/pickwalk/pickwalk/tsp"
)

// ExampleSolve routes one pick across a triangle where the direct
// start-to-end edge is longer than the detour through the pick.
func ExampleSolve() {
	g := graph.New()
	g.AddNode("A", r2.Vec{X: 0, Y: 0})
	g.AddNode("B", r2.Vec{X: 3, Y: 0})
	g.AddNode("C", r2.Vec{X: 3, Y: 4})
	g.AddEdge("A", "B", 3)
	g.AddEdge("B", "C", 4)
	g.AddEdge("A", "C", 5)

	route, err := tsp.Solve(g, "A", "C", []string{"B"}, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("stops=%v distance=%.0f\n", route.Stops, route.Distance)
	// Output: stops=[A B C] distance=7
}

// ExampleExpandRoute inflates a stop sequence into the node-by-node
// walk, here forced around a heavy diagonal.
func ExampleExpandRoute() {
	g := graph.New()
	for i, id := range []string{"A", "B", "C", "D"} {
		g.AddNode(id, r2.Vec{X: float64(i)})
	}
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 1)
	g.AddEdge("C", "D", 1)
	g.AddEdge("A", "D", 9)

	walk, _, err := tsp.ExpandRoute(g, []string{"A", "D"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(walk)
	// Output: [A B C D]
}
