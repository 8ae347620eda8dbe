package tsp

import "github.com/pickwalk/pickwalk/graph"

// ExpandRoute inflates a stop sequence into the full node-by-node walk
// through g, one Leg per consecutive stop pair. The walk slice joins
// the legs with shared stops deduplicated, so it reads as a single
// traversal from the first stop to the last.
//
// Errors: ErrNilGraph; graph.ErrNodeNotFound for unknown stops;
// graph.ErrNoPath when consecutive stops are disconnected.
func ExpandRoute(g *graph.Graph, stops []string) (walk []string, legs []Leg, err error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if len(stops) == 0 {
		return nil, nil, nil
	}

	walk = append(walk, stops[0])
	legs = make([]Leg, 0, len(stops)-1)
	for i := 1; i < len(stops); i++ {
		path, cost, err := g.ShortestPath(stops[i-1], stops[i])
		if err != nil {
			return nil, nil, err
		}
		legs = append(legs, Leg{
			From:     stops[i-1],
			To:       stops[i],
			Path:     path,
			Distance: round1e9(cost),
		})
		walk = append(walk, path[1:]...)
	}
	return walk, legs, nil
}
