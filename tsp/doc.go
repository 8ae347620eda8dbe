// Package tsp plans pick walks over a warehouse connectivity graph.
//
// Given a graph, a start node, an end node and a set of pick nodes, the
// solver finds an ordering of the picks that keeps the total walked
// distance low. Distances between terminals are shortest-path distances
// in the graph, not straight-line distances, so routes respect racks and
// other obstacles baked into the graph by package builder.
//
// The route endpoints are fixed: a walk always begins at the start node
// and finishes at the end node (which may equal the start for a closed
// loop back to a staging point). Only the pick order is optimized.
//
// # Methods
//
//   - Greedy: nearest-neighbor construction. Fast, order-sensitive only
//     through deterministic tie-breaks, no quality guarantee.
//   - TwoOpt: greedy construction followed by 2-opt segment reversal
//     until no improving move remains. The default.
//   - Exhaustive: enumerates every pick permutation and returns a true
//     optimum. Guarded by Options.MaxExhaustivePicks.
//   - Approx: MST double-tree heuristic with a 2x bound on metric
//     instances. Useful as a cheap baseline for large pick sets.
//
// All methods are deterministic: equal inputs yield the identical stop
// sequence, with ties broken by node ID.
//
// # Usage
//
//	route, err := tsp.Solve(g, "Dock", "Dock", picks, tsp.DefaultOptions())
//	if err != nil { ... }
//	walk, _ := tsp.ExpandRoute(g, route.Stops)
//
// Solve reports only the terminal sequence; ExpandRoute inflates it into
// the full node-by-node walk for display or simulation.
package tsp
