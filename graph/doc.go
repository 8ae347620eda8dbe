// Package graph provides the weighted, undirected connectivity graph
// the routing core is solved over.
//
// Nodes are Location ids with attached planar coordinates; edges carry
// non-negative float64 weights (Euclidean distances, plus transition
// penalties for inter-floor edges added by the multifloor composer).
// The representation is an adjacency map; all iteration orders exposed
// through the API are sorted by id, so every algorithm built on top is
// deterministic.
//
// Beyond construction and queries the package ships the two algorithms
// everything else needs:
//
//   - ShortestPathsFrom / ShortestPath: Dijkstra with a lazy
//     decrease-key min-heap, O((V+E) log V);
//   - Components / Connected: BFS component discovery, O(V+E).
//
// Disconnection is a reportable condition, not a silent failure:
// ShortestPath returns ErrNoPath naming both endpoints, and Components
// lets callers inspect exactly which node sets fell apart.
package graph
