package graph

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// Graph is an undirected weighted graph over string node ids with
// attached planar coordinates.
//
// It is a plain value container: no locking, no implicit global state.
// A builder produces one per floor; solvers only read it. Mutating
// methods are not safe for concurrent use, reads are.
type Graph struct {
	pos map[string]r2.Vec
	adj map[string]map[string]float64

	edgeCount int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		pos: make(map[string]r2.Vec),
		adj: make(map[string]map[string]float64),
	}
}

// AddNode registers id at the given position. Re-adding an existing id
// keeps the original position and is not an error, so builders can feed
// overlapping sources without bookkeeping.
func (g *Graph) AddNode(id string, at r2.Vec) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.pos[id]; ok {
		return nil
	}
	g.pos[id] = at
	g.adj[id] = make(map[string]float64)

	return nil
}

// AddEdge connects u and v with weight w, replacing any previous weight.
// Both endpoints must already exist.
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == v {
		return fmt.Errorf("%w: %q", ErrSelfLoop, u)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	for _, id := range [2]string{u, v} {
		if _, ok := g.pos[id]; !ok {
			return fmt.Errorf("%w: %q", ErrNodeNotFound, id)
		}
	}

	if _, existed := g.adj[u][v]; !existed {
		g.edgeCount++
	}
	g.adj[u][v] = w
	g.adj[v][u] = w

	return nil
}

// HasNode reports whether id is a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.pos[id]

	return ok
}

// HasEdge reports whether u and v are directly connected.
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the edge weight between u and v, and whether the edge
// exists.
func (g *Graph) Weight(u, v string) (float64, bool) {
	w, ok := g.adj[u][v]

	return w, ok
}

// Position returns the planar coordinates of id, and whether id exists.
func (g *Graph) Position(id string) (r2.Vec, bool) {
	p, ok := g.pos[id]

	return p, ok
}

// Nodes returns all node ids in sorted order.
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.pos))
	for id := range g.pos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Neighbors returns the sorted ids adjacent to id; nil when id is
// unknown or isolated.
func (g *Graph) Neighbors(id string) []string {
	nbrs := g.adj[id]
	if len(nbrs) == 0 {
		return nil
	}
	out := make([]string, 0, len(nbrs))
	for v := range nbrs {
		out = append(out, v)
	}
	sort.Strings(out)

	return out
}

// Edges enumerates every undirected edge exactly once, ordered by
// (From, To) with From < To.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for _, u := range g.Nodes() {
		for _, v := range g.Neighbors(u) {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: g.adj[u][v]})
			}
		}
	}

	return out
}

// Order returns the node count.
func (g *Graph) Order() int { return len(g.pos) }

// Size returns the edge count.
func (g *Graph) Size() int { return g.edgeCount }

// Clone returns a deep copy; the copy shares nothing with the original.
func (g *Graph) Clone() *Graph {
	c := New()
	for id, p := range g.pos {
		c.pos[id] = p
		c.adj[id] = make(map[string]float64, len(g.adj[id]))
	}
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			c.adj[u][v] = w
		}
	}
	c.edgeCount = g.edgeCount

	return c
}
