package graph

import (
	"container/heap"
	"fmt"
	"math"
)

// ShortestPathsFrom runs Dijkstra from src and returns the distance and
// predecessor maps for every reachable node. Unreachable nodes are
// absent from both maps.
//
// The heap uses lazy decrease-key: duplicates are pushed and stale
// entries skipped on pop.
//
// Complexity: O((V+E) log V) time, O(V+E) space.
func (g *Graph) ShortestPathsFrom(src string) (map[string]float64, map[string]string, error) {
	if !g.HasNode(src) {
		return nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, src)
	}

	dist := make(map[string]float64, len(g.pos))
	prev := make(map[string]string, len(g.pos))
	dist[src] = 0

	pq := &distHeap{{id: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(distItem)
		if cur.dist > dist[cur.id] {
			continue // stale entry
		}
		for v, w := range g.adj[cur.id] {
			nd := cur.dist + w
			if best, seen := dist[v]; !seen || nd < best {
				dist[v] = nd
				prev[v] = cur.id
				heap.Push(pq, distItem{id: v, dist: nd})
			}
		}
	}
	delete(prev, src)

	return dist, prev, nil
}

// ShortestPath returns the minimum-cost node sequence from src to dst
// (inclusive of both) and its total cost. ErrNoPath names both
// endpoints when they are disconnected.
func (g *Graph) ShortestPath(src, dst string) ([]string, float64, error) {
	if !g.HasNode(dst) {
		return nil, 0, fmt.Errorf("%w: %q", ErrNodeNotFound, dst)
	}
	dist, prev, err := g.ShortestPathsFrom(src)
	if err != nil {
		return nil, 0, err
	}
	d, ok := dist[dst]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q and %q", ErrNoPath, src, dst)
	}

	// Walk predecessors back from dst.
	path := []string{dst}
	for at := dst; at != src; at = prev[at] {
		path = append(path, prev[at])
	}
	reverse(path)

	return path, d, nil
}

// Distance returns only the shortest-path cost from src to dst; +Inf
// with ErrNoPath when disconnected.
func (g *Graph) Distance(src, dst string) (float64, error) {
	dist, _, err := g.ShortestPathsFrom(src)
	if err != nil {
		return math.Inf(1), err
	}
	if !g.HasNode(dst) {
		return math.Inf(1), fmt.Errorf("%w: %q", ErrNodeNotFound, dst)
	}
	d, ok := dist[dst]
	if !ok {
		return math.Inf(1), fmt.Errorf("%w: %q and %q", ErrNoPath, src, dst)
	}

	return d, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// distItem is one heap entry; duplicates per node are allowed and
// filtered by the staleness check on pop.
type distItem struct {
	id   string
	dist float64
}

type distHeap []distItem

func (h distHeap) Len() int { return len(h) }
func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].id < h[j].id // stable pop order for equal distances
}
func (h distHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *distHeap) Push(x interface{}) { *h = append(*h, x.(distItem)) }
func (h *distHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]

	return it
}
