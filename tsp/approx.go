package tsp

import "sort"

// approxOrder runs the MST double-tree heuristic: build a minimum
// spanning tree over start plus the picks, then emit the picks in
// preorder from the start. On a metric instance the closed-tour variant
// is a 2-approximation; with the end pinned after the last pick the
// bound is heuristic but the cost stays near twice the tree weight.
//
// Prim with tie-breaks on node index keeps the tree, and therefore the
// route, deterministic. O(k^2) for k picks.
func approxOrder(m *metric) []int {
	nodes := append([]int{0}, m.picks()...)

	// Prim from the start terminal.
	inTree := map[int]bool{0: true}
	parent := map[int]int{}
	for len(inTree) < len(nodes) {
		bu, bv := -1, -1
		for _, u := range nodes {
			if !inTree[u] {
				continue
			}
			for _, v := range nodes {
				if inTree[v] {
					continue
				}
				if bv < 0 || m.dist[u][v] < m.dist[bu][bv] ||
					(m.dist[u][v] == m.dist[bu][bv] && (v < bv || (v == bv && u < bu))) {
					bu, bv = u, v
				}
			}
		}
		inTree[bv] = true
		parent[bv] = bu
	}

	children := map[int][]int{}
	for v, u := range parent {
		children[u] = append(children[u], v)
	}
	for _, cs := range children {
		sort.Ints(cs)
	}

	// Preorder walk from the start.
	order := make([]int, 0, len(nodes))
	stack := []int{0}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, u)
		cs := children[u]
		for i := len(cs) - 1; i >= 0; i-- {
			stack = append(stack, cs[i])
		}
	}
	return order
}
