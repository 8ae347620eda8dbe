package graph

import "sort"

// Components returns the connected components as sorted id slices,
// ordered by each component's smallest id. Seeds are visited in sorted
// order, so the output is deterministic.
//
// Complexity: O(V+E) time, O(V) space.
func (g *Graph) Components() [][]string {
	seen := make(map[string]struct{}, len(g.pos))
	var comps [][]string

	for _, seed := range g.Nodes() {
		if _, done := seen[seed]; done {
			continue
		}

		// BFS from seed.
		queue := []string{seed}
		seen[seed] = struct{}{}
		var comp []string
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			for v := range g.adj[u] {
				if _, done := seen[v]; !done {
					seen[v] = struct{}{}
					queue = append(queue, v)
				}
			}
		}

		sort.Strings(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Connected reports whether the graph has at most one component. The
// empty graph counts as connected.
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}
