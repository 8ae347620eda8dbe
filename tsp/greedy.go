package tsp

// greedyOrder builds a route by nearest-neighbor construction: from the
// current stop, visit the closest unvisited pick. Distance ties resolve
// to the lower node ID so the result is stable across runs.
//
// Returns the index order starting at 0 (start); the end terminal is
// appended by metric.toRoute. O(k^2) for k picks.
func greedyOrder(m *metric) []int {
	remaining := m.picks()
	order := make([]int, 0, len(remaining)+1)
	order = append(order, 0)

	cur := 0
	for len(remaining) > 0 {
		best := -1
		for pos, cand := range remaining {
			if best < 0 {
				best = pos
				continue
			}
			dc, db := m.dist[cur][cand], m.dist[cur][remaining[best]]
			if dc < db || (dc == db && m.ids[cand] < m.ids[remaining[best]]) {
				best = pos
			}
		}
		cur = remaining[best]
		order = append(order, cur)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}
	return order
}
