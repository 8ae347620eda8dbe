package tsp

// twoOptOrder refines a greedy route with 2-opt moves: reverse a pick
// segment whenever doing so shortens the walk. Endpoints stay fixed, so
// only the boundary legs change and each move is evaluated in O(1) on
// the symmetric metric.
//
// First-improvement sweeps repeat until a full pass finds no move that
// shortens the route by more than opts.Eps, or TwoOptMaxPasses is hit.
func twoOptOrder(m *metric, opts Options) []int {
	order := greedyOrder(m)
	k := len(order) - 1 // picks occupy order[1..k]
	if k < 2 {
		return order
	}

	// succ reads the stop after position p, treating the fixed end
	// terminal as the stop after the last pick.
	succ := func(p int) int {
		if p == k {
			return m.end
		}
		return order[p+1]
	}

	for pass := 0; pass < opts.TwoOptMaxPasses; pass++ {
		improved := false
		for i := 1; i < k; i++ {
			for j := i + 1; j <= k; j++ {
				old := m.dist[order[i-1]][order[i]] + m.dist[order[j]][succ(j)]
				alt := m.dist[order[i-1]][order[j]] + m.dist[order[i]][succ(j)]
				if alt < old-opts.Eps {
					for l, r := i, j; l < r; l, r = l+1, r-1 {
						order[l], order[r] = order[r], order[l]
					}
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return order
}
