package tsp

import "gonum.org/v1/gonum/stat/combin"

// exhaustiveOrder enumerates every permutation of the picks and keeps
// the cheapest route. Strictly better costs win; on an exact tie the
// earlier permutation in lexicographic pick order is kept, which makes
// the optimum deterministic.
//
// O(k! * k); Solve rejects instances above MaxExhaustivePicks before
// calling this.
func exhaustiveOrder(m *metric) []int {
	picks := m.picks()
	k := len(picks)

	gen := combin.NewPermutationGenerator(k, k)
	perm := make([]int, k)
	candidate := make([]int, 0, k+2)

	var best []int
	bestCost := 0.0
	for gen.Next() {
		gen.Permutation(perm)

		candidate = candidate[:0]
		candidate = append(candidate, 0)
		for _, p := range perm {
			candidate = append(candidate, picks[p])
		}
		candidate = append(candidate, m.end)

		cost := m.routeDistance(candidate)
		if best == nil || cost < bestCost {
			best = append(best[:0], candidate[:len(candidate)-1]...)
			bestCost = cost
		}
	}
	return best
}
