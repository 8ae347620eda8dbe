package tsp

import (
	"math"
	"sort"

	"github.com/pickwalk/pickwalk/graph"
)

// metric is the distance table induced on the route terminals by
// shortest paths in the underlying graph. Index 0 is the start node,
// indices 1..len(picks) are the picks in sorted ID order, and end is
// the index of the end node (0 when the route is a closed loop).
type metric struct {
	ids  []string
	dist [][]float64
	end  int
}

// pickCount reports how many picks the instance carries.
func (m *metric) pickCount() int {
	if m.end == 0 {
		return len(m.ids) - 1
	}
	return len(m.ids) - 2
}

// picks returns the metric indices of the pick terminals.
func (m *metric) picks() []int {
	out := make([]int, 0, m.pickCount())
	for i := 1; i < len(m.ids); i++ {
		if i != m.end {
			out = append(out, i)
		}
	}
	return out
}

// buildMetric runs one single-source shortest-path pass per terminal
// and collapses the graph into a complete distance table over start,
// picks and end. Missing terminals and unreachable pairs are rejected
// here so the solvers can assume a finite metric.
func buildMetric(g *graph.Graph, start, end string, picks []string) (*metric, error) {
	// Deduplicate picks and drop terminals that double as picks; the
	// route visits them anyway.
	seen := map[string]bool{start: true, end: true}
	uniq := make([]string, 0, len(picks))
	for _, p := range picks {
		if !seen[p] {
			seen[p] = true
			uniq = append(uniq, p)
		}
	}
	sort.Strings(uniq)

	var missing []string
	for _, id := range append([]string{start, end}, uniq...) {
		if !g.HasNode(id) && !contains(missing, id) {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &PickNotFoundError{Missing: missing}
	}

	m := &metric{ids: append([]string{start}, uniq...)}
	if end == start {
		m.end = 0
	} else {
		m.ids = append(m.ids, end)
		m.end = len(m.ids) - 1
	}

	m.dist = make([][]float64, len(m.ids))
	for i, id := range m.ids {
		row := make([]float64, len(m.ids))
		dists, _, err := g.ShortestPathsFrom(id)
		if err != nil {
			return nil, err
		}
		for j, other := range m.ids {
			if j == i {
				continue
			}
			d, ok := dists[other]
			if !ok || math.IsInf(d, 1) {
				return nil, &UnreachableError{From: id, To: other}
			}
			row[j] = d
		}
		m.dist[i] = row
	}
	return m, nil
}

// routeDistance sums the metric legs of a stop-index sequence.
func (m *metric) routeDistance(order []int) float64 {
	var total float64
	for i := 1; i < len(order); i++ {
		total += m.dist[order[i-1]][order[i]]
	}
	return total
}

// toRoute materializes an index order (start, picks..., end implicit)
// into a Route with IDs and rounded distance. The order must already
// begin at index 0; the end terminal is appended here.
func (m *metric) toRoute(order []int) Route {
	stops := make([]string, 0, len(order)+1)
	for _, i := range order {
		stops = append(stops, m.ids[i])
	}
	stops = append(stops, m.ids[m.end])
	full := append(append([]int{}, order...), m.end)
	return Route{Stops: stops, Distance: round1e9(m.routeDistance(full))}
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
