package multifloor

import (
	"sort"

	"github.com/pickwalk/pickwalk/graph"
	"github.com/pickwalk/pickwalk/tsp"
)

// SolveUnified merges every floor into one namespaced graph, joins
// floors at their crossing candidates with penalized edges, and solves
// the whole pick set as a single instance.
//
// start and end are raw per-floor ids; empty strings default to the
// first merge-order floor's staging or dock terminal, and an empty end
// defaults to start (a closed loop). Picks are raw ids resolved to the
// earliest merge-order floor that owns them.
//
// Errors: tsp.ErrPickNotFound for unresolved ids, tsp.ErrUnreachable
// when the merged graph cannot connect all terminals (no inter-floor
// candidates, or a disconnected floor), plus the tsp method errors.
func (p *Planner) SolveUnified(start, end string, picks []string) (Result, error) {
	start, end = p.defaultTerminals(start, end)

	nsStart, nsEnd, nsPicks, err := p.namespaceTerminals(start, end, picks)
	if err != nil {
		return Result{}, err
	}

	merged, err := p.merge()
	if err != nil {
		return Result{}, err
	}

	route, err := tsp.Solve(merged, nsStart, nsEnd, nsPicks, p.solver)
	if err != nil {
		return Result{}, err
	}

	walk, legs, err := tsp.ExpandRoute(merged, route.Stops)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Stops:    route.Stops,
		Walk:     walk,
		Distance: route.Distance,
	}
	res.Transitions, res.TransitionPairs, res.FloorsVisited = walkTransitions(walk)
	res.PerFloor = p.unifiedStats(legs, nsPicks)

	return res, nil
}

// defaultTerminals fills empty start/end ids: start from the first
// merge-order floor's default terminal, end from start.
func (p *Planner) defaultTerminals(start, end string) (string, string) {
	if start == "" {
		start = defaultTerminal(p.floors[p.order[0]])
	}
	if end == "" {
		end = start
	}
	return start, end
}

// namespaceTerminals maps raw terminal ids onto their owning floors.
// Every unresolved id is collected so the caller sees the full list.
func (p *Planner) namespaceTerminals(start, end string, picks []string) (nsStart, nsEnd string, nsPicks []string, err error) {
	var missing []string
	resolve := func(id string) string {
		floor, ok := p.floorOf(id)
		if !ok {
			missing = append(missing, id)
			return ""
		}
		return NamespaceID(floor, id)
	}

	nsStart = resolve(start)
	nsEnd = resolve(end)
	nsPicks = make([]string, 0, len(picks))
	for _, pk := range picks {
		nsPicks = append(nsPicks, resolve(pk))
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		missing = dedupSorted(missing)
		return "", "", nil, &tsp.PickNotFoundError{Missing: missing}
	}
	return nsStart, nsEnd, nsPicks, nil
}

// merge builds the unified graph: every floor's nodes and edges under
// namespaced ids, plus inter-floor edges between crossing candidates on
// consecutive merge-order floors, weighted by physical distance plus
// the transition penalty.
func (p *Planner) merge() (*graph.Graph, error) {
	g := graph.New()

	for _, idx := range p.order {
		fg := p.floors[idx].Graph
		for _, id := range fg.Nodes() {
			pos, _ := fg.Position(id)
			if err := g.AddNode(NamespaceID(idx, id), pos); err != nil {
				return nil, err
			}
		}
		for _, e := range fg.Edges() {
			if err := g.AddEdge(NamespaceID(idx, e.From), NamespaceID(idx, e.To), e.Weight); err != nil {
				return nil, err
			}
		}
	}

	for i := 1; i < len(p.order); i++ {
		lo, hi := p.order[i-1], p.order[i]
		for _, u := range p.crossingCandidates(lo) {
			for _, v := range p.crossingCandidates(hi) {
				up, _ := p.floors[lo].Graph.Position(u)
				vp, _ := p.floors[hi].Graph.Position(v)
				w := euclid(up.X, up.Y, vp.X, vp.Y) + p.penalty
				if err := g.AddEdge(NamespaceID(lo, u), NamespaceID(hi, v), w); err != nil {
					return nil, err
				}
			}
		}
	}

	return g, nil
}

// walkTransitions scans a namespaced walk for floor changes.
func walkTransitions(walk []string) (count int, pairs [][2]string, visited []int) {
	prev, havePrev := 0, false
	for i, id := range walk {
		floor, _, ok := SplitID(id)
		if !ok {
			continue
		}
		if !havePrev || floor != prev {
			visited = append(visited, floor)
			if havePrev {
				count++
				pairs = append(pairs, [2]string{walk[i-1], id})
			}
			prev, havePrev = floor, true
		}
	}
	return count, pairs, visited
}

// unifiedStats aggregates per-floor pick counts and intra-floor
// distances from the expanded legs. A leg's distance is charged to a
// floor only when both endpoints sit on it; transition legs carry the
// penalty and belong to no floor. Every floor the walk touches gets an
// entry, including floors only passed through on the way elsewhere.
func (p *Planner) unifiedStats(legs []tsp.Leg, nsPicks []string) []FloorStats {
	picksOn := map[int]int{}
	for _, pk := range nsPicks {
		if floor, _, ok := SplitID(pk); ok {
			picksOn[floor]++
		}
	}

	touched := map[int]bool{}
	distOn := map[int]float64{}
	for _, leg := range legs {
		for i := 0; i < len(leg.Path); i++ {
			fb, rb, okb := SplitID(leg.Path[i])
			if !okb {
				continue
			}
			touched[fb] = true
			if i == 0 {
				continue
			}
			fa, ra, oka := SplitID(leg.Path[i-1])
			if !oka || fa != fb {
				continue
			}
			if w, ok := p.floors[fa].Graph.Weight(ra, rb); ok {
				distOn[fa] += w
			}
		}
	}

	var stats []FloorStats
	for _, idx := range p.order {
		if !touched[idx] && picksOn[idx] == 0 {
			continue
		}
		stats = append(stats, FloorStats{
			Floor:    idx,
			Nodes:    p.floors[idx].Graph.Order(),
			Picks:    picksOn[idx],
			Distance: distOn[idx],
		})
	}
	return stats
}

func dedupSorted(ss []string) []string {
	out := ss[:0]
	for i, s := range ss {
		if i == 0 || s != ss[i-1] {
			out = append(out, s)
		}
	}
	return out
}
