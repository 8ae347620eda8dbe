package multifloor

import (
	"sort"
	"sync"

	"github.com/pickwalk/pickwalk/tsp"
)

// floorJob is one independent floor solve: its inputs are fixed before
// the goroutines start and its outputs land in a private slot, so the
// solves share nothing mutable.
type floorJob struct {
	floor      int
	picks      []string
	start, end string

	route tsp.Route
	walk  []string
	err   error
}

// SolvePerFloor partitions the picks by owning floor, solves each floor
// independently and concatenates the routes in merge order. Only floors
// holding at least one pick are solved; floor solves run in parallel.
//
// The caller's start is used on the floor that owns it, the end
// likewise; every other floor begins and ends at its default terminal
// (staging, then dock, then lowest node id). Total distance is the sum
// of intra-floor distances plus one penalty per boundary between
// consecutively solved floors.
//
// A floor whose solve fails does not abort the rest: its picks are
// returned in Result.Unroutable and its FloorStats carries the error.
// Unknown pick ids still fail the whole call with tsp.ErrPickNotFound.
func (p *Planner) SolvePerFloor(start, end string, picks []string) (Result, error) {
	start, end = p.defaultTerminals(start, end)

	startFloor, ok := p.floorOf(start)
	if !ok {
		return Result{}, &tsp.PickNotFoundError{Missing: []string{start}}
	}
	endFloor, ok := p.floorOf(end)
	if !ok {
		return Result{}, &tsp.PickNotFoundError{Missing: []string{end}}
	}

	byFloor, err := p.partitionPicks(picks)
	if err != nil {
		return Result{}, err
	}
	if len(byFloor) == 0 {
		byFloor[startFloor] = nil
	}

	jobs := make([]*floorJob, 0, len(byFloor))
	for _, idx := range p.order {
		fp, has := byFloor[idx]
		if !has {
			continue
		}
		j := &floorJob{floor: idx, picks: fp}
		j.start, j.end = defaultTerminal(p.floors[idx]), defaultTerminal(p.floors[idx])
		if idx == startFloor {
			j.start = start
		}
		if idx == endFloor {
			j.end = end
		}
		jobs = append(jobs, j)
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j *floorJob) {
			defer wg.Done()
			g := p.floors[j.floor].Graph
			j.route, j.err = tsp.Solve(g, j.start, j.end, j.picks, p.solver)
			if j.err == nil {
				j.walk, _, j.err = tsp.ExpandRoute(g, j.route.Stops)
			}
		}(j)
	}
	wg.Wait()

	return p.assemble(jobs), nil
}

// partitionPicks assigns every pick to the earliest merge-order floor
// owning it. Unknown ids are collected and reported together.
func (p *Planner) partitionPicks(picks []string) (map[int][]string, error) {
	byFloor := make(map[int][]string)
	seen := make(map[string]bool, len(picks))
	var missing []string

	for _, pk := range picks {
		if seen[pk] {
			continue
		}
		seen[pk] = true
		floor, ok := p.floorOf(pk)
		if !ok {
			missing = append(missing, pk)
			continue
		}
		byFloor[floor] = append(byFloor[floor], pk)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, &tsp.PickNotFoundError{Missing: missing}
	}
	for _, fp := range byFloor {
		sort.Strings(fp)
	}
	return byFloor, nil
}

// assemble concatenates the completed floor jobs into one Result.
func (p *Planner) assemble(jobs []*floorJob) Result {
	var res Result
	prevEnd := "" // last namespaced walk node of the previous solved floor

	for _, j := range jobs {
		stats := FloorStats{
			Floor: j.floor,
			Nodes: p.floors[j.floor].Graph.Order(),
			Picks: len(j.picks),
		}
		if j.err != nil {
			stats.Err = j.err
			res.Unroutable = append(res.Unroutable, j.picks...)
			res.PerFloor = append(res.PerFloor, stats)
			continue
		}

		stats.Distance = j.route.Distance
		res.PerFloor = append(res.PerFloor, stats)
		res.FloorsVisited = append(res.FloorsVisited, j.floor)
		res.Distance += j.route.Distance

		for _, s := range j.route.Stops {
			res.Stops = append(res.Stops, NamespaceID(j.floor, s))
		}
		first := NamespaceID(j.floor, j.walk[0])
		if prevEnd != "" {
			res.Transitions++
			res.TransitionPairs = append(res.TransitionPairs, [2]string{prevEnd, first})
			res.Distance += p.penalty
		}
		for _, n := range j.walk {
			res.Walk = append(res.Walk, NamespaceID(j.floor, n))
		}
		prevEnd = res.Walk[len(res.Walk)-1]
	}

	return res
}

// CompareStrategies runs both strategies on the same request and
// reports which produced the cheaper route. Either strategy failing
// fails the comparison.
func (p *Planner) CompareStrategies(start, end string, picks []string) (Comparison, error) {
	uni, err := p.SolveUnified(start, end, picks)
	if err != nil {
		return Comparison{}, err
	}
	per, err := p.SolvePerFloor(start, end, picks)
	if err != nil {
		return Comparison{}, err
	}

	c := Comparison{Unified: uni, PerFloor: per, Cheaper: StrategyUnified}
	if per.Distance < uni.Distance {
		c.Cheaper = StrategyPerFloor
	}
	return c, nil
}
