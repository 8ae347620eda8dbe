package cluster

import (
	"sort"

	"github.com/pickwalk/pickwalk/layout"
)

// GroupByTolerance assigns a cluster label to every value: values are
// sorted, consecutive values whose gap is ≤ tol chain into one cluster,
// and chains with fewer than minPts members are labelled None.
//
// Labels are dense, start at 0, and are assigned in ascending coordinate
// order, so identical inputs always produce identical labels.
//
// Complexity: O(n log n) time for the sort, O(n) space.
func GroupByTolerance(values []float64, tol float64, minPts int) []int {
	n := len(values)
	labels := make([]int, n)
	for i := range labels {
		labels[i] = None
	}
	if n == 0 {
		return labels
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] < values[order[b]] })

	next := 0
	runStart := 0 // index into order of the current chain's first member
	assign := func(lo, hi int) {
		if hi-lo < minPts {
			return
		}
		for k := lo; k < hi; k++ {
			labels[order[k]] = next
		}
		next++
	}

	for k := 1; k < n; k++ {
		if values[order[k]]-values[order[k-1]] > tol {
			assign(runStart, k)
			runStart = k
		}
	}
	assign(runStart, n)

	return labels
}

// Analyze clusters locs into aisles and racks per opts and returns the
// per-id annotation table.
//
// Aisles are detected over traversable locations only; racks over
// picking bins only. Rack pairing marks two racks left/right when their
// centers sit one aisle width apart (within [MinPairGap, MaxPairGap]);
// each rack pairs with at most one other, nearest-first.
func Analyze(locs []layout.Location, opts Options) Result {
	res := Result{
		ByID:    make(map[string]Annotation, len(locs)),
		VAisles: make(map[int][]string),
		HAisles: make(map[int][]string),
	}
	for _, l := range locs {
		res.ByID[l.ID] = Annotation{VAisle: None, HAisle: None, RackID: None, RackSide: SideNone}
	}

	detectAisles(locs, opts, &res)
	inferRacks(locs, opts, &res)

	return res
}

// detectAisles labels traversable locations with vertical (shared X) and
// horizontal (shared Y) aisle ids and records sorted member lists.
func detectAisles(locs []layout.Location, opts Options, res *Result) {
	idx := make([]int, 0, len(locs))
	for i, l := range locs {
		if l.Traversable {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return
	}

	xs := make([]float64, len(idx))
	ys := make([]float64, len(idx))
	for k, i := range idx {
		xs[k] = locs[i].X
		ys[k] = locs[i].Y
	}

	vLabels := GroupByTolerance(xs, opts.AisleTolerance, opts.MinAisleSize)
	hLabels := GroupByTolerance(ys, opts.AisleTolerance, opts.MinAisleSize)

	for k, i := range idx {
		l := locs[i]
		a := res.ByID[l.ID]
		a.VAisle = vLabels[k]
		a.HAisle = hLabels[k]
		res.ByID[l.ID] = a

		if a.VAisle != None {
			res.VAisles[a.VAisle] = append(res.VAisles[a.VAisle], l.ID)
		}
		if a.HAisle != None {
			res.HAisles[a.HAisle] = append(res.HAisles[a.HAisle], l.ID)
		}
	}

	pos := make(map[string]layout.Location, len(idx))
	for _, i := range idx {
		pos[locs[i].ID] = locs[i]
	}
	for _, members := range res.VAisles {
		sortMembers(members, pos, false)
	}
	for _, members := range res.HAisles {
		sortMembers(members, pos, true)
	}
}

// sortMembers orders aisle members along the travel axis; byX selects
// the X axis (horizontal aisles), otherwise Y. Ties break on id so the
// order is total.
func sortMembers(members []string, pos map[string]layout.Location, byX bool) {
	sort.Slice(members, func(a, b int) bool {
		la, lb := pos[members[a]], pos[members[b]]
		ka, kb := la.Y, lb.Y
		if byX {
			ka, kb = la.X, lb.X
		}
		if ka != kb {
			return ka < kb
		}

		return members[a] < members[b]
	})
}

// inferRacks clusters picking bins by X, derives rack centers and pairs
// racks one aisle width apart as left/right sides.
func inferRacks(locs []layout.Location, opts Options, res *Result) {
	idx := make([]int, 0, len(locs))
	for i, l := range locs {
		if l.Kind == layout.KindPicking {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return
	}

	xs := make([]float64, len(idx))
	for k, i := range idx {
		xs[k] = locs[i].X
	}
	labels := GroupByTolerance(xs, opts.RackTolerance, opts.MinRackSize)

	byRack := make(map[int][]int)
	for k, i := range idx {
		if labels[k] == None {
			continue
		}
		byRack[labels[k]] = append(byRack[labels[k]], i)
	}

	rackIDs := make([]int, 0, len(byRack))
	for id := range byRack {
		rackIDs = append(rackIDs, id)
	}
	sort.Ints(rackIDs)

	racks := make([]Rack, 0, len(rackIDs))
	for _, id := range rackIDs {
		members := byRack[id]
		var cx float64
		bins := make([]string, 0, len(members))
		for _, i := range members {
			cx += locs[i].X
			bins = append(bins, locs[i].ID)
		}
		sort.Strings(bins)
		racks = append(racks, Rack{
			ID:      id,
			CenterX: cx / float64(len(members)),
			Side:    SideNone,
			PairID:  None,
			Bins:    bins,
		})
	}

	pairRacks(racks, opts)
	res.Racks = racks

	for ri := range racks {
		for _, bin := range racks[ri].Bins {
			a := res.ByID[bin]
			a.RackID = racks[ri].ID
			a.RackSide = racks[ri].Side
			res.ByID[bin] = a
		}
	}
}

// pairRacks greedily pairs racks whose centers sit one aisle width
// apart. Racks are scanned in ascending center order and each rack pairs
// with the nearest unpaired candidate, so labelling is deterministic:
// the lower center becomes the left side.
func pairRacks(racks []Rack, opts Options) {
	order := make([]int, len(racks))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return racks[order[a]].CenterX < racks[order[b]].CenterX })

	for oi, i := range order {
		if racks[i].PairID != None {
			continue
		}
		for _, j := range order[oi+1:] {
			if racks[j].PairID != None {
				continue
			}
			gap := racks[j].CenterX - racks[i].CenterX
			if gap < opts.MinPairGap || gap > opts.MaxPairGap {
				continue
			}
			racks[i].PairID = racks[j].ID
			racks[j].PairID = racks[i].ID
			racks[i].Side = SideLeft
			racks[j].Side = SideRight

			break
		}
	}
}
