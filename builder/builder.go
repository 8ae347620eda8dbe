package builder

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pickwalk/pickwalk/cluster"
	"github.com/pickwalk/pickwalk/geom"
	"github.com/pickwalk/pickwalk/graph"
	"github.com/pickwalk/pickwalk/layout"
)

// Build constructs the connectivity graph for one floor of Locations.
//
// Non-traversable Locations never become nodes; they survive only as
// obstacle geometry. The returned Report is always non-nil on success
// and records bridges added by repair plus any components that could
// not be connected; disconnection is reported, not failed.
//
// Errors: layout.ErrInvalidLayout (wrapped with the offending id) when
// the input is malformed; nothing else fails.
//
// Complexity: O(V² · O) worst case, with O the obstacle count.
func Build(locs []layout.Location, opts Options) (*graph.Graph, *Report, error) {
	if err := layout.Validate(locs); err != nil {
		return nil, nil, err
	}

	ann := cluster.Analyze(locs, opts.Cluster)
	b := &build{
		opts: opts,
		ann:  ann,
		g:    graph.New(),
		byID: make(map[string]layout.Location, len(locs)),
	}

	for _, l := range locs {
		if l.Traversable {
			b.byID[l.ID] = l
			_ = b.g.AddNode(l.ID, l.Pos())
		} else {
			b.obstacles = append(b.obstacles, geom.ExpandedBox(l.Pos(), l.Width, l.Depth, opts.Clearance))
		}
	}

	b.connectAisles()
	intersections := b.connectIntersections()
	b.connectIsolated()

	report := &Report{
		Obstacles:     len(b.obstacles),
		Racks:         len(ann.Racks),
		Intersections: len(intersections),
	}
	for _, rk := range ann.Racks {
		if rk.PairID != cluster.None {
			report.RackPairs++
		}
	}
	report.RackPairs /= 2 // each pair was counted from both sides

	if opts.RepairConnectivity {
		b.repair(report)
	}
	if comps := b.g.Components(); len(comps) > 1 {
		report.Components = comps
	}

	report.Nodes = b.g.Order()
	report.Edges = b.g.Size()

	return b.g, report, nil
}

// build holds the per-run state so the stages stay small.
type build struct {
	opts      Options
	ann       cluster.Result
	g         *graph.Graph
	byID      map[string]layout.Location
	obstacles []r2.Box
}

// segmentClear reports whether the straight segment p-q avoids every
// expanded obstacle footprint. This is the authoritative obstruction
// test every candidate edge must pass.
func (b *build) segmentClear(p, q r2.Vec) bool {
	for _, box := range b.obstacles {
		if geom.SegmentIntersectsBox(p, q, box) {
			return false
		}
	}

	return true
}

// rackBlocked reports whether u-v would cut through a paired rack:
// opposite sides of the same rack pair, closer along the aisle than the
// end threshold.
func (b *build) rackBlocked(u, v string) bool {
	au, av := b.ann.Lookup(u), b.ann.Lookup(v)
	if au.RackID == cluster.None || av.RackID == cluster.None {
		return false
	}
	if au.RackSide == cluster.SideNone || av.RackSide == cluster.SideNone || au.RackSide == av.RackSide {
		return false
	}
	ru, ok := b.ann.RackByID(au.RackID)
	if !ok || ru.PairID != av.RackID {
		return false
	}

	return math.Abs(b.byID[u].Y-b.byID[v].Y) < b.opts.AisleEndThreshold
}

// candidate applies the shared edge filters: distance cap, rack
// blocking, obstruction. Weight is the Euclidean distance.
func (b *build) candidate(u, v string, maxDist float64) {
	pu, pv := b.byID[u].Pos(), b.byID[v].Pos()
	d := euclid(pu, pv)
	if d > maxDist {
		return
	}
	if b.rackBlocked(u, v) {
		return
	}
	if !b.segmentClear(pu, pv) {
		return
	}
	_ = b.g.AddEdge(u, v, d)
}

// connectAisles links sequential neighbors inside every aisle; member
// lists come pre-sorted along the travel axis from the clusterer.
func (b *build) connectAisles() {
	for _, aisleID := range sortedKeys(b.ann.VAisles) {
		members := b.ann.VAisles[aisleID]
		for i := 0; i+1 < len(members); i++ {
			b.candidate(members[i], members[i+1], b.opts.MaxAisleDistance)
		}
	}
	for _, aisleID := range sortedKeys(b.ann.HAisles) {
		members := b.ann.HAisles[aisleID]
		for i := 0; i+1 < len(members); i++ {
			b.candidate(members[i], members[i+1], b.opts.MaxCrossDistance)
		}
	}
}

// connectIntersections joins clusters at their crossing points: nodes
// that belong to both a vertical and a horizontal aisle, plus
// designated waypoints. Pairs already sharing an aisle are skipped;
// the aisle pass owns those.
func (b *build) connectIntersections() []string {
	var nodes []string
	for id, l := range b.byID {
		a := b.ann.Lookup(id)
		if (a.VAisle != cluster.None && a.HAisle != cluster.None) || l.Kind == layout.KindWaypoint {
			nodes = append(nodes, id)
		}
	}
	sort.Strings(nodes)

	for i := 0; i < len(nodes); i++ {
		ai := b.ann.Lookup(nodes[i])
		for j := i + 1; j < len(nodes); j++ {
			aj := b.ann.Lookup(nodes[j])
			if ai.VAisle != cluster.None && ai.VAisle == aj.VAisle {
				continue
			}
			if ai.HAisle != cluster.None && ai.HAisle == aj.HAisle {
				continue
			}
			b.candidate(nodes[i], nodes[j], b.opts.MaxCrossDistance)
		}
	}

	return nodes
}

// connectIsolated ties every node outside all clusters to its nearest
// obstacle-clear neighbors, so lone staging areas and docks stay
// routable. Distance is uncapped here: an isolated node with no close
// neighbor still deserves its best available connection.
func (b *build) connectIsolated() {
	ids := b.g.Nodes()

	for _, id := range ids {
		a := b.ann.Lookup(id)
		if a.VAisle != cluster.None || a.HAisle != cluster.None {
			continue
		}
		p := b.byID[id].Pos()

		type cand struct {
			id string
			d  float64
		}
		var clear []cand
		for _, other := range ids {
			if other == id {
				continue
			}
			q := b.byID[other].Pos()
			if b.segmentClear(p, q) {
				clear = append(clear, cand{id: other, d: euclid(p, q)})
			}
		}
		sort.Slice(clear, func(x, y int) bool {
			if clear[x].d != clear[y].d {
				return clear[x].d < clear[y].d
			}

			return clear[x].id < clear[y].id
		})

		for k := 0; k < len(clear) && k < b.opts.IsolatedNeighborCount; k++ {
			_ = b.g.AddEdge(id, clear[k].id, clear[k].d)
		}
	}
}

// repair bridges components with the shortest obstacle-clear connection
// between the nearest pair, repeating until the graph is connected or
// no clear connection remains.
func (b *build) repair(report *Report) {
	for {
		comps := b.g.Components()
		if len(comps) <= 1 {
			return
		}

		best := Bridge{Distance: math.Inf(1)}
		for ci := 0; ci < len(comps); ci++ {
			for cj := ci + 1; cj < len(comps); cj++ {
				for _, u := range comps[ci] {
					pu := b.byID[u].Pos()
					for _, v := range comps[cj] {
						d := euclid(pu, b.byID[v].Pos())
						if d >= best.Distance {
							continue
						}
						if !b.segmentClear(pu, b.byID[v].Pos()) {
							continue
						}
						best = Bridge{From: u, To: v, Distance: d}
					}
				}
			}
		}

		if math.IsInf(best.Distance, 1) {
			return // no clear connection exists; caller reports components
		}
		_ = b.g.AddEdge(best.From, best.To, best.Distance)
		report.Bridges = append(report.Bridges, best)
	}
}

func euclid(p, q r2.Vec) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func sortedKeys(m map[int][]string) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
