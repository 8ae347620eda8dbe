package multifloor

import (
	"fmt"
	"math"
	"sort"

	"github.com/pickwalk/pickwalk/layout"
	"github.com/pickwalk/pickwalk/tsp"
)

// Planner composes per-floor graphs and answers routing requests with
// either strategy. Immutable after New; safe for concurrent use.
type Planner struct {
	floors  map[int]Floor
	order   []int
	penalty float64
	access  []AccessPoint
	solver  tsp.Options
}

// New validates the floor set and builds a Planner.
//
// Contracts:
//   - at least one floor, each with a non-nil graph and unique index;
//   - a custom merge order must list every floor exactly once;
//   - every access point must name a registered floor and an existing
//     node on it.
func New(floors []Floor, opts ...Option) (*Planner, error) {
	if len(floors) == 0 {
		return nil, ErrNoFloors
	}

	p := &Planner{
		floors:  make(map[int]Floor, len(floors)),
		penalty: 1000,
		solver:  tsp.DefaultOptions(),
	}
	for _, f := range floors {
		if f.Graph == nil {
			return nil, fmt.Errorf("%w: floor %d", ErrNilFloorGraph, f.Index)
		}
		if f.Graph.Order() == 0 {
			return nil, fmt.Errorf("%w: floor %d", ErrEmptyFloor, f.Index)
		}
		if _, dup := p.floors[f.Index]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateFloor, f.Index)
		}
		p.floors[f.Index] = f
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.order == nil {
		for idx := range p.floors {
			p.order = append(p.order, idx)
		}
		sort.Ints(p.order)
	} else {
		seen := make(map[int]bool, len(p.order))
		for _, idx := range p.order {
			if _, ok := p.floors[idx]; !ok {
				return nil, fmt.Errorf("%w: merge order names %d", ErrUnknownFloor, idx)
			}
			if seen[idx] {
				return nil, fmt.Errorf("%w: %d repeats in merge order", ErrDuplicateFloor, idx)
			}
			seen[idx] = true
		}
		if len(p.order) != len(p.floors) {
			return nil, fmt.Errorf("%w: merge order covers %d of %d floors",
				ErrUnknownFloor, len(p.order), len(p.floors))
		}
	}

	for _, ap := range p.access {
		f, ok := p.floors[ap.Floor]
		if !ok {
			return nil, fmt.Errorf("%w: access point %q names floor %d", ErrUnknownFloor, ap.ID, ap.Floor)
		}
		if !f.Graph.HasNode(ap.ID) {
			return nil, fmt.Errorf("%w: %q on floor %d", ErrAccessPointNotFound, ap.ID, ap.Floor)
		}
	}

	return p, nil
}

// Penalty reports the configured inter-floor transition cost.
func (p *Planner) Penalty() float64 { return p.penalty }

// MergeOrder reports the floor traversal order.
func (p *Planner) MergeOrder() []int {
	return append([]int{}, p.order...)
}

// floorOf resolves a raw node id to the floor that owns it, scanning
// floors in merge order so a cross-floor id collision resolves
// deterministically to the earliest floor.
func (p *Planner) floorOf(id string) (int, bool) {
	for _, idx := range p.order {
		if p.floors[idx].Graph.HasNode(id) {
			return idx, true
		}
	}
	return 0, false
}

// defaultTerminal picks the route terminal for a floor when the caller
// supplied none: the lowest-id staging node, then the lowest-id dock
// node, then the floor's lowest node id.
func defaultTerminal(f Floor) string {
	kinds := make(map[string]layout.Kind, len(f.Locations))
	for _, l := range f.Locations {
		kinds[l.ID] = l.Kind
	}

	nodes := f.Graph.Nodes()
	for _, want := range []layout.Kind{layout.KindStaging, layout.KindDock} {
		for _, id := range nodes {
			if kinds[id] == want {
				return id
			}
		}
	}
	return nodes[0]
}

// accessOn lists the access point ids declared for one floor, sorted.
func (p *Planner) accessOn(floor int) []string {
	var ids []string
	for _, ap := range p.access {
		if ap.Floor == floor {
			ids = append(ids, ap.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// crossingCandidates lists the nodes eligible to anchor inter-floor
// edges on one floor: explicit access points when declared, otherwise
// traversable staging and dock nodes.
func (p *Planner) crossingCandidates(floor int) []string {
	if ids := p.accessOn(floor); len(ids) > 0 {
		return ids
	}

	f := p.floors[floor]
	var ids []string
	for _, l := range f.Locations {
		if !l.Traversable {
			continue
		}
		if (l.Kind == layout.KindStaging || l.Kind == layout.KindDock) && f.Graph.HasNode(l.ID) {
			ids = append(ids, l.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

func euclid(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}
