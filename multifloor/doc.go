// Package multifloor plans pick walks that span several warehouse
// floors, each represented by its own connectivity graph from package
// builder.
//
// Floors stay independent until composed. Two strategies are offered:
//
//   - Unified: every floor graph is merged into one graph with node ids
//     namespaced by floor ("F2_Bin7"), inter-floor edges are added at
//     access points (stairs, elevators) with a transition penalty on
//     top of the physical distance, and the whole pick set is solved as
//     a single instance. This can discover cross-floor savings, at the
//     cost of a larger search space.
//   - Per-floor: picks are partitioned by owning floor, each floor is
//     solved independently (in parallel) and the routes are
//     concatenated in merge order with a penalty per floor boundary.
//     Cheaper and more predictable, but blind to cross-floor tradeoffs.
//
// Both strategies visit every requested pick exactly once and report
// distances, transition counts and per-floor statistics. A floor that
// cannot be solved under the per-floor strategy does not abort the
// others; its picks come back in Result.Unroutable.
//
//	p, err := multifloor.New(floors,
//		multifloor.WithAccessPoints(
//			multifloor.AccessPoint{Floor: 1, ID: "Stairs"},
//			multifloor.AccessPoint{Floor: 2, ID: "Stairs"},
//		))
//	res, err := p.SolveUnified("Dock", "Dock", picks)
package multifloor
