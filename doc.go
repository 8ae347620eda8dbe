// Package pickwalk computes near-optimal pick-walk routes through
// warehouses described as dimensioned physical structures: racks,
// aisles, docks, optionally spanning multiple floors.
//
// The module is a routing core, not a tool. Loading layout files,
// command-line handling, plotting and statistics printing are external
// collaborators that consume the value types defined here.
//
// Subpackages, in dependency order:
//
//	layout/     - Location and physical-object data model, validation,
//	              pick-point resolution (parent + offset to absolute)
//	cluster/    - proximity clustering of locations into aisles and
//	              racks, with opposite-side rack pairing
//	geom/       - segment-vs-expanded-rectangle obstruction predicate
//	graph/      - weighted undirected connectivity graph, shortest
//	              paths (Dijkstra), connected components
//	builder/    - turns clustered locations into an obstacle-validated
//	              connectivity graph with connectivity repair
//	tsp/        - pick-sequence optimization between fixed endpoints:
//	              greedy, 2-opt, exhaustive, double-tree approximation
//	multifloor/ - composes per-floor graphs under an inter-floor
//	              transition cost model (unified and per-floor solves)
//
// A minimal single-floor session:
//
//	g, report, err := builder.Build(locs, builder.DefaultOptions())
//	...
//	route, err := tsp.Solve(g, "Staging_A", "Dock_1", picks, tsp.DefaultOptions())
//
// All computation is synchronous and in-memory; every failure condition
// is reported through typed errors carrying the offending ids.
package pickwalk
