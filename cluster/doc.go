// Package cluster groups warehouse Locations into aisle and rack
// structures by coordinate proximity.
//
// The grouping primitive is GroupByTolerance: a one-dimensional density
// grouping that chains values whose consecutive gap stays within a
// tolerance and discards chains below a minimum size. Any algorithm
// satisfying that contract would do; the rest of the system depends
// only on the resulting labels, never on how they were produced.
//
// On top of the primitive, Analyze derives:
//
//   - vertical aisles (traversable Locations sharing an X coordinate)
//     and horizontal aisles (sharing a Y coordinate);
//   - racks (picking bins aligned along X), including left/right pairing
//     of racks that face each other across one aisle width, which the
//     graph builder uses to forbid shortcuts through shelving.
//
// Results are annotations keyed by Location id, not owned entities:
// their lifetime is the graph-builder run that requested them.
// Degenerate inputs (empty, single point, all-collinear) yield zero or
// trivial clusters and never an error.
package cluster
