// Package geom supplies the planar obstruction predicate the graph
// builder validates candidate edges against: does the straight segment
// between two points intersect an axis-aligned rectangle expanded by a
// clearance margin?
//
// The test is self-contained parametric geometry (bounding-box reject,
// endpoint containment, then segment-vs-edge intersection for each of
// the rectangle's four edges), so the rest of the system depends only
// on the predicate, not on any particular geometry library's identity.
package geom
