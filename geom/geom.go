package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// parallelEps is the determinant threshold under which two segments are
// treated as parallel (no single intersection point).
const parallelEps = 1e-10

// ExpandedBox returns the axis-aligned footprint of a rectangle centered
// at c with the given width (X span) and depth (Y span), grown by
// clearance on every side.
func ExpandedBox(c r2.Vec, width, depth, clearance float64) r2.Box {
	hw := width/2 + clearance
	hd := depth/2 + clearance

	return r2.Box{
		Min: r2.Vec{X: c.X - hw, Y: c.Y - hd},
		Max: r2.Vec{X: c.X + hw, Y: c.Y + hd},
	}
}

// Contains reports whether point p lies inside box b (boundary included).
func Contains(b r2.Box, p r2.Vec) bool {
	return b.Min.X <= p.X && p.X <= b.Max.X && b.Min.Y <= p.Y && p.Y <= b.Max.Y
}

// SegmentIntersectsBox reports whether the closed segment p-q touches
// box b.
//
// Stages:
//  1. endpoint containment: either endpoint inside b intersects;
//  2. bounding-box reject: disjoint bounding boxes cannot intersect;
//  3. exact test: the segment against each of b's four edges.
//
// Complexity: O(1).
func SegmentIntersectsBox(p, q r2.Vec, b r2.Box) bool {
	if Contains(b, p) || Contains(b, q) {
		return true
	}

	// Bounding-box reject.
	if math.Max(p.X, q.X) < b.Min.X || math.Min(p.X, q.X) > b.Max.X ||
		math.Max(p.Y, q.Y) < b.Min.Y || math.Min(p.Y, q.Y) > b.Max.Y {
		return false
	}

	corners := [4]r2.Vec{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
	for i := 0; i < 4; i++ {
		if SegmentsIntersect(p, q, corners[i], corners[(i+1)%4]) {
			return true
		}
	}

	return false
}

// SegmentsIntersect reports whether closed segments p1-p2 and p3-p4
// share a point, via the parametric line form. Parallel segments report
// false; collinear overlap is irrelevant here because box edges are
// tested from a segment that already failed the containment check.
func SegmentsIntersect(p1, p2, p3, p4 r2.Vec) bool {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < parallelEps {
		return false
	}

	t := ((p1.X-p3.X)*(p3.Y-p4.Y) - (p1.Y-p3.Y)*(p3.X-p4.X)) / denom
	u := -((p1.X-p2.X)*(p1.Y-p3.Y) - (p1.Y-p2.Y)*(p1.X-p3.X)) / denom

	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}
