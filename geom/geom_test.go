package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pickwalk/pickwalk/geom"
)

func box(cx, cy, w, d, clearance float64) r2.Box {
	return geom.ExpandedBox(r2.Vec{X: cx, Y: cy}, w, d, clearance)
}

func TestExpandedBox_GrowsByClearance(t *testing.T) {
	b := box(10, 10, 4, 2, 1)

	assert.Equal(t, r2.Vec{X: 7, Y: 8}, b.Min)
	assert.Equal(t, r2.Vec{X: 13, Y: 12}, b.Max)
}

func TestSegmentIntersectsBox_CrossingSegment(t *testing.T) {
	b := box(5, 0, 2, 2, 0)

	// Horizontal segment straight through the obstacle.
	assert.True(t, geom.SegmentIntersectsBox(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 0}, b))
}

func TestSegmentIntersectsBox_EndpointInside(t *testing.T) {
	b := box(0, 0, 4, 4, 0)

	assert.True(t, geom.SegmentIntersectsBox(r2.Vec{X: 1, Y: 1}, r2.Vec{X: 10, Y: 10}, b))
}

func TestSegmentIntersectsBox_BoundingBoxReject(t *testing.T) {
	b := box(0, 0, 2, 2, 0)

	// Entirely to the right of the box.
	assert.False(t, geom.SegmentIntersectsBox(r2.Vec{X: 5, Y: -5}, r2.Vec{X: 5, Y: 5}, b))
}

func TestSegmentIntersectsBox_DiagonalMiss(t *testing.T) {
	b := box(0, 0, 2, 2, 0)

	// Bounding boxes overlap but the segment passes outside the corner.
	assert.False(t, geom.SegmentIntersectsBox(r2.Vec{X: -3, Y: 0}, r2.Vec{X: 0, Y: -3}, b))
}

func TestSegmentIntersectsBox_ClearanceClosesGap(t *testing.T) {
	// Segment grazes past the bare footprint but not past the expanded one.
	bare := box(0, 0, 2, 2, 0)
	padded := box(0, 0, 2, 2, 1)

	p := r2.Vec{X: -5, Y: 1.5}
	q := r2.Vec{X: 5, Y: 1.5}

	assert.False(t, geom.SegmentIntersectsBox(p, q, bare))
	assert.True(t, geom.SegmentIntersectsBox(p, q, padded))
}

func TestSegmentsIntersect(t *testing.T) {
	tests := []struct {
		name           string
		a1, a2, b1, b2 r2.Vec
		want           bool
	}{
		{"crossing", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 2}, r2.Vec{X: 0, Y: 2}, r2.Vec{X: 2, Y: 0}, true},
		{"disjoint", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 0}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 1, Y: 1}, false},
		{"parallel", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 2, Y: 0}, r2.Vec{X: 0, Y: 1}, r2.Vec{X: 2, Y: 1}, false},
		{"touching endpoint", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 1, Y: 1}, r2.Vec{X: 2, Y: 0}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, geom.SegmentsIntersect(tc.a1, tc.a2, tc.b1, tc.b2))
		})
	}
}
