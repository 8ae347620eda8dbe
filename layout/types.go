package layout

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r2"
)

// Sentinel errors for layout validation and object resolution.
var (
	// ErrInvalidLayout indicates a malformed input Location: empty id,
	// non-finite coordinate, negative dimension, or a duplicate id within
	// one floor. The wrapped message names the offending id and field.
	ErrInvalidLayout = errors.New("layout: invalid location")

	// ErrDuplicateID indicates two Locations on the same floor share an id.
	// It wraps ErrInvalidLayout through Validate.
	ErrDuplicateID = errors.New("layout: duplicate location id")
)

// Kind classifies what a Location physically is. The routing core only
// distinguishes picking bins (rack inference), staging/dock areas
// (default start points and inter-floor fallbacks) and waypoints
// (always-connectable junctions); unknown kinds are routed like plain
// traversable points.
type Kind string

const (
	KindPicking  Kind = "picking"
	KindStaging  Kind = "staging"
	KindDock     Kind = "dock"
	KindAisle    Kind = "aisle"
	KindWaypoint Kind = "waypoint"
	KindObstacle Kind = "obstacle"
)

// Location is one dimensioned point in a warehouse layout.
//
// X, Y locate the footprint center; Width spans the X axis and Depth the
// Y axis. Traversable=false marks the Location as obstacle geometry: it
// never becomes a routing node, but its expanded footprint blocks edges.
// Floor is 0 for single-floor layouts.
type Location struct {
	ID          string
	X, Y        float64
	Width       float64
	Depth       float64
	Traversable bool
	Kind        Kind
	Zone        string
	Floor       int
}

// Pos returns the footprint center as a planar vector.
func (l Location) Pos() r2.Vec { return r2.Vec{X: l.X, Y: l.Y} }

// PickPoint is a pick location expressed relative to its parent Object.
type PickPoint struct {
	ID     string
	Offset r2.Vec
}

// Object is a physical structure (rack, staging area, dock, …) with a
// center, a footprint, and optional pick points hanging off it. It is
// the parent-object-plus-offset input form; ResolveObjects flattens it
// into absolute Locations.
type Object struct {
	ID          string
	Center      r2.Vec
	Width       float64
	Depth       float64
	Kind        Kind
	Traversable bool
	Zone        string
	Floor       int
	PickPoints  []PickPoint
}
