package layout

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Validate checks every Location for structural defects and returns the
// first violation wrapped around ErrInvalidLayout. It never mutates its
// input.
//
// Checks, in order per location: non-empty id, finite coordinates,
// non-negative dimensions, id uniqueness within the location's floor.
//
// Complexity: O(n) time, O(n) space for the per-floor id sets.
func Validate(locs []Location) error {
	seen := make(map[int]map[string]struct{}, 4)

	for i, l := range locs {
		if l.ID == "" {
			return fmt.Errorf("%w: location %d has empty id", ErrInvalidLayout, i)
		}
		if !isFinite(l.X) || !isFinite(l.Y) {
			return fmt.Errorf("%w: %q has non-finite coordinates (%v, %v)", ErrInvalidLayout, l.ID, l.X, l.Y)
		}
		if l.Width < 0 || !isFinite(l.Width) {
			return fmt.Errorf("%w: %q has bad width %v", ErrInvalidLayout, l.ID, l.Width)
		}
		if l.Depth < 0 || !isFinite(l.Depth) {
			return fmt.Errorf("%w: %q has bad depth %v", ErrInvalidLayout, l.ID, l.Depth)
		}

		floor := seen[l.Floor]
		if floor == nil {
			floor = make(map[string]struct{})
			seen[l.Floor] = floor
		}
		if _, dup := floor[l.ID]; dup {
			return fmt.Errorf("%w: %q repeats on floor %d (%w)", ErrInvalidLayout, l.ID, l.Floor, ErrDuplicateID)
		}
		floor[l.ID] = struct{}{}
	}

	return nil
}

// ResolveObjects flattens parent Objects into absolute Locations:
//
//   - every pick point becomes a picking Location at center+offset with
//     a zero footprint (the parent owns the physical volume);
//   - every traversable Object contributes its own center as a Location
//     of its Kind, so aisles, staging areas and docks stay routable;
//   - every non-traversable Object contributes an obstacle Location
//     carrying the full footprint.
//
// The result is in input order (parents before their pick points), so
// resolution is deterministic. Validate is not called here; callers run
// it once over the final Location set.
func ResolveObjects(objs []Object) []Location {
	out := make([]Location, 0, len(objs)*2)

	for _, o := range objs {
		kind := o.Kind
		if kind == "" {
			if o.Traversable {
				kind = KindAisle
			} else {
				kind = KindObstacle
			}
		}

		out = append(out, Location{
			ID:          o.ID,
			X:           o.Center.X,
			Y:           o.Center.Y,
			Width:       o.Width,
			Depth:       o.Depth,
			Traversable: o.Traversable,
			Kind:        kind,
			Zone:        o.Zone,
			Floor:       o.Floor,
		})

		for _, p := range o.PickPoints {
			at := r2.Add(o.Center, p.Offset)
			out = append(out, Location{
				ID:          p.ID,
				X:           at.X,
				Y:           at.Y,
				Traversable: true,
				Kind:        KindPicking,
				Zone:        o.Zone,
				Floor:       o.Floor,
			})
		}
	}

	return out
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
