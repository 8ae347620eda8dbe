// Package layout defines the immutable data model consumed by the
// routing core: dimensioned warehouse Locations, the physical Objects
// they may be derived from, and up-front structural validation.
//
// A Location is a point with a rectangular footprint (width × depth),
// a traversable flag, and optional zone/floor membership. Locations are
// created once, at load time, and never mutated afterwards; everything
// downstream (clustering, graph building, routing) treats them as
// values.
//
// Loaders that speak the parent-object form, a physical Object with
// pick points expressed as offsets from its center, resolve them into
// absolute Locations with ResolveObjects before handing anything to the
// graph builder.
//
// Validation is strict and happens before any algorithmic work: an
// empty id, a non-finite coordinate, a negative dimension, or a
// duplicate id within one floor aborts construction with
// ErrInvalidLayout carrying the offending id and field.
package layout
