package cluster

// None marks a Location that belongs to no cluster of the given kind.
const None = -1

// Side labels which face of an aisle a rack (and its bins) sits on.
// Racks that were never paired stay SideNone.
type Side string

const (
	SideNone  Side = "none"
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Options tunes aisle detection and rack inference.
//
// Tolerances are in layout distance units. A cluster below the minimum
// member count is discarded, not reported as an error.
type Options struct {
	// AisleTolerance chains locations into one aisle while consecutive
	// coordinates stay within this gap. Applied to X for vertical aisles
	// and to Y for horizontal ones.
	AisleTolerance float64

	// MinAisleSize is the smallest member count that still qualifies as
	// an aisle.
	MinAisleSize int

	// RackTolerance chains picking bins into one rack along the axis
	// perpendicular to aisle travel.
	RackTolerance float64

	// MinRackSize is the smallest bin count that still forms a rack.
	MinRackSize int

	// MinPairGap / MaxPairGap bound the center-to-center distance at
	// which two racks are considered opposite sides of one aisle.
	MinPairGap float64
	MaxPairGap float64
}

// DefaultOptions mirrors the tolerances realistic layouts are drawn at:
// aisle coordinates within 5 units, at least 3 members per aisle, bins
// within 3 units per rack, at least 2 bins per rack, and a 10-20 unit
// aisle width between paired racks.
func DefaultOptions() Options {
	return Options{
		AisleTolerance: 5,
		MinAisleSize:   3,
		RackTolerance:  3,
		MinRackSize:    2,
		MinPairGap:     10,
		MaxPairGap:     20,
	}
}

// Annotation is the per-Location cluster membership lookup. Aisle and
// rack ids are None when the Location belongs to no such cluster.
type Annotation struct {
	VAisle   int
	HAisle   int
	RackID   int
	RackSide Side
}

// Rack is a derived grouping of picking bins inferred to be one physical
// storage structure. PairID is the opposite-side rack, or None.
type Rack struct {
	ID      int
	CenterX float64
	Side    Side
	PairID  int
	Bins    []string
}

// Result carries everything Analyze derives. ByID defaults (zero
// lookups) behave as "no membership": use Lookup to get well-formed
// annotations for unknown ids.
type Result struct {
	ByID  map[string]Annotation
	Racks []Rack

	// VAisles / HAisles list member Location ids per aisle id, each list
	// sorted along the aisle's travel axis (Y for vertical, X for
	// horizontal).
	VAisles map[int][]string
	HAisles map[int][]string
}

// Lookup returns the annotation for id, or an empty (no-membership)
// annotation when id was never clustered.
func (r Result) Lookup(id string) Annotation {
	if a, ok := r.ByID[id]; ok {
		return a
	}

	return Annotation{VAisle: None, HAisle: None, RackID: None, RackSide: SideNone}
}

// RackByID returns the rack with the given id, if any.
func (r Result) RackByID(id int) (Rack, bool) {
	for _, rk := range r.Racks {
		if rk.ID == id {
			return rk, true
		}
	}

	return Rack{}, false
}
