package builder

import "github.com/pickwalk/pickwalk/cluster"

// Options tunes candidate generation and obstruction testing.
// Distances are in layout units.
type Options struct {
	// MaxAisleDistance caps the gap between sequential neighbors inside
	// one aisle.
	MaxAisleDistance float64

	// MaxCrossDistance caps cross-cluster connections between
	// intersection nodes and waypoints.
	MaxCrossDistance float64

	// Clearance expands every obstacle footprint on all sides before the
	// segment-obstruction test.
	Clearance float64

	// AisleEndThreshold is the along-aisle separation beyond which two
	// opposite-side rack bins may connect directly (walking around the
	// rack end rather than through it).
	AisleEndThreshold float64

	// IsolatedNeighborCount is how many nearest clear neighbors each
	// unclustered node is tied to.
	IsolatedNeighborCount int

	// RepairConnectivity enables the component-bridging post-pass.
	RepairConnectivity bool

	// Cluster carries the aisle/rack detection tolerances.
	Cluster cluster.Options
}

// DefaultOptions matches the defaults realistic layouts are built with:
// 25-unit connection reach, 1-unit obstacle clearance, 20-unit aisle-end
// threshold, two redundancy neighbors for isolated nodes, repair on.
func DefaultOptions() Options {
	return Options{
		MaxAisleDistance:      25,
		MaxCrossDistance:      25,
		Clearance:             1,
		AisleEndThreshold:     20,
		IsolatedNeighborCount: 2,
		RepairConnectivity:    true,
		Cluster:               cluster.DefaultOptions(),
	}
}

// Bridge is one edge the connectivity-repair pass added.
type Bridge struct {
	From     string
	To       string
	Distance float64
}

// Report summarizes a build for downstream consumers. Components is
// non-empty only when repair could not produce a connected graph; each
// entry lists the node ids of one surviving component.
type Report struct {
	Nodes         int
	Edges         int
	Obstacles     int
	Racks         int
	RackPairs     int
	Intersections int

	Bridges    []Bridge
	Components [][]string
}

// Connected reports whether the built graph ended up as one component.
func (r *Report) Connected() bool { return len(r.Components) == 0 }
