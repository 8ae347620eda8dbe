package multifloor

import (
	"errors"

	"github.com/pickwalk/pickwalk/graph"
	"github.com/pickwalk/pickwalk/layout"
	"github.com/pickwalk/pickwalk/tsp"
)

// Sentinel errors returned by New and the solve strategies. Pick and
// reachability failures reuse the tsp sentinels (tsp.ErrPickNotFound,
// tsp.ErrUnreachable) so callers match one taxonomy across packages.
var (
	// ErrNoFloors - New received an empty floor set.
	ErrNoFloors = errors.New("multifloor: no floors")
	// ErrNilFloorGraph - a Floor carries a nil graph.
	ErrNilFloorGraph = errors.New("multifloor: nil floor graph")
	// ErrEmptyFloor - a Floor's graph has no nodes.
	ErrEmptyFloor = errors.New("multifloor: empty floor graph")
	// ErrDuplicateFloor - two Floors share the same index.
	ErrDuplicateFloor = errors.New("multifloor: duplicate floor index")
	// ErrUnknownFloor - a merge order or access point names a floor
	// index that was not registered.
	ErrUnknownFloor = errors.New("multifloor: unknown floor index")
	// ErrAccessPointNotFound - an access point id is not a node of its
	// floor's graph.
	ErrAccessPointNotFound = errors.New("multifloor: access point not found")
)

// Floor bundles one floor's connectivity graph with the locations it
// was built from. Locations supply node kinds for terminal defaults;
// the graph is the routing authority.
type Floor struct {
	Index     int
	Graph     *graph.Graph
	Locations []layout.Location
}

// AccessPoint designates one end of an inter-floor connection, such as
// a stairwell door or an elevator landing, by floor index and node id.
type AccessPoint struct {
	Floor int
	ID    string
}

// FloorStats reports one floor's share of a solved route.
type FloorStats struct {
	// Floor is the floor index.
	Floor int
	// Nodes is the floor graph's node count.
	Nodes int
	// Picks is how many requested picks resolved to this floor.
	Picks int
	// Distance is the intra-floor walked distance, excluding any
	// transition penalty.
	Distance float64
	// Err is the per-floor solve failure, if any. Only the per-floor
	// strategy populates it; the unified strategy fails as a whole.
	Err error
}

// Result is the outcome of a composed multi-floor solve.
type Result struct {
	// Stops is the terminal sequence in namespaced form: start, every
	// routed pick exactly once, end.
	Stops []string
	// Walk is the full namespaced node-by-node traversal.
	Walk []string
	// Distance is the total cost: intra-floor walking plus one penalty
	// per floor transition.
	Distance float64
	// Transitions counts floor boundary crossings along the walk.
	Transitions int
	// TransitionPairs lists each crossing as [from, to] namespaced ids,
	// in walk order.
	TransitionPairs [][2]string
	// FloorsVisited lists the floor indices touched, in visit order.
	FloorsVisited []int
	// PerFloor carries statistics for every floor that held picks.
	PerFloor []FloorStats
	// Unroutable lists picks (raw ids) whose floor could not be solved
	// under the per-floor strategy. Empty for the unified strategy.
	Unroutable []string
}

// Strategy names a composition approach in comparisons.
type Strategy string

const (
	StrategyUnified  Strategy = "unified"
	StrategyPerFloor Strategy = "per_floor"
)

// Comparison holds both strategies' results on the same instance.
type Comparison struct {
	Unified  Result
	PerFloor Result
	// Cheaper names the strategy with the lower total distance;
	// unified wins exact ties since it searched the larger space.
	Cheaper Strategy
}

// Option configures a Planner.
type Option func(*Planner)

// WithPenalty sets the additive cost of every floor transition.
// Default: 1000.
func WithPenalty(p float64) Option {
	return func(pl *Planner) { pl.penalty = p }
}

// WithAccessPoints declares the inter-floor connection points. Access
// points on consecutive floors (in merge order) are joined pairwise.
// Without any, traversable staging and dock nodes are used instead.
func WithAccessPoints(pts ...AccessPoint) Option {
	return func(pl *Planner) { pl.access = append(pl.access, pts...) }
}

// WithMergeOrder overrides the floor traversal order. Default:
// ascending floor index. Every registered floor must appear exactly
// once.
func WithMergeOrder(indices ...int) Option {
	return func(pl *Planner) { pl.order = append([]int{}, indices...) }
}

// WithSolverOptions replaces the tsp tuning used for every solve.
// Default: tsp.DefaultOptions.
func WithSolverOptions(o tsp.Options) Option {
	return func(pl *Planner) { pl.solver = o }
}
