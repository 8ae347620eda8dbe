package tsp

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Method selects the optimization strategy used by Solve.
type Method int

const (
	// Greedy builds the route by repeatedly visiting the nearest
	// unvisited pick.
	Greedy Method = iota + 1
	// TwoOpt refines a greedy route with 2-opt segment reversals.
	TwoOpt
	// Exhaustive enumerates all pick permutations; exact but factorial.
	Exhaustive
	// Approx runs the MST double-tree heuristic (2-approximation).
	Approx
)

// String implements fmt.Stringer for diagnostics and test output.
func (m Method) String() string {
	switch m {
	case Greedy:
		return "greedy"
	case TwoOpt:
		return "two_opt"
	case Exhaustive:
		return "exhaustive"
	case Approx:
		return "approx"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

// Sentinel errors returned by Solve and ExpandRoute. Wrapped errors
// carry instance detail; match with errors.Is.
var (
	// ErrNilGraph - Solve received a nil graph.
	ErrNilGraph = errors.New("tsp: nil graph")
	// ErrPickNotFound - a terminal (start, end or pick) is absent from
	// the graph.
	ErrPickNotFound = errors.New("tsp: pick not found")
	// ErrUnreachable - no path exists between two terminals, so no
	// route can visit every pick.
	ErrUnreachable = errors.New("tsp: pick unreachable")
	// ErrExhaustiveTooLarge - pick count exceeds
	// Options.MaxExhaustivePicks for Method Exhaustive.
	ErrExhaustiveTooLarge = errors.New("tsp: too many picks for exhaustive search")
	// ErrUnsupportedMethod - Options.Method is not one of the declared
	// Method constants.
	ErrUnsupportedMethod = errors.New("tsp: unsupported method")
)

// PickNotFoundError reports every requested terminal missing from the
// graph, so callers can surface the complete list at once.
type PickNotFoundError struct {
	Missing []string
}

// Error implements error.
func (e *PickNotFoundError) Error() string {
	return fmt.Sprintf("tsp: pick not found: %s", strings.Join(e.Missing, ", "))
}

// Unwrap lets errors.Is match ErrPickNotFound.
func (e *PickNotFoundError) Unwrap() error { return ErrPickNotFound }

// UnreachableError names the terminal pair with no connecting path.
type UnreachableError struct {
	From, To string
}

// Error implements error.
func (e *UnreachableError) Error() string {
	return fmt.Sprintf("tsp: no path from %q to %q", e.From, e.To)
}

// Unwrap lets errors.Is match ErrUnreachable.
func (e *UnreachableError) Unwrap() error { return ErrUnreachable }

// Options tunes Solve.
//
// Zero values are not usable directly; start from DefaultOptions and
// override fields as needed.
type Options struct {
	// Method selects the optimization strategy. Default: TwoOpt.
	Method Method

	// MaxExhaustivePicks caps the pick count accepted by Exhaustive.
	// Beyond the cap Solve fails with ErrExhaustiveTooLarge rather than
	// silently degrading. Default: 10.
	MaxExhaustivePicks int

	// TwoOptMaxPasses bounds the number of full improvement sweeps in
	// TwoOpt. Default: 100.
	TwoOptMaxPasses int

	// Eps is the minimum distance reduction a 2-opt move must achieve
	// to count as an improvement. Guards against float noise cycling.
	// Default: 1e-12.
	Eps float64
}

// DefaultOptions returns the tuning used when callers have no special
// requirements: 2-opt refinement, exhaustive capped at 10 picks.
func DefaultOptions() Options {
	return Options{
		Method:             TwoOpt,
		MaxExhaustivePicks: 10,
		TwoOptMaxPasses:    100,
		Eps:                1e-12,
	}
}

// Route is the result of Solve: the visiting order of the terminals and
// the total shortest-path distance walked.
type Route struct {
	// Stops lists the terminal sequence: start, each pick exactly once,
	// then end. Intermediate graph nodes are not included; use
	// ExpandRoute to inflate the full walk.
	Stops []string

	// Distance is the sum of shortest-path distances between
	// consecutive stops, rounded to 1e-9 for determinism.
	Distance float64
}

// Leg is one expanded segment of a route between consecutive stops.
type Leg struct {
	From, To string
	// Path is the full node sequence from From to To inclusive.
	Path []string
	// Distance is the shortest-path cost of the leg.
	Distance float64
}

// round1e9 snaps accumulated float sums to a 1e-9 grid so that
// permutation order of additions cannot perturb reported distances.
func round1e9(x float64) float64 {
	return math.Round(x*1e9) / 1e9
}
