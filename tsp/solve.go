package tsp

import "github.com/pickwalk/pickwalk/graph"

// Solve orders the picks into a walk from start to end over the
// shortest-path metric of g and returns the resulting Route.
//
// Contracts:
//   - start and end are fixed; only the picks between them are ordered.
//   - Every pick appears exactly once. Duplicate pick IDs, and picks
//     equal to start or end, are visited once and not repeated.
//   - With zero picks the route is simply start, end.
//   - Deterministic: equal inputs produce the identical Stops slice.
//
// Errors: ErrNilGraph, ErrPickNotFound (as *PickNotFoundError listing
// every missing terminal), ErrUnreachable (as *UnreachableError),
// ErrExhaustiveTooLarge, ErrUnsupportedMethod.
func Solve(g *graph.Graph, start, end string, picks []string, opts Options) (Route, error) {
	if g == nil {
		return Route{}, ErrNilGraph
	}
	switch opts.Method {
	case Greedy, TwoOpt, Exhaustive, Approx:
	default:
		return Route{}, ErrUnsupportedMethod
	}

	m, err := buildMetric(g, start, end, picks)
	if err != nil {
		return Route{}, err
	}

	if m.pickCount() == 0 {
		return m.toRoute([]int{0}), nil
	}

	var order []int
	switch opts.Method {
	case Greedy:
		order = greedyOrder(m)
	case TwoOpt:
		order = twoOptOrder(m, opts)
	case Exhaustive:
		if m.pickCount() > opts.MaxExhaustivePicks {
			return Route{}, ErrExhaustiveTooLarge
		}
		order = exhaustiveOrder(m)
	case Approx:
		order = approxOrder(m)
	}

	return m.toRoute(order), nil
}
