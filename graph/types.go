package graph

import "errors"

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyNodeID indicates an empty string was offered as a node id.
	ErrEmptyNodeID = errors.New("graph: node id is empty")

	// ErrNodeNotFound indicates an operation referenced a node the graph
	// does not contain.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrSelfLoop indicates an edge from a node to itself; the routing
	// core has no use for loops.
	ErrSelfLoop = errors.New("graph: self-loop not allowed")

	// ErrBadWeight indicates a negative or non-finite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite and non-negative")

	// ErrNoPath indicates the two queried nodes lie in different
	// connected components.
	ErrNoPath = errors.New("graph: no path between nodes")
)

// Edge is one undirected weighted connection, reported with From < To
// so enumeration is canonical.
type Edge struct {
	From   string
	To     string
	Weight float64
}
