// Package core defines the integer-labelled Graph used for polytope
// skeletons and their derived graphs.
//
// Vertices are the dense range 1..n fixed at construction, matching the
// 1-based vertex numbering of the polytope layer. Edges carry no weight and
// no identity: a Graph is a set of vertex pairs, undirected by default.
//
// All methods are safe for concurrent use; a single sync.RWMutex guards the
// adjacency sets.
//
// Errors:
//
//	ErrBadOrder            - negative vertex count.
//	ErrVertexNotFound      - vertex outside 1..n.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - the edge is already present.
package core
