// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrBadOrder indicates a negative vertex count.
	ErrBadOrder = errors.New("core: vertex count must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a vertex outside 1..n.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates the edge already exists.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way (u -> v).
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a simple graph on the vertices 1..n.
//
// adj[v] holds the out-neighbours of v; for undirected graphs every edge is
// stored in both endpoint sets. adj[0] is unused.
type Graph struct {
	mu sync.RWMutex

	directed   bool
	allowLoops bool

	adj   []map[int]struct{}
	edges int
}

// Stats is an O(V+E) snapshot of a Graph's shape.
type Stats struct {
	Vertices  int
	Edges     int
	MinDegree int
	MaxDegree int
	Directed  bool
}

// NewGraph creates a Graph with vertices 1..n and no edges.
// By default the graph is undirected without loops.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadOrder
	}
	g := &Graph{adj: make([]map[int]struct{}, n+1)}
	for v := 1; v <= n; v++ {
		g.adj[v] = make(map[int]struct{})
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}
