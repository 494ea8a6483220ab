// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"sort"
)

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// VertexCount returns n.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj) - 1
}

// EdgeCount returns the number of edges (each undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// HasVertex reports whether v lies in 1..n.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(v)
}

func (g *Graph) has(v int) bool { return v >= 1 && v < len(g.adj) }

// AddEdge inserts the edge u-v (u->v when directed).
//
// Errors:
//   - ErrVertexNotFound if either endpoint is outside 1..n.
//   - ErrLoopNotAllowed for u == v without WithLoops.
//   - ErrMultiEdgeNotAllowed if the edge is already present.
//
// Complexity: O(1) amortised.
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrVertexNotFound)
	}
	if u == v && !g.allowLoops {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrLoopNotAllowed)
	}
	if _, ok := g.adj[u][v]; ok {
		return fmt.Errorf("AddEdge(%d, %d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	g.adj[u][v] = struct{}{}
	if !g.directed {
		g.adj[v][u] = struct{}{}
	}
	g.edges++

	return nil
}

// HasEdge reports whether u-v (u->v when directed) is present.
// Out-of-range endpoints yield false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(u) || !g.has(v) {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// NeighborIDs returns the ascending out-neighbours of v.
// Complexity: O(deg log deg).
func (g *Graph) NeighborIDs(v int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(v) {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", v, ErrVertexNotFound)
	}

	return sortedKeys(g.adj[v]), nil
}

// Degree returns the out-degree of v (the degree for undirected graphs).
// A self-loop counts once.
func (g *Graph) Degree(v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(v) {
		return 0, fmt.Errorf("Degree(%d): %w", v, ErrVertexNotFound)
	}

	return len(g.adj[v]), nil
}

// Edges returns every edge once, sorted lexicographically. Undirected edges
// are reported as (u, v) with u <= v.
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][2]int, 0, g.edges)
	for u := 1; u < len(g.adj); u++ {
		for _, v := range sortedKeys(g.adj[u]) {
			if !g.directed && v < u {
				continue
			}
			out = append(out, [2]int{u, v})
		}
	}

	return out
}

// Stats returns a snapshot of vertex and edge counts and the degree range.
// An empty graph reports zero degrees.
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := Stats{Vertices: len(g.adj) - 1, Edges: g.edges, Directed: g.directed}
	for v := 1; v < len(g.adj); v++ {
		d := len(g.adj[v])
		if v == 1 || d < s.MinDegree {
			s.MinDegree = d
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}

// InducedSubgraph returns the subgraph induced by keep, relabelled so that
// vertex i of the result is labels[i-1]. keep is de-duplicated and sorted;
// labels is the resulting order.
//
// Errors: ErrVertexNotFound for any id outside 1..n.
func (g *Graph) InducedSubgraph(keep []int) (*Graph, []int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	pos := make(map[int]int, len(keep))
	for _, v := range keep {
		if !g.has(v) {
			return nil, nil, fmt.Errorf("InducedSubgraph: vertex %d: %w", v, ErrVertexNotFound)
		}
		pos[v] = 0
	}
	labels := sortedKeys(pos)
	for i, v := range labels {
		pos[v] = i + 1
	}

	sub := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		adj:        make([]map[int]struct{}, len(labels)+1),
	}
	for i := 1; i <= len(labels); i++ {
		sub.adj[i] = make(map[int]struct{})
	}
	for i, u := range labels {
		for v := range g.adj[u] {
			j, ok := pos[v]
			if !ok {
				continue
			}
			sub.adj[i+1][j] = struct{}{}
			if g.directed || i+1 <= j {
				sub.edges++
			}
		}
	}

	return sub, labels, nil
}

// Reverse returns a copy with every directed edge flipped. For undirected
// graphs it is a plain copy.
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph{
		directed:   g.directed,
		allowLoops: g.allowLoops,
		adj:        make([]map[int]struct{}, len(g.adj)),
		edges:      g.edges,
	}
	for v := 1; v < len(g.adj); v++ {
		r.adj[v] = make(map[int]struct{}, len(g.adj[v]))
	}
	for u := 1; u < len(g.adj); u++ {
		for v := range g.adj[u] {
			if g.directed {
				r.adj[v][u] = struct{}{}
			} else {
				r.adj[u][v] = struct{}{}
			}
		}
	}

	return r
}

func sortedKeys[V any](m map[int]V) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)

	return out
}
