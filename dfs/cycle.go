// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/spindle/core"
)

// CycleOrder returns the vertices of g in cyclic order when g is one simple
// cycle: undirected, at least 3 vertices, every degree exactly 2 and
// connected. The order starts at vertex 1 and continues to its smaller
// neighbour, which is exactly the DFS pre-order from 1.
//
// Errors: ErrGraphNil, ErrNotCycle.
func CycleOrder(g *core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.VertexCount()
	if g.Directed() || n < 3 {
		return nil, fmt.Errorf("CycleOrder: %d vertices: %w", n, ErrNotCycle)
	}
	for v := 1; v <= n; v++ {
		if d, _ := g.Degree(v); d != 2 {
			return nil, fmt.Errorf("CycleOrder: vertex %d has degree %d: %w", v, d, ErrNotCycle)
		}
	}
	res, err := DFS(g, 1)
	if err != nil {
		return nil, err
	}
	if len(res.Preorder) != n {
		return nil, fmt.Errorf("CycleOrder: %d of %d vertices reachable: %w", len(res.Preorder), n, ErrNotCycle)
	}

	return res.Preorder, nil
}
