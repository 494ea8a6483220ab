// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/spindle/core"
)

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
}

// DFS performs depth-first search on g from start, or over the whole forest
// with WithFullTraversal (start is then ignored).
// Returns the partial Result together with any abort error.
func DFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("DFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	res := &Result{
		Preorder:  make([]int, 0, n),
		Postorder: make([]int, 0, n),
		Depth:     make([]int, n+1),
		Parent:    make([]int, n+1),
		Visited:   make([]bool, n+1),
	}
	w := &walker{graph: g, opts: o, res: res}

	roots := []int{start}
	if o.FullTraversal {
		roots = roots[:0]
		for v := 1; v <= n; v++ {
			roots = append(roots, v)
		}
	}
	for _, r := range roots {
		if res.Visited[r] {
			continue
		}
		res.Components++
		if err := w.traverse(r, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits v at the given depth, recursing to unvisited neighbours.
func (w *walker) traverse(v, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth
	w.res.Preorder = append(w.res.Preorder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}

	nbrs, err := w.graph.NeighborIDs(v)
	if err != nil {
		return fmt.Errorf("dfs: NeighborIDs(%d): %w", v, err)
	}
	for _, u := range nbrs {
		if w.res.Visited[u] {
			continue
		}
		w.res.Parent[u] = v
		if err = w.traverse(u, depth+1); err != nil {
			return err
		}
	}
	w.res.Postorder = append(w.res.Postorder, v)

	return nil
}
