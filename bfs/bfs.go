// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/spindle/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	res   *Result
}

// BFS runs breadth-first search on g from start. Neighbours are expanded in
// ascending order, so Order is deterministic.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, the
// context error on cancellation, or a wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("BFS(%d): %w", start, ErrStartVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n+1),
			Parent: make([]int, n+1),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = -1
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, start)

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, v)
		if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
		}

		next := w.res.Depth[v] + 1
		if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
			continue
		}
		nbrs, err := w.graph.NeighborIDs(v)
		if err != nil {
			return err
		}
		for _, u := range nbrs {
			if w.res.Depth[u] >= 0 || !w.opts.FilterNeighbor(v, u) {
				continue
			}
			w.res.Depth[u] = next
			w.res.Parent[u] = v
			w.queue = append(w.queue, u)
		}
	}

	return nil
}

// Distances returns the hop distance from start to every vertex (index 0
// unused, -1 when unreachable).
func Distances(ctx context.Context, g *core.Graph, start int) ([]int, error) {
	res, err := BFS(g, start, WithContext(ctx))
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}
