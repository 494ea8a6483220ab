// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/katalvlaran/spindle/bfs"
)

// distancesFrom returns the cached BFS distances from vertex src (index 0
// unused, -1 when unreachable).
func (p *Polytope[T]) distancesFrom(src int) ([]int, error) {
	return p.dists.slot(src).get(func() ([]int, error) {
		g, err := p.Graph()
		if err != nil {
			return nil, err
		}

		return bfs.Distances(p.opts.Ctx, g, src)
	})
}

// Dist returns the number of edges on a shortest skeleton path between u
// and v, or -1 if none exists. Distances are computed from min(u, v) and
// cached per source, so Dist(u, v) == Dist(v, u).
//
// Errors: ErrIndexOutOfRange.
func (p *Polytope[T]) Dist(u, v int) (int, error) {
	if err := p.checkVertex(u); err != nil {
		return 0, fmt.Errorf("Dist: %w", err)
	}
	if err := p.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Dist: %w", err)
	}
	src, dst := u, v
	if dst < src {
		src, dst = dst, src
	}
	d, err := p.distancesFrom(src)
	if err != nil {
		return 0, err
	}

	return d[dst], nil
}

// extremeDist returns the smallest (largest when farthest) distance from
// apex to any vertex of vs.
func (p *Polytope[T]) extremeDist(apex int, vs []int, farthest bool) (int, error) {
	best := -1
	for _, v := range vs {
		d, err := p.Dist(apex, v)
		if err != nil {
			return 0, err
		}
		if best < 0 || (farthest && d > best) || (!farthest && d < best) {
			best = d
		}
	}

	return best, nil
}
