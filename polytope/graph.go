// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/spindle/core"
)

// buildSkeleton computes the 1-skeleton.
//
// Implementation:
//   - Stage 1: for every vertex pair keep the common incidence set c when
//     |c| >= #implicit + dim - 1.
//   - Stage 2: split the kept pairs at that threshold and retain the
//     inclusion-maximal sets (see maximalSets).
//   - Stage 3: insert the surviving pairs as edges.
//
// Complexity: O(n^2) bitset intersections plus O(P·D) containment tests for
// P kept pairs and D degenerate ones.
func (p *Polytope[T]) buildSkeleton() (skeleton, error) {
	inc, err := p.incidence()
	if err != nil {
		return skeleton{}, err
	}
	d, err := p.Dim()
	if err != nil {
		return skeleton{}, err
	}
	imp, err := p.implicitSet()
	if err != nil {
		return skeleton{}, err
	}
	threshold := int(imp.Count()) + d - 1

	// Stage 1: candidate pairs
	var (
		pairs [][2]int
		sets  []*bitset.BitSet
	)
	for i := 0; i < p.nv; i++ {
		if err = p.canceled(); err != nil {
			return skeleton{}, err
		}
		for j := i + 1; j < p.nv; j++ {
			c := inc[i].Intersection(inc[j])
			if int(c.Count()) >= threshold {
				pairs = append(pairs, [2]int{i + 1, j + 1})
				sets = append(sets, c)
			}
		}
	}

	// Stage 2: maximality
	var m maximality
	if threshold >= 0 {
		m, err = maximalSets(sets, uint(threshold), p.canceled)
		if err != nil {
			return skeleton{}, err
		}
	}

	// Stage 3: edges
	g, err := core.NewGraph(p.nv)
	if err != nil {
		return skeleton{}, err
	}
	for k, e := range pairs {
		if !m.keep[k] {
			continue
		}
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return skeleton{}, fmt.Errorf("buildSkeleton: %w", err)
		}
	}
	st := SkeletonStats{
		Threshold:     threshold,
		Nondegenerate: m.nondegenerate,
		Degenerate:    m.degenerate,
		Edges:         g.EdgeCount(),
	}
	p.opts.Logger.Debug("skeleton built",
		"threshold", st.Threshold, "nondegenerate", st.Nondegenerate,
		"degenerate", st.Degenerate, "edges", st.Edges)

	return skeleton{g: g, stats: st}, nil
}

func (p *Polytope[T]) skel() (skeleton, error) {
	return p.skeleton.get(p.buildSkeleton)
}

// Graph returns the 1-skeleton on vertices 1..NumVertices(). The graph is
// shared; callers must not add edges to it.
func (p *Polytope[T]) Graph() (*core.Graph, error) {
	s, err := p.skel()
	if err != nil {
		return nil, err
	}

	return s.g, nil
}

// Edges returns the skeleton edges as ascending (u, v) pairs with u < v.
func (p *Polytope[T]) Edges() ([][2]int, error) {
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}

	return g.Edges(), nil
}

// Neighbors returns the ascending neighbours of vertex v.
func (p *Polytope[T]) Neighbors(v int) ([]int, error) {
	if err := p.checkVertex(v); err != nil {
		return nil, fmt.Errorf("Neighbors: %w", err)
	}
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}

	return g.NeighborIDs(v)
}

// Degree returns the number of skeleton edges at vertex v.
func (p *Polytope[T]) Degree(v int) (int, error) {
	if err := p.checkVertex(v); err != nil {
		return 0, fmt.Errorf("Degree: %w", err)
	}
	g, err := p.Graph()
	if err != nil {
		return 0, err
	}

	return g.Degree(v)
}

// SkeletonStats reports the pair counts of the skeleton construction.
func (p *Polytope[T]) SkeletonStats() (SkeletonStats, error) {
	s, err := p.skel()
	if err != nil {
		return SkeletonStats{}, err
	}

	return s.stats, nil
}
