// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// incidence returns the cached per-vertex bitsets (0-based bits).
// Callers must not modify the returned sets.
func (p *Polytope[T]) incidence() ([]*bitset.BitSet, error) {
	return p.inc.get(func() ([]*bitset.BitSet, error) {
		inc := make([]*bitset.BitSet, p.nv)
		for v := 0; v < p.nv; v++ {
			rows, err := p.backend.IncidentHalfspaces(v)
			if err != nil {
				return nil, fmt.Errorf("incidence: vertex %d: %w", v+1, err)
			}
			s := bitset.New(uint(p.nh))
			for _, i := range rows {
				s.Set(uint(i))
			}
			inc[v] = s
		}
		p.opts.Logger.Debug("incidence computed", "vertices", p.nv, "halfspaces", p.nh)

		return inc, nil
	})
}

// fullSet returns a fresh set holding every halfspace.
func (p *Polytope[T]) fullSet() *bitset.BitSet {
	return bitset.New(uint(p.nh)).Complement()
}

// Incidence returns a copy of the incidence matrix: row v-1 holds the
// 0-based halfspace bits tight at vertex v.
func (p *Polytope[T]) Incidence() ([]*bitset.BitSet, error) {
	inc, err := p.incidence()
	if err != nil {
		return nil, err
	}
	out := make([]*bitset.BitSet, len(inc))
	for i, s := range inc {
		out[i] = s.Clone()
	}

	return out, nil
}

// verticesOf returns the 0-based vertices whose incidence contains s.
func verticesOf(inc []*bitset.BitSet, s *bitset.BitSet) []int {
	var out []int
	for v, row := range inc {
		if row.IsSuperSet(s) {
			out = append(out, v)
		}
	}

	return out
}

// closure returns the halfspaces tight on every vertex in vs (0-based).
// An empty vs yields the full set, the empty face.
func (p *Polytope[T]) closure(inc []*bitset.BitSet, vs []int) *bitset.BitSet {
	c := p.fullSet()
	for _, v := range vs {
		c.InPlaceIntersection(inc[v])
	}

	return c
}

// IncidentVertices returns the ascending vertices tight at every given
// halfspace. An empty list constrains nothing and yields every vertex.
//
// Errors: ErrIndexOutOfRange.
func (p *Polytope[T]) IncidentVertices(indices []int) ([]int, error) {
	s, err := p.halfspaceSet(indices)
	if err != nil {
		return nil, fmt.Errorf("IncidentVertices: %w", err)
	}
	inc, err := p.incidence()
	if err != nil {
		return nil, err
	}
	vs := verticesOf(inc, s)
	for i := range vs {
		vs[i]++
	}

	return vs, nil
}

// IncidentHalfspaces returns the ascending halfspaces tight at every given
// vertex. An empty list yields 1..NumHalfspaces().
//
// Errors: ErrIndexOutOfRange.
func (p *Polytope[T]) IncidentHalfspaces(vertices []int) ([]int, error) {
	for _, v := range vertices {
		if err := p.checkVertex(v); err != nil {
			return nil, fmt.Errorf("IncidentHalfspaces: %w", err)
		}
	}
	inc, err := p.incidence()
	if err != nil {
		return nil, err
	}
	vs := make([]int, len(vertices))
	for i, v := range vertices {
		vs[i] = v - 1
	}

	return indexList(p.closure(inc, vs)), nil
}

// implicitSet returns the cached set of rows tight at every vertex.
func (p *Polytope[T]) implicitSet() (*bitset.BitSet, error) {
	return p.implicit.get(func() (*bitset.BitSet, error) {
		inc, err := p.incidence()
		if err != nil {
			return nil, err
		}
		all := make([]int, p.nv)
		for v := range all {
			all[v] = v
		}

		return p.closure(inc, all), nil
	})
}

// ImplicitEquations returns the rows satisfied with equality by every
// vertex, in ascending order.
func (p *Polytope[T]) ImplicitEquations() ([]int, error) {
	s, err := p.implicitSet()
	if err != nil {
		return nil, err
	}

	return indexList(s), nil
}
