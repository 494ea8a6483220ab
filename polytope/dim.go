// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// chainUp counts the faces on a maximal chain from a start face up to the
// face with canonical set top, both ends included. pool holds the vertices
// of the top face. The start face is given by its canonical set, or is the
// empty face when from is nil.
//
// Each step joins the current face with the pool vertex that keeps the
// largest halfspace set; a join of maximum cardinality always covers the
// current face in the lattice.
func chainUp(inc []*bitset.BitSet, pool []int, from, top *bitset.BitSet) int {
	n := 1
	var cur *bitset.BitSet
	if from == nil {
		// atoms: every vertex covers the empty face
		for _, v := range pool {
			if cur == nil || inc[v].Count() > cur.Count() {
				cur = inc[v]
			}
		}
		if cur == nil {
			return n
		}
		cur = cur.Clone()
		n++
	} else {
		cur = from.Clone()
	}

	for !cur.Equal(top) {
		var best *bitset.BitSet
		for _, v := range pool {
			if inc[v].IsSuperSet(cur) {
				continue // already a vertex of the current face
			}
			cand := cur.Intersection(inc[v])
			if best == nil || cand.Count() > best.Count() {
				best = cand
			}
		}
		if best == nil {
			break
		}
		cur = best
		n++
	}

	return n
}

// dimOfSet returns the dimension of the face whose vertices are the
// vertices tight at s: the length of a maximal chain from the empty face
// up to it, minus 2.
func (p *Polytope[T]) dimOfSet(inc []*bitset.BitSet, s *bitset.BitSet) int {
	vs := verticesOf(inc, s)
	top := p.closure(inc, vs)

	return chainUp(inc, vs, nil, top) - 2
}

// codimOfSet returns the length of a maximal chain from the face of s up
// to the polytope, minus 1. The chain starts at the closure of the face,
// not at s itself.
func (p *Polytope[T]) codimOfSet(inc []*bitset.BitSet, s *bitset.BitSet) (int, error) {
	top, err := p.implicitSet()
	if err != nil {
		return 0, err
	}
	all := make([]int, p.nv)
	for v := range all {
		all[v] = v
	}
	var start *bitset.BitSet
	if vs := verticesOf(inc, s); len(vs) > 0 {
		start = p.closure(inc, vs)
	}

	return chainUp(inc, all, start, top) - 1, nil
}

// Dim returns the dimension of the polytope.
func (p *Polytope[T]) Dim() (int, error) {
	return p.dim.get(func() (int, error) {
		inc, err := p.incidence()
		if err != nil {
			return 0, err
		}
		d := p.dimOfSet(inc, bitset.New(uint(p.nh)))
		p.opts.Logger.Debug("dimension computed", "dim", d)

		return d, nil
	})
}

// DimOf returns the dimension of the face cut out by the given halfspaces.
// An empty list means the whole polytope. A list whose rows have no common
// vertex describes the empty face, of dimension -1.
//
// Errors: ErrIndexOutOfRange.
func (p *Polytope[T]) DimOf(face []int) (int, error) {
	s, err := p.halfspaceSet(face)
	if err != nil {
		return 0, fmt.Errorf("DimOf: %w", err)
	}
	if len(face) == 0 {
		return p.Dim()
	}
	inc, err := p.incidence()
	if err != nil {
		return 0, err
	}

	return p.dimOfSet(inc, s), nil
}

// Codim returns Dim() - DimOf(face), computed by its own chain from the
// closure of the face up to the polytope. The empty face has codimension
// Dim()+1; an empty list (the polytope) has codimension 0.
//
// Errors: ErrIndexOutOfRange.
func (p *Polytope[T]) Codim(face []int) (int, error) {
	s, err := p.halfspaceSet(face)
	if err != nil {
		return 0, fmt.Errorf("Codim: %w", err)
	}
	inc, err := p.incidence()
	if err != nil {
		return 0, err
	}

	return p.codimOfSet(inc, s)
}

// rowCodims returns the cached codimension of every single row (0-based).
func (p *Polytope[T]) rowCodims() ([]int, error) {
	return p.codims.get(func() ([]int, error) {
		inc, err := p.incidence()
		if err != nil {
			return nil, err
		}
		out := make([]int, p.nh)
		for i := range out {
			s := bitset.New(uint(p.nh)).Set(uint(i))
			if out[i], err = p.codimOfSet(inc, s); err != nil {
				return nil, err
			}
		}

		return out, nil
	})
}
