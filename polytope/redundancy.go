// SPDX-License-Identifier: MIT

package polytope

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/spindle/field"
)

// RowKind classifies one inequality row.
type RowKind int

const (
	// RowFacet is the lowest-indexed row defining its facet.
	RowFacet RowKind = iota
	// RowDuplicateFacet defines a facet already selected through a
	// positively parallel row with a smaller index.
	RowDuplicateFacet
	// RowImplicit is tight at every vertex.
	RowImplicit
	// RowRedundant is neither a facet nor an implicit equation.
	RowRedundant
)

func (k RowKind) String() string {
	switch k {
	case RowFacet:
		return "facet"
	case RowDuplicateFacet:
		return "duplicate"
	case RowImplicit:
		return "implicit"
	case RowRedundant:
		return "redundant"
	default:
		return "unknown"
	}
}

// positivelyParallel reports a = λ·b for some λ > 0.
func positivelyParallel[T any](f field.Field[T], a, b []T) bool {
	k := -1
	for j, x := range b {
		if f.Sign(x) != 0 {
			k = j
			break
		}
	}
	if k < 0 || f.Sign(a[k]) != f.Sign(b[k]) {
		return false
	}
	lambda := f.Quo(a[k], b[k])
	for j := range a {
		if f.Cmp(a[j], f.Mul(lambda, b[j])) != 0 {
			return false
		}
	}

	return true
}

// ClassifyFacets returns the mask (0-based bits) of selected facet rows:
// rows of codimension 1, keeping the lowest index among positively
// parallel rows.
func (p *Polytope[T]) ClassifyFacets() (*bitset.BitSet, error) {
	s, err := p.facets.get(func() (*bitset.BitSet, error) {
		codims, err := p.rowCodims()
		if err != nil {
			return nil, err
		}
		sel := bitset.New(uint(p.nh))
		var reps [][]T
		for i, c := range codims {
			if c != 1 {
				continue
			}
			a, _ := p.backend.Halfspace(i)
			dup := false
			for _, r := range reps {
				if positivelyParallel(p.f, a, r) {
					dup = true
					break
				}
			}
			if !dup {
				reps = append(reps, a)
				sel.Set(uint(i))
			}
		}
		p.opts.Logger.Debug("facets classified", "halfspaces", p.nh, "facets", sel.Count())

		return sel, nil
	})
	if err != nil {
		return nil, err
	}

	return s.Clone(), nil
}

// Facets returns the selected facet rows in ascending order.
func (p *Polytope[T]) Facets() ([]int, error) {
	s, err := p.ClassifyFacets()
	if err != nil {
		return nil, err
	}

	return indexList(s), nil
}

// FacetSystem returns the selected facet rows together with their (A, b).
func (p *Polytope[T]) FacetSystem() (FacetSystem[T], error) {
	idx, err := p.Facets()
	if err != nil {
		return FacetSystem[T]{}, err
	}
	fs := FacetSystem[T]{
		Indices: idx,
		A:       make([][]T, len(idx)),
		B:       make([]T, len(idx)),
	}
	for k, i := range idx {
		fs.A[k], fs.B[k] = p.backend.Halfspace(i - 1)
	}

	return fs, nil
}

// NonFacets returns the rows whose codimension is not 1: implicit
// equations and strictly redundant rows.
func (p *Polytope[T]) NonFacets() ([]int, error) {
	codims, err := p.rowCodims()
	if err != nil {
		return nil, err
	}
	var out []int
	for i, c := range codims {
		if c != 1 {
			out = append(out, i+1)
		}
	}

	return out, nil
}

// ClassifyRows returns the kind of every row, indexed by row-1.
func (p *Polytope[T]) ClassifyRows() ([]RowKind, error) {
	codims, err := p.rowCodims()
	if err != nil {
		return nil, err
	}
	sel, err := p.ClassifyFacets()
	if err != nil {
		return nil, err
	}
	imp, err := p.implicitSet()
	if err != nil {
		return nil, err
	}
	out := make([]RowKind, p.nh)
	for i, c := range codims {
		switch {
		case sel.Test(uint(i)):
			out[i] = RowFacet
		case c == 1:
			out[i] = RowDuplicateFacet
		case imp.Test(uint(i)):
			out[i] = RowImplicit
		default:
			out[i] = RowRedundant
		}
	}

	return out, nil
}
