// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// apexMask returns the rows an apex pair has to partition.
//
// With checkRedund every row of codimension other than 1 is ignored. Without
// it only the implicit equations are ignored, so a redundant row that is
// tight somewhere can hide a genuine apex pair.
func (p *Polytope[T]) apexMask(checkRedund bool) (*bitset.BitSet, error) {
	if checkRedund {
		codims, err := p.rowCodims()
		if err != nil {
			return nil, err
		}
		mask := bitset.New(uint(p.nh))
		for i, c := range codims {
			if c == 1 {
				mask.Set(uint(i))
			}
		}

		return mask, nil
	}

	imp, err := p.implicitSet()
	if err != nil {
		return nil, err
	}

	return imp.Complement(), nil
}

// Apices searches for two vertices such that every facet row is tight at
// exactly one of them. Pairs are tried in lexicographic order; with
// WithPreferredApex(v) only pairs containing v are tried. The pair is
// returned in ascending order.
//
// ok == false means the polytope is not a spindle (for the chosen mask) and
// is not an error.
//
// Errors: ErrIndexOutOfRange for a preferred apex outside 1..NumVertices().
func (p *Polytope[T]) Apices(opts ...ApexOption) ([2]int, bool, error) {
	o := apexOptions{checkRedund: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.preferred != 0 {
		if err := p.checkVertex(o.preferred); err != nil {
			return [2]int{}, false, fmt.Errorf("Apices: preferred apex: %w", err)
		}
	}
	inc, err := p.incidence()
	if err != nil {
		return [2]int{}, false, err
	}
	mask, err := p.apexMask(o.checkRedund)
	if err != nil {
		return [2]int{}, false, err
	}

	partitions := func(i, j int) bool {
		x := inc[i].SymmetricDifference(inc[j])
		return x.IsSuperSet(mask)
	}

	if o.preferred != 0 {
		i := o.preferred - 1
		for j := 0; j < p.nv; j++ {
			if j != i && partitions(i, j) {
				return sortedPair(i+1, j+1), true, nil
			}
		}

		return [2]int{}, false, nil
	}
	for i := 0; i < p.nv; i++ {
		if err = p.canceled(); err != nil {
			return [2]int{}, false, err
		}
		for j := i + 1; j < p.nv; j++ {
			if partitions(i, j) {
				return [2]int{i + 1, j + 1}, true, nil
			}
		}
	}

	return [2]int{}, false, nil
}

// IsSpindle reports whether an apex pair exists, checking redundancy.
func (p *Polytope[T]) IsSpindle() (bool, error) {
	_, ok, err := p.Apices()

	return ok, err
}

func sortedPair(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}

	return [2]int{a, b}
}
