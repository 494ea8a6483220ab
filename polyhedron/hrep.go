// SPDX-License-Identifier: MIT

package polyhedron

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/matrix"
)

const methodFromInequalities = "FromInequalities"

// FromInequalities builds the polytope {x : A x <= b, E x = e}.
//
// Implementation:
//   - Stage 1: validate shapes (rows of equal length d, len(b) == rows).
//   - Stage 2: reject lines (rank [A;E] < d) and rays (an extreme direction
//     of {A x <= 0, E x = 0} found among rank d-1 row subsets).
//   - Stage 3: enumerate vertices from every non-singular basis, keep the
//     feasible solutions, de-duplicate and sort them lexicographically.
//   - Stage 4: record per-vertex tight rows.
//
// Rows are kept exactly as given: duplicates, redundant rows and implicit
// equations retain their indices.
func FromInequalities[T any](f field.Field[T], a [][]T, b []T, opts ...Option[T]) (*Polyhedron[T], error) {
	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	// Stage 1: shapes
	if len(a) == 0 {
		return nil, fmt.Errorf("%s: no inequality rows: %w", methodFromInequalities, ErrDimensionMismatch)
	}
	if len(b) != len(a) {
		return nil, fmt.Errorf("%s: len(b)=%d, rows=%d: %w", methodFromInequalities, len(b), len(a), ErrDimensionMismatch)
	}
	d := len(a[0])
	if d == 0 {
		return nil, fmt.Errorf("%s: zero-dimensional rows: %w", methodFromInequalities, ErrDimensionMismatch)
	}
	for i, row := range a {
		if len(row) != d {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", methodFromInequalities, i, len(row), d, ErrDimensionMismatch)
		}
	}
	if len(o.eqB) != len(o.eqA) {
		return nil, fmt.Errorf("%s: len(e)=%d, equality rows=%d: %w", methodFromInequalities, len(o.eqB), len(o.eqA), ErrDimensionMismatch)
	}
	for i, row := range o.eqA {
		if len(row) != d {
			return nil, fmt.Errorf("%s: equality row %d has %d columns, want %d: %w", methodFromInequalities, i, len(row), d, ErrDimensionMismatch)
		}
	}

	p := &Polyhedron[T]{
		f:   f,
		dim: d,
		a:   copyRows(a),
		b:   append([]T(nil), b...),
		eqA: copyRows(o.eqA),
		eqB: append([]T(nil), o.eqB...),
	}

	rank := func(rows [][]T) int {
		r, _ := matrix.Rank(f, rows) // rows are rectangular by construction
		return r
	}
	eqBasis, eqRHS := independentRows(f, p.eqA, p.eqB, rank)

	// Stage 2: boundedness
	if rank(append(copyRows(p.a), p.eqA...)) < d {
		return nil, fmt.Errorf("%s: lineality space is non-trivial: %w", methodFromInequalities, ErrUnbounded)
	}
	ray, err := p.findRay(eqBasis, rank)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromInequalities, err)
	}
	if ray != nil {
		return nil, fmt.Errorf("%s: recession direction found: %w", methodFromInequalities, ErrUnbounded)
	}

	// Stage 3: vertices
	k := d - len(eqBasis)
	sys := make([][]T, d)
	rhs := make([]T, d)
	copy(sys, eqBasis)
	copy(rhs, eqRHS)
	err = combinations(len(p.a), k, func(idx []int) error {
		for j, i := range idx {
			sys[len(eqBasis)+j] = p.a[i]
			rhs[len(eqBasis)+j] = p.b[i]
		}
		x, err := matrix.Solve(f, sys, rhs)
		if errors.Is(err, matrix.ErrSingular) {
			return nil
		}
		if err != nil {
			return err
		}
		if p.feasible(x) && !containsVec(f, p.verts, x) {
			p.verts = append(p.verts, x)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromInequalities, err)
	}
	if len(p.verts) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromInequalities, ErrEmpty)
	}
	sort.SliceStable(p.verts, func(i, j int) bool {
		return field.CompareVec(f, p.verts[i], p.verts[j]) < 0
	})

	// Stage 4: incidence
	p.computeTight()

	return p, nil
}

// findRay searches for a non-zero direction r with A r <= 0 and E r = 0.
// A pointed cone other than {0} has an extreme ray, which is cut out by
// rank d-1 tight rows; so it suffices to test the kernel of every such
// row subset. Returns nil when the cone is {0}.
func (p *Polyhedron[T]) findRay(eqBasis [][]T, rank func([][]T) int) ([]T, error) {
	f := p.f
	k := p.dim - 1 - len(eqBasis)
	if k < 0 {
		return nil, nil
	}
	var found []T
	rows := make([][]T, 0, p.dim-1)
	err := combinations(len(p.a), k, func(idx []int) error {
		rows = append(rows[:0], eqBasis...)
		for _, i := range idx {
			rows = append(rows, p.a[i])
		}
		if rank(rows) != p.dim-1 {
			return nil
		}
		kernel, err := matrix.NullSpace(f, rows, p.dim)
		if err != nil {
			return err
		}
		for _, r := range kernel {
			for _, dir := range [][]T{r, negVec(f, r)} {
				if p.recedes(dir) {
					found = dir
					return errStop
				}
			}
		}
		return nil
	})

	return found, err
}

// recedes reports A r <= 0 for every inequality row.
func (p *Polyhedron[T]) recedes(r []T) bool {
	for i := range p.a {
		if p.f.Sign(field.Dot(p.f, p.a[i], r)) > 0 {
			return false
		}
	}

	return true
}

// feasible reports whether x satisfies every inequality and equality row.
func (p *Polyhedron[T]) feasible(x []T) bool {
	f := p.f
	for i := range p.a {
		if f.Cmp(field.Dot(f, p.a[i], x), p.b[i]) > 0 {
			return false
		}
	}
	for i := range p.eqA {
		if f.Cmp(field.Dot(f, p.eqA[i], x), p.eqB[i]) != 0 {
			return false
		}
	}

	return true
}

func copyRows[T any](rows [][]T) [][]T {
	out := make([][]T, len(rows))
	for i, r := range rows {
		out[i] = append([]T(nil), r...)
	}

	return out
}

func negVec[T any](f field.Field[T], v []T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = f.Neg(x)
	}

	return out
}
