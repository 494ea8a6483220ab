// SPDX-License-Identifier: MIT

package polyhedron

import (
	"fmt"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/matrix"
)

// Translate returns P + t. Rows keep their indices: a·x <= b + a·t.
func (p *Polyhedron[T]) Translate(t []T) (*Polyhedron[T], error) {
	if len(t) != p.dim {
		return nil, fmt.Errorf("Translate: len(t)=%d, dim=%d: %w", len(t), p.dim, ErrDimensionMismatch)
	}
	f := p.f
	q := p.clone()
	for i := range q.a {
		q.b[i] = f.Add(q.b[i], field.Dot(f, q.a[i], t))
	}
	for i := range q.eqA {
		q.eqB[i] = f.Add(q.eqB[i], field.Dot(f, q.eqA[i], t))
	}
	for v := range q.verts {
		for j := range q.verts[v] {
			q.verts[v][j] = f.Add(q.verts[v][j], t[j])
		}
	}

	return q, nil
}

// Scale returns s·P for s > 0. Rows keep their indices: a·x <= s·b.
func (p *Polyhedron[T]) Scale(s T) (*Polyhedron[T], error) {
	f := p.f
	if f.Sign(s) <= 0 {
		return nil, fmt.Errorf("Scale: factor %s: %w", f.String(s), ErrGeometricPrecondition)
	}
	q := p.clone()
	for i := range q.b {
		q.b[i] = f.Mul(q.b[i], s)
	}
	for i := range q.eqB {
		q.eqB[i] = f.Mul(q.eqB[i], s)
	}
	for v := range q.verts {
		for j := range q.verts[v] {
			q.verts[v][j] = f.Mul(q.verts[v][j], s)
		}
	}

	return q, nil
}

// Centroid returns the average of the vertices (not the volume centroid).
func (p *Polyhedron[T]) Centroid() []T {
	f := p.f
	c := make([]T, p.dim)
	for j := range c {
		c[j] = f.Zero()
	}
	for _, v := range p.verts {
		for j := range c {
			c[j] = f.Add(c[j], v[j])
		}
	}
	n := f.FromInt(int64(len(p.verts)))
	for j := range c {
		c[j] = f.Quo(c[j], n)
	}

	return c
}

// Polar returns P° = {y : x·y <= 1 for all x in P}.
//
// The origin must lie in the interior of P: P is full-dimensional, carries
// no explicit equalities and every row has b_i > 0. Then P° is the convex
// hull of the points a_i / b_i, built with FromPoints (redundant rows
// produce non-vertex points, which are pruned there).
//
// Errors: ErrGeometricPrecondition when the origin is not interior.
func (p *Polyhedron[T]) Polar() (*Polyhedron[T], error) {
	f := p.f
	if len(p.eqA) > 0 {
		return nil, fmt.Errorf("Polar: explicit equalities present: %w", ErrGeometricPrecondition)
	}
	diffs := make([][]T, 0, len(p.verts))
	for _, v := range p.verts[1:] {
		diffs = append(diffs, subVec(f, v, p.verts[0]))
	}
	if r, _ := matrix.Rank(f, diffs); r < p.dim {
		return nil, fmt.Errorf("Polar: polytope is not full-dimensional: %w", ErrGeometricPrecondition)
	}
	pts := make([][]T, len(p.a))
	for i := range p.a {
		if f.Sign(p.b[i]) <= 0 {
			return nil, fmt.Errorf("Polar: row %d has b=%s, origin not interior: %w", i, f.String(p.b[i]), ErrGeometricPrecondition)
		}
		pts[i] = make([]T, p.dim)
		for j := range pts[i] {
			pts[i][j] = f.Quo(p.a[i][j], p.b[i])
		}
	}
	q, err := FromPoints(f, pts)
	if err != nil {
		return nil, fmt.Errorf("Polar: %w", err)
	}

	return q, nil
}

// SameVertices reports whether p and q have the same vertex set (order
// ignored). Both must share the ambient dimension.
func (p *Polyhedron[T]) SameVertices(q *Polyhedron[T]) bool {
	if p.dim != q.dim || len(p.verts) != len(q.verts) {
		return false
	}
	for _, v := range p.verts {
		if !containsVec(p.f, q.verts, v) {
			return false
		}
	}

	return true
}

func (p *Polyhedron[T]) clone() *Polyhedron[T] {
	q := &Polyhedron[T]{
		f:     p.f,
		dim:   p.dim,
		a:     copyRows(p.a),
		b:     append([]T(nil), p.b...),
		eqA:   copyRows(p.eqA),
		eqB:   append([]T(nil), p.eqB...),
		verts: copyRows(p.verts),
		tight: make([][]int, len(p.tight)),
	}
	for i := range p.tight {
		q.tight[i] = append([]int(nil), p.tight[i]...)
	}

	return q
}
