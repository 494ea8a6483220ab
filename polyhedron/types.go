// SPDX-License-Identifier: MIT

package polyhedron

import (
	"errors"

	"github.com/katalvlaran/spindle/field"
)

// Sentinel errors for construction and geometric operators.
var (
	// ErrDimensionMismatch indicates inconsistent matrix/vector shapes.
	ErrDimensionMismatch = errors.New("polyhedron: dimension mismatch")

	// ErrUnbounded indicates that the described polyhedron has a ray or a line.
	ErrUnbounded = errors.New("polyhedron: polyhedron is unbounded")

	// ErrEmpty indicates an infeasible system or an empty point list.
	ErrEmpty = errors.New("polyhedron: polyhedron is empty")

	// ErrNotFullDimensional indicates a point set whose affine hull is proper.
	ErrNotFullDimensional = errors.New("polyhedron: point set is not full-dimensional")

	// ErrGeometricPrecondition indicates that an operator's geometric
	// precondition does not hold (e.g. polarity without the origin inside).
	ErrGeometricPrecondition = errors.New("polyhedron: geometric precondition violated")

	// ErrIndexOutOfRange indicates a vertex or row index outside its range.
	ErrIndexOutOfRange = errors.New("polyhedron: index out of range")
)

// Polyhedron is a bounded polyhedron held in both representations.
//
// Vertex indices 0..NumVertices()-1 and inequality indices
// 0..NumHalfspaces()-1 are fixed at construction. Explicit equalities are
// stored separately and never counted as halfspaces.
// A Polyhedron is immutable once built and safe for concurrent reads.
type Polyhedron[T any] struct {
	f   field.Field[T]
	dim int // ambient dimension

	a [][]T // inequality rows: a[i]·x <= b[i]
	b []T

	eqA [][]T // explicit equalities: eqA[i]·x == eqB[i]
	eqB []T

	verts [][]T
	tight [][]int // per vertex: ascending indices of tight inequality rows
}

// Option configures FromInequalities.
type Option[T any] func(*options[T])

type options[T any] struct {
	eqA [][]T
	eqB []T
}

// WithEqualities adds explicit equality rows E x = e. Equality rows are not
// halfspaces: they take no index in the inequality numbering.
func WithEqualities[T any](e [][]T, rhs []T) Option[T] {
	return func(o *options[T]) {
		o.eqA = e
		o.eqB = rhs
	}
}

// Field returns the arithmetic the polyhedron was built over.
func (p *Polyhedron[T]) Field() field.Field[T] { return p.f }

// Bounded reports whether the polyhedron has no rays and no lines. Every
// successfully constructed Polyhedron is bounded; the query exists for the
// backend contract.
func (p *Polyhedron[T]) Bounded() bool { return true }

// AmbientDim returns the dimension of the surrounding space.
func (p *Polyhedron[T]) AmbientDim() int { return p.dim }

// NumVertices returns the number of vertices.
func (p *Polyhedron[T]) NumVertices() int { return len(p.verts) }

// NumHalfspaces returns the number of inequality rows (equalities excluded).
func (p *Polyhedron[T]) NumHalfspaces() int { return len(p.a) }

// Vertex returns a copy of vertex v (0-based). Out-of-range v returns nil.
func (p *Polyhedron[T]) Vertex(v int) []T {
	if v < 0 || v >= len(p.verts) {
		return nil
	}

	return append([]T(nil), p.verts[v]...)
}

// Vertices returns copies of all vertices in index order.
func (p *Polyhedron[T]) Vertices() [][]T {
	out := make([][]T, len(p.verts))
	for i := range p.verts {
		out[i] = p.Vertex(i)
	}

	return out
}

// Halfspace returns row i (0-based) as (a, b) meaning a·x <= b.
// Out-of-range i returns (nil, zero).
func (p *Polyhedron[T]) Halfspace(i int) ([]T, T) {
	if i < 0 || i >= len(p.a) {
		return nil, p.f.Zero()
	}

	return append([]T(nil), p.a[i]...), p.b[i]
}

// Inequalities returns copies of the full inequality system.
func (p *Polyhedron[T]) Inequalities() ([][]T, []T) {
	a := make([][]T, len(p.a))
	for i := range p.a {
		a[i] = append([]T(nil), p.a[i]...)
	}

	return a, append([]T(nil), p.b...)
}

// Equalities returns copies of the explicit equality rows.
func (p *Polyhedron[T]) Equalities() ([][]T, []T) {
	e := make([][]T, len(p.eqA))
	for i := range p.eqA {
		e[i] = append([]T(nil), p.eqA[i]...)
	}

	return e, append([]T(nil), p.eqB...)
}

// IncidentHalfspaces returns the ascending 0-based indices of the
// inequality rows tight at vertex v.
func (p *Polyhedron[T]) IncidentHalfspaces(v int) ([]int, error) {
	if v < 0 || v >= len(p.verts) {
		return nil, ErrIndexOutOfRange
	}

	return append([]int(nil), p.tight[v]...), nil
}

// computeTight fills p.tight from p.verts and the inequality rows.
func (p *Polyhedron[T]) computeTight() {
	p.tight = make([][]int, len(p.verts))
	for v, x := range p.verts {
		for i := range p.a {
			if p.f.Cmp(field.Dot(p.f, p.a[i], x), p.b[i]) == 0 {
				p.tight[v] = append(p.tight[v], i)
			}
		}
	}
}
