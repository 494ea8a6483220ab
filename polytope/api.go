// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/spindle/core"
	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polyhedron"
)

// Polytope is the face-lattice view of a bounded polyhedron.
type Polytope[T any] struct {
	backend Backend[T]
	f       field.Field[T]
	nv, nh  int
	opts    Options

	inc      lazy[[]*bitset.BitSet]
	implicit lazy[*bitset.BitSet]
	dim      lazy[int]
	codims   lazy[[]int]
	facets   lazy[*bitset.BitSet]
	skeleton lazy[skeleton]
	faces    lazyMap[int, []*bitset.BitSet]
	dists    lazyMap[int, []int]
}

// skeleton bundles the graph with its construction statistics.
type skeleton struct {
	g     *core.Graph
	stats SkeletonStats
}

// New wraps backend. The backend must be bounded.
//
// Errors: ErrNilBackend, ErrUnbounded.
func New[T any](backend Backend[T], opts ...Option) (*Polytope[T], error) {
	if backend == nil {
		return nil, ErrNilBackend
	}
	if !backend.Bounded() {
		return nil, fmt.Errorf("New: %w", ErrUnbounded)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Polytope[T]{
		backend: backend,
		f:       backend.Field(),
		nv:      backend.NumVertices(),
		nh:      backend.NumHalfspaces(),
		opts:    o,
	}, nil
}

// FromInequalities builds the polytope {x : A x <= b}. Rows are kept as
// given: redundant rows and implicit equations are classified lazily, not
// removed. Systems with explicit equalities are built with
// polyhedron.FromInequalities and wrapped with New.
func FromInequalities[T any](f field.Field[T], a [][]T, b []T, opts ...Option) (*Polytope[T], error) {
	h, err := polyhedron.FromInequalities(f, a, b)
	if err != nil {
		return nil, err
	}

	return New[T](h, opts...)
}

// FromPoints builds the convex hull of pts. Duplicate and non-vertex points
// are removed; vertex order follows the first occurrence in pts.
func FromPoints[T any](f field.Field[T], pts [][]T, opts ...Option) (*Polytope[T], error) {
	h, err := polyhedron.FromPoints(f, pts)
	if err != nil {
		return nil, err
	}

	return New[T](h, opts...)
}

// Backend returns the wrapped representation.
func (p *Polytope[T]) Backend() Backend[T] { return p.backend }

// NumVertices returns the number of vertices.
func (p *Polytope[T]) NumVertices() int { return p.nv }

// NumHalfspaces returns the number of inequality rows.
func (p *Polytope[T]) NumHalfspaces() int { return p.nh }

// AmbientDim returns the dimension of the surrounding space.
func (p *Polytope[T]) AmbientDim() int { return p.backend.AmbientDim() }

// Vertex returns the coordinates of vertex v (1-based).
func (p *Polytope[T]) Vertex(v int) ([]T, error) {
	if err := p.checkVertex(v); err != nil {
		return nil, err
	}

	return p.backend.Vertex(v - 1), nil
}

// Halfspace returns row i (1-based) as (a, b) meaning a·x <= b.
func (p *Polytope[T]) Halfspace(i int) ([]T, T, error) {
	if i < 1 || i > p.nh {
		return nil, p.f.Zero(), fmt.Errorf("Halfspace(%d): %w", i, ErrIndexOutOfRange)
	}
	a, b := p.backend.Halfspace(i - 1)

	return a, b, nil
}

func (p *Polytope[T]) checkVertex(v int) error {
	if v < 1 || v > p.nv {
		return fmt.Errorf("vertex %d not in 1..%d: %w", v, p.nv, ErrIndexOutOfRange)
	}

	return nil
}

// halfspaceSet converts 1-based indices to a bitset, validating each.
func (p *Polytope[T]) halfspaceSet(indices []int) (*bitset.BitSet, error) {
	s := bitset.New(uint(p.nh))
	for _, i := range indices {
		if i < 1 || i > p.nh {
			return nil, fmt.Errorf("halfspace %d not in 1..%d: %w", i, p.nh, ErrIndexOutOfRange)
		}
		s.Set(uint(i - 1))
	}

	return s, nil
}

// indexList returns the set bits of s as ascending 1-based indices.
func indexList(s *bitset.BitSet) []int {
	out := make([]int, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		out = append(out, int(i)+1)
	}

	return out
}

// canceled reports the context error, if any.
func (p *Polytope[T]) canceled() error {
	select {
	case <-p.opts.Ctx.Done():
		return p.opts.Ctx.Err()
	default:
		return nil
	}
}
