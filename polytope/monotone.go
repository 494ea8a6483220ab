// SPDX-License-Identifier: MIT

package polytope

import (
	"fmt"

	"github.com/katalvlaran/spindle/bfs"
	"github.com/katalvlaran/spindle/core"
	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/matrix"
	"github.com/katalvlaran/spindle/polyhedron"
)

// MaxZonotopeGenerators caps the generators of the zonotope enumerated by
// GenericObjectives: it has up to 2^n candidate vertices.
const MaxZonotopeGenerators = 10

// Orient returns the skeleton with every edge directed towards increasing
// objective value c·x.
//
// Errors: ErrDimensionMismatch when len(c) != AmbientDim();
// ErrGeometricPrecondition when c is constant along some edge.
func (p *Polytope[T]) Orient(c []T) (*core.Graph, error) {
	if len(c) != p.AmbientDim() {
		return nil, fmt.Errorf("Orient: len(c)=%d, dim=%d: %w", len(c), p.AmbientDim(), ErrDimensionMismatch)
	}
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}
	val := make([]T, p.nv+1)
	for v := 1; v <= p.nv; v++ {
		val[v] = field.Dot(p.f, c, p.backend.Vertex(v-1))
	}
	dg, err := core.NewGraph(p.nv, core.WithDirected())
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		switch p.f.Cmp(val[v], val[u]) {
		case 0:
			return nil, fmt.Errorf("Orient: objective constant on edge %d-%d: %w", u, v, ErrGeometricPrecondition)
		case -1:
			u, v = v, u
		}
		if err = dg.AddEdge(u, v); err != nil {
			return nil, err
		}
	}

	return dg, nil
}

// OrientedDiameter orients the skeleton by c and returns, for the unique
// maximiser (the sink), the length of the longest among the shortest
// monotone paths leading to it.
//
// Errors: as Orient.
func (p *Polytope[T]) OrientedDiameter(c []T) (OrientedResult, error) {
	dg, err := p.Orient(c)
	if err != nil {
		return OrientedResult{}, err
	}
	sink := 1
	best := field.Dot(p.f, c, p.backend.Vertex(0))
	for v := 2; v <= p.nv; v++ {
		if x := field.Dot(p.f, c, p.backend.Vertex(v-1)); p.f.Cmp(x, best) > 0 {
			sink, best = v, x
		}
	}
	res, err := bfs.BFS(dg.Reverse(), sink, bfs.WithContext(p.opts.Ctx))
	if err != nil {
		return OrientedResult{}, err
	}

	return OrientedResult{Sink: sink, Diameter: res.MaxDepth(), Dist: res.Depth}, nil
}

// MonotoneDiameter returns the largest OrientedDiameter over objectives.
// Each objective must be generic (not constant on any edge). With no
// objectives the result is 0; MonotoneDiameterAll covers every orientation.
func (p *Polytope[T]) MonotoneDiameter(objectives [][]T) (int, error) {
	best := 0
	for k, c := range objectives {
		r, err := p.OrientedDiameter(c)
		if err != nil {
			return 0, fmt.Errorf("MonotoneDiameter: objective %d: %w", k, err)
		}
		if r.Diameter > best {
			best = r.Diameter
		}
		p.opts.Logger.Debug("objective oriented", "objective", k, "sink", r.Sink, "diameter", r.Diameter)
	}

	return best, nil
}

// MonotoneDiameterAll returns the monotone diameter of the polytope: the
// largest OrientedDiameter over every orientation of the skeleton induced
// by a generic linear objective.
//
// Errors: as GenericObjectives.
func (p *Polytope[T]) MonotoneDiameterAll() (int, error) {
	objs, err := p.GenericObjectives()
	if err != nil {
		return 0, fmt.Errorf("MonotoneDiameterAll: %w", err)
	}
	p.opts.Logger.Debug("regions enumerated", "objectives", len(objs))

	return p.MonotoneDiameter(objs)
}

// GenericObjectives returns one objective from the interior of every region
// of the arrangement of hyperplanes orthogonal to the edge directions. Each
// generic orientation of the skeleton is induced by at least one of them.
//
// Implementation:
//   - Stage 1: generators are EdgeDirections plus a kernel basis of them,
//     so the zonotope they span is full-dimensional.
//   - Stage 2: build the zonotope as the hull of all signed sums.
//   - Stage 3: the regions are the interiors of its vertex normal cones; the
//     sum of the facet normals at a vertex lies in that interior.
//
// Errors: ErrTooManyDirections past MaxZonotopeGenerators generators;
// the context error when cancelled.
func (p *Polytope[T]) GenericObjectives() ([][]T, error) {
	// Stage 1: generators
	dirs, err := p.EdgeDirections()
	if err != nil {
		return nil, err
	}
	f, d := p.f, p.AmbientDim()
	kernel, err := matrix.NullSpace(f, dirs, d)
	if err != nil {
		return nil, err
	}
	gens := append(append([][]T(nil), dirs...), kernel...)
	if len(gens) > MaxZonotopeGenerators {
		return nil, fmt.Errorf("GenericObjectives: %d generators, max %d: %w", len(gens), MaxZonotopeGenerators, ErrTooManyDirections)
	}

	// Stage 2: zonotope
	pts := make([][]T, 0, 1<<len(gens))
	for mask := 0; mask < 1<<len(gens); mask++ {
		z := make([]T, d)
		for j := range z {
			z[j] = f.Zero()
		}
		for k, g := range gens {
			for j := range z {
				if mask&(1<<k) != 0 {
					z[j] = f.Add(z[j], g[j])
				} else {
					z[j] = f.Sub(z[j], g[j])
				}
			}
		}
		pts = append(pts, z)
	}
	if err = p.canceled(); err != nil {
		return nil, err
	}
	zono, err := polyhedron.FromPoints(f, pts)
	if err != nil {
		return nil, fmt.Errorf("GenericObjectives: zonotope: %w", err)
	}

	// Stage 3: one interior objective per vertex normal cone
	objs := make([][]T, 0, zono.NumVertices())
	for v := 0; v < zono.NumVertices(); v++ {
		tight, err := zono.IncidentHalfspaces(v)
		if err != nil {
			return nil, err
		}
		c := make([]T, d)
		for j := range c {
			c[j] = f.Zero()
		}
		for _, i := range tight {
			a, _ := zono.Halfspace(i)
			for j := range c {
				c[j] = f.Add(c[j], a[j])
			}
		}
		objs = append(objs, c)
	}

	return objs, nil
}

// EdgeDirections returns one direction per parallel class of skeleton
// edges, scaled to unit 1-norm with its first non-zero entry positive.
// The hyperplanes orthogonal to these directions cut objective space into
// the regions of distinct orientations.
func (p *Polytope[T]) EdgeDirections() ([][]T, error) {
	g, err := p.Graph()
	if err != nil {
		return nil, err
	}
	f := p.f
	var dirs [][]T
	for _, e := range g.Edges() {
		u, v := p.backend.Vertex(e[0]-1), p.backend.Vertex(e[1]-1)
		dir := make([]T, len(u))
		norm := f.Zero()
		lead := 0
		for j := range dir {
			dir[j] = f.Sub(v[j], u[j])
			if s := f.Sign(dir[j]); s != 0 {
				if lead == 0 {
					lead = s
				}
				if s < 0 {
					norm = f.Sub(norm, dir[j])
				} else {
					norm = f.Add(norm, dir[j])
				}
			}
		}
		if lead < 0 {
			norm = f.Neg(norm)
		}
		for j := range dir {
			dir[j] = f.Quo(dir[j], norm)
		}
		dup := false
		for _, d := range dirs {
			if field.EqualVec(f, d, dir) {
				dup = true
				break
			}
		}
		if !dup {
			dirs = append(dirs, dir)
		}
	}

	return dirs, nil
}
