// SPDX-License-Identifier: MIT

package polyhedron

import (
	"fmt"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/matrix"
)

const methodFromPoints = "FromPoints"

// FromPoints builds the convex hull of pts.
//
// Implementation:
//   - Stage 1: validate shapes and drop duplicate points (first occurrence wins).
//   - Stage 2: require a full-dimensional affine hull.
//   - Stage 3: enumerate facets: for every d-subset of points spanning a
//     hyperplane, keep the hyperplane if all points lie on one side, oriented
//     outward and normalised so the first non-zero normal entry is ±1.
//   - Stage 4: keep only true vertices (tight facet normals of rank d),
//     preserving input order.
func FromPoints[T any](f field.Field[T], pts [][]T) (*Polyhedron[T], error) {
	// Stage 1: shapes + de-duplication
	if len(pts) == 0 {
		return nil, fmt.Errorf("%s: %w", methodFromPoints, ErrEmpty)
	}
	d := len(pts[0])
	if d == 0 {
		return nil, fmt.Errorf("%s: zero-dimensional points: %w", methodFromPoints, ErrDimensionMismatch)
	}
	var uniq [][]T
	for i, x := range pts {
		if len(x) != d {
			return nil, fmt.Errorf("%s: point %d has %d coordinates, want %d: %w", methodFromPoints, i, len(x), d, ErrDimensionMismatch)
		}
		if !containsVec(f, uniq, x) {
			uniq = append(uniq, append([]T(nil), x...))
		}
	}

	// Stage 2: affine hull
	diffs := make([][]T, 0, len(uniq)-1)
	for _, x := range uniq[1:] {
		diffs = append(diffs, subVec(f, x, uniq[0]))
	}
	if r, _ := matrix.Rank(f, diffs); r < d {
		return nil, fmt.Errorf("%s: affine rank %d < %d: %w", methodFromPoints, r, d, ErrNotFullDimensional)
	}

	// Stage 3: facets
	p := &Polyhedron[T]{f: f, dim: d}
	lifted := make([][]T, len(uniq)) // rows (x, -1): (x,-1)·(a,β) = a·x - β
	for i, x := range uniq {
		lifted[i] = append(append(make([]T, 0, d+1), x...), f.Neg(f.One()))
	}
	rows := make([][]T, d)
	err := combinations(len(uniq), d, func(idx []int) error {
		for j, i := range idx {
			rows[j] = lifted[i]
		}
		kernel, err := matrix.NullSpace(f, rows, d+1)
		if err != nil {
			return err
		}
		if len(kernel) != 1 {
			return nil // points not affinely independent
		}
		h, ok := orientOutward(f, kernel[0], lifted)
		if !ok {
			return nil
		}
		a, beta := h[:d], h[d]
		for i := range p.a {
			if field.EqualVec(f, p.a[i], a) && f.Cmp(p.b[i], beta) == 0 {
				return nil
			}
		}
		p.a = append(p.a, a)
		p.b = append(p.b, beta)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFromPoints, err)
	}

	// Stage 4: vertices
	p.verts = uniq
	p.computeTight()
	var (
		verts [][]T
		tight [][]int
	)
	for v, rowsAt := range p.tight {
		normals := make([][]T, len(rowsAt))
		for j, i := range rowsAt {
			normals[j] = p.a[i]
		}
		if r, _ := matrix.Rank(f, normals); r == d {
			verts = append(verts, p.verts[v])
			tight = append(tight, rowsAt)
		}
	}
	p.verts, p.tight = verts, tight

	return p, nil
}

// orientOutward scales h = (a, β) so that every lifted point satisfies
// a·x - β <= 0 and the first non-zero entry of a has absolute value 1.
// Reports false when points lie strictly on both sides.
func orientOutward[T any](f field.Field[T], h []T, lifted [][]T) ([]T, bool) {
	pos, neg := false, false
	for _, x := range lifted {
		switch f.Sign(field.Dot(f, x, h)) {
		case 1:
			pos = true
		case -1:
			neg = true
		}
		if pos && neg {
			return nil, false
		}
	}
	d := len(h) - 1
	lead := f.Zero()
	for _, c := range h[:d] {
		if f.Sign(c) != 0 {
			lead = c
			break
		}
	}
	if f.Sign(lead) == 0 {
		return nil, false
	}
	scale := f.Quo(f.One(), lead)
	if f.Sign(scale) < 0 {
		scale = f.Neg(scale)
	}
	if pos {
		scale = f.Neg(scale)
	}
	out := make([]T, len(h))
	for i, c := range h {
		out[i] = f.Mul(c, scale)
	}

	return out, true
}

func subVec[T any](f field.Field[T], a, b []T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = f.Sub(a[i], b[i])
	}

	return out
}
