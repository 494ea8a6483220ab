// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polyhedron"
)

const (
	methodSimplex       = "Simplex"
	methodPermutahedron = "Permutahedron"
	minSimplexDim       = 1
	minPermutahedron    = 2
	maxPermutahedron    = 5 // 2^n-2 rows, exhaustive vertex search
)

// Simplex returns the standard simplex conv{0, e_1, ..., e_d}. Rows 0..d-1
// are -e_{i+1}·x <= 0 and row d is (1,...,1)·x <= 1. The origin is a vertex,
// so Polar fails until the simplex is translated by its centroid.
func Simplex[T any](f field.Field[T], d int) (*polyhedron.Polyhedron[T], error) {
	if d < minSimplexDim {
		return nil, fmt.Errorf("%s: d=%d < min=%d: %w", methodSimplex, d, minSimplexDim, ErrTooSmall)
	}
	a := make([][]T, 0, d+1)
	b := make([]T, 0, d+1)
	for i := 0; i < d; i++ {
		row := zeros(f, d)
		row[i] = f.FromInt(-1)
		a = append(a, row)
		b = append(b, f.Zero())
	}
	sum := make([]T, d)
	for j := range sum {
		sum[j] = f.One()
	}
	a = append(a, sum)
	b = append(b, f.One())

	p, err := polyhedron.FromInequalities(f, a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSimplex, err)
	}

	return p, nil
}

// Permutahedron returns the convex hull of the permutations of (1, ..., n)
// in R^n. It is (n-1)-dimensional: the equality Σx = n(n+1)/2 is stored
// explicitly and each non-empty proper subset S of coordinates contributes
// the row -Σ_{i∈S} x_i <= -|S|(|S|+1)/2. Subsets are ordered by their bit
// mask 1..2^n-2 (bit i selects coordinate i+1).
func Permutahedron[T any](f field.Field[T], n int) (*polyhedron.Polyhedron[T], error) {
	if n < minPermutahedron {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPermutahedron, n, minPermutahedron, ErrTooSmall)
	}
	if n > maxPermutahedron {
		return nil, fmt.Errorf("%s: n=%d > max=%d: %w", methodPermutahedron, n, maxPermutahedron, polyhedron.ErrDimensionMismatch)
	}
	full := 1<<n - 1
	a := make([][]T, 0, full-1)
	b := make([]T, 0, full-1)
	for mask := 1; mask < full; mask++ {
		row := zeros(f, n)
		k := int64(0)
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				row[i] = f.FromInt(-1)
				k++
			}
		}
		a = append(a, row)
		b = append(b, f.FromInt(-k*(k+1)/2))
	}
	eq := make([]T, n)
	for j := range eq {
		eq[j] = f.One()
	}
	total := f.FromInt(int64(n * (n + 1) / 2))

	p, err := polyhedron.FromInequalities(f, a, b,
		polyhedron.WithEqualities([][]T{eq}, []T{total}))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPermutahedron, err)
	}

	return p, nil
}
