// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polyhedron"
)

const (
	methodCube  = "Cube"
	methodCross = "CrossPolytope"
	minCubeDim  = 1
	maxCrossDim = 12 // 2^d rows
)

// Cube returns [-1,1]^d. Row 2i is e_{i+1}·x <= 1 and row 2i+1 is
// -e_{i+1}·x <= 1.
func Cube[T any](f field.Field[T], d int) (*polyhedron.Polyhedron[T], error) {
	if d < minCubeDim {
		return nil, fmt.Errorf("%s: d=%d < min=%d: %w", methodCube, d, minCubeDim, ErrTooSmall)
	}
	a := make([][]T, 0, 2*d)
	b := make([]T, 0, 2*d)
	for i := 0; i < d; i++ {
		for _, s := range []int64{1, -1} {
			row := zeros(f, d)
			row[i] = f.FromInt(s)
			a = append(a, row)
			b = append(b, f.One())
		}
	}
	p, err := polyhedron.FromInequalities(f, a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCube, err)
	}

	return p, nil
}

// CrossPolytope returns conv{±e_i}. Row k has sign pattern s with
// s_j = -1 iff bit (d-1-j) of k is set, so row 0 is (1,...,1)·x <= 1.
func CrossPolytope[T any](f field.Field[T], d int) (*polyhedron.Polyhedron[T], error) {
	if d < minCubeDim {
		return nil, fmt.Errorf("%s: d=%d < min=%d: %w", methodCross, d, minCubeDim, ErrTooSmall)
	}
	if d > maxCrossDim {
		return nil, fmt.Errorf("%s: d=%d > max=%d: %w", methodCross, d, maxCrossDim, polyhedron.ErrDimensionMismatch)
	}
	rows := 1 << d
	a := make([][]T, 0, rows)
	b := make([]T, 0, rows)
	for k := 0; k < rows; k++ {
		row := make([]T, d)
		for j := 0; j < d; j++ {
			if k&(1<<(d-1-j)) != 0 {
				row[j] = f.FromInt(-1)
			} else {
				row[j] = f.One()
			}
		}
		a = append(a, row)
		b = append(b, f.One())
	}
	p, err := polyhedron.FromInequalities(f, a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCross, err)
	}

	return p, nil
}

func zeros[T any](f field.Field[T], d int) []T {
	row := make([]T, d)
	for j := range row {
		row[j] = f.Zero()
	}

	return row
}
