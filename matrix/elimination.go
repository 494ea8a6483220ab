// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/spindle/field"
)

// clone copies a row-major matrix and checks that it is rectangular.
// Returns the copy and its column count.
func clone[T any](a [][]T) ([][]T, int, error) {
	out := make([][]T, len(a))
	cols := -1
	for i, row := range a {
		if cols < 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, 0, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
		out[i] = append(make([]T, 0, len(row)), row...)
	}
	if cols < 0 {
		cols = 0
	}

	return out, cols, nil
}

// abs returns |x| under f.
func abs[T any](f field.Field[T], x T) T {
	if f.Sign(x) < 0 {
		return f.Neg(x)
	}

	return x
}

// pickPivot returns the row index >= from holding the pivot for column c,
// or -1 when the column is zero below from.
func pickPivot[T any](f field.Field[T], m [][]T, from, c int, partial bool) int {
	best := -1
	for r := from; r < len(m); r++ {
		if f.Sign(m[r][c]) == 0 {
			continue
		}
		if !partial {
			return r
		}
		if best < 0 || f.Cmp(abs(f, m[r][c]), abs(f, m[best][c])) > 0 {
			best = r
		}
	}

	return best
}

// RowEchelon computes the reduced row-echelon form of a.
//
// Implementation:
//   - Stage 1: copy a (ErrDimensionMismatch on ragged input).
//   - Stage 2: for each column, select a pivot, swap it up, normalise it to 1.
//   - Stage 3: eliminate the column from every other row.
//
// Returns the reduced matrix (same shape as a) and the pivot column of each
// leading row, in increasing order.
func RowEchelon[T any](f field.Field[T], a [][]T) ([][]T, []int, error) {
	m, cols, err := clone(a)
	if err != nil {
		return nil, nil, fmt.Errorf("RowEchelon: %w", err)
	}
	_, partial := any(f).(field.Float)

	pivots := make([]int, 0, min(len(m), cols))
	r := 0
	for c := 0; c < cols && r < len(m); c++ {
		p := pickPivot(f, m, r, c, partial)
		if p < 0 {
			continue
		}
		m[r], m[p] = m[p], m[r]

		// normalise pivot row
		inv := f.Quo(f.One(), m[r][c])
		for j := c; j < cols; j++ {
			m[r][j] = f.Mul(m[r][j], inv)
		}
		m[r][c] = f.One()

		// clear column c everywhere else
		for i := range m {
			if i == r || f.Sign(m[i][c]) == 0 {
				continue
			}
			k := m[i][c]
			for j := c; j < cols; j++ {
				m[i][j] = f.Sub(m[i][j], f.Mul(k, m[r][j]))
			}
			m[i][c] = f.Zero()
		}
		pivots = append(pivots, c)
		r++
	}

	return m, pivots, nil
}

// Rank returns the rank of a, or an error for ragged input.
func Rank[T any](f field.Field[T], a [][]T) (int, error) {
	_, pivots, err := RowEchelon(f, a)
	if err != nil {
		return 0, fmt.Errorf("Rank: %w", err)
	}

	return len(pivots), nil
}

// Solve returns the unique x with A x = b for square A.
//
// Errors:
//   - ErrDimensionMismatch if A is not square or len(b) != rows.
//   - ErrSingular if A is rank-deficient.
func Solve[T any](f field.Field[T], a [][]T, b []T) ([]T, error) {
	n := len(a)
	if len(b) != n {
		return nil, fmt.Errorf("Solve: len(b)=%d, rows=%d: %w", len(b), n, ErrDimensionMismatch)
	}
	aug := make([][]T, n)
	for i, row := range a {
		if len(row) != n {
			return nil, fmt.Errorf("Solve: row %d has %d columns, want %d: %w", i, len(row), n, ErrDimensionMismatch)
		}
		aug[i] = append(append(make([]T, 0, n+1), row...), b[i])
	}
	r, pivots, err := RowEchelon(f, aug)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if len(pivots) < n || pivots[n-1] != n-1 {
		return nil, fmt.Errorf("Solve: %w", ErrSingular)
	}
	x := make([]T, n)
	for i := 0; i < n; i++ {
		x[i] = r[i][n]
	}

	return x, nil
}

// NullSpace returns a basis of {x : A x = 0}. Each basis vector has a 1 in one
// free column and zeros in the other free columns. The empty basis means the
// kernel is trivial.
//
// cols must be given explicitly so that a matrix with zero rows still has a
// well-defined kernel (the whole space).
func NullSpace[T any](f field.Field[T], a [][]T, cols int) ([][]T, error) {
	for i, row := range a {
		if len(row) != cols {
			return nil, fmt.Errorf("NullSpace: row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}
	r, pivots, err := RowEchelon(f, a)
	if err != nil {
		return nil, fmt.Errorf("NullSpace: %w", err)
	}
	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}

	var basis [][]T
	for free := 0; free < cols; free++ {
		if isPivot[free] {
			continue
		}
		v := make([]T, cols)
		for j := range v {
			v[j] = f.Zero()
		}
		v[free] = f.One()
		for i, p := range pivots {
			v[p] = f.Neg(r[i][free])
		}
		basis = append(basis, v)
	}

	return basis, nil
}
