package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/matrix"
)

var rat = field.Rat{}

func ratRows(rows ...[]int64) [][]*big.Rat {
	out := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		out[i] = field.Ints[*big.Rat](rat, r...)
	}

	return out
}

func strs(v []*big.Rat) []string {
	out := make([]string, len(v))
	for i, x := range v {
		out[i] = rat.String(x)
	}

	return out
}

// TestRank covers full, deficient and empty matrices.
func TestRank(t *testing.T) {
	cases := []struct {
		name string
		a    [][]*big.Rat
		want int
	}{
		{"identity", ratRows([]int64{1, 0}, []int64{0, 1}), 2},
		{"dependent", ratRows([]int64{1, 2, 3}, []int64{2, 4, 6}, []int64{0, 1, 1}), 2},
		{"zero", ratRows([]int64{0, 0}, []int64{0, 0}), 0},
		{"empty", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := matrix.Rank[*big.Rat](rat, tc.a)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestRank_Ragged verifies the shape guard.
func TestRank_Ragged(t *testing.T) {
	_, err := matrix.Rank[*big.Rat](rat, ratRows([]int64{1, 2}, []int64{1}))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSolve checks an exact rational solution and the singular case.
func TestSolve(t *testing.T) {
	a := ratRows([]int64{2, 1}, []int64{1, 3})
	b := field.Ints[*big.Rat](rat, 3, 5)
	x, err := matrix.Solve[*big.Rat](rat, a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"4/5", "7/5"}, strs(x))

	_, err = matrix.Solve[*big.Rat](rat, ratRows([]int64{1, 2}, []int64{2, 4}), b)
	assert.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Solve[*big.Rat](rat, a, b[:1])
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// input untouched
	assert.Equal(t, []string{"2", "1"}, strs(a[0]))
}

// TestSolve_Float exercises partial pivoting on a tolerance field.
func TestSolve_Float(t *testing.T) {
	f := field.Float{}
	a := [][]float64{{1e-12, 1}, {1, 1}}
	x, err := matrix.Solve[float64](f, a, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-9)
	assert.InDelta(t, 1.0, x[1], 1e-9)
}

// TestNullSpace verifies A·v = 0 for every basis vector.
func TestNullSpace(t *testing.T) {
	a := ratRows([]int64{1, 1, 1, -3}, []int64{1, -1, 0, 0})
	basis, err := matrix.NullSpace[*big.Rat](rat, a, 4)
	require.NoError(t, err)
	require.Len(t, basis, 2)
	for _, v := range basis {
		for _, row := range a {
			assert.Zero(t, rat.Sign(field.Dot[*big.Rat](rat, row, v)))
		}
	}

	// no rows: the whole space
	basis, err = matrix.NullSpace[*big.Rat](rat, nil, 3)
	require.NoError(t, err)
	assert.Len(t, basis, 3)

	// trivial kernel
	basis, err = matrix.NullSpace[*big.Rat](rat, ratRows([]int64{1, 0}, []int64{0, 1}), 2)
	require.NoError(t, err)
	assert.Empty(t, basis)
}
