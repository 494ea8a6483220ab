package polytope_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spindle/builder"
	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polyhedron"
	"github.com/katalvlaran/spindle/polytope"
)

type ratPolytope = polytope.Polytope[*big.Rat]

var rat = field.Rat{}

func ratRows(rows ...[]int64) [][]*big.Rat {
	out := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		out[i] = field.Ints[*big.Rat](rat, r...)
	}

	return out
}

func wrap(t testing.TB, h *polyhedron.Polyhedron[*big.Rat], err error) *ratPolytope {
	t.Helper()
	require.NoError(t, err)
	p, err := polytope.New[*big.Rat](h)
	require.NoError(t, err)

	return p
}

func fromRows(t testing.TB, a [][]int64, b []int64, opts ...polytope.Option) *ratPolytope {
	t.Helper()
	p, err := polytope.FromInequalities[*big.Rat](rat, ratRows(a...), field.Ints[*big.Rat](rat, b...), opts...)
	require.NoError(t, err)

	return p
}

func cube(t testing.TB, d int) *ratPolytope {
	t.Helper()
	h, err := builder.Cube[*big.Rat](rat, d)

	return wrap(t, h, err)
}

func cross(t testing.TB, d int) *ratPolytope {
	t.Helper()
	h, err := builder.CrossPolytope[*big.Rat](rat, d)

	return wrap(t, h, err)
}

// redundantSquare is [-1,1]^2 with rows 5..7 added: a scaled copy of row 1,
// a row tight nowhere and a row tight only at (1,1).
func redundantSquare(t testing.TB) *ratPolytope {
	t.Helper()
	return fromRows(t, [][]int64{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{2, 0}, {1, 1}, {1, 1},
	}, []int64{1, 1, 1, 1, 2, 3, 2})
}

// equalityTriangle is conv{e1, e2, e3} with x+y+z = 1 written as the two
// inequality rows 4 and 5.
func equalityTriangle(t testing.TB) *ratPolytope {
	t.Helper()
	return fromRows(t, [][]int64{
		{-1, 0, 0}, {0, -1, 0}, {0, 0, -1},
		{1, 1, 1}, {-1, -1, -1},
	}, []int64{0, 0, 0, 1, -1})
}

// hexSquare is the product of the hexagon |x|,|y|,|x+y| <= 1 with the
// square |z|,|w| <= 1. Rows: 1 x<=1, 2 -x<=1, 3 y<=1, 4 -y<=1, 5 x+y<=1,
// 6 -x-y<=1, 7 z<=1, 8 -z<=1, 9 w<=1, 10 -w<=1.
func hexSquare(t testing.TB) *ratPolytope {
	t.Helper()
	return fromRows(t, [][]int64{
		{1, 0, 0, 0}, {-1, 0, 0, 0},
		{0, 1, 0, 0}, {0, -1, 0, 0},
		{1, 1, 0, 0}, {-1, -1, 0, 0},
		{0, 0, 1, 0}, {0, 0, -1, 0},
		{0, 0, 0, 1}, {0, 0, 0, -1},
	}, []int64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1})
}

// vertexAt returns the 1-based index of the vertex with the given
// coordinates.
func vertexAt(t testing.TB, p *ratPolytope, coords ...int64) int {
	t.Helper()
	want := field.Ints[*big.Rat](rat, coords...)
	for v := 1; v <= p.NumVertices(); v++ {
		x, err := p.Vertex(v)
		require.NoError(t, err)
		if field.EqualVec[*big.Rat](rat, x, want) {
			return v
		}
	}
	t.Fatalf("no vertex at %v", coords)

	return 0
}

// subsets calls fn with every subset of 1..m.
func subsets(m int, fn func(s []int)) {
	for mask := 0; mask < 1<<m; mask++ {
		var s []int
		for i := 0; i < m; i++ {
			if mask&(1<<i) != 0 {
				s = append(s, i+1)
			}
		}
		fn(s)
	}
}
