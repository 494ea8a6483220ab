package polyhedron_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polyhedron"
)

var rat = field.Rat{}

func ratRows(rows ...[]int64) [][]*big.Rat {
	out := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		out[i] = field.Ints[*big.Rat](rat, r...)
	}

	return out
}

// cube returns [-1,1]^d with rows e_1, -e_1, e_2, -e_2, ...
func cube(t *testing.T, d int) *polyhedron.Polyhedron[*big.Rat] {
	t.Helper()
	var (
		a [][]*big.Rat
		b []*big.Rat
	)
	for i := 0; i < d; i++ {
		for _, s := range []int64{1, -1} {
			row := make([]int64, d)
			row[i] = s
			a = append(a, field.Ints[*big.Rat](rat, row...))
			b = append(b, rat.One())
		}
	}
	p, err := polyhedron.FromInequalities[*big.Rat](rat, a, b)
	require.NoError(t, err)

	return p
}

// TestFromInequalities_Cube checks vertex count, ordering and incidence.
func TestFromInequalities_Cube(t *testing.T) {
	p := cube(t, 3)
	assert.Equal(t, 3, p.AmbientDim())
	assert.Equal(t, 8, p.NumVertices())
	assert.Equal(t, 6, p.NumHalfspaces())
	assert.True(t, p.Bounded())

	// lexicographic: (-1,-1,-1) first, (1,1,1) last
	assert.Equal(t, "-1", rat.String(p.Vertex(0)[0]))
	assert.Equal(t, "1", rat.String(p.Vertex(7)[2]))
	for v := 0; v < p.NumVertices(); v++ {
		rows, err := p.IncidentHalfspaces(v)
		require.NoError(t, err)
		assert.Len(t, rows, 3, "vertex %d", v)
	}
	rows, err := p.IncidentHalfspaces(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, rows)

	_, err = p.IncidentHalfspaces(8)
	assert.ErrorIs(t, err, polyhedron.ErrIndexOutOfRange)
	assert.Nil(t, p.Vertex(-1))
}

// TestFromInequalities_Errors covers shape, emptiness and unboundedness.
func TestFromInequalities_Errors(t *testing.T) {
	one := field.Ints[*big.Rat](rat, 1)

	_, err := polyhedron.FromInequalities[*big.Rat](rat, nil, nil)
	assert.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)

	_, err = polyhedron.FromInequalities[*big.Rat](rat, ratRows([]int64{1, 0}, []int64{1}), field.Ints[*big.Rat](rat, 1, 1))
	assert.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)

	_, err = polyhedron.FromInequalities[*big.Rat](rat, ratRows([]int64{1}), field.Ints[*big.Rat](rat, 1, 1))
	assert.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)

	// half-line x <= 1
	_, err = polyhedron.FromInequalities[*big.Rat](rat, ratRows([]int64{1}), one)
	assert.ErrorIs(t, err, polyhedron.ErrUnbounded)

	// strip in the plane: a line
	_, err = polyhedron.FromInequalities[*big.Rat](rat,
		ratRows([]int64{1, 0}, []int64{-1, 0}), field.Ints[*big.Rat](rat, 1, 1))
	assert.ErrorIs(t, err, polyhedron.ErrUnbounded)

	// quadrant x >= 0, y >= 0: a pointed cone
	_, err = polyhedron.FromInequalities[*big.Rat](rat,
		ratRows([]int64{-1, 0}, []int64{0, -1}), field.Ints[*big.Rat](rat, 0, 0))
	assert.ErrorIs(t, err, polyhedron.ErrUnbounded)

	// x <= -1, -x <= -1
	_, err = polyhedron.FromInequalities[*big.Rat](rat,
		ratRows([]int64{1}, []int64{-1}), field.Ints[*big.Rat](rat, -1, -1))
	assert.ErrorIs(t, err, polyhedron.ErrEmpty)
}

// TestFromInequalities_KeepsRedundantRows checks that duplicate and
// redundant rows keep their indices and their incidences.
func TestFromInequalities_KeepsRedundantRows(t *testing.T) {
	// unit square plus x+y <= 2 (touches (1,1)) and a duplicate of x <= 1
	a := ratRows(
		[]int64{1, 0}, []int64{-1, 0}, []int64{0, 1}, []int64{0, -1},
		[]int64{1, 1}, []int64{1, 0},
	)
	b := field.Ints[*big.Rat](rat, 1, 0, 1, 0, 2, 1)
	p, err := polyhedron.FromInequalities[*big.Rat](rat, a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumVertices())
	assert.Equal(t, 6, p.NumHalfspaces())

	// vertex (1,1) is last and tight at rows 0, 2, 4, 5
	rows, err := p.IncidentHalfspaces(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 5}, rows)
}

// TestFromInequalities_Equality builds a triangle inside x+y+z = 1.
func TestFromInequalities_Equality(t *testing.T) {
	a := ratRows([]int64{-1, 0, 0}, []int64{0, -1, 0}, []int64{0, 0, -1})
	b := field.Ints[*big.Rat](rat, 0, 0, 0)
	p, err := polyhedron.FromInequalities[*big.Rat](rat, a, b,
		polyhedron.WithEqualities[*big.Rat](ratRows([]int64{1, 1, 1}), field.Ints[*big.Rat](rat, 1)))
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumVertices())
	assert.Equal(t, 3, p.NumHalfspaces())
	e, rhs := p.Equalities()
	require.Len(t, e, 1)
	assert.Equal(t, "1", rat.String(rhs[0]))
	for v := 0; v < 3; v++ {
		rows, err := p.IncidentHalfspaces(v)
		require.NoError(t, err)
		assert.Len(t, rows, 2)
	}

	_, err = polyhedron.FromInequalities[*big.Rat](rat, a, b,
		polyhedron.WithEqualities[*big.Rat](ratRows([]int64{1, 1}), field.Ints[*big.Rat](rat, 1)))
	assert.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)
}

// TestFromPoints_PrunesNonVertices drops interior and edge points.
func TestFromPoints_PrunesNonVertices(t *testing.T) {
	pts := ratRows(
		[]int64{0, 0}, []int64{2, 0}, []int64{1, 1}, // (1,1) interior
		[]int64{2, 2}, []int64{0, 2}, []int64{1, 0}, // (1,0) on an edge
		[]int64{0, 0}, // duplicate
	)
	p, err := polyhedron.FromPoints[*big.Rat](rat, pts)
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumVertices())
	assert.Equal(t, 4, p.NumHalfspaces())
	// input order preserved among vertices
	assert.Equal(t, []string{"2", "0"}, []string{rat.String(p.Vertex(1)[0]), rat.String(p.Vertex(1)[1])})

	// every point satisfies every row
	a, b := p.Inequalities()
	for _, x := range pts {
		for i := range a {
			assert.LessOrEqual(t, rat.Cmp(field.Dot[*big.Rat](rat, a[i], x), b[i]), 0)
		}
	}
}

// TestFromPoints_Errors covers empty, ragged and flat input.
func TestFromPoints_Errors(t *testing.T) {
	_, err := polyhedron.FromPoints[*big.Rat](rat, nil)
	assert.ErrorIs(t, err, polyhedron.ErrEmpty)

	_, err = polyhedron.FromPoints[*big.Rat](rat, ratRows([]int64{0, 0}, []int64{1}))
	assert.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)

	_, err = polyhedron.FromPoints[*big.Rat](rat, ratRows([]int64{0, 0}, []int64{1, 1}, []int64{2, 2}))
	assert.ErrorIs(t, err, polyhedron.ErrNotFullDimensional)
}

// TestPolar_Involution checks that the cube and cross-polytope are polar.
func TestPolar_Involution(t *testing.T) {
	c := cube(t, 3)
	cross, err := c.Polar()
	require.NoError(t, err)
	assert.Equal(t, 6, cross.NumVertices())
	assert.Equal(t, 8, cross.NumHalfspaces())

	back, err := cross.Polar()
	require.NoError(t, err)
	assert.True(t, back.SameVertices(c))
	assert.False(t, cross.SameVertices(c))
}

// TestPolar_Precondition rejects a simplex with the origin at a vertex.
func TestPolar_Precondition(t *testing.T) {
	a := ratRows([]int64{-1, 0}, []int64{0, -1}, []int64{1, 1})
	p, err := polyhedron.FromInequalities[*big.Rat](rat, a, field.Ints[*big.Rat](rat, 0, 0, 1))
	require.NoError(t, err)
	_, err = p.Polar()
	assert.ErrorIs(t, err, polyhedron.ErrGeometricPrecondition)
}

// TestTranslateScale keeps row order and shifts vertices.
func TestTranslateScale(t *testing.T) {
	c := cube(t, 2)
	moved, err := c.Translate(field.Ints[*big.Rat](rat, 3, 0))
	require.NoError(t, err)
	_, b := moved.Inequalities()
	assert.Equal(t, []string{"4", "-2", "1", "1"},
		[]string{rat.String(b[0]), rat.String(b[1]), rat.String(b[2]), rat.String(b[3])})
	cen := moved.Centroid()
	assert.Equal(t, "3", rat.String(cen[0]))
	assert.Equal(t, "0", rat.String(cen[1]))

	_, err = c.Translate(field.Ints[*big.Rat](rat, 1))
	assert.ErrorIs(t, err, polyhedron.ErrDimensionMismatch)

	big2, err := c.Scale(rat.FromInt(2))
	require.NoError(t, err)
	assert.Equal(t, "2", rat.String(big2.Vertex(3)[0]))
	_, err = c.Scale(rat.Zero())
	assert.ErrorIs(t, err, polyhedron.ErrGeometricPrecondition)

	// original untouched
	assert.Equal(t, "1", rat.String(c.Vertex(3)[0]))
}

// TestFloatField runs the square through float64 arithmetic.
func TestFloatField(t *testing.T) {
	f := field.Float{}
	a := [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	p, err := polyhedron.FromInequalities[float64](f, a, []float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, 4, p.NumVertices())
	assert.InDelta(t, -0.5, p.Vertex(0)[0], 1e-12)
}
