package polytope_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spindle/builder"
	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polytope"
)

func ints(xs ...int64) []*big.Rat { return field.Ints[*big.Rat](rat, xs...) }

// TestOrient_Cube directs every edge towards the larger objective value.
func TestOrient_Cube(t *testing.T) {
	p := cube(t, 3)
	g, err := p.Orient(ints(1, 2, 4))
	require.NoError(t, err)
	assert.True(t, g.Directed())
	assert.Equal(t, 12, g.EdgeCount())

	lo, up := vertexAt(t, p, -1, -1, -1), vertexAt(t, p, -1, -1, 1)
	assert.True(t, g.HasEdge(lo, up))
	assert.False(t, g.HasEdge(up, lo))
}

// TestOrientedDiameter_Cube: the sink is (1,1,1) and the farthest vertex
// is its antipode.
func TestOrientedDiameter_Cube(t *testing.T) {
	p := cube(t, 3)
	r, err := p.OrientedDiameter(ints(1, 2, 4))
	require.NoError(t, err)
	assert.Equal(t, vertexAt(t, p, 1, 1, 1), r.Sink)
	assert.Equal(t, 3, r.Diameter)
	assert.Equal(t, 0, r.Dist[r.Sink])
	assert.Equal(t, 3, r.Dist[vertexAt(t, p, -1, -1, -1)])
	assert.Equal(t, 1, r.Dist[vertexAt(t, p, 1, 1, -1)])

	m, err := p.MonotoneDiameter([][]*big.Rat{ints(1, 2, 4), ints(-3, 1, 5)})
	require.NoError(t, err)
	assert.Equal(t, 3, m)

	m, err = p.MonotoneDiameter(nil)
	require.NoError(t, err)
	assert.Zero(t, m)
}

// TestOrient_Errors covers degenerate objectives and wrong lengths.
func TestOrient_Errors(t *testing.T) {
	p := cube(t, 3)
	_, err := p.Orient(ints(1, 1, 0))
	assert.ErrorIs(t, err, polytope.ErrGeometricPrecondition)
	_, err = p.OrientedDiameter(ints(1, 2))
	assert.ErrorIs(t, err, polytope.ErrDimensionMismatch)
	_, err = p.MonotoneDiameter([][]*big.Rat{ints(1, 2, 4), ints(0, 0, 0)})
	assert.ErrorIs(t, err, polytope.ErrGeometricPrecondition)
}

// TestOrientedDiameter_Hexagon: both sides of the hexagon have length 3.
func TestOrientedDiameter_Hexagon(t *testing.T) {
	h, err := builder.Permutahedron[*big.Rat](rat, 3)
	p := wrap(t, h, err)
	r, err := p.OrientedDiameter(ints(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, vertexAt(t, p, 1, 2, 3), r.Sink)
	assert.Equal(t, 3, r.Diameter)
	assert.Equal(t, 3, r.Dist[vertexAt(t, p, 3, 2, 1)])
}

// TestMonotoneDiameterAll enumerates every generic orientation.
func TestMonotoneDiameterAll(t *testing.T) {
	h, err := builder.Permutahedron[*big.Rat](rat, 3)
	hex := wrap(t, h, err)
	tests := []struct {
		name     string
		p        *ratPolytope
		regions  int
		diameter int
	}{
		{"cube", cube(t, 3), 8, 3},
		{"hexagon", hex, 12, 3},
		{"triangle", equalityTriangle(t), 12, 1},
		{"square", redundantSquare(t), 4, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			objs, err := tt.p.GenericObjectives()
			require.NoError(t, err)
			assert.Len(t, objs, tt.regions)
			for i, c := range objs {
				_, err = tt.p.Orient(c)
				assert.NoError(t, err, "objective %d is not generic", i)
			}

			m, err := tt.p.MonotoneDiameterAll()
			require.NoError(t, err)
			assert.Equal(t, tt.diameter, m)
		})
	}
}

// TestGenericObjectives_CubeSigns: the regions of the cube are the open
// orthants, one objective each.
func TestGenericObjectives_CubeSigns(t *testing.T) {
	objs, err := cube(t, 3).GenericObjectives()
	require.NoError(t, err)
	seen := map[[3]int]bool{}
	for _, c := range objs {
		seen[[3]int{c[0].Sign(), c[1].Sign(), c[2].Sign()}] = true
	}
	assert.Len(t, seen, 8)
}

// TestGenericObjectives_TooMany: the 4-dimensional cross-polytope has
// twelve edge directions.
func TestGenericObjectives_TooMany(t *testing.T) {
	p := cross(t, 4)
	dirs, err := p.EdgeDirections()
	require.NoError(t, err)
	require.Len(t, dirs, 12)
	require.Greater(t, len(dirs), polytope.MaxZonotopeGenerators)

	_, err = p.GenericObjectives()
	assert.ErrorIs(t, err, polytope.ErrTooManyDirections)
	_, err = p.MonotoneDiameterAll()
	assert.ErrorIs(t, err, polytope.ErrTooManyDirections)
}

// TestEdgeDirections lists one normalised direction per parallel class.
func TestEdgeDirections(t *testing.T) {
	dirs, err := cube(t, 3).EdgeDirections()
	require.NoError(t, err)
	require.Len(t, dirs, 3)
	want := [][]*big.Rat{ints(0, 0, 1), ints(0, 1, 0), ints(1, 0, 0)}
	for i := range want {
		assert.True(t, field.EqualVec[*big.Rat](rat, want[i], dirs[i]), "direction %d", i)
	}

	h, err := builder.Permutahedron[*big.Rat](rat, 3)
	hex := wrap(t, h, err)
	dirs, err = hex.EdgeDirections()
	require.NoError(t, err)
	assert.Len(t, dirs, 3)
	half := big.NewRat(1, 2)
	for _, d := range dirs {
		sum := new(big.Rat)
		for _, x := range d {
			sum.Add(sum, x)
			if x.Sign() != 0 {
				assert.Equal(t, 0, new(big.Rat).Abs(x).Cmp(half))
			}
		}
		assert.Zero(t, sum.Sign(), "edges stay in the plane x+y+z = 6")
	}
}

// TestFloatField runs the lattice queries over float64.
func TestFloatField(t *testing.T) {
	f := field.Float{Eps: 1e-9}
	h, err := builder.Cube[float64](f, 3)
	require.NoError(t, err)
	p, err := polytope.New[float64](h)
	require.NoError(t, err)

	fv, err := p.FVector()
	require.NoError(t, err)
	assert.Equal(t, []int{8, 12, 6}, fv)

	r, err := p.OrientedDiameter([]float64{1, 2, 4})
	require.NoError(t, err)
	assert.Equal(t, 3, r.Diameter)

	m, err := p.MonotoneDiameterAll()
	require.NoError(t, err)
	assert.Equal(t, 3, m)
}
