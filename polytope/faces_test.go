package polytope_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spindle/builder"
)

func reversed(xs []int) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}

	return out
}

// TestFVector_Duality: the f-vector of the cross-polytope is the reversed
// f-vector of the cube.
func TestFVector_Duality(t *testing.T) {
	cases := []struct {
		d    int
		cube []int
	}{
		{2, []int{4, 4}},
		{3, []int{8, 12, 6}},
		{4, []int{16, 32, 24, 8}},
	}
	for _, tc := range cases {
		fc, err := cube(t, tc.d).FVector()
		require.NoError(t, err)
		assert.Equal(t, tc.cube, fc, "cube %d", tc.d)

		fx, err := cross(t, tc.d).FVector()
		require.NoError(t, err)
		assert.Equal(t, reversed(tc.cube), fx, "cross-polytope %d", tc.d)
	}
}

// TestFVector_Permutahedron works with explicit equalities.
func TestFVector_Permutahedron(t *testing.T) {
	h, err := builder.Permutahedron[*big.Rat](rat, 4)
	p := wrap(t, h, err)

	d, err := p.Dim()
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	fv, err := p.FVector()
	require.NoError(t, err)
	assert.Equal(t, []int{24, 36, 14}, fv)
}

// TestFacesOfDim_Range covers the ends of the face lattice and k outside
// -1..dim.
func TestFacesOfDim_Range(t *testing.T) {
	p := cube(t, 3)

	for _, k := range []int{-5, -2, 4, 10} {
		faces, err := p.FacesOfDim(k)
		require.NoError(t, err)
		assert.Empty(t, faces, "k=%d", k)
		n, err := p.NFacesOfDim(k)
		require.NoError(t, err)
		assert.Zero(t, n)
	}

	vertices, err := p.FacesOfDim(0)
	require.NoError(t, err)
	assert.Len(t, vertices, 8)
	assert.Equal(t, []int{1, 3, 5}, vertices[0])
	assert.Equal(t, []int{2, 4, 6}, vertices[len(vertices)-1])

	facets, err := p.FacesOfDim(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {2}, {3}, {4}, {5}, {6}}, facets)

	flat := equalityTriangle(t)
	top, err := flat.FacesOfDim(2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{4, 5}}, top)
	fv, err := flat.FVector()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 3}, fv)
}

// TestFacesOfDim_Sorted: faces come out in lexicographic order of their
// index lists, and every face has the dimension it is listed under.
func TestFacesOfDim_Sorted(t *testing.T) {
	p := cross(t, 3)
	for k := 0; k < 3; k++ {
		faces, err := p.FacesOfDim(k)
		require.NoError(t, err)
		for i := range faces {
			d, err := p.DimOf(faces[i])
			require.NoError(t, err)
			assert.Equal(t, k, d, "face %v", faces[i])
			if i > 0 {
				assert.True(t, lexLess(faces[i-1], faces[i]), "%v before %v", faces[i-1], faces[i])
			}
		}
	}
}

func lexLess(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}

// TestTwoFaces_AreCycles: every 2-face of a 3-polytope induces one cycle.
func TestTwoFaces_AreCycles(t *testing.T) {
	for name, p := range map[string]*ratPolytope{
		"cube":       cube(t, 3),
		"octahedron": cross(t, 3),
	} {
		faces, err := p.FacesOfDim(2)
		require.NoError(t, err)
		g, err := p.Graph()
		require.NoError(t, err)
		for _, f := range faces {
			cyc, err := p.FaceCycle(f)
			require.NoError(t, err, "%s: face %v", name, f)
			vs, err := p.IncidentVertices(f)
			require.NoError(t, err)
			assert.Len(t, cyc, len(vs))
			assert.Equal(t, vs[0], cyc[0])
			for i := range cyc {
				assert.True(t, g.HasEdge(cyc[i], cyc[(i+1)%len(cyc)]), "%s: face %v", name, f)
			}
		}
	}
}
