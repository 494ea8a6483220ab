package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSkeleton_Cube: 12 edges, every vertex of degree 3, distances are
// Hamming distances between sign vectors.
func TestSkeleton_Cube(t *testing.T) {
	p := cube(t, 3)

	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Len(t, edges, 12)
	for _, e := range edges {
		assert.Less(t, e[0], e[1])
	}
	for v := 1; v <= p.NumVertices(); v++ {
		deg, err := p.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 3, deg, "vertex %d", v)
	}

	lo, hi := vertexAt(t, p, -1, -1, -1), vertexAt(t, p, 1, 1, 1)
	nb, err := p.Neighbors(lo)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{
		vertexAt(t, p, 1, -1, -1), vertexAt(t, p, -1, 1, -1), vertexAt(t, p, -1, -1, 1),
	}, nb)

	d, err := p.Dist(lo, hi)
	require.NoError(t, err)
	assert.Equal(t, 3, d)
	d, err = p.Dist(lo, lo)
	require.NoError(t, err)
	assert.Equal(t, 0, d)

	st, err := p.SkeletonStats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Threshold)
	assert.Equal(t, 12, st.Nondegenerate)
	assert.Equal(t, 0, st.Degenerate)
	assert.Equal(t, 12, st.Edges)
}

// TestSkeleton_DegeneratePair: the duplicated facet makes the pair on
// x = 1 degenerate; it is still an edge, and no spurious diagonal appears.
func TestSkeleton_DegeneratePair(t *testing.T) {
	p := redundantSquare(t)

	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Len(t, edges, 4)

	st, err := p.SkeletonStats()
	require.NoError(t, err)
	assert.Equal(t, 1, st.Threshold)
	assert.Equal(t, 3, st.Nondegenerate)
	assert.Equal(t, 1, st.Degenerate)
	assert.Equal(t, 4, st.Edges)

	g, err := p.Graph()
	require.NoError(t, err)
	a, b := vertexAt(t, p, 1, 1), vertexAt(t, p, 1, -1)
	assert.True(t, g.HasEdge(a, b))
	assert.False(t, g.HasEdge(a, vertexAt(t, p, -1, -1)))
}

// TestSkeleton_Flat: implicit rows raise the threshold.
func TestSkeleton_Flat(t *testing.T) {
	p := equalityTriangle(t)
	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {1, 3}, {2, 3}}, edges)

	st, err := p.SkeletonStats()
	require.NoError(t, err)
	assert.Equal(t, 3, st.Threshold)
}

// TestDist_Symmetric checks Dist(u, v) == Dist(v, u) over all pairs.
func TestDist_Symmetric(t *testing.T) {
	for name, p := range map[string]*ratPolytope{
		"octahedron":       cross(t, 3),
		"redundant square": redundantSquare(t),
		"hex x square":     hexSquare(t),
	} {
		n := p.NumVertices()
		for u := 1; u <= n; u++ {
			for v := u; v <= n; v++ {
				a, err := p.Dist(u, v)
				require.NoError(t, err)
				b, err := p.Dist(v, u)
				require.NoError(t, err)
				assert.Equal(t, a, b, "%s: %d-%d", name, u, v)
				assert.GreaterOrEqual(t, a, 0)
			}
		}
	}
}

// TestSkeleton_CrossPolytope: every vertex is adjacent to all but its
// antipode.
func TestSkeleton_CrossPolytope(t *testing.T) {
	p := cross(t, 4)
	edges, err := p.Edges()
	require.NoError(t, err)
	assert.Len(t, edges, 24)
	for v := 1; v <= p.NumVertices(); v++ {
		deg, err := p.Degree(v)
		require.NoError(t, err)
		assert.Equal(t, 6, deg)
	}
}
