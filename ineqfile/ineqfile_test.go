package ineqfile_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/ineqfile"
	"github.com/katalvlaran/spindle/polytope"
)

const square = `# unit square
right  1 -1  0
left   1  1  0

top    1  0 -1   # trailing comment
       1  0  1`

// TestParseString reads labels, comments, blank lines and a last line
// without newline.
func TestParseString(t *testing.T) {
	s, err := ineqfile.ParseString(square)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, 2, s.Dim())
	assert.True(t, s.Labeled())
	assert.Equal(t, []string{"right", "left", "top", ""}, s.Labels)
	assert.Equal(t, []string{"1", "-1", "0"}, s.Rows[0])
	assert.Equal(t, []string{"1", "0", "1"}, s.Rows[3])
}

// TestDecode negates the coefficient columns.
func TestDecode(t *testing.T) {
	s, err := ineqfile.ParseString("1/2 -3/4 2\n-1.5 0 +1\n")
	require.NoError(t, err)
	assert.False(t, s.Labeled())

	a, b, err := ineqfile.Decode[*big.Rat](s, field.Rat{})
	require.NoError(t, err)
	assert.Equal(t, 0, b[0].Cmp(big.NewRat(1, 2)))
	assert.Equal(t, 0, a[0][0].Cmp(big.NewRat(3, 4)))
	assert.Equal(t, 0, a[0][1].Cmp(big.NewRat(-2, 1)))
	assert.Equal(t, 0, b[1].Cmp(big.NewRat(-3, 2)))
	assert.Equal(t, 0, a[1][1].Cmp(big.NewRat(-1, 1)))

	af, bf, err := ineqfile.Decode[float64](s, field.Float{})
	require.NoError(t, err)
	assert.InDelta(t, 0.75, af[0][0], 1e-12)
	assert.InDelta(t, -1.5, bf[1], 1e-12)
}

// TestParse_Errors covers the malformed inputs.
func TestParse_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"ragged":        {"1 -1 0\n1 1\n", ineqfile.ErrRagged},
		"label only":    {"lonely\n", ineqfile.ErrSyntax},
		"bad token":     {"1 -1 ?\n", ineqfile.ErrSyntax},
		"single number": {"1\n", ineqfile.ErrSyntax},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ineqfile.ParseString(tc.in)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	s, err := ineqfile.ParseString("1 1/0\n")
	require.NoError(t, err)
	_, _, err = ineqfile.Decode[*big.Rat](s, field.Rat{})
	assert.ErrorIs(t, err, field.ErrDivByZero)
}

// TestEmpty yields an empty system.
func TestEmpty(t *testing.T) {
	s, err := ineqfile.ParseString("# nothing here\n\n")
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.Zero(t, s.Dim())
}

// TestWrite_RoundTrip writes (A, b) and reads back the same rows.
func TestWrite_RoundTrip(t *testing.T) {
	f := field.Rat{}
	a := [][]*big.Rat{
		field.Ints[*big.Rat](f, 1, 0),
		{big.NewRat(-1, 2), big.NewRat(3, 1)},
	}
	b := []*big.Rat{big.NewRat(1, 1), big.NewRat(5, 3)}

	var buf bytes.Buffer
	require.NoError(t, ineqfile.Write[*big.Rat](&buf, f, []string{"first", ""}, a, b))
	assert.True(t, strings.HasPrefix(buf.String(), "#"))

	s, err := ineqfile.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", ""}, s.Labels)
	assert.Equal(t, []string{"5/3", "1/2", "-3"}, s.Rows[1])

	a2, b2, err := ineqfile.Decode[*big.Rat](s, f)
	require.NoError(t, err)
	for i := range a {
		assert.Equal(t, 0, b[i].Cmp(b2[i]))
		assert.True(t, field.EqualVec[*big.Rat](f, a[i], a2[i]))
	}

	var out bytes.Buffer
	require.NoError(t, ineqfile.WriteSystem(&out, s))
	assert.Equal(t, "first 1 -1 0\n5/3 1/2 -3\n", out.String())
}

// TestWrite_Errors rejects mismatched shapes and unreadable labels.
func TestWrite_Errors(t *testing.T) {
	f := field.Float{}
	var buf bytes.Buffer
	err := ineqfile.Write[float64](&buf, f, nil, [][]float64{{1}, {1, 2}}, []float64{1, 1})
	assert.ErrorIs(t, err, ineqfile.ErrRagged)
	err = ineqfile.Write[float64](&buf, f, []string{"a"}, [][]float64{{1}, {2}}, []float64{1, 1})
	assert.ErrorIs(t, err, ineqfile.ErrRagged)
	err = ineqfile.Write[float64](&buf, f, []string{"has space"}, [][]float64{{1}}, []float64{1})
	assert.ErrorIs(t, err, ineqfile.ErrSyntax)
}

// TestReadFile_Cube builds the polytope described by a file.
func TestReadFile_Cube(t *testing.T) {
	s, err := ineqfile.ReadFile("testdata/cube3.ine")
	require.NoError(t, err)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, "z-", s.Labels[5])

	a, b, err := ineqfile.Decode[*big.Rat](s, field.Rat{})
	require.NoError(t, err)
	p, err := polytope.FromInequalities[*big.Rat](field.Rat{}, a, b)
	require.NoError(t, err)
	fv, err := p.FVector()
	require.NoError(t, err)
	assert.Equal(t, []int{8, 12, 6}, fv)

	_, err = ineqfile.ReadFile("testdata/missing.ine")
	assert.Error(t, err)
}
