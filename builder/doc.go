// Package builder constructs standard polytopes as polyhedron.Polyhedron
// values over any field.Field.
//
// Constructors:
//
//	Cube(d)           [-1,1]^d, rows ±e_i (2d rows)
//	Simplex(d)        conv{0, e_1, ..., e_d}, rows -e_i <= 0 and Σx <= 1
//	CrossPolytope(d)  conv{±e_i}, rows s·x <= 1 for s in {±1}^d
//	Permutahedron(n)  conv of the permutations of (1..n), in Σx = n(n+1)/2
//
// Cube and CrossPolytope contain the origin in their interior, so they are
// polar to each other via Polyhedron.Polar. Row order is deterministic and
// documented per constructor; tests rely on it.
//
// Errors: ErrTooSmall for a dimension below the constructor's minimum.
package builder
