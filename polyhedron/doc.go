// SPDX-License-Identifier: MIT

// Package polyhedron is the polyhedral representation backend consumed by the
// face-lattice engine (package polytope). It converts between the two
// classical descriptions of a bounded polyhedron:
//
//   - H-representation: A x <= b, optionally with explicit equalities E x = e.
//   - V-representation: the convex hull of a finite point set.
//
// What
//
//   - FromInequalities enumerates vertices by exhaustive basis enumeration:
//     every choice of d - rank(E) inequality rows completing the equalities
//     to a non-singular system is solved exactly and kept when feasible.
//     Rows are never pruned: redundant rows and implicit equations stay in
//     place and keep their indices.
//   - FromPoints removes duplicate and non-vertex points and enumerates facets
//     as supporting hyperplanes through affinely independent point subsets.
//   - Basic operators: Translate, Scale, Centroid, Polar, SameVertices.
//
// Why
//
//	The engine needs stable vertex and halfspace indices plus a per-vertex
//	tight-constraint query. Both conversions here are brute force, which is
//	exact and predictable on the small, highly structured polytopes studied
//	in Hirsch-type analysis; no double-description machinery is required.
//
// Complexity (m rows, n points, ambient dimension d)
//
//   - FromInequalities: O(C(m, d) · d³) field operations.
//   - FromPoints:       O(C(n, d) · (d³ + n·d)).
//
// Errors
//
//   - ErrDimensionMismatch     ragged rows, len(b) != rows, empty system.
//   - ErrUnbounded             the recession cone is not {0}.
//   - ErrEmpty                 no feasible point / no input point.
//   - ErrNotFullDimensional    FromPoints on a point set with a proper affine hull.
//   - ErrGeometricPrecondition Polar without the origin in the interior, Scale by s <= 0.
package polyhedron
