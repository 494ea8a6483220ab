// Package spindle is an in-memory face-lattice engine for convex
// polytopes: incidence, dimensions, facets, 1-skeleton, faces, apices and
// the good 2-face test used to build counterexamples to the Hirsch
// conjecture.
//
// 🚀 What is spindle?
//
//	A library plus a small CLI that brings together:
//		• Exact or floating arithmetic: field.Rat (*big.Rat), field.Float
//		• H- and V-representations: polyhedron (vertex/facet enumeration, polar)
//		• The lattice engine: polytope (dim, codim, facets, skeleton, faces)
//		• Spindles: apex pairs, distances and good 2-faces
//		• Monotone paths: orientations by linear objectives
//		• A text format: ineqfile (labeled "b -a_1 ... -a_d" rows)
//
// ✨ Why spindle?
//
//   - Everything is combinatorial after incidence: bitset operations only
//   - Lazy, cached queries: each lattice level is computed once
//   - Context cancellation and debug logging on the long computations
//
// Packages:
//
//	field/        the numeric trait and its two instances
//	matrix/       rank, solve and null space over any field
//	polyhedron/   brute-force H↔V conversion, translate, scale, polar
//	builder/      cubes, cross-polytopes, simplices, permutahedra
//	core/         compact integer-labelled graphs
//	bfs/, dfs/    traversals, distances, cycle order
//	polytope/     the face-lattice engine
//	ineqfile/     read/write inequality files
//	cmd/spindle   the command-line tool
//
// Quick ASCII example:
//
//	    2───4
//	    │   │        the square [-1,1]^2 with vertices in lexicographic
//	    1───3        order: FacesOfDim(1) lists its edges by their tight
//	                 rows, FacesOfDim(-1) the empty face as all rows
//
//	go install github.com/katalvlaran/spindle/cmd/spindle@latest
package spindle
