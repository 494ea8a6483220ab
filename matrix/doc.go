// SPDX-License-Identifier: MIT

// Package matrix provides exact (or tolerance-aware) Gauss–Jordan elimination
// over any field.Field[T], the linear-algebra kernel behind the polyhedral
// backend: vertex solving, hyperplanes through point sets, affine hulls and
// rank tests on tight-constraint normals.
//
// Matrices are plain row-major [][]T values. Every routine copies its input;
// callers' slices are never mutated.
//
// API:
//
//	RowEchelon(f, A)  reduced row-echelon form plus pivot columns
//	Rank(f, A)        number of pivots
//	Solve(f, A, b)    unique solution of a square non-singular system
//	NullSpace(f, A)   basis of {x : A x = 0}
//
// Pivoting:
//
//	Rows are scanned top-down per column; for tolerance-aware fields the entry
//	of largest magnitude is chosen (partial pivoting), for exact fields the
//	first non-zero entry wins. Both choices are deterministic.
//
// Complexity: O(r·c·min(r,c)) field operations for an r×c input.
package matrix
