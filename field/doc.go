// SPDX-License-Identifier: MIT

// Package field defines the scalar arithmetic used by every numeric layer of
// spindle (matrix elimination, the polyhedral backend and the polytope engine).
//
// What
//
//   - Field[T] is a small arithmetic trait: constants, the four operations,
//     negation, sign and comparison, parsing and formatting.
//   - Rat is exact arithmetic over *big.Rat. It is the preferred choice for
//     degenerate inputs, where a tight constraint must be recognised exactly.
//   - Float is float64 arithmetic with an explicit tolerance Eps threaded
//     through Sign and Cmp.
//
// Why
//
//	Incidence is a combinatorial fact derived from a numeric test
//	(a·v == b). Keeping the numeric policy behind one trait lets the same
//	face-lattice code run over rationals or floats without boxing.
//
// Determinism
//
//	All operations are pure: no argument is ever mutated, every call returns
//	a fresh value.
//
// Errors
//
//   - ErrParse      if a scalar literal cannot be parsed.
//   - ErrDivByZero  is reported by Parse for "n/0" literals; Quo by zero panics
//     like integer division (it is a programmer error inside elimination).
package field
