// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Sentinel errors for elimination routines. Every message is prefixed with
// "matrix: " for easy grepping; wrap with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrDimensionMismatch indicates incompatible operand shapes
	// (ragged rows, non-square A in Solve, len(b) != rows).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular indicates that Solve met a rank-deficient system.
	ErrSingular = errors.New("matrix: singular matrix")
)
