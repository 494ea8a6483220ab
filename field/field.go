// SPDX-License-Identifier: MIT

package field

import (
	"errors"
)

// DefaultEpsilon is the tolerance used by Float when Eps is left at zero.
const DefaultEpsilon = 1e-9

var (
	// ErrParse indicates that a scalar literal is malformed.
	ErrParse = errors.New("field: cannot parse scalar")

	// ErrDivByZero indicates a literal with a zero denominator.
	ErrDivByZero = errors.New("field: zero denominator")
)

// Field is the arithmetic trait over scalar type T.
//
// Implementations MUST treat values as immutable: every operation returns a
// new value and leaves its arguments untouched.
type Field[T any] interface {
	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// FromInt converts an integer.
	FromInt(n int64) T
	// FromFrac converts num/den; den must be non-zero.
	FromFrac(num, den int64) T
	// Parse reads "n", "n/d" or a decimal literal.
	Parse(s string) (T, error)

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T
	// Quo returns a/b; b must be non-zero.
	Quo(a, b T) T
	Neg(a T) T

	// Sign returns -1, 0 or +1. Tolerance-aware implementations report 0
	// for values within their epsilon.
	Sign(a T) int
	// Cmp compares a and b with the same policy as Sign(a-b).
	Cmp(a, b T) int

	// String formats a value for text output ("n" or "n/d" for rationals).
	String(a T) string
}

// Dot returns the inner product of a and b over f.
// Lengths must agree; the shorter length bounds the sum.
func Dot[T any](f Field[T], a, b []T) T {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	s := f.Zero()
	for i := 0; i < n; i++ {
		s = f.Add(s, f.Mul(a[i], b[i]))
	}

	return s
}

// IsZeroVec reports whether every entry of v has sign 0.
func IsZeroVec[T any](f Field[T], v []T) bool {
	for _, x := range v {
		if f.Sign(x) != 0 {
			return false
		}
	}

	return true
}

// EqualVec reports entry-wise equality of a and b (lengths must match).
func EqualVec[T any](f Field[T], a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if f.Cmp(a[i], b[i]) != 0 {
			return false
		}
	}

	return true
}

// CompareVec orders vectors lexicographically; used to sort vertex lists
// deterministically.
func CompareVec[T any](f Field[T], a, b []T) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := f.Cmp(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// Ints converts a row of integers into field values.
func Ints[T any](f Field[T], xs ...int64) []T {
	out := make([]T, len(xs))
	for i, x := range xs {
		out[i] = f.FromInt(x)
	}

	return out
}
