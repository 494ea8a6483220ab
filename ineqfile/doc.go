// SPDX-License-Identifier: MIT

// Package ineqfile reads and writes inequality systems as labeled text.
//
// Each data line holds an optional label followed by the numbers
//
//	b -a_1 ... -a_d
//
// and stands for the row b - a·x >= 0, that is a·x <= b. Numbers are
// signed integers, fractions "num/den" or decimals. Lines starting with
// '#' and blank lines are ignored. All data lines must have the same
// number of fields.
//
// Example:
//
//	# unit square
//	right  1 -1  0
//	left   1  1  0
//	top    1  0 -1
//	bottom 1  0  1
//
// Parse keeps the fields as text; Decode converts them into (A, b) over any
// field.Field, so the same file can feed exact or floating-point
// arithmetic. Write produces text that Parse reads back unchanged.
package ineqfile
