// SPDX-License-Identifier: MIT

package ineqfile

import "errors"

var (
	// ErrSyntax indicates text that does not follow the line grammar.
	ErrSyntax = errors.New("ineqfile: syntax error")

	// ErrRagged indicates rows of different lengths, or labels that do not
	// match the rows.
	ErrRagged = errors.New("ineqfile: ragged rows")
)

// System is a parsed file: one entry per data line, in file order.
type System struct {
	// Labels[i] is the label of row i, or "" when the row has none.
	Labels []string
	// Rows[i] holds the raw fields b, -a_1, ..., -a_d of row i.
	Rows [][]string
}

// Len returns the number of rows.
func (s *System) Len() int { return len(s.Rows) }

// Dim returns d, the number of coefficients per row (0 for an empty
// system).
func (s *System) Dim() int {
	if len(s.Rows) == 0 {
		return 0
	}

	return len(s.Rows[0]) - 1
}

// Labeled reports whether any row carries a label.
func (s *System) Labeled() bool {
	for _, l := range s.Labels {
		if l != "" {
			return true
		}
	}

	return false
}
