// SPDX-License-Identifier: MIT

package ineqfile

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/katalvlaran/spindle/field"
)

var labelRE = regexp.MustCompile(`^` + labelPattern + `$`)

// Write emits the rows a·x <= b as "label b -a_1 ... -a_d". labels may be
// nil; otherwise it must have one entry per row, and "" leaves a row
// unlabeled.
//
// Errors: ErrRagged for mismatched lengths, ErrSyntax for a label the
// grammar cannot read back.
func Write[T any](w io.Writer, f field.Field[T], labels []string, a [][]T, b []T) error {
	if len(a) != len(b) || (labels != nil && len(labels) != len(a)) {
		return fmt.Errorf("ineqfile: %d rows, %d right-hand sides, %d labels: %w", len(a), len(b), len(labels), ErrRagged)
	}
	for i := range a {
		if len(a[i]) != len(a[0]) {
			return fmt.Errorf("ineqfile: row %d has %d coefficients, want %d: %w", i+1, len(a[i]), len(a[0]), ErrRagged)
		}
		if labels != nil && labels[i] != "" && !labelRE.MatchString(labels[i]) {
			return fmt.Errorf("ineqfile: row %d: label %q: %w", i+1, labels[i], ErrSyntax)
		}
	}

	bw := bufio.NewWriter(w)
	d := 0
	if len(a) > 0 {
		d = len(a[0])
	}
	fmt.Fprintf(bw, "# %d rows, d = %d: b -a_1 ... -a_d\n", len(a), d)
	fields := make([]string, 0, d+2)
	for i := range a {
		fields = fields[:0]
		if labels != nil && labels[i] != "" {
			fields = append(fields, labels[i])
		}
		fields = append(fields, f.String(b[i]))
		for _, x := range a[i] {
			fields = append(fields, f.String(f.Neg(x)))
		}
		fmt.Fprintln(bw, strings.Join(fields, " "))
	}

	return bw.Flush()
}

// WriteSystem emits s unchanged apart from comments and spacing.
func WriteSystem(w io.Writer, s *System) error {
	bw := bufio.NewWriter(w)
	for i, row := range s.Rows {
		if s.Labels[i] != "" {
			fmt.Fprint(bw, s.Labels[i], " ")
		}
		fmt.Fprintln(bw, strings.Join(row, " "))
	}

	return bw.Flush()
}
