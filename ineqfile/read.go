// SPDX-License-Identifier: MIT

package ineqfile

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/spindle/field"
)

// Parse reads a system from r.
//
// Errors: ErrSyntax, ErrRagged, or the read error of r.
func Parse(r io.Reader) (*System, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ineqfile: read: %w", err)
	}

	return parse("", data)
}

// ParseString reads a system from s.
func ParseString(s string) (*System, error) {
	return parse("", []byte(s))
}

// ReadFile reads the system stored at path.
func ReadFile(path string) (*System, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ineqfile: %w", err)
	}

	return parse(path, data)
}

func parse(name string, data []byte) (*System, error) {
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	ast, err := ineqParser.ParseBytes(name, data)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSyntax)
	}

	s := &System{}
	width := 0
	for _, l := range ast.Lines {
		if len(l.Fields) == 0 {
			continue
		}
		if len(l.Fields) < 2 {
			return nil, fmt.Errorf("%s: row needs b and at least one coefficient: %w", l.Pos, ErrSyntax)
		}
		if width == 0 {
			width = len(l.Fields)
		}
		if len(l.Fields) != width {
			return nil, fmt.Errorf("%s: %d fields, want %d: %w", l.Pos, len(l.Fields), width, ErrRagged)
		}
		s.Labels = append(s.Labels, l.Label)
		s.Rows = append(s.Rows, l.Fields)
	}

	return s, nil
}

// Decode converts the rows into a·x <= b form over f: b is the first field
// and a is the negation of the rest.
//
// Errors: field.ErrParse or field.ErrDivByZero for a bad number.
func Decode[T any](s *System, f field.Field[T]) ([][]T, []T, error) {
	a := make([][]T, len(s.Rows))
	b := make([]T, len(s.Rows))
	for i, row := range s.Rows {
		var err error
		if b[i], err = f.Parse(row[0]); err != nil {
			return nil, nil, fmt.Errorf("ineqfile: row %d: %w", i+1, err)
		}
		a[i] = make([]T, len(row)-1)
		for j, x := range row[1:] {
			v, err := f.Parse(x)
			if err != nil {
				return nil, nil, fmt.Errorf("ineqfile: row %d, column %d: %w", i+1, j+2, err)
			}
			a[i][j] = f.Neg(v)
		}
	}

	return a, b, nil
}
