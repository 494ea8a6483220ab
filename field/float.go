// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float is float64 arithmetic with tolerance Eps.
// A zero Eps means DefaultEpsilon; a negative Eps means exact comparison.
type Float struct {
	Eps float64
}

var _ Field[float64] = Float{}

func (f Float) eps() float64 {
	switch {
	case f.Eps == 0:
		return DefaultEpsilon
	case f.Eps < 0:
		return 0
	}

	return f.Eps
}

func (Float) Zero() float64 { return 0 }

func (Float) One() float64 { return 1 }

func (Float) FromInt(n int64) float64 { return float64(n) }

func (Float) FromFrac(num, den int64) float64 { return float64(num) / float64(den) }

// Parse accepts the same literals as Rat.Parse and converts to float64.
func (Float) Parse(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if strings.IndexByte(s, '/') >= 0 {
		r, err := Rat{}.Parse(s)
		if err != nil {
			return 0, err
		}
		v, _ := r.Float64()

		return v, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("Float.Parse(%q): %w", s, ErrParse)
	}

	return v, nil
}

func (Float) Add(a, b float64) float64 { return a + b }

func (Float) Sub(a, b float64) float64 { return a - b }

func (Float) Mul(a, b float64) float64 { return a * b }

func (Float) Quo(a, b float64) float64 { return a / b }

func (Float) Neg(a float64) float64 { return -a }

func (f Float) Sign(a float64) int {
	e := f.eps()
	switch {
	case a > e:
		return 1
	case a < -e:
		return -1
	}

	return 0
}

func (f Float) Cmp(a, b float64) int { return f.Sign(a - b) }

func (Float) String(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
