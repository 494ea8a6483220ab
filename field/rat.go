// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math/big"
	"strings"
)

// Rat is exact rational arithmetic over *big.Rat.
// The zero value is ready to use.
type Rat struct{}

var _ Field[*big.Rat] = Rat{}

func (Rat) Zero() *big.Rat { return new(big.Rat) }

func (Rat) One() *big.Rat { return big.NewRat(1, 1) }

func (Rat) FromInt(n int64) *big.Rat { return new(big.Rat).SetInt64(n) }

func (Rat) FromFrac(num, den int64) *big.Rat { return big.NewRat(num, den) }

// Parse accepts "n", "n/d", "+n/d" and decimal literals such as "0.25".
func (Rat) Parse(s string) (*big.Rat, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	if s == "" {
		return nil, fmt.Errorf("Rat.Parse(%q): %w", s, ErrParse)
	}
	if i := strings.IndexByte(s, '/'); i >= 0 {
		den, ok := new(big.Int).SetString(s[i+1:], 10)
		if !ok {
			return nil, fmt.Errorf("Rat.Parse(%q): %w", s, ErrParse)
		}
		if den.Sign() == 0 {
			return nil, fmt.Errorf("Rat.Parse(%q): %w", s, ErrDivByZero)
		}
	}
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("Rat.Parse(%q): %w", s, ErrParse)
	}

	return r, nil
}

func (Rat) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (Rat) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (Rat) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (Rat) Quo(a, b *big.Rat) *big.Rat { return new(big.Rat).Quo(a, b) }

func (Rat) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (Rat) Sign(a *big.Rat) int { return a.Sign() }

func (Rat) Cmp(a, b *big.Rat) int { return a.Cmp(b) }

// String prints integers without the "/1" suffix.
func (Rat) String(a *big.Rat) string { return a.RatString() }
