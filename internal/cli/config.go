// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/spindle/field"
)

const (
	arithRational = "rational"
	arithFloat    = "float"
)

// ErrConfig indicates an invalid configuration value.
var ErrConfig = errors.New("cli: invalid config")

// Config holds the settings shared by all commands.
//
// Example file:
//
//	arithmetic = "float"
//	epsilon = 1e-9
//	check_redundancy = true
//	preferred_apex = 0
//	apex_a = 0
//	apex_b = 0
//	verbose = false
type Config struct {
	Arithmetic      string  `toml:"arithmetic"`
	Epsilon         float64 `toml:"epsilon"`
	CheckRedundancy bool    `toml:"check_redundancy"`
	PreferredApex   int     `toml:"preferred_apex"`
	ApexA           int     `toml:"apex_a"`
	ApexB           int     `toml:"apex_b"`
	Verbose         bool    `toml:"verbose"`
}

// DefaultConfig returns exact arithmetic with the redundancy check on.
func DefaultConfig() Config {
	return Config{
		Arithmetic:      arithRational,
		Epsilon:         field.DefaultEpsilon,
		CheckRedundancy: true,
	}
}

// LoadConfig reads a TOML file over DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q: %w", path, keys[0].String(), ErrConfig)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the arithmetic name and the vertex indices.
func (c Config) Validate() error {
	switch c.Arithmetic {
	case arithRational, arithFloat:
	default:
		return fmt.Errorf("arithmetic %q, want %q or %q: %w", c.Arithmetic, arithRational, arithFloat, ErrConfig)
	}
	if c.PreferredApex < 0 || c.ApexA < 0 || c.ApexB < 0 {
		return fmt.Errorf("vertex indices are 1-based, 0 means unset: %w", ErrConfig)
	}
	if (c.ApexA == 0) != (c.ApexB == 0) {
		return fmt.Errorf("apex_a and apex_b must be set together: %w", ErrConfig)
	}

	return nil
}

// Float reports whether float64 arithmetic is selected.
func (c Config) Float() bool { return c.Arithmetic == arithFloat }
