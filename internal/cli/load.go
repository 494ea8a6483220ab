// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/ineqfile"
	"github.com/katalvlaran/spindle/polytope"
)

// ErrNotSpindle indicates a command that needs apices on a polytope
// without an apex pair.
var ErrNotSpindle = errors.New("cli: not a spindle")

// load reads path and builds its polytope over f, wired to the context
// logger and cancellation.
func load[T any](ctx context.Context, f field.Field[T], path string) (*polytope.Polytope[T], *ineqfile.System, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sys, err := ineqfile.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	a, b, err := ineqfile.Decode(sys, f)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	p, err := polytope.FromInequalities(f, a, b,
		polytope.WithContext(ctx), polytope.WithLogger(logger))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	prog.done(fmt.Sprintf("Loaded %s: %d rows, %d vertices in R^%d", path, sys.Len(), p.NumVertices(), p.AmbientDim()))

	return p, sys, nil
}

// apexOptions maps the config onto Apices options.
func apexOptions(cfg Config) []polytope.ApexOption {
	opts := []polytope.ApexOption{polytope.WithCheckRedundancy(cfg.CheckRedundancy)}
	if cfg.PreferredApex != 0 {
		opts = append(opts, polytope.WithPreferredApex(cfg.PreferredApex))
	}

	return opts
}

// parseVector reads comma-separated scalars such as "1,-2,1/3".
func parseVector[T any](f field.Field[T], s string) ([]T, error) {
	parts := strings.Split(s, ",")
	out := make([]T, len(parts))
	for i, x := range parts {
		v, err := f.Parse(strings.TrimSpace(x))
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", s, err)
		}
		out[i] = v
	}

	return out, nil
}

// formatVector is the inverse of parseVector.
func formatVector[T any](f field.Field[T], v []T) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = f.String(x)
	}

	return strings.Join(parts, ",")
}

func floatField(cfg Config) field.Float {
	return field.Float{Eps: cfg.Epsilon}
}
