// SPDX-License-Identifier: MIT

// Package cli implements the spindle command-line interface.
//
// Every command reads a labeled inequality file (see package ineqfile),
// builds the face lattice with package polytope and prints a styled
// report.
//
// # Commands
//
//   - analyze: dimension, f-vector, facet classification and apices
//   - facets: write the irredundant facet system
//   - graph: the 1-skeleton as an edge list, or distances from a vertex
//   - goodfaces: good 2-faces for an apex pair
//   - monotone: monotone diameters for linear objectives
//
// # Configuration
//
// A TOML file given with --config sets defaults; flags override it. The
// arithmetic is exact (big rationals) unless --float or
// arithmetic = "float" selects float64 with a tolerance.
//
// # Logging
//
// --verbose (-v) switches to debug level, which includes the engine's cache
// records. Loggers travel through context.Context.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs the elapsed time of one operation.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext returns the attached config or DefaultConfig().
func configFromContext(ctx context.Context) Config {
	if c, ok := ctx.Value(configKey).(Config); ok {
		return c
	}
	return DefaultConfig()
}
