// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/polytope"
)

// newAnalyzeCmd creates the analyze command: the lattice summary of one
// inequality file.
func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze FILE",
		Short: "Report dimension, f-vector, facets and apices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := report{w: cmd.OutOrStdout()}
			if cfg := configFromContext(ctx); cfg.Float() {
				return runAnalyze[float64](ctx, out, floatField(cfg), args[0])
			}
			return runAnalyze[*big.Rat](ctx, out, field.Rat{}, args[0])
		},
	}
}

func runAnalyze[T any](ctx context.Context, out report, f field.Field[T], path string) error {
	cfg := configFromContext(ctx)
	p, sys, err := load(ctx, f, path)
	if err != nil {
		return err
	}
	d, err := p.Dim()
	if err != nil {
		return err
	}
	fv, err := p.FVector()
	if err != nil {
		return err
	}
	facets, err := p.Facets()
	if err != nil {
		return err
	}
	implicit, err := p.ImplicitEquations()
	if err != nil {
		return err
	}
	kinds, err := p.ClassifyRows()
	if err != nil {
		return err
	}
	st, err := p.SkeletonStats()
	if err != nil {
		return err
	}
	pair, ok, err := p.Apices(apexOptions(cfg)...)
	if err != nil {
		return err
	}

	out.title("%s", path)
	out.keyNumber("ambient dim", p.AmbientDim())
	out.keyNumber("rows", p.NumHalfspaces())
	out.keyNumber("vertices", p.NumVertices())
	out.keyNumber("dimension", d)
	out.keyValue("f-vector", joinInts(fv))
	out.keyValue("facets", rowNames(sys.Labels, facets))
	out.keyValue("implicit", rowNames(sys.Labels, implicit))
	out.keyValue("edges", fmt.Sprintf("%d (%d degenerate pairs)", st.Edges, st.Degenerate))
	for i, k := range kinds {
		if k != polytope.RowFacet {
			out.detail("row %s: %s", rowNames(sys.Labels, []int{i + 1}), k)
		}
	}
	if ok {
		out.success("spindle with apices %d and %d", pair[0], pair[1])
	} else {
		out.warning("not a spindle")
	}

	return nil
}
