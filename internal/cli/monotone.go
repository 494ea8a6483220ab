// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spindle/field"
)

// newMonotoneCmd creates the monotone command: the monotone diameter for
// each --objective, and their maximum. Without --objective every generic
// orientation is enumerated.
func newMonotoneCmd() *cobra.Command {
	var (
		objectives []string
		directions bool
	)

	cmd := &cobra.Command{
		Use:   "monotone FILE",
		Short: "Compute monotone diameters for linear objectives",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := report{w: cmd.OutOrStdout()}
			if cfg := configFromContext(ctx); cfg.Float() {
				return runMonotone[float64](ctx, out, floatField(cfg), args[0], objectives, directions)
			}
			return runMonotone[*big.Rat](ctx, out, field.Rat{}, args[0], objectives, directions)
		},
	}
	cmd.Flags().StringArrayVar(&objectives, "objective", nil, `objective vector such as "1,2,3" (repeatable)`)
	cmd.Flags().BoolVar(&directions, "directions", false, "also list the edge directions")

	return cmd
}

func runMonotone[T any](ctx context.Context, out report, f field.Field[T], path string, objectives []string, directions bool) error {
	p, _, err := load(ctx, f, path)
	if err != nil {
		return err
	}
	objs := make([][]T, len(objectives))
	for i, s := range objectives {
		if objs[i], err = parseVector(f, s); err != nil {
			return err
		}
	}

	out.title("%s", path)
	if directions {
		dirs, err := p.EdgeDirections()
		if err != nil {
			return err
		}
		out.keyNumber("directions", len(dirs))
		for _, d := range dirs {
			out.detail("(%s)", formatVector(f, d))
		}
	}
	if len(objs) == 0 {
		prog := newProgress(loggerFromContext(ctx))
		objs, err = p.GenericObjectives()
		if err != nil {
			return err
		}
		prog.done("orientations enumerated")
		out.keyNumber("regions", len(objs))
		best, err := p.MonotoneDiameter(objs)
		if err != nil {
			return err
		}
		out.keyNumber("diameter", best)

		return nil
	}
	for i, c := range objs {
		r, err := p.OrientedDiameter(c)
		if err != nil {
			return err
		}
		out.detail("objective %d (%s): sink %d, diameter %d", i+1, formatVector(f, c), r.Sink, r.Diameter)
	}
	best, err := p.MonotoneDiameter(objs)
	if err != nil {
		return err
	}
	out.keyNumber("diameter", best)

	return nil
}
