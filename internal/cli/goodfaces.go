// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spindle/field"
)

// newGoodFacesCmd creates the goodfaces command. Without --apex-a and
// --apex-b (or apex_a/apex_b in the config) the apices are searched.
func newGoodFacesCmd() *cobra.Command {
	var apexA, apexB int

	cmd := &cobra.Command{
		Use:   "goodfaces FILE",
		Short: "List the good 2-faces for an apex pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if cmd.Flags().Changed("apex-a") {
				cfg.ApexA = apexA
			}
			if cmd.Flags().Changed("apex-b") {
				cfg.ApexB = apexB
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			out := report{w: cmd.OutOrStdout()}
			if cfg.Float() {
				return runGoodFaces[float64](ctx, out, floatField(cfg), args[0], cfg)
			}
			return runGoodFaces[*big.Rat](ctx, out, field.Rat{}, args[0], cfg)
		},
	}
	cmd.Flags().IntVar(&apexA, "apex-a", 0, "first apex (1-based)")
	cmd.Flags().IntVar(&apexB, "apex-b", 0, "second apex (1-based)")

	return cmd
}

func runGoodFaces[T any](ctx context.Context, out report, f field.Field[T], path string, cfg Config) error {
	p, sys, err := load(ctx, f, path)
	if err != nil {
		return err
	}
	a, b := cfg.ApexA, cfg.ApexB
	if a == 0 {
		pair, ok, err := p.Apices(apexOptions(cfg)...)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s: %w", path, ErrNotSpindle)
		}
		a, b = pair[0], pair[1]
	}
	n2, err := p.NFacesOfDim(2)
	if err != nil {
		return err
	}
	good, err := p.Good2Faces(a, b)
	if err != nil {
		return err
	}

	out.title("%s: apices %d and %d", path, a, b)
	out.keyNumber("2-faces", n2)
	out.keyNumber("good", len(good))
	for _, st := range good {
		out.detail("face %s: edges %d-%d and %d-%d, sides [%s] | [%s]",
			rowNames(sys.Labels, st.Face),
			st.Edges[0][0], st.Edges[0][1], st.Edges[1][0], st.Edges[1][1],
			joinInts(st.Sides[0]), joinInts(st.Sides[1]))
	}
	if len(good) == 0 {
		out.warning("no good 2-face")
	}

	return nil
}
