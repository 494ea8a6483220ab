// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spindle/field"
	"github.com/katalvlaran/spindle/ineqfile"
)

// newFacetsCmd creates the facets command, which writes the irredundant
// facet system of a file in the same text format.
func newFacetsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "facets FILE",
		Short: "Write the irredundant facet rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if output != "" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			ctx := cmd.Context()
			if cfg := configFromContext(ctx); cfg.Float() {
				return runFacets[float64](ctx, w, floatField(cfg), args[0])
			}
			return runFacets[*big.Rat](ctx, w, field.Rat{}, args[0])
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runFacets[T any](ctx context.Context, w io.Writer, f field.Field[T], path string) error {
	p, sys, err := load(ctx, f, path)
	if err != nil {
		return err
	}
	fs, err := p.FacetSystem()
	if err != nil {
		return err
	}
	var labels []string
	if sys.Labeled() {
		labels = make([]string, len(fs.Indices))
		for k, i := range fs.Indices {
			labels[k] = sys.Labels[i-1]
		}
	}
	loggerFromContext(ctx).Info("Facets selected", "kept", len(fs.Indices), "rows", sys.Len())

	return ineqfile.Write(w, f, labels, fs.A, fs.B)
}
