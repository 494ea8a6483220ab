// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spindle/field"
)

// newGraphCmd creates the graph command. It prints the skeleton edges as
// "u v" lines, or with --from the distance of every vertex from one
// vertex.
func newGraphCmd() *cobra.Command {
	var from int

	cmd := &cobra.Command{
		Use:   "graph FILE",
		Short: "Print the 1-skeleton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := report{w: cmd.OutOrStdout()}
			if cfg := configFromContext(ctx); cfg.Float() {
				return runGraph[float64](ctx, out, floatField(cfg), args[0], from)
			}
			return runGraph[*big.Rat](ctx, out, field.Rat{}, args[0], from)
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "print distances from this vertex (1-based)")

	return cmd
}

func runGraph[T any](ctx context.Context, out report, f field.Field[T], path string, from int) error {
	p, _, err := load(ctx, f, path)
	if err != nil {
		return err
	}
	g, err := p.Graph()
	if err != nil {
		return err
	}
	st := g.Stats()
	loggerFromContext(ctx).Info("Skeleton",
		"vertices", st.Vertices, "edges", st.Edges, "min_degree", st.MinDegree, "max_degree", st.MaxDegree)

	if from == 0 {
		for _, e := range g.Edges() {
			fmt.Fprintf(out.w, "%d %d\n", e[0], e[1])
		}
		return nil
	}
	for v := 1; v <= p.NumVertices(); v++ {
		d, err := p.Dist(from, v)
		if err != nil {
			return err
		}
		fmt.Fprintf(out.w, "%d %d\n", v, d)
	}

	return nil
}
