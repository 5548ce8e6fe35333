package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modgraph/export"
	"github.com/katalvlaran/modgraph/modular"
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the sample discrete, extended and algebra sessions",
		Long: `Run the three sample sessions over the configured primes: the discrete
graph, the extended graph, then union, intersection and complement.
With --format dot every graph of the session is rendered as its own DOT
digraph (discrete, extended, union, intersection, complement).

Examples:
  modgraph demo
  modgraph demo --format dot | dot -Tsvg -O`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			discrete := a.build(a.cfg.Exponent, false)
			extended := a.build(a.cfg.Exponent, true)
			g2 := a.build(a.cfg.Other, false)

			out := cmd.OutOrStdout()
			if a.cfg.Format == formatDOT {
				return a.plotDemo(cmd.Context(), out, discrete, extended, g2)
			}

			lw := &lineWriter{w: out}
			lw.printf("=== Discrete modular graph ===\n")
			if err := describe(out, discrete); err != nil {
				return err
			}

			lw.printf("\n=== Extended modular graph ===\n")
			if err := describe(out, extended); err != nil {
				return err
			}

			lw.printf("\n=== Algebraic operations ===\n")
			if lw.err != nil {
				return lw.err
			}

			return a.runAlgebra(out, discrete, g2)
		},
	}

	cmd.Flags().String("format", formatText, "Output format: text or dot")

	return cmd
}

// plotDemo sends every graph of the session through a DOT sink, one digraph
// per graph. An undefined complement is logged and left out.
func (a *app) plotDemo(ctx context.Context, w io.Writer, discrete, extended, g2 *modular.Graph) error {
	res, err := deriveAlgebra(discrete, g2)
	if err != nil {
		return err
	}

	plots := []struct {
		name string
		g    *modular.Graph
	}{
		{"discrete", discrete},
		{"extended", extended},
		{"union", res.union},
		{"intersection", res.intersection},
		{"complement", res.complement},
	}
	for _, p := range plots {
		if p.g == nil {
			a.logger.Warn("complement undefined, not plotted", "graph", discrete.String(), "error", res.complementErr)
			continue
		}
		if err := export.Plot(ctx, p.g, export.NewDOTSink(w, p.name)); err != nil {
			return err
		}
	}

	return nil
}
