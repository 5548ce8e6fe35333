package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modgraph/export"
	"github.com/katalvlaran/modgraph/modular"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print one modular graph",
		Long: `Build the graph over --primes with exponent --exp and print its primes,
exponent, order matrix and adjacency (or weights with --extended).
With --format dot the graph is rendered as Graphviz DOT instead.

Examples:
  modgraph graph --primes 3,5,7,11 --exp 6
  modgraph graph --primes 3,5,7,11 --exp 6 --extended
  modgraph graph --exp 60 --format dot | dot -Tsvg > g.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.build(a.cfg.Exponent, a.cfg.Extended)
			out := cmd.OutOrStdout()
			if a.cfg.Format == formatDOT {
				return export.Plot(cmd.Context(), g, export.NewDOTSink(out, "modular"))
			}

			return describe(out, g)
		},
	}

	f := cmd.Flags()
	f.Int64Slice("primes", nil, "Comma-separated primes (default 3,5,7,11)")
	f.Int64("exp", 0, "Exponent A (default 6)")
	f.Bool("extended", false, "Build the complex-weighted graph")
	f.String("format", formatText, "Output format: text or dot")

	return cmd
}

// describe prints g in the same order as the sample driver: identity,
// primes, exponent, capability, order matrix, then edges.
func describe(w io.Writer, g *modular.Graph) error {
	ew := &lineWriter{w: w}
	ew.printf("Graph: %s\n", g)
	ew.printf("Primes: %v\n", g.Primes())
	ew.printf("Exponent: %d\n", g.Exp())
	ew.printf("Is extended: %t\n", g.IsExtended())
	ew.printf("Order matrix:\n")
	if ew.err == nil {
		ew.err = writeOrderMatrix(w, g.OrderMatrix())
	}

	primes := g.Primes()
	if g.IsExtended() {
		ew.printf("Weights:\n")
		for _, p := range primes {
			for _, q := range primes {
				if z, ok := g.Weight(p, q); ok {
					ew.printf("  w(%d->%d) = %.4f\n", p, q, z)
				}
			}
		}
		return ew.err
	}

	adj := g.Adjacency()
	ew.printf("Adjacency:\n")
	for _, p := range primes {
		ew.printf("  %d -> %v\n", p, adj[p])
	}
	ew.printf("Edges: %d (complete: %t)\n", g.EdgeCount(), g.IsComplete())

	return ew.err
}

// writeOrderMatrix renders the matrix as an aligned table; rows are bases,
// columns are moduli.
func writeOrderMatrix(w io.Writer, m *modular.OrderMatrix) error {
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', tabwriter.AlignRight)
	ps := m.Primes()
	fmt.Fprint(tw, "  \t")
	for j := 0; j < ps.Len(); j++ {
		fmt.Fprintf(tw, "%d\t", ps.At(j))
	}
	fmt.Fprintln(tw)
	for i := 0; i < ps.Len(); i++ {
		fmt.Fprintf(tw, "  %d\t", ps.At(i))
		for j := 0; j < ps.Len(); j++ {
			fmt.Fprintf(tw, "%d\t", m.At(i, j))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// lineWriter keeps the first write error and drops later writes.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...interface{}) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}
