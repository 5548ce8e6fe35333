package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/modgraph/modular"
)

func newAlgebraCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "algebra",
		Short: "Union, intersection and complement of modular graphs",
		Long: `Build G1 (exponent --exp) and G2 (exponent --other) over the same primes
and print the exponents of G1 ∪ G2 (lcm), G1 ∩ G2 (gcd) and the complement
of G1 (A*/A with A* = lcm(p−1)).

Examples:
  modgraph algebra --primes 3,5,7,11 --exp 6 --other 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Other < 1 {
				return fmt.Errorf("invalid configuration: other=%d: %w", a.cfg.Other, errBadExponent)
			}
			g1 := a.build(a.cfg.Exponent, false)
			g2 := a.build(a.cfg.Other, false)

			return a.runAlgebra(cmd.OutOrStdout(), g1, g2)
		},
	}

	f := cmd.Flags()
	f.Int64Slice("primes", nil, "Comma-separated primes (default 3,5,7,11)")
	f.Int64("exp", 0, "Exponent of G1 (default 6)")
	f.Int64("other", 0, "Exponent of G2 (default 10)")

	return cmd
}

// algebraResult holds the graphs derived from (G1, G2). complement is nil
// when A*/A is undefined; complementErr then says why.
type algebraResult struct {
	union, intersection, complement *modular.Graph
	complementErr                   error
}

// deriveAlgebra computes union, intersection and complement of g1. Union and
// intersection errors abort; a complement error is kept in the result.
func deriveAlgebra(g1, g2 *modular.Graph) (algebraResult, error) {
	var res algebraResult
	var err error
	if res.union, err = g1.Union(g2); err != nil {
		return res, err
	}
	if res.intersection, err = g1.Intersection(g2); err != nil {
		return res, err
	}
	res.complement, res.complementErr = g1.Complement()

	return res, nil
}

// runAlgebra prints the three derived exponents. An inexact complement is
// reported on its line and logged; it does not abort the run.
func (a *app) runAlgebra(w io.Writer, g1, g2 *modular.Graph) error {
	lw := &lineWriter{w: w}
	lw.printf("G1: %s\n", g1)
	lw.printf("G2: %s\n", g2)

	res, err := deriveAlgebra(g1, g2)
	if err != nil {
		return err
	}
	lw.printf("Union exponent: %d\n", res.union.Exp())
	lw.printf("Intersection exponent: %d\n", res.intersection.Exp())

	if res.complementErr != nil {
		a.logger.Warn("complement undefined", "graph", g1.String(), "error", res.complementErr)
		lw.printf("Complement exponent: undefined (%v)\n", res.complementErr)
		return lw.err
	}
	lw.printf("Complement exponent: %d\n", res.complement.Exp())

	return lw.err
}
