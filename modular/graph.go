// SPDX-License-Identifier: MIT
// Package: modgraph/modular
//
// graph.go — the Graph value type (Discrete | Extended), constructors and
// read-only queries.
//
// Contract:
//   • A Graph is fully computed by its constructor and never mutated.
//   • Accessors return copies of maps and slices; the OrderMatrix is
//     read-only and shared.
//   • Adjacency() is nil for extended graphs, Weights() is nil for discrete
//     graphs. Kind()/IsExtended() tell which one is populated.

package modular

import (
	"fmt"
	"log/slog"
	"slices"
)

// Kind tags the variant of a Graph.
type Kind uint8

const (
	// Discrete graphs carry an unweighted Adjacency.
	Discrete Kind = iota
	// Extended graphs carry a complex WeightMap.
	Extended
)

// String returns "discrete" or "extended".
func (k Kind) String() string {
	switch k {
	case Discrete:
		return "discrete"
	case Extended:
		return "extended"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Graph is an immutable modular graph over a PrimeSet with exponent A.
type Graph struct {
	kind    Kind
	primes  PrimeSet
	exp     int64
	orders  *OrderMatrix
	adj     Adjacency // Discrete only
	weights WeightMap // Extended only
	cfg     config
}

// NewGraph builds the discrete modular graph over primes with exponent exp:
// edge p→q iff ord_q(p) divides exp.
//
// Inputs are not validated: primality and positivity of exp are the
// caller's responsibility. Duplicate primes collapse.
//
// Complexity: O(n² · √q_max) for the order matrix, O(n²) for the edges.
func NewGraph(primes []int64, exp int64, opts ...Option) *Graph {
	return newGraph(Discrete, NewPrimeSet(primes...), exp, newConfig(opts...))
}

// NewExtendedGraph builds the extended (complex-weighted) modular graph:
// w(p,q) = exp(iπ·exp/ord_q(p)) for every pair with an order.
func NewExtendedGraph(primes []int64, exp int64, opts ...Option) *Graph {
	return newGraph(Extended, NewPrimeSet(primes...), exp, newConfig(opts...))
}

// newGraph is the single construction path shared by both variants.
func newGraph(kind Kind, ps PrimeSet, exp int64, cfg config) *Graph {
	g := &Graph{
		kind:   kind,
		primes: ps,
		exp:    exp,
		orders: buildOrderMatrix(ps, cfg),
		cfg:    cfg,
	}
	switch kind {
	case Extended:
		g.weights = BuildWeights(g.orders, exp)
	default:
		g.adj = BuildAdjacency(g.orders, exp)
	}

	cfg.logger.Debug("modular graph built",
		slog.String("kind", kind.String()),
		slog.Int("primes", ps.Len()),
		slog.Int64("exp", exp),
		slog.Int("edges", g.EdgeCount()),
		slog.Int("workers", cfg.workers),
	)

	return g
}

// Kind returns the variant tag.
func (g *Graph) Kind() Kind { return g.kind }

// IsExtended reports whether g carries complex weights.
func (g *Graph) IsExtended() bool { return g.kind == Extended }

// Primes returns the prime set, ascending.
func (g *Graph) Primes() []int64 { return g.primes.Slice() }

// PrimeSet returns the prime set value.
func (g *Graph) PrimeSet() PrimeSet { return g.primes }

// Exp returns the exponent A.
func (g *Graph) Exp() int64 { return g.exp }

// OrderMatrix returns the order matrix. OrderMatrix has no mutating methods,
// so it is shared rather than copied.
func (g *Graph) OrderMatrix() *OrderMatrix { return g.orders }

// Adjacency returns a copy of the discrete edge relation; nil for extended
// graphs (see DiscreteProjection).
func (g *Graph) Adjacency() Adjacency { return g.adj.Clone() }

// Weights returns a copy of the weight map; nil for discrete graphs.
func (g *Graph) Weights() WeightMap { return g.weights.Clone() }

// Weight returns w(p,q) of an extended graph. ok is false for discrete
// graphs and for pairs without an order.
func (g *Graph) Weight(p, q int64) (complex128, bool) {
	if g.kind != Extended {
		return 0, false
	}

	return g.weights.Get(p, q)
}

// HasEdge reports whether p→q is an edge: adjacency membership for discrete
// graphs, weight presence for extended graphs.
func (g *Graph) HasEdge(p, q int64) bool {
	if g.kind == Extended {
		_, ok := g.weights.Get(p, q)
		return ok
	}

	return g.adj.Has(p, q)
}

// EdgeCount returns the number of directed edges (weights for extended).
func (g *Graph) EdgeCount() int {
	if g.kind == Extended {
		return g.weights.Len()
	}

	return g.adj.EdgeCount()
}

// DiscreteProjection returns the discrete relation implied by g.
// For discrete graphs this is Adjacency(). For extended graphs it keeps the
// pairs whose weight is exactly ±1, i.e. those whose order divides A; the
// result equals the adjacency of NewGraph over the same inputs.
func (g *Graph) DiscreteProjection() Adjacency {
	if g.kind != Extended {
		return g.Adjacency()
	}

	n := g.primes.Len()
	adj := make(Adjacency, n)
	for i := 0; i < n; i++ {
		p := g.primes.At(i)
		succ := make([]int64, 0, n)
		for q, z := range g.weights[p] {
			if isRealUnit(z) {
				succ = append(succ, q)
			}
		}
		slices.Sort(succ)
		adj[p] = succ
	}

	return adj
}

// IsComplete reports whether every ordered pair of distinct primes that has
// an order is an edge of the discrete projection. CompleteExponent yields a
// complete graph for any prime set.
func (g *Graph) IsComplete() bool {
	adj := g.adj
	if g.kind == Extended {
		adj = g.DiscreteProjection()
	}
	n := g.primes.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || g.orders.At(i, j) == 0 {
				continue
			}
			if !adj.Has(g.primes.At(i), g.primes.At(j)) {
				return false
			}
		}
	}

	return true
}

// String renders "ModularGraph(P=[3 5 7 11], A=6)" or
// "ExtendedModularGraph(P=[...], A=6)".
func (g *Graph) String() string {
	name := "ModularGraph"
	if g.kind == Extended {
		name = "ExtendedModularGraph"
	}

	return fmt.Sprintf("%s(P=%s, A=%d)", name, g.primes, g.exp)
}
