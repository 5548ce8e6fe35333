// Package modgraph builds directed graphs over a finite set of primes from
// multiplicative-order relations and a single exponent A.
//
// What is inside:
//
//	numtheory/ — gcd/lcm, divisors, modular powers, multiplicative order
//	modular/   — PrimeSet, OrderMatrix, discrete and extended Graph, algebra
//	core/      — thread-safe directed container with complex edge weights
//	export/    — modular.Graph → core.Graph adapter and DOT rendering sink
//	cmd/modgraph — command-line driver (graph, algebra, demo)
//
// Quick example, P = {3,5,7,11}, A = 6:
//
//	ord(3 mod 5) = 4  ∤ 6   →  no edge 3→5
//	ord(3 mod 7) = 6  | 6   →  edge 3→7, extended weight exp(iπ) = −1
//
//	g := modular.NewGraph([]int64{3, 5, 7, 11}, 6)
//	u, _ := g.Union(modular.NewGraph([]int64{3, 5, 7, 11}, 10)) // A = 30
//
//	go get github.com/katalvlaran/modgraph
package modgraph
