// Package modular builds directed graphs over a finite set of primes whose
// edges are decided by multiplicative orders and a single integer exponent A.
//
// Construction pipeline:
//
//	primes ──► PrimeSet ──► BuildOrderMatrix ──┬─► BuildAdjacency (Discrete)
//	                                            └─► BuildWeights   (Extended)
//
//   - OrderMatrix[p][q] = ord_q(p), the multiplicative order of p modulo q,
//     or "absent" on the diagonal. For distinct primes the order always
//     exists, lies in [1, q−1] and divides q−1.
//   - Discrete graph: edge p→q iff ord_q(p) divides A.
//   - Extended graph: every pair with an order carries the unit-circle weight
//     exp(iπ·A/ord_q(p)). When ord_q(p) divides A the weight is exactly +1
//     (even quotient) or −1 (odd quotient), so the discrete edge set is the
//     set of pairs whose weight is real (see Graph.DiscreteProjection).
//
// Both variants are the same Graph type, tagged with a Kind (Discrete or
// Extended). Graphs are computed fully at construction and never mutated;
// accessors hand out copies of anything mutable.
//
// Algebra (fixed prime set, lattice operations on A):
//
//	Union(G1, G2)        A = lcm(A1, A2)
//	Intersection(G1, G2) A = gcd(A1, A2)
//	Complement(G)        A = A*/A, A* = lcm(p−1 : p ∈ P) (CompleteExponent)
//
// Union and Intersection require equal prime sets (ErrPrimeSetMismatch).
// Complement requires A to divide A* exactly (ErrInexactComplement); the
// quotient is never truncated.
//
// Options:
//
//	WithWorkers(n)  fan out order-matrix rows over n goroutines (errgroup)
//	WithLogger(l)   structured debug logging of constructions (log/slog)
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNilGraph          nil *Graph operand
//	ErrNotDiscrete       algebra on an extended graph
//	ErrPrimeSetMismatch  operands over different prime sets
//	ErrEmptyPrimeSet     complete exponent of an empty prime set
//	ErrInexactComplement A does not divide A*
//	ErrExponentOverflow  lcm/gcd/A* does not fit in an int64
//
// Example:
//
//	g := modular.NewGraph([]int64{3, 5, 7, 11}, 6)
//	g.Adjacency()[3]          // [7]
//	u, _ := g.Union(modular.NewGraph([]int64{3, 5, 7, 11}, 10))
//	u.Exp()                   // 30
package modular
