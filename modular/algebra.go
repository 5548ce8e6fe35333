// SPDX-License-Identifier: MIT
// Package: modgraph/modular
//
// algebra.go — union, intersection and complement as lattice operations on
// the exponent over a fixed prime set.
//
// Contract:
//   • Every operation returns a new discrete Graph; operands are untouched.
//   • The result inherits the receiver's (first operand's) options.
//   • Errors are sentinels wrapped with the method name.

package modular

import (
	"fmt"

	"github.com/katalvlaran/modgraph/numtheory"
)

// CompleteExponent returns A* = lcm(p−1 : p ∈ ps). Every pairwise order
// divides some p−1, hence divides A*, so NewGraph(ps, A*) is complete.
// ErrExponentOverflow is returned when A* does not fit in an int64.
func CompleteExponent(ps PrimeSet) (int64, error) {
	if ps.Len() == 0 {
		return 0, fmt.Errorf("%s: %w", methodCompleteExponent, ErrEmptyPrimeSet)
	}
	phis := make([]int64, ps.Len())
	for i := range phis {
		phis[i] = ps.At(i) - 1
	}

	star, err := numtheory.LCMSlice(phis)
	if err != nil {
		return 0, fmt.Errorf("%s: %d primes: %w: %w", methodCompleteExponent, ps.Len(), ErrExponentOverflow, err)
	}

	return star, nil
}

// Union returns the discrete graph over the shared primes with
// A = lcm(g1.Exp(), g2.Exp()), or ErrExponentOverflow if the lcm exceeds int64.
func Union(g1, g2 *Graph) (*Graph, error) {
	if err := checkBinary(methodUnion, g1, g2); err != nil {
		return nil, err
	}

	exp, err := numtheory.LCM(g1.exp, g2.exp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodUnion, ErrExponentOverflow, err)
	}

	return newGraph(Discrete, g1.primes, exp, g1.cfg), nil
}

// Intersection returns the discrete graph over the shared primes with
// A = gcd(g1.Exp(), g2.Exp()).
func Intersection(g1, g2 *Graph) (*Graph, error) {
	if err := checkBinary(methodIntersection, g1, g2); err != nil {
		return nil, err
	}

	exp, err := numtheory.GCD(g1.exp, g2.exp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodIntersection, ErrExponentOverflow, err)
	}

	return newGraph(Discrete, g1.primes, exp, g1.cfg), nil
}

// Complement returns the discrete graph with A = A*/A, A* being the complete
// exponent of g's prime set.
//
// Errors:
//   - ErrNilGraph, ErrNotDiscrete on bad operands.
//   - ErrEmptyPrimeSet when g has no primes.
//   - ErrExponentOverflow when A* itself exceeds int64.
//   - ErrInexactComplement when A ≤ 0 or A does not divide A*; the
//     quotient is never truncated.
func Complement(g *Graph) (*Graph, error) {
	if err := checkOperand(methodComplement, g); err != nil {
		return nil, err
	}
	star, err := CompleteExponent(g.primes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplement, err)
	}
	if g.exp <= 0 || star%g.exp != 0 {
		return nil, fmt.Errorf("%s: A=%d, A*=%d: %w", methodComplement, g.exp, star, ErrInexactComplement)
	}

	return newGraph(Discrete, g.primes, star/g.exp, g.cfg), nil
}

// Union is the method form of Union(g, other).
func (g *Graph) Union(other *Graph) (*Graph, error) { return Union(g, other) }

// Intersection is the method form of Intersection(g, other).
func (g *Graph) Intersection(other *Graph) (*Graph, error) { return Intersection(g, other) }

// Complement is the method form of Complement(g).
func (g *Graph) Complement() (*Graph, error) { return Complement(g) }

// checkOperand validates a single algebra operand.
func checkOperand(method string, g *Graph) error {
	if g == nil {
		return fmt.Errorf("%s: %w", method, ErrNilGraph)
	}
	if g.kind != Discrete {
		return fmt.Errorf("%s: %s: %w", method, g, ErrNotDiscrete)
	}

	return nil
}

// checkBinary validates both operands and their prime sets. Priority:
// nil → kind → prime sets.
func checkBinary(method string, g1, g2 *Graph) error {
	if err := checkOperand(method, g1); err != nil {
		return err
	}
	if err := checkOperand(method, g2); err != nil {
		return err
	}
	if !g1.primes.Equal(g2.primes) {
		return fmt.Errorf("%s: %s vs %s: %w", method, g1.primes, g2.primes, ErrPrimeSetMismatch)
	}

	return nil
}
