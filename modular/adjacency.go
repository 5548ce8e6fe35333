// SPDX-License-Identifier: MIT
// Package: modgraph/modular
//
// adjacency.go — discrete edge relation and complex weights derived from an
// OrderMatrix and an exponent.
//
// Determinism:
//   • Successor lists follow the ascending prime order.
//   • Weights whose phase is an integer are snapped to exactly ±1, so the
//     discrete projection of an extended graph never depends on rounding.

package modular

import (
	"math"
	"math/cmplx"
	"slices"
)

// Adjacency maps every prime to its ascending list of successors.
// Every prime of the set has an entry (possibly empty); no self-loops.
type Adjacency map[int64][]int64

// Has reports whether the edge p→q is present.
func (a Adjacency) Has(p, q int64) bool {
	_, ok := slices.BinarySearch(a[p], q)
	return ok
}

// EdgeCount returns the number of directed edges.
func (a Adjacency) EdgeCount() int {
	total := 0
	for _, qs := range a {
		total += len(qs)
	}

	return total
}

// Clone returns a deep copy.
func (a Adjacency) Clone() Adjacency {
	if a == nil {
		return nil
	}
	out := make(Adjacency, len(a))
	for p, qs := range a {
		out[p] = slices.Clone(qs)
	}

	return out
}

// WeightMap maps (p, q), p≠q, to a unit-circle weight. Pairs without an
// order are absent.
type WeightMap map[int64]map[int64]complex128

// Get returns the weight of p→q and whether it is defined.
func (w WeightMap) Get(p, q int64) (complex128, bool) {
	row, ok := w[p]
	if !ok {
		return 0, false
	}
	z, ok := row[q]

	return z, ok
}

// Len returns the number of defined weights.
func (w WeightMap) Len() int {
	total := 0
	for _, row := range w {
		total += len(row)
	}

	return total
}

// Clone returns a deep copy.
func (w WeightMap) Clone() WeightMap {
	if w == nil {
		return nil
	}
	out := make(WeightMap, len(w))
	for p, row := range w {
		r := make(map[int64]complex128, len(row))
		for q, z := range row {
			r[q] = z
		}
		out[p] = r
	}

	return out
}

// BuildAdjacency derives the discrete relation: p→q iff p≠q, ord_q(p)
// exists and divides exp.
// Complexity: O(n²).
func BuildAdjacency(m *OrderMatrix, exp int64) Adjacency {
	n := m.Len()
	adj := make(Adjacency, n)
	for i := 0; i < n; i++ {
		p := m.primes.At(i)
		succ := make([]int64, 0, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if d := m.At(i, j); d != 0 && exp%d == 0 {
				succ = append(succ, m.primes.At(j))
			}
		}
		adj[p] = succ
	}

	return adj
}

// BuildWeights derives w(p,q) = exp(iπ·exp/ord_q(p)) for every pair with an
// order. Integer phases map to exactly +1 (even) or −1 (odd).
// Complexity: O(n²).
func BuildWeights(m *OrderMatrix, exp int64) WeightMap {
	n := m.Len()
	w := make(WeightMap, n)
	for i := 0; i < n; i++ {
		row := make(map[int64]complex128, n)
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if d := m.At(i, j); d != 0 {
				row[m.primes.At(j)] = unitWeight(exp, d)
			}
		}
		w[m.primes.At(i)] = row
	}

	return w
}

// unitWeight returns exp(iπ·num/den), den > 0.
//
// The phase is reduced mod 2 in integers first (parity of the quotient plus
// the remainder fraction), so the angle stays exact for any int64 num.
func unitWeight(num, den int64) complex128 {
	q, r := num/den, num%den
	if r < 0 {
		r += den
		q--
	}
	if r == 0 {
		if q&1 == 0 {
			return 1
		}
		return -1
	}
	phase := float64(q&1) + float64(r)/float64(den)

	return cmplx.Exp(complex(0, math.Pi*phase))
}

// isRealUnit reports whether z is exactly +1 or −1.
func isRealUnit(z complex128) bool {
	return imag(z) == 0 && (real(z) == 1 || real(z) == -1)
}
