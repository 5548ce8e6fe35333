// SPDX-License-Identifier: MIT
// Package: modgraph/modular
//
// order_matrix.go — pairwise multiplicative-order matrix over a PrimeSet.
//
// Contract:
//   • cell(i,i) is absent (raw 0); cell(i,j), i≠j, is ord_{P[j]}(P[i]) or
//     absent when that order does not exist.
//   • The matrix depends on the prime set only, never on the exponent.
//   • Rows are independent; with WithWorkers(n>1) they are computed
//     concurrently and the result is identical to the sequential one.
//
// Complexity:
//   • Time O(n² · √q_max), Space O(n²).

package modular

import (
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/modgraph/numtheory"
)

// OrderMatrix holds ord_q(p) for every ordered pair (p, q) of a PrimeSet,
// stored row-major with rows indexed by p and columns by q.
// A raw value of 0 means "no order" (diagonal, or non-coprime inputs).
type OrderMatrix struct {
	primes PrimeSet
	cells  []int64 // len n*n
}

// BuildOrderMatrix computes the order matrix of ps.
//
// Implementation:
//   - Stage 1: allocate n×n cells.
//   - Stage 2: fill each row i with MultiplicativeOrder(P[i], P[j]) for j≠i,
//     sequentially or through an errgroup bounded by the configured workers.
//
// Each row writes a disjoint slice of cells, so no locking is needed.
func BuildOrderMatrix(ps PrimeSet, opts ...Option) *OrderMatrix {
	return buildOrderMatrix(ps, newConfig(opts...))
}

func buildOrderMatrix(ps PrimeSet, cfg config) *OrderMatrix {
	n := ps.Len()
	m := &OrderMatrix{primes: ps, cells: make([]int64, n*n)}

	if cfg.workers <= 1 || n < 2 {
		for i := 0; i < n; i++ {
			m.fillRow(i)
		}
		return m
	}

	var eg errgroup.Group
	eg.SetLimit(cfg.workers)
	for i := 0; i < n; i++ {
		i := i
		eg.Go(func() error {
			m.fillRow(i)
			return nil
		})
	}
	// Rows never fail; Wait only joins the goroutines.
	_ = eg.Wait()

	return m
}

// fillRow computes row i in place.
func (m *OrderMatrix) fillRow(i int) {
	n := m.primes.Len()
	p := m.primes.At(i)
	row := m.cells[i*n : (i+1)*n]
	for j := 0; j < n; j++ {
		if i == j {
			continue // self-pair stays absent
		}
		if d, ok := numtheory.MultiplicativeOrder(p, m.primes.At(j)); ok {
			row[j] = d
		}
	}
}

// Primes returns the prime set indexing rows and columns.
func (m *OrderMatrix) Primes() PrimeSet { return m.primes }

// Len returns n, the side of the matrix.
func (m *OrderMatrix) Len() int { return m.primes.Len() }

// At returns the raw cell (i, j); 0 means no order. Panics on out-of-range
// indices, like slice indexing.
func (m *OrderMatrix) At(i, j int) int64 {
	n := m.primes.Len()
	if i < 0 || j < 0 || i >= n || j >= n {
		panic("modular: OrderMatrix.At index out of range")
	}

	return m.cells[i*n+j]
}

// Order returns ord_q(p). ok is false when p == q, when either prime is not
// in the set, or when the order does not exist.
func (m *OrderMatrix) Order(p, q int64) (int64, bool) {
	i, ok := m.primes.Index(p)
	if !ok {
		return 0, false
	}
	j, ok := m.primes.Index(q)
	if !ok {
		return 0, false
	}
	d := m.cells[i*m.primes.Len()+j]

	return d, d != 0
}

// Rows returns a deep copy of the matrix as n rows of n raw cells.
func (m *OrderMatrix) Rows() [][]int64 {
	n := m.primes.Len()
	out := make([][]int64, n)
	for i := range out {
		out[i] = make([]int64, n)
		copy(out[i], m.cells[i*n:(i+1)*n])
	}

	return out
}

// Map returns the matrix as nested maps p → q → raw order, including the
// zero diagonal.
func (m *OrderMatrix) Map() map[int64]map[int64]int64 {
	n := m.primes.Len()
	out := make(map[int64]map[int64]int64, n)
	for i := 0; i < n; i++ {
		row := make(map[int64]int64, n)
		for j := 0; j < n; j++ {
			row[m.primes.At(j)] = m.cells[i*n+j]
		}
		out[m.primes.At(i)] = row
	}

	return out
}
