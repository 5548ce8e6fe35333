// SPDX-License-Identifier: MIT
// Package: modgraph/numtheory
//
// arith.go — gcd/lcm, divisors, modular exponentiation and primality.
//
// Contract:
//   • All helpers are pure and total: no panics for any int64 input.
//   • Signs are ignored where the mathematical object is sign-free (gcd, lcm).
//   • gcd/lcm results are exact or ErrOverflow; they never wrap.
//   • Results that are undefined (PowMod with mod < 1, Divisors of n < 1)
//     collapse to the zero value; callers that care check inputs first.

package numtheory

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"modernc.org/mathutil"
)

// GCD returns the greatest common divisor of |a| and |b|.
// GCD(0, 0) == 0 and GCD(x, 0) == |x|.
// The only unrepresentable result is 2^63 (operands drawn from {0, MinInt64}),
// reported as ErrOverflow.
// Complexity: O(log min(|a|,|b|)).
func GCD(a, b int64) (int64, error) {
	g := gcdUint64(abs64(a), abs64(b))
	if g > math.MaxInt64 {
		return 0, fmt.Errorf("GCD(%d, %d): %w", a, b, ErrOverflow)
	}

	return int64(g), nil
}

// LCM returns the least common multiple of |a| and |b|; 0 if either is 0.
// ErrOverflow is returned when the lcm exceeds MaxInt64.
// Complexity: O(log min(|a|,|b|)).
func LCM(a, b int64) (int64, error) {
	l, ok := lcmUint64(abs64(a), abs64(b))
	if !ok {
		return 0, fmt.Errorf("LCM(%d, %d): %w", a, b, ErrOverflow)
	}

	return l, nil
}

// LCMSlice folds LCM over xs. An empty slice yields 0 (no common multiple is
// defined for the empty family in this package). The fold stops at the first
// overflow and reports it as ErrOverflow.
func LCMSlice(xs []int64) (int64, error) {
	if len(xs) == 0 {
		return 0, nil
	}
	acc := abs64(xs[0])
	for _, x := range xs[1:] {
		next, ok := lcmUint64(acc, abs64(x))
		if !ok {
			return 0, fmt.Errorf("LCMSlice: lcm(%d, %d): %w", acc, x, ErrOverflow)
		}
		acc = uint64(next)
	}
	if acc > math.MaxInt64 {
		return 0, fmt.Errorf("LCMSlice: |%d|: %w", xs[0], ErrOverflow)
	}

	return int64(acc), nil
}

// abs64 returns |x| as uint64. MinInt64 maps to 1<<63 without overflow.
func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// gcdUint64 handles the zero cases mathutil leaves to the caller.
func gcdUint64(a, b uint64) uint64 {
	switch {
	case a == 0:
		return b
	case b == 0:
		return a
	}

	return mathutil.GCDUint64(a, b)
}

// lcmUint64 returns lcm(a, b) and false when it does not fit in an int64.
// Dividing by the gcd first keeps the product minimal; bits.Mul64 exposes the
// high word so wrap-around cannot go unnoticed.
func lcmUint64(a, b uint64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	hi, lo := bits.Mul64(a/gcdUint64(a, b), b)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}

// Divisors returns every positive divisor of n in ascending order.
// For n < 1 it returns nil.
//
// Trial division runs i over [1, √n]; for each hit both i and n/i are
// collected, the set is deduplicated (perfect squares) and sorted.
// Complexity: O(√n + k·log k), k = number of divisors.
func Divisors(n int64) []int64 {
	if n < 1 {
		return nil
	}

	small := make([]int64, 0, 16)
	large := make([]int64, 0, 16)
	// i <= n/i instead of i*i <= n keeps the bound overflow-free.
	for i := int64(1); i <= n/i; i++ {
		if n%i != 0 {
			continue
		}
		small = append(small, i)
		if j := n / i; j != i {
			large = append(large, j)
		}
	}

	out := make([]int64, 0, len(small)+len(large))
	out = append(out, small...)
	out = append(out, large...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// PowMod computes base^exp mod m for m ≥ 1 and exp ≥ 0. The base may be
// negative; it is reduced into [0, m) first. For m < 1 or exp < 0 it returns 0.
// Complexity: O(log exp).
func PowMod(base, exp, m int64) int64 {
	if m < 1 || exp < 0 {
		return 0
	}
	if m == 1 {
		return 0
	}
	b := base % m
	if b < 0 {
		b += m
	}

	return int64(mathutil.ModPowUint64(uint64(b), uint64(exp), uint64(m)))
}

// IsProbablePrime reports whether n is prime. It is exact for the whole
// int64 range (deterministic Miller–Rabin bases in mathutil).
// The graph core never calls this; it exists for input validation at the edges.
func IsProbablePrime(n int64) bool {
	if n < 2 {
		return false
	}

	return mathutil.IsPrimeUint64(uint64(n))
}
