// SPDX-License-Identifier: MIT
// Package: modgraph/numtheory
//
// order.go — multiplicative order of a base modulo a prime.

package numtheory

// MultiplicativeOrder returns the multiplicative order of a modulo p: the
// smallest d ≥ 1 such that a^d ≡ 1 (mod p).
//
// Implementation:
//   - Stage 1: reject p < 2 and reduce a into [0, p).
//   - Stage 2: if gcd(a, p) ≠ 1 there is no order; return (0, false).
//   - Stage 3: φ = p−1; scan Divisors(φ) ascending and return the first d
//     with PowMod(a, d, p) == 1.
//
// Inputs:
//   - a: base (any int64; negative values are reduced mod p).
//   - p: modulus, assumed prime. Primality is NOT checked.
//
// Returns:
//   - (d, true) when the order exists and divides p−1.
//   - (0, false) when gcd(a, p) ≠ 1, p < 2, or (for composite p) no divisor
//     of p−1 satisfies the congruence.
//
// Complexity:
//   - Time O(√p + d(p−1)·log p), Space O(d(p−1)).
func MultiplicativeOrder(a, p int64) (int64, bool) {
	if p < 2 {
		return 0, false
	}
	r := a % p
	if r < 0 {
		r += p
	}
	// r < p, so the gcd always fits.
	if g, _ := GCD(r, p); g != 1 {
		return 0, false
	}

	for _, d := range Divisors(p - 1) {
		if PowMod(r, d, p) == 1 {
			return d, true
		}
	}

	// Only reachable for composite p.
	return 0, false
}
