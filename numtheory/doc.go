// Package numtheory provides the small integer toolbox the modular graphs are
// built on: gcd/lcm, divisor enumeration, modular exponentiation and the
// multiplicative order of a base modulo a prime.
//
// Overview:
//
//   - MultiplicativeOrder(a, p) returns the smallest d ≥ 1 with a^d ≡ 1 (mod p).
//     The order of the group (Z/pZ)* is φ = p−1, so by Lagrange the order of a
//     divides φ; scanning the divisors of φ in ascending order returns the
//     smallest one that satisfies the congruence.
//   - When gcd(a, p) ≠ 1 (or p < 2) there is no order; the function reports
//     this with ok == false instead of a magic zero.
//   - PowMod and GCD delegate to modernc.org/mathutil, which works on uint64
//     and never overflows for any int64 modulus.
//   - GCD, LCM and LCMSlice are exact: a result that does not fit in an int64
//     is reported as ErrOverflow, never wrapped.
//
// Complexity:
//
//   - Divisors(n):            O(√n)
//   - PowMod(b, e, m):        O(log e)
//   - MultiplicativeOrder:    O(√φ + d(φ)·log φ), d(φ) = number of divisors of φ
//
// Example:
//
//	d, ok := numtheory.MultiplicativeOrder(3, 7) // d == 6, ok == true
//	_, ok = numtheory.MultiplicativeOrder(7, 7)  // ok == false
package numtheory
