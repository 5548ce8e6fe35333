package numtheory_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/modgraph/numtheory"
)

func TestGCD_LCM(t *testing.T) {
	tests := []struct {
		a, b     int64
		gcd, lcm int64
	}{
		{6, 10, 2, 30},
		{10, 6, 2, 30},
		{7, 13, 1, 91},
		{0, 5, 5, 0},
		{5, 0, 5, 0},
		{0, 0, 0, 0},
		{-4, 6, 2, 12},
		{12, 12, 12, 12},
		{-9, -6, 3, 18},
	}
	for _, tc := range tests {
		g, err := numtheory.GCD(tc.a, tc.b)
		require.NoErrorf(t, err, "GCD(%d,%d)", tc.a, tc.b)
		assert.Equalf(t, tc.gcd, g, "GCD(%d,%d)", tc.a, tc.b)

		l, err := numtheory.LCM(tc.a, tc.b)
		require.NoErrorf(t, err, "LCM(%d,%d)", tc.a, tc.b)
		assert.Equalf(t, tc.lcm, l, "LCM(%d,%d)", tc.a, tc.b)
	}
}

func TestGCD_LCM_Overflow(t *testing.T) {
	// Two primes just below 2^32: their product exceeds 2^63.
	const p1, p2 = int64(4294967291), int64(4294967279)

	tests := []struct {
		name string
		run  func() (int64, error)
	}{
		{"lcm of large coprimes", func() (int64, error) { return numtheory.LCM(p1, p2) }},
		{"lcm of MaxInt64 and 2", func() (int64, error) { return numtheory.LCM(math.MaxInt64, 2) }},
		{"lcm of MinInt64 and 3", func() (int64, error) { return numtheory.LCM(math.MinInt64, 3) }},
		{"gcd of MinInt64 and 0", func() (int64, error) { return numtheory.GCD(math.MinInt64, 0) }},
		{"gcd of MinInt64 twice", func() (int64, error) { return numtheory.GCD(math.MinInt64, math.MinInt64) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, err := tc.run()
			require.ErrorIs(t, err, numtheory.ErrOverflow)
			assert.Equal(t, int64(0), v)
		})
	}

	// Largest representable lcm still succeeds.
	l, err := numtheory.LCM(math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), l)
}

func TestLCMSlice(t *testing.T) {
	l, err := numtheory.LCMSlice(nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), l)

	l, err = numtheory.LCMSlice([]int64{-4})
	require.NoError(t, err)
	assert.Equal(t, int64(4), l)

	// p−1 for {3,5,7,11}: 2,4,6,10 → 60.
	l, err = numtheory.LCMSlice([]int64{2, 4, 6, 10})
	require.NoError(t, err)
	assert.Equal(t, int64(60), l)
}

func TestLCMSlice_Overflow(t *testing.T) {
	// p−1 over the odd primes below 400 has an lcm far beyond 2^63.
	var phis []int64
	for n := int64(3); n < 400; n += 2 {
		if numtheory.IsProbablePrime(n) {
			phis = append(phis, n-1)
		}
	}
	l, err := numtheory.LCMSlice(phis)
	require.ErrorIs(t, err, numtheory.ErrOverflow)
	assert.Equal(t, int64(0), l)

	_, err = numtheory.LCMSlice([]int64{math.MinInt64})
	require.ErrorIs(t, err, numtheory.ErrOverflow)
}

func TestDivisors(t *testing.T) {
	assert.Nil(t, numtheory.Divisors(0))
	assert.Nil(t, numtheory.Divisors(-3))
	assert.Equal(t, []int64{1}, numtheory.Divisors(1))
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 12}, numtheory.Divisors(12))
	// Perfect square: 6 must appear once.
	assert.Equal(t, []int64{1, 2, 3, 4, 6, 9, 12, 18, 36}, numtheory.Divisors(36))
	assert.Equal(t, []int64{1, 97}, numtheory.Divisors(97))
}

func TestPowMod(t *testing.T) {
	assert.Equal(t, int64(1), numtheory.PowMod(3, 4, 5))
	assert.Equal(t, int64(6), numtheory.PowMod(3, 3, 7))
	assert.Equal(t, int64(1), numtheory.PowMod(5, 0, 7))
	assert.Equal(t, int64(0), numtheory.PowMod(5, 3, 1))
	assert.Equal(t, int64(0), numtheory.PowMod(5, 3, 0))
	// -1 ≡ 6 (mod 7); 6^2 = 36 ≡ 1.
	assert.Equal(t, int64(1), numtheory.PowMod(-1, 2, 7))
	// Large modulus must not overflow: Fermat for the largest int64 prime.
	const p = int64(9223372036854775783)
	assert.Equal(t, int64(1), numtheory.PowMod(2, p-1, p))
}

func TestIsProbablePrime(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 11, 97, 7919} {
		assert.Truef(t, numtheory.IsProbablePrime(p), "%d", p)
	}
	for _, n := range []int64{-7, 0, 1, 4, 9, 91, 561} {
		assert.Falsef(t, numtheory.IsProbablePrime(n), "%d", n)
	}
}

func TestMultiplicativeOrder_Known(t *testing.T) {
	tests := []struct {
		name string
		a, p int64
		want int64
	}{
		{"3 mod 5", 3, 5, 4},
		{"3 mod 7", 3, 7, 6},
		{"2 mod 7", 2, 7, 3},
		{"5 mod 3", 5, 3, 2},
		{"11 mod 5", 11, 5, 1},
		{"7 mod 11", 7, 11, 10},
		{"3 mod 11", 3, 11, 5},
		{"odd mod 2", 3, 2, 1},
		{"negative base", -1, 7, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := numtheory.MultiplicativeOrder(tc.a, tc.p)
			require.True(t, ok)
			assert.Equal(t, tc.want, d)
		})
	}
}

func TestMultiplicativeOrder_Undefined(t *testing.T) {
	tests := []struct {
		name string
		a, p int64
	}{
		{"self", 7, 7},
		{"multiple", 14, 7},
		{"zero base", 0, 5},
		{"modulus one", 3, 1},
		{"modulus zero", 3, 0},
		{"negative modulus", 3, -5},
		{"composite without order", 3, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, ok := numtheory.MultiplicativeOrder(tc.a, tc.p)
			assert.False(t, ok)
			assert.Equal(t, int64(0), d)
		})
	}
}

// TestMultiplicativeOrder_Lagrange checks minimality and divisibility for all
// pairs of small primes against a brute-force scan.
func TestMultiplicativeOrder_Lagrange(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}
	for _, a := range primes {
		for _, p := range primes {
			if a == p {
				continue
			}
			d, ok := numtheory.MultiplicativeOrder(a, p)
			require.Truef(t, ok, "ord(%d mod %d)", a, p)
			require.GreaterOrEqual(t, d, int64(1))
			require.LessOrEqual(t, d, p-1)
			require.Zerof(t, (p-1)%d, "ord(%d mod %d)=%d must divide %d", a, p, d, p-1)

			// Brute force: first k with a^k ≡ 1.
			x, k := a%p, int64(1)
			for x != 1 {
				x = x * (a % p) % p
				k++
			}
			require.Equalf(t, k, d, "ord(%d mod %d)", a, p)
		}
	}
}
