package modular_test

import (
	"testing"

	"github.com/katalvlaran/modgraph/modular"
)

// firstPrimes returns the first n primes by trial division.
func firstPrimes(n int) []int64 {
	out := make([]int64, 0, n)
	for c := int64(2); len(out) < n; c++ {
		prime := true
		for _, p := range out {
			if p*p > c {
				break
			}
			if c%p == 0 {
				prime = false
				break
			}
		}
		if prime {
			out = append(out, c)
		}
	}

	return out
}

func BenchmarkBuildOrderMatrix_Sequential(b *testing.B) {
	ps := modular.NewPrimeSet(firstPrimes(200)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		modular.BuildOrderMatrix(ps)
	}
}

func BenchmarkBuildOrderMatrix_Workers8(b *testing.B) {
	ps := modular.NewPrimeSet(firstPrimes(200)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		modular.BuildOrderMatrix(ps, modular.WithWorkers(8))
	}
}

func BenchmarkNewExtendedGraph(b *testing.B) {
	primes := firstPrimes(100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		modular.NewExtendedGraph(primes, 720)
	}
}
