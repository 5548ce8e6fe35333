package numtheory_test

import (
	"testing"

	"github.com/katalvlaran/modgraph/numtheory"
)

func BenchmarkMultiplicativeOrder_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = numtheory.MultiplicativeOrder(3, 7919)
	}
}

func BenchmarkMultiplicativeOrder_Large(b *testing.B) {
	// 2^31−1 is prime; φ has few divisors but √φ trial division dominates.
	for i := 0; i < b.N; i++ {
		_, _ = numtheory.MultiplicativeOrder(7, 2147483647)
	}
}
