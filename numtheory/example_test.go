package numtheory_test

import (
	"fmt"

	"github.com/katalvlaran/modgraph/numtheory"
)

// ExampleMultiplicativeOrder walks the powers of 3 modulo 5 and 7.
func ExampleMultiplicativeOrder() {
	d5, _ := numtheory.MultiplicativeOrder(3, 5) // 3,4,2,1
	d7, _ := numtheory.MultiplicativeOrder(3, 7) // 3,2,6,4,5,1
	_, ok := numtheory.MultiplicativeOrder(7, 7)
	fmt.Println(d5, d7, ok)
	// Output: 4 6 false
}

// ExampleDivisors lists the candidate orders modulo 13.
func ExampleDivisors() {
	fmt.Println(numtheory.Divisors(12))
	// Output: [1 2 3 4 6 12]
}
