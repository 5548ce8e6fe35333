package modular

import (
	"slices"
	"strconv"
	"strings"
)

// PrimeSet is an ascending sequence of distinct integers, fixed at
// construction. Primality is assumed and never verified here.
// The zero value is an empty set.
type PrimeSet struct {
	ps []int64
}

// NewPrimeSet sorts a copy of primes ascending and drops duplicates.
// Complexity: O(n log n).
func NewPrimeSet(primes ...int64) PrimeSet {
	ps := slices.Clone(primes)
	slices.Sort(ps)
	ps = slices.Compact(ps)

	return PrimeSet{ps: ps}
}

// Len returns the number of primes.
func (s PrimeSet) Len() int { return len(s.ps) }

// At returns the i-th prime in ascending order. It panics if i is out of
// range, like slice indexing.
func (s PrimeSet) At(i int) int64 { return s.ps[i] }

// Slice returns a copy of the primes, ascending.
func (s PrimeSet) Slice() []int64 { return slices.Clone(s.ps) }

// Index returns the position of p, or (-1, false) if p is not in the set.
// Complexity: O(log n).
func (s PrimeSet) Index(p int64) (int, bool) {
	i, ok := slices.BinarySearch(s.ps, p)
	if !ok {
		return -1, false
	}

	return i, true
}

// Contains reports whether p is in the set.
func (s PrimeSet) Contains(p int64) bool {
	_, ok := s.Index(p)
	return ok
}

// Equal reports whether both sets hold the same primes. Because both sides
// are kept sorted and deduplicated, this is an order-independent comparison.
func (s PrimeSet) Equal(o PrimeSet) bool { return slices.Equal(s.ps, o.ps) }

// String renders the set as "[3 5 7 11]".
func (s PrimeSet) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, p := range s.ps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatInt(p, 10))
	}
	b.WriteByte(']')

	return b.String()
}
