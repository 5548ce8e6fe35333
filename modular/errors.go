// SPDX-License-Identifier: MIT
// Package: modgraph/modular
//
// errors.go — sentinel errors for the modular package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Implementations attach method context with %w, never by redefining
//     the sentinel text.
//   • Constructors are infallible; only algebra operations return errors.

package modular

import "errors"

// ErrNilGraph indicates that a nil *Graph was passed to an algebra operation.
var ErrNilGraph = errors.New("modular: graph is nil")

// ErrNotDiscrete indicates that an algebra operation received an extended
// (weighted) graph. Union, Intersection and Complement are defined on
// discrete graphs only.
var ErrNotDiscrete = errors.New("modular: operation requires a discrete graph")

// ErrPrimeSetMismatch indicates that Union/Intersection operands are built
// over different prime sets (compared as sets).
var ErrPrimeSetMismatch = errors.New("modular: prime sets must match")

// ErrEmptyPrimeSet indicates that the complete exponent was requested for an
// empty prime set, where lcm(p−1) is undefined.
var ErrEmptyPrimeSet = errors.New("modular: prime set is empty")

// ErrInexactComplement indicates that the exponent does not divide the
// complete exponent A*, so A*/A is not an integer (or A ≤ 0).
var ErrInexactComplement = errors.New("modular: exponent does not divide complete exponent")

// ErrExponentOverflow indicates that a derived exponent (lcm, gcd or the
// complete exponent A*) does not fit in an int64. It wraps
// numtheory.ErrOverflow, so either sentinel matches.
var ErrExponentOverflow = errors.New("modular: exponent overflows int64")

// Method tags for wrapped errors: "<Method>: <detail>: <sentinel>".
const (
	methodUnion            = "Union"
	methodIntersection     = "Intersection"
	methodComplement       = "Complement"
	methodCompleteExponent = "CompleteExponent"
)
