// SPDX-License-Identifier: MIT
// Package: modgraph/numtheory
//
// errors.go — sentinel errors for the numtheory package.

package numtheory

import "errors"

// ErrOverflow indicates that an exact result (gcd, lcm) does not fit in an
// int64. Results are never wrapped or truncated.
var ErrOverflow = errors.New("numtheory: result overflows int64")
