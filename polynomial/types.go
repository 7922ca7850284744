// SPDX-License-Identifier: MIT

// Package polynomial: the Polynomial value type and shared constants.
package polynomial

import "fmt"

// ZeroDegree is the degree of the zero (empty) polynomial.
const ZeroDegree = -1

// Operation name constants for unified error wrapping.
const (
	opNew      = "New"
	opAt       = "At"
	opAdd      = "Add"
	opSub      = "Sub"
	opMul      = "Mul"
	opNegate   = "Negate"
	opAddScale = "AddScalar"
	opMulScale = "MulScalar"
)

// Polynomial is an immutable polynomial f(x) = Σ c[i]·xⁱ.
//   - c holds the coefficients, lowest power first (len(c) == Degree()+1).
//   - c is never shared with callers: constructors copy in, Coefficients copies out.
//
// Use *Polynomial everywhere; a nil *Polynomial is rejected by every
// operation with ErrNilPolynomial.
type Polynomial struct {
	c []float64 // coefficients, c[i] multiplies xⁱ; never nil
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Polynomial)(nil)

// polyErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func polyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
