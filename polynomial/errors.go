// SPDX-License-Identifier: MIT
// Package polynomial: sentinel error set.
// All operations return these sentinels (possibly wrapped with an operation
// tag via %w); tests match them with errors.Is. Panics are reserved for
// programmer errors in option constructors.

package polynomial

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the single error kind of this package: a nil
// coefficient slice, a nil operand or an out-of-range index.
// Every specific sentinel below wraps it.
var ErrInvalidArgument = errors.New("polynomial: invalid argument")

var (
	// ErrNilCoefficients is returned by New when the coefficient slice is nil.
	// An empty non-nil slice is legal and yields the zero polynomial.
	ErrNilCoefficients = fmt.Errorf("%w: nil coefficients", ErrInvalidArgument)

	// ErrNilPolynomial indicates a nil *Polynomial operand or receiver.
	ErrNilPolynomial = fmt.Errorf("%w: nil polynomial", ErrInvalidArgument)

	// ErrOutOfRange indicates a coefficient index outside [0, Len()).
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidArgument)
)
