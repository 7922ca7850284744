// SPDX-License-Identifier: MIT

// Package polynomial - construction, safe accessors and evaluation.
//
// Purpose:
//   - Copy coefficients in at construction so no caller can mutate a Polynomial.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep evaluation on plain float64 arithmetic; no overflow guards.
//
// Complexity quicksheet:
//   - New/Of/Clone/Coefficients: O(n); At/Len/Degree: O(1); Evaluate: O(n).

package polynomial

import "fmt"

// New creates a polynomial from coefficients, lowest power first.
// MAIN DESCRIPTION:
//   - Public constructor with a defensive copy of the input.
//
// Implementation:
//   - Stage 1: reject a nil slice with ErrNilCoefficients.
//   - Stage 2: copy into a fresh buffer (possibly zero-length).
//
// Behavior highlights:
//   - An empty, non-nil slice is legal and yields the zero polynomial
//     (Len()==0, Degree()==ZeroDegree, Evaluate(x)==0).
//   - Later writes to coefficients do not affect the result.
//
// Inputs:
//   - coefficients: c[0..n], c[i] multiplies xⁱ.
//
// Returns:
//   - *Polynomial: newly allocated polynomial.
//
// Errors:
//   - ErrNilCoefficients (nil slice).
//
// Complexity:
//   - Time O(n), Space O(n).
func New(coefficients []float64) (*Polynomial, error) {
	if coefficients == nil {
		return nil, polyErrorf(opNew, ErrNilCoefficients)
	}

	return fromOwned(append(make([]float64, 0, len(coefficients)), coefficients...)), nil
}

// Of builds a polynomial from its arguments, lowest power first.
// It never fails: Of() is the zero polynomial.
//
//	p := polynomial.Of(1, 2, 3) // 1 + 2x + 3x²
func Of(coefficients ...float64) *Polynomial {
	return fromOwned(append(make([]float64, 0, len(coefficients)), coefficients...))
}

// Zero returns the zero polynomial (no coefficients, degree -1).
func Zero() *Polynomial { return fromOwned(make([]float64, 0)) }

// fromOwned wraps a buffer the caller has just allocated and will not touch again.
func fromOwned(c []float64) *Polynomial { return &Polynomial{c: c} }

// At returns the coefficient of x^i.
//
// Errors:
//   - ErrNilPolynomial on a nil receiver.
//   - ErrOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (p *Polynomial) At(i int) (float64, error) {
	if p == nil {
		return 0, polyErrorf(opAt, ErrNilPolynomial)
	}
	if i < 0 || i >= len(p.c) {
		return 0, fmt.Errorf("%s(%d): len %d: %w", opAt, i, len(p.c), ErrOutOfRange)
	}

	return p.c[i], nil
}

// Len returns the number of coefficients (0 for nil or the zero polynomial).
func (p *Polynomial) Len() int {
	if p == nil {
		return 0
	}

	return len(p.c)
}

// Degree returns Len()-1, so the zero polynomial has degree ZeroDegree (-1).
// Trailing zero coefficients are counted: Of(1, 0).Degree() == 1.
func (p *Polynomial) Degree() int { return p.Len() - 1 }

// IsZero reports whether p has no coefficients.
func (p *Polynomial) IsZero() bool { return p.Len() == 0 }

// Coefficients returns a copy of the coefficients, lowest power first.
func (p *Polynomial) Coefficients() []float64 {
	if p == nil {
		return nil
	}

	return append(make([]float64, 0, len(p.c)), p.c...)
}

// Evaluate computes f(x) = Σ c[i]·xⁱ.
// MAIN DESCRIPTION:
//   - Point evaluation with a running power x⁰, x¹, … (one multiply per term).
//
// Behavior highlights:
//   - No overflow checks: ±Inf and NaN follow IEEE-754 and are returned as is.
//   - The zero polynomial (and a nil receiver) evaluates to 0.
//
// Complexity:
//   - Time O(n), Space O(1).
func (p *Polynomial) Evaluate(x float64) float64 {
	if p == nil {
		return 0
	}
	sum, pow := 0.0, 1.0
	for _, c := range p.c {
		sum += c * pow
		pow *= x
	}

	return sum
}

// Clone returns an independent copy with identical coefficients.
// Clone of nil is nil.
func (p *Polynomial) Clone() *Polynomial {
	if p == nil {
		return nil
	}

	return fromOwned(p.Coefficients())
}
