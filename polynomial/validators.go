// SPDX-License-Identifier: MIT
// Package: polynomial
//
// Purpose:
//  - Single source of truth for operand checks used by the arithmetic kernels.
//  - Return plain sentinels; callers wrap with their operation tag.

package polynomial

// ValidateNotNil ensures p is a non-nil polynomial.
// Returns ErrNilPolynomial if p == nil.
// Complexity: O(1).
func ValidateNotNil(p *Polynomial) error {
	if p == nil {
		return ErrNilPolynomial
	}

	return nil
}

// ValidateOperands ensures both binary operands are non-nil (left first).
// Complexity: O(1).
func ValidateOperands(f, g *Polynomial) error {
	if err := ValidateNotNil(f); err != nil {
		return err
	}

	return ValidateNotNil(g)
}
