// SPDX-License-Identifier: MIT
// Package polynomial_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures shared by the table-driven tests.

package polynomial_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlogic/polynomial"
	"github.com/stretchr/testify/require"
)

// evalTol is the absolute tolerance for evaluated values built through
// arithmetic (rounding differs from the direct formula).
const evalTol = 1e-3

// MustNew builds a polynomial or fails the test.
func MustNew(t testing.TB, c ...float64) *polynomial.Polynomial {
	t.Helper()
	if c == nil {
		c = []float64{}
	}
	p, err := polynomial.New(c)
	require.NoError(t, err)

	return p
}

// MustOp runs a binary operation and fails the test on error.
func MustOp(t testing.TB, op func(f, g *polynomial.Polynomial) (*polynomial.Polynomial, error), f, g *polynomial.Polynomial) *polynomial.Polynomial {
	t.Helper()
	r, err := op(f, g)
	require.NoError(t, err)
	require.NotNil(t, r)

	return r
}

// RandomPoly returns a polynomial with n coefficients in [-10, 10).
func RandomPoly(rng *rand.Rand, n int) *polynomial.Polynomial {
	c := make([]float64, n)
	for i := range c {
		c[i] = rng.Float64()*20 - 10
	}

	return polynomial.Of(c...)
}
