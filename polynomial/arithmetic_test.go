// Package polynomial_test contains unit tests for the arithmetic kernels.
package polynomial_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlogic/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------- Add ----------

// TestAdd_DifferentLengths adds (c0,c1) and (c0,c1,c2) in both orders.
func TestAdd_DifferentLengths(t *testing.T) {
	cases := []struct {
		x, want float64
		coef    [3]float64
	}{
		{1, 5, [3]float64{1, 1, 1}},
		{2, 10, [3]float64{1, 1, 1}},
		{5.5, 122.1, [3]float64{0, 10, 0.4}},
		{0, 0.4, [3]float64{0.2, 15, 4}},
	}
	for _, tc := range cases {
		f := polynomial.Of(tc.coef[0], tc.coef[1])
		g := polynomial.Of(tc.coef[0], tc.coef[1], tc.coef[2])

		fg := MustOp(t, polynomial.Add, f, g)
		gf := MustOp(t, polynomial.Add, g, f)
		assert.Equal(t, 3, fg.Len(), "result length is the longer operand's")
		assert.True(t, fg.Equal(gf), "Add must commute")
		assert.InDelta(t, tc.want, fg.Evaluate(tc.x), evalTol)
	}
}

// TestAdd_Scenario is (1+x) + (1+x+x²) at 2.
func TestAdd_Scenario(t *testing.T) {
	sum, err := polynomial.Of(1, 1).Add(polynomial.Of(1, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2, 1}, sum.Coefficients())
	assert.Equal(t, 10.0, sum.Evaluate(2))
}

// TestAdd_Zero is the identity.
func TestAdd_Zero(t *testing.T) {
	f := polynomial.Of(3, 4)
	assert.True(t, MustOp(t, polynomial.Add, f, polynomial.Zero()).Equal(f))
	assert.True(t, MustOp(t, polynomial.Add, polynomial.Zero(), f).Equal(f))
	assert.True(t, MustOp(t, polynomial.Add, polynomial.Zero(), polynomial.Zero()).IsZero())
}

// ---------- Sub ----------

// TestSub_ShorterMinusLonger: (c0,c1,c2) - (c0,c1,c2,c3) == -c3·x³.
func TestSub_ShorterMinusLonger(t *testing.T) {
	cases := []struct {
		x, want float64
		coef    [4]float64
	}{
		{0, 0, [4]float64{0.2, 15, 4, 8}},
		{0.2, -0.008, [4]float64{1, 1, 1, 1}},
		{1, -1, [4]float64{1, 1, 1, 1}},
		{-0.1, -0.001, [4]float64{122.1, 0, 10, -1}},
	}
	for _, tc := range cases {
		f := polynomial.Of(tc.coef[0], tc.coef[1], tc.coef[2])
		g := polynomial.Of(tc.coef[:]...)
		d := MustOp(t, polynomial.Sub, f, g)
		assert.Equal(t, 4, d.Len())
		assert.InDelta(t, tc.want, d.Evaluate(tc.x), evalTol, "%v at %v", tc.coef, tc.x)
	}
}

// TestSub_LongerMinusShorter: (c0,c1,c2,c3) - (c0,c1) == c2·x² + c3·x³.
func TestSub_LongerMinusShorter(t *testing.T) {
	cases := []struct {
		x, want float64
		coef    [4]float64
	}{
		{0, 0, [4]float64{0.2, 15, 4, 8}},
		{0.2, 0.048, [4]float64{1, 1, 1, 1}},
		{1, 2, [4]float64{1, 1, 1, 1}},
		{50, -100000, [4]float64{122.1, 0, 10, -1}},
	}
	for _, tc := range cases {
		f := polynomial.Of(tc.coef[:]...)
		g := polynomial.Of(tc.coef[0], tc.coef[1])
		d := MustOp(t, polynomial.Sub, f, g)
		assert.InDelta(t, tc.want, d.Evaluate(tc.x), evalTol, "%v at %v", tc.coef, tc.x)
	}
}

// TestSub_DoesNotMutateOperands guards against negating g in place.
func TestSub_DoesNotMutateOperands(t *testing.T) {
	f := polynomial.Of(1, 2, 3)
	g := polynomial.Of(4, 5, 6, 7)

	_, err := polynomial.Sub(f, g)
	require.NoError(t, err)
	_, err = polynomial.Sub(g, f)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3}, f.Coefficients())
	assert.Equal(t, []float64{4, 5, 6, 7}, g.Coefficients())
}

// TestSub_Self is all zeros with the same length.
func TestSub_Self(t *testing.T) {
	f := polynomial.Of(1.5, -2, 3)
	d := MustOp(t, polynomial.Sub, f, f)
	assert.Equal(t, []float64{0, 0, 0}, d.Coefficients())
	assert.Equal(t, []float64{1.5, -2, 3}, f.Coefficients(), "operand must be untouched")
}

// ---------- Mul ----------

// TestMul_Known multiplies (c0,c1,c2) by (c1,c2,c3).
func TestMul_Known(t *testing.T) {
	cases := []struct {
		x, want float64
		coef    [4]float64
	}{
		{0, 3, [4]float64{0.2, 15, 4, 8}},
		{2.6, 975.5232, [4]float64{1, 2, 3, 4}},
		{-2.6, 341.5392, [4]float64{1, 2, 3, 4}},
		{-2.6, 341.5392, [4]float64{-1, -2, -3, -4}},
		{-2.6, -975.5232, [4]float64{-1, 2, -3, 4}},
		{50, -50244200, [4]float64{122.1, 0, 10, -1}},
	}
	for _, tc := range cases {
		f := polynomial.Of(tc.coef[0], tc.coef[1], tc.coef[2])
		g := polynomial.Of(tc.coef[1], tc.coef[2], tc.coef[3])
		p := MustOp(t, polynomial.Mul, f, g)
		assert.Equal(t, f.Len()+g.Len()-1, p.Len())
		assert.InDelta(t, tc.want, p.Evaluate(tc.x), evalTol, "%v at %v", tc.coef, tc.x)
	}
}

// TestMul_Convolution checks coefficients directly.
func TestMul_Convolution(t *testing.T) {
	// (1 + x)(1 - x) = 1 - x²
	p, err := polynomial.Of(1, 1).Mul(polynomial.Of(1, -1))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, -1}, p.Coefficients())

	// (1 + 2x + 3x²)(2 + 3x + 4x²) = 2 + 7x + 16x² + 17x³ + 12x⁴
	p = MustOp(t, polynomial.Mul, polynomial.Of(1, 2, 3), polynomial.Of(2, 3, 4))
	assert.Equal(t, []float64{2, 7, 16, 17, 12}, p.Coefficients())
}

// TestMul_Zero yields the zero polynomial regardless of side.
func TestMul_Zero(t *testing.T) {
	f := polynomial.Of(1, 2)
	assert.True(t, MustOp(t, polynomial.Mul, f, polynomial.Zero()).IsZero())
	assert.True(t, MustOp(t, polynomial.Mul, polynomial.Zero(), f).IsZero())
}

// ---------- Negate & scalars ----------

func TestNegate(t *testing.T) {
	f := polynomial.Of(1, -2, 0)
	n, err := f.Negate()
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2, 0}, n.Coefficients())
	assert.Equal(t, []float64{1, -2, 0}, f.Coefficients())
	assert.True(t, n.Equal(polynomial.Of(-1, 2, 0)), "-0 equals +0")
}

// TestScalar_BothOrders ensures value-first and polynomial-first forms agree.
func TestScalar_BothOrders(t *testing.T) {
	f := polynomial.Of(1, 2, 3)

	a1, err := polynomial.AddScalar(f, 0.5)
	require.NoError(t, err)
	a2, err := polynomial.ScalarAdd(0.5, f)
	require.NoError(t, err)
	a3, err := f.AddScalar(0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5, 3.5}, a1.Coefficients())
	assert.True(t, a1.Equal(a2))
	assert.True(t, a1.Equal(a3))

	m1, err := polynomial.MulScalar(f, -2)
	require.NoError(t, err)
	m2, err := polynomial.ScalarMul(-2, f)
	require.NoError(t, err)
	m3, err := f.MulScalar(-2)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2, -4, -6}, m1.Coefficients())
	assert.True(t, m1.Equal(m2))
	assert.True(t, m1.Equal(m3))

	assert.Equal(t, []float64{1, 2, 3}, f.Coefficients(), "operand must be untouched")
}

// TestScalar_Zero keeps the zero polynomial empty.
func TestScalar_Zero(t *testing.T) {
	a, err := polynomial.AddScalar(polynomial.Zero(), 5)
	require.NoError(t, err)
	assert.True(t, a.IsZero())

	m, err := polynomial.MulScalar(polynomial.Zero(), 5)
	require.NoError(t, err)
	assert.True(t, m.IsZero())
}

// ---------- nil operands ----------

// TestNilOperands ensures every operation rejects nil with ErrNilPolynomial.
func TestNilOperands(t *testing.T) {
	g := polynomial.Of(1, 2, 3)
	var nilP *polynomial.Polynomial

	binary := map[string]func(f, g *polynomial.Polynomial) (*polynomial.Polynomial, error){
		"Add": polynomial.Add,
		"Sub": polynomial.Sub,
		"Mul": polynomial.Mul,
	}
	for name, op := range binary {
		for _, pair := range [][2]*polynomial.Polynomial{{nilP, g}, {g, nilP}, {nilP, nilP}} {
			r, err := op(pair[0], pair[1])
			assert.Nil(t, r, name)
			assert.ErrorIs(t, err, polynomial.ErrNilPolynomial, name)
			assert.ErrorIs(t, err, polynomial.ErrInvalidArgument, name)
			assert.Contains(t, err.Error(), name+":")
		}
	}

	_, err := nilP.Add(g)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = nilP.Sub(g)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = nilP.Mul(g)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = nilP.Negate()
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = polynomial.AddScalar(nilP, 1)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = polynomial.ScalarAdd(1, nilP)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = polynomial.MulScalar(nilP, 1)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
	_, err = polynomial.ScalarMul(1, nilP)
	assert.ErrorIs(t, err, polynomial.ErrNilPolynomial)
}

// ---------- homomorphism properties ----------

// TestEvaluate_Homomorphism checks (f+g)(x) = f(x)+g(x), (f-g)(x) = f(x)-g(x)
// and (f·g)(x) = f(x)·g(x) on random inputs, up to rounding.
func TestEvaluate_Homomorphism(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 500; iter++ {
		f := RandomPoly(rng, rng.Intn(7))
		g := RandomPoly(rng, rng.Intn(7))
		x := rng.Float64()*4 - 2

		sum := MustOp(t, polynomial.Add, f, g)
		diff := MustOp(t, polynomial.Sub, f, g)
		prod := MustOp(t, polynomial.Mul, f, g)

		fx, gx := f.Evaluate(x), g.Evaluate(x)
		assertClose(t, fx+gx, sum.Evaluate(x))
		assertClose(t, fx-gx, diff.Evaluate(x))
		assertClose(t, fx*gx, prod.Evaluate(x))
	}
}

// assertClose compares with a tolerance relative to the magnitude of want.
func assertClose(t *testing.T, want, got float64) {
	t.Helper()
	assert.InDelta(t, want, got, 1e-7*(1+math.Abs(want)))
}
