// SPDX-License-Identifier: MIT
// Package polynomial provides the arithmetic kernels: addition, subtraction,
// multiplication (convolution), negation and scalar operations.
// All functions validate operands first and return a freshly allocated
// result; operands are never mutated.

package polynomial

// addSub computes out = f + sign*g for sign ∈ {+1, -1}.
// Internal helper for Add/Sub to share validation and allocation.
//
// Implementation:
//   - Stage 1: ValidateOperands(f, g).
//   - Stage 2: allocate len = max(len f, len g); copy f; fold sign*g in.
//
// Behavior highlights:
//   - Missing high-order terms of the shorter operand count as zero.
//   - sign is applied while reading g into the private result buffer, so g
//     itself is never negated in place.
//
// Errors:
//   - ErrNilPolynomial (wrapped with opTag).
//
// Complexity:
//   - Time O(max(n, m)), Space O(max(n, m)).
func addSub(f, g *Polynomial, sign float64, opTag string) (*Polynomial, error) {
	if err := ValidateOperands(f, g); err != nil {
		return nil, polyErrorf(opTag, err)
	}

	n := len(f.c)
	if len(g.c) > n {
		n = len(g.c)
	}
	out := make([]float64, n)
	copy(out, f.c)
	for i, v := range g.c {
		out[i] += sign * v
	}

	return fromOwned(out), nil
}

// Add returns f + g.
// Result length is max(f.Len(), g.Len()).
//
// Errors:
//   - ErrNilPolynomial if f or g is nil.
func Add(f, g *Polynomial) (*Polynomial, error) { return addSub(f, g, +1, opAdd) }

// Sub returns f - g, i.e. Add(f, Negate(g)) without touching g.
// Result length is max(f.Len(), g.Len()).
//
// Errors:
//   - ErrNilPolynomial if f or g is nil.
func Sub(f, g *Polynomial) (*Polynomial, error) { return addSub(f, g, -1, opSub) }

// Mul returns the product f·g.
// MAIN DESCRIPTION:
//   - Coefficient convolution: out[i+j] += f[i]·g[j].
//
// Implementation:
//   - Stage 1: ValidateOperands(f, g).
//   - Stage 2: if either operand is the zero polynomial, return Zero().
//   - Stage 3: allocate len f + len g - 1 and run the fixed i→j double loop.
//
// Behavior highlights:
//   - Deterministic summation order (i ascending, then j ascending).
//   - Zero coefficients of f are not skipped, so Inf/NaN in g propagate
//     exactly as the textbook formula says.
//
// Errors:
//   - ErrNilPolynomial if f or g is nil.
//
// Complexity:
//   - Time O(n·m), Space O(n+m).
func Mul(f, g *Polynomial) (*Polynomial, error) {
	if err := ValidateOperands(f, g); err != nil {
		return nil, polyErrorf(opMul, err)
	}
	if len(f.c) == 0 || len(g.c) == 0 {
		return Zero(), nil
	}

	out := make([]float64, len(f.c)+len(g.c)-1)
	var i, j int
	for i = 0; i < len(f.c); i++ {
		for j = 0; j < len(g.c); j++ {
			out[i+j] += f.c[i] * g.c[j]
		}
	}

	return fromOwned(out), nil
}

// Negate returns -f (every coefficient negated).
//
// Errors:
//   - ErrNilPolynomial if f is nil.
func Negate(f *Polynomial) (*Polynomial, error) {
	if err := ValidateNotNil(f); err != nil {
		return nil, polyErrorf(opNegate, err)
	}

	return mapCoefficients(f, func(c float64) float64 { return -c }), nil
}

// AddScalar returns the polynomial whose coefficients are f[i] + v.
// The zero polynomial stays the zero polynomial.
//
// Errors:
//   - ErrNilPolynomial if f is nil.
func AddScalar(f *Polynomial, v float64) (*Polynomial, error) {
	if err := ValidateNotNil(f); err != nil {
		return nil, polyErrorf(opAddScale, err)
	}

	return mapCoefficients(f, func(c float64) float64 { return c + v }), nil
}

// ScalarAdd is AddScalar with the scalar first; the result is identical.
func ScalarAdd(v float64, f *Polynomial) (*Polynomial, error) { return AddScalar(f, v) }

// MulScalar returns the polynomial whose coefficients are f[i] · v.
//
// Errors:
//   - ErrNilPolynomial if f is nil.
func MulScalar(f *Polynomial, v float64) (*Polynomial, error) {
	if err := ValidateNotNil(f); err != nil {
		return nil, polyErrorf(opMulScale, err)
	}

	return mapCoefficients(f, func(c float64) float64 { return c * v }), nil
}

// ScalarMul is MulScalar with the scalar first; the result is identical.
func ScalarMul(v float64, f *Polynomial) (*Polynomial, error) { return MulScalar(f, v) }

// mapCoefficients applies fn to every coefficient of f into a new polynomial.
// f must be non-nil.
func mapCoefficients(f *Polynomial, fn func(float64) float64) *Polynomial {
	out := make([]float64, len(f.c))
	for i, c := range f.c {
		out[i] = fn(c)
	}

	return fromOwned(out)
}

// Add returns p + g. See the package function Add.
func (p *Polynomial) Add(g *Polynomial) (*Polynomial, error) { return Add(p, g) }

// Sub returns p - g. See the package function Sub.
func (p *Polynomial) Sub(g *Polynomial) (*Polynomial, error) { return Sub(p, g) }

// Mul returns p · g. See the package function Mul.
func (p *Polynomial) Mul(g *Polynomial) (*Polynomial, error) { return Mul(p, g) }

// Negate returns -p.
func (p *Polynomial) Negate() (*Polynomial, error) { return Negate(p) }

// AddScalar returns p with v added to every coefficient.
func (p *Polynomial) AddScalar(v float64) (*Polynomial, error) { return AddScalar(p, v) }

// MulScalar returns p with every coefficient multiplied by v.
func (p *Polynomial) MulScalar(v float64) (*Polynomial, error) { return MulScalar(p, v) }
