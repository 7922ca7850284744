// Package polynomial provides an immutable single-variable polynomial with
// real (float64) coefficients.
//
// A Polynomial stores c[0..n] and represents
//
//	f(x) = c[0] + c[1]·x + c[2]·x² + … + c[n]·xⁿ
//
// The package provides:
//
//   - Construction with a defensive copy (New, Of, Zero); an empty
//     coefficient list is the zero polynomial with Degree() == -1.
//   - Safe indexed reads (At returns ErrOutOfRange instead of panicking).
//   - Evaluation with plain IEEE-754 semantics: ±Inf and NaN propagate.
//   - Arithmetic as named functions and methods: Add, Sub, Mul, Negate,
//     AddScalar/ScalarAdd and MulScalar/ScalarMul. Operands are never
//     mutated; every result is a fresh Polynomial.
//   - Value semantics: exact coefficient-wise Equal, a Hash consistent with
//     Equal (xxhash over canonical IEEE bits), Clone and String/Format.
//
// Polynomials are read-only after construction and therefore safe to share
// between goroutines.
//
// See example_test.go for usage patterns.
package polynomial
