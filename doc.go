// Package lvlogic bundles two small, independent numeric building blocks.
//
// 🚀 What is in lvlogic?
//
//	A zero-state, allocation-light library that brings together:
//		• radix      — digit strings in bases 2..16 → int32, overflow-checked
//		• polynomial — immutable float64 polynomials: add, sub, mul, scalars,
//		               evaluation, exact equality, hashing
//
// ✨ Why choose lvlogic?
//
//   - Small API with explicit error returns (errors.Is-friendly sentinels)
//   - No shared state: every value is immutable or passed explicitly
//   - Pure Go – no cgo
//
// Layout:
//
//	radix/      — Radix (base + alphabet), ToDecimal, Format
//	polynomial/ — Polynomial value type and its arithmetic
//	examples/   — runnable walkthroughs
//
//	go get github.com/katalvlaran/lvlogic
package lvlogic
