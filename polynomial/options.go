// SPDX-License-Identifier: MIT

// Package polynomial: functional configuration for textual rendering.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic output: no global state, no locale.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package polynomial

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultVariable is the variable name used in rendered terms ("x^2").
	DefaultVariable = "x"

	// DefaultPrecision renders coefficients with the shortest exact
	// representation (strconv 'g' with precision -1).
	DefaultPrecision = -1

	// DefaultFunctionName is empty: no "f(x) = " prefix.
	DefaultFunctionName = ""
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicVariableEmpty    = "polynomial: WithVariable: name must be non-empty"
	panicPrecisionInvalid = "polynomial: WithPrecision: precision must be >= -1"
)

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective rendering configuration after applying Option
// setters. Fields are unexported; public entry points accept ...Option.
type Options struct {
	variable     string // DefaultVariable
	precision    int    // DefaultPrecision
	functionName string // DefaultFunctionName
}

// WithVariable sets the variable name printed in every non-constant term.
// Panics when name is empty.
func WithVariable(name string) Option {
	if name == "" {
		panic(panicVariableEmpty)
	}

	return func(o *Options) { o.variable = name }
}

// WithPrecision sets the number of significant digits per coefficient
// ('g' format). -1 selects the shortest exact form. Panics when p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// WithFunctionName prefixes the output with "<name>(<variable>) = ".
// An empty name removes the prefix.
func WithFunctionName(name string) Option {
	return func(o *Options) { o.functionName = name }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		variable:     DefaultVariable,
		precision:    DefaultPrecision,
		functionName: DefaultFunctionName,
	}
}

// gatherOptions applies opts over the defaults in order; later options win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
