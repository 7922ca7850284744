package radix

import "strconv"

const (
	// MinBase is the smallest supported base.
	MinBase = 2

	// MaxBase is the largest supported base; len(Digits) == MaxBase.
	MaxBase = 16

	// DefaultBase is the base returned by Default.
	DefaultBase = 2

	// MaxDigits bounds the input length: the bit width of int32.
	MaxDigits = 32

	// Digits is the full upper-case alphabet; a base-b alphabet is Digits[:b].
	Digits = "0123456789ABCDEF"
)

// operation tags used in error wrappers
const (
	opNew       = "New"
	opToDecimal = "ToDecimal"
	opFormat    = "Format"
	opDigit     = "DigitValue"
)

// Radix is an immutable numeral-system base together with its alphabet.
//
// The zero value is not a valid Radix; obtain one from New, MustNew or Default.
// A Radix carries no mutable state and may be shared between goroutines.
type Radix struct {
	base     int
	alphabet string
}

// Base returns the numeric base (0 for the zero value).
func (r Radix) Base() int { return r.base }

// Alphabet returns the ordered digit characters of r, upper-case.
// len(r.Alphabet()) == r.Base().
func (r Radix) Alphabet() string { return r.alphabet }

// Valid reports whether r was built by a constructor of this package.
func (r Radix) Valid() bool {
	return r.base >= MinBase && r.base <= MaxBase && len(r.alphabet) == r.base
}

// String renders r as "base<N>", e.g. "base16".
func (r Radix) String() string { return "base" + strconv.Itoa(r.base) }
