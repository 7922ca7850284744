package radix

import "fmt"

// New returns the Radix for base.
//
// Errors:
//   - ErrInvalidBase when base < MinBase or base > MaxBase.
func New(base int) (Radix, error) {
	if base < MinBase || base > MaxBase {
		return Radix{}, fmt.Errorf("%s(%d): %w", opNew, base, ErrInvalidBase)
	}

	return Radix{base: base, alphabet: Digits[:base]}, nil
}

// MustNew is like New but panics on an invalid base.
// Use it for compile-time constant bases only.
func MustNew(base int) Radix {
	r, err := New(base)
	if err != nil {
		panic(err)
	}

	return r
}

// Default returns the binary Radix (DefaultBase).
func Default() Radix { return MustNew(DefaultBase) }

// DigitValue returns the value of c in r: its index in r.Alphabet().
// Lookup is case-insensitive, so 'a' and 'A' both map to 10.
//
// Errors:
//   - ErrInvalidBase when r is the zero value.
//   - ErrInvalidDigit when c is not in the alphabet (e.g. '8' in base 8, 'G' in base 16).
func (r Radix) DigitValue(c rune) (int, error) {
	if !r.Valid() {
		return 0, radixErrorf(opDigit, ErrInvalidBase)
	}
	d, ok := r.digit(c)
	if !ok {
		return 0, fmt.Errorf("%s(%q): %w", opDigit, c, ErrInvalidDigit)
	}

	return d, nil
}

// digit maps c to its alphabet index. Only ASCII letters are folded.
func (r Radix) digit(c rune) (int, bool) {
	var d int
	switch {
	case c >= '0' && c <= '9':
		d = int(c - '0')
	case c >= 'A' && c <= 'F':
		d = int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		d = int(c-'a') + 10
	default:
		return 0, false
	}
	if d >= r.base {
		return 0, false
	}

	return d, true
}
