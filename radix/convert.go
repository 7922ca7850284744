package radix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToDecimal parses value as a number written in base r and returns it as int32.
//
// Algorithm:
//  1. Reject an invalid Radix, then any value longer than MaxDigits (before parsing).
//  2. Map every character to its digit value; the first unknown character fails.
//  3. Accumulate most-significant digit first: acc = acc*base + d.
//     acc is kept in int64 and compared to math.MaxInt32 after every step,
//     which is the same as checked Σ d[i]·base^(n-1-i) but never trips on
//     leading zeros.
//
// Errors:
//   - ErrInvalidBase   (zero Radix)
//   - ErrTooManyDigits (len(value) > MaxDigits; matches ErrOverflow)
//   - ErrEmptyValue    (value == "")
//   - ErrInvalidDigit  (character not in the alphabet)
//   - ErrOverflow      (value > math.MaxInt32)
//
// Complexity: O(len(value)) time, O(1) memory.
func (r Radix) ToDecimal(value string) (int32, error) {
	if !r.Valid() {
		return 0, radixErrorf(opToDecimal, ErrInvalidBase)
	}
	if len(value) > MaxDigits {
		return 0, fmt.Errorf("%s: len %d: %w", opToDecimal, len(value), ErrTooManyDigits)
	}
	if value == "" {
		return 0, radixErrorf(opToDecimal, ErrEmptyValue)
	}

	// Validate every digit before any arithmetic so a bad character is
	// reported as such even when the prefix would already overflow.
	// Runes never outnumber bytes, so the length guard above bounds n by MaxDigits.
	var digits [MaxDigits]int
	n := 0
	for pos, c := range value {
		d, ok := r.digit(c)
		if !ok {
			return 0, fmt.Errorf("%s: %q at %d in %s: %w", opToDecimal, c, pos, r, ErrInvalidDigit)
		}
		digits[n] = d
		n++
	}

	base := int64(r.base)
	var acc int64
	for i := 0; i < n; i++ {
		acc = acc*base + int64(digits[i])
		if acc > math.MaxInt32 {
			return 0, fmt.Errorf("%s: %q in %s: %w", opToDecimal, value, r, ErrOverflow)
		}
	}

	return int32(acc), nil
}

// ToDecimal parses value in the given base. It is New followed by Radix.ToDecimal.
func ToDecimal(value string, base int) (int32, error) {
	r, err := New(base)
	if err != nil {
		return 0, err
	}

	return r.ToDecimal(value)
}

// Format renders a non-negative v in base r using the upper-case alphabet.
// r.ToDecimal(r.Format(v)) == v for every v >= 0.
//
// Errors:
//   - ErrInvalidBase   (zero Radix)
//   - ErrNegativeValue (v < 0; ToDecimal accepts no sign)
func (r Radix) Format(v int32) (string, error) {
	if !r.Valid() {
		return "", radixErrorf(opFormat, ErrInvalidBase)
	}
	if v < 0 {
		return "", fmt.Errorf("%s(%d): %w", opFormat, v, ErrNegativeValue)
	}

	return strings.ToUpper(strconv.FormatInt(int64(v), r.base)), nil
}

// FromDecimal renders v in the given base. It is New followed by Radix.Format.
func FromDecimal(v int32, base int) (string, error) {
	r, err := New(base)
	if err != nil {
		return "", err
	}

	return r.Format(v)
}
