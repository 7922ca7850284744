// Package radix converts positional-notation digit strings into signed
// 32-bit integers for every base from 2 to 16.
//
// 🚀 What is a radix?
//
//	A radix (or base) fixes how many distinct digits a numeral system has.
//	Base 2 uses "01", base 8 uses "01234567", base 16 uses "0-9A-F".
//	A digit's value is simply its position in that alphabet.
//
// ✨ Key features:
//   - Radix value object with a generated alphabet (len(alphabet) == base)
//   - case-insensitive digit lookup ("1aef" and "1AEF" are the same number)
//   - overflow-checked accumulation into int32: no silent wrap-around
//   - inverse rendering (Format / FromDecimal) for non-negative values
//   - no shared state: a Radix is passed explicitly, safe for concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlogic/radix"
//
//	r, err := radix.New(16)
//	if err != nil {
//	  // handle ErrInvalidBase
//	}
//	v, err := r.ToDecimal("7FFFFFFF") // 2147483647
//
//	// or in one call
//	v, err = radix.ToDecimal("764241", 8) // 256161
//
// Errors:
//
//   - ErrInvalidArgument: bad base, empty input, digit outside the alphabet
//   - ErrOverflow:        more than MaxDigits characters, or a value above math.MaxInt32
//
// Performance:
//
//   - Time:   O(len(value))
//   - Memory: O(1)
package radix
