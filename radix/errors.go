package radix

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them via errors.Is.
var (
	// ErrInvalidArgument marks malformed input: bad base, bad digit, empty value.
	ErrInvalidArgument = errors.New("radix: invalid argument")

	// ErrOverflow marks a value (or an input length) that int32 cannot hold.
	ErrOverflow = errors.New("radix: int32 overflow")
)

// Specific sentinels. Each wraps its kind, so both
// errors.Is(err, ErrInvalidDigit) and errors.Is(err, ErrInvalidArgument) hold.
var (
	// ErrInvalidBase indicates a base outside [MinBase, MaxBase] or a zero Radix.
	ErrInvalidBase = fmt.Errorf("%w: base must be in [2, 16]", ErrInvalidArgument)

	// ErrInvalidDigit indicates a character that is not in the radix alphabet.
	ErrInvalidDigit = fmt.Errorf("%w: digit not valid for base", ErrInvalidArgument)

	// ErrEmptyValue indicates an empty digit string.
	ErrEmptyValue = fmt.Errorf("%w: empty value", ErrInvalidArgument)

	// ErrNegativeValue indicates Format was asked to render a negative number.
	ErrNegativeValue = fmt.Errorf("%w: negative value", ErrInvalidArgument)

	// ErrTooManyDigits indicates an input longer than MaxDigits characters.
	ErrTooManyDigits = fmt.Errorf("%w: more than 32 digits", ErrOverflow)
)

// radixErrorf prefixes err with an operation tag, keeping it matchable.
func radixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
