// SPDX-License-Identifier: MIT

package symbols

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength indicates a series of odd length.
	ErrInvalidLength = errors.New("symbols: series length must be even")

	// ErrTooManySymbols indicates a series with more than two distinct values.
	ErrTooManySymbols = errors.New("symbols: series holds more than two distinct symbols")

	// ErrInvalidAlphabet indicates an alphabet whose two symbols are equal.
	ErrInvalidAlphabet = errors.New("symbols: alphabet symbols must differ")
)

// symbolsErrorf prefixes a wrapped sentinel with method context.
func symbolsErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
