// SPDX-License-Identifier: MIT

package generator

import (
	"errors"
	"fmt"
)

// ErrInvalidGenerationRequest indicates an odd or negative length n, or a
// non-positive count m.
// Usage: if errors.Is(err, ErrInvalidGenerationRequest) { /* fix n/m */ }.
var ErrInvalidGenerationRequest = errors.New("generator: invalid generation request")

// Method names used as error context.
const (
	methodSample    = "Sample"
	methodEnumerate = "Enumerate"
	methodCount     = "Count"
)

// wrapf attaches method context to a sentinel while keeping it visible to
// errors.Is, producing "<method>: <message>: <sentinel>".
func wrapf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
