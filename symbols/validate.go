// SPDX-License-Identifier: MIT

package symbols

import (
	"strings"
	"unicode"

	"github.com/katalvlaran/gellermann/predicate"
)

// distinctLimit is the largest number of distinct symbols a series may hold.
const distinctLimit = 2

// IsGellermannSeries reports whether s, a series over at most two symbols,
// is a Gellermann series for the given tolerance.
//
// Validation order:
//  1. odd length             → ErrInvalidLength
//  2. > 2 distinct symbols   → ErrTooManySymbols
//  3. tolerance ∉ [0, 0.5]   → predicate.ErrInvalidTolerance
//
// The empty series is valid. Otherwise s is mapped with ToBoolean and
// handed to predicate.IsValid, so the answer does not depend on which two
// symbols are used.
//
// Complexity: O(n).
func IsGellermannSeries[T comparable](s []T, tolerance float64) (bool, error) {
	const method = "IsGellermannSeries"
	if len(s)%2 != 0 {
		return false, symbolsErrorf(method, ErrInvalidLength, "length %d", len(s))
	}
	if k := distinct(s); k > distinctLimit {
		return false, symbolsErrorf(method, ErrTooManySymbols, "%d distinct symbols", k)
	}
	if !predicate.ValidTolerance(tolerance) {
		return false, symbolsErrorf(method, predicate.ErrInvalidTolerance, "tolerance %v", tolerance)
	}
	if len(s) == 0 {
		return true, nil
	}
	return predicate.IsValid(ToBoolean(s), tolerance), nil
}

// Explain is IsGellermannSeries returning the per-criterion report instead
// of a single verdict. The empty series reports every criterion as held.
func Explain[T comparable](s []T, tolerance float64) (predicate.Report, error) {
	if _, err := IsGellermannSeries(s, tolerance); err != nil {
		return predicate.Report{}, err
	}
	return predicate.Evaluate(ToBoolean(s), tolerance), nil
}

// distinct counts distinct values in s, stopping early past distinctLimit.
func distinct[T comparable](s []T) int {
	seen := make(map[T]struct{}, distinctLimit+1)
	for _, v := range s {
		seen[v] = struct{}{}
		if len(seen) > distinctLimit {
			break
		}
	}
	return len(seen)
}

// Tokenize splits a textual series into symbols. When text contains
// whitespace or commas it is split on them ("L R R L", "A,B,B,A");
// otherwise every rune is one symbol ("LRRL").
func Tokenize(text string) []string {
	sep := func(r rune) bool { return unicode.IsSpace(r) || r == ',' }
	if strings.IndexFunc(text, sep) >= 0 {
		return strings.FieldsFunc(text, sep)
	}
	out := make([]string, 0, len(text))
	for _, r := range text {
		out = append(out, string(r))
	}
	return out
}
