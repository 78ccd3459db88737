// SPDX-License-Identifier: MIT

// Package symbols maps between two-symbol series and boolean series.
//
// Two mappings exist on purpose and must not be merged:
//
//   - ToBoolean is self-referential: an element is true iff it equals the
//     first element of its own series. Validity can thus be checked on a
//     series whose alphabet is not known in advance.
//   - FromBoolean is alphabet-driven: true becomes alphabet[0] and false
//     becomes alphabet[1]. Generated output uses this direction.
//
// IsGellermannSeries wraps the predicate with input validation: odd length,
// more than two distinct symbols and an out-of-range tolerance are errors.
package symbols
