// SPDX-License-Identifier: MIT

package generator

import (
	"math/rand"

	"github.com/katalvlaran/gellermann/predicate"
)

// shuffleInPlace performs an in-place Fisher–Yates shuffle of s using r.
// Every permutation of s is equally likely.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleInPlace(s predicate.Series, r *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		s[i], s[j] = s[j], s[i]
	}
}

// balancedSeries returns n/2 true elements followed by n/2 false elements.
func balancedSeries(n int) predicate.Series {
	s := make(predicate.Series, n)
	for i := 0; i < n/2; i++ {
		s[i] = true
	}
	return s
}

// validateLength checks that n is a usable series length.
func validateLength(method string, n int) error {
	if n < 0 || n%2 != 0 {
		return wrapf(method, ErrInvalidGenerationRequest, "length %d must be even and non-negative", n)
	}
	return nil
}

// validateTolerance checks the configured tolerance.
func validateTolerance(method string, t float64) error {
	if !predicate.ValidTolerance(t) {
		return wrapf(method, predicate.ErrInvalidTolerance, "tolerance %v", t)
	}
	return nil
}
