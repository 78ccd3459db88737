// SPDX-License-Identifier: MIT

package generator

import (
	"iter"
	"slices"

	"github.com/katalvlaran/gellermann/predicate"
)

// Enumerate returns a lazy sequence of every Gellermann series of length n,
// in counting order: false is the lower digit and position 0 the most
// significant, so the all-false series comes first and all-true last.
//
// The sequence is restartable; every range starts over from the first
// series. WithSeed, WithRand and WithMaxIterations are ignored.
//
// Errors:
//   - ErrInvalidGenerationRequest — n odd or negative.
//   - predicate.ErrInvalidTolerance — tolerance outside [0, 0.5].
//
// Complexity: O(n·2^n) time, O(n) memory. Intended for small n only.
func Enumerate(n int, opts ...Option) (iter.Seq[predicate.Series], error) {
	if err := validateLength(methodEnumerate, n); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	if err := validateTolerance(methodEnumerate, cfg.tolerance); err != nil {
		return nil, err
	}

	return func(yield func(predicate.Series) bool) {
		buf := make(predicate.Series, n)
		for {
			if predicate.IsValid(buf, cfg.tolerance) && !yield(slices.Clone(buf)) {
				return
			}
			if !increment(buf) {
				return
			}
		}
	}, nil
}

// Count returns the number of series Enumerate(n, opts...) yields.
func Count(n int, opts ...Option) (int, error) {
	seq, err := Enumerate(n, opts...)
	if err != nil {
		return 0, wrapf(methodCount, err, "length %d", n)
	}
	var k int
	for range seq {
		k++
	}
	return k, nil
}

// increment advances s to the next value in counting order and reports
// whether it did not wrap around past all-true.
func increment(s predicate.Series) bool {
	for i := len(s) - 1; i >= 0; i-- {
		if !s[i] {
			s[i] = true
			return true
		}
		s[i] = false
	}
	return false
}
