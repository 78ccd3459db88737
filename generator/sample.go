// SPDX-License-Identifier: MIT

package generator

import (
	"iter"
	"slices"

	"github.com/katalvlaran/gellermann/predicate"
)

// Sample returns a lazy sequence of up to m random Gellermann series of
// length n.
//
// Algorithm:
//  1. Start from n/2 true followed by n/2 false.
//  2. Per attempt, shuffle the buffer in place and test it with
//     predicate.IsValid; yield a copy when valid.
//  3. Stop after m series, or after WithMaxIterations attempts in total.
//
// The sequence is resumable, not restartable: the remaining count, the
// attempt budget and the random source are shared by every range over it,
// so ranging again continues where the previous loop stopped.
//
// Errors (returned before any work is done):
//   - ErrInvalidGenerationRequest — n odd or negative, or m <= 0.
//   - predicate.ErrInvalidTolerance — tolerance outside [0, 0.5].
//
// Complexity: O(n) per attempt; the number of attempts is unbounded unless
// WithMaxIterations is set.
func Sample(n, m int, opts ...Option) (iter.Seq[predicate.Series], error) {
	if err := validateLength(methodSample, n); err != nil {
		return nil, err
	}
	if m <= 0 {
		return nil, wrapf(methodSample, ErrInvalidGenerationRequest, "count %d must be positive", m)
	}
	cfg := newConfig(opts...)
	if err := validateTolerance(methodSample, cfg.tolerance); err != nil {
		return nil, err
	}

	var (
		rng       = cfg.random()
		buf       = balancedSeries(n)
		remaining = m
		attempts  = 0
	)
	return func(yield func(predicate.Series) bool) {
		for remaining > 0 && (cfg.maxIterations == 0 || attempts < cfg.maxIterations) {
			attempts++
			shuffleInPlace(buf, rng)
			if !predicate.IsValid(buf, cfg.tolerance) {
				continue
			}
			remaining--
			if !yield(slices.Clone(buf)) {
				return
			}
		}
	}, nil
}
