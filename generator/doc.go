// SPDX-License-Identifier: MIT

// Package generator produces boolean Gellermann series.
//
// Two strategies share the predicate package as acceptance filter:
//
//   - Sample: rejection sampling. A fixed-composition buffer (n/2 true,
//     n/2 false) is shuffled in place on every attempt; valid permutations
//     are yielded as copies until m series were produced or the attempt
//     budget is spent. A spent budget yields a short result, not an error.
//   - Enumerate: exhaustive enumeration of all 2^n series in counting order
//     (false < true, position 0 most significant), filtered by the predicate.
//
// Both return iter.Seq values: one series is materialized per pull and the
// consumer cancels by breaking out of the range loop.
//
// ⚙️ Usage:
//
//	seq, err := generator.Sample(10, 5, generator.WithSeed(42), generator.WithMaxIterations(1000))
//	if err != nil {
//		return err
//	}
//	for s := range seq {
//		fmt.Println(s)
//	}
//
// Determinism: the same seed, n and m always produce the same series in the
// same order. Without WithSeed or WithRand the source is seeded from the
// clock. A *rand.Rand is not goroutine-safe; do not share one across
// concurrent sequences.
package generator
