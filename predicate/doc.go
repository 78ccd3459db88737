// SPDX-License-Identifier: MIT

// Package predicate decides whether a boolean series is a Gellermann series.
//
// 🚀 What is a Gellermann series?
//
//	A binary order of trials (left/right, A/B, ...) used in perception
//	experiments. It must look random to a subject while staying balanced:
//	  • exactly as many true as false elements
//	  • no run of four or more equal elements
//	  • at least n/5 of each value in both halves
//	  • at most n/2 reversals between neighbours
//	  • 50% ± tolerance agreement with single and double alternation
//
// ✨ Key features:
//   - IsValid: short-circuit AND of the five criteria, cheapest first
//   - Evaluate: every criterion evaluated, reported one by one
//   - Motifs: the alternation reference motifs as a data table
//
// ⚙️ Usage:
//
//	s := predicate.Series{true, true, false, false, true, false, true, true, false, false}
//	ok := predicate.IsValid(s, predicate.DefaultTolerance)
//
// Note on the per-half threshold: p = ⌊n/5⌋ is taken from the TOTAL length,
// not from the half length, so each half needs roughly 40% of each value.
// The criterion is historically described as "twenty percent per half"; the
// literal n/5 rule is kept.
//
// Performance:
//
//   - Time:   O(n) per series
//   - Memory: O(1); reference motifs are indexed, never materialized
package predicate
