// SPDX-License-Identifier: MIT

package predicate

// IsValid reports whether s is a Gellermann series for the given tolerance.
//
// Criteria are evaluated in a fixed order with short-circuit AND:
//  1. Balanced
//  2. !HasLongRun
//  3. HalvesBalanced
//  4. ReversalsBounded
//  5. NearChanceAlternation
//
// Preconditions (not checked here): len(s) even, tolerance in [0, 0.5].
// An odd-length series simply fails criterion 1. The empty series is valid.
//
// Complexity: O(n).
func IsValid(s Series, tolerance float64) bool {
	return Balanced(s) &&
		!HasLongRun(s) &&
		HalvesBalanced(s) &&
		ReversalsBounded(s) &&
		NearChanceAlternation(s, tolerance)
}

// Evaluate runs every criterion on s, without short-circuit, and reports
// each outcome. Evaluate(s, t).Valid() == IsValid(s, t).
//
// Complexity: O(n).
func Evaluate(s Series, tolerance float64) Report {
	return Report{
		Balanced:              Balanced(s),
		NoLongRuns:            !HasLongRun(s),
		HalvesBalanced:        HalvesBalanced(s),
		ReversalsBounded:      ReversalsBounded(s),
		NearChanceAlternation: NearChanceAlternation(s, tolerance),
	}
}
