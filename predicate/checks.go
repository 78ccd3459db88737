// SPDX-License-Identifier: MIT

package predicate

// maxRun is the longest permitted run of equal elements.
const maxRun = 3

// Balanced reports whether s holds exactly n/2 true elements.
// Odd lengths are never balanced.
//
// Complexity: O(n).
func Balanced(s Series) bool {
	n := len(s)
	return n%2 == 0 && countTrue(s) == n/2
}

// HasLongRun reports whether s contains more than three equal elements in a
// row, i.e. some i in [0, n-4] with s[i] == s[i+1] == s[i+2] == s[i+3].
//
// Complexity: O(n).
func HasLongRun(s Series) bool {
	run := 1
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			run = 1
			continue
		}
		run++
		if run > maxRun {
			return true
		}
	}
	return false
}

// HalvesBalanced reports whether both halves of s hold at least ⌊n/5⌋ true
// and at least ⌊n/5⌋ false elements. The first half is s[:n/2], the second
// the remainder. The threshold uses the total length n.
//
// Complexity: O(n).
func HalvesBalanced(s Series) bool {
	n := len(s)
	p := n / 5
	first, second := s[:n/2], s[n/2:]

	t1, t2 := countTrue(first), countTrue(second)
	return t1 >= p && len(first)-t1 >= p && t2 >= p && len(second)-t2 >= p
}

// ReversalsBounded reports whether s changes value between neighbours at
// most ⌊n/2⌋ times.
//
// Complexity: O(n).
func ReversalsBounded(s Series) bool {
	var reversals int
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			reversals++
		}
	}
	return reversals <= len(s)/2
}

// NearChanceAlternation reports whether s agrees with every alternation
// reference motif on a fraction of positions within [0.5-tolerance,
// 0.5+tolerance]. An empty series passes.
//
// The fraction is float64(matches)/float64(n) and both bounds are computed
// at run time, so results are bit-identical to plain IEEE-754 evaluation.
//
// Complexity: O(n·len(motifs)).
func NearChanceAlternation(s Series, tolerance float64) bool {
	n := len(s)
	if n == 0 {
		return true
	}
	lo, hi := 0.5-tolerance, 0.5+tolerance
	for _, m := range alternationMotifs {
		frac := float64(m.agreement(s)) / float64(n)
		if frac < lo || frac > hi {
			return false
		}
	}
	return true
}

// countTrue returns the number of true elements in s.
func countTrue(s Series) int {
	var k int
	for _, v := range s {
		if v {
			k++
		}
	}
	return k
}
