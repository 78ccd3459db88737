// SPDX-License-Identifier: MIT

package predicate

import "errors"

// Series is the canonical boolean representation of a two-symbol sequence.
type Series []bool

// Tolerance bounds for the near-chance alternation criterion.
const (
	// DefaultTolerance is the customary ±10% band around chance level.
	DefaultTolerance = 0.1

	// MinTolerance demands exactly 50% agreement with every reference motif.
	MinTolerance = 0.0

	// MaxTolerance makes the alternation criterion vacuous.
	MaxTolerance = 0.5
)

// ErrInvalidTolerance indicates a tolerance outside [MinTolerance, MaxTolerance].
var ErrInvalidTolerance = errors.New("predicate: tolerance must be within [0, 0.5]")

// Report holds the outcome of every criterion for one series.
type Report struct {
	Balanced              bool // count(true) == n/2
	NoLongRuns            bool // no four equal elements in a row
	HalvesBalanced        bool // ≥ n/5 of each value per half
	ReversalsBounded      bool // changes between neighbours ≤ n/2
	NearChanceAlternation bool // 0.5 ± tolerance agreement with every motif
}

// Valid reports whether all criteria hold.
func (r Report) Valid() bool {
	return r.Balanced && r.NoLongRuns && r.HalvesBalanced && r.ReversalsBounded && r.NearChanceAlternation
}

// Failed lists the names of the criteria that do not hold, in evaluation order.
func (r Report) Failed() []string {
	var out []string
	if !r.Balanced {
		out = append(out, "balanced")
	}
	if !r.NoLongRuns {
		out = append(out, "no-long-runs")
	}
	if !r.HalvesBalanced {
		out = append(out, "halves-balanced")
	}
	if !r.ReversalsBounded {
		out = append(out, "reversals-bounded")
	}
	if !r.NearChanceAlternation {
		out = append(out, "near-chance-alternation")
	}
	return out
}

// ValidTolerance reports whether t lies in [MinTolerance, MaxTolerance].
// NaN is rejected.
func ValidTolerance(t float64) bool {
	return t >= MinTolerance && t <= MaxTolerance
}
