// SPDX-License-Identifier: MIT

package predicate

// motif is a short repeating pattern; the reference series of length n is
// the motif tiled and truncated to n.
type motif struct {
	name    string
	pattern []bool
}

// alternationMotifs is the closed set of references for the near-chance
// criterion. A series must agree with each of them on 50% ± tolerance of its
// positions.
var alternationMotifs = []motif{
	{name: "single", pattern: []bool{true, false}},
	{name: "double", pattern: []bool{true, true, false, false}},
	{name: "double-shifted", pattern: []bool{true, false, false, true}},
}

// Motifs returns the alternation reference motifs keyed by name.
// The returned slices are copies.
func Motifs() map[string][]bool {
	out := make(map[string][]bool, len(alternationMotifs))
	for _, m := range alternationMotifs {
		out[m.name] = append([]bool(nil), m.pattern...)
	}
	return out
}

// Reference returns the named motif tiled to length n, or nil if the name is
// unknown or n < 0.
func Reference(name string, n int) Series {
	if n < 0 {
		return nil
	}
	for _, m := range alternationMotifs {
		if m.name != name {
			continue
		}
		ref := make(Series, n)
		for i := range ref {
			ref[i] = m.at(i)
		}
		return ref
	}
	return nil
}

// at returns the tiled reference value at position i.
func (m motif) at(i int) bool {
	return m.pattern[i%len(m.pattern)]
}

// agreement counts the positions where s equals the tiled motif.
func (m motif) agreement(s Series) int {
	var k int
	for i, v := range s {
		if v == m.at(i) {
			k++
		}
	}
	return k
}
