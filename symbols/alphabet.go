// SPDX-License-Identifier: MIT

package symbols

import (
	"iter"

	"github.com/katalvlaran/gellermann/predicate"
)

// Alphabet is an ordered pair of distinct symbols. Index 0 stands for true,
// index 1 for false.
type Alphabet[T comparable] [2]T

// DefaultAlphabet is the conventional ("A", "B") pair.
var DefaultAlphabet = Alphabet[string]{"A", "B"}

// NewAlphabet returns the alphabet (a, b). ErrInvalidAlphabet if a == b.
func NewAlphabet[T comparable](a, b T) (Alphabet[T], error) {
	alpha := Alphabet[T]{a, b}
	if err := alpha.Validate(); err != nil {
		return Alphabet[T]{}, err
	}
	return alpha, nil
}

// Validate reports ErrInvalidAlphabet when both symbols are equal.
func (a Alphabet[T]) Validate() error {
	if a[0] == a[1] {
		return symbolsErrorf("Alphabet", ErrInvalidAlphabet, "%v == %v", a[0], a[1])
	}
	return nil
}

// ToBoolean maps s to booleans: true iff the element equals s[0].
// The alphabet plays no role here. An empty s yields an empty series.
func ToBoolean[T comparable](s []T) predicate.Series {
	out := make(predicate.Series, len(s))
	if len(s) == 0 {
		return out
	}
	first := s[0]
	for i, v := range s {
		out[i] = v == first
	}
	return out
}

// FromBoolean maps true to a[0] and false to a[1].
func FromBoolean[T comparable](s predicate.Series, a Alphabet[T]) []T {
	out := make([]T, len(s))
	for i, v := range s {
		if v {
			out[i] = a[0]
		} else {
			out[i] = a[1]
		}
	}
	return out
}

// MapSeq lazily maps every boolean series of seq through a.
func MapSeq[T comparable](seq iter.Seq[predicate.Series], a Alphabet[T]) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for s := range seq {
			if !yield(FromBoolean(s, a)) {
				return
			}
		}
	}
}
