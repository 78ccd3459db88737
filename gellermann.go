// SPDX-License-Identifier: MIT

package gellermann

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/gellermann/generator"
	"github.com/katalvlaran/gellermann/predicate"
	"github.com/katalvlaran/gellermann/symbols"
	"github.com/katalvlaran/gellermann/table"
)

// DefaultTolerance is the default near-chance alternation tolerance.
const DefaultTolerance = predicate.DefaultTolerance

// DefaultAlphabet is ("A", "B").
var DefaultAlphabet = symbols.DefaultAlphabet

// IsGellermannSeries reports whether s is a Gellermann series.
// See symbols.IsGellermannSeries for the error contract.
func IsGellermannSeries[T comparable](s []T, tolerance float64) (bool, error) {
	return symbols.IsGellermannSeries(s, tolerance)
}

// GenerateGellermannSeries returns a lazy sequence of up to m random
// Gellermann series of length n over alphabet a. Fewer than m series are
// produced when a WithMaxIterations budget runs out; that is not an error.
func GenerateGellermannSeries[T comparable](n, m int, a symbols.Alphabet[T], opts ...generator.Option) (iter.Seq[[]T], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	seq, err := generator.Sample(n, m, opts...)
	if err != nil {
		return nil, err
	}
	return symbols.MapSeq(seq, a), nil
}

// GenerateAllGellermannSeries returns a lazy, restartable sequence of every
// Gellermann series of length n over alphabet a, in counting order with
// a[1] before a[0].
func GenerateAllGellermannSeries[T comparable](n int, a symbols.Alphabet[T], opts ...generator.Option) (iter.Seq[[]T], error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	seq, err := generator.Enumerate(n, opts...)
	if err != nil {
		return nil, err
	}
	return symbols.MapSeq(seq, a), nil
}

// GenerateGellermannSeriesTable draws up to m series of length n and
// returns them in the requested layout.
func GenerateGellermannSeriesTable[T comparable](n, m int, layout table.Layout, a symbols.Alphabet[T], opts ...generator.Option) (table.Table, error) {
	seq, err := GenerateGellermannSeries(n, m, a, opts...)
	if err != nil {
		return nil, err
	}
	batch := slices.Collect(seq)
	switch layout {
	case table.LongLayout:
		l, err := table.ToLong(batch)
		if err != nil {
			return nil, err
		}
		return l, nil
	case table.WideLayout:
		w, err := table.ToWide(batch)
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, fmt.Errorf("GenerateGellermannSeriesTable: layout %v: %w", layout, table.ErrUnknownFormat)
	}
}
