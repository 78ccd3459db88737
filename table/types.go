// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"
	"strconv"
)

// Column names shared by both layouts.
const (
	ColumnSeries        = "series_i"
	ColumnElementIndex  = "element_i"
	ColumnElement       = "element"
	elementColumnPrefix = "element_"
)

var (
	// ErrMismatchedLength indicates a batch whose series differ in length.
	ErrMismatchedLength = errors.New("table: series lengths differ")

	// ErrUnknownFormat indicates an unsupported layout or output format name.
	ErrUnknownFormat = errors.New("table: unknown format")
)

// Table is the read-only view shared by Wide and Long.
type Table interface {
	// Columns returns the header, index columns first.
	Columns() []string
	// Records returns every row rendered as strings, index columns first.
	Records() [][]string
	// Values returns the symbol cells only, one slice per series.
	Values() [][]string
	// Len returns the number of rows.
	Len() int
}

// Layout selects the wide or long shape.
type Layout int

const (
	// WideLayout has one row per series.
	WideLayout Layout = iota
	// LongLayout has one row per (series, position).
	LongLayout
)

// String returns "wide" or "long".
func (l Layout) String() string {
	switch l {
	case WideLayout:
		return "wide"
	case LongLayout:
		return "long"
	default:
		return "Layout(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLayout maps "wide" or "long" to a Layout.
func ParseLayout(name string) (Layout, error) {
	switch name {
	case "wide", "":
		return WideLayout, nil
	case "long":
		return LongLayout, nil
	default:
		return WideLayout, tableErrorf("ParseLayout", ErrUnknownFormat, "%q", name)
	}
}

// ElementColumn returns the wide-layout column name of position j.
func ElementColumn(j int) string {
	return elementColumnPrefix + strconv.Itoa(j)
}

// cell renders one symbol. Runes (int32) render as characters.
func cell[T comparable](v T) string {
	switch x := any(v).(type) {
	case string:
		return x
	case rune:
		return string(x)
	default:
		return fmt.Sprint(v)
	}
}
