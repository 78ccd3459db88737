// SPDX-License-Identifier: MIT

package table

import (
	"slices"
	"strconv"
)

// Wide holds one row per series; row i is keyed by series_i = i.
type Wide[T comparable] struct {
	width int
	rows  [][]T
}

// LongRow is one element of one series.
type LongRow[T comparable] struct {
	Series  int // series_i
	Element int // element_i
	Value   T   // element
}

// Long holds one row per (series_i, element_i) pair, ordered by series then
// position. The series count is kept apart from the rows, so a batch of
// empty series still regroups to the same number of series.
type Long[T comparable] struct {
	series int
	width  int
	rows   []LongRow[T]
}

// ToWide builds the wide layout of batch. Every series must share one
// length, else ErrMismatchedLength. The batch is copied.
//
// Complexity: O(m·n).
func ToWide[T comparable](batch [][]T) (*Wide[T], error) {
	width, err := commonWidth("ToWide", batch)
	if err != nil {
		return nil, err
	}
	rows := make([][]T, len(batch))
	for i, s := range batch {
		rows[i] = slices.Clone(s)
	}
	return &Wide[T]{width: width, rows: rows}, nil
}

// ToLong builds the long layout of batch. Every series must share one
// length, else ErrMismatchedLength.
//
// Complexity: O(m·n).
func ToLong[T comparable](batch [][]T) (*Long[T], error) {
	width, err := commonWidth("ToLong", batch)
	if err != nil {
		return nil, err
	}
	rows := make([]LongRow[T], 0, len(batch)*width)
	for i, s := range batch {
		for j, v := range s {
			rows = append(rows, LongRow[T]{Series: i, Element: j, Value: v})
		}
	}
	return &Long[T]{series: len(batch), width: width, rows: rows}, nil
}

// commonWidth returns the shared series length of batch (0 when empty).
func commonWidth[T comparable](method string, batch [][]T) (int, error) {
	if len(batch) == 0 {
		return 0, nil
	}
	width := len(batch[0])
	for i, s := range batch[1:] {
		if len(s) != width {
			return 0, tableErrorf(method, ErrMismatchedLength, "series %d has length %d, want %d", i+1, len(s), width)
		}
	}
	return width, nil
}

// Width returns the number of element columns.
func (w *Wide[T]) Width() int { return w.width }

// Len returns the number of series.
func (w *Wide[T]) Len() int { return len(w.rows) }

// Row returns a copy of series i.
func (w *Wide[T]) Row(i int) []T { return slices.Clone(w.rows[i]) }

// Columns returns series_i, element_0, ..., element_{n-1}.
func (w *Wide[T]) Columns() []string {
	cols := make([]string, 0, w.width+1)
	cols = append(cols, ColumnSeries)
	for j := 0; j < w.width; j++ {
		cols = append(cols, ElementColumn(j))
	}
	return cols
}

// Records renders every row with its series_i key.
func (w *Wide[T]) Records() [][]string {
	out := make([][]string, len(w.rows))
	for i, row := range w.rows {
		rec := make([]string, 0, len(row)+1)
		rec = append(rec, strconv.Itoa(i))
		for _, v := range row {
			rec = append(rec, cell(v))
		}
		out[i] = rec
	}
	return out
}

// Values renders the symbols of every row.
func (w *Wide[T]) Values() [][]string {
	out := make([][]string, len(w.rows))
	for i, row := range w.rows {
		vals := make([]string, len(row))
		for j, v := range row {
			vals[j] = cell(v)
		}
		out[i] = vals
	}
	return out
}

// Len returns the number of element rows.
func (l *Long[T]) Len() int { return len(l.rows) }

// Rows returns a copy of all rows.
func (l *Long[T]) Rows() []LongRow[T] { return slices.Clone(l.rows) }

// Columns returns series_i, element_i, element.
func (l *Long[T]) Columns() []string {
	return []string{ColumnSeries, ColumnElementIndex, ColumnElement}
}

// Records renders every row as (series_i, element_i, element).
func (l *Long[T]) Records() [][]string {
	out := make([][]string, len(l.rows))
	for i, r := range l.rows {
		out[i] = []string{strconv.Itoa(r.Series), strconv.Itoa(r.Element), cell(r.Value)}
	}
	return out
}

// Values renders the element column grouped per series.
func (l *Long[T]) Values() [][]string {
	series := l.Series()
	out := make([][]string, len(series))
	for i, s := range series {
		vals := make([]string, len(s))
		for j, v := range s {
			vals[j] = cell(v)
		}
		out[i] = vals
	}
	return out
}

// Series groups the rows by series_i, giving back the original batch in
// order.
func (l *Long[T]) Series() [][]T {
	out := make([][]T, l.series)
	for i := range out {
		out[i] = make([]T, 0, l.width)
	}
	for _, r := range l.rows {
		out[r.Series] = append(out[r.Series], r.Value)
	}
	return out
}
