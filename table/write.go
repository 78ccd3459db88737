// SPDX-License-Identifier: MIT

package table

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Format selects how Write renders a table.
type Format int

const (
	// CSV writes the header row and index columns, comma separated.
	CSV Format = iota
	// TSV writes symbol values only, tab separated, one series per line.
	TSV
)

// ParseFormat maps "csv" or "tsv" to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "csv", "":
		return CSV, nil
	case "tsv":
		return TSV, nil
	default:
		return CSV, tableErrorf("ParseFormat", ErrUnknownFormat, "%q", name)
	}
}

// Write renders t to w in format f.
func Write(w io.Writer, t Table, f Format) error {
	cw := csv.NewWriter(w)
	switch f {
	case CSV:
		if err := cw.Write(t.Columns()); err != nil {
			return fmt.Errorf("Write: header: %w", err)
		}
		if err := cw.WriteAll(t.Records()); err != nil {
			return fmt.Errorf("Write: records: %w", err)
		}
	case TSV:
		cw.Comma = '\t'
		if err := cw.WriteAll(t.Values()); err != nil {
			return fmt.Errorf("Write: values: %w", err)
		}
	default:
		return tableErrorf("Write", ErrUnknownFormat, "format %d", int(f))
	}
	return nil
}

// tableErrorf prefixes a wrapped sentinel with method context.
func tableErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
