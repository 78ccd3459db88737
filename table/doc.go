// SPDX-License-Identifier: MIT

// Package table reshapes a batch of generated series into the two tabular
// layouts used for export.
//
//	Wide: one row per series            Long: one row per element
//	series_i,element_0,...,element_n-1  series_i,element_i,element
//	0,A,B,...                           0,0,A
//	1,B,B,...                           0,1,B
//
// Tables are read-only views rebuilt from the batch on every call. Write
// renders a table as CSV (header and index columns, the export format) or
// as TSV (bare values, one series per line, suited to pasting into a
// spreadsheet).
package table
