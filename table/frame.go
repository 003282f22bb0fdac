// Package table provides the in-memory tabular frame used by the ingestion
// pipeline. Frames are small, column-ordered, and loosely typed: cells hold
// int64, float64, bool, or string depending on what the source file carried.
package table

import (
	"strconv"
	"strings"
)

// Frame is a decoded tabular dataset.
type Frame struct {
	Columns []string
	Rows    [][]any
}

// Empty is the well-known marker for a file that exists but has no rows.
// It is distinct from a missing file (which never reaches decoding) and
// passes through every filter step unchanged.
var Empty = &Frame{}

// IsEmpty reports whether the frame is the empty marker or carries no data.
func (f *Frame) IsEmpty() bool {
	return f == nil || (len(f.Columns) == 0 && len(f.Rows) == 0)
}

// NumRows returns the number of data rows.
func (f *Frame) NumRows() int {
	if f == nil {
		return 0
	}
	return len(f.Rows)
}

// Column returns the values of the named column and whether it exists.
func (f *Frame) Column(name string) ([]any, bool) {
	idx := f.columnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]any, 0, len(f.Rows))
	for _, row := range f.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		} else {
			values = append(values, nil)
		}
	}
	return values, true
}

func (f *Frame) columnIndex(name string) int {
	if f == nil {
		return -1
	}
	for i, col := range f.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Lowercase returns a frame with lowercased column names and string cells.
func (f *Frame) Lowercase() *Frame {
	if f.IsEmpty() {
		return Empty
	}
	out := &Frame{Columns: make([]string, len(f.Columns)), Rows: make([][]any, len(f.Rows))}
	for i, col := range f.Columns {
		out.Columns[i] = strings.ToLower(col)
	}
	for i, row := range f.Rows {
		newRow := make([]any, len(row))
		for j, cell := range row {
			if s, ok := cell.(string); ok {
				newRow[j] = strings.ToLower(s)
			} else {
				newRow[j] = cell
			}
		}
		out.Rows[i] = newRow
	}
	return out
}

// LowercaseColumns returns a frame with lowercased column names only.
// The returned frame shares Rows with the receiver; treat both as
// read-only after the call.
func (f *Frame) LowercaseColumns() *Frame {
	if f.IsEmpty() {
		return Empty
	}
	out := &Frame{Columns: make([]string, len(f.Columns)), Rows: f.Rows}
	for i, col := range f.Columns {
		out.Columns[i] = strings.ToLower(col)
	}
	return out
}

// Rename returns a frame with columns renamed per mapping. Columns absent
// from the mapping keep their names; mapping keys absent from the frame are
// ignored. The returned frame shares Rows with the receiver; treat both as
// read-only after the call.
func (f *Frame) Rename(mapping map[string]string) *Frame {
	if f.IsEmpty() || len(mapping) == 0 {
		return f
	}
	out := &Frame{Columns: make([]string, len(f.Columns)), Rows: f.Rows}
	for i, col := range f.Columns {
		if renamed, ok := mapping[col]; ok {
			out.Columns[i] = renamed
		} else {
			out.Columns[i] = col
		}
	}
	return out
}

// FilterEq returns the rows whose value in the named column equals value.
// A frame without the column is returned unchanged: filter steps must be
// total over optional fields.
func (f *Frame) FilterEq(column string, value any) *Frame {
	if f.IsEmpty() {
		return f
	}
	idx := f.columnIndex(column)
	if idx < 0 {
		return f
	}
	out := &Frame{Columns: f.Columns}
	for _, row := range f.Rows {
		if idx < len(row) && looseEqual(row[idx], value) {
			out.Rows = append(out.Rows, row)
		}
	}
	return out
}

// looseEqual compares cells across the scalar types a decoded file can
// produce. Numeric cells compare by value regardless of int/float type.
func looseEqual(a, b any) bool {
	if a == b {
		return true
	}
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
