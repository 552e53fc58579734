// Package models defines data structures for selectivity chart composition.
package models

import "math"

// Value is a numeric cell value or the missing marker.
type Value struct {
	// V is the numeric value. Meaningless when OK is false.
	V float64
	// OK reports whether the cell held a usable number.
	OK bool
}

// Number returns a present Value. Non-finite numbers are treated as missing.
func Number(v float64) Value {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Value{}
	}
	return Value{V: v, OK: true}
}

// Missing returns the missing-value marker.
func Missing() Value {
	return Value{}
}

// Row maps a column name to its coerced value.
type Row map[string]Value

// Table is a sheet's data section after the header row.
type Table struct {
	// Source is the file the table was loaded from.
	Source string `json:"source"`
	// Columns lists column names in header order.
	Columns []string `json:"columns"`
	// Rows holds data rows in file order.
	Rows []Row `json:"-"`
}

// HasColumn reports whether the header declared name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Column returns the values of one column in row order.
func (t *Table) Column(name string) ([]Value, error) {
	if !t.HasColumn(name) {
		return nil, &MissingColumnError{Column: name, Source: t.Source}
	}
	out := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[name]
	}
	return out, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
