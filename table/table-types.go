// filter-table: filter rows or columns of tab-separated count tables.
// Copyright (c) 2017-2026 Fredrik Boulund.

// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version, and Additional Terms
// (see below).

// This program is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Affero General Public License for more details.

// You should have received a copy of the GNU Affero General Public
// License and Additional Terms along with this program. If not, see
// <https://github.com/boulund/wellness-filter-rows-columns/blob/master/LICENSE.txt>.

// Package table reads and writes tab-separated count tables.
//
// A table is a header line followed by data lines. The first field of
// the header labels the index column, the remaining header fields
// name the data columns. The first field of every data line is the
// row label, the remaining fields are the row's values.
//
// Tables are read through a Source, which hands out a fresh Scanner
// on every call to Open, so that callers that need more than one pass
// over a table can simply open it again.
package table

import "errors"

// Separator is the default field separator.
const Separator = "\t"

// ErrEmptyTable is returned when a source does not even contain a
// header line.
var ErrEmptyTable = errors.New("table has no header line")

// A Row is a data line of a table, split into its label and its raw
// value fields.
type Row struct {
	Label  string
	Fields []string
}

// Len returns the number of value fields in the row.
func (row Row) Len() int {
	return len(row.Fields)
}

// All returns the label followed by the value fields.
func (row Row) All() []string {
	result := make([]string, 0, len(row.Fields)+1)
	result = append(result, row.Label)
	return append(result, row.Fields...)
}
