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

package filters

import "github.com/boulund/wellness-filter-rows-columns/table"

type (
	// A Sink receives filtered table lines, header first. The fields
	// slice may be reused by the caller once WriteFields returns.
	Sink interface {
		WriteFields(fields []string) error
	}

	// SinkFunc adapts a function to the Sink interface.
	SinkFunc func(fields []string) error
)

// WriteFields implements the Sink interface.
func (f SinkFunc) WriteFields(fields []string) error {
	return f(fields)
}

// A RowFilterer removes rows whose sum is below a minimum. Its
// counters are only complete once FilterRows has returned.
type RowFilterer struct {
	// Filtered is the number of removed rows.
	Filtered int
	// Kept is the number of rows passed on to the sink.
	Kept int
	// Removed holds the labels of the removed rows, in table order.
	Removed []string
}

// NewRowFilterer allocates and initializes a new RowFilterer.
func NewRowFilterer() *RowFilterer {
	return &RowFilterer{}
}

// FilterRows passes every data row of sc whose sum meets minRowsum to
// sink, unchanged and in table order. The header is not touched; the
// caller writes it before calling FilterRows.
func (f *RowFilterer) FilterRows(sc *table.Scanner, minRowsum Threshold, sink Sink) error {
	for sc.Scan() {
		row := sc.Row()
		rowsum, err := RowSum(row, sc.Line())
		if err != nil {
			return err
		}
		if minRowsum.Admits(rowsum) {
			f.Kept++
			if err := sink.WriteFields(row.All()); err != nil {
				return err
			}
		} else {
			f.Filtered++
			f.Removed = append(f.Removed, row.Label)
		}
	}
	return sc.Err()
}

// Rows returns the number of data rows seen so far.
func (f *RowFilterer) Rows() int {
	return f.Kept + f.Filtered
}
