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

import (
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/boulund/wellness-filter-rows-columns/table"
)

// emptyIndexLabel replaces a blank index column label in the output
// header.
const emptyIndexLabel = " "

// A ColumnFilterer removes columns whose sum is below a minimum, in
// two passes over the same table. ComputeColsums must see the whole
// table before FilterColumns is called on a fresh scanner.
type ColumnFilterer struct {
	numColumns int
	// ColSums holds the per-column totals after ComputeColsums.
	ColSums []int64
	keep    *bitset.BitSet
	values  []int64
}

// NewColumnFilterer allocates and initializes a ColumnFilterer for a
// table with the given number of data columns.
func NewColumnFilterer(numColumns int) *ColumnFilterer {
	return &ColumnFilterer{
		numColumns: numColumns,
		ColSums:    make([]int64, numColumns),
		keep:       bitset.New(uint(numColumns)),
	}
}

func (f *ColumnFilterer) parse(sc *table.Scanner) ([]int64, error) {
	row := sc.Row()
	if row.Len() != f.numColumns {
		return nil, &WidthError{Line: sc.Line(), Label: row.Label, Got: row.Len(), Want: f.numColumns}
	}
	values, err := ParseValues(row, sc.Line(), f.values)
	f.values = values
	return values, err
}

// ComputeColsums is the first pass. It adds up every column of the
// data rows of sc, and marks the columns whose sum meets minColsum.
// It returns the number of data rows read.
func (f *ColumnFilterer) ComputeColsums(sc *table.Scanner, minColsum Threshold) (rows int, err error) {
	for i := range f.ColSums {
		f.ColSums[i] = 0
	}
	for sc.Scan() {
		values, err := f.parse(sc)
		if err != nil {
			return rows, err
		}
		for i, v := range values {
			f.ColSums[i] += v
		}
		rows++
	}
	if err := sc.Err(); err != nil {
		return rows, err
	}
	f.keep.ClearAll()
	for i, colsum := range f.ColSums {
		if minColsum.Admits(colsum) {
			f.keep.Set(uint(i))
		}
	}
	return rows, nil
}

// Mask returns the keep-mask computed by ComputeColsums. Bit i is set
// iff data column i is retained.
func (f *ColumnFilterer) Mask() *bitset.BitSet {
	return f.keep
}

// NumColumns returns the number of data columns of the input table.
func (f *ColumnFilterer) NumColumns() int {
	return f.numColumns
}

// Kept returns the number of retained data columns.
func (f *ColumnFilterer) Kept() int {
	return int(f.keep.Count())
}

// Filtered returns the number of removed data columns.
func (f *ColumnFilterer) Filtered() int {
	return f.numColumns - f.Kept()
}

// FilterHeader returns the index column label followed by the names
// of the retained columns. A blank index label is replaced by a
// single space.
func (f *ColumnFilterer) FilterHeader(header []string) []string {
	label := ""
	if len(header) > 0 {
		label = header[0]
	}
	if strings.TrimSpace(label) == "" {
		label = emptyIndexLabel
	}
	result := make([]string, 1, f.Kept()+1)
	result[0] = label
	for i, ok := f.keep.NextSet(0); ok; i, ok = f.keep.NextSet(i + 1) {
		result = append(result, header[i+1])
	}
	return result
}

// RemovedColumns returns the names of the removed columns, in table
// order.
func (f *ColumnFilterer) RemovedColumns(header []string) (removed []string) {
	for i := 0; i < f.numColumns; i++ {
		if !f.keep.Test(uint(i)) {
			removed = append(removed, header[i+1])
		}
	}
	return removed
}

// FilterColumns is the second pass. For every data row of the fresh
// scanner sc, it passes the row label followed by the retained values
// to sink.
func (f *ColumnFilterer) FilterColumns(sc *table.Scanner, sink Sink) error {
	fields := make([]string, 0, f.Kept()+1)
	for sc.Scan() {
		values, err := f.parse(sc)
		if err != nil {
			return err
		}
		fields = append(fields[:0], sc.Row().Label)
		for i, ok := f.keep.NextSet(0); ok; i, ok = f.keep.NextSet(i + 1) {
			fields = append(fields, strconv.FormatInt(values[i], 10))
		}
		if err := sink.WriteFields(fields); err != nil {
			return err
		}
	}
	return sc.Err()
}
