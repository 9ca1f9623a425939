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
	"fmt"
	"strconv"
	"strings"

	"github.com/boulund/wellness-filter-rows-columns/table"
)

// A ParseError reports a data value that is not an integer.
type ParseError struct {
	Line   int
	Label  string
	Column int // 1-based, counting data columns only
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %v, row %q: value %q in data column %v is not an integer", e.Line, e.Label, e.Value, e.Column)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// A WidthError reports a data row whose number of values differs
// from the number of data columns in the header.
type WidthError struct {
	Line  int
	Label string
	Got   int
	Want  int
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("line %v, row %q: %v values, but the header names %v data columns", e.Line, e.Label, e.Got, e.Want)
}

// ParseValues parses the value fields of row as integers. The result
// is appended to buf[:0], so that callers can reuse one buffer for a
// whole table.
func ParseValues(row table.Row, line int, buf []int64) ([]int64, error) {
	values := buf[:0]
	for i, field := range row.Fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return values, &ParseError{
				Line:   line,
				Label:  row.Label,
				Column: i + 1,
				Value:  field,
				Err:    err,
			}
		}
		values = append(values, v)
	}
	return values, nil
}

// RowSum returns the sum of the values of row.
func RowSum(row table.Row, line int) (sum int64, err error) {
	for i, field := range row.Fields {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return 0, &ParseError{Line: line, Label: row.Label, Column: i + 1, Value: field, Err: err}
		}
		sum += v
	}
	return sum, nil
}
