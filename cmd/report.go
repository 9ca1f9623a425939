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

package cmd

import (
	"fmt"
	"io"

	"github.com/boulund/wellness-filter-rows-columns/filters"
)

func printReport(w io.Writer, report filters.Report) {
	var what string
	switch report.Mode {
	case filters.RowMode:
		what = "row"
	case filters.ColumnMode:
		what = "column"
	default:
		fmt.Fprintln(w, filters.CombinedModeMessage)
		return
	}
	fmt.Fprintf(w, "Filtered %v %vs.\n", report.Filtered, what)
	fmt.Fprintf(w, "Filtered %v(s):\n", what)
	for _, id := range report.Removed {
		fmt.Fprintln(w, id)
	}
	fmt.Fprintf(w, "Read table containing %v rows, %v columns.\n", report.Rows, report.Columns)
}
