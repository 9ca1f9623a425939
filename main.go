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

// filter-table removes low-signal rows (features) or columns
// (samples) from tab separated count tables, such as abundance
// tables, before downstream analysis.
//
// Rows are filtered on their row sums in a single pass over the
// table. Columns are filtered on their column sums in two passes: the
// first one adds up the columns, the second one writes out the
// retained columns. Filtering rows and columns in the same run is not
// supported.
//
// Please see https://github.com/boulund/wellness-filter-rows-columns
// for documentation of the tool.
package main

import (
	"fmt"
	"os"

	"github.com/boulund/wellness-filter-rows-columns/cmd"
)

func main() {
	fmt.Fprintln(os.Stderr, cmd.ProgramMessage)
	os.Exit(cmd.Execute())
}
