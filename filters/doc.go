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

// Package filters removes rows or columns from count tables based on
// minimum sums.
//
// A RowFilterer makes a single pass over a table and drops every row
// whose sum is below the threshold. A ColumnFilterer needs two passes:
// ComputeColsums adds up all columns and derives a keep-mask, and
// FilterColumns applies that mask to a fresh scan of the same table.
// Both compare with an inclusive >=, so a row or column whose sum
// equals the threshold is kept.
//
// Run combines the two with the mode selection policy: exactly one
// active Threshold selects its mode, while both or neither results in
// Rejected, and nothing is read or written.
package filters
