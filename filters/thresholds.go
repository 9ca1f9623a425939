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

import "strconv"

// Sentinel is the command line value that disables a threshold.
const Sentinel = -1.0

// A Threshold is an optional minimum sum. The zero value is disabled.
type Threshold struct {
	value  float64
	active bool
}

// Disabled returns a threshold that does not filter anything.
func Disabled() Threshold {
	return Threshold{}
}

// At returns an active threshold with the given minimum.
func At(min float64) Threshold {
	return Threshold{value: min, active: true}
}

// FromSentinel converts a command line value into a Threshold. Any
// value not above Sentinel disables the threshold, so -1 itself can
// never be used as a real minimum.
func FromSentinel(v float64) Threshold {
	if v <= Sentinel {
		return Disabled()
	}
	return At(v)
}

// Active reports whether the threshold filters at all.
func (t Threshold) Active() bool {
	return t.active
}

// Value returns the minimum sum, or Sentinel if the threshold is
// disabled.
func (t Threshold) Value() float64 {
	if !t.active {
		return Sentinel
	}
	return t.value
}

// Admits reports whether an integer sum meets the threshold. The
// boundary is inclusive, and fractional thresholds compare as real
// numbers: 5.5 rejects 5 and admits 6. A disabled threshold admits
// everything.
func (t Threshold) Admits(sum int64) bool {
	return !t.active || float64(sum) >= t.value
}

func (t Threshold) String() string {
	if !t.active {
		return "disabled"
	}
	return strconv.FormatFloat(t.value, 'g', -1, 64)
}

// Mode is the kind of filtering performed in one run.
type Mode int

const (
	// Rejected means both or neither threshold was active, and nothing
	// is filtered.
	Rejected Mode = iota
	// RowMode filters rows on their sums in a single pass.
	RowMode
	// ColumnMode filters columns on their sums in two passes.
	ColumnMode
)

func (m Mode) String() string {
	switch m {
	case RowMode:
		return "row"
	case ColumnMode:
		return "column"
	default:
		return "rejected"
	}
}

// CombinedModeMessage explains why a run with both or neither
// threshold did nothing.
const CombinedModeMessage = "Cannot do both row and column filtering at the same time, nor neither: set exactly one of --rowsum and --colsum."

// SelectMode decides the filtering mode from the two thresholds.
// Combined row and column filtering is never attempted.
func SelectMode(minRowsum, minColsum Threshold) Mode {
	switch {
	case minRowsum.Active() && !minColsum.Active():
		return RowMode
	case minColsum.Active() && !minRowsum.Active():
		return ColumnMode
	default:
		return Rejected
	}
}
