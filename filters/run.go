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

	"go.uber.org/zap"

	"github.com/boulund/wellness-filter-rows-columns/internal"
	"github.com/boulund/wellness-filter-rows-columns/table"
)

type (
	// An Output is a Sink that only becomes visible once committed.
	// Close without Commit discards it. *table.OutputFile is an Output.
	Output interface {
		Sink
		Commit() error
		Close() error
	}

	// CreateFunc creates the Output of a run. It is only called when
	// there is something to write.
	CreateFunc func() (Output, error)

	// Config holds the thresholds of one run.
	Config struct {
		MinRowsum Threshold
		MinColsum Threshold
		// Logger may be nil.
		Logger *zap.Logger
	}

	// A Report describes what a run did.
	Report struct {
		Mode Mode
		// Rows and Columns count the data rows and data columns of the
		// input table.
		Rows    int
		Columns int
		// Kept and Filtered count rows in RowMode, columns in ColumnMode.
		Kept     int
		Filtered int
		// Removed lists the labels of removed rows, or the names of
		// removed columns.
		Removed []string
	}
)

// Run filters the table of src according to cfg, and writes the
// result to the Output returned by create. When the thresholds select
// no mode, nothing is read or created, and the report's Mode is
// Rejected.
func Run(cfg Config, src table.Source, create CreateFunc) (Report, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	mode := SelectMode(cfg.MinRowsum, cfg.MinColsum)
	logger.Debug("selected filtering mode",
		zap.Stringer("mode", mode),
		zap.Stringer("rowsum", cfg.MinRowsum),
		zap.Stringer("colsum", cfg.MinColsum))
	switch mode {
	case RowMode:
		return runRows(cfg.MinRowsum, src, create, logger)
	case ColumnMode:
		return runColumns(cfg.MinColsum, src, create, logger)
	default:
		return Report{Mode: Rejected}, nil
	}
}

func runRows(minRowsum Threshold, src table.Source, create CreateFunc, logger *zap.Logger) (report Report, err error) {
	report.Mode = RowMode
	sc, err := src.Open()
	if err != nil {
		return report, err
	}
	defer internal.Close(sc, &err)
	report.Columns = sc.NumColumns()

	out, err := create()
	if err != nil {
		return report, err
	}
	defer internal.Close(out, &err)

	if err = out.WriteFields(sc.Header()); err != nil {
		return report, err
	}
	filterer := NewRowFilterer()
	if err = filterer.FilterRows(sc, minRowsum, out); err != nil {
		return report, fmt.Errorf("%w, while filtering rows", err)
	}
	if err = out.Commit(); err != nil {
		return report, err
	}
	logger.Debug("row filtering complete", zap.Int("kept", filterer.Kept), zap.Int("filtered", filterer.Filtered))

	report.Rows = filterer.Rows()
	report.Kept = filterer.Kept
	report.Filtered = filterer.Filtered
	report.Removed = filterer.Removed
	return report, nil
}

func runColumns(minColsum Threshold, src table.Source, create CreateFunc, logger *zap.Logger) (report Report, err error) {
	report.Mode = ColumnMode

	// pass 1
	sc, err := src.Open()
	if err != nil {
		return report, err
	}
	filterer := NewColumnFilterer(sc.NumColumns())
	rows, err := filterer.ComputeColsums(sc, minColsum)
	if nerr := sc.Close(); err == nil {
		err = nerr
	}
	if err != nil {
		return report, fmt.Errorf("%w, while computing column sums", err)
	}
	logger.Debug("column sums computed", zap.Int("rows", rows), zap.Int64s("colsums", filterer.ColSums))

	// pass 2
	sc, err = src.Open()
	if err != nil {
		return report, err
	}
	defer internal.Close(sc, &err)
	header := sc.Header()
	if len(header)-1 != filterer.NumColumns() {
		return report, fmt.Errorf("table header changed between passes: %v data columns, expected %v", len(header)-1, filterer.NumColumns())
	}

	out, err := create()
	if err != nil {
		return report, err
	}
	defer internal.Close(out, &err)

	if err = out.WriteFields(filterer.FilterHeader(header)); err != nil {
		return report, err
	}
	if err = filterer.FilterColumns(sc, out); err != nil {
		return report, fmt.Errorf("%w, while filtering columns", err)
	}
	if err = out.Commit(); err != nil {
		return report, err
	}
	logger.Debug("column filtering complete", zap.Int("kept", filterer.Kept()), zap.Int("filtered", filterer.Filtered()))

	report.Rows = rows
	report.Columns = filterer.NumColumns()
	report.Kept = filterer.Kept()
	report.Filtered = filterer.Filtered()
	report.Removed = filterer.RemovedColumns(header)
	return report, nil
}
