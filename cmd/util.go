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
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"github.com/boulund/wellness-filter-rows-columns/internal"
	"github.com/boulund/wellness-filter-rows-columns/utils"
)

// ProgramMessage is the first line printed when the filter-table
// binary is called.
var ProgramMessage = fmt.Sprint(
	utils.ProgramName, " version ", utils.ProgramVersion,
	" compiled with ", runtime.Version(),
	" - see ", utils.ProgramURL, " for more information.",
)

// stdinName selects reading the table from standard input.
const stdinName = "-"

func logCheckFile(logger *zap.Logger, parameter, msg string, fields ...zap.Field) {
	if parameter != "" {
		fields = append(fields, zap.String("parameter", parameter))
	}
	logger.Error(msg, fields...)
}

func checkExist(logger *zap.Logger, parameter, filename string) bool {
	if len(filename) == 0 {
		logCheckFile(logger, parameter, "Missing filename")
		return false
	}
	if filename == stdinName {
		return true
	}
	info, err := os.Stat(filename)
	switch {
	case err == nil && info.IsDir():
		logCheckFile(logger, parameter, "File is a directory", zap.String("file", filename))
		return false
	case err == nil:
		return true
	case os.IsNotExist(err):
		logCheckFile(logger, parameter, "File does not exist", zap.String("file", filename))
		return false
	case os.IsPermission(err):
		logCheckFile(logger, parameter, "No permission to read file", zap.String("file", filename))
		return false
	default:
		logCheckFile(logger, parameter, "Cannot access file", zap.String("file", filename), zap.Error(err))
		return false
	}
}

func checkCreate(logger *zap.Logger, parameter, filename string) bool {
	if len(filename) == 0 {
		logCheckFile(logger, parameter, "Missing filename")
		return false
	}
	if info, err := os.Stat(filename); err == nil && info.IsDir() {
		logCheckFile(logger, parameter, "Output file is a directory", zap.String("file", filename))
		return false
	}
	// The file does not need to exist, it is created next to its
	// destination first and moved into place afterwards.
	if err := internal.DirWritable(filename); err != nil {
		logCheckFile(logger, parameter, "Cannot create file", zap.String("file", filename), zap.Error(err))
		return false
	}
	return true
}

func timedRun(timed bool, logger *zap.Logger, msg string, f func() error) error {
	if timed {
		logger.Info(msg)
		start := time.Now()
		defer func() {
			logger.Info("Elapsed time", zap.Duration("elapsed", time.Since(start)))
		}()
	}
	return f()
}
