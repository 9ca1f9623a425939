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
	"errors"
	"fmt"
)

// Exit codes of the filter-table binary.
const (
	// ExitSuccess also covers runs that were rejected because both or
	// neither threshold was set.
	ExitSuccess = 0

	// ExitUsage indicates missing or invalid command line parameters.
	ExitUsage = 1

	// ExitFailure indicates an I/O or parse error while filtering.
	ExitFailure = 2
)

// An ExitError carries the exit code a failed command should
// terminate with.
type ExitError struct {
	Code int
	Err  error
	// Reported is set when the error was already shown to the user,
	// for example together with the help text.
	Reported bool
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit code %v", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error, reported bool) *ExitError {
	return &ExitError{Code: ExitUsage, Err: err, Reported: reported}
}

// ExitCode returns the exit code for the result of a command.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
