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

// Package cmd implements the filter-table command line.
package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boulund/wellness-filter-rows-columns/filters"
	"github.com/boulund/wellness-filter-rows-columns/internal"
	"github.com/boulund/wellness-filter-rows-columns/table"
	"github.com/boulund/wellness-filter-rows-columns/utils"
)

// FilterDescription is the long help text of the command.
const FilterDescription = "Filter rows or columns from tab separated tables.\n" +
	"Assumes first row contains headers, and that the first column is the index column.\n" +
	"Use exactly one of --rowsum and --colsum per run. TABLE may be - to read from stdin,\n" +
	"and gzipped tables are read transparently. An OUTFILE ending in .gz is gzipped."

var errMissingTable = errors.New("missing TABLE parameter")

// NewFilterCommand returns the filter-table root command.
func NewFilterCommand() *cobra.Command {
	command := &cobra.Command{
		Use:           utils.ProgramName + " TABLE",
		Short:         "Filter rows or columns from tab separated tables",
		Long:          FilterDescription,
		Version:       utils.ProgramVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 0:
				_ = cmd.Help()
				return usageError(errMissingTable, true)
			case len(args) > 1:
				_ = cmd.Usage()
				return usageError(fmt.Errorf("cannot parse remaining parameters: %v", args[1:]), false)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := loadOptions(cmd.Flags())
			if err != nil {
				return usageError(err, false)
			}
			return Filter(args[0], opts, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	command.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		_ = cmd.Usage()
		return usageError(err, false)
	})
	addFlags(command.Flags())
	return command
}

// Execute runs the filter-table command with the process arguments,
// and returns the exit code.
func Execute() int {
	err := NewFilterCommand().Execute()
	var exitErr *ExitError
	if err != nil && !(errors.As(err, &exitErr) && exitErr.Reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return ExitCode(err)
}

func openSource(input string, stdin io.Reader) (table.Source, error) {
	if input == stdinName {
		return table.NewMemorySource(stdin, table.Separator)
	}
	return table.NewFileSource(input, table.Separator), nil
}

// Filter implements the filter-table command. The console report is
// written to stdout.
func Filter(input string, opts Options, stdin io.Reader, stdout io.Writer) (err error) {
	logger, err := internal.NewLogger(internal.LoggerConfig{Level: opts.LogLevel})
	if err != nil {
		return usageError(err, false)
	}
	defer func() {
		_ = logger.Sync()
	}()

	minRowsum, minColsum := opts.Thresholds()
	if filters.SelectMode(minRowsum, minColsum) == filters.Rejected {
		fmt.Fprintln(stdout, filters.CombinedModeMessage)
		return nil
	}

	// sanity checks

	var sanityChecksFailed bool

	if !checkExist(logger, "", input) {
		sanityChecksFailed = true
	}
	if !checkCreate(logger, "--outfile", opts.Outfile) {
		sanityChecksFailed = true
	}

	if sanityChecksFailed {
		return &ExitError{Code: ExitUsage, Err: errors.New("sanity checks failed")}
	}

	// building output command line

	var command bytes.Buffer
	fmt.Fprint(&command, utils.ProgramName, " ", input)
	fmt.Fprint(&command, " --outfile ", opts.Outfile)
	if minRowsum.Active() {
		fmt.Fprint(&command, " --rowsum ", minRowsum)
	}
	if minColsum.Active() {
		fmt.Fprint(&command, " --colsum ", minColsum)
	}
	if opts.Timed {
		fmt.Fprint(&command, " --timed")
	}

	// executing command

	logger.Info("Executing command", zap.String("command", command.String()))
	if input != stdinName {
		if fullInput, err := internal.FullPathname(input); err == nil {
			logger.Debug("Reading table", zap.String("file", fullInput))
		}
	}

	src, err := openSource(input, stdin)
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}

	cfg := filters.Config{
		MinRowsum: minRowsum,
		MinColsum: minColsum,
		Logger:    logger,
	}
	create := func() (filters.Output, error) {
		out, err := table.Create(opts.Outfile, table.Separator)
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	fmt.Fprintln(stdout, "Writing filtered table to", opts.Outfile)
	var report filters.Report
	err = timedRun(opts.Timed, logger, "Filtering table.", func() (err error) {
		report, err = filters.Run(cfg, src, create)
		return err
	})
	if err != nil {
		return &ExitError{Code: ExitFailure, Err: err}
	}
	printReport(stdout, report)
	return nil
}
