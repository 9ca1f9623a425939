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
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/boulund/wellness-filter-rows-columns/filters"
)

// EnvPrefix prefixes the environment variables that can stand in for
// command line flags, as in FILTER_TABLE_ROWSUM.
const EnvPrefix = "FILTER_TABLE"

// Flag names.
const (
	flagOutfile  = "outfile"
	flagRowsum   = "rowsum"
	flagColsum   = "colsum"
	flagLogLevel = "log-level"
	flagTimed    = "timed"
	flagConfig   = "config"
)

// DefaultOutfile is the output filename used when none is given.
const DefaultOutfile = "filtered_table.tsv"

// Options are the resolved parameters of one invocation.
type Options struct {
	Outfile  string
	Rowsum   float64
	Colsum   float64
	LogLevel string
	Timed    bool
}

// Thresholds converts the sentinel based command line values into
// Thresholds.
func (opts Options) Thresholds() (minRowsum, minColsum filters.Threshold) {
	return filters.FromSentinel(opts.Rowsum), filters.FromSentinel(opts.Colsum)
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringP(flagOutfile, "o", DefaultOutfile, "output filename")
	flags.Float64P(flagRowsum, "r", filters.Sentinel, "minimum row sum to include row in output, -1 skips row filtering")
	flags.Float64P(flagColsum, "c", filters.Sentinel, "minimum column sum to include column in output, -1 skips column filtering")
	flags.String(flagLogLevel, "info", "log level (debug, info, warn, error)")
	flags.Bool(flagTimed, false, "log the time spent filtering")
	flags.String(flagConfig, "", "read default parameters from a YAML, TOML or JSON file")
}

// loadOptions resolves the options from, in order of precedence,
// explicitly set flags, environment variables, the optional config
// file, and flag defaults.
func loadOptions(flags *pflag.FlagSet) (opts Options, err error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err = v.BindPFlags(flags); err != nil {
		return opts, err
	}
	if configFile := v.GetString(flagConfig); configFile != "" {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			return opts, fmt.Errorf("cannot read config file %v: %w", configFile, err)
		}
	}
	opts = Options{
		Outfile:  v.GetString(flagOutfile),
		Rowsum:   v.GetFloat64(flagRowsum),
		Colsum:   v.GetFloat64(flagColsum),
		LogLevel: v.GetString(flagLogLevel),
		Timed:    v.GetBool(flagTimed),
	}
	if opts.Outfile == "" {
		return opts, errors.New("empty output filename")
	}
	return opts, nil
}
