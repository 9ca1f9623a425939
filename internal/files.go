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

package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// FileOpen is os.Open with the filename added to the error.
func FileOpen(filename string) (*os.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open %v: %w", filename, err)
	}
	return f, nil
}

// FileCreate is os.Create with the filename added to the error.
func FileCreate(filename string) (*os.File, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot create %v: %w", filename, err)
	}
	return f, nil
}

// Close closes c and stores its error in *err, unless *err already
// holds an earlier error. It is meant to be deferred.
func Close(c io.Closer, err *error) {
	if nerr := c.Close(); *err == nil {
		*err = nerr
	}
}

// FullPathname returns an absolute version of filename.
func FullPathname(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		return filename, nil
	}
	wd, err := os.Getwd()
	return filepath.Join(wd, filename), err
}

// DirWritable reports whether new files can be created in the
// directory that would contain filename.
func DirWritable(filename string) error {
	dir := filepath.Dir(filename)
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("directory %v is not writable: %w", dir, err)
	}
	return nil
}
