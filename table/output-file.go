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

package table

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzip"

	"github.com/boulund/wellness-filter-rows-columns/internal"
)

// GzipExt is the file extension that selects gzip compression for
// output files.
const GzipExt = ".gz"

// ErrOutputClosed is returned when writing to an output file that was
// already committed or closed.
var ErrOutputClosed = errors.New("output file already closed")

// An OutputFile writes table lines to a temporary file next to its
// destination. The destination only appears once Commit succeeds;
// Close without Commit discards everything written so far.
type OutputFile struct {
	filename string
	tmpname  string
	sep      string
	file     *os.File
	gz       *gzip.Writer
	writer   *bufio.Writer
	closed   bool
}

// Create opens a new output file for the given destination. Lines
// are joined with sep, or with the default separator when sep is
// empty.
func Create(filename, sep string) (*OutputFile, error) {
	if sep == "" {
		sep = Separator
	}
	dir, base := filepath.Split(filename)
	tmpname := filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
	file, err := internal.FileCreate(tmpname)
	if err != nil {
		return nil, err
	}
	out := &OutputFile{
		filename: filename,
		tmpname:  tmpname,
		sep:      sep,
		file:     file,
	}
	if strings.HasSuffix(filename, GzipExt) {
		out.gz = gzip.NewWriter(file)
		out.writer = bufio.NewWriter(out.gz)
	} else {
		out.writer = bufio.NewWriter(file)
	}
	return out, nil
}

// Filename returns the destination of the output file.
func (out *OutputFile) Filename() string {
	return out.filename
}

// WriteFields writes one line consisting of the given fields.
func (out *OutputFile) WriteFields(fields []string) error {
	if out.closed {
		return ErrOutputClosed
	}
	if _, err := out.writer.WriteString(strings.Join(fields, out.sep)); err != nil {
		return fmt.Errorf("%w, while writing to %v", err, out.filename)
	}
	if err := out.writer.WriteByte('\n'); err != nil {
		return fmt.Errorf("%w, while writing to %v", err, out.filename)
	}
	return nil
}

// Commit flushes all pending output and moves the temporary file onto
// the destination.
func (out *OutputFile) Commit() (err error) {
	if out.closed {
		return ErrOutputClosed
	}
	out.closed = true
	defer func() {
		if err != nil {
			_ = os.Remove(out.tmpname)
		}
	}()
	if err = out.writer.Flush(); err != nil {
		_ = out.file.Close()
		return fmt.Errorf("%w, while writing to %v", err, out.filename)
	}
	if out.gz != nil {
		if err = out.gz.Close(); err != nil {
			_ = out.file.Close()
			return fmt.Errorf("%w, while compressing %v", err, out.filename)
		}
	}
	if err = out.file.Close(); err != nil {
		return fmt.Errorf("%w, while closing %v", err, out.filename)
	}
	if err = os.Rename(out.tmpname, out.filename); err != nil {
		return fmt.Errorf("cannot move output into place: %w", err)
	}
	return nil
}

// Close discards the output file unless it was committed. It is safe
// to call Close after Commit, and more than once.
func (out *OutputFile) Close() error {
	if out.closed {
		return nil
	}
	out.closed = true
	err := out.file.Close()
	if rerr := os.Remove(out.tmpname); err == nil {
		err = rerr
	}
	return err
}
