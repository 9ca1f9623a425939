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
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/boulund/wellness-filter-rows-columns/internal"
	"github.com/boulund/wellness-filter-rows-columns/utils"
)

// maxLineLength bounds the length of a single table line.
const maxLineLength = 64 * 1024 * 1024

type (
	// A Source produces fresh scanners over the same table. Every call
	// to Open starts again at the header line.
	Source interface {
		Open() (*Scanner, error)
	}

	// A FileSource reopens a file on disk for every pass. Gzipped files
	// are decompressed transparently.
	FileSource struct {
		Filename  string
		Separator string
	}

	// A MemorySource holds the complete contents of a table in memory,
	// for inputs that cannot be reopened, like stdin.
	MemorySource struct {
		data      []byte
		separator string
	}
)

// NewFileSource returns a Source for the given file, using the
// default separator when sep is empty.
func NewFileSource(filename, sep string) *FileSource {
	if sep == "" {
		sep = Separator
	}
	return &FileSource{Filename: filename, Separator: sep}
}

// Open implements the Source interface.
func (src *FileSource) Open() (*Scanner, error) {
	file, err := internal.FileOpen(src.Filename)
	if err != nil {
		return nil, err
	}
	sc, err := newScanner(file, src.Separator, file)
	if err != nil {
		return nil, fmt.Errorf("%w, while reading %v", err, src.Filename)
	}
	return sc, nil
}

// NewMemorySource reads r to the end and keeps its contents.
func NewMemorySource(r io.Reader, sep string) (*MemorySource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if sep == "" {
		sep = Separator
	}
	return &MemorySource{data: data, separator: sep}, nil
}

// Open implements the Source interface.
func (src *MemorySource) Open() (*Scanner, error) {
	return newScanner(bytes.NewReader(src.data), src.separator, nil)
}

// A Scanner is a lazy sequence over the data rows of a table. The
// header line is read when the scanner is created.
//
//	sc, err := src.Open()
//	...
//	defer sc.Close()
//	for sc.Scan() {
//		row := sc.Row()
//		...
//	}
//	if err := sc.Err(); err != nil {
//		...
//	}
type Scanner struct {
	scanner *bufio.Scanner
	closers []io.Closer
	sep     string
	header  []string
	row     Row
	line    int
	err     error
	closed  bool
}

func newScanner(r io.Reader, sep string, source io.Closer) (sc *Scanner, err error) {
	var closers []io.Closer
	defer func() {
		if err != nil {
			for _, c := range closers {
				_ = c.Close()
			}
		}
	}()
	if source != nil {
		closers = append(closers, source)
	}
	data, gz, err := utils.HandleGzip(bufio.NewReader(r))
	if err != nil {
		return nil, err
	}
	// decompressor first, then the underlying file
	closers = append([]io.Closer{gz}, closers...)
	sc = &Scanner{
		scanner: bufio.NewScanner(data),
		closers: closers,
		sep:     sep,
	}
	sc.scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	if !sc.scanner.Scan() {
		if err = sc.scanner.Err(); err == nil {
			err = ErrEmptyTable
		}
		return nil, err
	}
	sc.line = 1
	// Only trailing whitespace is removed, an empty index label must survive.
	sc.header = strings.Split(strings.TrimRightFunc(sc.scanner.Text(), unicode.IsSpace), sep)
	return sc, nil
}

// Header returns the fields of the header line.
func (sc *Scanner) Header() []string {
	return sc.header
}

// NumColumns returns the number of data columns named by the header.
func (sc *Scanner) NumColumns() int {
	return len(sc.header) - 1
}

// Scan advances to the next data row. Blank lines are skipped. It
// returns false when the table is exhausted, when an error occurred,
// or when the scanner was closed.
func (sc *Scanner) Scan() bool {
	if sc.err != nil || sc.closed {
		return false
	}
	for sc.scanner.Scan() {
		sc.line++
		line := strings.TrimSpace(sc.scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, sc.sep)
		sc.row = Row{Label: fields[0], Fields: fields[1:]}
		return true
	}
	sc.err = sc.scanner.Err()
	return false
}

// Row returns the row produced by the most recent call to Scan.
func (sc *Scanner) Row() Row {
	return sc.row
}

// Line returns the 1-based line number of the current row.
func (sc *Scanner) Line() int {
	return sc.line
}

// Err returns the first read error encountered by the scanner.
func (sc *Scanner) Err() error {
	return sc.err
}

// Close releases the resources held by the scanner. It is safe to
// call Close more than once, and before the table is exhausted.
func (sc *Scanner) Close() (err error) {
	if sc.closed {
		return nil
	}
	sc.closed = true
	for _, c := range sc.closers {
		if nerr := c.Close(); err == nil {
			err = nerr
		}
	}
	return err
}
