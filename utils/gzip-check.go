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

package utils

import (
	"bufio"
	"io"

	"github.com/klauspost/compress/gzip"
)

// IsGzip determines if the given byte scanner produces a gzip
// file. It uses ReadByte and UnreadByte to check only the initial
// byte from the input. An empty input is not a gzip file.
func IsGzip(scanner io.ByteScanner) (bool, error) {
	b, err := scanner.ReadByte()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := scanner.UnreadByte(); err != nil {
		return false, err
	}
	return b == 0x1f, nil
}

// HandleGzip checks if the given reader produces a gzip file by
// looking at the initial byte. It then either returns a gzip.Reader,
// or returns the given reader unchanged. The returned closer must be
// called once reading is done; it does not close buf's source.
func HandleGzip(buf *bufio.Reader) (io.Reader, io.Closer, error) {
	ok, err := IsGzip(buf)
	if err != nil {
		return nil, nil, err
	}
	if !ok {
		return buf, io.NopCloser(nil), nil
	}
	r, err := gzip.NewReader(buf)
	if err != nil {
		return nil, nil, err
	}
	return r, r, nil
}
