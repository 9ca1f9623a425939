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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputFileCommit(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "out.tsv")
	out, err := Create(filename, "")
	require.NoError(t, err)
	assert.Equal(t, filename, out.Filename())

	require.NoError(t, out.WriteFields([]string{"id", "A"}))
	require.NoError(t, out.WriteFields([]string{"x", "1"}))

	_, err = os.Stat(filename)
	assert.True(t, os.IsNotExist(err), "destination must not exist before Commit")

	require.NoError(t, out.Commit())
	require.NoError(t, out.Close())

	data, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "id\tA\nx\t1\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file must be gone")

	assert.ErrorIs(t, out.WriteFields([]string{"y"}), ErrOutputClosed)
}

func TestOutputFileDiscard(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "out.tsv")
	out, err := Create(filename, "")
	require.NoError(t, err)
	require.NoError(t, out.WriteFields([]string{"id", "A"}))
	require.NoError(t, out.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.ErrorIs(t, out.Commit(), ErrOutputClosed)
}

func TestGzippedOutputFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "out.tsv.gz")
	out, err := Create(filename, "")
	require.NoError(t, err)
	require.NoError(t, out.WriteFields([]string{"id", "A"}))
	require.NoError(t, out.WriteFields([]string{"x", "7"}))
	require.NoError(t, out.Commit())

	header, rows := scanAll(t, NewFileSource(filename, ""))
	assert.Equal(t, []string{"id", "A"}, header)
	assert.Equal(t, []Row{{Label: "x", Fields: []string{"7"}}}, rows)
}

func TestCreateInMissingDirectory(t *testing.T) {
	_, err := Create(filepath.Join(t.TempDir(), "missing", "out.tsv"), "")
	assert.Error(t, err)
}
