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
	"errors"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boulund/wellness-filter-rows-columns/table"
)

// memoryOutput is an Output that keeps committed lines in memory.
type memoryOutput struct {
	pending   [][]string
	lines     [][]string
	committed bool
	closed    bool
}

func (out *memoryOutput) WriteFields(fields []string) error {
	out.pending = append(out.pending, append([]string(nil), fields...))
	return nil
}

func (out *memoryOutput) Commit() error {
	out.lines, out.committed = out.pending, true
	return nil
}

func (out *memoryOutput) Close() error {
	out.closed = true
	return nil
}

func (out *memoryOutput) text() string {
	var b strings.Builder
	for _, line := range out.lines {
		b.WriteString(strings.Join(line, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

func source(t *testing.T, contents string) table.Source {
	t.Helper()
	src, err := table.NewMemorySource(strings.NewReader(contents), table.Separator)
	require.NoError(t, err)
	return src
}

func run(t *testing.T, cfg Config, contents string) (Report, *memoryOutput, error) {
	t.Helper()
	out := &memoryOutput{}
	created := false
	report, err := Run(cfg, source(t, contents), func() (Output, error) {
		created = true
		return out, nil
	})
	if !created {
		return report, nil, err
	}
	return report, out, err
}

func TestRowFilteringScenario(t *testing.T) {
	report, out, err := run(t, Config{MinRowsum: At(5)}, "id\tA\tB\nx\t1\t2\ny\t10\t10\n")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.True(t, out.committed)
	assert.True(t, out.closed)
	assert.Equal(t, "id\tA\tB\ny\t10\t10\n", out.text())
	assert.Equal(t, Report{
		Mode:     RowMode,
		Rows:     2,
		Columns:  2,
		Kept:     1,
		Filtered: 1,
		Removed:  []string{"x"},
	}, report)
}

func TestColumnFilteringScenario(t *testing.T) {
	report, out, err := run(t, Config{MinColsum: At(5)}, "id\tA\tB\tC\nx\t1\t10\t2\n")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "id\tB\nx\t10\n", out.text())
	assert.Equal(t, Report{
		Mode:     ColumnMode,
		Rows:     1,
		Columns:  3,
		Kept:     1,
		Filtered: 2,
		Removed:  []string{"A", "C"},
	}, report)
}

func TestRejectedModes(t *testing.T) {
	for _, cfg := range []Config{
		{MinRowsum: At(5), MinColsum: At(5)},
		{},
	} {
		report, out, err := run(t, cfg, "id\tA\nx\t1\n")
		require.NoError(t, err)
		assert.Nil(t, out, "no output may be created")
		assert.Equal(t, Rejected, report.Mode)
	}
}

func TestParseErrorWritesNothing(t *testing.T) {
	for _, cfg := range []Config{{MinRowsum: At(1)}, {MinColsum: At(1)}} {
		_, out, err := run(t, cfg, "id\tA\tB\nx\t1\t2\ny\t1\tmany\n")
		var parseErr *ParseError
		require.True(t, errors.As(err, &parseErr), "%v", err)
		assert.Equal(t, 3, parseErr.Line)
		assert.Equal(t, "y", parseErr.Label)
		assert.Equal(t, 2, parseErr.Column)
		assert.Equal(t, "many", parseErr.Value)
		if out != nil {
			assert.False(t, out.committed)
			assert.True(t, out.closed)
		}
	}
}

func TestColumnWidthError(t *testing.T) {
	_, _, err := run(t, Config{MinColsum: At(1)}, "id\tA\tB\nx\t1\n")
	var widthErr *WidthError
	require.True(t, errors.As(err, &widthErr), "%v", err)
	assert.Equal(t, 1, widthErr.Got)
	assert.Equal(t, 2, widthErr.Want)
}

func TestInclusiveBoundaries(t *testing.T) {
	_, out, err := run(t, Config{MinRowsum: At(3)}, "id\tA\tB\nx\t1\t2\ny\t1\t1\n")
	require.NoError(t, err)
	assert.Equal(t, "id\tA\tB\nx\t1\t2\n", out.text())

	_, out, err = run(t, Config{MinColsum: At(3)}, "id\tA\tB\nx\t1\t2\ny\t2\t0\n")
	require.NoError(t, err)
	assert.Equal(t, "id\tA\nx\t1\ny\t2\n", out.text())
}

func TestFractionalThreshold(t *testing.T) {
	report, out, err := run(t, Config{MinColsum: At(5.5)}, "id\tA\tB\tC\nx\t5\t6\t3\ny\t0\t0\t3\n")
	require.NoError(t, err)
	assert.Equal(t, "id\tB\tC\nx\t6\t3\ny\t0\t3\n", out.text())
	assert.Equal(t, []string{"A"}, report.Removed)
}

func TestEmptyIndexLabel(t *testing.T) {
	_, out, err := run(t, Config{MinColsum: At(1)}, "\tA\tB\nx\t1\t0\n")
	require.NoError(t, err)
	assert.Equal(t, []string{" ", "A"}, out.lines[0])

	// Row filtering passes the header through unchanged.
	_, out, err = run(t, Config{MinRowsum: At(1)}, "\tA\tB\nx\t1\t0\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"", "A", "B"}, out.lines[0])
}

func TestColumnValuesAreCanonical(t *testing.T) {
	_, out, err := run(t, Config{MinColsum: At(0)}, "id\tA\tB\nx\t007\t +3\n")
	require.NoError(t, err)
	assert.Equal(t, "id\tA\tB\nx\t7\t3\n", out.text())

	_, out, err = run(t, Config{MinRowsum: At(0)}, "id\tA\tB\nx\t007\t+3\n")
	require.NoError(t, err)
	assert.Equal(t, "id\tA\tB\nx\t007\t+3\n", out.text())
}

func TestHeaderOnlyTable(t *testing.T) {
	report, out, err := run(t, Config{MinColsum: At(1)}, "id\tA\tB\n")
	require.NoError(t, err)
	assert.Equal(t, "id\n", out.text())
	assert.Equal(t, []string{"A", "B"}, report.Removed)

	report, out, err = run(t, Config{MinRowsum: At(1)}, "id\tA\tB\n")
	require.NoError(t, err)
	assert.Equal(t, "id\tA\tB\n", out.text())
	assert.Zero(t, report.Rows)
}

func TestColumnMaskConsistency(t *testing.T) {
	src := source(t, "id\tA\tB\tC\tD\nx\t1\t0\t4\t0\ny\t2\t0\t0\t1\n")

	sc, err := src.Open()
	require.NoError(t, err)
	filterer := NewColumnFilterer(sc.NumColumns())
	rows, err := filterer.ComputeColsums(sc, At(1))
	require.NoError(t, err)
	require.NoError(t, sc.Close())

	assert.Equal(t, 2, rows)
	assert.Equal(t, []int64{3, 0, 4, 1}, filterer.ColSums)
	assert.Equal(t, uint(4), filterer.Mask().Len())
	assert.Equal(t, 3, filterer.Kept())
	assert.Equal(t, 1, filterer.Filtered())

	sc, err = src.Open()
	require.NoError(t, err)
	defer sc.Close()
	var lines [][]string
	require.NoError(t, filterer.FilterColumns(sc, SinkFunc(func(fields []string) error {
		lines = append(lines, append([]string(nil), fields...))
		return nil
	})))
	for _, line := range lines {
		assert.Len(t, line, filterer.Kept()+1)
	}
	assert.Equal(t, [][]string{{"x", "1", "4", "0"}, {"y", "2", "0", "1"}}, lines)
	assert.Equal(t, []string{"id", "A", "C", "D"}, filterer.FilterHeader(sc.Header()))
	assert.Equal(t, []string{"B"}, filterer.RemovedColumns(sc.Header()))
}

func TestSinkErrorStopsFiltering(t *testing.T) {
	src := source(t, "id\tA\nx\t1\ny\t2\n")
	sc, err := src.Open()
	require.NoError(t, err)
	defer sc.Close()
	sinkErr := errors.New("disk full")
	filterer := NewRowFilterer()
	err = filterer.FilterRows(sc, At(0), SinkFunc(func([]string) error { return sinkErr }))
	assert.ErrorIs(t, err, sinkErr)
	assert.Equal(t, 1, filterer.Kept)
}

func randomTable(r *rand.Rand, rows, columns int) (string, [][]int64) {
	var b strings.Builder
	b.WriteString("id")
	for j := 0; j < columns; j++ {
		b.WriteString("\tc" + strconv.Itoa(j))
	}
	b.WriteByte('\n')
	values := make([][]int64, rows)
	for i := range values {
		b.WriteString("r" + strconv.Itoa(i))
		values[i] = make([]int64, columns)
		for j := range values[i] {
			values[i][j] = int64(r.Intn(10))
			b.WriteString("\t" + strconv.FormatInt(values[i][j], 10))
		}
		b.WriteByte('\n')
	}
	return b.String(), values
}

func TestRowFilteringProperties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for iteration := 0; iteration < 50; iteration++ {
		contents, values := randomTable(r, 1+r.Intn(20), 1+r.Intn(6))
		threshold := At(float64(r.Intn(30)))

		report, out, err := run(t, Config{MinRowsum: threshold}, contents)
		require.NoError(t, err)

		var want []string
		for i, row := range values {
			var sum int64
			for _, v := range row {
				sum += v
			}
			if threshold.Admits(sum) {
				want = append(want, "r"+strconv.Itoa(i))
			}
		}
		var got []string
		for _, line := range out.lines[1:] {
			got = append(got, line[0])
		}
		assert.Equal(t, want, got)
		assert.Equal(t, len(values), report.Kept+report.Filtered)

		// filtering again removes nothing
		report2, out2, err := run(t, Config{MinRowsum: threshold}, out.text())
		require.NoError(t, err)
		assert.Zero(t, report2.Filtered)
		assert.Equal(t, out.text(), out2.text())
	}
}

func TestColumnFilteringProperties(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for iteration := 0; iteration < 50; iteration++ {
		rows, columns := 1+r.Intn(8), 1+r.Intn(12)
		contents, values := randomTable(r, rows, columns)
		threshold := At(float64(r.Intn(40)))

		report, out, err := run(t, Config{MinColsum: threshold}, contents)
		require.NoError(t, err)

		want := []string{"id"}
		for j := 0; j < columns; j++ {
			var sum int64
			for i := 0; i < rows; i++ {
				sum += values[i][j]
			}
			if threshold.Admits(sum) {
				want = append(want, "c"+strconv.Itoa(j))
			}
		}
		assert.Equal(t, want, out.lines[0])
		assert.Equal(t, columns, report.Kept+report.Filtered)
		for _, line := range out.lines[1:] {
			assert.Len(t, line, report.Kept+1)
		}

		// filtering again removes nothing
		report2, out2, err := run(t, Config{MinColsum: threshold}, out.text())
		require.NoError(t, err)
		assert.Zero(t, report2.Filtered)
		assert.Equal(t, out.text(), out2.text())
	}
}
