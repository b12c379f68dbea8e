package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) ([]SampleRow, *Reader, error) {
	t.Helper()
	r := NewReader(strings.NewReader(input))
	var rows []SampleRow
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows, r, nil
		}
		if err != nil {
			return rows, r, err
		}
		rows = append(rows, row)
	}
}

func TestReader_AppliesOffsets(t *testing.T) {
	t.Parallel()

	rows, r, err := readAll(t, "180,90,40\n180.5, 90.5, 0\n0,0,-1.5\n")
	require.NoError(t, err)
	require.Zero(t, r.Fallbacks)

	want := []SampleRow{
		{Lon: 0, Lat: 0, Value: 40, Line: 1},
		{Lon: 0.5, Lat: 0.5, Value: 0, Line: 2},
		{Lon: -180, Lat: -90, Value: -1.5, Line: 3},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReader_UnparsableFieldsReadAsZero(t *testing.T) {
	t.Parallel()

	rows, r, err := readAll(t, "abc,90,x\n190,,5\n200\n")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, SampleRow{Lon: -180, Lat: 0, Value: 0, Line: 1}, rows[0])
	require.Equal(t, SampleRow{Lon: 10, Lat: -90, Value: 5, Line: 2}, rows[1])
	require.Equal(t, SampleRow{Lon: 20, Lat: -90, Value: 0, Line: 3}, rows[2])
	// abc, x, empty, and the two missing fields of "200".
	require.Equal(t, 5, r.Fallbacks)
}

func TestReader_ExtraColumnsAndBlankLines(t *testing.T) {
	t.Parallel()

	rows, _, err := readAll(t, "\n181,91,2,extra,7\n\n182,92,3\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, 1.0, rows[0].Lon)
	require.Equal(t, 2.0, rows[0].Value)
	require.Equal(t, 2, rows[0].Line)
	require.Equal(t, 4, rows[1].Line)
}

func TestReader_Empty(t *testing.T) {
	t.Parallel()

	rows, _, err := readAll(t, "")
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestReader_StrayQuotesFallBack(t *testing.T) {
	t.Parallel()

	rows, r, err := readAll(t, "180.5,90.5,20\n181,91,4\"0\n182,9\"2,1\n")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, SampleRow{Lon: 1, Lat: 1, Value: 0, Line: 2}, rows[1])
	require.Equal(t, SampleRow{Lon: 2, Lat: -90, Value: 1, Line: 3}, rows[2])
	require.Equal(t, 2, r.Fallbacks)
}

func TestReader_UnterminatedQuote(t *testing.T) {
	t.Parallel()

	rows, _, err := readAll(t, "180,90,1\n\"181,91,2\n")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, SampleRow{Lon: 0, Lat: 0, Value: 1, Line: 1}, rows[0])
	require.Equal(t, -180.0, rows[1].Lon)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk gone") }

func TestReader_ReadError(t *testing.T) {
	t.Parallel()

	_, err := NewReader(failingReader{}).Next()
	require.Error(t, err)
	require.NotErrorIs(t, err, io.EOF)
	require.Contains(t, err.Error(), "failed to read CSV")
}
