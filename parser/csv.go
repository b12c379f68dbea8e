package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hstin/csvgrid/internal/config"
)

// SampleRow is one input record with the storage offset already removed.
type SampleRow struct {
	Lon   float64
	Lat   float64
	Value float64
	Line  int
}

type Reader struct {
	r *csv.Reader

	// Fallbacks counts fields that could not be parsed and were read as 0.
	Fallbacks int
}

func NewReader(r io.Reader) *Reader {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	// Stray quotes stay in the field, which then reads as 0.
	cr.LazyQuotes = true
	cr.ReuseRecord = true
	return &Reader{r: cr}
}

// Next returns the next row, or io.EOF once the input is exhausted.
func (r *Reader) Next() (SampleRow, error) {
	record, err := r.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return SampleRow{}, io.EOF
		}
		return SampleRow{}, fmt.Errorf("failed to read CSV: %w", err)
	}

	line, _ := r.r.FieldPos(0)

	return SampleRow{
		Lon:   r.field(record, 0) - config.LonOffset,
		Lat:   r.field(record, 1) - config.LatOffset,
		Value: r.field(record, 2),
		Line:  line,
	}, nil
}

// field parses record[i] as a float. Missing or unparsable fields read as 0.
func (r *Reader) field(record []string, i int) float64 {
	if i >= len(record) {
		r.Fallbacks++
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(record[i]), 64)
	if err != nil {
		r.Fallbacks++
		return 0
	}
	return v
}
