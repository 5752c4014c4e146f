package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"time"
)

var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ReadCSV loads a comma-separated file with a header row into a
// frame. Column kinds are inferred: a column where every non-empty
// cell parses as a number becomes Number (empty cells become NaN),
// one where every non-empty cell parses as a date becomes Time, and
// everything else stays String.
func ReadCSV(path string) (*Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads CSV content with a header row from r.
func ParseCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("data: parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("data: csv input has no header row")
	}
	return fromRecords(records[0], records[1:])
}

// fromRecords builds a typed frame from a header and its rows.
func fromRecords(header []string, rows [][]string) (*Frame, error) {
	frame := New()
	for col, name := range header {
		cells := make([]string, len(rows))
		for i, row := range rows {
			if col >= len(row) {
				return nil, fmt.Errorf("data: row %d has %d cells, header has %d", i+1, len(row), len(header))
			}
			cells[i] = row[col]
		}
		switch inferKind(cells) {
		case Number:
			vals := make([]float64, len(cells))
			for i, c := range cells {
				if c == "" {
					vals[i] = math.NaN()
					continue
				}
				vals[i], _ = strconv.ParseFloat(c, 64)
			}
			frame.AddFloats(name, vals)
		case Time:
			vals := make([]time.Time, len(cells))
			for i, c := range cells {
				vals[i] = parseTime(c)
			}
			frame.AddTimes(name, vals)
		default:
			frame.AddStrings(name, cells)
		}
	}
	return frame, nil
}

func inferKind(cells []string) Kind {
	sawValue := false
	numeric, temporal := true, true
	for _, c := range cells {
		if c == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseFloat(c, 64); err != nil {
			numeric = false
		}
		if parseTime(c).IsZero() {
			temporal = false
		}
		if !numeric && !temporal {
			return String
		}
	}
	if !sawValue {
		return String
	}
	if numeric {
		return Number
	}
	if temporal {
		return Time
	}
	return String
}

func parseTime(s string) time.Time {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
