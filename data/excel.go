package data

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX loads one sheet of an Excel workbook into a frame. The
// first row is the header; an empty sheet name selects the workbook's
// first sheet. Column kinds are inferred the same way as for CSV.
func ReadXLSX(path, sheet string) (*Frame, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("data: open workbook: %w", err)
	}
	defer wb.Close()

	if sheet == "" {
		sheet = wb.GetSheetName(0)
	}
	rows, err := wb.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("data: read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("data: sheet %q has no header row", sheet)
	}

	// GetRows trims trailing empty cells per row; pad to the header.
	header := rows[0]
	body := make([][]string, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < len(header) {
			padded := make([]string, len(header))
			copy(padded, row)
			row = padded
		}
		body[i] = row
	}
	return fromRecords(header, body)
}
