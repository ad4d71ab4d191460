package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// WriteWorkbook serializes one sheet of columns + rows into an xlsx
// document stream.
func WriteWorkbook(sheet string, cols []Column, rows []Row) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headers := make([]any, len(cols))
	for i, col := range cols {
		headers[i] = col.Header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
			return nil, err
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		r := []any(row)
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, err
		}
	}

	return f.WriteToBuffer()
}
