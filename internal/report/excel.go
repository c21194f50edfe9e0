// Package report turns column/row descriptors into a spreadsheet workbook.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Column maps a header label to the row key whose value fills the column.
type Column struct {
	Header string `json:"header"`
	Key    string `json:"key"`
}

const sheetName = "Reporte"

// Excel builds a single-sheet workbook: one header row from the column
// labels, then one row per record, cells picked by column key. Returns the
// xlsx file bytes ready to stream.
func Excel(title string, columns []Column, rows []map[string]any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col.Header); err != nil {
			return nil, err
		}
		// widen columns to roughly fit the header
		name, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(col.Header)) + 4
		if width < 12 {
			width = 12
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, err
		}
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil && len(columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(sheetName, "A1", last, style)
	}

	for ri, row := range rows {
		for ci, col := range columns {
			cell, err := excelize.CoordinatesToCellName(ci+1, ri+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, row[col.Key]); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook %q: %w", title, err)
	}
	return buf.Bytes(), nil
}
