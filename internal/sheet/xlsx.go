package sheet

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// DefaultOutputSheet is the sheet name used when writing results.
const DefaultOutputSheet = "Summaries"

// ReadXLSX loads a sheet from an .xlsx workbook. An empty sheetName selects the first sheet.
// The first non-empty row is the header; fully empty rows after it are skipped.
func ReadXLSX(path, sheetName string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, &ReadError{Path: path, Message: "workbook has no sheets"}
		}
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, &ReadError{Path: path, Message: fmt.Sprintf("failed to read sheet %q", sheetName), Cause: err}
	}

	return tableFromRows(rows), nil
}

// tableFromRows converts raw excelize rows into a Table.
func tableFromRows(rows [][]string) *Table {
	table := &Table{}
	for _, cells := range rows {
		if isBlank(cells) {
			continue
		}
		if table.Header == nil {
			table.Header = make([]string, len(cells))
			for i, h := range cells {
				table.Header[i] = strings.TrimSpace(h)
			}
			continue
		}
		table.Rows = append(table.Rows, cells)
	}
	return table
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteXLSX writes the table to a new workbook at path.
// Every cell is written as text except those under numericColumns, which are
// stored as numbers when they hold a finite numeric value.
func WriteXLSX(path, sheetName string, table *Table, numericColumns ...string) error {
	if sheetName == "" {
		sheetName = DefaultOutputSheet
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	numeric := numericMask(table.Header, numericColumns)
	if err := writeRow(f, sheetName, 1, toCells(table.Header, nil)); err != nil {
		return err
	}
	for i, cells := range table.Rows {
		if err := writeRow(f, sheetName, i+2, toCells(cells, numeric)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheetName string, rowNum int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return fmt.Errorf("failed to resolve cell for row %d: %w", rowNum, err)
	}
	if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
		return fmt.Errorf("failed to write row %d: %w", rowNum, err)
	}
	return nil
}

// numericMask marks the header positions whose name is in names
func numericMask(header, names []string) []bool {
	if len(names) == 0 {
		return nil
	}
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[n] = true
	}
	mask := make([]bool, len(header))
	for i, h := range header {
		mask[i] = wanted[h]
	}
	return mask
}

func toCells(values []string, numeric []bool) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		if i < len(numeric) && numeric[i] {
			if n, ok := parseScore(v); ok {
				cells[i] = n
				continue
			}
		}
		cells[i] = v
	}
	return cells
}

// parseScore accepts finite numbers only; "NaN" and "Inf" stay text
func parseScore(v string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
