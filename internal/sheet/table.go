// Package sheet reads and writes the tabular workbooks the summary agent consumes and produces.
package sheet

// Row maps a column header to the cell value of one data row.
type Row map[string]string

// Table is a header row followed by data rows of cell strings.
// Data rows may be shorter than the header; missing trailing cells read as empty.
type Table struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Row returns data row i keyed by header. Duplicate headers keep the first occurrence.
func (t *Table) Row(i int) Row {
	row := make(Row, len(t.Header))
	cells := t.Rows[i]
	for col, name := range t.Header {
		if _, exists := row[name]; exists {
			continue
		}
		if col < len(cells) {
			row[name] = cells[col]
		} else {
			row[name] = ""
		}
	}
	return row
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}

// WithColumn returns a copy of the table with one column appended.
// values must hold exactly one entry per data row; short rows are padded to the header width first.
func (t *Table) WithColumn(name string, values []string) *Table {
	out := &Table{
		Header: append(append([]string{}, t.Header...), name),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, cells := range t.Rows {
		row := make([]string, len(t.Header), len(t.Header)+1)
		copy(row, cells)
		if i < len(values) {
			row = append(row, values[i])
		} else {
			row = append(row, "")
		}
		out.Rows[i] = row
	}
	return out
}
