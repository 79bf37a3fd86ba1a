package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Field is a single table cell. Text always holds the original cell text;
// Number is populated when the cell parses as a float.
type Field struct {
	Text    string
	Number  float64
	Numeric bool
}

// Row maps column names to cell values for one input row.
type Row map[string]Field

// Table is an ordered, immutable view of the parsed input. Rows preserve the
// original input order; Columns preserve the header order.
type Table struct {
	Columns []string
	Rows    []Row
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// HasColumn reports whether the table has a column with the given name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// FloatColumn returns the named column as a float slice in row order. It
// fails if the column is absent or any cell does not parse as a number.
func (t *Table) FloatColumn(name string) ([]float64, error) {
	if !t.HasColumn(name) {
		return nil, fmt.Errorf("column %q not present in table", name)
	}

	values := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		f := row[name]
		if !f.Numeric {
			return nil, fmt.Errorf("column %q is not numeric: row %d value %q", name, i+1, f.Text)
		}
		values[i] = f.Number
	}
	return values, nil
}

// newField parses a raw cell into a Field, keeping the original text.
func newField(text string) Field {
	f := Field{Text: text}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return f
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		f.Number = n
		f.Numeric = true
	}
	return f
}

// buildTable assembles a Table from raw records where the first record is
// the header row. Ragged records are padded with empty cells.
func buildTable(records [][]string) *Table {
	header := records[0]
	t := &Table{Columns: append([]string(nil), header...)}

	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			var cell string
			if i < len(rec) {
				cell = rec[i]
			}
			row[col] = newField(cell)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
