package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"smacli/internal/errors"
)

// CloseColumn is the column every input table must carry.
const CloseColumn = "close"

// Load reads the tabular input at path, dispatching on the file extension.
// Everything that is not an .xlsx workbook is treated as CSV.
func Load(path string) (*Table, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.NotFoundf("Input file not found: %s", path)
	}

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return ParseXLSX(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return ParseCSV(f)
}

// ParseCSV parses delimited tabular text from r. The first record is the
// column header.
func ParseCSV(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.Validationf("Input CSV is empty")
	}

	return validateTable(buildTable(records))
}

// ParseXLSX parses the first sheet of an XLSX workbook into a table.
func ParseXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.Validationf("Input workbook has no sheets")
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, errors.Validationf("Input sheet is empty")
	}

	return validateTable(buildTable(records))
}

// validateTable enforces the input contract: at least one data row and a
// "close" column.
func validateTable(t *Table) (*Table, error) {
	if t.NumRows() == 0 {
		return nil, errors.Validationf("Input CSV is empty")
	}
	if !t.HasColumn(CloseColumn) {
		return nil, errors.Validationf("Required 'close' column missing")
	}
	return t, nil
}
