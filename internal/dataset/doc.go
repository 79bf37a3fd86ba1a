// Package dataset loads delimited tabular price data into an in-memory table.
//
// The first line of the input is the column header; every following line is
// one data row. Cells that parse as float64 are carried as numbers alongside
// their original text. CSV is the primary format; XLSX daily-report exports
// are accepted as well, reading the first sheet through excelize.
//
// Load fails with a NotFound error when the path does not exist, and with a
// validation error when the table has zero data rows or lacks the required
// "close" column. ParseCSV is the reader-level core so table handling can be
// tested without filesystem fixtures.
package dataset
