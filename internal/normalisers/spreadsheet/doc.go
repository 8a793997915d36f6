// Package spreadsheet provides Normalisers for CSV and XLSX files.
// Every non-empty cell of the configured text column becomes one document,
// in row order.
package spreadsheet
