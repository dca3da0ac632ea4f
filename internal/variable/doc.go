// Package variable parses the master parameter table (all_var.csv).
//
// Every data row that names a database key becomes a Record. A row is either
// static, carrying a baseline value in columns F and M, or variable, in which
// case its value only ever arrives through a scenario override. Rows tagged
// with a special type are indexed by tag and kept out of the baseline.
//
// Column layout (letters as in the spreadsheet the table is exported from):
//
//	A  index, an integer referenced by the encoding table
//	B  "Static" marks a non-variable row
//	F  static value as displayed
//	M  static numeric value, possibly with a trailing %
//	T  special type tag (optional)
//	U  database key (required)
package variable
