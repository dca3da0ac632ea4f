// Package table reads and writes the CSV files at the edges of the
// scenario pipeline.
//
// Reading is lenient in the same way spreadsheet exports are: rows may have
// different widths, quotes may appear inside unquoted fields and a leading
// UTF-8 byte order mark is dropped. Writing always truncates the target file,
// so repeated runs leave identical bytes behind.
package table
