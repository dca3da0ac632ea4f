// Package override parses the scenario encoding table (param_encoding.csv).
//
// Column A of every data row references a variable table index; each further
// column is one scenario whose cells are the raw override values for those
// indices. The table is transposed so each scenario can be read as a single
// column vector.
//
// Rows shorter than the header are padded with "" rather than cutting every
// column down to the shortest row, so a trailing note row such as "note"
// does not remove the scenario columns that precede it.
package override
