package common

// At returns s[i] and true, or the zero value and false if i is out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}

	return s[i], true
}

// AtOrZero returns s[i], or the zero value if i is out of range.
func AtOrZero[S ~[]E, E any](s S, i int) E {
	v, _ := At(s, i)

	return v
}

// Transpose turns a row-major table into a column-major one.
// Ragged rows are padded with the zero value up to the widest row,
// so every column has exactly len(rows) entries.
func Transpose[E any](rows [][]E) [][]E {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}

	columns := make([][]E, width)
	for c := range columns {
		column := make([]E, len(rows))
		for r, row := range rows {
			column[r] = AtOrZero(row, c)
		}

		columns[c] = column
	}

	return columns
}
