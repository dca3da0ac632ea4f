package variable

// Record is one usable row of the variable table.
type Record struct {
	// Index is column A, the identifier the encoding table refers to.
	Index int
	// IsVariable is false for rows whose column B reads "Static".
	IsVariable bool
	// StaticValue is column F. Nil for variable rows.
	StaticValue *string
	// StaticNumericValue is column M without '%'. Nil for variable rows and
	// for static rows whose M cell is empty or not a number.
	StaticNumericValue *float64
	// SpecialType is column T, empty when the row has no tag.
	SpecialType string
	// DatabaseKey is column U and is never empty.
	DatabaseKey string
	// Line is the 1-based row number in the source table.
	Line int
}

// InBaseline reports whether the record contributes a baseline value to
// every scenario: static and without a special type.
func (r Record) InBaseline() bool {
	return !r.IsVariable && r.SpecialType == ""
}

// SpecialTypeIndex maps a special type tag to the indices of the records
// carrying it, in table order.
type SpecialTypeIndex map[string][]int

// Table is the parsed variable table.
type Table struct {
	Records      []Record
	SpecialIndex SpecialTypeIndex

	// byIndex maps Record.Index to its first position in Records.
	byIndex map[int]int
}

// NewTable builds a Table over records, indexing them by Index and by
// special type. When an index repeats, Lookup returns the first record.
func NewTable(records []Record) *Table {
	t := &Table{
		Records:      records,
		SpecialIndex: SpecialTypeIndex{},
		byIndex:      make(map[int]int, len(records)),
	}

	for i, rec := range records {
		if _, seen := t.byIndex[rec.Index]; !seen {
			t.byIndex[rec.Index] = i
		}

		if rec.SpecialType != "" {
			t.SpecialIndex[rec.SpecialType] = append(t.SpecialIndex[rec.SpecialType], rec.Index)
		}
	}

	return t
}

// Lookup returns the first record whose Index equals index.
func (t *Table) Lookup(index int) (Record, bool) {
	pos, ok := t.byIndex[index]
	if !ok {
		return Record{}, false
	}

	return t.Records[pos], true
}

// Baseline returns the records that seed every scenario, in table order.
func (t *Table) Baseline() []Record {
	var out []Record

	for _, rec := range t.Records {
		if rec.InBaseline() {
			out = append(out, rec)
		}
	}

	return out
}
