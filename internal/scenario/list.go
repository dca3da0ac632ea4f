package scenario

import (
	"scenario-generator/internal/table"
)

// ListHeader is the header of scenario_list.csv.
var ListHeader = []string{
	"short_name", "title", "area_code", "end_year",
	"description", "id", "keep_compatible", "curve_file",
}

// List accumulates scenario descriptors in insertion order.
type List struct {
	descriptors []Descriptor
}

// AddRow appends a descriptor.
func (l *List) AddRow(d Descriptor) {
	l.descriptors = append(l.descriptors, d)
}

// Len returns the number of descriptors added.
func (l *List) Len() int {
	return len(l.descriptors)
}

// Rows renders every descriptor, without the header.
func (l *List) Rows() [][]string {
	rows := make([][]string, len(l.descriptors))
	for i, d := range l.descriptors {
		rows[i] = d.Row()
	}

	return rows
}

// Save writes ListHeader and every row to path.
func (l *List) Save(path string) error {
	return table.WriteFile(path, ListHeader, l.Rows())
}
