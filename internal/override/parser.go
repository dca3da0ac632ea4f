package override

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scenario-generator/internal/common"
	"scenario-generator/internal/diagnostic"
	"scenario-generator/internal/table"
)

// Entry is a data row of the encoding table whose column A is an integer.
type Entry struct {
	// RowPosition is the row's position in the table, header at 0.
	// It indexes directly into every column of Table.Columns.
	RowPosition int
	// VariableIndex references variable.Record.Index.
	VariableIndex int
	// Line is the 1-based line the row starts on.
	Line int
}

// Table is the parsed encoding table.
type Table struct {
	// Entries lists the rows carrying a valid override, in table order.
	Entries []Entry
	// Columns is the whole table, header included, in column-major order.
	// Column 0 is the index column; short rows are padded with "".
	Columns [][]string
}

// ScenarioColumns returns every column after the index column.
func (t *Table) ScenarioColumns() [][]string {
	if len(t.Columns) < 2 {
		return nil
	}

	return t.Columns[1:]
}

// ParseFile reads and parses the encoding table at path.
func ParseFile(path string) (*Table, diagnostic.Diagnostics, error) {
	rows, err := table.ReadFile(path)
	if err != nil && !errors.Is(err, table.ErrEmpty) {
		return nil, diagnostic.Diagnostics{}, fmt.Errorf("reading encoding table: %w", err)
	}

	t, diags := ParseRows(path, rows)

	return t, diags, nil
}

// Parse turns raw rows (header first) into a Table. source names the table
// in diagnostics, where each row is reported on the line matching its
// position.
func Parse(source string, rows [][]string) (*Table, diagnostic.Diagnostics) {
	return ParseRows(source, table.FromRecords(rows))
}

// ParseRows is Parse for rows read from a file, reporting the line each
// record starts on.
func ParseRows(source string, rows table.Rows) (*Table, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	t := &Table{Columns: common.Transpose(rows.Records)}

	for pos := 1; pos < len(rows.Records); pos++ {
		raw := strings.TrimSpace(common.AtOrZero(rows.Records[pos], 0))
		line := rows.Line(pos)

		index, err := strconv.Atoi(raw)
		if err != nil {
			if raw == "" {
				diags.AddInfo(diagnostic.CodeBadOverrideIndex, source, line, "row has no index, ignoring it")
			} else {
				diags.AddWarning(diagnostic.CodeBadOverrideIndex, source, line,
					fmt.Sprintf("index %q (column A) is not an integer, ignoring row", raw))
			}

			continue
		}

		t.Entries = append(t.Entries, Entry{RowPosition: pos, VariableIndex: index, Line: line})
	}

	if len(t.Columns) < 2 {
		diags.AddWarning(diagnostic.CodeNoScenarioColumns, source, 0, "table has no scenario columns")
	}

	return t, diags
}
