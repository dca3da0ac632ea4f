package variable

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"scenario-generator/internal/diagnostic"
	"scenario-generator/internal/table"
)

// Column positions (zero-based) in the variable table.
const (
	colIndex       = 0  // A
	colFlag        = 1  // B
	colStaticValue = 5  // F
	colNumeric     = 12 // M
	colSpecialType = 19 // T
	colDatabaseKey = 20 // U

	// MinColumns is the narrowest row that can still carry a database key.
	MinColumns = colDatabaseKey + 1
)

// StaticFlag is the column B value that marks a non-variable row.
const StaticFlag = "Static"

// ParseFile reads and parses the variable table at path.
// A missing or unreadable file is the only error; bad rows become diagnostics.
func ParseFile(path string) (*Table, diagnostic.Diagnostics, error) {
	rows, err := table.ReadFile(path)
	if err != nil {
		if errors.Is(err, table.ErrEmpty) {
			return NewTable(nil), diagnostic.Diagnostics{}, nil
		}

		return nil, diagnostic.Diagnostics{}, fmt.Errorf("reading variable table: %w", err)
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

	if len(rows.Records) == 0 {
		return NewTable(nil), diags
	}

	records := make([]Record, 0, len(rows.Records)-1)

	for i, row := range rows.Records[1:] {
		line := rows.Line(i + 1)

		rec, ok := parseRow(source, line, row, &diags)
		if ok {
			records = append(records, rec)
		}
	}

	return NewTable(records), diags
}

func parseRow(source string, line int, row []string, diags *diagnostic.Diagnostics) (Record, bool) {
	if len(row) < MinColumns {
		diags.AddWarning(diagnostic.CodeShortRow, source, line,
			fmt.Sprintf("row has %d columns, need at least %d", len(row), MinColumns))

		return Record{}, false
	}

	key := strings.TrimSpace(row[colDatabaseKey])
	if key == "" {
		diags.AddWarning(diagnostic.CodeEmptyKey, source, line, "database key (column U) is empty")

		return Record{}, false
	}

	rawIndex := strings.TrimSpace(row[colIndex])

	index, err := strconv.Atoi(rawIndex)
	if err != nil {
		diags.AddWarning(diagnostic.CodeBadIndex, source, line,
			fmt.Sprintf("index %q (column A) is not an integer", rawIndex))

		return Record{}, false
	}

	rec := Record{
		Index:       index,
		IsVariable:  strings.TrimSpace(row[colFlag]) != StaticFlag,
		SpecialType: strings.TrimSpace(row[colSpecialType]),
		DatabaseKey: key,
		Line:        line,
	}

	if !rec.IsVariable {
		value := strings.TrimSpace(row[colStaticValue])
		rec.StaticValue = &value

		raw := stripPercent(row[colNumeric])
		if raw != "" {
			num, err := parseNumber(raw)
			if err == nil {
				rec.StaticNumericValue = &num
			} else {
				diags.AddWarning(diagnostic.CodeBadNumber, source, line,
					fmt.Sprintf("value %q (column M) is not a number, leaving it empty", raw))
			}
		}
	}

	return rec, true
}

// parseNumber parses a decimal float. Values too large for a float64 become
// ±Inf; hexadecimal notation is rejected.
func parseNumber(s string) (float64, error) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return 0, fmt.Errorf("hexadecimal number %q", s)
	}

	num, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return num, nil
	}

	return num, err
}

// stripPercent trims s and drops every '%' in it.
func stripPercent(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "%", ""))
}
