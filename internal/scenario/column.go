package scenario

import (
	"fmt"
	"strings"

	"scenario-generator/internal/common"
	"scenario-generator/internal/override"
	"scenario-generator/internal/variable"
)

// Setting is one row of a scenario: a database key and its value.
type Setting struct {
	Key   string
	Value string
}

// Column is the ordered settings of one scenario. Keys may repeat.
type Column []Setting

// Keys returns the database keys in order.
func (c Column) Keys() []string {
	keys := make([]string, len(c))
	for i, s := range c {
		keys[i] = s.Key
	}

	return keys
}

// Values returns the values in order.
func (c Column) Values() []string {
	values := make([]string, len(c))
	for i, s := range c {
		values[i] = s.Value
	}

	return values
}

// Name returns the generated name of the k-th scenario.
func Name(k int) string {
	return fmt.Sprintf("sample_%d", k)
}

// Build merges the baseline of vars with the overrides carried by
// columnValues, one encoding table column with its header at position 0.
//
// It returns false when columnValues has no data row or its first data cell
// is blank: that column and every column after it are not scenarios.
// Overrides whose index matches no record are dropped.
func Build(columnValues []string, vars *variable.Table, overrides []override.Entry) (Column, bool) {
	if len(columnValues) < 2 || strings.TrimSpace(columnValues[1]) == "" {
		return nil, false
	}

	baseline := vars.Baseline()
	col := make(Column, 0, len(baseline)+len(overrides))

	for _, rec := range baseline {
		col = append(col, Setting{Key: rec.DatabaseKey, Value: FormatNumber(rec.StaticNumericValue)})
	}

	for _, entry := range overrides {
		rec, ok := vars.Lookup(entry.VariableIndex)
		if !ok {
			continue
		}

		col = append(col, Setting{
			Key:   rec.DatabaseKey,
			Value: strings.TrimSpace(common.AtOrZero(columnValues, entry.RowPosition)),
		})
	}

	return col, true
}

// Unresolved returns the overrides whose index matches no record in vars.
// Build drops these silently; callers use this to report them once.
func Unresolved(vars *variable.Table, overrides []override.Entry) []override.Entry {
	var out []override.Entry

	for _, entry := range overrides {
		if _, ok := vars.Lookup(entry.VariableIndex); !ok {
			out = append(out, entry)
		}
	}

	return out
}
