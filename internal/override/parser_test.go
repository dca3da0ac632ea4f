package override

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scenario-generator/internal/diagnostic"
)

func TestParse(t *testing.T) {
	tbl, diags := Parse("param_encoding.csv", [][]string{
		{"index", "run_a", "run_b"},
		{"1", "60", "70"},
		{"", "note", "note"},
		{"abc", "x", "y"},
		{" 12 ", "0.5", "0.7"},
	})

	assert.Equal(t, []Entry{
		{RowPosition: 1, VariableIndex: 1, Line: 2},
		{RowPosition: 4, VariableIndex: 12, Line: 5},
	}, tbl.Entries)

	require.Len(t, tbl.Columns, 3)
	assert.Equal(t, []string{"index", "1", "", "abc", " 12 "}, tbl.Columns[0])
	assert.Equal(t, []string{"run_a", "60", "note", "x", "0.5"}, tbl.Columns[1])
	assert.Equal(t, []string{"run_b", "70", "note", "y", "0.7"}, tbl.Columns[2])
	assert.Equal(t, tbl.Columns[1:], tbl.ScenarioColumns())

	assert.Equal(t, 2, diags.Count(diagnostic.CodeBadOverrideIndex))
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, 3, diags.Infos[0].Line)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, 4, diags.Warnings[0].Line)
}

func TestParseRaggedRows(t *testing.T) {
	tbl, _ := Parse("param_encoding.csv", [][]string{
		{"index", "s0", "s1"},
		{"1", "60"},
		{"2"},
	})

	require.Len(t, tbl.Columns, 3)
	assert.Equal(t, []string{"s1", "", ""}, tbl.Columns[2])
	assert.Len(t, tbl.Entries, 2)
}

func TestParseWithoutScenarioColumns(t *testing.T) {
	tbl, diags := Parse("param_encoding.csv", [][]string{{"index"}, {"1"}})

	assert.Empty(t, tbl.ScenarioColumns())
	assert.Equal(t, 1, diags.Count(diagnostic.CodeNoScenarioColumns))

	tbl, diags = Parse("param_encoding.csv", nil)
	assert.Empty(t, tbl.Entries)
	assert.Empty(t, tbl.ScenarioColumns())
	assert.Equal(t, 1, diags.Count(diagnostic.CodeNoScenarioColumns))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "param_encoding.csv")
	require.NoError(t, os.WriteFile(path, []byte("index,s0,s1\n1,60,70\n"), 0o644))

	tbl, diags, err := ParseFile(path)
	require.NoError(t, err)
	assert.Zero(t, diags.Len())
	assert.Equal(t, []Entry{{RowPosition: 1, VariableIndex: 1, Line: 2}}, tbl.Entries)
	assert.Len(t, tbl.ScenarioColumns(), 2)
}

func TestParseFileReportsRecordStartLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "param_encoding.csv")
	require.NoError(t, os.WriteFile(path, []byte("index,s0\n,\"multi\nline\"\nabc,x\n"), 0o644))

	tbl, diags, err := ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, tbl.Entries)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, 2, diags.Infos[0].Line)
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, 4, diags.Warnings[0].Line)
}

func TestParseFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "param_encoding.csv")

	_, _, err := ParseFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), path)
}

func TestParseFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "param_encoding.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	tbl, diags, err := ParseFile(path)
	require.NoError(t, err)
	assert.Empty(t, tbl.ScenarioColumns())
	assert.Equal(t, 1, diags.Count(diagnostic.CodeNoScenarioColumns))
}
