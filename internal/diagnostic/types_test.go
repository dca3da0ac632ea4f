package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeString(t *testing.T) {
	assert.Equal(t, "ShortRow", CodeShortRow.String())
	assert.Equal(t, "BadOverrideIndex", CodeBadOverrideIndex.String())
	assert.Equal(t, "WriteFailed", CodeWriteFailed.String())
	assert.Equal(t, "Code(0)", Code(0).String())
	assert.Equal(t, "Code(42)", Code(42).String())
}

func TestDiagnosticsCollect(t *testing.T) {
	var d Diagnostics

	d.AddWarning(CodeShortRow, "all_var.csv", 3, "row has 4 columns, need 21")
	d.AddInfo(CodeBadOverrideIndex, "param_encoding.csv", 7, "blank index cell")
	d.AddWarning(CodeShortRow, "all_var.csv", 9, "row has 2 columns, need 21")

	assert.False(t, d.HasErrors())
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, 2, d.Count(CodeShortRow))
	assert.Equal(t, 0, d.Count(CodeEmptyKey))

	var other Diagnostics
	other.AddError(CodeWriteFailed, "input/scenario_list.csv", 0, "permission denied")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	assert.Equal(t, 4, d.Len())
	require.Len(t, d.Errors, 1)
	assert.Equal(t, "input/scenario_list.csv: [WriteFailed] permission denied", d.Errors[0].String())
}

func TestDiagnosticString(t *testing.T) {
	tests := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "source and line",
			diag: Diagnostic{Code: CodeBadIndex, Source: "all_var.csv", Line: 12, Message: `index "x" is not an integer`},
			want: `all_var.csv:12: [BadIndex] index "x" is not an integer`,
		},
		{
			name: "source only",
			diag: Diagnostic{Code: CodeNoScenarioColumns, Source: "param_encoding.csv", Message: "no scenario columns"},
			want: "param_encoding.csv: [NoScenarioColumns] no scenario columns",
		},
		{
			name: "bare",
			diag: Diagnostic{Code: CodeMisaligned, Message: "sample_3 has 4 rows, input has 5"},
			want: "[Misaligned] sample_3 has 4 rows, input has 5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}
