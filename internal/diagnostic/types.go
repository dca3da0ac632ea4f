package diagnostic

import "fmt"

//go:generate go tool stringer -type=Code -trimprefix=Code -output=code_string.go

// Code identifies the kind of a diagnostic.
type Code int

const (
	_ Code = iota // zero is reserved as the invalid code

	CodeShortRow
	CodeEmptyKey
	CodeBadIndex
	CodeBadNumber
	CodeBadOverrideIndex
	CodeUnknownVariable
	CodeNoScenarioColumns
	CodeMisaligned
	CodeWriteFailed
)

// Diagnostics holds all diagnostics from a run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code identifies the kind of finding.
	Code Code
	// Message is the human-readable description.
	Message string
	// Source names the file the finding relates to (if any).
	Source string
	// Line is the 1-based line in Source where the offending record starts
	// (0 when not tied to a record).
	Line int
}

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code Code, source string, line int, message string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code Code, source string, line int, message string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code Code, source string, line int, message string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Source:   source,
		Line:     line,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Len returns the total number of diagnostics of every severity.
func (d *Diagnostics) Len() int {
	return len(d.Errors) + len(d.Warnings) + len(d.Infos)
}

// Count returns how many diagnostics of any severity carry the given code.
func (d *Diagnostics) Count(code Code) int {
	n := 0

	for _, group := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range group {
			if diag.Code == code {
				n++
			}
		}
	}

	return n
}

// Location returns "source:line", "source" or "" depending on what is known.
func (d Diagnostic) Location() string {
	switch {
	case d.Source != "" && d.Line > 0:
		return fmt.Sprintf("%s:%d", d.Source, d.Line)
	default:
		return d.Source
	}
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	msg := fmt.Sprintf("[%s] %s", d.Code, d.Message)

	if loc := d.Location(); loc != "" {
		return loc + ": " + msg
	}

	return msg
}
