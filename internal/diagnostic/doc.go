// Package diagnostic collects row-level findings produced while parsing the
// parameter tables and building scenarios.
//
// None of these findings stop a run. A row that cannot be used is skipped or
// a value that cannot be parsed is nulled, and a Diagnostic records what
// happened and where:
//   - Rows that are too short or lack a database key
//   - Index cells that are not integers
//   - Numeric cells that cannot be parsed
//   - Overrides referencing an index that no record carries
//   - Scenarios whose keys do not line up with the settings input column
package diagnostic
