// Package scenario merges baseline values with per-scenario overrides and
// accumulates the two tables the energy-model simulator imports.
//
// # Building a scenario
//
// Build turns one encoding table column into a Column: first the baseline
// (static records without a special type, in variable table order, valued
// with their numeric column), then one setting per override entry, valued
// with the raw cell of that column. Overrides are appended, never merged,
// so a key can appear twice: once with its baseline value and once with the
// scenario's value.
//
// A column whose first data cell is blank marks the end of the scenarios.
// Build reports it by returning false; no later column is processed.
//
// # Outputs
//
//   - List collects one Descriptor per scenario (scenario_list.csv).
//   - Settings collects one value vector per scenario and writes them as
//     a matrix whose rows follow the keys of the first scenario and whose
//     columns are the scenario names in lexicographic order
//     (scenario_settings.csv).
//
// Settings aligns values by position only. Merge checks that a scenario's
// keys match the input column row for row and reports a MisalignmentError
// when they do not.
package scenario
