// Package pipeline runs the scenario generator end to end: parse the
// variable table, parse the encoding table, build scenarios until the
// encoding table runs out of them, then write scenario_list.csv and
// scenario_settings.csv.
package pipeline
