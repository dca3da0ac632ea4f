// Package config provides the optional YAML configuration of the scenario
// generator.
//
// Without a config file the generator reads all_var.csv and
// param_encoding.csv from the working directory and writes into input/.
// A scenario-generator.yaml next to them can adjust those paths, the fields
// written to every scenario_list.csv row, alignment strictness and logging:
//
//	variable_table: all_var.csv
//	encoding_table: param_encoding.csv
//	output_dir: input
//	strict_alignment: false
//	scenario:
//	  title: Scenario_sample
//	  area_code: UK_united_kingdom
//	  end_year: "2020"
//	  description: sample
//	  keep_compatible: false
//	  curve_file: ""
//	  id_namespace: ""   # a UUID; when set, ids are name-based UUIDs
//	logging:
//	  level: info        # debug, info, warn, error
//	  debug: false       # human-friendly development output
package config
