package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"scenario-generator/internal/config"
	"scenario-generator/internal/diagnostic"
	"scenario-generator/internal/override"
	"scenario-generator/internal/scenario"
	"scenario-generator/internal/variable"
)

// Result summarizes a run.
type Result struct {
	// Scenarios lists the generated scenario names in processing order.
	Scenarios []string
	// Records and Overrides count the usable rows of both input tables.
	Records   int
	Overrides int
	// Diagnostics holds every row-level finding and write failure.
	Diagnostics diagnostic.Diagnostics
	// WriteErrors holds the failures of the two output writes.
	WriteErrors []error
}

// Err joins the write errors, or returns nil if both files were written.
func (r *Result) Err() error {
	return errors.Join(r.WriteErrors...)
}

// Generated is the in-memory output of a run, before anything is written.
type Generated struct {
	Scenarios []string
	List      *scenario.List
	Settings  *scenario.Settings
}

// Run executes the whole pipeline described by cfg.
//
// A missing input file, an invalid config or, with strict alignment, a
// misaligned scenario aborts the run before any output is written. Failing
// to write one output file does not prevent writing the other; such failures
// are returned in Result.WriteErrors.
func Run(cfg *config.Config, logger *zap.Logger) (*Result, error) {
	tmpl, err := cfg.Template()
	if err != nil {
		return nil, err
	}

	res := &Result{}

	vars, diags, err := variable.ParseFile(cfg.VariableTable)
	if err != nil {
		return nil, err
	}

	res.Diagnostics.Merge(diags)
	res.Records = len(vars.Records)
	logger.Info("Variable table loaded",
		zap.String("path", cfg.VariableTable),
		zap.Int("records", len(vars.Records)),
		zap.Int("baseline", len(vars.Baseline())),
		zap.Int("special_types", len(vars.SpecialIndex)))

	enc, diags, err := override.ParseFile(cfg.EncodingTable)
	if err != nil {
		return nil, err
	}

	res.Diagnostics.Merge(diags)
	res.Overrides = len(enc.Entries)
	logger.Info("Encoding table loaded",
		zap.String("path", cfg.EncodingTable),
		zap.Int("overrides", len(enc.Entries)),
		zap.Int("columns", len(enc.ScenarioColumns())))

	gen, diags, err := Generate(cfg.EncodingTable, vars, enc, tmpl, cfg.StrictAlignment, logger)
	res.Diagnostics.Merge(diags)

	if err != nil {
		logDiagnostics(logger, res.Diagnostics)

		return nil, err
	}

	res.Scenarios = gen.Scenarios

	save(logger, res, cfg.ListPath(), gen.List.Save)
	save(logger, res, cfg.SettingsPath(), gen.Settings.Save)

	logDiagnostics(logger, res.Diagnostics)
	logger.Info("Scenario generation finished",
		zap.Int("scenarios", len(res.Scenarios)),
		zap.Int("warnings", len(res.Diagnostics.Warnings)),
		zap.Int("write_errors", len(res.WriteErrors)))

	return res, nil
}

// Generate builds every scenario of enc against vars. source names the
// encoding table in diagnostics.
//
// Scenario columns are processed left to right until Build reports the end
// of the scenarios; the built columns are then handed to Assemble.
func Generate(
	source string,
	vars *variable.Table,
	enc *override.Table,
	tmpl scenario.Template,
	strict bool,
	logger *zap.Logger,
) (*Generated, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	for _, entry := range scenario.Unresolved(vars, enc.Entries) {
		diags.AddWarning(diagnostic.CodeUnknownVariable, source, entry.Line,
			fmt.Sprintf("index %d matches no variable, override dropped", entry.VariableIndex))
	}

	var cols []scenario.Column

	for k, values := range enc.ScenarioColumns() {
		col, ok := scenario.Build(values, vars, enc.Entries)
		if !ok {
			logger.Debug("End of scenarios", zap.Int("column", k+1))

			break
		}

		cols = append(cols, col)
	}

	gen, more, err := Assemble(source, cols, tmpl, strict, logger)
	diags.Merge(more)

	return gen, diags, err
}

// Assemble turns built scenario columns, in order, into the list and
// settings outputs. The first column fixes the settings input column.
// With strict set, a column misaligned with it is an error; otherwise it is
// reported as a warning and kept.
func Assemble(
	source string,
	cols []scenario.Column,
	tmpl scenario.Template,
	strict bool,
	logger *zap.Logger,
) (*Generated, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	gen := &Generated{
		List:     &scenario.List{},
		Settings: scenario.NewSettings(),
	}

	for k, col := range cols {
		name := scenario.Name(k)
		logger.Debug("Processing scenario", zap.String("name", name), zap.Int("settings", len(col)))

		gen.List.AddRow(tmpl.Describe(k))

		if k == 0 {
			gen.Settings.SetInputColumn(col.Keys())
		}

		if err := gen.Settings.Merge(name, col); err != nil {
			if strict {
				return nil, diags, fmt.Errorf("merging %s: %w", name, err)
			}

			diags.AddWarning(diagnostic.CodeMisaligned, source, 0, err.Error())
		}

		gen.Scenarios = append(gen.Scenarios, name)
	}

	return gen, diags, nil
}

// save runs one output write and records its failure without stopping.
func save(logger *zap.Logger, res *Result, path string, write func(string) error) {
	if err := write(path); err != nil {
		err = fmt.Errorf("writing %s: %w", path, err)
		res.WriteErrors = append(res.WriteErrors, err)
		res.Diagnostics.AddError(diagnostic.CodeWriteFailed, path, 0, err.Error())
		logger.Error("Failed to write output", zap.String("path", path), zap.Error(err))

		return
	}

	logger.Info("Output written", zap.String("path", path))
}

func logDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		logger.Warn(d.Message, diagnosticFields(d)...)
	}

	for _, d := range diags.Infos {
		logger.Info(d.Message, diagnosticFields(d)...)
	}
}

func diagnosticFields(d diagnostic.Diagnostic) []zap.Field {
	fields := []zap.Field{zap.Stringer("code", d.Code)}

	if loc := d.Location(); loc != "" {
		fields = append(fields, zap.String("at", loc))
	}

	return fields
}
