// Package main provides the CLI entrypoint for scenario-generator.
//
// scenario-generator turns the parameter tables of an energy-model study into
// the scenario files the simulator imports:
//   - Reads all_var.csv (every parameter, its baseline and database key)
//   - Reads param_encoding.csv (one column of override values per scenario)
//   - Writes input/scenario_list.csv and input/scenario_settings.csv
//
// An optional scenario-generator.yaml in the working directory adjusts paths,
// scenario descriptor fields and logging.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"scenario-generator/internal/config"
	"scenario-generator/internal/pipeline"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scenario-generator",
		Short: "Generate simulator scenario files from the parameter tables",
		Long: `Reads all_var.csv and param_encoding.csv from the working directory and
writes input/scenario_list.csv and input/scenario_settings.csv.

Each column of param_encoding.csv after the index column is one scenario,
named sample_0, sample_1, ... in order. The first column whose first data
cell is blank ends the list of scenarios.

Settings for paths, scenario descriptor fields and logging are read from
` + config.DefaultPath + ` when that file exists.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadOptional(config.DefaultPath)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		return err
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

		return err
	}
	defer func() { _ = logger.Sync() }()

	res, err := pipeline.Run(cfg, logger)
	if err != nil {
		logger.Error("Scenario generation failed", zap.Error(err))

		return err
	}

	return res.Err()
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Debug {
		zc = zap.NewDevelopmentConfig()
	}

	zc.Level = zap.NewAtomicLevelAt(level)

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return logger, nil
}
