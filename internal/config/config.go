package config

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"

	"scenario-generator/internal/scenario"
)

// DefaultPath is where the generator looks for its config file.
const DefaultPath = "scenario-generator.yaml"

// Output file names inside OutputDir.
const (
	ListFile     = "scenario_list.csv"
	SettingsFile = "scenario_settings.csv"
)

// Config holds all scenario generator configuration.
type Config struct {
	// VariableTable is the path of the master parameter table.
	VariableTable string `yaml:"variable_table"`
	// EncodingTable is the path of the scenario override table.
	EncodingTable string `yaml:"encoding_table"`
	// OutputDir receives both output files. Created if absent.
	OutputDir string `yaml:"output_dir"`
	// StrictAlignment aborts the run before writing anything when a scenario's
	// keys do not line up with the first scenario's.
	StrictAlignment bool `yaml:"strict_alignment"`

	Scenario ScenarioConfig `yaml:"scenario"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ScenarioConfig holds the descriptor fields shared by every scenario.
type ScenarioConfig struct {
	Title          string `yaml:"title"`
	AreaCode       string `yaml:"area_code"`
	EndYear        string `yaml:"end_year"`
	Description    string `yaml:"description"`
	KeepCompatible bool   `yaml:"keep_compatible"`
	CurveFile      string `yaml:"curve_file"`
	IDNamespace    string `yaml:"id_namespace"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	Debug bool   `yaml:"debug"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	tmpl := scenario.DefaultTemplate()

	return &Config{
		VariableTable: "all_var.csv",
		EncodingTable: "param_encoding.csv",
		OutputDir:     "input",
		Scenario: ScenarioConfig{
			Title:       tmpl.Title,
			AreaCode:    tmpl.AreaCode,
			EndYear:     tmpl.EndYear,
			Description: tmpl.Description,
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// ListPath returns the path of scenario_list.csv.
func (c *Config) ListPath() string {
	return filepath.Join(c.OutputDir, ListFile)
}

// SettingsPath returns the path of scenario_settings.csv.
func (c *Config) SettingsPath() string {
	return filepath.Join(c.OutputDir, SettingsFile)
}

// Template converts the scenario section into a descriptor template.
func (c *Config) Template() (scenario.Template, error) {
	tmpl := scenario.Template{
		Title:          c.Scenario.Title,
		AreaCode:       c.Scenario.AreaCode,
		EndYear:        c.Scenario.EndYear,
		Description:    c.Scenario.Description,
		KeepCompatible: c.Scenario.KeepCompatible,
		CurveFile:      c.Scenario.CurveFile,
	}

	if c.Scenario.IDNamespace != "" {
		ns, err := uuid.Parse(c.Scenario.IDNamespace)
		if err != nil {
			return scenario.Template{}, fmt.Errorf("invalid scenario.id_namespace %q: %w", c.Scenario.IDNamespace, err)
		}

		tmpl.IDNamespace = ns
	}

	return tmpl, nil
}

// Validate checks values that YAML decoding cannot.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q: want debug, info, warn or error", c.Logging.Level)
	}

	if _, err := c.Template(); err != nil {
		return err
	}

	return nil
}
