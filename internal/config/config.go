package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Default values applied when fields are absent from the config file.
const (
	DefaultHeightField = "HeightCm"
	DefaultWeightField = "WeightKg"
	DefaultHeightUnit  = UnitCentimeters
	DefaultOutputPath  = "result.csv"
	DefaultFormat      = FormatCSV
	DefaultMode        = "sequential"
	DefaultWorkers     = 4
	DefaultCategory    = "Overweight"
	DefaultLogLevel    = "info"
)

// Height units.
const (
	UnitCentimeters = "cm"
	UnitMeters      = "m"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Config is the full bmistack configuration.
// Fields map 1:1 to bmistack.example.yaml.
type Config struct {
	Input      InputConfig      `yaml:"input"`
	Output     OutputConfig     `yaml:"output"`
	Processing ProcessingConfig `yaml:"processing"`
	Check      CheckConfig      `yaml:"check"`
	Metrics    MetricsConfig    `yaml:"metrics"`

	// LogLevel is one of: debug | info | warn | error.
	LogLevel string `yaml:"log_level"`
}

// InputConfig describes where person records come from and how to read them.
type InputConfig struct {
	// Path is the JSON file holding an array of person records.
	Path string `yaml:"path"`

	// HeightField and WeightField name the numeric fields of each record.
	HeightField string `yaml:"height_field"`
	WeightField string `yaml:"weight_field"`

	// HeightUnit is cm or m.
	HeightUnit string `yaml:"height_unit"`
}

// HeightInCm reports whether heights are given in centimeters.
func (c InputConfig) HeightInCm() bool {
	return c.HeightUnit != UnitMeters
}

// OutputConfig describes where enriched records are written.
type OutputConfig struct {
	Path string `yaml:"path"`

	// Format is csv or json.
	Format string `yaml:"format"`
}

// ProcessingConfig selects the batch execution strategy.
type ProcessingConfig struct {
	// Mode is sequential or pool.
	Mode string `yaml:"mode"`

	// Workers is the pool size; ignored in sequential mode.
	Workers int `yaml:"workers"`
}

// CheckConfig names the category whose count is cross-checked after a run.
type CheckConfig struct {
	Category string `yaml:"category"`
}

// MetricsConfig configures the optional Prometheus textfile report.
type MetricsConfig struct {
	// Textfile is the .prom file path; empty disables the report.
	Textfile string `yaml:"textfile"`
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Load reads, parses and validates the YAML config file at path.
// Missing optional fields are filled with defaults.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Read parses the YAML config file at path over Default without validating,
// so callers can layer further overrides before calling Validate.
func Read(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

// Default returns a Config pre-populated with default values.
// Input.Path is left empty and must be supplied before Validate passes.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			HeightField: DefaultHeightField,
			WeightField: DefaultWeightField,
			HeightUnit:  DefaultHeightUnit,
		},
		Output: OutputConfig{
			Path:   DefaultOutputPath,
			Format: DefaultFormat,
		},
		Processing: ProcessingConfig{
			Mode:    DefaultMode,
			Workers: DefaultWorkers,
		},
		Check:    CheckConfig{Category: DefaultCategory},
		LogLevel: DefaultLogLevel,
	}
}

// Validate checks required fields and enum values.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("config: input.path is required")
	}
	if c.Input.HeightField == "" || c.Input.WeightField == "" {
		return fmt.Errorf("config: input.height_field and input.weight_field must be set")
	}
	switch c.Input.HeightUnit {
	case UnitCentimeters, UnitMeters:
	default:
		return fmt.Errorf("config: input.height_unit: unknown unit %q", c.Input.HeightUnit)
	}
	if c.Output.Path == "" {
		return fmt.Errorf("config: output.path is required")
	}
	switch c.Output.Format {
	case FormatCSV, FormatJSON:
	default:
		return fmt.Errorf("config: output.format: unknown format %q", c.Output.Format)
	}
	switch c.Processing.Mode {
	case "sequential", "pool":
	default:
		return fmt.Errorf("config: processing.mode: unknown mode %q", c.Processing.Mode)
	}
	if c.Processing.Mode == "pool" && c.Processing.Workers <= 0 {
		return fmt.Errorf("config: processing.workers must be positive in pool mode")
	}
	if c.Check.Category == "" {
		return fmt.Errorf("config: check.category is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log_level: unknown level %q", c.LogLevel)
	}
	return nil
}
