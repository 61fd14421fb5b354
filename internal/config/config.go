package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete converter configuration
type Config struct {
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Layout    LayoutConfig    `yaml:"layout" envconfig:"LAYOUT"`
	Output    OutputConfig    `yaml:"output" envconfig:"OUTPUT"`
	Telemetry TelemetryConfig `yaml:"telemetry" envconfig:"TELEMETRY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn warning error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" validate:"required_unless=Output console"`
}

// LayoutConfig describes where things live in the evaluation sheet
type LayoutConfig struct {
	SourceSheet     string `yaml:"source_sheet" envconfig:"SOURCE_SHEET" validate:"required,max=31"`
	TargetSheet     string `yaml:"target_sheet" envconfig:"TARGET_SHEET" validate:"required,max=31,nefield=SourceSheet"`
	TargetIndex     int    `yaml:"target_index" envconfig:"TARGET_INDEX" validate:"min=0"`
	HeaderRow       int    `yaml:"header_row" envconfig:"HEADER_ROW" validate:"min=1"`
	MetadataColumns int    `yaml:"metadata_columns" envconfig:"METADATA_COLUMNS" validate:"min=0"`
	FirstDataRow    int    `yaml:"first_data_row" envconfig:"FIRST_DATA_ROW" validate:"gtfield=HeaderRow"`
	BlockStride     int    `yaml:"block_stride" envconfig:"BLOCK_STRIDE" validate:"min=1"`
	TrialRows       int    `yaml:"trial_rows" envconfig:"TRIAL_ROWS" validate:"min=1,ltefield=BlockStride"`
	RowLimit        int    `yaml:"row_limit" envconfig:"ROW_LIMIT" validate:"gtfield=FirstDataRow"`
}

// OutputConfig controls optional side outputs of a conversion
type OutputConfig struct {
	CSVPath string `yaml:"csv_path" envconfig:"CSV_PATH"`
	CSVBOM  bool   `yaml:"csv_bom" envconfig:"CSV_BOM"`
}

// TelemetryConfig controls tracing and metrics export
type TelemetryConfig struct {
	ServiceName   string `yaml:"service_name" envconfig:"SERVICE_NAME" validate:"required"`
	TraceExporter string `yaml:"trace_exporter" envconfig:"TRACE_EXPORTER" validate:"oneof=none stdout"`
	MetricsFile   string `yaml:"metrics_file" envconfig:"METRICS_FILE"`
}

// Load builds the configuration from defaults, an optional YAML file and
// the environment, in increasing order of precedence. A .env file in the
// working directory is read first and never overrides variables that are
// already set.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Default()

	if configFile := getConfigFilePath(); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file %s: %w", configFile, err)
		}
	}

	// No default tags on the struct: envconfig only touches fields whose
	// variables are set, so file values survive.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// loadFromFile overlays the keys present in a YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks field constraints
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	if explicit := os.Getenv(EnvPrefix + "_CONFIG_FILE"); explicit != "" {
		return explicit
	}

	for _, location := range configFileLocations {
		if FileExists(location) {
			return location
		}
	}

	// Next to the installed binary
	if paths, err := GetPaths(); err == nil && FileExists(paths.ConfigFile) {
		return paths.ConfigFile
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: DefaultLogFile,
		},
		Layout: LayoutConfig{
			SourceSheet:     DefaultSourceSheet,
			TargetSheet:     DefaultTargetSheet,
			TargetIndex:     DefaultTargetIndex,
			HeaderRow:       DefaultHeaderRow,
			MetadataColumns: DefaultMetadataColumns,
			FirstDataRow:    DefaultFirstDataRow,
			BlockStride:     DefaultBlockStride,
			TrialRows:       DefaultTrialRows,
			RowLimit:        DefaultRowLimit,
		},
		Telemetry: TelemetryConfig{
			ServiceName:   AppName,
			TraceExporter: "none",
		},
	}
}
