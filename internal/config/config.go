// Package config loads toolkit configuration from defaults, an optional
// YAML file, and H501_-prefixed environment variables, in that order of
// precedence (environment wins).
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix is the prefix for all environment variable overrides,
// e.g. H501_LOGGING_LEVEL=debug.
const EnvPrefix = "H501"

// Config represents the complete toolkit configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Sample  SampleConfig  `yaml:"sample" envconfig:"SAMPLE"`
	Charts  ChartsConfig  `yaml:"charts" envconfig:"CHARTS"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR" validate:"required"`
}

// SampleConfig controls synthetic sample-data generation
type SampleConfig struct {
	Rows int    `yaml:"rows" envconfig:"ROWS" validate:"gte=0"`
	Seed uint64 `yaml:"seed" envconfig:"SEED"`
}

// ChartsConfig contains default chart rendering settings
type ChartsConfig struct {
	WidthInches  float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES" validate:"gt=0"`
	HeightInches float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES" validate:"gt=0"`
	Bins         int     `yaml:"bins" envconfig:"BINS" validate:"gt=0"`
	KDE          bool    `yaml:"kde" envconfig:"KDE"`
}

// Default returns the built-in configuration. The sample defaults mirror
// the canonical demo dataset: 100 rows, seed 42.
func Default() Config {
	return Config{
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "console",
			FilePath: "logs/analyze.log",
		},
		Paths: PathsConfig{
			DataDir:   "data",
			OutputDir: "output",
		},
		Sample: SampleConfig{
			Rows: 100,
			Seed: 42,
		},
		Charts: ChartsConfig{
			WidthInches:  12,
			HeightInches: 6,
			Bins:         30,
			KDE:          true,
		},
	}
}

// Load builds the configuration in three layers: built-in defaults, the
// optional YAML file at configFile (ignored when empty or absent), and
// environment variable overrides.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			if err := loadFromFile(configFile, &cfg); err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile overlays YAML file values onto cfg
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// Validate checks the configuration against the struct validation tags.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}
