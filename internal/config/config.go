// Package config holds runtime configuration for the advent CLI.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config controls where inputs and the run journal live and how runs behave.
type Config struct {
	// InputDir is the root directory of puzzle inputs, laid out as
	// <InputDir>/<year>/dayNN.txt.
	InputDir string `yaml:"input_dir"`

	// JournalPath is the sqlite file recording runs and answers.
	JournalPath string `yaml:"journal_path"`

	// Parallelism bounds concurrent solvers when running many puzzles.
	// Range: 1-64.
	Parallelism int `yaml:"parallelism"`

	// NoColor disables ANSI color output.
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns the default configuration: inputs and the journal
// live under the working directory so a checkout is self-contained.
func DefaultConfig() Config {
	return Config{
		InputDir:    "inputs",
		JournalPath: filepath.Join(".advent", "journal.db"),
		Parallelism: 4,
	}
}

// Validate checks if the configuration has valid values.
func (c Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.JournalPath == "" {
		return fmt.Errorf("journal_path must not be empty")
	}
	if c.Parallelism < 1 || c.Parallelism > 64 {
		return fmt.Errorf("parallelism must be between 1 and 64 (got %d)", c.Parallelism)
	}
	return nil
}

// Load builds the effective configuration: defaults, overridden by an
// advent.yaml in the working directory when present, overridden by
// environment variables.
//
// Environment variables:
//   - ADVENT_INPUT_DIR: root directory of puzzle inputs
//   - ADVENT_JOURNAL: path of the sqlite run journal
//   - ADVENT_PARALLELISM: concurrent solver bound for bulk runs
//   - ADVENT_NO_COLOR: disable color output ("true"/"false")
func Load() (Config, error) {
	cfg, err := loadFile(DefaultConfig(), "advent.yaml")
	if err != nil {
		return cfg, err
	}
	return fromEnv(cfg)
}

// loadFile overlays a yaml config file onto cfg. A missing file is not an
// error.
func loadFile(cfg Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

func fromEnv(cfg Config) (Config, error) {
	parseEnvString("ADVENT_INPUT_DIR", &cfg.InputDir)
	parseEnvString("ADVENT_JOURNAL", &cfg.JournalPath)
	if err := parseEnvInt("ADVENT_PARALLELISM", &cfg.Parallelism); err != nil {
		return cfg, err
	}
	if err := parseEnvBool("ADVENT_NO_COLOR", &cfg.NoColor); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// parseEnvString reads a string from an environment variable
func parseEnvString(key string, dest *string) {
	if value := os.Getenv(key); value != "" {
		*dest = value
	}
}

// parseEnvInt parses an int from an environment variable
func parseEnvInt(key string, dest *int) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}

// parseEnvBool parses a bool from an environment variable
func parseEnvBool(key string, dest *bool) error {
	value := os.Getenv(key)
	if value == "" {
		return nil // Use default
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	*dest = parsed
	return nil
}
