// Package config loads finconsol settings from defaults, an optional YAML
// file and FINCONSOL_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable, e.g. FINCONSOL_LOGGING_LEVEL.
const EnvPrefix = "FINCONSOL"

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "finconsol.yaml"

// Config represents the complete application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Ingest  IngestConfig  `yaml:"ingest" envconfig:"INGEST"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// IngestConfig contains spreadsheet reading configuration.
type IngestConfig struct {
	Encoding        string `yaml:"encoding" envconfig:"ENCODING"`
	Delimiter       string `yaml:"delimiter" envconfig:"DELIMITER"`
	Sheet           string `yaml:"sheet" envconfig:"SHEET"`
	IgnorePrintArea bool   `yaml:"ignore_print_area" envconfig:"IGNORE_PRINT_AREA"`
}

// OutputConfig contains report rendering configuration.
type OutputConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT"`
	Pretty bool   `yaml:"pretty" envconfig:"PRETTY"`
	Style  string `yaml:"style" envconfig:"STYLE"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Ingest:  IngestConfig{Encoding: "utf-8", Delimiter: ","},
		Output:  OutputConfig{Format: "markdown", Style: "auto"},
	}
}

// Load builds the configuration. An explicit path must exist; without one
// DefaultFile is used when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	if err := loadFile(path, &cfg); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Comma returns the delimiter as a rune.
func (c IngestConfig) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s (must be text or json)", c.Logging.Format)
	}
	switch c.Output.Format {
	case "json", "markdown", "xlsx":
	default:
		return fmt.Errorf("invalid output format: %s (must be json, markdown, or xlsx)", c.Output.Format)
	}
	if utf8.RuneCountInString(c.Ingest.Delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Ingest.Delimiter)
	}
	return nil
}
