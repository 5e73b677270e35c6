// Package config loads tpx settings from a YAML file.
//
// Lookup order when no path is given:
//  1. $TPX_CONFIG
//  2. ./tpx.yaml
//
// Command-line flags override file values.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceProbe/internal/logging"
	"github.com/OpenTraceLab/OpenTraceProbe/pkg/export"
)

// EnvVar names the environment variable holding a config path.
const EnvVar = "TPX_CONFIG"

// DefaultFile is the config file looked for in the working directory.
const DefaultFile = "tpx.yaml"

// Config is the contents of a tpx.yaml file.
type Config struct {
	// UseAuxOrigin measures positions from the board's auxiliary origin.
	UseAuxOrigin bool `yaml:"use_aux_origin"`

	// Strict makes an empty test point selection an error.
	Strict bool `yaml:"strict"`

	Log       LogConfig       `yaml:"log"`
	Output    OutputConfig    `yaml:"output"`
	Clearance ClearanceConfig `yaml:"clearance"`
}

// LogConfig is the log section.
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// OutputConfig is the output section. Format is the report format used when
// neither --format nor the output file extension picks one.
type OutputConfig struct {
	Format string `yaml:"format"`
}

// ClearanceConfig is the clearance section.
type ClearanceConfig struct {
	// MinMM is the smallest allowed center distance between two probes.
	MinMM float64 `yaml:"min_mm"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{
		Log:       LogConfig{Level: "info", Console: true},
		Output:    OutputConfig{Format: "csv"},
		Clearance: ClearanceConfig{MinMM: 2.54},
	}
}

// FindPath returns the config file to load, or "" when there is none.
func FindPath() string {
	if p := os.Getenv(EnvVar); p != "" {
		return p
	}
	if _, err := os.Stat(DefaultFile); err == nil {
		return DefaultFile
	}
	return ""
}

// Load reads path over the defaults. An empty path searches FindPath and
// returns the defaults when nothing is found.
func Load(path string) (*Config, error) {
	if path == "" {
		path = FindPath()
		if path == "" {
			return Default(), nil
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config file %s not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid value.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := export.ForFormat(c.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	if c.Clearance.MinMM < 0 {
		return fmt.Errorf("clearance.min_mm must not be negative, got %g", c.Clearance.MinMM)
	}
	return nil
}

// Logging returns the logger settings.
func (c *Config) Logging(component string) logging.Config {
	return logging.Config{
		Level:     c.Log.Level,
		Console:   c.Log.Console,
		Component: component,
	}
}
