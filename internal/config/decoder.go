package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is the path to the canonical decoder defaults file.
const DefaultConfigPath = "config/decoder.defaults.yaml"

// Environment variables that override file values.
const (
	EnvLogLevel  = "DECODER_LOG_LEVEL"
	EnvOutputDir = "DECODER_OUTPUT_DIR"
)

const maxFileSize = 1 * 1024 * 1024 // 1MB

// DecoderConfig is the root configuration for the decoder CLI. Fields omitted
// from the file stay nil and the Get* methods supply the defaults, so partial
// configs are safe.
type DecoderConfig struct {
	// Input
	InputPath *string `yaml:"input_path,omitempty" json:"input_path,omitempty"`

	// Output
	OutputDir    *string `yaml:"output_dir,omitempty" json:"output_dir,omitempty"`
	OutputFormat *string `yaml:"output_format,omitempty" json:"output_format,omitempty"` // text or json

	// Logging
	LogLevel  *string `yaml:"log_level,omitempty" json:"log_level,omitempty"`   // debug, info, warn, error
	LogFormat *string `yaml:"log_format,omitempty" json:"log_format,omitempty"` // text or json

	// Charts
	ChartWidth  *string `yaml:"chart_width,omitempty" json:"chart_width,omitempty"` // CSS size like "1200px"
	ChartHeight *string `yaml:"chart_height,omitempty" json:"chart_height,omitempty"`
}

func ptrString(v string) *string { return &v }

// EmptyDecoderConfig returns a DecoderConfig with all fields set to nil.
func EmptyDecoderConfig() *DecoderConfig {
	return &DecoderConfig{}
}

// DefaultDecoderConfig returns a DecoderConfig with every field populated.
func DefaultDecoderConfig() *DecoderConfig {
	c := EmptyDecoderConfig()
	return &DecoderConfig{
		InputPath:    ptrString(c.GetInputPath()),
		OutputDir:    ptrString(c.GetOutputDir()),
		OutputFormat: ptrString(c.GetOutputFormat()),
		LogLevel:     ptrString(c.GetLogLevel()),
		LogFormat:    ptrString(c.GetLogFormat()),
		ChartWidth:   ptrString(c.GetChartWidth()),
		ChartHeight:  ptrString(c.GetChartHeight()),
	}
}

// LoadDecoderConfig loads a DecoderConfig from a YAML or JSON file, applies
// environment overrides, and validates the result.
func LoadDecoderConfig(path string) (*DecoderConfig, error) {
	cleanPath := filepath.Clean(path)
	switch ext := filepath.Ext(cleanPath); ext {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("config file must have .yaml, .yml or .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// JSON is a subset of YAML, so one decoder serves both extensions.
	cfg := EmptyDecoderConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// MustLoadDefaultConfig loads the canonical defaults from DefaultConfigPath.
// It searches the current directory and common parent directories.
// Panics if the file cannot be loaded, intended for test setup.
func MustLoadDefaultConfig() *DecoderConfig {
	candidates := []string{
		DefaultConfigPath,
		"../" + DefaultConfigPath,
		"../../" + DefaultConfigPath, // from internal/config/
		"../../../" + DefaultConfigPath,
	}
	for _, path := range candidates {
		if cfg, err := LoadDecoderConfig(path); err == nil {
			return cfg
		}
	}
	panic("cannot find " + DefaultConfigPath + " - run tests from repository root")
}

// ApplyEnvOverrides replaces file values with DECODER_* environment variables.
func (c *DecoderConfig) ApplyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = ptrString(v)
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = ptrString(v)
	}
}

// Validate checks that the configuration values are valid.
func (c *DecoderConfig) Validate() error {
	if c.OutputFormat != nil {
		if err := oneOf("output_format", *c.OutputFormat, "text", "json"); err != nil {
			return err
		}
	}
	if c.LogFormat != nil {
		if err := oneOf("log_format", *c.LogFormat, "text", "json"); err != nil {
			return err
		}
	}
	if c.LogLevel != nil {
		if err := oneOf("log_level", strings.ToLower(*c.LogLevel), "debug", "info", "warn", "error"); err != nil {
			return err
		}
	}
	if c.InputPath != nil && strings.TrimSpace(*c.InputPath) == "" {
		return fmt.Errorf("input_path must not be empty")
	}
	if c.OutputDir != nil && strings.TrimSpace(*c.OutputDir) == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}

func oneOf(field, got string, allowed ...string) error {
	for _, a := range allowed {
		if got == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s, got %q", field, strings.Join(allowed, ", "), got)
}

// GetInputPath returns the input_path value or the default.
func (c *DecoderConfig) GetInputPath() string {
	if c.InputPath == nil {
		return "inputs/day_16"
	}
	return *c.InputPath
}

// GetOutputDir returns the output_dir value or the default.
func (c *DecoderConfig) GetOutputDir() string {
	if c.OutputDir == nil {
		return "out"
	}
	return *c.OutputDir
}

// GetOutputFormat returns the output_format value or the default.
func (c *DecoderConfig) GetOutputFormat() string {
	if c.OutputFormat == nil {
		return "text"
	}
	return *c.OutputFormat
}

// GetLogLevel returns the log_level value or the default.
func (c *DecoderConfig) GetLogLevel() string {
	if c.LogLevel == nil {
		return "warn"
	}
	return strings.ToLower(*c.LogLevel)
}

// GetLogFormat returns the log_format value or the default.
func (c *DecoderConfig) GetLogFormat() string {
	if c.LogFormat == nil {
		return "text"
	}
	return *c.LogFormat
}

// GetChartWidth returns the chart_width value or the default.
func (c *DecoderConfig) GetChartWidth() string {
	if c.ChartWidth == nil || *c.ChartWidth == "" {
		return "1200px"
	}
	return *c.ChartWidth
}

// GetChartHeight returns the chart_height value or the default.
func (c *DecoderConfig) GetChartHeight() string {
	if c.ChartHeight == nil || *c.ChartHeight == "" {
		return "800px"
	}
	return *c.ChartHeight
}
