package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestEmptyDecoderConfig_Defaults(t *testing.T) {
	cfg := EmptyDecoderConfig()

	assert.Equal(t, "inputs/day_16", cfg.GetInputPath())
	assert.Equal(t, "out", cfg.GetOutputDir())
	assert.Equal(t, "text", cfg.GetOutputFormat())
	assert.Equal(t, "warn", cfg.GetLogLevel())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, "1200px", cfg.GetChartWidth())
	assert.Equal(t, "800px", cfg.GetChartHeight())
	assert.NoError(t, cfg.Validate())
}

func TestDefaultDecoderConfig_AllFieldsSet(t *testing.T) {
	cfg := DefaultDecoderConfig()
	require.NotNil(t, cfg.InputPath)
	require.NotNil(t, cfg.OutputDir)
	require.NotNil(t, cfg.OutputFormat)
	require.NotNil(t, cfg.LogLevel)
	require.NotNil(t, cfg.LogFormat)
	require.NotNil(t, cfg.ChartWidth)
	require.NotNil(t, cfg.ChartHeight)
	assert.Equal(t, EmptyDecoderConfig().GetOutputDir(), *cfg.OutputDir)
}

func TestMustLoadDefaultConfig_MatchesBuiltInDefaults(t *testing.T) {
	cfg := MustLoadDefaultConfig()
	assert.Equal(t, DefaultDecoderConfig(), cfg)
}

func TestLoadDecoderConfig_YAML(t *testing.T) {
	path := writeConfig(t, "decoder.yaml", `
input_path: data/transmission.txt
output_format: json
log_level: DEBUG
chart_width: 640px
`)

	cfg, err := LoadDecoderConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "data/transmission.txt", cfg.GetInputPath())
	assert.Equal(t, "json", cfg.GetOutputFormat())
	assert.Equal(t, "debug", cfg.GetLogLevel())
	assert.Equal(t, "640px", cfg.GetChartWidth())
	// Unset fields keep their defaults.
	assert.Nil(t, cfg.OutputDir)
	assert.Equal(t, "out", cfg.GetOutputDir())
	assert.Equal(t, "800px", cfg.GetChartHeight())
}

func TestLoadDecoderConfig_JSON(t *testing.T) {
	path := writeConfig(t, "decoder.json", `{"output_dir": "reports", "log_format": "json"}`)

	cfg, err := LoadDecoderConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "reports", cfg.GetOutputDir())
	assert.Equal(t, "json", cfg.GetLogFormat())
}

func TestLoadDecoderConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"wrong extension", "decoder.toml", "output_dir = 'x'", "extension"},
		{"malformed yaml", "decoder.yaml", "output_dir: [unclosed", "failed to parse config"},
		{"bad output format", "decoder.yaml", "output_format: xml", "output_format must be one of"},
		{"bad log format", "decoder.yaml", "log_format: logfmt", "log_format must be one of"},
		{"bad log level", "decoder.yaml", "log_level: chatty", "log_level must be one of"},
		{"blank input path", "decoder.yaml", "input_path: '  '", "input_path must not be empty"},
		{"blank output dir", "decoder.yaml", "output_dir: ''", "output_dir must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := LoadDecoderConfig(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadDecoderConfig_MissingFile(t *testing.T) {
	_, err := LoadDecoderConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to stat config file")
}

func TestLoadDecoderConfig_TooLarge(t *testing.T) {
	big := "# " + strings.Repeat("x", maxFileSize) + "\n"
	path := writeConfig(t, "decoder.yaml", big)

	_, err := LoadDecoderConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too large")
}

func TestLoadDecoderConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "decoder.yaml", "log_level: info\noutput_dir: out\n")

	t.Run("overrides file values", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "error")
		t.Setenv(EnvOutputDir, "/tmp/decoder-reports")

		cfg, err := LoadDecoderConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "error", cfg.GetLogLevel())
		assert.Equal(t, "/tmp/decoder-reports", cfg.GetOutputDir())
	})

	t.Run("empty env is ignored", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvOutputDir, "")

		cfg, err := LoadDecoderConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.GetLogLevel())
		assert.Equal(t, "out", cfg.GetOutputDir())
	})

	t.Run("invalid override fails validation", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "loud")

		_, err := LoadDecoderConfig(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}
