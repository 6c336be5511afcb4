// Package config loads the optional .testforge/config.yaml. Every
// setting has a working default so the CLI runs without any config file
// at all.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config is the full tool configuration.
type Config struct {
	Compile CompileConfig `yaml:"compile"`
	Quota   QuotaConfig   `yaml:"quota"`
	Watch   WatchConfig   `yaml:"watch"`
	Logging LoggingConfig `yaml:"logging"`
}

// CompileConfig sets compile defaults that flags can override.
type CompileConfig struct {
	Framework string `yaml:"framework"`
	OutputDir string `yaml:"output_dir"`
}

// QuotaConfig configures the per-day compile gate. A DailyLimit of zero
// disables it.
type QuotaConfig struct {
	DailyLimit int    `yaml:"daily_limit"`
	Database   string `yaml:"database"`
}

// WatchConfig configures the watch command.
type WatchConfig struct {
	DebounceMS int `yaml:"debounce_ms"`
}

// LoggingConfig configures the file logger.
type LoggingConfig struct {
	Level string `yaml:"level"`
	Dir   string `yaml:"dir"`
}

// ValidationError describes an invalid configuration value.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
}

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() *Config {
	return &Config{
		Compile: CompileConfig{
			Framework: "selenium",
			OutputDir: ".",
		},
		Quota: QuotaConfig{
			DailyLimit: 0,
			Database:   "", // resolved to <config dir>/testforge.db when quota is on
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// Validate checks value ranges. Field names in errors use the YAML path.
func (c *Config) Validate() error {
	if c.Compile.Framework == "" {
		return &ValidationError{Field: "compile.framework", Message: "must not be empty"}
	}
	if c.Quota.DailyLimit < 0 {
		return &ValidationError{Field: "quota.daily_limit", Message: "must not be negative"}
	}
	if c.Watch.DebounceMS < 0 {
		return &ValidationError{Field: "watch.debounce_ms", Message: "must not be negative"}
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "logging.level", Message: fmt.Sprintf("unknown level %q", c.Logging.Level)}
	}
	return nil
}

// Marshal renders the config as YAML, used by `testforge init`.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
