package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	ConfigFileName  = "config.yaml"
	ConfigDirName   = ".testforge"
	GlobalConfigDir = ".config/testforge"
)

// Loader finds and loads the configuration file.
type Loader struct {
	startDir string
}

// NewLoader creates a loader that searches upward from startDir. An
// empty startDir means the current working directory.
func NewLoader(startDir string) *Loader {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			startDir = "."
		}
	}
	return &Loader{startDir: startDir}
}

// Load returns the effective configuration: file values where a file
// exists, defaults otherwise, environment overrides on top.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()

	if path, ok := l.findConfigFile(); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches upward for .testforge/config.yaml, then falls
// back to the global config under the home directory.
func (l *Loader) findConfigFile() (string, bool) {
	dir := l.startDir
	for {
		path := filepath.Join(dir, ConfigDirName, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, GlobalConfigDir, ConfigFileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}

	return "", false
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TESTFORGE_FRAMEWORK"); v != "" {
		cfg.Compile.Framework = v
	}
	if v := os.Getenv("TESTFORGE_OUTPUT_DIR"); v != "" {
		cfg.Compile.OutputDir = v
	}
	if v := os.Getenv("TESTFORGE_DAILY_LIMIT"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			cfg.Quota.DailyLimit = limit
		}
	}
	if v := os.Getenv("TESTFORGE_QUOTA_DB"); v != "" {
		cfg.Quota.Database = v
	}
	if v := os.Getenv("TESTFORGE_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// Save writes the config to path, creating the directory if needed.
func (l *Loader) Save(cfg *Config, path string) error {
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
