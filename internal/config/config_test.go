package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	loader := NewLoader(t.TempDir())
	cfg, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "selenium", cfg.Compile.Framework)
	assert.Equal(t, ".", cfg.Compile.OutputDir)
	assert.Equal(t, 0, cfg.Quota.DailyLimit)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configDir := filepath.Join(dir, ConfigDirName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))

	content := "compile:\n  framework: cypress\n  output_dir: out\nquota:\n  daily_limit: 10\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte(content), 0o644))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "cypress", cfg.Compile.Framework)
	assert.Equal(t, "out", cfg.Compile.OutputDir)
	assert.Equal(t, 10, cfg.Quota.DailyLimit)
	// Untouched sections keep their defaults.
	assert.Equal(t, 500, cfg.Watch.DebounceMS)
}

func TestLoadSearchesUpward(t *testing.T) {
	root := t.TempDir()
	configDir := filepath.Join(root, ConfigDirName)
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, ConfigFileName), []byte("compile:\n  framework: requests\n"), 0o644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := NewLoader(nested).Load()
	require.NoError(t, err)
	assert.Equal(t, "requests", cfg.Compile.Framework)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("TESTFORGE_FRAMEWORK", "appium")
	t.Setenv("TESTFORGE_DAILY_LIMIT", "25")

	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "appium", cfg.Compile.Framework)
	assert.Equal(t, 25, cfg.Quota.DailyLimit)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Quota.DailyLimit = -1

	err := cfg.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quota.daily_limit", verr.Field)
}

func TestValidateLogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigDirName, ConfigFileName)

	cfg := DefaultConfig()
	cfg.Compile.Framework = "playwright"
	require.NoError(t, NewLoader(dir).Save(cfg, path))

	loaded, err := NewLoader(dir).Load()
	require.NoError(t, err)
	assert.Equal(t, "playwright", loaded.Compile.Framework)
}
