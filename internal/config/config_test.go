package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.True(t, cfg.Log.Color)
	assert.Equal(t, DefaultCacheCapacity, cfg.Cache.Capacity)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestLoad_GlobalConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".surfacegate")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"log:\n  level: debug\ncache:\n  capacity: 25\n"), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 25, cfg.Cache.Capacity)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".surfacegate")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(
		"log:\n  level: debug\n"), 0o644))

	t.Setenv("SURFACEGATE_LOG_LEVEL", "error")
	t.Setenv("SURFACEGATE_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SURFACEGATE_LOG_LEVEL", "error")

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "")
	cmd.Flags().String("log.level", DefaultLogLevel, "")
	require.NoError(t, cmd.Flags().Set("log.level", "warn"))

	cfg, err := Load(cmd)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_ExplicitConfigPathErrorsWhenMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "")
	require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")))

	_, err := Load(cmd)
	assert.Error(t, err)
}

func TestLoad_NonPositiveCapacityFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SURFACEGATE_CACHE_CAPACITY", "0")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultCacheCapacity, cfg.Cache.Capacity)
}
