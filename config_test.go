package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nospoiler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("placeholder: \"*\"\ncolor: never\nlog_level: debug\n"), 0644))

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)

	p, err := cfg.placeholder()
	require.NoError(t, err)
	assert.Equal(t, byte('*'), p)
	assert.Equal(t, "never", cfg.Color)
	assert.Equal(t, 4, cfg.Workers)

	level, err := cfg.level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadConfigMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	cfg, err := loadConfig(path, false)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	_, err = loadConfig(path, true)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"letter placeholder", func(c *Config) { c.Placeholder = "x" }},
		{"long placeholder", func(c *Config) { c.Placeholder = "??" }},
		{"unknown color", func(c *Config) { c.Color = "sometimes" }},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.modify(&cfg)
			assert.Error(t, cfg.validate())
		})
	}

	assert.NoError(t, defaultConfig().validate())
}
