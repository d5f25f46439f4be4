package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "A", cfg.RecordType)
	assert.Equal(t, "show-addresses", cfg.Action)
	assert.Equal(t, 30, cfg.Workers)
	assert.Equal(t, 2, cfg.Retries)
	assert.Equal(t, 5*time.Second, cfg.Timeout.Std())
	assert.Equal(t, 0, cfg.QPS)
	assert.Equal(t, "table", cfg.Format)
	assert.True(t, cfg.Colorize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dnsgrid.yaml")
	content := `
servers:
  - 8.8.8.8:53
  - 1.1.1.1:53
action: show-timings
workers: 10
timeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"8.8.8.8:53", "1.1.1.1:53"}, cfg.Servers)
	assert.Equal(t, "show-timings", cfg.Action)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 2*time.Second, cfg.Timeout.Std())

	// Keys absent from the file keep their defaults.
	assert.Equal(t, "A", cfg.RecordType)
	assert.Equal(t, 2, cfg.Retries)
	assert.True(t, cfg.Colorize)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dnsgrid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("action: show-everything\n"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"zero retries", func(c *Config) { c.Retries = 0 }},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }},
		{"negative qps", func(c *Config) { c.QPS = -1 }},
		{"unknown action", func(c *Config) { c.Action = "bogus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
