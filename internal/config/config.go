// =============================================================================
// internal/config/config.go - Defaults file loading
// =============================================================================
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bryanCE/dnsgrid/internal/grid"
)

// Duration wraps time.Duration so the YAML form accepts "5s" style strings.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the standard library form.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

// Config holds the run defaults. Every field can be overridden by a flag;
// a YAML config file sits between the built-in defaults and the flags.
type Config struct {
	Servers    []string `yaml:"servers"`
	RecordType string   `yaml:"record_type"`
	Action     string   `yaml:"action"`
	Workers    int      `yaml:"workers"`
	Retries    int      `yaml:"retries"`
	Timeout    Duration `yaml:"timeout"`
	QPS        int      `yaml:"qps"`
	Format     string   `yaml:"format"`
	Colorize   bool     `yaml:"colorize"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		RecordType: "A",
		Action:     string(grid.ActionShowAddresses),
		Workers:    grid.DefaultWorkers,
		Retries:    2,
		Timeout:    Duration(5 * time.Second),
		Format:     "table",
		Colorize:   true,
	}
}

// Load reads a YAML config file over the built-in defaults. Keys absent
// from the file keep their default values.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening config file: %w", err)
	}
	defer file.Close()

	cfg := Default()
	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate rejects configurations that would fail at dispatch time.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Retries < 1 {
		return fmt.Errorf("retries must be at least 1, got %d", c.Retries)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.QPS < 0 {
		return fmt.Errorf("qps must not be negative, got %d", c.QPS)
	}
	if _, err := grid.ParseAction(c.Action); err != nil {
		return err
	}
	return nil
}
