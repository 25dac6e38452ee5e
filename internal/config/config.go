// Package config loads ip6pool settings from an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/zlobste/ip6pool/internal/export"
	"github.com/zlobste/ip6pool/internal/logging"
)

// ErrInvalidConfig is returned for unreadable or inconsistent settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds settings shared by every command. Command line flags override
// values loaded from a file.
type Config struct {
	LogFile       string `yaml:"log_file"`
	Verbosity     int    `yaml:"verbosity"`
	DefaultPrefix string `yaml:"default_prefix"`
	Format        string `yaml:"format"`
	Output        string `yaml:"output"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogFile: logging.DefaultPath(),
		Format:  string(export.Text),
		Output:  "human",
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	defer f.Close()

	if err := Decode(f, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Decode reads YAML from r into cfg, rejecting unknown keys, and validates
// the result.
func Decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return cfg.Validate()
}

// Validate checks the enumerated fields.
func (c Config) Validate() error {
	var errs error
	if _, err := export.ParseFormat(c.Format); err != nil {
		errs = multierr.Append(errs, err)
	}
	switch c.Output {
	case "human", "json", "yaml":
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown output %q", c.Output))
	}
	return errs
}
