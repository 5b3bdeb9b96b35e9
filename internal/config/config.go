// Package config holds greenstream's application configuration: output
// defaults, logging, and the session defaults (language, role, assumptions
// file) used by the commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/greenstream/internal/engine"
	"github.com/rshade/greenstream/internal/i18n"
	"github.com/rshade/greenstream/internal/logging"
)

// Environment variables read by ApplyEnv.
const (
	EnvHome        = "GREENSTREAM_HOME"
	EnvLogLevel    = "GREENSTREAM_LOG_LEVEL"
	EnvLogFormat   = "GREENSTREAM_LOG_FORMAT"
	EnvLanguage    = "GREENSTREAM_LANG"
	EnvAssumptions = "GREENSTREAM_ASSUMPTIONS"
)

// Output formats.
const (
	FormatTable    = "table"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

const configFileName = "config.yaml"

// Config is the application configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
	Session SessionConfig `yaml:"session"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Precision     int    `yaml:"precision"`
}

// LoggingConfig controls the logger built for each command.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// SessionConfig holds the defaults of a computation session.
type SessionConfig struct {
	Language    string `yaml:"language"`
	Role        string `yaml:"role"`
	Assumptions string `yaml:"assumptions"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: FormatTable,
			Precision:     2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatConsole,
		},
		Session: SessionConfig{
			Language: string(i18n.Default),
			Role:     string(engine.RoleProducer),
		},
	}
}

// New returns the default configuration merged with the user's config file,
// when present, and the environment overrides. A broken config file is
// logged and ignored.
func New() *Config {
	cfg := Default()

	path, err := ConfigFilePath()
	if err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				logger := GetLogger()
				logger.Warn().
					Str("component", "config").
					Err(mergeErr).
					Str("path", path).
					Msg("failed to load config file, using defaults")
				cfg = Default()
			}
		}
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg
}

// ApplyEnv overrides fields from the environment.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookup(EnvLanguage); ok && v != "" {
		c.Session.Language = v
	}
	if v, ok := lookup(EnvAssumptions); ok && v != "" {
		c.Session.Assumptions = v
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error

	switch c.Output.DefaultFormat {
	case FormatTable, FormatJSON, FormatMarkdown:
	default:
		errs = append(errs, fmt.Errorf("output.default_format: unknown format %q", c.Output.DefaultFormat))
	}
	if c.Output.Precision < 0 {
		errs = append(errs, fmt.Errorf("output.precision: must be >= 0, got %d", c.Output.Precision))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("logging.format: unknown format %q", c.Logging.Format))
	}

	if _, err := i18n.ParseLang(c.Session.Language); err != nil {
		errs = append(errs, fmt.Errorf("session.language: %w", err))
	}
	if c.Session.Role != "" && !engine.IsValidRole(c.Session.Role) {
		errs = append(errs, fmt.Errorf("session.role: unknown role %q", c.Session.Role))
	}

	return errors.Join(errs...)
}

// Lang returns the configured language, or the default when invalid.
func (c *Config) Lang() i18n.Lang {
	l, err := i18n.ParseLang(c.Session.Language)
	if err != nil {
		return i18n.Default
	}
	return l
}

// ConfigFilePath returns the path of the user's config file.
func ConfigFilePath() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Save writes c as YAML to path, creating its directory.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
