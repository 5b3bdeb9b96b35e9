package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/greenstream/internal/i18n"
	"github.com/rshade/greenstream/internal/logging"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
	assert.Equal(t, "fr", cfg.Session.Language)
	assert.Equal(t, "producer", cfg.Session.Role)
	assert.Empty(t, cfg.Session.Assumptions)
	assert.Equal(t, i18n.French, cfg.Lang())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"markdown ok", func(c *Config) { c.Output.DefaultFormat = FormatMarkdown }, ""},
		{"english ok", func(c *Config) { c.Session.Language = "en-US" }, ""},
		{"empty role ok", func(c *Config) { c.Session.Role = "" }, ""},
		{"unknown format", func(c *Config) { c.Output.DefaultFormat = "xml" }, "output.default_format"},
		{"negative precision", func(c *Config) { c.Output.Precision = -1 }, "output.precision"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "logfmt" }, "logging.format"},
		{"unknown language", func(c *Config) { c.Session.Language = "de" }, "session.language"},
		{"unknown role", func(c *Config) { c.Session.Role = "viewer" }, "session.role"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvLogLevel:    "debug",
		EnvLogFormat:   "json",
		EnvLanguage:    "en",
		EnvAssumptions: "/tmp/a.yaml",
	}
	cfg := Default()
	cfg.ApplyEnv(func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	})

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, i18n.English, cfg.Lang())
	assert.Equal(t, "/tmp/a.yaml", cfg.Session.Assumptions)
}

func TestNew_ReadsConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvLanguage, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvLogFormat, "")
	t.Setenv(EnvAssumptions, "")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
output:
  default_format: markdown
  precision: 3
session:
  language: en
  role: consumer
`), 0600))

	cfg := New()
	assert.Equal(t, FormatMarkdown, cfg.Output.DefaultFormat)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "consumer", cfg.Session.Role)
	assert.Equal(t, "info", cfg.Logging.Level, "untouched section keeps defaults")
}

func TestNew_BrokenFileFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	t.Setenv(EnvLanguage, "")
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("output: [\n"), 0600))

	cfg := New()
	assert.Equal(t, FormatTable, cfg.Output.DefaultFormat)
}

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Same(t, cfg, GetGlobalConfig())

	cfg.Output.DefaultFormat = FormatJSON
	cfg.Output.Precision = 4
	cfg.Session.Assumptions = "a.yaml"
	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())
	assert.Equal(t, 4, GetOutputPrecision())
	assert.Equal(t, "a.yaml", GetAssumptionsPath())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestConfigDirs(t *testing.T) {
	home := filepath.Join(t.TempDir(), "gs")
	t.Setenv(EnvHome, home)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	dir, err := GetConfigDir()
	require.NoError(t, err)
	assert.Equal(t, home, dir)

	path, err := ConfigFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), path)

	require.NoError(t, EnsureConfigDir())
	assert.DirExists(t, home)

	GetGlobalConfig().Logging.File = filepath.Join(home, "logs", "g.log")
	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Join(home, "logs"))
}

func TestToLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "warn", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)
	assert.Equal(t, "warn", got.Level)

	lc.File = "/tmp/g.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/tmp/g.log", got.File)
}

func TestGlobalLogger(t *testing.T) {
	InitLogger("warn")
	assert.Equal(t, "warn", GetLogger().GetLevel().String())
	InitLogger("info")
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Session.Language = "en"
	require.NoError(t, cfg.Save(path))

	loaded := Default()
	require.NoError(t, ShallowMergeYAML(loaded, path))
	assert.Equal(t, cfg, loaded)
}
