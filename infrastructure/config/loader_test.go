package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	infraconfig "github.com/jonesrussell/north-cloud/content-creator/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleConfig struct {
	Name    string        `yaml:"name"`
	APIKey  string        `env:"SAMPLE_API_KEY"  yaml:"api_key"`
	Timeout time.Duration `env:"SAMPLE_TIMEOUT"  yaml:"timeout"`
	Debug   bool          `env:"SAMPLE_DEBUG"    yaml:"debug"`
	Tags    []string      `env:"SAMPLE_TAGS"     yaml:"tags"`
	Nested  struct {
		Port int `env:"SAMPLE_PORT" yaml:"port"`
	} `yaml:"nested"`
}

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_YAMLThenEnv(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SAMPLE_API_KEY", "from-env")
	t.Setenv("SAMPLE_TIMEOUT", "45s")
	t.Setenv("SAMPLE_DEBUG", "yes")
	t.Setenv("SAMPLE_TAGS", "a, b ,c")
	t.Setenv("SAMPLE_PORT", "9090")

	path := writeFile(t, "name: sample\napi_key: from-file\ntimeout: 10s\nnested:\n  port: 8080\n")

	cfg, err := infraconfig.Load[sampleConfig](path)
	require.NoError(t, err)

	assert.Equal(t, "sample", cfg.Name)
	assert.Equal(t, "from-env", cfg.APIKey)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
	assert.Equal(t, 9090, cfg.Nested.Port)
}

func TestLoad_MissingFileUsesEnvOnly(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("SAMPLE_API_KEY", "env-only")

	cfg, err := infraconfig.Load[sampleConfig](filepath.Join(t.TempDir(), "nope.yml"))
	require.NoError(t, err)
	assert.Equal(t, "env-only", cfg.APIKey)
	assert.Empty(t, cfg.Name)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	path := writeFile(t, "name: [unterminated\n")
	_, err := infraconfig.Load[sampleConfig](path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoadWithDefaults_EnvBeatsDefaults(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("SAMPLE_PORT=7000\n"), 0o600))
	t.Setenv("ENV_FILE", envFile)
	t.Setenv("SAMPLE_PORT", "")
	require.NoError(t, os.Unsetenv("SAMPLE_PORT"))

	cfg, err := infraconfig.LoadWithDefaults[sampleConfig](writeFile(t, "name: x\n"), func(c *sampleConfig) {
		if c.Nested.Port == 0 {
			c.Nested.Port = 8080
		}
		c.Name = "defaulted"
	})
	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Nested.Port)
	assert.Equal(t, "defaulted", cfg.Name)
}

func TestGetConfigPath(t *testing.T) {
	t.Setenv(infraconfig.ConfigPathEnv, "")
	assert.Equal(t, "config.yml", infraconfig.GetConfigPath("config.yml"))

	t.Setenv(infraconfig.ConfigPathEnv, "/etc/content-creator.yml")
	assert.Equal(t, "/etc/content-creator.yml", infraconfig.GetConfigPath("config.yml"))
}

func TestValidators(t *testing.T) {
	t.Parallel()

	require.NoError(t, infraconfig.ValidatePort("p", 8080))
	require.EqualError(t, infraconfig.ValidatePort("service.port", 0), "service.port: must be between 1 and 65535")
	require.NoError(t, infraconfig.ValidateURL("u", "https://api.openai.com/v1"))
	require.Error(t, infraconfig.ValidateURL("u", "api.openai.com"))
	require.NoError(t, infraconfig.ValidateOneOf("p", "openai", "openai", "anthropic"))
	require.EqualError(t, infraconfig.ValidateOneOf("provider.name", "x", "openai", "anthropic"),
		"provider.name: must be one of: openai, anthropic")
	require.EqualError(t, infraconfig.ValidateRequired("provider.api_key", "  "), "provider.api_key: is required")
}
