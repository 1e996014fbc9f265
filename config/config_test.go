package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	// Test with default values (without config file)
	config, err := newConfig("nonexistent.yaml")
	require.NoError(t, err)
	assert.NotNil(t, config)

	// Test default values
	assert.Equal(t, "weather-api", config.AppName)
	assert.Equal(t, "1.0.0", config.AppVersion)
	assert.Equal(t, "8080", config.Port)
	assert.Equal(t, "weather.db", config.DatabasePath)
	assert.Equal(t, 24*time.Hour, config.TokenTTL)

	// Without a config file the rate limiter stays disabled.
	assert.Zero(t, config.Provider.RequestsPerSecond)

	// Without environment the provider key stays empty; the client
	// constructor is the one that fails on it.
	assert.Empty(t, config.OpenWeatherAPIKey)
}

func TestConfigWithEnvironmentVariables(t *testing.T) {
	os.Setenv("APP_NAME", "test-app")
	os.Setenv("PORT", "9090")
	os.Setenv("OPENWEATHERMAP_API_KEY", "test-key")
	os.Setenv("TOKEN_TTL", "1h")

	defer func() {
		os.Unsetenv("APP_NAME")
		os.Unsetenv("PORT")
		os.Unsetenv("OPENWEATHERMAP_API_KEY")
		os.Unsetenv("TOKEN_TTL")
	}()

	config, err := newConfig("nonexistent.yaml")
	require.NoError(t, err)

	assert.Equal(t, "test-app", config.AppName)
	assert.Equal(t, "9090", config.Port)
	assert.Equal(t, "test-key", config.OpenWeatherAPIKey)
	assert.Equal(t, time.Hour, config.TokenTTL)
}

func TestConfigFromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
provider:
  requests_per_second: 2
  burst: 10
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	config, err := newConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2.0, config.Provider.RequestsPerSecond)
	assert.Equal(t, 10, config.Provider.Burst)
}

func TestConfigInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("provider: [broken"), 0o644))

	_, err := newConfig(path)
	assert.Error(t, err)
}
