package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OMNIKASSA_URL", "https://betalen.rabobank.nl/omnikassa-api-sandbox")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("OMNIKASSA_TIMEOUT_SECONDS")
	os.Unsetenv("PROXY_ENABLED")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 10, cfg.Omnikassa.TimeoutSeconds)
	assert.Equal(t, 10*time.Second, cfg.Omnikassa.Timeout())
	assert.False(t, cfg.Proxy.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OMNIKASSA_URL", "https://betalen.rabobank.nl/omnikassa-api")
	t.Setenv("OMNIKASSA_TIMEOUT_SECONDS", "3")
	t.Setenv("PROXY_ENABLED", "true")
	t.Setenv("PROXY_HOSTNAME", "proxy.internal")
	t.Setenv("PROXY_PORT", "3128")
	t.Setenv("PROXY_USERNAME", "user")
	t.Setenv("PROXY_PASSWORD", "secret")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "https://betalen.rabobank.nl/omnikassa-api", cfg.Omnikassa.URL)
	assert.Equal(t, 3*time.Second, cfg.Omnikassa.Timeout())

	settings := cfg.Proxy.Settings()
	assert.True(t, settings.HasProxy())
	assert.Equal(t, "proxy.internal", settings.Hostname)
	assert.Equal(t, 3128, settings.Port)
	assert.Equal(t, "user", settings.Username)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("OMNIKASSA_URL")
	os.Unsetenv("OMNIKASSA_TIMEOUT_SECONDS")

	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
OMNIKASSA_URL=https://staging.example.com
OMNIKASSA_TIMEOUT_SECONDS=5
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "https://staging.example.com", cfg.Omnikassa.URL)
	assert.Equal(t, 5*time.Second, cfg.Omnikassa.Timeout())
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("OMNIKASSA_URL")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: OMNIKASSA_URL")
}

// TestOmnikassaConfig_Timeout verifies the fallback for unusable timeouts.
func TestOmnikassaConfig_Timeout(t *testing.T) {
	assert.Equal(t, defaultOmnikassaTimeout, OmnikassaConfig{TimeoutSeconds: 0}.Timeout())
	assert.Equal(t, defaultOmnikassaTimeout, OmnikassaConfig{TimeoutSeconds: -4}.Timeout())
	assert.Equal(t, 30*time.Second, OmnikassaConfig{TimeoutSeconds: 30}.Timeout())
}
