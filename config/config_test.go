package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CONTENT_API_BASE_URL", "CONTENT_API_ORIGIN", "CONTENT_API_KEY", "ADMIN_API_KEY", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoadValidConfig(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	content := `
logging:
  level: debug
server:
  port: "9090"
  allowed_origins:
    - https://example.com
feed:
  cache_ttl_seconds: 60
content_api:
  base_url: https://content.example.com/api
  table: FEED
  origin: https://example.com
  timeout_seconds: 3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(content), 0644))
	t.Setenv("CONTENT_API_KEY", "secret")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.Logging.Level)
	assert.Equal(t, "9090", c.Server.Port)
	assert.Equal(t, []string{"https://example.com"}, c.Server.AllowedOrigins)
	assert.Equal(t, time.Minute, c.Feed.CacheTTL())
	assert.Equal(t, "https://content.example.com/api", c.ContentAPI.BaseURL)
	assert.Equal(t, "FEED", c.ContentAPI.Table)
	assert.Equal(t, 3*time.Second, c.ContentAPI.Timeout())
	assert.Equal(t, "secret", c.ContentAPI.APIKey)
	assert.True(t, c.ContentAPI.Configured())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "8080", c.Server.Port)
	assert.Equal(t, 5*time.Minute, c.Feed.CacheTTL())
	assert.Equal(t, "THEFEED", c.ContentAPI.Table)
	assert.Equal(t, 10*time.Second, c.ContentAPI.Timeout())
	assert.False(t, c.ContentAPI.Configured())
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte("content_api:\n  base_url: https://yaml.example.com\n"), 0644))

	t.Setenv("CONTENT_API_BASE_URL", "https://env.example.com")
	t.Setenv("ADMIN_API_KEY", "admin")
	t.Setenv("LOG_LEVEL", "warn")

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", c.ContentAPI.BaseURL)
	assert.Equal(t, "admin", c.Server.AdminAPIKey)
	assert.Equal(t, "warn", c.Logging.Level)
	assert.False(t, c.ContentAPI.Configured(), "api key is still missing")
}

func TestLoadInvalidConfig(t *testing.T) {
	clearEnv(t)

	testCases := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "logging: [unclosed"},
		{name: "unknown log level", content: "logging:\n  level: loud\n"},
		{name: "empty origin", content: "server:\n  allowed_origins:\n    - \"\"\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, CONFIG_FILE), []byte(testCase.content), 0644))

			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}
