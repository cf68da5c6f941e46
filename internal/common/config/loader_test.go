package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: test-assistant
  environment: test
server:
  host: 127.0.0.1
  port: 9090
engine:
  default_city: Pune
  volume_step: 3
apis:
  weather:
    cache_ttl: 60
logging:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-assistant", cfg.App.Name)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "Pune", cfg.Engine.DefaultCity)
	assert.Equal(t, 3, cfg.Engine.VolumeStep)
	assert.Equal(t, 60, cfg.APIs.Weather.CacheTTL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromFile_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
app:
  name: defaults-test
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "Hyderabad", cfg.Engine.DefaultCity)
	assert.Equal(t, 300, cfg.Engine.AIAnswerMaxRunes)
	assert.Equal(t, 2, cfg.Engine.VolumeStep)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.APIs.GenAI.BaseURL)
	assert.Equal(t, "gemini-pro", cfg.APIs.GenAI.Model)
	assert.Equal(t, 60000, cfg.APIs.GenAI.Timeout)
	assert.Equal(t, "https://api.openweathermap.org", cfg.APIs.Weather.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

// Credentials left empty in the file are filled from the environment; they
// are never baked into the config on disk.
func TestLoadFromFile_CredentialsFromEnv(t *testing.T) {
	t.Setenv("GENAI_API_KEY", "genai-secret")
	t.Setenv("WEATHER_API_KEY", "weather-secret")

	path := writeConfigFile(t, `
app:
  name: env-test
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "genai-secret", cfg.APIs.GenAI.APIKey)
	assert.Equal(t, "weather-secret", cfg.APIs.Weather.APIKey)
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile_InvalidPort(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 99999
`)

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 60*time.Second, GetDuration(60000))
	assert.Equal(t, time.Duration(0), GetDuration(0))
}
