package providers

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
openrouter:
  base_url: https://openrouter.ai/api/v1
  model: anthropic/claude-sonnet-4
  timeout: 45s
  fallback_models:
    - openai/gpt-4o
    - openrouter/auto
  app_name: modelgw
  site_url: https://example.com
`), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	or := cfg.OpenRouter
	assert.Empty(t, or.APIKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", or.BaseURL)
	assert.Equal(t, "anthropic/claude-sonnet-4", or.Model)
	assert.Equal(t, 45*time.Second, or.Timeout.Std())
	assert.Equal(t, []string{"openai/gpt-4o", "openrouter/auto"}, or.FallbackModels)
	assert.Equal(t, "modelgw", or.AppName)
	assert.Equal(t, "https://example.com", or.SiteURL)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openrouter: ["), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad-duration.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openrouter:\n  timeout: soon\n"), 0o600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "invalid duration")
}
