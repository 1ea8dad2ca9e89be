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
	for _, key := range []string{
		"PORT", "UI_LANGUAGE", "LOG_LEVEL", "DATA_DIR", "GEMINI_MODE",
		"GOOGLE_AI_API_KEY", "GEMINI_MODEL", "GOOGLE_CLOUD_PROJECT", "GOOGLE_CLOUD_LOCATION",
	} {
		t.Setenv(key, "")
	}
	// keep a developer's .env out of the test
	t.Chdir(t.TempDir())
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 30*time.Second, cfg.Breaker.OpenTimeout.Duration)
	assert.Equal(t, "batch", cfg.Menu.Strategy)
	assert.False(t, cfg.Gemini.Configured())
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[server]
port = 8080

[gemini]
model = "gemini-2.0-flash"

[rate_limit]
requests = 10
window = "30s"

[menu]
strategy = "per_line"
print_ttl = "15m"
`), 0600))

	t.Setenv("PORT", "9090")
	t.Setenv("GOOGLE_AI_API_KEY", "test-key")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 10, cfg.RateLimit.Requests)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window.Duration)
	assert.Equal(t, 15*time.Minute, cfg.Menu.PrintTTL.Duration)
	assert.Equal(t, "per_line", cfg.Menu.Strategy)
	assert.Equal(t, ModeAPIKey, cfg.Gemini.ResolvedGeminiMode())
	assert.True(t, cfg.Gemini.Configured())
}

func TestLoadConfig_Invalid(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[menu]\nstrategy = \"parallel\"\n"), 0600))

	_, err := LoadConfig(path)
	assert.ErrorContains(t, err, "unknown menu strategy")

	require.NoError(t, os.WriteFile(path, []byte("[breaker]\nopen_timeout = \"soon\"\n"), 0600))
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestResolvedGeminiMode(t *testing.T) {
	tests := []struct {
		name       string
		cfg        GeminiConfig
		mode       string
		configured bool
	}{
		{"nothing", GeminiConfig{Location: "us-central1"}, ModeAPIKey, false},
		{"api key", GeminiConfig{APIKey: "k"}, ModeAPIKey, true},
		{"project only", GeminiConfig{Project: "p", Location: "us-central1"}, ModeVertex, true},
		{"both prefers key", GeminiConfig{APIKey: "k", Project: "p"}, ModeAPIKey, true},
		{"explicit vertex", GeminiConfig{Mode: ModeVertex, APIKey: "k", Project: "p"}, ModeVertex, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.mode, tt.cfg.ResolvedGeminiMode())
			assert.Equal(t, tt.configured, tt.cfg.Configured())
		})
	}
}
