package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no stray .forumctl.yaml interferes.
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "https://community-forum-backend-ts.vercel.app/api", cfg.API.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.API.Timeout)
	assert.Equal(t, "http://127.0.0.1:4433", cfg.Identity.PublicURL)
	assert.True(t, cfg.Session.Watch)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.True(t, cfg.Output.Colors)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
api:
  base_url: http://localhost:3000/api
  timeout: 5s
logging:
  level: debug
  format: json
output:
  colors: false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Output.Colors)
	// Untouched sections keep their defaults.
	assert.Equal(t, "http://127.0.0.1:4433", cfg.Identity.PublicURL)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("FORUMCTL_API_BASE_URL", "http://127.0.0.1:9999/api")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api", cfg.API.BaseURL)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		yaml string
	}{
		{"bad url", "api:\n  base_url: not-a-url\n"},
		{"negative timeout", "api:\n  timeout: -1s\n"},
		{"bad log level", "logging:\n  level: chatty\n"},
		{"bad log format", "logging:\n  format: xml\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSessionFile(t *testing.T) {
	cfg := &Config{Session: SessionConfig{File: "/tmp/custom-session.json"}}
	path, err := cfg.SessionFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom-session.json", path)

	cfg = &Config{}
	path, err = cfg.SessionFile()
	require.NoError(t, err)
	assert.Contains(t, path, filepath.Join("forumctl", "session.json"))
}
