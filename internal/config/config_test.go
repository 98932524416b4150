package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "./notedeck.db", cfg.Database.Path)
	assert.NotEmpty(t, cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout.Duration())
	assert.Equal(t, "en", cfg.Speech.Language)
	assert.Equal(t, 30*time.Second, cfg.Speech.Timeout.Duration())
}

func TestLoadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notedeck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
database:
  path: /var/lib/notedeck/notes.db
ai:
  timeout: 5s
speech:
  language: de
`), 0o644))

	cfg, loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, path, loaded)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "/var/lib/notedeck/notes.db", cfg.Database.Path)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout.Duration())
	assert.Equal(t, "de", cfg.Speech.Language)

	// Unset fields fall back to defaults.
	assert.NotEmpty(t, cfg.AI.Model)
	assert.Equal(t, 30*time.Second, cfg.Speech.Timeout.Duration())
}

func TestLoadFromPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))

	_, _, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestFindConfigPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	t.Setenv("NOTEDECK_CONFIG", path)

	assert.Equal(t, path, FindConfigPath())
}
