package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/timecard/internal/config"
)

func TestLoadWritesTemplateOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.True(t, cfg.ShowBanner())
	assert.False(t, cfg.UseColor())

	_, err = os.Stat(path)
	require.NoError(t, err, "expected template to be written")

	// The template itself must load cleanly.
	again, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "text", again.Format)
	assert.True(t, again.ShowBanner())
	assert.False(t, again.UseColor())
}

func TestLoadWithComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  // machine output by default
  "format": "json", /* trailing */
  "banner": false,
  "color": true,
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.False(t, cfg.ShowBanner())
	assert.True(t, cfg.UseColor())
}

func TestLoadPartialFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"color": true}`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.True(t, cfg.ShowBanner())
	assert.True(t, cfg.UseColor())
}

func TestLoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{bad json"), 0o600))

	cfg, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
	assert.Equal(t, config.DefaultFormat, cfg.Format)
}

func TestLoadWithoutHomeUsesDefaults(t *testing.T) {
	t.Setenv("HOME", "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFormat, cfg.Format)
	assert.True(t, cfg.ShowBanner())
	assert.False(t, cfg.UseColor())
}
