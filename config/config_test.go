package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CANOPY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Alerts.MaxVisible)
	assert.Equal(t, 5*time.Second, cfg.Alerts.DefaultDuration)
	assert.True(t, cfg.Alerts.StickyErrors)
	assert.Equal(t, 40, cfg.UI.MaxAlertWidth)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CANOPY_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("CANOPY_ALERTS_MAX_VISIBLE", "3")
	t.Setenv("CANOPY_ALERTS_DEFAULT_DURATION", "10s")
	t.Setenv("CANOPY_ALERTS_STICKY_ERRORS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Alerts.MaxVisible)
	assert.Equal(t, 10*time.Second, cfg.Alerts.DefaultDuration)
	assert.False(t, cfg.Alerts.StickyErrors)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[alerts]\nmax_visible = 2\n\n[ui]\nmax_alert_width = 60\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("CANOPY_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Alerts.MaxVisible)
	assert.Equal(t, 60, cfg.UI.MaxAlertWidth)
	assert.Equal(t, 5*time.Second, cfg.Alerts.DefaultDuration, "Unset keys keep defaults")
}
