package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "veil.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 200, cfg.Overlay.AnimationMs)
	assert.Equal(t, 4000, cfg.Toast.DurationMs)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "toast:\n  durationMs: 2500\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2500, cfg.Toast.DurationMs)
	assert.Equal(t, 200, cfg.Overlay.AnimationMs, "unset fields keep defaults")
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, "logLevel: debug\noverlay:\n  animationMs: 150\ntoast:\n  durationMs: 0\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 150, cfg.Overlay.AnimationMs)
	assert.Equal(t, 0, cfg.Toast.DurationMs)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "toast: [not a mapping")

	cfg, err := Load(path)

	assert.Error(t, err)
	assert.Equal(t, Default(), cfg, "malformed files fall back to defaults")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad log level", "logLevel: loud\n"},
		{"negative duration", "toast:\n  durationMs: -1\n"},
		{"animation too long", "overlay:\n  animationMs: 60000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)

			cfg, err := Load(path)

			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}
