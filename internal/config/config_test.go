package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/astroshower/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astroshower.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
seed: 42
window:
  width: 800
  hero: true
term:
  fps: 15
bench:
  duration: 250ms
  viewport: 640x480
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height, "unset keys keep defaults")
	assert.True(t, cfg.Window.Hero)
	assert.Equal(t, 15, cfg.Term.FPS)
	assert.Equal(t, 250*time.Millisecond, cfg.Bench.Duration)
	assert.Equal(t, "640x480", cfg.Bench.Viewport)
	assert.Equal(t, 2.0, cfg.Bench.DPR)
}

func TestLoadFileWithoutDocument(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "comments only", body: "# nothing set yet\n# seed: 7\n"},
		{name: "blank lines", body: "\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.Load(writeConfig(t, tt.body))
			require.NoError(t, err)
			assert.Equal(t, config.DefaultConfig(), cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "unknown key", body: "windwo:\n  width: 3\n"},
		{name: "bad yaml", body: "window: [\n"},
		{name: "zero width", body: "window:\n  width: 0\n", invalid: true},
		{name: "negative fps", body: "term:\n  fps: -1\n", invalid: true},
		{name: "bad viewport", body: "bench:\n  viewport: wide\n", invalid: true},
		{name: "zero dpr", body: "bench:\n  dpr: 0\n", invalid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			_, err := config.Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), path)
			assert.Equal(t, tt.invalid, errors.Is(err, config.ErrInvalid))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseViewport(t *testing.T) {
	w, h, err := config.ParseViewport("1280x800")
	require.NoError(t, err)
	assert.Equal(t, 1280.0, w)
	assert.Equal(t, 800.0, h)

	w, h, err = config.ParseViewport(" 640.5X480 ")
	require.NoError(t, err)
	assert.Equal(t, 640.5, w)
	assert.Equal(t, 480.0, h)

	for _, bad := range []string{"", "1280", "x800", "1280x", "-1x5", "0x10", "axb"} {
		_, _, err := config.ParseViewport(bad)
		assert.ErrorIs(t, err, config.ErrInvalid, bad)
	}
}
