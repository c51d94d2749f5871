package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 64, cfg.GridSize)
	assert.Equal(t, 255, cfg.MaxHeight)
	assert.Equal(t, 12, cfg.ViewDistance)
	assert.Equal(t, 256, cfg.ViewportWidth)
	assert.Equal(t, 192, cfg.ViewportHeight)
	assert.Equal(t, 96, cfg.Horizon)
	assert.Equal(t, int64(1337), cfg.Seed)
	assert.True(t, cfg.FractalRelief)
	assert.Equal(t, 1024, cfg.SpaceSize())
}

func TestLoadWithConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	body := `{
		"gridSize": 128,
		"viewDistance": 20,
		"seed": 42,
		"skyColor": "#000000",
		"fractalRelief": false
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ridgerun.json"), []byte(body), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.GridSize)
	assert.Equal(t, 20, cfg.ViewDistance)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, "#000000", cfg.SkyColor)
	assert.False(t, cfg.FractalRelief)
	// Unset keys keep their defaults.
	assert.Equal(t, 255, cfg.MaxHeight)
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ridgerun.json"), []byte(`{"gridSize": 100}`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power of two")
}

func TestValidate(t *testing.T) {
	t.Cleanup(viper.Reset)
	base, err := Load(t.TempDir())
	require.NoError(t, err)

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"non-power-of-two grid", func(c *Config) { c.GridSize = 96 }},
		{"view distance past wrap", func(c *Config) { c.ViewDistance = 32 }},
		{"view distance too short", func(c *Config) { c.ViewDistance = 1 }},
		{"max height overflows a byte", func(c *Config) { c.MaxHeight = 300 }},
		{"empty viewport", func(c *Config) { c.ViewportWidth = 0 }},
		{"horizon off viewport", func(c *Config) { c.Horizon = 500 }},
		{"zero tps", func(c *Config) { c.TPS = 0 }},
		{"bad color", func(c *Config) { c.EdgeColor = "red" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.NoError(t, base.Validate())
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x1a), c.R)
	assert.Equal(t, uint8(0x2b), c.G)
	assert.Equal(t, uint8(0x3c), c.B)
	assert.Equal(t, uint8(255), c.A)

	_, err = ParseColor("nope")
	assert.Error(t, err)
}
