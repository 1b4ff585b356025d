package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	c, err := FromEnv(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.NoError(t, c.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"SCANMAZE_MATRIX":        "8x8",
		"SCANMAZE_MAZE_WIDTH":    "21",
		"SCANMAZE_MAZE_HEIGHT":   "11",
		"SCANMAZE_SEED":          "42",
		"SCANMAZE_DECISION_MS":   "250",
		"SCANMAZE_EXIT_PAUSE_MS": "0",
		"SCANMAZE_BACKEND":       "Headless",
		"SCANMAZE_AUDIO":         "true",
		"SCANMAZE_GENERATOR":     "fixed",
	}))
	require.NoError(t, err)

	assert.Equal(t, "8x8", c.Matrix)
	assert.Equal(t, 21, c.MazeWidth)
	assert.Equal(t, 11, c.MazeHeight)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 250*time.Millisecond, c.DecisionDelay)
	assert.Zero(t, c.ExitPause)
	assert.Equal(t, BackendHeadless, c.Backend)
	assert.True(t, c.Audio)
	assert.Equal(t, GeneratorFixed, c.Generator)
	assert.NoError(t, c.Validate())
	assert.False(t, c.IsTerminalBackend())
}

func TestFromEnv_BadValues(t *testing.T) {
	c, err := FromEnv(envMap(map[string]string{
		"SCANMAZE_MAZE_WIDTH": "wide",
		"SCANMAZE_AUDIO":      "loud",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCANMAZE_MAZE_WIDTH")
	assert.Contains(t, err.Error(), "SCANMAZE_AUDIO")
	assert.Equal(t, 16, c.MazeWidth, "bad values keep the default")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"small maze", func(c *Config) { c.MazeWidth = 4 }},
		{"unknown matrix", func(c *Config) { c.Matrix = "32x32" }},
		{"zero decision", func(c *Config) { c.DecisionDelay = 0 }},
		{"zero turn step", func(c *Config) { c.TurnStep = 0 }},
		{"zero zoom step", func(c *Config) { c.ZoomStep = 0 }},
		{"zero depth", func(c *Config) { c.MaxDepth = 0 }},
		{"unknown backend", func(c *Config) { c.Backend = "vga" }},
		{"unknown generator", func(c *Config) { c.Generator = "prim" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, godotenv.Write(map[string]string{"SCANMAZE_MAX_DEPTH": "5"}, path))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		os.Chdir(wd)
		os.Unsetenv("SCANMAZE_MAX_DEPTH")
	})

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5, c.MaxDepth)
}
