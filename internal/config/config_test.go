package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/search"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gridpath.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, 50, cfg.Rows)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, search.DFS, cfg.Algorithm)
	assert.Equal(t, 50*time.Millisecond, cfg.Delay)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Overrides(t *testing.T) {
	path := writeFile(t, `
rows      = 20
algorithm = "a*"
delay     = "2s"

[server]
addr    = "127.0.0.1:9000"
metrics = false
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 800, cfg.Width, "unset keys keep defaults")
	assert.Equal(t, search.AStar, cfg.Algorithm)
	assert.Equal(t, config.MaxDelay, cfg.Delay, "delay is clamped")
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.False(t, cfg.Server.Metrics)
}

func TestLoad_Errors(t *testing.T) {
	cases := map[string]struct {
		body string
		want error
	}{
		"zero rows":      {"rows = 0", config.ErrInvalidRows},
		"too many rows":  {"rows = 501", config.ErrInvalidRows},
		"negative width": {"width = -1", config.ErrInvalidWidth},
		"unknown key":    {"colour = \"red\"", config.ErrUnknownKey},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			assert.ErrorIs(t, err, tc.want)
		})
	}

	_, err := config.Load(writeFile(t, `algorithm = "dijkstra"`))
	assert.Error(t, err)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestClampDelay(t *testing.T) {
	assert.Equal(t, time.Duration(0), config.ClampDelay(-time.Second))
	assert.Equal(t, 120*time.Millisecond, config.ClampDelay(120*time.Millisecond))
	assert.Equal(t, config.MaxDelay, config.ClampDelay(time.Minute))
}
