package app_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"containment/internal/app"
	"containment/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), app.ConfigFilename)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, "strategy: indexed\nparallel_cutoff: 512\nlog_level: debug\n")

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "indexed", cfg.Strategy)
	assert.Equal(t, 512, cfg.ParallelCutoff)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, app.DefaultConfig().MaxEntities, cfg.MaxEntities)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadConfig_Empty(t *testing.T) {
	cfg, err := app.LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = app.LoadConfig(writeConfig(t, "stratgey: linear\n"))
	assert.Error(t, err)

	_, err = app.LoadConfig(writeConfig(t, "strategy: random\n"))
	assert.Error(t, err)

	_, err = app.LoadConfig(writeConfig(t, "parallel_cutoff: -1\n"))
	assert.Error(t, err)
}

func TestNewWire(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = t.TempDir()
	cfg.RemoteURL = "http://127.0.0.1:1"

	w, err := app.NewWire(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.NotNil(t, w.Reports)
	assert.NotNil(t, w.Remote)
	assert.NotNil(t, w.Runs)

	cfg = app.DefaultConfig()
	w, err = app.NewWire(cfg, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Nil(t, w.Reports)
	assert.Nil(t, w.Remote)

	_, err = w.Runs.Run(t.Context(), domain.Problem{}, domain.RunOptions{Save: true})
	assert.Error(t, err)

	cfg.LogFormat = "xml"
	_, err = app.NewWire(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}
