package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitelex/internal/logging"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsDirectory(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
}

func TestLoadReadsSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeFile(t, path, `; vitelex
[telex]
enabled = false
hotkey  = ctrl+t

[notify]
enabled = no

[log]
level  = debug
format = json
file   = /tmp/vitelex.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Enabled:   false,
		Hotkey:    "ctrl+t",
		Notify:    false,
		LogLevel:  "debug",
		LogFormat: "json",
		LogFile:   "/tmp/vitelex.log",
	}, cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeFile(t, path, "[telex]\nenabled = false\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.Enabled = false
	assert.Equal(t, want, cfg)
}

func TestLoadInvalidLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeFile(t, path, "[log]\nlevel = loud\n")
	cfg, err := Load(path)
	var cfgErr ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Error(), "log.level")
	assert.Equal(t, Default(), cfg)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.ini")
	cfg := Default()
	cfg.Enabled = false
	cfg.Hotkey = "ctrl+g"
	cfg.LogFormat = "json"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSetEnabledKeepsOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeFile(t, path, "[telex]\nenabled = true\nhotkey = ctrl+t\n")
	require.NoError(t, SetEnabled(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, "ctrl+t", cfg.Hotkey)
}

func TestSetEnabledCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vitelex", "config.ini")
	require.NoError(t, SetEnabled(path, false))
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Enabled)
}

func TestWatchReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	writeFile(t, path, "[telex]\nenabled = true\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Config, 4)
	require.NoError(t, Watch(ctx, path, logging.Discard(), func(cfg Config) {
		changes <- cfg
	}))

	writeFile(t, path, "[telex]\nenabled = false\n")

	select {
	case cfg := <-changes:
		assert.False(t, cfg.Enabled)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after writing the config file")
	}
}
