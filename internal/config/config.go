// Package config loads and persists the vitelex settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ini "gopkg.in/ini.v1"

	"vitelex/internal/logging"
)

type Config struct {
	Enabled   bool
	Hotkey    string
	Notify    bool
	LogLevel  string
	LogFormat string
	LogFile   string
}

const (
	defaultHotkey    = "ctrl+space"
	defaultLogLevel  = "warn"
	defaultLogFormat = "text"
)

// ConfigError reports a setting that is present but unusable.
type ConfigError struct {
	msg string
}

func (e ConfigError) Error() string { return e.msg }

func Default() Config {
	return Config{
		Enabled:   true,
		Hotkey:    defaultHotkey,
		Notify:    true,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	}
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return cfg, fmt.Errorf("config: %s is a directory", path)
	}

	file, err := ini.Load(filepath.Clean(path))
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	telex := file.Section("telex")
	cfg.Enabled = telex.Key("enabled").MustBool(cfg.Enabled)
	cfg.Hotkey = strings.TrimSpace(telex.Key("hotkey").MustString(cfg.Hotkey))
	cfg.Notify = file.Section("notify").Key("enabled").MustBool(cfg.Notify)

	log := file.Section("log")
	cfg.LogLevel = log.Key("level").MustString(cfg.LogLevel)
	cfg.LogFormat = log.Key("format").MustString(cfg.LogFormat)
	cfg.LogFile = log.Key("file").String()

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Validate checks the fields this package owns. Hotkey syntax is checked by
// the keys package when the binary binds it.
func (c Config) Validate() error {
	if c.Hotkey == "" {
		return ConfigError{msg: "config: telex.hotkey is empty"}
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return ConfigError{msg: fmt.Sprintf("config: log.level: %v", err)}
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return ConfigError{msg: fmt.Sprintf("config: log.format: %v", err)}
	}
	return nil
}

// Save writes cfg to path, creating the parent directory.
func Save(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config: no path to save to")
	}
	file := ini.Empty()
	telex := file.Section("telex")
	telex.Key("enabled").SetValue(fmt.Sprint(cfg.Enabled))
	telex.Key("hotkey").SetValue(cfg.Hotkey)
	file.Section("notify").Key("enabled").SetValue(fmt.Sprint(cfg.Notify))
	log := file.Section("log")
	log.Key("level").SetValue(cfg.LogLevel)
	log.Key("format").SetValue(cfg.LogFormat)
	log.Key("file").SetValue(cfg.LogFile)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SetEnabled rewrites only telex.enabled, keeping the rest of the file
// (including comments) as the user left it.
func SetEnabled(path string, enabled bool) error {
	file, err := ini.LooseLoad(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	file.Section("telex").Key("enabled").SetValue(fmt.Sprint(enabled))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
