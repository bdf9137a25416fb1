package common

import (
	"os"
	"path/filepath"
)

const (
	AppName   = "vitelex"
	configEnv = "VITELEX_CONFIG"
)

// DefaultConfigPath returns the settings file used when no --config flag is
// given: $VITELEX_CONFIG, then <user config dir>/vitelex/config.ini.
func DefaultConfigPath() string {
	if env := os.Getenv(configEnv); env != "" {
		return env
	}
	if configDir, err := os.UserConfigDir(); err == nil && configDir != "" {
		return filepath.Join(configDir, AppName, "config.ini")
	}
	return filepath.Join(os.TempDir(), AppName, "config.ini")
}
