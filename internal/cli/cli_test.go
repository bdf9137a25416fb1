package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	opts, err := Parse([]string{"vitelex"})
	require.NoError(t, err)
	assert.Equal(t, Options{}, opts)
}

func TestParseValues(t *testing.T) {
	opts, err := Parse([]string{
		"vitelex",
		"--config", "/tmp/v.ini",
		"--hotkey=ctrl+t",
		"--mode", "latin",
		"--no-notify",
		"--log-level=debug",
		"--log-format", "json",
		"--log-file=/tmp/v.log",
	})
	require.NoError(t, err)
	assert.Equal(t, Options{
		ConfigPath: "/tmp/v.ini",
		Hotkey:     "ctrl+t",
		Mode:       "latin",
		NoNotify:   true,
		LogLevel:   "debug",
		LogFormat:  "json",
		LogFile:    "/tmp/v.log",
	}, opts)
}

func TestParseHelp(t *testing.T) {
	opts, err := Parse([]string{"vitelex", "-h"})
	require.NoError(t, err)
	assert.True(t, opts.ShowHelp)
	assert.True(t, strings.HasPrefix(Usage(), "vitelex"))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]string{"vitelex", "--config"})
	require.ErrorContains(t, err, "requires a value")

	_, err = Parse([]string{"vitelex", "--bogus"})
	require.ErrorContains(t, err, "unknown option")

	_, err = Parse([]string{"vitelex", "--modex", "latin"})
	require.ErrorContains(t, err, "unknown option")
}
