package cli

import (
	"fmt"
	"strings"
)

// Options holds the command line of the interactive host. Empty strings
// mean "use the settings file".
type Options struct {
	ShowHelp   bool
	ConfigPath string
	Hotkey     string
	Mode       string
	NoNotify   bool
	LogLevel   string
	LogFormat  string
	LogFile    string
}

func Parse(args []string) (Options, error) {
	var opts Options
	for i := 1; i < len(args); i++ {
		arg := args[i]
		var target *string
		switch {
		case arg == "--help" || arg == "-h":
			opts.ShowHelp = true
			continue
		case arg == "--no-notify":
			opts.NoNotify = true
			continue
		case matches(arg, "--config"):
			target = &opts.ConfigPath
		case matches(arg, "--hotkey"):
			target = &opts.Hotkey
		case matches(arg, "--mode"):
			target = &opts.Mode
		case matches(arg, "--log-level"):
			target = &opts.LogLevel
		case matches(arg, "--log-format"):
			target = &opts.LogFormat
		case matches(arg, "--log-file"):
			target = &opts.LogFile
		default:
			return Options{}, fmt.Errorf("unknown option: %s", arg)
		}
		value, next, err := extractValue(arg, i, args)
		if err != nil {
			return Options{}, err
		}
		*target = value
		i = next
	}
	return opts, nil
}

// matches accepts "--name" and "--name=value" but not "--name-other".
func matches(arg, name string) bool {
	return arg == name || strings.HasPrefix(arg, name+"=")
}

func extractValue(current string, index int, args []string) (string, int, error) {
	if eq := strings.IndexRune(current, '='); eq >= 0 {
		return current[eq+1:], index, nil
	}
	if index+1 >= len(args) {
		return "", index, fmt.Errorf("option %s requires a value", current)
	}
	return args[index+1], index + 1, nil
}

func Usage() string {
	return `vitelex - Vietnamese Telex typing in the terminal
Usage: vitelex [options]

Options:
  --config PATH           Settings file (default: $VITELEX_CONFIG or <config dir>/vitelex/config.ini)
  --hotkey NAME           Toggle hotkey, ctrl+space or ctrl+<letter> (default: ctrl+space)
  --mode NAME             Start in vietnamese or latin mode (default: from settings)
  --no-notify             Do not post desktop notifications on toggle
  --log-level LEVEL       debug, info, warn or error (default: warn)
  --log-format FORMAT     text or json (default: text)
  --log-file PATH         Append logs to PATH instead of stderr
  -h, --help              Show this help message

Keys:
  space, enter, tab       End the current word
  backspace               Erase one character
  ctrl+c                  Quit`
}
