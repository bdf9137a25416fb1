package types

import (
	"fmt"
	"strings"
)

type InputMode int

const (
	ModeVietnamese InputMode = iota
	ModeLatin
)

func (m InputMode) String() string {
	switch m {
	case ModeVietnamese:
		return "vietnamese"
	case ModeLatin:
		return "latin"
	default:
		return "unknown"
	}
}

// ModeFor maps the persisted enabled flag to a mode.
func ModeFor(enabled bool) InputMode {
	if enabled {
		return ModeVietnamese
	}
	return ModeLatin
}

func ParseMode(name string) (InputMode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "vietnamese", "vi", "telex":
		return ModeVietnamese, nil
	case "latin", "english", "en":
		return ModeLatin, nil
	default:
		return 0, fmt.Errorf("unknown input mode %q", name)
	}
}
