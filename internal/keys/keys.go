// Package keys maps raw terminal key events to the actions a typing host
// understands.
package keys

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/eiannone/keyboard"
)

type Action int

const (
	ActionIgnore Action = iota
	ActionChar
	ActionBoundary
	ActionBackspace
	ActionReset
	ActionToggle
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionChar:
		return "char"
	case ActionBoundary:
		return "boundary"
	case ActionBackspace:
		return "backspace"
	case ActionReset:
		return "reset"
	case ActionToggle:
		return "toggle"
	case ActionQuit:
		return "quit"
	default:
		return "ignore"
	}
}

// Key is a logical keystroke. Rune is set for ActionChar and for
// boundaries that print something.
type Key struct {
	Action Action
	Rune   rune
}

// Classifier turns keyboard events into Keys for a given toggle hotkey.
type Classifier struct {
	hotkey keyboard.Key
}

func NewClassifier(hotkey keyboard.Key) Classifier {
	return Classifier{hotkey: hotkey}
}

// Classify maps one event. Printable runes are characters, space, enter
// and tab end a word, and every other non-printable key resets the word.
func (c Classifier) Classify(ev keyboard.KeyEvent) Key {
	if ev.Key == 0 && ev.Rune != 0 {
		if ev.Rune == ' ' {
			return Key{Action: ActionBoundary, Rune: ' '}
		}
		if unicode.IsPrint(ev.Rune) {
			return Key{Action: ActionChar, Rune: ev.Rune}
		}
		return Key{Action: ActionReset}
	}

	switch ev.Key {
	case c.hotkey:
		return Key{Action: ActionToggle}
	case keyboard.KeyCtrlC:
		return Key{Action: ActionQuit}
	case keyboard.KeySpace:
		return Key{Action: ActionBoundary, Rune: ' '}
	case keyboard.KeyEnter:
		return Key{Action: ActionBoundary, Rune: '\n'}
	case keyboard.KeyTab:
		return Key{Action: ActionBoundary, Rune: '\t'}
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return Key{Action: ActionBackspace}
	default:
		return Key{Action: ActionReset}
	}
}

// reserved keys cannot be used as the toggle hotkey.
var reserved = map[keyboard.Key]string{
	keyboard.KeyCtrlC:      "ctrl+c",
	keyboard.KeyBackspace:  "ctrl+h",
	keyboard.KeyTab:        "ctrl+i",
	keyboard.KeyCtrlJ:      "ctrl+j",
	keyboard.KeyEnter:      "ctrl+m",
	keyboard.KeyBackspace2: "backspace",
}

// ParseHotkey accepts "ctrl+space" or "ctrl+<letter>", with "_" or "-"
// also allowed as the separator.
func ParseHotkey(name string) (keyboard.Key, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "+", "-", "+", " ", "").Replace(normalized)
	rest, ok := strings.CutPrefix(normalized, "ctrl+")
	if !ok {
		return 0, fmt.Errorf("keys: unsupported hotkey %q (want ctrl+space or ctrl+<letter>)", name)
	}
	var key keyboard.Key
	switch {
	case rest == "space":
		key = keyboard.KeyCtrlSpace
	case len(rest) == 1 && rest[0] >= 'a' && rest[0] <= 'z':
		key = keyboard.Key(rest[0]-'a') + keyboard.KeyCtrlA
	default:
		return 0, fmt.Errorf("keys: unsupported hotkey %q (want ctrl+space or ctrl+<letter>)", name)
	}
	if label, ok := reserved[key]; ok {
		return 0, fmt.Errorf("keys: %s is reserved and cannot toggle input", label)
	}
	return key, nil
}
