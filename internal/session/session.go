// Package session owns the word typed since the last word boundary and
// turns each keystroke into the edit a host has to apply to its display.
package session

import "vitelex/internal/telex"

// Edit tells the host to erase Erase characters before the cursor and then
// insert Insert.
type Edit struct {
	Erase  int
	Insert string
}

// Empty reports whether the edit changes nothing on screen.
func (e Edit) Empty() bool {
	return e.Erase == 0 && e.Insert == ""
}

// Session is the per-keyboard state of a host. It is not safe for
// concurrent use; hosts feed it keystrokes in order.
type Session struct {
	word    []rune
	enabled bool
}

func New(enabled bool) *Session {
	return &Session{word: make([]rune, 0, 16), enabled: enabled}
}

// Type appends r to the current word. With Telex enabled and a rule
// matching, the whole displayed word is replaced; otherwise r is inserted
// as typed. The second result reports whether a rule fired.
func (s *Session) Type(r rune) (Edit, bool) {
	if !s.enabled {
		return Edit{Insert: string(r)}, false
	}
	shown := len(s.word)
	typed := append(s.word, r)
	replacement, ok := telex.Transform(string(typed))
	if !ok {
		s.word = typed
		return Edit{Insert: string(r)}, false
	}
	s.word = append(s.word[:0], []rune(replacement)...)
	return Edit{Erase: shown, Insert: replacement}, true
}

// Backspace drops the last rune of the word. The host still erases one
// character on screen; false means the word was already empty.
func (s *Session) Backspace() bool {
	if len(s.word) == 0 {
		return false
	}
	s.word = s.word[:len(s.word)-1]
	return true
}

// Reset ends the current word.
func (s *Session) Reset() {
	s.word = s.word[:0]
}

// SetEnabled switches Telex processing on or off and ends the current word.
func (s *Session) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.Reset()
}

// Toggle flips the enabled state and returns the new one.
func (s *Session) Toggle() bool {
	s.SetEnabled(!s.enabled)
	return s.enabled
}

func (s *Session) Enabled() bool {
	return s.enabled
}

// Word returns the word typed so far.
func (s *Session) Word() string {
	return string(s.word)
}

// Len is the number of characters the current word occupies on screen.
func (s *Session) Len() int {
	return len(s.word)
}
