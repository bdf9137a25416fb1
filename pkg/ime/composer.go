// Package ime replays Telex keystrokes into composed Vietnamese lines.
package ime

import "vitelex/internal/session"

// Composer holds one line of output. The tail of the line is the word the
// session is still composing, so edits only ever touch that tail.
type Composer struct {
	session *session.Session
	text    []rune
}

func NewComposer() *Composer {
	return &Composer{session: session.New(true), text: make([]rune, 0, 32)}
}

// SetEnabled turns Telex processing on or off. The current word ends.
func (c *Composer) SetEnabled(enabled bool) {
	c.session.SetEnabled(enabled)
}

func (c *Composer) Enabled() bool {
	return c.session.Enabled()
}

// TypeKey feeds one keystroke and reports whether a Telex rule fired.
func (c *Composer) TypeKey(key rune) bool {
	edit, changed := c.session.Type(key)
	c.apply(edit)
	return changed
}

// AppendLiteral ends the current word and appends r untouched.
func (c *Composer) AppendLiteral(r rune) {
	c.session.Reset()
	c.text = append(c.text, r)
}

func (c *Composer) Space() {
	c.AppendLiteral(' ')
}

func (c *Composer) Backspace() {
	c.session.Backspace()
	if len(c.text) > 0 {
		c.text = c.text[:len(c.text)-1]
	}
}

// Enter returns the finished line and starts a new one.
func (c *Composer) Enter() string {
	line := c.FlushText()
	c.text = make([]rune, 0, 32)
	return line
}

// FlushText ends the current word and returns the line so far.
func (c *Composer) FlushText() string {
	c.session.Reset()
	return string(c.text)
}

func (c *Composer) Reset() {
	c.session.Reset()
	c.text = c.text[:0]
}

func (c *Composer) Text() string {
	return string(c.text)
}

func (c *Composer) apply(edit session.Edit) {
	if edit.Erase > len(c.text) {
		edit.Erase = len(c.text)
	}
	c.text = append(c.text[:len(c.text)-edit.Erase], []rune(edit.Insert)...)
}

// Translate composes a line of raw keystrokes. Space and tab end words,
// backspace (BS or DEL) erases the previous character.
func Translate(line string) string {
	c := NewComposer()
	for _, r := range line {
		switch r {
		case ' ', '\t':
			c.AppendLiteral(r)
		case '\b', 0x7f:
			c.Backspace()
		default:
			c.TypeKey(r)
		}
	}
	return c.FlushText()
}
