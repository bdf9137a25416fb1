package emitter

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Terminal echoes composed text to a raw-mode terminal. Erasing moves the
// cursor back, blanks the cell and moves back again.
type Terminal struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closed bool
}

func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{w: bufio.NewWriter(w)}
}

func (t *Terminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	return t.w.Flush()
}

func (t *Terminal) SendBackspace(count int) error {
	if count <= 0 {
		return nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return fmt.Errorf("emitter: terminal closed")
	}
	if _, err := t.w.WriteString(strings.Repeat("\b \b", count)); err != nil {
		return err
	}
	return t.w.Flush()
}

func (t *Terminal) SendText(text string) error {
	if text == "" {
		return nil
	}
	if !utf8.ValidString(text) {
		return fmt.Errorf("emitter: invalid utf-8 sequence")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return fmt.Errorf("emitter: terminal closed")
	}
	// Raw mode disables output post-processing, so a bare newline would
	// not return the cursor to the first column.
	if _, err := t.w.WriteString(strings.ReplaceAll(text, "\n", "\r\n")); err != nil {
		return err
	}
	return t.w.Flush()
}
