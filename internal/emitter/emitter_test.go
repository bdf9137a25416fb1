package emitter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTerminalWritesEdits(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	require.NoError(t, term.SendText("lai"))
	require.NoError(t, term.SendBackspace(3))
	require.NoError(t, term.SendText("lại"))
	require.Equal(t, "lai\b \b\b \b\b \blại", buf.String())
}

func TestTerminalTranslatesNewline(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	require.NoError(t, term.SendText("a\n"))
	require.Equal(t, "a\r\n", buf.String())
}

func TestTerminalRejectsInvalidText(t *testing.T) {
	term := NewTerminal(&bytes.Buffer{})
	require.Error(t, term.SendText(string([]byte{0xff})))
}

func TestTerminalClosed(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)
	require.NoError(t, term.Close())
	require.NoError(t, term.Close())
	require.Error(t, term.SendText("a"))
	require.Error(t, term.SendBackspace(1))
	require.NoError(t, term.SendBackspace(0))
}
