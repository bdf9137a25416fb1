package session

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionTypeReplacesWord(t *testing.T) {
	s := New(true)

	edit, changed := s.Type('l')
	require.False(t, changed)
	require.Equal(t, Edit{Insert: "l"}, edit)

	s.Type('a')
	s.Type('i')
	edit, changed = s.Type('j')
	require.True(t, changed)
	require.Equal(t, Edit{Erase: 3, Insert: "lại"}, edit)
	require.Equal(t, "lại", s.Word())
	require.Equal(t, 3, s.Len())
}

func TestSessionFollowsTransformedBuffer(t *testing.T) {
	s := New(true)
	var screen []rune
	for _, r := range "ddoongf" {
		edit, _ := s.Type(r)
		screen = screen[:len(screen)-edit.Erase]
		screen = append(screen, []rune(edit.Insert)...)
	}
	require.Equal(t, "đồng", string(screen))
	require.Equal(t, "đồng", s.Word())
}

func TestSessionDisabledPassesThrough(t *testing.T) {
	s := New(false)
	for _, r := range "aa" {
		edit, changed := s.Type(r)
		require.False(t, changed)
		require.Equal(t, Edit{Insert: string(r)}, edit)
	}
	require.Equal(t, "", s.Word())
}

func TestSessionBackspace(t *testing.T) {
	s := New(true)
	require.False(t, s.Backspace())

	s.Type('t')
	s.Type('o')
	s.Type('o')
	require.Equal(t, "tô", s.Word())
	require.True(t, s.Backspace())
	require.Equal(t, "t", s.Word())

	edit, changed := s.Type('s')
	require.False(t, changed, "no vowel left to carry a tone")
	require.Equal(t, Edit{Insert: "s"}, edit)
}

func TestSessionToggleResetsWord(t *testing.T) {
	s := New(true)
	s.Type('a')
	require.False(t, s.Toggle())
	require.Equal(t, "", s.Word())
	require.False(t, s.Enabled())
	require.True(t, s.Toggle())
}

func TestSessionResetStartsNewWord(t *testing.T) {
	s := New(true)
	s.Type('a')
	s.Reset()
	edit, changed := s.Type('a')
	require.False(t, changed, "doubling must not cross a word boundary")
	require.Equal(t, Edit{Insert: "a"}, edit)
}

func TestEditEmpty(t *testing.T) {
	require.True(t, Edit{}.Empty())
	require.False(t, Edit{Erase: 1}.Empty())
}
