package telex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveNucleus(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"ba", 1},
		{"lai", 1},
		{"loat", 2},
		{"hoa", 1},
		{"toan", 2},
		{"tôi", 1},
		{"người", 3},
		{"tuyên", 3},
		{"hoai", 2},
		{"qua", 2},
		{"quy", 2},
		{"gia", 2},
		{"gi", 1},
		{"nghia", 3},
		{"mua", 1},
		{"huynh", 2},
		{"thuy", 3},
		{"LAI", 1},
		{"lái", 1},
		{"Hoá", 1},
		{"hóan", 2},
	}
	for _, tc := range cases {
		got, ok := ResolveNucleus(tc.word)
		require.True(t, ok, "expected a nucleus in %q", tc.word)
		require.Equal(t, tc.want, got, "nucleus of %q", tc.word)
	}
}

func TestResolveNucleusNotFound(t *testing.T) {
	for _, word := range []string{"", "bcd", "đ", "ng", "123"} {
		_, ok := ResolveNucleus(word)
		require.False(t, ok, "expected no nucleus in %q", word)
	}
}

func TestResolveNucleusPrefersRightmostModifiedVowel(t *testing.T) {
	got, ok := ResolveNucleus("ăâ")
	require.True(t, ok)
	require.Equal(t, 1, got)
}
