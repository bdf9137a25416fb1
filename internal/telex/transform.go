// Package telex turns Telex keystroke sequences into Vietnamese words.
//
// The functions here are pure: they take the word typed so far, with the
// key just pressed as its last character, and either return the word that
// should replace it or report that nothing changes. They hold no state and
// are safe for concurrent use.
package telex

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Transform decides how word renders now that its last rune has been
// typed. It returns false when no rule applies, which is distinct from a
// replacement that happens to equal word.
func Transform(word string) (string, bool) {
	runes := []rune(norm.NFC.String(word))
	n := len(runes)
	if n == 0 {
		return "", false
	}
	last := unicode.ToLower(runes[n-1])
	base := runes[:n-1]

	switch {
	case last == 'd' && n >= 2 && unicode.ToLower(runes[n-2]) == 'd':
		return replaceTail(runes[:n-2], runes[n-2:n-1], 'd')
	case last == 'z':
		return removeDiacritic(base)
	case last == 'w':
		return applyHorn(base)
	case IsToneKey(last):
		return applyTone(base, last)
	case n >= 2 && unicode.ToLower(runes[n-2]) == last && (last == 'a' || last == 'e' || last == 'o'):
		return replaceTail(runes[:n-2], runes[n-2:n-1], last)
	}
	return "", false
}

// Apply is Transform for a word whose trigger is passed separately.
func Apply(base string, trigger rune) (string, bool) {
	return Transform(base + string(trigger))
}

func replaceTail(prefix, segment []rune, trigger rune) (string, bool) {
	out, ok := LookupDiacritic(string(segment), trigger)
	if !ok {
		return "", false
	}
	return string(prefix) + out, true
}

func removeDiacritic(base []rune) (string, bool) {
	pos, ok := resolveNucleus(base)
	if !ok {
		return "", false
	}
	r, ok := StripTone(base[pos])
	if !ok {
		r, ok = StripModifier(base[pos])
	}
	if !ok {
		return "", false
	}
	return splice(base, pos, string(r)), true
}

func applyHorn(base []rune) (string, bool) {
	n := len(base)
	if n >= 2 && !(n >= 3 && unicode.ToLower(base[n-3]) == 'q') {
		if out, ok := replaceTail(base[:n-2], base[n-2:], 'w'); ok {
			return out, true
		}
	}
	if n >= 1 {
		return replaceTail(base[:n-1], base[n-1:], 'w')
	}
	return "", false
}

func applyTone(base []rune, key rune) (string, bool) {
	pos, ok := resolveNucleus(base)
	if !ok {
		return "", false
	}
	out, ok := LookupDiacritic(string(base[pos]), key)
	if !ok {
		return "", false
	}
	// A word carries one tone; drop any left on a letter that is no
	// longer the nucleus.
	word := make([]rune, len(base))
	copy(word, base)
	for i, r := range word {
		if i == pos || !isVowel(r) {
			continue
		}
		if stripped, ok := StripTone(r); ok {
			word[i] = stripped
		}
	}
	return splice(word, pos, out), true
}

func splice(word []rune, pos int, replacement string) string {
	return string(word[:pos]) + replacement + string(word[pos+1:])
}
