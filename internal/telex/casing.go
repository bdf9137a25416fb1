package telex

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// transferCase re-cases result after segment. A multi-letter segment that
// is entirely upper case upper-cases the whole result; otherwise only the
// first letter's case is mirrored and the rest is lower case.
func transferCase(segment, result string) string {
	if result == "" || segment == "" {
		return result
	}
	if utf8.RuneCountInString(segment) > 1 && isAllUpper(segment) {
		return cases.Upper(language.Vietnamese).String(result)
	}
	first, _ := utf8.DecodeRuneInString(segment)
	rest := cases.Lower(language.Vietnamese).String(result)
	head, size := utf8.DecodeRuneInString(rest)
	if unicode.IsUpper(first) {
		head = unicode.ToUpper(head)
	}
	return string(head) + rest[size:]
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

// Plain removes every diacritic from s, including the stroke on đ.
// Casers and transform chains keep state, so callers never share them.
func Plain(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	letters := []rune(out)
	for i, r := range letters {
		switch r {
		case 'đ':
			letters[i] = 'd'
		case 'Đ':
			letters[i] = 'D'
		}
	}
	return string(letters)
}
