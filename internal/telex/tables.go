package telex

import "unicode"

var toneKeys = map[rune]Tone{
	's': ToneAcute,
	'f': ToneGrave,
	'r': ToneHook,
	'x': ToneTilde,
	'j': ToneDot,
}

// modifierRules maps trigger -> plain base letter -> modifier it applies.
var modifierRules = map[rune]map[rune]Modifier{
	'w': {'a': ModBreve, 'o': ModHorn, 'u': ModHorn},
	'a': {'a': ModCircumflex},
	'e': {'e': ModCircumflex},
	'o': {'o': ModCircumflex},
	'd': {'d': ModStroke},
}

// clusterRules maps a lowercase two-letter vowel sequence and trigger to
// the modifier each letter receives.
var clusterRules = map[string]map[rune][]Modifier{
	"uo": {'w': {ModHorn, ModHorn}},
	"ua": {'w': {ModHorn, ModNone}},
}

// IsToneKey reports whether r (any case) is one of s f r x j.
func IsToneKey(r rune) bool {
	_, ok := toneKeys[unicode.ToLower(r)]
	return ok
}

// IsTrigger reports whether r may change the word it is appended to.
func IsTrigger(r rune) bool {
	r = unicode.ToLower(r)
	if _, ok := toneKeys[r]; ok {
		return true
	}
	if _, ok := modifierRules[r]; ok {
		return true
	}
	return r == 'z'
}

// LookupDiacritic applies trigger to segment, a single letter or a
// two-letter vowel cluster. The segment is matched case-insensitively and
// the result takes its case from the segment.
func LookupDiacritic(segment string, trigger rune) (string, bool) {
	runes := []rune(segment)
	trigger = unicode.ToLower(trigger)
	var out []rune
	switch len(runes) {
	case 1:
		r, ok := applyToLetter(runes[0], trigger)
		if !ok {
			return "", false
		}
		out = []rune{r}
	case 2:
		mods, ok := clusterRules[string([]rune{fold(runes[0]), fold(runes[1])})][trigger]
		if !ok {
			return "", false
		}
		out = make([]rune, len(runes))
		for i, r := range runes {
			l, _ := Decompose(r)
			if mods[i] != ModNone {
				l.Mod = mods[i]
			}
			l.Upper = false
			composed, ok := l.Rune()
			if !ok {
				return "", false
			}
			out[i] = composed
		}
	default:
		return "", false
	}
	return transferCase(segment, string(out)), true
}

// applyToLetter returns the lowercase result of trigger on r.
func applyToLetter(r rune, trigger rune) (rune, bool) {
	l, ok := Decompose(r)
	if !ok {
		return 0, false
	}
	l.Upper = false
	if tone, ok := toneKeys[trigger]; ok {
		if !l.IsVowel() || l.Tone == tone {
			return 0, false
		}
		l.Tone = tone
		return l.Rune()
	}
	mod, ok := modifierRules[trigger][l.Base]
	if !ok || l.Mod != ModNone {
		return 0, false
	}
	l.Mod = mod
	return l.Rune()
}

// StripTone returns r without its tone mark, or false if r carries none.
func StripTone(r rune) (rune, bool) {
	l, ok := Decompose(r)
	if !ok || l.Tone == ToneNone {
		return 0, false
	}
	l.Tone = ToneNone
	return l.Rune()
}

// StripModifier returns the plain letter for an untoned modified vowel or
// đ, or false otherwise.
func StripModifier(r rune) (rune, bool) {
	l, ok := Decompose(r)
	if !ok || l.Mod == ModNone || l.Tone != ToneNone {
		return 0, false
	}
	l.Mod = ModNone
	return l.Rune()
}
