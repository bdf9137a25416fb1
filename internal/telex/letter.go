package telex

import "unicode"

// Tone is one of the five Vietnamese tone marks, or ToneNone.
type Tone uint8

const (
	ToneNone  Tone = iota
	ToneAcute      // sắc, typed "s"
	ToneGrave      // huyền, typed "f"
	ToneHook       // hỏi, typed "r"
	ToneTilde      // ngã, typed "x"
	ToneDot        // nặng, typed "j"
)

// Modifier is a non-tonal diacritic: breve, circumflex, horn or the stroke on đ.
type Modifier uint8

const (
	ModNone Modifier = iota
	ModBreve
	ModCircumflex
	ModHorn
	ModStroke
)

// Letter is a decomposed Vietnamese letter. Base is always a lowercase
// ASCII letter; case is carried separately in Upper.
type Letter struct {
	Base  rune
	Mod   Modifier
	Tone  Tone
	Upper bool
}

type form struct {
	base rune
	mod  Modifier
}

// Lowercase spellings indexed by Tone.
var vowelForms = map[form][6]rune{
	{'a', ModNone}:       {'a', 'á', 'à', 'ả', 'ã', 'ạ'},
	{'a', ModBreve}:      {'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ'},
	{'a', ModCircumflex}: {'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ'},
	{'e', ModNone}:       {'e', 'é', 'è', 'ẻ', 'ẽ', 'ẹ'},
	{'e', ModCircumflex}: {'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ'},
	{'i', ModNone}:       {'i', 'í', 'ì', 'ỉ', 'ĩ', 'ị'},
	{'o', ModNone}:       {'o', 'ó', 'ò', 'ỏ', 'õ', 'ọ'},
	{'o', ModCircumflex}: {'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ'},
	{'o', ModHorn}:       {'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ'},
	{'u', ModNone}:       {'u', 'ú', 'ù', 'ủ', 'ũ', 'ụ'},
	{'u', ModHorn}:       {'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự'},
	{'y', ModNone}:       {'y', 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ'},
}

var decomposeTable = buildDecompose(vowelForms)

func buildDecompose(forms map[form][6]rune) map[rune]Letter {
	table := make(map[rune]Letter, len(forms)*12+2)
	for f, spellings := range forms {
		for tone, r := range spellings {
			table[r] = Letter{Base: f.base, Mod: f.mod, Tone: Tone(tone)}
			table[unicode.ToUpper(r)] = Letter{Base: f.base, Mod: f.mod, Tone: Tone(tone), Upper: true}
		}
	}
	table['đ'] = Letter{Base: 'd', Mod: ModStroke}
	table['Đ'] = Letter{Base: 'd', Mod: ModStroke, Upper: true}
	return table
}

// Decompose splits r into base, modifier, tone and case. Plain ASCII
// consonants decompose to themselves; anything else reports false.
func Decompose(r rune) (Letter, bool) {
	if l, ok := decomposeTable[r]; ok {
		return l, true
	}
	if r < unicode.MaxASCII && unicode.IsLetter(r) {
		return Letter{Base: unicode.ToLower(r), Upper: unicode.IsUpper(r)}, true
	}
	return Letter{}, false
}

// Rune recomposes the letter. Combinations that do not exist in
// Vietnamese spelling report false.
func (l Letter) Rune() (rune, bool) {
	var r rune
	switch {
	case l.Mod == ModStroke:
		if l.Base != 'd' || l.Tone != ToneNone {
			return 0, false
		}
		r = 'đ'
	default:
		spellings, ok := vowelForms[form{l.Base, l.Mod}]
		if ok {
			r = spellings[l.Tone]
		} else if l.Mod == ModNone && l.Tone == ToneNone {
			r = l.Base
		} else {
			return 0, false
		}
	}
	if l.Upper {
		r = unicode.ToUpper(r)
	}
	return r, true
}

// IsVowel reports whether the letter is one of a e i o u y in any form.
func (l Letter) IsVowel() bool {
	_, ok := vowelForms[form{l.Base, l.Mod}]
	return ok
}

// IsModifiedVowel reports ă â ê ô ơ ư, toned or not.
func (l Letter) IsModifiedVowel() bool {
	return l.IsVowel() && l.Mod != ModNone
}

// IsPlainVowel reports a e i o u y, toned or not.
func (l Letter) IsPlainVowel() bool {
	return l.IsVowel() && l.Mod == ModNone
}

// fold maps r to its lowercase, tone-stripped spelling. Modifiers are kept.
func fold(r rune) rune {
	l, ok := Decompose(r)
	if !ok {
		return unicode.ToLower(r)
	}
	l.Tone = ToneNone
	l.Upper = false
	out, ok := l.Rune()
	if !ok {
		return unicode.ToLower(r)
	}
	return out
}

func isModifiedVowel(r rune) bool {
	l, ok := Decompose(r)
	return ok && l.IsModifiedVowel()
}

func isPlainVowel(r rune) bool {
	l, ok := Decompose(r)
	return ok && l.IsPlainVowel()
}

func isVowel(r rune) bool {
	l, ok := Decompose(r)
	return ok && l.IsVowel()
}
