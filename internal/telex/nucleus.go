package telex

type cluster struct {
	text   []rune
	offset int
	glide  bool
}

func newCluster(text string, offset int) cluster {
	return cluster{text: []rune(text), offset: offset}
}

func newGlide(text string) cluster {
	return cluster{text: []rune(text), glide: true}
}

// Longest first. Within a length the first match wins, so order matters:
// the glides must be tried before "ia" and "ua". Clusters holding a
// modified vowel (uyê, ươi, uô, ...) are absent because the rightmost
// modified vowel is always taken before the catalogue is consulted.
var clusters = []cluster{
	newCluster("oai", 1),
	newCluster("uay", 1),
	newCluster("oay", 1),

	newGlide("qu"),
	newGlide("gi"),

	newCluster("ia", 0),
	newCluster("ua", 0),
	newCluster("ai", 0),
	newCluster("ao", 0),
	newCluster("au", 0),
	newCluster("ay", 0),
	newCluster("ei", 0),
	newCluster("eo", 0),
	newCluster("eu", 0),
	newCluster("oi", 0),
	newCluster("oa", 0),
	newCluster("oe", 0),
	newCluster("oy", 0),
	newCluster("ui", 0),
	newCluster("uy", 1),
	newCluster("uu", 0),
	newCluster("iu", 0),
}

// ResolveNucleus returns the rune index of the vowel in word that carries
// the tone mark, or false when word has no vowel.
func ResolveNucleus(word string) (int, bool) {
	return resolveNucleus([]rune(word))
}

func resolveNucleus(word []rune) (int, bool) {
	folded := make([]rune, len(word))
	for i, r := range word {
		folded[i] = fold(r)
	}
	return resolveFolded(folded)
}

func resolveFolded(word []rune) (int, bool) {
	for i := len(word) - 1; i >= 0; i-- {
		if isModifiedVowel(word[i]) {
			return i, true
		}
	}

	for _, c := range clusters {
		pos := lastIndex(word, c.text)
		if pos < 0 {
			continue
		}
		end := pos + len(c.text)
		if c.glide {
			if idx, ok := nucleusAfterGlide(word, end); ok {
				return idx, true
			}
			continue
		}
		if len(c.text) == 2 && end < len(word) && !isPlainVowel(word[end]) {
			return pos + 1, true
		}
		return pos + c.offset, true
	}

	for i := len(word) - 1; i >= 0; i-- {
		if isPlainVowel(word[i]) {
			return i, true
		}
	}
	return -1, false
}

func nucleusAfterGlide(word []rune, start int) (int, bool) {
	for i := start; i < len(word); i++ {
		if !isVowel(word[i]) {
			continue
		}
		if sub, ok := resolveFolded(word[i:]); ok {
			return i + sub, true
		}
		return i, true
	}
	return -1, false
}

func lastIndex(word, sub []rune) int {
	for i := len(word) - len(sub); i >= 0; i-- {
		match := true
		for j, r := range sub {
			if word[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
