package token

import (
	"strings"
	"unicode"
)

// Difficulty heuristics for Word tokens. These are deliberately cheap and
// deterministic: the pacing engines only need relative ordering (longer,
// rarer, more syllabic words must never look easier than short common
// ones), not linguistic accuracy.

// commonWords maps very frequent English words to a frequency score in
// (0, 1]. Words absent from the table fall back to a length-based estimate.
var commonWords = map[string]float64{
	"the": 1.0, "be": 0.98, "to": 0.98, "of": 0.97, "and": 0.97,
	"a": 0.96, "in": 0.95, "that": 0.93, "have": 0.92, "i": 0.95,
	"it": 0.94, "for": 0.93, "not": 0.92, "on": 0.92, "with": 0.9,
	"he": 0.91, "as": 0.91, "you": 0.92, "do": 0.9, "at": 0.9,
	"this": 0.89, "but": 0.89, "his": 0.88, "by": 0.88, "from": 0.87,
	"they": 0.87, "we": 0.87, "say": 0.85, "her": 0.86, "she": 0.86,
	"or": 0.86, "an": 0.86, "will": 0.84, "my": 0.85, "one": 0.84,
	"all": 0.84, "would": 0.82, "there": 0.82, "their": 0.8, "what": 0.81,
	"so": 0.83, "up": 0.83, "out": 0.82, "if": 0.83, "about": 0.78,
	"who": 0.8, "get": 0.79, "which": 0.76, "go": 0.8, "when": 0.78,
	"was": 0.9, "were": 0.85, "is": 0.94, "are": 0.9, "had": 0.87,
	"said": 0.82, "like": 0.78, "time": 0.76, "no": 0.85, "just": 0.77,
	"him": 0.84, "know": 0.78, "into": 0.79, "than": 0.79, "then": 0.78,
	"now": 0.79, "only": 0.76, "its": 0.8, "over": 0.76, "also": 0.74,
	"back": 0.74, "after": 0.73, "two": 0.76, "how": 0.77, "our": 0.77,
	"first": 0.72, "well": 0.74, "way": 0.75, "even": 0.74, "new": 0.74,
	"any": 0.75, "these": 0.72, "day": 0.74, "most": 0.72, "us": 0.8,
}

// Syllables estimates the syllable count of word by counting vowel groups,
// with a correction for silent trailing "e". Always at least 1 for any
// word containing letters; numbers count one syllable per digit pair.
func Syllables(word string) int {
	w := strings.ToLower(word)

	letters := 0
	digits := 0
	groups := 0
	inVowelGroup := false
	for _, r := range w {
		switch {
		case isVowel(r):
			letters++
			if !inVowelGroup {
				groups++
				inVowelGroup = true
			}
		case unicode.IsLetter(r):
			letters++
			inVowelGroup = false
		case unicode.IsDigit(r):
			digits++
			inVowelGroup = false
		default:
			inVowelGroup = false
		}
	}

	if letters == 0 {
		if digits == 0 {
			return 0
		}
		// "1200" reads as several spoken units.
		return 1 + digits/2
	}

	// Silent e: "come" has one spoken vowel group, "apple" keeps its
	// trailing syllable.
	if groups > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		groups--
	}
	if groups < 1 {
		groups = 1
	}
	return groups
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y',
		'à', 'á', 'â', 'ä', 'è', 'é', 'ê', 'ë',
		'ì', 'í', 'î', 'ï', 'ò', 'ó', 'ô', 'ö',
		'ù', 'ú', 'û', 'ü':
		return true
	}
	return false
}

// Frequency estimates how common word is, in [0, 1]. Table lookup for the
// most frequent English words, otherwise a fallback that decays with
// length: long words are rare words, which is all the engines need.
func Frequency(word string) float64 {
	w := strings.ToLower(strings.Trim(word, ".,!?;:\"'"))
	if f, ok := commonWords[w]; ok {
		return f
	}
	switch n := Length(w); {
	case n <= 3:
		return 0.7
	case n <= 5:
		return 0.55
	case n <= 7:
		return 0.4
	case n <= 9:
		return 0.28
	case n <= 12:
		return 0.18
	default:
		return 0.1
	}
}

// Complexity derives the pacing multiplier from length, syllable count and
// rarity. The result is always >= 1 and monotone: adding length, syllables
// or rarity never lowers it. Capped so a single hard word cannot stall the
// stream.
func Complexity(word string, syllables int, frequency float64) float64 {
	c := 1.0

	if n := Length(word); n > 4 {
		c += 0.04 * float64(n-4)
	}
	if syllables > 2 {
		c += 0.07 * float64(syllables-2)
	}
	c += 0.3 * (1 - frequency)

	if c > 2.5 {
		c = 2.5
	}
	return c
}
