// Package token normalizes raw chapter text into a typed token stream.
//
// Tokenize is a pure function: the same input always yields the same tokens.
// It never fails; unknown characters pass through as tokens of the closest
// applicable type. Downstream pacing engines rely on one structural
// guarantee: a dot that is not a sentence end (abbreviation dot, decimal
// point, thousands separator) never leaves its word token, so every emitted
// Punct token is a real pause site.
package token

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Type classifies a token.
type Type int

const (
	// Word is a readable unit: a word, a number, or a number with an
	// attached unit such as "20°C" or "50%".
	Word Type = iota
	// Punct is punctuation that affects pacing (sentence ends, clause
	// breaks, parentheses, quotes, dashes).
	Punct
	// PageBreak marks a page or scene boundary (form feed, or a
	// scene-break marker line such as "***").
	PageBreak
)

// String returns the string representation of the type.
func (t Type) String() string {
	switch t {
	case Word:
		return "Word"
	case Punct:
		return "Punct"
	case PageBreak:
		return "PageBreak"
	default:
		return unknownStr
	}
}

// Token is one unit of the tokenized stream. Tokens are immutable once
// produced; order within a chapter is significant and preserved end-to-end.
type Token struct {
	// Text is the token's display text. For PageBreak tokens it is "\f".
	Text string
	// Type classifies the token.
	Type Type
	// Syllables is a best-effort syllable count for Word tokens (0 for
	// non-words).
	Syllables int
	// Frequency estimates how common the word is, in [0, 1].
	// 1 is very common, 0 is very rare. Neutral default is 0.5.
	Frequency float64
	// Complexity is a pacing multiplier >= 1. Longer, rarer words never
	// receive a lower value than shorter, common ones.
	Complexity float64
}

// NewWord builds a Word token with heuristic difficulty estimates attached.
func NewWord(text string) Token {
	syl := Syllables(text)
	freq := Frequency(text)
	return Token{
		Text:       text,
		Type:       Word,
		Syllables:  syl,
		Frequency:  freq,
		Complexity: Complexity(text, syl, freq),
	}
}

// NewPunct builds a Punct token.
func NewPunct(text string) Token {
	return Token{Text: text, Type: Punct, Frequency: 0.5, Complexity: 1}
}

// NewPageBreak builds a PageBreak token.
func NewPageBreak() Token {
	return Token{Text: "\f", Type: PageBreak, Frequency: 0.5, Complexity: 1}
}

// IsSentenceEnd reports whether t is sentence-ending punctuation.
// Abbreviation dots and in-number dots never appear as Punct tokens, so any
// Punct "." really ends a sentence.
func IsSentenceEnd(t Token) bool {
	if t.Type != Punct {
		return false
	}
	switch t.Text {
	case ".", "!", "?", "…":
		return true
	}
	return false
}

// IsClauseBreak reports whether t is clause-level punctuation (a pause
// shorter than a sentence end).
func IsClauseBreak(t Token) bool {
	if t.Type != Punct {
		return false
	}
	switch t.Text {
	case ",", ";", ":", "—", "–":
		return true
	}
	return false
}

// IsOpenParen reports whether t opens a parenthetical span.
func IsOpenParen(t Token) bool {
	return t.Type == Punct && (t.Text == "(" || t.Text == "[")
}

// IsCloseParen reports whether t closes a parenthetical span.
func IsCloseParen(t Token) bool {
	return t.Type == Punct && (t.Text == ")" || t.Text == "]")
}

// IsQuote reports whether t is a quotation mark.
func IsQuote(t Token) bool {
	if t.Type != Punct {
		return false
	}
	switch t.Text {
	case `"`, "“", "”", "«", "»":
		return true
	}
	return false
}

// IsAbbreviation reports whether t is a word carrying an abbreviation dot,
// such as "Dr." or "e.g.". The dot stays inside the word token so that the
// engines can give it a much smaller pause than a sentence end.
func IsAbbreviation(t Token) bool {
	if t.Type != Word {
		return false
	}
	return isAbbreviationText(t.Text)
}

// IsNumericText reports whether s has the signed/decimal numeric shape:
// an optional leading minus (ASCII hyphen, en dash, non-breaking hyphen or
// minus sign) directly followed by digits, internal "." or "," only between
// digits, and an optional short unit suffix ("c", "°C", "%", "km").
// Numeric tokens are atomic: they are never split on their sign or
// separators, and engines must not hyphen-split them.
func IsNumericText(s string) bool {
	runes := []rune(s)
	i := 0
	if i < len(runes) && isSignRune(runes[i]) {
		i++
	}
	if i >= len(runes) || !isDigit(runes[i]) {
		return false
	}
	sawDigit := false
	for ; i < len(runes); i++ {
		r := runes[i]
		switch {
		case isDigit(r):
			sawDigit = true
		case r == '.' || r == ',':
			// Separator must sit between digits.
			if i == 0 || !isDigit(runes[i-1]) || i+1 >= len(runes) || !isDigit(runes[i+1]) {
				return false
			}
		default:
			// Remainder must be a short unit suffix.
			return sawDigit && isUnitSuffix(runes[i:])
		}
	}
	return sawDigit
}

// isSignRune matches the minus variants accepted as a numeric sign.
func isSignRune(r rune) bool {
	switch r {
	case '-', '–', '‑', '−':
		return true
	}
	return false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isUnitSuffix matches a short trailing unit: "%", "°", "°C", "c", "km",
// "kg" and similar. At most three runes, letters after an optional degree
// or percent sign.
func isUnitSuffix(runes []rune) bool {
	if len(runes) == 0 || len(runes) > 3 {
		return false
	}
	i := 0
	if runes[i] == '°' || runes[i] == '%' {
		i++
	}
	for ; i < len(runes); i++ {
		if !isLetter(runes[i]) {
			return false
		}
	}
	return true
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
