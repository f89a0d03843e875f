package token

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// mojibakeReplacer repairs the common UTF-8-decoded-as-Latin-1 byte
// sequences found in scraped ebook text. Applied before any other
// normalization so downstream rules see the intended characters.
var mojibakeReplacer = strings.NewReplacer(
	"â€™", "’", // right single quote
	"â€œ", "“", // left double quote
	"â€", "”", // right double quote
	"â€”", "—", // em dash
	"â€“", "–", // en dash
	"â€¦", "…", // ellipsis
	"Â°", "°", // degree sign
	"Ã©", "é",
	" °", "°", // stray no-break space before a degree sign
)

// sceneBreakRunes are the symbols accepted in a scene-break marker line
// such as "***" or "— — —".
const sceneBreakRunes = "*#~=—–-·•_"

// Tokenize converts chapter text into an ordered token stream.
//
// It is a pure function and never fails: malformed input degrades to
// pass-through tokens of the closest applicable type. See the package
// comment for the normalization rules.
func Tokenize(text string) []Token {
	if text == "" {
		return nil
	}

	lines := strings.Split(normalize(text), "\n")
	toks := make([]Token, 0, len(text)/6)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		// Checked on the raw line: the form feed is itself whitespace,
		// so TrimSpace would erase it.
		case strings.ContainsRune(line, '\f'):
			toks = appendPageBreak(toks)
		case trimmed == "":
			continue
		case isSceneBreakLine(trimmed) && blankAround(lines, i):
			toks = appendPageBreak(toks)
		default:
			toks = appendLine(toks, line)
		}
	}
	return toks
}

// appendPageBreak adds a PageBreak token, collapsing adjacent breaks.
func appendPageBreak(toks []Token) []Token {
	if n := len(toks); n > 0 && toks[n-1].Type == PageBreak {
		return toks
	}
	return append(toks, NewPageBreak())
}

// appendLine tokenizes one line of prose and appends its tokens.
func appendLine(toks []Token, line string) []Token {
	fields := strings.FieldsFunc(line, unicode.IsSpace)
	fields = mergeUnitFields(fields)
	for _, f := range fields {
		toks = append(toks, tokenizeField(f)...)
	}
	return toks
}

// mergeUnitFields re-attaches unit and degree markers that whitespace
// separated from their number: "20 ° C" and "20 °C" become "20°C",
// "50 %" becomes "50%".
func mergeUnitFields(fields []string) []string {
	merged := fields[:0]
	for _, f := range fields {
		if len(merged) > 0 {
			prev := merged[len(merged)-1]
			switch {
			case isUnitField(f) && endsWithDigit(prev):
				merged[len(merged)-1] = prev + f
				continue
			case strings.HasSuffix(prev, "°") && isShortLetterRun(f):
				merged[len(merged)-1] = prev + f
				continue
			}
		}
		merged = append(merged, f)
	}
	return merged
}

// isUnitField matches a detached unit marker: "%", "°", or "°" followed by
// up to two letters ("°C").
func isUnitField(f string) bool {
	if f == "%" || f == "°" {
		return true
	}
	r := []rune(f)
	return len(r) >= 2 && len(r) <= 3 && r[0] == '°' && isShortLetterRun(string(r[1:]))
}

func isShortLetterRun(f string) bool {
	r := []rune(f)
	if len(r) == 0 || len(r) > 2 {
		return false
	}
	for _, c := range r {
		if !isLetter(c) {
			return false
		}
	}
	return true
}

func endsWithDigit(s string) bool {
	r := []rune(s)
	return len(r) > 0 && isDigit(r[len(r)-1])
}

// tokenizeField splits one whitespace-delimited chunk into tokens:
// leading punctuation, the core word(s), trailing punctuation. Numeric
// cores (signs, decimals, thousands separators, unit suffixes) stay atomic.
func tokenizeField(chunk string) []Token {
	// A double hyphen is an em dash typed on a typewriter.
	if strings.Contains(chunk, "--") && !IsNumericText(chunk) {
		var out []Token
		for i, part := range strings.Split(chunk, "--") {
			if i > 0 {
				out = append(out, NewPunct("—"))
			}
			if part != "" {
				out = append(out, tokenizeField(part)...)
			}
		}
		return out
	}

	runes := []rune(chunk)
	var lead, trail []Token

	for len(runes) > 0 {
		r := runes[0]
		// A minus variant directly before a digit is a numeric sign,
		// not punctuation.
		if isSignRune(r) && len(runes) > 1 && isDigit(runes[1]) {
			break
		}
		if !isLeadingPunct(r) {
			break
		}
		lead = append(lead, NewPunct(string(r)))
		runes = runes[1:]
	}

	for len(runes) > 0 {
		r := runes[len(runes)-1]
		if !isTrailingPunct(r) {
			break
		}
		if r == '.' {
			if dots := countTrailingDots(runes); dots >= 3 {
				// "word..." collapses to a single ellipsis.
				runes = runes[:len(runes)-dots]
				trail = prependPunct(trail, "…")
				continue
			}
			if isAbbreviationText(string(runes)) {
				// Abbreviation dot stays inside the word token.
				break
			}
		}
		runes = runes[:len(runes)-1]
		trail = prependPunct(trail, string(r))
	}

	out := lead
	if len(runes) > 0 {
		out = append(out, coreTokens(string(runes))...)
	}
	return append(out, trail...)
}

func prependPunct(trail []Token, text string) []Token {
	return append([]Token{NewPunct(text)}, trail...)
}

func countTrailingDots(runes []rune) int {
	n := 0
	for i := len(runes) - 1; i >= 0 && runes[i] == '.'; i-- {
		n++
	}
	return n
}

// coreTokens emits the word token(s) for a chunk core. Em dashes and
// ellipses embedded without spaces ("wait—no", "well…so") split the core;
// everything else, including hyphenated words and in-word apostrophes,
// stays whole. Hyphen splitting for display is an engine decision.
func coreTokens(core string) []Token {
	if IsNumericText(core) {
		return []Token{NewWord(core)}
	}
	if i := strings.IndexAny(core, "—…"); i >= 0 {
		sep := "—"
		if strings.HasPrefix(core[i:], "…") {
			sep = "…"
		}
		var out []Token
		if left := core[:i]; left != "" {
			out = append(out, coreTokens(left)...)
		}
		out = append(out, NewPunct(sep))
		if right := core[i+len(sep):]; right != "" {
			out = append(out, coreTokens(right)...)
		}
		return out
	}
	return []Token{NewWord(core)}
}

func isLeadingPunct(r rune) bool {
	return strings.ContainsRune(`"'“”‘’«»([{¡¿…—–-*`, r)
}

func isTrailingPunct(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ';', ':', '…',
		'"', '\'', '“', '”', '‘', '’', '«', '»',
		')', ']', '}', '—', '–', '*':
		return true
	}
	return false
}

// abbreviations are word-final-dot forms whose dot is not a sentence end.
var abbreviations = map[string]struct{}{
	"mr.": {}, "mrs.": {}, "ms.": {}, "dr.": {}, "prof.": {},
	"st.": {}, "mt.": {}, "jr.": {}, "sr.": {}, "vs.": {},
	"etc.": {}, "inc.": {}, "ltd.": {}, "co.": {}, "no.": {},
	"pp.": {}, "vol.": {}, "fig.": {}, "ch.": {}, "ca.": {},
	"approx.": {}, "dept.": {}, "est.": {}, "gen.": {}, "col.": {},
	"sgt.": {}, "capt.": {}, "lt.": {}, "rev.": {}, "hon.": {},
}

// isAbbreviationText reports whether s is a word with an abbreviation dot:
// a known abbreviation, a single-letter initial ("J."), or a dotted form
// with interior dots ("e.g.", "i.e.", "U.S.").
func isAbbreviationText(s string) bool {
	if !strings.HasSuffix(s, ".") {
		return false
	}
	lower := strings.ToLower(s)
	if _, ok := abbreviations[lower]; ok {
		return true
	}
	base := []rune(strings.TrimSuffix(lower, "."))
	if len(base) == 1 && isLetter(base[0]) {
		return true
	}
	if strings.Count(lower, ".") > 1 {
		for _, r := range base {
			if r != '.' && !unicode.IsLetter(r) {
				return false
			}
		}
		return len(base) > 0
	}
	return false
}

// isSceneBreakLine reports whether a trimmed line is a scene-break marker:
// at least three repetitions of one symbol, spaces allowed between them
// ("***", "* * *", "— — —").
func isSceneBreakLine(trimmed string) bool {
	var symbol rune
	count := 0
	for _, r := range trimmed {
		if r == ' ' {
			continue
		}
		if !strings.ContainsRune(sceneBreakRunes, r) {
			return false
		}
		if count == 0 {
			symbol = r
		} else if r != symbol {
			return false
		}
		count++
	}
	return count >= 3
}

// blankAround reports whether the lines adjacent to index i are blank or
// the chapter boundary.
func blankAround(lines []string, i int) bool {
	if i > 0 && strings.TrimSpace(lines[i-1]) != "" {
		return false
	}
	if i < len(lines)-1 && strings.TrimSpace(lines[i+1]) != "" {
		return false
	}
	return true
}

// normalize repairs encoding artifacts and canonicalizes the text before
// line and field splitting. Form feeds become their own lines so the line
// loop can emit page breaks in order.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = mojibakeReplacer.Replace(text)
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\f", "\n\f\n")
	return text
}
