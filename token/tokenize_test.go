package token

import (
	"reflect"
	"testing"
)

func texts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Text
	}
	return out
}

func TestTokenizeEmpty(t *testing.T) {
	if toks := Tokenize(""); toks != nil {
		t.Errorf("expected nil for empty input, got %v", toks)
	}
}

func TestTokenizeNegativeNumber(t *testing.T) {
	toks := Tokenize("-35c")
	if len(toks) != 1 {
		t.Fatalf("expected 1 token, got %d: %v", len(toks), texts(toks))
	}
	if toks[0].Text != "-35c" {
		t.Errorf("expected text -35c unchanged, got %q", toks[0].Text)
	}
	if toks[0].Type != Word {
		t.Errorf("expected Word, got %v", toks[0].Type)
	}
}

func TestTokenizeNumberUnitJoining(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"spaced degree and unit", "It was 20 ° C outside", "20°C"},
		{"spaced degree unit", "It was 20 °C outside", "20°C"},
		{"attached", "It was 20°C outside", "20°C"},
		{"percent", "about 50 % done", "50%"},
		{"nbsp before degree", "It was 20 °C outside", "20°C"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			found := false
			for _, tok := range toks {
				if tok.Text == tt.want && tok.Type == Word {
					found = true
				}
				if tok.Text == "°" || tok.Text == "%" {
					t.Errorf("unit marker leaked as its own token in %v", texts(toks))
				}
			}
			if !found {
				t.Errorf("expected joined token %q, got %v", tt.want, texts(toks))
			}
		})
	}
}

func TestTokenizeMojibake(t *testing.T) {
	// "20°C" mis-decoded as Latin-1 puts a stray Â before the degree.
	toks := Tokenize("It was 20Â°C out")
	found := false
	for _, tok := range toks {
		if tok.Text == "20°C" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected mojibake repaired to 20°C, got %v", texts(toks))
	}
}

func TestTokenizeNumericAtomic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"3.14", "3.14"},
		{"1,000", "1,000"},
		{"-12.5", "-12.5"},
		{"−35", "−35"},
	}
	for _, tt := range tests {
		toks := Tokenize(tt.input)
		if len(toks) != 1 {
			t.Errorf("%q: expected 1 token, got %v", tt.input, texts(toks))
			continue
		}
		if toks[0].Text != tt.want || toks[0].Type != Word {
			t.Errorf("%q: got %q (%v)", tt.input, toks[0].Text, toks[0].Type)
		}
	}
}

func TestTokenizeSentenceEndAfterNumber(t *testing.T) {
	toks := Tokenize("The answer is 3.14.")
	want := []string{"The", "answer", "is", "3.14", "."}
	if !reflect.DeepEqual(texts(toks), want) {
		t.Errorf("expected %v, got %v", want, texts(toks))
	}
	last := toks[len(toks)-1]
	if !IsSentenceEnd(last) {
		t.Errorf("expected trailing dot to be a sentence end")
	}
}

func TestTokenizeAbbreviation(t *testing.T) {
	toks := Tokenize("Dr. Smith arrived.")
	want := []string{"Dr.", "Smith", "arrived", "."}
	if !reflect.DeepEqual(texts(toks), want) {
		t.Fatalf("expected %v, got %v", want, texts(toks))
	}
	if !IsAbbreviation(toks[0]) {
		t.Errorf("expected Dr. to classify as abbreviation")
	}
	if toks[0].Type != Word {
		t.Errorf("expected abbreviation dot to stay inside the word token")
	}
}

func TestTokenizeDottedAbbreviation(t *testing.T) {
	toks := Tokenize("fruit, e.g. apples")
	for _, tok := range toks {
		if tok.Text == "e.g." {
			if !IsAbbreviation(tok) {
				t.Errorf("expected e.g. to classify as abbreviation")
			}
			return
		}
	}
	t.Errorf("expected single token e.g., got %v", texts(toks))
}

func TestTokenizeEllipsisAndDash(t *testing.T) {
	toks := Tokenize("Wait... the night--dark and cold")
	got := texts(toks)
	wantPrefix := []string{"Wait", "…", "the", "night", "—", "dark"}
	if len(got) < len(wantPrefix) || !reflect.DeepEqual(got[:len(wantPrefix)], wantPrefix) {
		t.Errorf("expected prefix %v, got %v", wantPrefix, got)
	}
}

func TestTokenizePageBreakFormFeed(t *testing.T) {
	toks := Tokenize("one\ftwo")
	want := []Type{Word, PageBreak, Word}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %v", len(want), texts(toks))
	}
	for i, typ := range want {
		if toks[i].Type != typ {
			t.Errorf("token %d: expected %v, got %v", i, typ, toks[i].Type)
		}
	}
}

func TestTokenizePageBreakSurvivesWhitespaceTrim(t *testing.T) {
	// The form feed is itself Unicode whitespace; padding around it must
	// not turn the break line into a blank line.
	tests := []struct {
		name  string
		input string
	}{
		{"bare", "one\ftwo"},
		{"padded", "one \f two"},
		{"own line", "one\n\f\ntwo"},
		{"adjacent collapse", "one\f\f\ftwo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			want := []Type{Word, PageBreak, Word}
			if len(toks) != len(want) {
				t.Fatalf("expected %d tokens, got %v", len(want), texts(toks))
			}
			for i, typ := range want {
				if toks[i].Type != typ {
					t.Errorf("token %d: expected %v, got %v", i, typ, toks[i].Type)
				}
			}
		})
	}
}

func TestTokenizePunctAlwaysSingleRune(t *testing.T) {
	// Trailing punctuation peels one rune at a time, so a quote after a
	// sentence end arrives as its own token, never fused as `!"`.
	inputs := []string{
		`He left!" She stayed.`,
		`"Why?" he asked.`,
		`(It ended.) Then--nothing...`,
	}
	for _, in := range inputs {
		for _, tok := range Tokenize(in) {
			if tok.Type != Punct {
				continue
			}
			if n := len([]rune(tok.Text)); n != 1 {
				t.Errorf("input %q: punct token %q has %d runes, expected 1", in, tok.Text, n)
			}
		}
	}
}

func TestTokenizeSceneBreak(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"asterisks", "para one\n\n***\n\npara two", true},
		{"spaced asterisks", "para one\n\n* * *\n\npara two", true},
		{"hashes", "para one\n\n####\n\npara two", true},
		{"not surrounded by blanks", "para one\n***\npara two", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := Tokenize(tt.input)
			found := false
			for _, tok := range toks {
				if tok.Type == PageBreak {
					found = true
				}
			}
			if found != tt.want {
				t.Errorf("scene break detection = %v, want %v (tokens %v)", found, tt.want, texts(toks))
			}
		})
	}
}

func TestTokenizeQuotedSentence(t *testing.T) {
	toks := Tokenize(`He said, "hello."`)
	want := []string{"He", "said", ",", `"`, "hello", ".", `"`}
	if !reflect.DeepEqual(texts(toks), want) {
		t.Errorf("expected %v, got %v", want, texts(toks))
	}
}

func TestTokenizeUnknownCharsPassThrough(t *testing.T) {
	toks := Tokenize("x @@@ y")
	want := []string{"x", "@@@", "y"}
	if !reflect.DeepEqual(texts(toks), want) {
		t.Errorf("expected %v, got %v", want, texts(toks))
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	const input = "Dr. Brown measured -35c at 9.15 a.m. It was cold... (very cold)."
	a := Tokenize(input)
	b := Tokenize(input)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("tokenization is not deterministic")
	}
}

func TestIsNumericText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"-35c", true},
		{"3.14", true},
		{"1,000", true},
		{"20°C", true},
		{"50%", true},
		{"-12.5", true},
		{"self-aware", false},
		{"word", false},
		{"-", false},
		{"3.", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsNumericText(tt.in); got != tt.want {
			t.Errorf("IsNumericText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
