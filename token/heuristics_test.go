package token

import "testing"

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"hello", 2},
		{"beautiful", 3},
		{"come", 1},
		{"apple", 2},
		{"strength", 1},
		{"a", 1},
	}
	for _, tt := range tests {
		if got := Syllables(tt.word); got != tt.want {
			t.Errorf("Syllables(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestSyllablesNeverZeroForWords(t *testing.T) {
	for _, w := range []string{"rhythm", "tsk", "xyz"} {
		if got := Syllables(w); got < 1 {
			t.Errorf("Syllables(%q) = %d, want >= 1", w, got)
		}
	}
}

func TestFrequencyCommonBeatsRare(t *testing.T) {
	if Frequency("the") <= Frequency("xylophone") {
		t.Errorf("expected the to score higher than xylophone")
	}
	if f := Frequency("the"); f < 0 || f > 1 {
		t.Errorf("frequency out of range: %v", f)
	}
	if f := Frequency("sesquipedalian"); f < 0 || f > 1 {
		t.Errorf("frequency out of range: %v", f)
	}
}

func TestComplexityMonotone(t *testing.T) {
	// Longer, rarer, more syllabic words never score lower than short
	// common ones.
	pairs := []struct{ simple, hard string }{
		{"cat", "catastrophe"},
		{"the", "thermodynamics"},
		{"go", "gubernatorial"},
	}
	for _, p := range pairs {
		simple := NewWord(p.simple)
		hard := NewWord(p.hard)
		if hard.Complexity < simple.Complexity {
			t.Errorf("Complexity(%q)=%v < Complexity(%q)=%v",
				p.hard, hard.Complexity, p.simple, simple.Complexity)
		}
	}
}

func TestComplexityAtLeastOne(t *testing.T) {
	for _, w := range []string{"a", "the", "extraordinarily"} {
		if tok := NewWord(w); tok.Complexity < 1 {
			t.Errorf("Complexity(%q) = %v, want >= 1", w, tok.Complexity)
		}
	}
}

func TestLength(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"cat", 3},
		{"20°C", 4},
		{"café", 4},
		{"café", 4}, // combining accent is one grapheme with its base
	}
	for _, tt := range tests {
		if got := Length(tt.in); got != tt.want {
			t.Errorf("Length(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
