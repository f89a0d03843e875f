package rsvp

import (
	"testing"

	"github.com/readpace/rsvp/token"
)

func TestFrameText(t *testing.T) {
	tests := []struct {
		name   string
		tokens []token.Token
		want   string
	}{
		{
			"single word",
			[]token.Token{token.NewWord("hello")},
			"hello",
		},
		{
			"trailing punctuation attaches",
			[]token.Token{token.NewWord("hello"), token.NewPunct(",")},
			"hello,",
		},
		{
			"chunk with clause break",
			[]token.Token{token.NewWord("one"), token.NewPunct(","), token.NewWord("two")},
			"one, two",
		},
		{
			"open paren attaches forward",
			[]token.Token{token.NewPunct("("), token.NewWord("aside")},
			"(aside",
		},
		{
			"bracketed span",
			[]token.Token{token.NewPunct("["), token.NewWord("sic"), token.NewPunct("]")},
			"[sic]",
		},
		{
			"leading straight quote opens",
			[]token.Token{token.NewPunct(`"`), token.NewWord("hello"), token.NewPunct("."), token.NewPunct(`"`)},
			`"hello."`,
		},
		{
			"straight quote after a word closes",
			[]token.Token{token.NewWord("said"), token.NewPunct(","), token.NewPunct(`"`), token.NewWord("go")},
			`said," go`,
		},
		{
			"curly open quote attaches forward",
			[]token.Token{token.NewPunct("“"), token.NewWord("well")},
			"“well",
		},
		{
			"page break skipped",
			[]token.Token{token.NewPageBreak()},
			"",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Frame{Tokens: tt.tokens, DurationMs: 1}
			if got := f.Text(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFrameIsPageBreak(t *testing.T) {
	if !(Frame{Tokens: []token.Token{token.NewPageBreak()}}).IsPageBreak() {
		t.Error("expected page break frame")
	}
	if (Frame{Tokens: []token.Token{token.NewWord("x")}}).IsPageBreak() {
		t.Error("expected non page break frame")
	}
}

func TestFrameSetTotalDuration(t *testing.T) {
	s := FrameSet{Frames: []Frame{{DurationMs: 100}, {DurationMs: 250}}}
	if got := s.TotalDurationMs(); got != 350 {
		t.Errorf("expected 350, got %d", got)
	}
}
