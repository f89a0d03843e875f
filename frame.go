package rsvp

import (
	"strings"

	"github.com/readpace/rsvp/token"
)

// Frame is one timed display unit: the tokens shown together and how long
// they stay on screen. A frame may hold one token, a sub-span of a
// hyphenated token, or several chunked tokens.
type Frame struct {
	// Tokens are shown together, in order.
	Tokens []token.Token
	// DurationMs is always a strictly positive integer.
	DurationMs int
}

// Text renders the frame's display text. Punctuation attaches without a
// leading space, and opening marks attach to the word that follows them.
func (f Frame) Text() string {
	var b strings.Builder
	sawWord := false
	afterOpener := false
	for _, t := range f.Tokens {
		if t.Type == token.PageBreak {
			continue
		}
		if b.Len() > 0 && t.Type != token.Punct && !afterOpener {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
		if t.Type == token.Punct {
			afterOpener = isOpeningMark(t.Text) || (!sawWord && isStraightQuote(t.Text))
		} else {
			afterOpener = false
			sawWord = true
		}
	}
	return b.String()
}

// isOpeningMark matches punctuation that always opens a span.
func isOpeningMark(s string) bool {
	switch s {
	case "(", "[", "{", "“", "‘", "«", "¡", "¿":
		return true
	}
	return false
}

// Straight quotes are direction-ambiguous; before the frame's first word
// they open, after it they close.
func isStraightQuote(s string) bool {
	return s == `"` || s == "'"
}

// IsPageBreak reports whether the frame marks a page or scene boundary.
func (f Frame) IsPageBreak() bool {
	return len(f.Tokens) == 1 && f.Tokens[0].Type == token.PageBreak
}

// FrameSet is the cached unit of work: the full frame sequence for one
// chapter under one config, immutable once constructed.
type FrameSet struct {
	// Frames in display order.
	Frames []Frame
	// BaseTempoMs is the nominal per-word duration the set was built
	// with, for display and telemetry.
	BaseTempoMs float64
}

// TotalDurationMs sums all frame durations.
func (s *FrameSet) TotalDurationMs() int {
	total := 0
	for _, f := range s.Frames {
		total += f.DurationMs
	}
	return total
}
