package rsvp

import (
	"strings"

	"github.com/readpace/rsvp/token"
)

// Engine turns a token sequence into timed frames under a pacing config.
//
// Implementations are pure: identical inputs always produce identical
// frames, and no I/O happens inside GenerateFrames. Engines fail fast on a
// non-positive pacing value and otherwise produce output for any non-empty
// token sequence.
type Engine interface {
	// GenerateFrames builds the frame sequence for toks[startIndex:].
	GenerateFrames(toks []token.Token, startIndex int, cfg Config) ([]Frame, error)

	// BaseTempoMs reports the nominal per-word duration the engine derives
	// from cfg, for display and telemetry.
	BaseTempoMs(cfg Config) float64
}

// frameBuild is a frame under construction. base is the pacing duration
// that ramping (and, in the comprehension engine, smoothing) applies to;
// pause is punctuation time added afterwards so pauses are never scaled or
// clamped away.
type frameBuild struct {
	tokens []token.Token
	base   float64
	pause  float64
}

// rampBoost is how much slower the first ramped frame runs versus nominal.
const rampBoost = 0.8

// hyphenPartPause is the extra pause on the first half of a split word,
// as a fraction of the combined word's nominal duration.
const hyphenPartPause = 0.25

// sliceFrom bounds-checks startIndex against toks.
func sliceFrom(toks []token.Token, startIndex int) []token.Token {
	if startIndex < 0 {
		startIndex = 0
	}
	if startIndex > len(toks) {
		startIndex = len(toks)
	}
	return toks[startIndex:]
}

// splitHyphenated splits an overlong hyphenated word into its two display
// parts, keeping the hyphen on the first part ("self-aware" becomes
// "self-" and "aware"). Numeric tokens are never split: their hyphen-like
// leading rune is a sign, not a joint.
func splitHyphenated(t token.Token, cfg Config) (first, second string, ok bool) {
	if t.Type != token.Word || cfg.MaxChunkLength <= 0 {
		return "", "", false
	}
	if token.IsNumericText(t.Text) {
		return "", "", false
	}
	if token.Length(t.Text) <= cfg.MaxChunkLength {
		return "", "", false
	}
	i := strings.IndexByte(t.Text, '-')
	if i <= 0 || i >= len(t.Text)-1 {
		return "", "", false
	}
	return t.Text[:i+1], t.Text[i+1:], true
}

// partToken derives a display token for one side of a split word. The
// difficulty estimates of the combined word are kept so pacing stays
// consistent across the two frames.
func partToken(t token.Token, text string) token.Token {
	part := t
	part.Text = text
	return part
}

// finalize applies ramp-up/ramp-down scaling to the base durations, folds
// in pauses and start/end delays, and rounds every duration to a strictly
// positive integer.
func finalize(builds []frameBuild, cfg Config) []Frame {
	n := len(builds)
	if n == 0 {
		return nil
	}

	up := cfg.RampUpFrames
	if up > n {
		up = n
	}
	for i := 0; i < up; i++ {
		scale := 1 + rampBoost*float64(up-i)/float64(up)
		builds[i].base *= scale
	}

	down := cfg.RampDownFrames
	if down > n {
		down = n
	}
	for i := 0; i < down; i++ {
		// Frames count back from the end; the last frame is the slowest.
		scale := 1 + rampBoost*float64(i+1)/float64(down)
		builds[n-down+i].base *= scale
	}

	frames := make([]Frame, n)
	for i, b := range builds {
		ms := int(b.base + b.pause + 0.5)
		if ms < 1 {
			ms = 1
		}
		frames[i] = Frame{Tokens: b.tokens, DurationMs: ms}
	}

	if cfg.StartDelayMs > 0 {
		frames[0].DurationMs += cfg.StartDelayMs
	}
	if cfg.EndDelayMs > 0 {
		frames[n-1].DurationMs += cfg.EndDelayMs
	}
	return frames
}
