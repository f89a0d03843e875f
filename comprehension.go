package rsvp

import (
	"github.com/readpace/rsvp/token"
)

// ComprehensionEngine paces by a per-word tempo scaled with word
// difficulty. Each word's duration grows with its syllable count, rarity,
// and complexity multiplier; long words are floored so they never flash by
// at extreme pacing; parenthetical asides slow down; and consecutive frame
// durations are rhythm-smoothed so the pace never lurches.
type ComprehensionEngine struct{}

// NewComprehensionEngine returns the comprehension-oriented engine.
func NewComprehensionEngine() *ComprehensionEngine { return &ComprehensionEngine{} }

// BaseTempoMs returns the nominal per-word duration for cfg.
func (e *ComprehensionEngine) BaseTempoMs(cfg Config) float64 {
	return float64(cfg.TempoMsPerWord)
}

// Difficulty scaling: one extra syllable adds 12% and, on rare words, the
// frequency factor reaches 1.35.
const (
	syllableWeight  = 0.12
	rarityWeight    = 0.35
	pageBreakFactor = 2.0
)

// GenerateFrames implements Engine.
func (e *ComprehensionEngine) GenerateFrames(toks []token.Token, startIndex int, cfg Config) ([]Frame, error) {
	if cfg.TempoMsPerWord <= 0 {
		return nil, &InvalidConfigError{Field: "TempoMsPerWord", Value: cfg.TempoMsPerWord}
	}
	toks = sliceFrom(toks, startIndex)
	if len(toks) == 0 {
		return nil, nil
	}

	tempo := float64(cfg.TempoMsPerWord)
	builds := make([]frameBuild, 0, len(toks))

	// Punctuation preceding the first word of a frame (open parens,
	// opening quotes) rides along with that frame.
	var lead []token.Token
	var leadPause float64

	parenDepth := 0

	appendBuild := func(b frameBuild) {
		if len(lead) > 0 {
			b.tokens = append(append([]token.Token{}, lead...), b.tokens...)
			b.pause += leadPause
			lead, leadPause = nil, 0
		}
		builds = append(builds, b)
	}
	attachBack := func(t token.Token, pause float64) {
		if len(builds) == 0 {
			lead = append(lead, t)
			leadPause += pause
			return
		}
		last := &builds[len(builds)-1]
		last.tokens = append(last.tokens, t)
		last.pause += pause
	}

	for _, t := range toks {
		switch t.Type {
		case token.PageBreak:
			appendBuild(frameBuild{
				tokens: []token.Token{t},
				base:   tempo * pageBreakFactor,
				pause:  float64(cfg.SentenceEndPauseMs),
			})

		case token.Punct:
			switch {
			case token.IsOpenParen(t):
				parenDepth++
				lead = append(lead, t)
				leadPause += float64(cfg.ParenthesesPauseMs)
			case token.IsCloseParen(t):
				if parenDepth > 0 {
					parenDepth--
				}
				attachBack(t, float64(cfg.ParenthesesPauseMs))
			case token.IsSentenceEnd(t):
				attachBack(t, float64(cfg.SentenceEndPauseMs))
			case token.IsClauseBreak(t):
				pause := 0.0
				if cfg.ClausePausing {
					pause = float64(cfg.ClausePauseMs)
				}
				attachBack(t, pause)
			default:
				// Quotes and stray symbols ride along without a pause.
				attachBack(t, 0)
			}

		case token.Word:
			raw := tempo * wordFactor(t)
			if parenDepth > 0 && cfg.ParentheticalMultiplier > 0 {
				raw *= cfg.ParentheticalMultiplier
			}
			pause := 0.0
			if token.IsAbbreviation(t) {
				pause = float64(cfg.SentenceEndPauseMs) / 5
			}

			if first, second, ok := splitHyphenated(t, cfg); ok {
				half := raw / 2
				appendBuild(frameBuild{
					tokens: []token.Token{partToken(t, first)},
					base:   half,
					pause:  raw * hyphenPartPause,
				})
				appendBuild(frameBuild{
					tokens: []token.Token{partToken(t, second)},
					base:   half,
					pause:  pause,
				})
				continue
			}

			appendBuild(frameBuild{tokens: []token.Token{t}, base: raw, pause: pause})
		}
	}

	if len(builds) == 0 && len(lead) > 0 {
		builds = append(builds, frameBuild{tokens: lead, base: tempo, pause: leadPause})
	}

	smooth(builds, cfg)

	return finalize(builds, cfg), nil
}

// wordFactor scales the tempo by the token's difficulty estimates.
// Always >= 1 for a neutral word.
func wordFactor(t token.Token) float64 {
	f := 1.0
	if t.Syllables > 1 {
		f += syllableWeight * float64(t.Syllables-1)
	}
	freq := t.Frequency
	if freq < 0 {
		freq = 0
	} else if freq > 1 {
		freq = 1
	}
	f += rarityWeight * (1 - freq)
	if t.Complexity > 1 {
		f *= t.Complexity
	}
	return f
}

// smooth applies exponential rhythm smoothing and the speedup/slowdown
// clamp to the base durations, then the long-word floor. Pauses are not
// touched: they are added after smoothing so a sentence pause stays
// perceptible at any pacing rate.
func smooth(builds []frameBuild, cfg Config) {
	alpha := cfg.SmoothingAlpha
	if alpha <= 0 || alpha > 1 {
		alpha = 1
	}

	var prev float64
	for i := range builds {
		d := builds[i].base
		if i > 0 {
			d = alpha*builds[i].base + (1-alpha)*prev
			if cfg.MaxSpeedupFactor > 1 {
				if floor := prev / cfg.MaxSpeedupFactor; d < floor {
					d = floor
				}
			}
			if cfg.MaxSlowdownFactor > 1 {
				if ceil := prev * cfg.MaxSlowdownFactor; d > ceil {
					d = ceil
				}
			}
		}
		if isLongWordFrame(builds[i], cfg) && d < float64(cfg.LongWordMinMs) {
			d = float64(cfg.LongWordMinMs)
		}
		builds[i].base = d
		prev = d
	}
}

// isLongWordFrame reports whether the frame displays a word at or above
// the long-word character threshold.
func isLongWordFrame(b frameBuild, cfg Config) bool {
	if cfg.LongWordChars <= 0 || cfg.LongWordMinMs <= 0 {
		return false
	}
	for _, t := range b.tokens {
		if t.Type == token.Word && token.Length(t.Text) >= cfg.LongWordChars {
			return true
		}
	}
	return false
}
