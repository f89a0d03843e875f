package rsvp

import (
	"github.com/readpace/rsvp/token"
)

// ThroughputEngine paces by a words-per-minute target. It is the simpler,
// faster strategy: every word gets the same nominal duration
// (60000/BaseWPM ms) plus punctuation pauses, with optional feature gates
// for adaptive timing, clause pausing, dialogue detection, and phrase
// chunking. With all gates off, timing is the pure nominal value plus
// sentence pauses only.
type ThroughputEngine struct{}

// NewThroughputEngine returns the throughput-oriented engine.
func NewThroughputEngine() *ThroughputEngine { return &ThroughputEngine{} }

// BaseTempoMs returns the nominal per-word duration for cfg.
func (e *ThroughputEngine) BaseTempoMs(cfg Config) float64 {
	if cfg.BaseWPM <= 0 {
		return 0
	}
	return 60000.0 / float64(cfg.BaseWPM)
}

// dialogueSlowdown is the multiplier applied inside quoted speech when
// dialogue detection is enabled.
const dialogueSlowdown = 1.1

// GenerateFrames implements Engine.
func (e *ThroughputEngine) GenerateFrames(toks []token.Token, startIndex int, cfg Config) ([]Frame, error) {
	if cfg.BaseWPM <= 0 {
		return nil, &InvalidConfigError{Field: "BaseWPM", Value: cfg.BaseWPM}
	}
	toks = sliceFrom(toks, startIndex)
	if len(toks) == 0 {
		return nil, nil
	}

	nominal := 60000.0 / float64(cfg.BaseWPM)

	wordsPerFrame := 1
	if cfg.PhraseChunking && cfg.WordsPerFrame > 1 {
		wordsPerFrame = cfg.WordsPerFrame
	}

	var builds []frameBuild

	// Chunk under construction plus punctuation waiting for the next frame.
	var chunk []token.Token
	var chunkDur float64
	var chunkWords int
	var chunkLen int
	var lead []token.Token
	var leadPause float64

	inDialogue := false

	flush := func() {
		if len(chunk) == 0 {
			return
		}
		builds = append(builds, frameBuild{tokens: chunk, base: chunkDur})
		chunk, chunkDur, chunkWords, chunkLen = nil, 0, 0, 0
	}
	open := func(t token.Token, d float64) {
		if len(lead) > 0 {
			chunk = append(chunk, lead...)
			chunkDur += leadPause
			lead, leadPause = nil, 0
		}
		chunk = append(chunk, t)
		chunkDur += d
		chunkWords++
		chunkLen += token.Length(t.Text)
	}

	for _, t := range toks {
		switch t.Type {
		case token.PageBreak:
			flush()
			builds = append(builds, frameBuild{
				tokens: []token.Token{t},
				base:   nominal * 2,
				pause:  float64(cfg.SentenceEndPauseMs),
			})

		case token.Punct:
			if cfg.DialogueDetection && token.IsQuote(t) {
				inDialogue = !inDialogue
			}
			pause := 0.0
			endsChunk := false
			switch {
			case token.IsSentenceEnd(t):
				pause = float64(cfg.SentenceEndPauseMs)
				endsChunk = true
			case token.IsClauseBreak(t):
				if cfg.ClausePausing {
					pause = float64(cfg.ClausePauseMs)
				}
				endsChunk = true
			}
			switch {
			case len(chunk) > 0:
				chunk = append(chunk, t)
				chunkDur += pause
				if endsChunk {
					flush()
				}
			case len(builds) > 0:
				last := &builds[len(builds)-1]
				last.tokens = append(last.tokens, t)
				last.pause += pause
			default:
				lead = append(lead, t)
				leadPause += pause
			}

		case token.Word:
			d := nominal
			if cfg.AdaptiveTiming {
				d *= t.Complexity
			}
			if inDialogue {
				d *= dialogueSlowdown
			}
			if token.IsAbbreviation(t) {
				// Abbreviation dot: a fraction of a real sentence pause.
				d += float64(cfg.SentenceEndPauseMs) / 5
			}

			if first, second, ok := splitHyphenated(t, cfg); ok {
				flush()
				builds = append(builds,
					frameBuild{
						tokens: []token.Token{partToken(t, first)},
						base:   d,
						pause:  nominal * hyphenPartPause,
					},
					frameBuild{
						tokens: []token.Token{partToken(t, second)},
						base:   d,
					},
				)
				continue
			}

			if chunkWords >= wordsPerFrame ||
				(cfg.MaxChunkLength > 0 && chunkLen+token.Length(t.Text) > cfg.MaxChunkLength && chunkWords > 0) {
				flush()
			}
			open(t, d)
		}
	}
	flush()

	if len(builds) == 0 && len(lead) > 0 {
		// Punctuation-only input still produces one frame.
		builds = append(builds, frameBuild{tokens: lead, base: nominal, pause: leadPause})
	}

	return finalize(builds, cfg), nil
}
