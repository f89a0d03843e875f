package rsvp

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Config holds every pacing option recognized by the engine family.
// It is a plain immutable value: copy it, change fields, pass it on.
// Two configs with identical field values fingerprint identically.
//
// The two engines read different base-pacing conventions: ThroughputEngine
// uses BaseWPM (words per minute), ComprehensionEngine uses TempoMsPerWord
// (milliseconds per word). Both fields are always carried so one config
// value can drive either engine.
type Config struct {
	// BaseWPM is the words-per-minute target for ThroughputEngine.
	BaseWPM int
	// TempoMsPerWord is the nominal per-word duration for
	// ComprehensionEngine, in milliseconds.
	TempoMsPerWord int

	// WordsPerFrame is the maximum words chunked into one frame when
	// PhraseChunking is enabled.
	WordsPerFrame int
	// MaxChunkLength bounds the character (grapheme) length of a frame's
	// text; longer hyphenated words are split across two frames.
	MaxChunkLength int

	// LongWordMinMs floors the duration of any word of at least
	// LongWordChars characters, regardless of tempo.
	LongWordMinMs int
	// LongWordChars is the length threshold for the long-word floor.
	LongWordChars int

	// SentenceEndPauseMs is added after sentence-ending punctuation.
	SentenceEndPauseMs int
	// ClausePauseMs is added after clause punctuation (comma, semicolon,
	// colon, dash) when ClausePausing is enabled.
	ClausePauseMs int

	// ParentheticalMultiplier slows tokens inside a parenthetical span.
	ParentheticalMultiplier float64
	// ParenthesesPauseMs is added at the parenthesis characters themselves.
	ParenthesesPauseMs int

	// StartDelayMs and EndDelayMs lengthen the first and last frame.
	StartDelayMs int
	EndDelayMs   int

	// RampUpFrames and RampDownFrames scale the leading and trailing
	// frames toward slower durations, tapering linearly to nominal.
	RampUpFrames   int
	RampDownFrames int

	// SmoothingAlpha controls exponential rhythm smoothing in
	// ComprehensionEngine: 1 means no inertia from the previous frame,
	// lower values smooth harder.
	SmoothingAlpha float64
	// MaxSpeedupFactor and MaxSlowdownFactor clamp the ratio between
	// consecutive frame durations.
	MaxSpeedupFactor  float64
	MaxSlowdownFactor float64

	// Feature toggles.
	AdaptiveTiming    bool
	ClausePausing     bool
	DialogueDetection bool
	PhraseChunking    bool
}

// DefaultConfig returns the tuning used by the reference reader.
func DefaultConfig() Config {
	return Config{
		BaseWPM:        300,
		TempoMsPerWord: 180,

		WordsPerFrame:  1,
		MaxChunkLength: 13,

		LongWordMinMs: 260,
		LongWordChars: 9,

		SentenceEndPauseMs: 280,
		ClausePauseMs:      140,

		ParentheticalMultiplier: 1.15,
		ParenthesesPauseMs:      60,

		StartDelayMs: 400,
		EndDelayMs:   300,

		RampUpFrames:   4,
		RampDownFrames: 3,

		SmoothingAlpha:    0.7,
		MaxSpeedupFactor:  1.8,
		MaxSlowdownFactor: 2.2,

		AdaptiveTiming: true,
		ClausePausing:  true,
	}
}

// Fingerprint returns a deterministic structural hash of the config.
// It is the configuration component of frame-cache keys: configs that
// differ in any option never share a cache entry. FNV-1a is collision
// resistant enough for in-process memoization; it is not cryptographic.
func (c Config) Fingerprint() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(v)))
		_, _ = h.Write(buf[:])
	}
	writeFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	writeBool := func(v bool) {
		buf[0] = 0
		if v {
			buf[0] = 1
		}
		_, _ = h.Write(buf[:1])
	}

	writeInt(c.BaseWPM)
	writeInt(c.TempoMsPerWord)
	writeInt(c.WordsPerFrame)
	writeInt(c.MaxChunkLength)
	writeInt(c.LongWordMinMs)
	writeInt(c.LongWordChars)
	writeInt(c.SentenceEndPauseMs)
	writeInt(c.ClausePauseMs)
	writeFloat(c.ParentheticalMultiplier)
	writeInt(c.ParenthesesPauseMs)
	writeInt(c.StartDelayMs)
	writeInt(c.EndDelayMs)
	writeInt(c.RampUpFrames)
	writeInt(c.RampDownFrames)
	writeFloat(c.SmoothingAlpha)
	writeFloat(c.MaxSpeedupFactor)
	writeFloat(c.MaxSlowdownFactor)
	writeBool(c.AdaptiveTiming)
	writeBool(c.ClausePausing)
	writeBool(c.DialogueDetection)
	writeBool(c.PhraseChunking)

	return h.Sum64()
}
