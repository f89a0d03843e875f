// Package rsvp converts tokenized chapter text into timed display frames for
// rapid serial visual presentation (speed reading).
//
// # Overview
//
// An RSVP reader shows one small unit of text at a time, each for a computed
// duration. This package provides the timing core: two interchangeable pacing
// engines behind one interface, a shared frame/config data model, and a
// words-per-minute estimator for display purposes.
//
// # Quick Start
//
//	import (
//	    "github.com/readpace/rsvp"
//	    "github.com/readpace/rsvp/token"
//	)
//
//	toks := token.Tokenize("It was a dark and stormy night.")
//	cfg := rsvp.DefaultConfig()
//
//	eng := rsvp.NewComprehensionEngine()
//	frames, err := eng.GenerateFrames(toks, 0, cfg)
//
// # Engines
//
// Two strategies implement the Engine interface:
//   - ThroughputEngine paces by a words-per-minute target (Config.BaseWPM)
//     and supports chunking several words into one frame.
//   - ComprehensionEngine paces by a per-word tempo (Config.TempoMsPerWord)
//     scaled by word difficulty, with rhythm smoothing so consecutive frame
//     durations never change abruptly.
//
// Both are pure: identical inputs always produce identical frames.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Config, Frame, FrameSet, Engine, EstimateWPM
//   - token: text normalization and tokenization
//   - frames: caching and request coalescing around engine invocation
//   - chapter: a reference in-memory chapter store (token source)
//
// # Logging
//
// The library is silent by default. Call SetLogger to enable diagnostics.
package rsvp

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
