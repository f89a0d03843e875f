package token

import (
	"github.com/go-text/typesetting/segmenter"
)

// Length returns the number of user-perceived characters (grapheme
// clusters) in s. All character thresholds in the pacing configuration
// (long-word floors, chunk limits) are measured in graphemes, so a word
// with combining accents is not penalized for its byte length.
func Length(s string) int {
	if s == "" {
		return 0
	}
	// Fast path: pure ASCII has one grapheme per byte.
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return len(s)
	}

	var seg segmenter.Segmenter
	seg.Init([]rune(s))
	iter := seg.GraphemeIterator()
	n := 0
	for iter.Next() {
		n++
	}
	return n
}
