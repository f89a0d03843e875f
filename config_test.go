package rsvp

import "testing"

func TestFingerprintEqualValues(t *testing.T) {
	a := DefaultConfig()
	b := DefaultConfig()
	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("identical configs must fingerprint identically")
	}
}

func TestFingerprintSensitivity(t *testing.T) {
	base := DefaultConfig()
	fp := base.Fingerprint()

	variants := []func(*Config){
		func(c *Config) { c.BaseWPM++ },
		func(c *Config) { c.TempoMsPerWord++ },
		func(c *Config) { c.MaxChunkLength++ },
		func(c *Config) { c.LongWordMinMs++ },
		func(c *Config) { c.SentenceEndPauseMs++ },
		func(c *Config) { c.ParentheticalMultiplier += 0.01 },
		func(c *Config) { c.SmoothingAlpha += 0.01 },
		func(c *Config) { c.AdaptiveTiming = !c.AdaptiveTiming },
		func(c *Config) { c.PhraseChunking = !c.PhraseChunking },
	}
	for i, mutate := range variants {
		c := DefaultConfig()
		mutate(&c)
		if c.Fingerprint() == fp {
			t.Errorf("variant %d: differing config produced identical fingerprint", i)
		}
	}
}

func TestFingerprintStable(t *testing.T) {
	c := DefaultConfig()
	if c.Fingerprint() != c.Fingerprint() {
		t.Errorf("fingerprint must be deterministic")
	}
}
