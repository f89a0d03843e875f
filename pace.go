package rsvp

// typicalWordFactor is the average difficulty scaling of running English
// prose under the comprehension engine. Used only to estimate a displayed
// words-per-minute figure; it plays no part in frame timing.
const typicalWordFactor = 1.22

// EstimateWPM estimates the effective words-per-minute pace a reader will
// experience under cfg. The estimate is for display and telemetry only.
//
// When TempoMsPerWord is set the estimate derives from it and is strictly
// decreasing in the tempo: a lower per-word time means a higher estimated
// pace. Otherwise the BaseWPM target is reported directly.
func EstimateWPM(cfg Config) float64 {
	if cfg.TempoMsPerWord > 0 {
		perWord := float64(cfg.TempoMsPerWord) * typicalWordFactor
		return 60000.0 / perWord
	}
	if cfg.BaseWPM > 0 {
		return float64(cfg.BaseWPM)
	}
	return 0
}
