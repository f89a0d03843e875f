package rsvp

import "errors"

// Sentinel errors for rsvp package.
var (
	// ErrInvalidPacing is returned when a config carries a non-positive
	// pacing value (BaseWPM or TempoMsPerWord, depending on the engine).
	// Pacing is never silently clamped.
	ErrInvalidPacing = errors.New("rsvp: pacing value must be positive")
)

// InvalidConfigError reports which config field rejected a value.
type InvalidConfigError struct {
	Field string
	Value int
}

func (e *InvalidConfigError) Error() string {
	return "rsvp: invalid config field " + e.Field
}

// Unwrap makes InvalidConfigError match ErrInvalidPacing in errors.Is.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidPacing }
