package detection

import (
	"errors"
	"time"
)

var (
	// ErrNonPositiveThreshold is returned when a ratio threshold is zero or negative.
	ErrNonPositiveThreshold = errors.New("detection threshold must be positive")
	// ErrNegativeDuration is returned when a duration or cooldown is negative.
	ErrNegativeDuration = errors.New("detection durations must not be negative")
)

// Settings is the immutable value object of detection thresholds a frame
// is evaluated against. Callers may swap the active Settings between
// frames; the state machine receives the latest value on every call.
type Settings struct {
	// EARThreshold is the eye aspect ratio below which the eyes count as closed.
	EARThreshold float64
	// MARThreshold is the mouth aspect ratio above which the mouth counts as open.
	MARThreshold float64
	// DrowsyTime is the continuous eyes-closed duration required for DROWSY.
	DrowsyTime time.Duration
	// YawnTime is the continuous mouth-open duration required for YAWN.
	YawnTime time.Duration
	// AlertCooldown is the minimum gap between emissions of the same event type.
	AlertCooldown time.Duration
}

// Validate rejects invariant violations. Violations are errors,
// never silently clamped.
func (s Settings) Validate() error {
	if s.EARThreshold <= 0 || s.MARThreshold <= 0 {
		return ErrNonPositiveThreshold
	}

	if s.DrowsyTime < 0 || s.YawnTime < 0 || s.AlertCooldown < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// Merge returns a copy of s with every non-zero field of patch applied.
// Zero-valued patch fields leave the current value untouched, which lets
// callers tune a single threshold without restating the rest.
func (s Settings) Merge(patch Settings) Settings {
	merged := s

	if patch.EARThreshold != 0 {
		merged.EARThreshold = patch.EARThreshold
	}

	if patch.MARThreshold != 0 {
		merged.MARThreshold = patch.MARThreshold
	}

	if patch.DrowsyTime != 0 {
		merged.DrowsyTime = patch.DrowsyTime
	}

	if patch.YawnTime != 0 {
		merged.YawnTime = patch.YawnTime
	}

	if patch.AlertCooldown != 0 {
		merged.AlertCooldown = patch.AlertCooldown
	}

	return merged
}
