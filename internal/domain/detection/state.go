package detection

import "time"

// TemporalState is the mutable per-session accumulator of the temporal
// state machine. Exactly one driver loop mutates it, one frame at a time;
// it is never shared across sessions or faces.
type TemporalState struct {
	// EyesClosedSince is the onset of the current continuous below-threshold
	// EAR run. Nil whenever any frame since then was above threshold or no
	// face was detected: a single recovered frame fully resets the clock.
	EyesClosedSince *time.Time
	// MouthOpenSince is the analogous onset for the above-threshold MAR run.
	MouthOpenSince *time.Time
	// LastDrowsyAlertAt is when a DROWSY event was last actually emitted.
	LastDrowsyAlertAt time.Time
	// LastYawnAlertAt is when a YAWN event was last actually emitted.
	LastYawnAlertAt time.Time
}

// NewTemporalState returns the initial state a fresh session starts with:
// both channels idle, no prior alerts.
func NewTemporalState() *TemporalState {
	return &TemporalState{}
}

// Reset returns the state to its initial session-start value.
func (s *TemporalState) Reset() {
	*s = TemporalState{}
}

// ClearOnsets drops both accumulation clocks. Called on face loss: a lost
// face means "condition not met", not a frozen clock, so no duration
// survives the gap.
func (s *TemporalState) ClearOnsets() {
	s.EyesClosedSince = nil
	s.MouthOpenSince = nil
}

// EyesClosedFor reports how long the eyes have been continuously closed as
// of now. Zero when the eye channel is idle. The value grows from onset
// regardless of the alert gate, so telemetry can show sub-threshold
// accumulation.
func (s *TemporalState) EyesClosedFor(now time.Time) time.Duration {
	if s.EyesClosedSince == nil {
		return 0
	}

	return now.Sub(*s.EyesClosedSince)
}

// MouthOpenFor reports how long the mouth has been continuously open as of now.
func (s *TemporalState) MouthOpenFor(now time.Time) time.Duration {
	if s.MouthOpenSince == nil {
		return 0
	}

	return now.Sub(*s.MouthOpenSince)
}

// Clone returns a copy of the state to avoid leaking internal references.
func (s *TemporalState) Clone() *TemporalState {
	if s == nil {
		return nil
	}

	cloned := *s

	if s.EyesClosedSince != nil {
		t := *s.EyesClosedSince
		cloned.EyesClosedSince = &t
	}

	if s.MouthOpenSince != nil {
		t := *s.MouthOpenSince
		cloned.MouthOpenSince = &t
	}

	return &cloned
}
