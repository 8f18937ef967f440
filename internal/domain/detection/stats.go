package detection

import "time"

// Stats summarizes one detection session for persistence and reporting.
type Stats struct {
	// SessionID is the session's unique handle.
	SessionID string
	// Backend names the landmark index scheme the session ran with.
	Backend string
	// StartedAt is when the session was created.
	StartedAt time.Time
	// EndedAt is when the session was stopped; zero while running.
	EndedAt time.Time
	// FramesProcessed counts every frame fed to the session.
	FramesProcessed uint64
	// FramesWithoutFace counts frames that carried no detected face.
	FramesWithoutFace uint64
	// DrowsyEvents counts emitted DROWSY events.
	DrowsyEvents uint64
	// YawnEvents counts emitted YAWN events.
	YawnEvents uint64
}

// Clone returns an independent copy of the stats.
func (s *Stats) Clone() *Stats {
	if s == nil {
		return nil
	}

	clone := *s

	return &clone
}
