package detection

import "time"

// EventType identifies a behavioral event. The string value is the
// literal token of the textual event line protocol.
type EventType string

const (
	// EventDrowsy is emitted when the eyes stay closed past the drowsy time.
	EventDrowsy EventType = "DROWSY"
	// EventYawn is emitted when the mouth stays open past the yawn time.
	EventYawn EventType = "YAWN"
)

// Event is a debounced, cooldown-gated behavioral event produced by the
// temporal state machine. All gating happens before an Event exists;
// sinks forward events as-is without filtering or deduplication.
type Event struct {
	// SessionID identifies the detection session that produced the event.
	SessionID string
	// Type is DROWSY or YAWN.
	Type EventType
	// Timestamp is the frame time the event fired at.
	Timestamp time.Time
	// MetricValue is the supporting ratio: the EAR for DROWSY, the MAR for YAWN.
	MetricValue float64
	// EmotionLabel is the dominant emotion at emission time.
	EmotionLabel string
	// EmotionConfidence is the dominant emotion's raw score.
	EmotionConfidence float64
}
