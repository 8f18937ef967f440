package emitter

import (
	"encoding/json"
	"time"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// eventPayload is the JSON shape shared by the websocket and MQTT sinks.
type eventPayload struct {
	SessionID         string  `json:"session_id"`
	Type              string  `json:"type"`
	OccurredAt        string  `json:"occurred_at"`
	MetricValue       float64 `json:"metric_value"`
	EmotionLabel      string  `json:"emotion_label,omitempty"`
	EmotionConfidence float64 `json:"emotion_confidence,omitempty"`
}

// encodeEvent serializes an event for transport over JSON-speaking sinks.
func encodeEvent(event domain.Event) ([]byte, error) {
	return json.Marshal(eventPayload{
		SessionID:         event.SessionID,
		Type:              string(event.Type),
		OccurredAt:        event.Timestamp.UTC().Format(time.RFC3339Nano),
		MetricValue:       event.MetricValue,
		EmotionLabel:      event.EmotionLabel,
		EmotionConfidence: event.EmotionConfidence,
	})
}
