package emitter

import (
	"context"

	"github.com/oshokin/face-sentinel/internal/logger"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// LogSink records every event in the structured log. It doubles as the
// audit trail: the log line carries everything the event does.
type LogSink struct {
	ctx context.Context
}

// NewLogSink returns a sink logging through the given context's logger.
func NewLogSink(ctx context.Context) *LogSink {
	return &LogSink{ctx: ctx}
}

// Name implements Sink.
func (s *LogSink) Name() string {
	return "log"
}

// Emit implements Sink.
func (s *LogSink) Emit(event domain.Event) error {
	logger.InfoKV(s.ctx, "detection event",
		"session_id", event.SessionID,
		"event_type", event.Type,
		"occurred_at", event.Timestamp,
		"metric_value", event.MetricValue,
		"emotion_label", event.EmotionLabel,
		"emotion_confidence", event.EmotionConfidence)

	return nil
}

// Close implements Sink.
func (s *LogSink) Close() error {
	return nil
}
