package emitter

import (
	"fmt"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// Broadcaster is the websocket hub surface the sink depends on.
type Broadcaster interface {
	Broadcast(message []byte)
}

// HubSink pushes events to the websocket hub as JSON, so dashboard
// clients see alerts in real time.
type HubSink struct {
	hub Broadcaster
}

// NewHubSink returns a sink broadcasting through the given hub.
func NewHubSink(hub Broadcaster) *HubSink {
	return &HubSink{hub: hub}
}

// Name implements Sink.
func (s *HubSink) Name() string {
	return "websocket"
}

// Emit implements Sink.
func (s *HubSink) Emit(event domain.Event) error {
	payload, err := encodeEvent(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	s.hub.Broadcast(payload)

	return nil
}

// Close implements Sink.
func (s *HubSink) Close() error {
	return nil
}
