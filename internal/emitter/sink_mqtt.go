package emitter

import (
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/oshokin/face-sentinel/internal/config"
	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// ErrMQTTConnectTimeout is returned when the broker does not answer the
// initial connect within the configured timeout.
var ErrMQTTConnectTimeout = errors.New("timed out connecting to MQTT broker")

// disconnectQuiesceMs is how long Disconnect waits for in-flight
// messages before dropping the network connection.
const disconnectQuiesceMs = 250

// MQTTSink publishes events to an MQTT topic so home-automation
// consumers can react to them (dim a lamp, sound a speaker). Publishes
// use QoS 0: alerts are time-sensitive and a replayed stale alert has
// negative value.
type MQTTSink struct {
	client mqtt.Client
	topic  string
}

// NewMQTTSink connects to the broker and returns the sink.
func NewMQTTSink(cfg *config.MQTT, timeout time.Duration) (*MQTTSink, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetConnectTimeout(timeout).
		SetAutoReconnect(true)

	client := mqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, ErrMQTTConnectTimeout
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker at %s: %w", cfg.BrokerURL, err)
	}

	return &MQTTSink{
		client: client,
		topic:  cfg.Topic,
	}, nil
}

// Name implements Sink.
func (s *MQTTSink) Name() string {
	return "mqtt"
}

// Emit implements Sink.
func (s *MQTTSink) Emit(event domain.Event) error {
	payload, err := encodeEvent(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	token := s.client.Publish(s.topic, 0, false, payload)
	token.Wait()

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", s.topic, err)
	}

	return nil
}

// Close implements Sink.
func (s *MQTTSink) Close() error {
	s.client.Disconnect(disconnectQuiesceMs)

	return nil
}
