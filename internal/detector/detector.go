package detector

import (
	"time"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// channelInput bundles everything one detection channel needs for a frame.
// The eye and mouth channels run the same temporal logic with different
// inputs, so the logic exists exactly once.
type channelInput struct {
	// eventType is emitted when the channel fires.
	eventType domain.EventType
	// conditionMet is the per-frame threshold comparison result
	// (EAR below threshold, MAR above threshold).
	conditionMet bool
	// metricValue is the ratio backing the event.
	metricValue float64
	// holdFor is the continuous duration required before the channel activates.
	holdFor time.Duration
	// cooldown is the minimum gap between two emissions.
	cooldown time.Duration
}

// Process advances the temporal state machine by one frame. It mutates
// state in place and returns the events emitted for this frame: zero,
// one, or both of DROWSY and YAWN. The channels are independent, so
// simultaneous events are legal.
//
// Process is a pure function of (metrics, settings, now, state): the
// caller supplies the frame timestamp explicitly, which keeps the machine
// deterministic under simulated clocks. It must be invoked by exactly one
// driver loop per state instance, one frame at a time.
//
// A nil metrics value means no face was detected this frame. Face loss
// clears both accumulation clocks: the lost frames count as "condition
// not met", never as a frozen clock, so no duration survives the gap.
func Process(
	metrics *domain.FrameMetrics,
	settings domain.Settings,
	now time.Time,
	state *domain.TemporalState,
) []domain.Event {
	if state == nil {
		return nil
	}

	if metrics == nil {
		state.ClearOnsets()

		return nil
	}

	var events []domain.Event

	eye := channelInput{
		eventType:    domain.EventDrowsy,
		conditionMet: metrics.EAR < settings.EARThreshold,
		metricValue:  metrics.EAR,
		holdFor:      settings.DrowsyTime,
		cooldown:     settings.AlertCooldown,
	}
	if event, emitted := advance(eye, now, &state.EyesClosedSince, &state.LastDrowsyAlertAt); emitted {
		events = append(events, decorate(event, metrics))
	}

	mouth := channelInput{
		eventType:    domain.EventYawn,
		conditionMet: metrics.MAR > settings.MARThreshold,
		metricValue:  metrics.MAR,
		holdFor:      settings.YawnTime,
		cooldown:     settings.AlertCooldown,
	}
	if event, emitted := advance(mouth, now, &state.MouthOpenSince, &state.LastYawnAlertAt); emitted {
		events = append(events, decorate(event, metrics))
	}

	return events
}

// advance runs one channel through the Idle/Accumulating/Alerting step
// for a single frame.
//
// Idle -> Accumulating on condition-true (onset). Accumulating -> Idle on
// any condition-false frame: a single recovered frame fully resets the
// clock, there are no grace frames. Accumulating -> Alerting once the
// condition has held for holdFor. While Alerting, the channel re-emits
// whenever the cooldown has elapsed since the last emission, so a
// sustained episode keeps alerting instead of going silent after the
// first event.
func advance(
	in channelInput,
	now time.Time,
	since **time.Time,
	lastAlertAt *time.Time,
) (domain.Event, bool) {
	if !in.conditionMet {
		*since = nil

		return domain.Event{}, false
	}

	if *since == nil {
		onset := now
		*since = &onset

		return domain.Event{}, false
	}

	if now.Sub(**since) < in.holdFor {
		// Still accumulating toward the duration requirement.
		return domain.Event{}, false
	}

	// Active. Duration and cooldown gate independently: the duration
	// requirement suppresses blinks and twitches, the cooldown suppresses
	// alert spam while the condition keeps holding.
	if now.Sub(*lastAlertAt) <= in.cooldown {
		return domain.Event{}, false
	}

	*lastAlertAt = now

	return domain.Event{
		Type:        in.eventType,
		Timestamp:   now,
		MetricValue: in.metricValue,
	}, true
}

// decorate attaches the frame's emotion summary to an emitted event.
func decorate(event domain.Event, metrics *domain.FrameMetrics) domain.Event {
	event.EmotionLabel = metrics.Emotion.Label
	event.EmotionConfidence = metrics.Emotion.Confidence

	return event
}
