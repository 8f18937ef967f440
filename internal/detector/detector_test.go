package detector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// testSettings mirrors the thresholds the detector ships with.
func testSettings() domain.Settings {
	return domain.Settings{
		EARThreshold:  0.22,
		MARThreshold:  0.6,
		DrowsyTime:    2 * time.Second,
		YawnTime:      time.Second,
		AlertCooldown: 3 * time.Second,
	}
}

// frameStep is the simulated frame interval used by the scenario tests.
const frameStep = 50 * time.Millisecond

// feed advances the machine by one frame with the given ratios.
func feed(state *domain.TemporalState, settings domain.Settings, at time.Time, ear, mar float64) []domain.Event {
	metrics := &domain.FrameMetrics{
		EAR: ear,
		MAR: mar,
		Emotion: domain.Emotion{
			Label:      "neutral",
			Confidence: 0.8,
		},
	}

	return Process(metrics, settings, at, state)
}

// TestDrowsy_FiresOnceAfterHoldTime covers the scenario: EAR constant at
// 0.15 for 3 s fires exactly one DROWSY at about 2 s, with the exposed
// duration growing continuously from onset.
func TestDrowsy_FiresOnceAfterHoldTime(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		start    = time.Unix(1000, 0)
		events   []domain.Event
	)

	for at := start; at.Sub(start) <= 3*time.Second; at = at.Add(frameStep) {
		frameEvents := feed(state, settings, at, 0.15, 0.2)
		events = append(events, frameEvents...)

		// Duration telemetry grows from onset regardless of the alert gate.
		require.Equal(t, at.Sub(start), state.EyesClosedFor(at))
	}

	require.Len(t, events, 1)
	require.Equal(t, domain.EventDrowsy, events[0].Type)
	require.Equal(t, 0.15, events[0].MetricValue)
	require.Equal(t, "neutral", events[0].EmotionLabel)

	// Never earlier than the duration requirement.
	require.Equal(t, settings.DrowsyTime, events[0].Timestamp.Sub(start))
}

// TestDrowsy_ReAlertsAfterCooldown verifies a sustained episode re-fires
// with inter-emission gaps above the cooldown.
func TestDrowsy_ReAlertsAfterCooldown(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		start    = time.Unix(2000, 0)
		events   []domain.Event
	)

	for at := start; at.Sub(start) <= 10*time.Second; at = at.Add(frameStep) {
		events = append(events, feed(state, settings, at, 0.1, 0.2)...)
	}

	require.GreaterOrEqual(t, len(events), 2)

	for i := 1; i < len(events); i++ {
		gap := events[i].Timestamp.Sub(events[i-1].Timestamp)
		require.Greater(t, gap, settings.AlertCooldown)
	}

	// No second event inside the cooldown window after the first at ~2 s.
	require.Greater(t, events[1].Timestamp.Sub(start), 5*time.Second)
}

// TestDrowsy_SingleRecoveryResetsAccumulation: one above-threshold frame
// clears the clock and the next run needs the full hold time again.
func TestDrowsy_SingleRecoveryResetsAccumulation(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		at       = time.Unix(3000, 0)
		events   []domain.Event
	)

	// 1.9 s below threshold: not enough to fire.
	for elapsed := time.Duration(0); elapsed < 1900*time.Millisecond; elapsed += frameStep {
		events = append(events, feed(state, settings, at, 0.15, 0.2)...)
		at = at.Add(frameStep)
	}

	require.Empty(t, events)

	// A single recovered frame resets the onset.
	events = append(events, feed(state, settings, at, 0.3, 0.2)...)
	at = at.Add(frameStep)
	require.Empty(t, events)
	require.Nil(t, state.EyesClosedSince)

	// The next below-threshold run gets no credit from the first one.
	newOnset := at

	for elapsed := time.Duration(0); elapsed < 1900*time.Millisecond; elapsed += frameStep {
		events = append(events, feed(state, settings, at, 0.15, 0.2)...)
		at = at.Add(frameStep)
	}

	require.Empty(t, events)

	// Crossing the full hold time relative to the new onset fires.
	for at.Sub(newOnset) <= settings.DrowsyTime {
		events = append(events, feed(state, settings, at, 0.15, 0.2)...)
		at = at.Add(frameStep)
	}

	require.Len(t, events, 1)
	require.GreaterOrEqual(t, events[0].Timestamp.Sub(newOnset), settings.DrowsyTime)
}

// TestFaceLoss_ClearsAccumulatedDuration: even a one-frame gap discards
// the accumulated duration entirely.
func TestFaceLoss_ClearsAccumulatedDuration(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		at       = time.Unix(4000, 0)
	)

	// Keep the run under both hold times so nothing fires yet.
	for elapsed := time.Duration(0); elapsed < 900*time.Millisecond; elapsed += frameStep {
		require.Empty(t, feed(state, settings, at, 0.15, 0.9))
		at = at.Add(frameStep)
	}

	require.NotNil(t, state.EyesClosedSince)
	require.NotNil(t, state.MouthOpenSince)

	// One frame without a face.
	require.Empty(t, Process(nil, settings, at, state))
	require.Nil(t, state.EyesClosedSince)
	require.Nil(t, state.MouthOpenSince)
	at = at.Add(frameStep)

	// The face reappears: duration restarts strictly from the new onset.
	require.Empty(t, feed(state, settings, at, 0.15, 0.2))
	reappeared := at
	at = at.Add(frameStep)
	require.Equal(t, frameStep, state.EyesClosedFor(at))
	require.Equal(t, reappeared, *state.EyesClosedSince)
}

// TestDrowsy_OscillationNeverFires: EAR flipping between 0.10 and 0.30
// every 0.5 s never sustains the hold time, so zero events in 10 s.
func TestDrowsy_OscillationNeverFires(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		start    = time.Unix(5000, 0)
		events   []domain.Event
	)

	for at := start; at.Sub(start) <= 10*time.Second; at = at.Add(frameStep) {
		ear := 0.10
		if (at.Sub(start)/(500*time.Millisecond))%2 == 1 {
			ear = 0.30
		}

		events = append(events, feed(state, settings, at, ear, 0.2)...)
	}

	require.Empty(t, events)
}

// TestYawn_FiresAfterHoldTime covers the scenario: MAR at 0.9 for 1.5 s
// fires exactly one YAWN at about 1.0 s.
func TestYawn_FiresAfterHoldTime(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		start    = time.Unix(6000, 0)
		events   []domain.Event
	)

	for at := start; at.Sub(start) <= 1500*time.Millisecond; at = at.Add(frameStep) {
		events = append(events, feed(state, settings, at, 0.3, 0.9)...)
	}

	require.Len(t, events, 1)
	require.Equal(t, domain.EventYawn, events[0].Type)
	require.Equal(t, 0.9, events[0].MetricValue)
	require.Equal(t, settings.YawnTime, events[0].Timestamp.Sub(start))
}

// TestChannels_FireIndependentlyInOneFrame: with equal hold times, a frame
// can legally emit both DROWSY and YAWN.
func TestChannels_FireIndependentlyInOneFrame(t *testing.T) {
	t.Parallel()

	settings := testSettings()
	settings.DrowsyTime = time.Second

	var (
		state  = domain.NewTemporalState()
		start  = time.Unix(7000, 0)
		events []domain.Event
	)

	for at := start; at.Sub(start) <= time.Second; at = at.Add(frameStep) {
		events = append(events, feed(state, settings, at, 0.1, 0.9)...)
	}

	require.Len(t, events, 2)
	require.Equal(t, domain.EventDrowsy, events[0].Type)
	require.Equal(t, domain.EventYawn, events[1].Type)
	require.Equal(t, events[0].Timestamp, events[1].Timestamp)
}

// TestYawnCooldown_IndependentOfDrowsy: emitting on one channel never
// consumes the other channel's cooldown.
func TestYawnCooldown_IndependentOfDrowsy(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		at       = time.Unix(8000, 0)
		drowsy   int
		yawns    int
	)

	// Yawn fires at 1 s, drowsy at 2 s; the earlier yawn emission must not
	// push the drowsy emission past its own schedule.
	for elapsed := time.Duration(0); elapsed <= 2*time.Second; elapsed += frameStep {
		for _, event := range feed(state, settings, at, 0.1, 0.9) {
			switch event.Type {
			case domain.EventDrowsy:
				drowsy++
			case domain.EventYawn:
				yawns++
			}
		}

		at = at.Add(frameStep)
	}

	require.Equal(t, 1, drowsy)
	require.Equal(t, 1, yawns)
}

// TestProcess_NilState is a no-op.
func TestProcess_NilState(t *testing.T) {
	t.Parallel()

	require.Nil(t, Process(&domain.FrameMetrics{EAR: 0.1}, testSettings(), time.Unix(0, 0), nil))
}

// TestHotSwappedSettings_TakeEffectNextFrame: the machine reads whatever
// settings the caller passes, so live tuning needs no session restart.
func TestHotSwappedSettings_TakeEffectNextFrame(t *testing.T) {
	t.Parallel()

	var (
		settings = testSettings()
		state    = domain.NewTemporalState()
		at       = time.Unix(9000, 0)
	)

	// EAR 0.25 is above the default threshold: nothing accumulates.
	require.Empty(t, feed(state, settings, at, 0.25, 0.2))
	require.Nil(t, state.EyesClosedSince)
	at = at.Add(frameStep)

	// Raising the threshold mid-session starts accumulation immediately.
	settings.EARThreshold = 0.3
	require.Empty(t, feed(state, settings, at, 0.25, 0.2))
	require.NotNil(t, state.EyesClosedSince)
}
