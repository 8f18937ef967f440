package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oshokin/face-sentinel/internal/detector"
	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	"github.com/oshokin/face-sentinel/internal/emitter"
	"github.com/oshokin/face-sentinel/internal/emotion"
	"github.com/oshokin/face-sentinel/internal/geometry"
	"github.com/oshokin/face-sentinel/internal/logger"
	statsrepo "github.com/oshokin/face-sentinel/internal/repository/stats"
)

var (
	// ErrSessionNotFound is returned for operations on an unknown session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrManagerClosed is returned once the manager has shut down.
	ErrManagerClosed = errors.New("session manager is closed")
)

// blendshape keys the capture backends agree on.
const (
	blendshapeBlinkLeft  = "eyeBlinkLeft"
	blendshapeBlinkRight = "eyeBlinkRight"
	blendshapeJawOpen    = "jawOpen"
)

// Manager owns every live detection session and orchestrates their
// driver loops, persistence, and event fan-out.
type Manager struct {
	// ctx scopes the lifetime and logging of the driver loops.
	ctx context.Context
	// defaults seed the settings of every new session.
	defaults domain.Settings
	// repo persists the stats of finished sessions.
	repo statsrepo.Repository
	// events receives every emitted detection event.
	events *emitter.Emitter
	// now is the clock, replaceable in tests.
	now func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
	closed   bool
}

// NewManager returns a manager seeded with the given default settings.
func NewManager(ctx context.Context, defaults domain.Settings, repository statsrepo.Repository, events *emitter.Emitter) *Manager {
	return &Manager{
		ctx:      ctx,
		defaults: defaults,
		repo:     repository,
		events:   events,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// StartSession creates a session with its own temporal state, applies
// the settings patch over the configured defaults, and starts the
// driver loop. It returns the session handle and the effective settings.
func (m *Manager) StartSession(
	ctx context.Context,
	actor *domain.Actor,
	patch domain.Settings,
	backend string,
) (string, domain.Settings, error) {
	indexMap, err := geometry.MapForBackend(backend)
	if err != nil {
		return "", domain.Settings{}, err
	}

	settings := m.defaults.Merge(patch)
	if err = settings.Validate(); err != nil {
		return "", domain.Settings{}, fmt.Errorf("invalid session settings: %w", err)
	}

	id := uuid.NewString()
	s := newSession(id, indexMap.Name, indexMap, settings, m.now())

	m.mu.Lock()

	if m.closed {
		m.mu.Unlock()

		return "", domain.Settings{}, ErrManagerClosed
	}

	m.sessions[id] = s

	m.mu.Unlock()

	go m.run(logger.WithKV(m.ctx, "session_id", id), s)

	startedBy := actor.Clone()
	if startedBy == nil {
		startedBy = &domain.Actor{}
	}

	logger.InfoKV(ctx, "detection session started",
		"session_id", id,
		"backend", indexMap.Name,
		"hostname", startedBy.Hostname,
		"username", startedBy.Username)

	return id, settings, nil
}

// StopSession halts the driver loop, discards any queued frames,
// persists the final stats, and returns them.
func (m *Manager) StopSession(ctx context.Context, sessionID string) (*domain.Stats, error) {
	m.mu.Lock()

	s, ok := m.sessions[sessionID]
	if ok {
		delete(m.sessions, sessionID)
	}

	m.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	close(s.stop)
	<-s.done

	final := s.snapshotStats()
	final.EndedAt = m.now()

	if err := m.repo.Append(ctx, final); err != nil {
		logger.ErrorKV(ctx, "failed to persist session stats",
			"session_id", sessionID,
			"error", err)

		return nil, fmt.Errorf("persist session stats: %w", err)
	}

	logger.InfoKV(ctx, "detection session stopped",
		"session_id", sessionID,
		"frames_processed", final.FramesProcessed,
		"frames_dropped", s.droppedFrames.Load(),
		"drowsy_events", final.DrowsyEvents,
		"yawn_events", final.YawnEvents)

	return final, nil
}

// UpdateSettings merges the patch into the session's live settings and
// returns the effective result. The new settings apply from the next
// processed frame; accumulated onsets survive the change.
func (m *Manager) UpdateSettings(ctx context.Context, sessionID string, patch domain.Settings) (domain.Settings, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return domain.Settings{}, err
	}

	settings, err := s.updateSettings(patch)
	if err != nil {
		return domain.Settings{}, err
	}

	logger.InfoKV(ctx, "session settings updated",
		"session_id", sessionID,
		"ear_threshold", settings.EARThreshold,
		"mar_threshold", settings.MARThreshold,
		"drowsy_time", settings.DrowsyTime,
		"yawn_time", settings.YawnTime,
		"alert_cooldown", settings.AlertCooldown)

	return settings, nil
}

// SessionStats returns a live snapshot for a running session, or the
// persisted record for a finished one.
func (m *Manager) SessionStats(ctx context.Context, sessionID string) (*domain.Stats, error) {
	if s, err := m.lookup(sessionID); err == nil {
		return s.snapshotStats(), nil
	}

	stats, err := m.repo.FindBySession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, statsrepo.ErrNotFound) {
			return nil, ErrSessionNotFound
		}

		return nil, fmt.Errorf("load session stats: %w", err)
	}

	return stats, nil
}

// Feed enqueues one frame for processing. It never blocks: when the
// session's queue is full, the oldest queued frame is dropped to make
// room for this one.
func (m *Manager) Feed(_ context.Context, sessionID string, frame *domain.Frame) error {
	s, err := m.lookup(sessionID)
	if err != nil {
		return err
	}

	s.offer(frame)

	return nil
}

// Events returns the session's event feed. The channel closes when the
// session stops. It is a single-consumer feed: with no consumer, or a
// slow one, events beyond the buffer are dropped (the other sinks still
// receive them).
func (m *Manager) Events(sessionID string) (<-chan domain.Event, error) {
	s, err := m.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	return s.events, nil
}

// Close stops every remaining session, persisting their stats.
func (m *Manager) Close(ctx context.Context) {
	m.mu.Lock()

	m.closed = true

	ids := make([]string, 0, len(m.sessions))
	for id := range m.sessions {
		ids = append(ids, id)
	}

	m.mu.Unlock()

	for _, id := range ids {
		if _, err := m.StopSession(ctx, id); err != nil && !errors.Is(err, ErrSessionNotFound) {
			logger.ErrorKV(ctx, "failed to stop session on shutdown",
				"session_id", id,
				"error", err)
		}
	}
}

func (m *Manager) lookup(sessionID string) (*session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}

	return s, nil
}

// run is the session's driver loop: the only goroutine that touches
// the temporal state.
func (m *Manager) run(ctx context.Context, s *session) {
	defer close(s.done)
	defer close(s.events)

	for {
		select {
		case <-s.stop:
			return
		case frame := <-s.frames:
			m.processFrame(ctx, s, frame)
		}
	}
}

// processFrame converts one frame into metrics, advances the state
// machine, and fans out whatever events it produced.
func (m *Manager) processFrame(ctx context.Context, s *session, frame *domain.Frame) {
	now := frame.CapturedAt
	if now.IsZero() {
		now = m.now()
	}

	var metrics *domain.FrameMetrics

	if frame.FaceDetected {
		ear, mar, err := geometry.Ratios(frame.Landmarks, s.indexMap)
		if err != nil {
			// Malformed landmarks carry no usable signal; the frame
			// counts as face loss.
			logger.WarnKV(ctx, "frame has malformed landmarks", "error", err)
		} else {
			metrics = &domain.FrameMetrics{
				EAR:        ear,
				MAR:        mar,
				AuxBlink:   auxSignal(frame.Blendshapes, blendshapeBlinkLeft, blendshapeBlinkRight),
				AuxJawOpen: auxSignal(frame.Blendshapes, blendshapeJawOpen),
				Emotion:    emotion.Summarize(frame.EmotionScores),
				Landmarks:  frame.Landmarks,
			}

			if frame.Face != nil {
				metrics.Face = *frame.Face
			}
		}
	}

	events := detector.Process(metrics, s.currentSettings(), now, s.state)

	s.recordFrame(metrics != nil, events)

	for _, event := range events {
		event.SessionID = s.id

		m.events.Publish(event)

		select {
		case s.events <- event:
		default:
			// The stream consumer is absent or behind; the event
			// still reached the emitter sinks.
		}
	}
}

// auxSignal averages the named blendshape scores, returning a negative
// value when none of them are present.
func auxSignal(shapes map[string]float64, keys ...string) float64 {
	var (
		sum float64
		n   int
	)

	for _, key := range keys {
		if value, ok := shapes[key]; ok {
			sum += value
			n++
		}
	}

	if n == 0 {
		return -1
	}

	return sum / float64(n)
}
