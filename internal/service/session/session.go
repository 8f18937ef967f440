package session

import (
	"sync"
	"sync/atomic"
	"time"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	"github.com/oshokin/face-sentinel/internal/geometry"
)

const (
	// frameQueueSize bounds the per-session frame backlog. Frames
	// describe "now"; buffering more than a few only adds latency.
	frameQueueSize = 8
	// eventBufferSize bounds the per-session event feed for the
	// response stream.
	eventBufferSize = 32
)

// session is one live detection session. All fields below the mutexes
// are owned by the driver loop; everything else is either immutable or
// explicitly guarded.
type session struct {
	id       string
	backend  string
	indexMap geometry.IndexMap

	// settings are read by the driver loop every frame and replaced
	// live by UpdateSettings.
	settingsMu sync.RWMutex
	settings   domain.Settings

	// frames is the bounded intake queue; stop halts the driver loop
	// and done reports that it has exited.
	frames chan *domain.Frame
	stop   chan struct{}
	done   chan struct{}

	// events feeds the session's response stream. It is closed by the
	// driver loop on exit.
	events chan domain.Event

	statsMu sync.Mutex
	stats   domain.Stats

	// state is touched only by the driver loop.
	state *domain.TemporalState

	droppedFrames atomic.Uint64
}

// currentSettings returns the settings the next frame will run with.
func (s *session) currentSettings() domain.Settings {
	s.settingsMu.RLock()
	defer s.settingsMu.RUnlock()

	return s.settings
}

// updateSettings merges the patch into the live settings. The merged
// result is validated before it replaces anything, so an invalid patch
// leaves the session untouched.
func (s *session) updateSettings(patch domain.Settings) (domain.Settings, error) {
	s.settingsMu.Lock()
	defer s.settingsMu.Unlock()

	merged := s.settings.Merge(patch)
	if err := merged.Validate(); err != nil {
		return domain.Settings{}, err
	}

	s.settings = merged

	return merged, nil
}

// snapshotStats returns an independent copy of the session counters.
func (s *session) snapshotStats() *domain.Stats {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	return s.stats.Clone()
}

// offer enqueues the frame without ever blocking. When the queue is
// full the oldest queued frame is discarded first: stale frames have
// no detection value once a fresher one exists.
func (s *session) offer(frame *domain.Frame) {
	for {
		select {
		case s.frames <- frame:
			return
		default:
		}

		select {
		case <-s.frames:
			s.droppedFrames.Add(1)
		default:
		}
	}
}

// recordFrame updates the counters for one processed frame.
func (s *session) recordFrame(faceSeen bool, events []domain.Event) {
	s.statsMu.Lock()
	defer s.statsMu.Unlock()

	s.stats.FramesProcessed++

	if !faceSeen {
		s.stats.FramesWithoutFace++
	}

	for _, event := range events {
		switch event.Type {
		case domain.EventDrowsy:
			s.stats.DrowsyEvents++
		case domain.EventYawn:
			s.stats.YawnEvents++
		}
	}
}

func newSession(id string, backend string, indexMap geometry.IndexMap, settings domain.Settings, startedAt time.Time) *session {
	return &session{
		id:       id,
		backend:  backend,
		indexMap: indexMap,
		settings: settings,
		frames:   make(chan *domain.Frame, frameQueueSize),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		events:   make(chan domain.Event, eventBufferSize),
		state:    domain.NewTemporalState(),
		stats: domain.Stats{
			SessionID: id,
			Backend:   backend,
			StartedAt: startedAt,
		},
	}
}
