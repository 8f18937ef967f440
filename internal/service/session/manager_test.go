package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	"github.com/oshokin/face-sentinel/internal/emitter"
	statsrepo "github.com/oshokin/face-sentinel/internal/repository/stats"
)

// fakeRepo is an in-memory stats repository.
type fakeRepo struct {
	mu      sync.Mutex
	records map[string]*domain.Stats
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[string]*domain.Stats)}
}

func (r *fakeRepo) Append(_ context.Context, stats *domain.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[stats.SessionID] = stats.Clone()

	return nil
}

func (r *fakeRepo) LoadAll(_ context.Context) ([]*domain.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]*domain.Stats, 0, len(r.records))
	for _, stats := range r.records {
		all = append(all, stats.Clone())
	}

	return all, nil
}

func (r *fakeRepo) FindBySession(_ context.Context, sessionID string) (*domain.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.records[sessionID]
	if !ok {
		return nil, statsrepo.ErrNotFound
	}

	return stats.Clone(), nil
}

// testDefaults keeps hold times short so the scenario tests stay fast.
func testDefaults() domain.Settings {
	return domain.Settings{
		EARThreshold:  0.22,
		MARThreshold:  0.6,
		DrowsyTime:    200 * time.Millisecond,
		YawnTime:      100 * time.Millisecond,
		AlertCooldown: time.Second,
	}
}

// eyeContour is a synthetic 6-point eye; closed collapses the lids.
func eyeContour(offsetX float64, closed bool) []domain.Point {
	eye := []domain.Point{
		{X: offsetX, Y: 10},
		{X: offsetX + 3, Y: 7},
		{X: offsetX + 7, Y: 7},
		{X: offsetX + 10, Y: 10},
		{X: offsetX + 7, Y: 13},
		{X: offsetX + 3, Y: 13},
	}

	if closed {
		for i := range eye {
			eye[i].Y = 10
		}
	}

	return eye
}

// mouthRing is a synthetic 12-point outer lip ring; MAR works out to gap/5.
func mouthRing(gap float64) []domain.Point {
	return []domain.Point{
		{X: 0, Y: 0},
		{X: 2, Y: -gap / 2},
		{X: 4, Y: -gap},
		{X: 5, Y: -gap},
		{X: 6, Y: -gap},
		{X: 8, Y: -gap / 2},
		{X: 10, Y: 0},
		{X: 8, Y: gap / 2},
		{X: 6, Y: gap},
		{X: 5, Y: gap},
		{X: 4, Y: gap},
		{X: 2, Y: gap / 2},
	}
}

// dlibFrame builds a complete 68-point frame with the requested eye and
// mouth posture.
func dlibFrame(at time.Time, eyesClosed, mouthOpen bool) *domain.Frame {
	landmarks := make(domain.LandmarkSet, 68)
	for i := range landmarks {
		landmarks[i] = domain.Point{X: float64(i), Y: 100}
	}

	copy(landmarks[36:42], eyeContour(0, eyesClosed))
	copy(landmarks[42:48], eyeContour(20, eyesClosed))

	gap := 1.0 // MAR 0.2, well below threshold
	if mouthOpen {
		gap = 5.0 // MAR 1.0
	}

	copy(landmarks[48:60], mouthRing(gap))

	return &domain.Frame{
		FaceDetected: true,
		Landmarks:    landmarks,
		CapturedAt:   at,
		EmotionScores: map[string]float64{
			"neutral": 0.7,
			"sad":     0.2,
		},
	}
}

// feedAndWait pushes one frame and blocks until the driver loop has
// processed it, keeping the scenarios deterministic.
func feedAndWait(t *testing.T, m *Manager, sessionID string, frame *domain.Frame) {
	t.Helper()

	ctx := context.Background()

	before, err := m.SessionStats(ctx, sessionID)
	require.NoError(t, err)

	require.NoError(t, m.Feed(ctx, sessionID, frame))

	require.Eventually(t, func() bool {
		after, statsErr := m.SessionStats(ctx, sessionID)

		return statsErr == nil && after.FramesProcessed > before.FramesProcessed
	}, 5*time.Second, time.Millisecond)
}

func newTestManager(t *testing.T) (*Manager, *fakeRepo) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := newFakeRepo()
	m := NewManager(ctx, testDefaults(), repo, emitter.New(ctx))

	t.Cleanup(func() {
		m.Close(context.Background())
	})

	return m, repo
}

func TestManager_DrowsyEndToEnd(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	id, settings, err := m.StartSession(ctx, &domain.Actor{Hostname: "laptop", Username: "kate"}, domain.Settings{}, "")
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.Equal(t, testDefaults(), settings)

	events, err := m.Events(id)
	require.NoError(t, err)

	// Closed eyes across the hold time using synthetic capture stamps.
	at := time.Unix(1000, 0)
	for elapsed := time.Duration(0); elapsed <= 250*time.Millisecond; elapsed += 50 * time.Millisecond {
		feedAndWait(t, m, id, dlibFrame(at.Add(elapsed), true, false))
	}

	select {
	case event := <-events:
		require.Equal(t, domain.EventDrowsy, event.Type)
		require.Equal(t, id, event.SessionID)
		require.Equal(t, "neutral", event.EmotionLabel)
	default:
		t.Fatal("expected a DROWSY event on the session feed")
	}

	stats, err := m.StopSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.DrowsyEvents)
	require.Equal(t, uint64(6), stats.FramesProcessed)
	require.False(t, stats.EndedAt.IsZero())
}

func TestManager_YawnCountsAndFaceLoss(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	id, _, err := m.StartSession(ctx, nil, domain.Settings{}, "dlib68")
	require.NoError(t, err)

	at := time.Unix(2000, 0)
	for elapsed := time.Duration(0); elapsed <= 150*time.Millisecond; elapsed += 50 * time.Millisecond {
		feedAndWait(t, m, id, dlibFrame(at.Add(elapsed), false, true))
	}

	// A frame with no face counts separately and clears onsets.
	feedAndWait(t, m, id, &domain.Frame{CapturedAt: at.Add(300 * time.Millisecond)})

	stats, err := m.SessionStats(ctx, id)
	require.NoError(t, err)
	require.Equal(t, uint64(1), stats.YawnEvents)
	require.Equal(t, uint64(1), stats.FramesWithoutFace)
	require.True(t, stats.EndedAt.IsZero())
}

func TestManager_UnknownSession(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	_, err := m.StopSession(ctx, "nope")
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.UpdateSettings(ctx, "nope", domain.Settings{})
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.SessionStats(ctx, "nope")
	require.ErrorIs(t, err, ErrSessionNotFound)

	err = m.Feed(ctx, "nope", &domain.Frame{})
	require.ErrorIs(t, err, ErrSessionNotFound)

	_, err = m.Events("nope")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_UnknownBackendRejected(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)

	_, _, err := m.StartSession(context.Background(), nil, domain.Settings{}, "openface")
	require.Error(t, err)
}

func TestManager_UpdateSettings(t *testing.T) {
	t.Parallel()

	m, _ := newTestManager(t)
	ctx := context.Background()

	id, _, err := m.StartSession(ctx, nil, domain.Settings{}, "")
	require.NoError(t, err)

	updated, err := m.UpdateSettings(ctx, id, domain.Settings{EARThreshold: 0.3})
	require.NoError(t, err)
	require.Equal(t, 0.3, updated.EARThreshold)
	// Unpatched fields keep their values.
	require.Equal(t, testDefaults().MARThreshold, updated.MARThreshold)

	// An invalid patch leaves the session untouched.
	_, err = m.UpdateSettings(ctx, id, domain.Settings{DrowsyTime: -time.Second})
	require.Error(t, err)

	unchanged, err := m.UpdateSettings(ctx, id, domain.Settings{})
	require.NoError(t, err)
	require.Equal(t, 0.3, unchanged.EARThreshold)
	require.Equal(t, testDefaults().DrowsyTime, unchanged.DrowsyTime)
}

func TestManager_StopPersistsAndServesStats(t *testing.T) {
	t.Parallel()

	m, repo := newTestManager(t)
	ctx := context.Background()

	id, _, err := m.StartSession(ctx, nil, domain.Settings{}, "mediapipe-mesh")
	require.NoError(t, err)

	events, err := m.Events(id)
	require.NoError(t, err)

	stopped, err := m.StopSession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "mediapipe-mesh", stopped.Backend)

	// The event feed closes with the session.
	_, open := <-events
	require.False(t, open)

	// Stats stay queryable through the repository after the stop.
	persisted, err := m.SessionStats(ctx, id)
	require.NoError(t, err)
	require.Equal(t, stopped, persisted)

	stored, err := repo.FindBySession(ctx, id)
	require.NoError(t, err)
	require.Equal(t, stopped, stored)

	// A second stop is an error: the session is gone.
	_, err = m.StopSession(ctx, id)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_CloseStopsEverything(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repo := newFakeRepo()
	m := NewManager(ctx, testDefaults(), repo, emitter.New(ctx))

	first, _, err := m.StartSession(ctx, nil, domain.Settings{}, "")
	require.NoError(t, err)

	second, _, err := m.StartSession(ctx, nil, domain.Settings{}, "")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	m.Close(ctx)

	all, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// No new sessions after close.
	_, _, err = m.StartSession(ctx, nil, domain.Settings{}, "")
	require.ErrorIs(t, err, ErrManagerClosed)
}
