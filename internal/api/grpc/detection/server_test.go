package detection

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
	"github.com/oshokin/face-sentinel/internal/service/session"
)

// fakeService records calls and returns canned results.
type fakeService struct {
	mu sync.Mutex

	startActor   *domain.Actor
	startPatch   domain.Settings
	startBackend string
	startErr     error

	fedFrames []*domain.Frame
	events    chan domain.Event

	stats    *domain.Stats
	statsErr error
}

func (f *fakeService) StartSession(_ context.Context, actor *domain.Actor, patch domain.Settings, backend string) (string, domain.Settings, error) {
	f.startActor = actor
	f.startPatch = patch
	f.startBackend = backend

	if f.startErr != nil {
		return "", domain.Settings{}, f.startErr
	}

	return "session-1", patch, nil
}

func (f *fakeService) StopSession(_ context.Context, _ string) (*domain.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeService) UpdateSettings(_ context.Context, _ string, patch domain.Settings) (domain.Settings, error) {
	return patch, nil
}

func (f *fakeService) SessionStats(_ context.Context, _ string) (*domain.Stats, error) {
	return f.stats, f.statsErr
}

func (f *fakeService) Feed(_ context.Context, _ string, frame *domain.Frame) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fedFrames = append(f.fedFrames, frame)

	return nil
}

func (f *fakeService) Events(_ string) (<-chan domain.Event, error) {
	if f.events == nil {
		return nil, session.ErrSessionNotFound
	}

	return f.events, nil
}

// fakeStream is an in-process bidi stream double.
type fakeStream struct {
	grpc.ServerStream

	ctx    context.Context
	frames []*pb.LandmarkFrame

	mu      sync.Mutex
	sent    []*pb.DetectionEvent
	eofGate chan struct{}
}

func (s *fakeStream) Context() context.Context {
	return s.ctx
}

func (s *fakeStream) Recv() (*pb.LandmarkFrame, error) {
	if len(s.frames) == 0 {
		s.mu.Lock()
		gate := s.eofGate
		s.mu.Unlock()

		if gate != nil {
			// Hold the stream open until the first event went out.
			<-gate
		}

		return nil, io.EOF
	}

	frame := s.frames[0]
	s.frames = s.frames[1:]

	return frame, nil
}

func (s *fakeStream) Send(event *pb.DetectionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sent = append(s.sent, event)

	if s.eofGate != nil {
		close(s.eofGate)
		s.eofGate = nil
	}

	return nil
}

func TestServer_StartSession(t *testing.T) {
	t.Parallel()

	service := &fakeService{}
	server := NewServer(service)

	resp, err := server.StartSession(context.Background(), &pb.StartSessionRequest{
		Actor: &pb.SystemActor{Hostname: "laptop", Username: "kate"},
		Settings: &pb.DetectionSettings{
			EarThreshold:      0.25,
			DrowsyTimeSeconds: 1.5,
		},
		Backend: "mediapipe-mesh",
	})
	require.NoError(t, err)
	require.Equal(t, "session-1", resp.GetSessionId())

	// The patch crossed the boundary with seconds turned into durations
	// and zero fields left as zero.
	require.Equal(t, 0.25, service.startPatch.EARThreshold)
	require.Equal(t, 1500*time.Millisecond, service.startPatch.DrowsyTime)
	require.Zero(t, service.startPatch.YawnTime)
	require.Equal(t, "mediapipe-mesh", service.startBackend)
	require.Equal(t, "laptop", service.startActor.Hostname)

	// And back: the echoed settings carry seconds again.
	require.InDelta(t, 1.5, resp.GetSettings().GetDrowsyTimeSeconds(), 1e-9)
}

func TestServer_StartSession_InvalidSettings(t *testing.T) {
	t.Parallel()

	service := &fakeService{startErr: domain.ErrNonPositiveThreshold}
	server := NewServer(service)

	_, err := server.StartSession(context.Background(), &pb.StartSessionRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_StopSession(t *testing.T) {
	t.Parallel()

	startedAt := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	service := &fakeService{
		stats: &domain.Stats{
			SessionID:       "session-1",
			Backend:         "dlib68",
			StartedAt:       startedAt,
			FramesProcessed: 42,
			DrowsyEvents:    2,
		},
	}
	server := NewServer(service)

	resp, err := server.StopSession(context.Background(), &pb.StopSessionRequest{SessionId: "session-1"})
	require.NoError(t, err)
	require.Equal(t, uint64(42), resp.GetStats().GetFramesProcessed())
	require.Equal(t, startedAt, resp.GetStats().GetStartedAt().AsTime())
	// A running session has no end time on the wire either.
	require.Nil(t, resp.GetStats().GetEndedAt())

	_, err = server.StopSession(context.Background(), &pb.StopSessionRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_NotFoundMapping(t *testing.T) {
	t.Parallel()

	service := &fakeService{statsErr: session.ErrSessionNotFound}
	server := NewServer(service)

	_, err := server.GetSessionStats(context.Background(), &pb.GetSessionStatsRequest{SessionId: "gone"})
	require.Equal(t, codes.NotFound, status.Code(err))

	_, err = server.StopSession(context.Background(), &pb.StopSessionRequest{SessionId: "gone"})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestServer_UpdateSettings(t *testing.T) {
	t.Parallel()

	server := NewServer(&fakeService{})

	resp, err := server.UpdateSettings(context.Background(), &pb.UpdateSettingsRequest{
		SessionId: "session-1",
		Patch:     &pb.DetectionSettings{MarThreshold: 0.7},
	})
	require.NoError(t, err)
	require.InDelta(t, 0.7, resp.GetSettings().GetMarThreshold(), 1e-9)

	_, err = server.UpdateSettings(context.Background(), &pb.UpdateSettingsRequest{})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_StreamFrames(t *testing.T) {
	t.Parallel()

	events := make(chan domain.Event, 1)
	events <- domain.Event{
		SessionID:   "session-1",
		Type:        domain.EventDrowsy,
		Timestamp:   time.Unix(1000, 0),
		MetricValue: 0.15,
	}

	service := &fakeService{events: events}
	server := NewServer(service)

	stream := &fakeStream{
		ctx: context.Background(),
		frames: []*pb.LandmarkFrame{
			{
				SessionId:    "session-1",
				FaceDetected: true,
				Landmarks:    []*pb.Point{{X: 1, Y: 2}},
			},
			{
				SessionId: "session-1",
			},
		},
		eofGate: make(chan struct{}),
	}

	require.NoError(t, server.StreamFrames(stream))

	require.Len(t, service.fedFrames, 2)
	require.True(t, service.fedFrames[0].FaceDetected)
	require.Equal(t, domain.LandmarkSet{{X: 1, Y: 2}}, service.fedFrames[0].Landmarks)

	require.Len(t, stream.sent, 1)
	require.Equal(t, "DROWSY", stream.sent[0].GetType())
	require.InDelta(t, 0.15, stream.sent[0].GetMetricValue(), 1e-9)
}

func TestServer_StreamFrames_RequiresSessionID(t *testing.T) {
	t.Parallel()

	server := NewServer(&fakeService{})

	stream := &fakeStream{
		ctx:    context.Background(),
		frames: []*pb.LandmarkFrame{{FaceDetected: true}},
	}

	err := server.StreamFrames(stream)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_StreamFrames_RejectsSessionSwitch(t *testing.T) {
	t.Parallel()

	server := NewServer(&fakeService{events: make(chan domain.Event)})

	stream := &fakeStream{
		ctx: context.Background(),
		frames: []*pb.LandmarkFrame{
			{SessionId: "session-1"},
			{SessionId: "session-2"},
		},
	}

	err := server.StreamFrames(stream)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
