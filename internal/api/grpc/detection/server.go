package detection

import (
	"context"
	"errors"
	"io"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	"github.com/oshokin/face-sentinel/internal/geometry"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
	"github.com/oshokin/face-sentinel/internal/service/session"
)

// Service abstracts the session operations the transport layer depends on.
type Service interface {
	StartSession(ctx context.Context, actor *domain.Actor, patch domain.Settings, backend string) (string, domain.Settings, error)
	StopSession(ctx context.Context, sessionID string) (*domain.Stats, error)
	UpdateSettings(ctx context.Context, sessionID string, patch domain.Settings) (domain.Settings, error)
	SessionStats(ctx context.Context, sessionID string) (*domain.Stats, error)
	Feed(ctx context.Context, sessionID string, frame *domain.Frame) error
	Events(sessionID string) (<-chan domain.Event, error)
}

// Server implements the DetectionService gRPC API.
type Server struct {
	pb.UnimplementedDetectionServiceServer

	// service provides the business logic for session operations.
	service Service
}

// NewServer wires the provided service implementation into a gRPC handler.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// StartSession creates a detection session.
func (s *Server) StartSession(ctx context.Context, req *pb.StartSessionRequest) (*pb.StartSessionResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	sessionID, settings, err := s.service.StartSession(
		ctx,
		toDomainActor(req.GetActor()),
		toDomainSettings(req.GetSettings()),
		req.GetBackend(),
	)
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.StartSessionResponse{
		SessionId: sessionID,
		Settings:  toProtoSettings(settings),
	}, nil
}

// StopSession halts a session and returns its final statistics.
func (s *Server) StopSession(ctx context.Context, req *pb.StopSessionRequest) (*pb.StopSessionResponse, error) {
	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	stats, err := s.service.StopSession(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.StopSessionResponse{
		Stats: toProtoStats(stats),
	}, nil
}

// UpdateSettings merges a settings patch into a running session.
func (s *Server) UpdateSettings(ctx context.Context, req *pb.UpdateSettingsRequest) (*pb.UpdateSettingsResponse, error) {
	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	settings, err := s.service.UpdateSettings(ctx, req.GetSessionId(), toDomainSettings(req.GetPatch()))
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.UpdateSettingsResponse{
		Settings: toProtoSettings(settings),
	}, nil
}

// GetSessionStats returns the statistics of a running or finished session.
func (s *Server) GetSessionStats(ctx context.Context, req *pb.GetSessionStatsRequest) (*pb.GetSessionStatsResponse, error) {
	if req.GetSessionId() == "" {
		return nil, status.Error(codes.InvalidArgument, "session_id is required")
	}

	stats, err := s.service.SessionStats(ctx, req.GetSessionId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &pb.GetSessionStatsResponse{
		Stats: toProtoStats(stats),
	}, nil
}

// StreamFrames receives landmark frames and pushes detection events
// back on the same stream. The stream binds to the session named by its
// first frame.
func (s *Server) StreamFrames(stream pb.DetectionService_StreamFramesServer) error {
	ctx := stream.Context()

	first, err := stream.Recv()
	if errors.Is(err, io.EOF) {
		return nil
	}

	if err != nil {
		return err
	}

	sessionID := first.GetSessionId()
	if sessionID == "" {
		return status.Error(codes.InvalidArgument, "the first frame must carry a session_id")
	}

	events, err := s.service.Events(sessionID)
	if err != nil {
		return toStatus(err)
	}

	go s.pushEvents(ctx, stream, events)

	for frame := first; ; {
		if frame.GetSessionId() != sessionID {
			return status.Error(codes.InvalidArgument, "a stream is bound to a single session")
		}

		if err = s.service.Feed(ctx, sessionID, toDomainFrame(frame)); err != nil {
			return toStatus(err)
		}

		frame, err = stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return err
		}
	}
}

// pushEvents forwards the session's events to the client until the
// stream or the session ends.
func (s *Server) pushEvents(ctx context.Context, stream pb.DetectionService_StreamFramesServer, events <-chan domain.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}

			if err := stream.Send(toProtoEvent(event)); err != nil {
				return
			}
		}
	}
}

// toStatus maps domain errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return status.Error(codes.NotFound, "session not found")
	case errors.Is(err, session.ErrManagerClosed):
		return status.Error(codes.Unavailable, "server is shutting down")
	case errors.Is(err, geometry.ErrUnknownBackend),
		errors.Is(err, domain.ErrNonPositiveThreshold),
		errors.Is(err, domain.ErrNegativeDuration):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
