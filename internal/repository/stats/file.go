package stats

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/face-sentinel/internal/config"
	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
)

// Repository defines persistence operations for session statistics.
type Repository interface {
	// Append stores the stats of a finished session.
	Append(ctx context.Context, stats *domain.Stats) error
	// LoadAll returns every stored session, oldest first.
	LoadAll(ctx context.Context) ([]*domain.Stats, error)
	// FindBySession returns the stats of one session or ErrNotFound.
	FindBySession(ctx context.Context, sessionID string) (*domain.Stats, error)
}

// ErrNotFound is returned when the requested session has no stored stats.
var ErrNotFound = errors.New("session stats not found")

// FileRepository persists session stats to a JSON file on disk.
// JSON is produced and consumed via protobuf JSON (protojson) to stay
// compatible with the generated API types.
type FileRepository struct {
	// path is the filesystem location of the JSON stats file.
	path string
	// mu protects concurrent access to the stats file.
	mu sync.Mutex
}

// NewFileRepository creates a repository that reads/writes JSON at the provided path.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{
		path: filepath.Clean(path),
	}
}

// Append reads the current file, adds the stats, and writes it back.
// A missing file is treated as an empty collection.
func (r *FileRepository) Append(_ context.Context, stats *domain.Stats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return err
	}

	file.Sessions = append(file.Sessions, toProto(stats))

	return r.write(file)
}

// LoadAll returns every stored session, oldest first.
func (r *FileRepository) LoadAll(_ context.Context) ([]*domain.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return nil, err
	}

	sessions := make([]*domain.Stats, 0, len(file.GetSessions()))
	for _, protoStats := range file.GetSessions() {
		sessions = append(sessions, fromProto(protoStats))
	}

	return sessions, nil
}

// FindBySession returns the stats of one session or ErrNotFound.
func (r *FileRepository) FindBySession(_ context.Context, sessionID string) (*domain.Stats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.read()
	if err != nil {
		return nil, err
	}

	for _, protoStats := range file.GetSessions() {
		if protoStats.GetSessionId() == sessionID {
			return fromProto(protoStats), nil
		}
	}

	return nil, ErrNotFound
}

// read loads and decodes the stats file under the caller-held lock.
func (r *FileRepository) read() (*pb.SessionStatsFile, error) {
	contents, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &pb.SessionStatsFile{}, nil
		}

		return nil, fmt.Errorf("read stats file: %w", err)
	}

	var file pb.SessionStatsFile
	if err = protojson.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("decode stats file: %w", err)
	}

	return &file, nil
}

// write encodes and stores the stats file under the caller-held lock.
func (r *FileRepository) write(file *pb.SessionStatsFile) error {
	marshalOptions := protojson.MarshalOptions{
		EmitUnpopulated: true,
	}

	data, err := marshalOptions.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err = os.WriteFile(r.path, data, config.DefaultFilePermissions); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}

	return nil
}

// fromProto converts protobuf SessionStats into the domain Stats model.
func fromProto(protoStats *pb.SessionStats) *domain.Stats {
	var startedAt, endedAt time.Time

	if ts := protoStats.GetStartedAt(); ts != nil {
		startedAt = ts.AsTime()
	}

	if ts := protoStats.GetEndedAt(); ts != nil {
		endedAt = ts.AsTime()
	}

	return &domain.Stats{
		SessionID:         protoStats.GetSessionId(),
		Backend:           protoStats.GetBackend(),
		StartedAt:         startedAt,
		EndedAt:           endedAt,
		FramesProcessed:   protoStats.GetFramesProcessed(),
		FramesWithoutFace: protoStats.GetFramesWithoutFace(),
		DrowsyEvents:      protoStats.GetDrowsyEvents(),
		YawnEvents:        protoStats.GetYawnEvents(),
	}
}

// toProto converts the domain Stats model into protobuf SessionStats.
func toProto(stats *domain.Stats) *pb.SessionStats {
	var startedAt, endedAt *timestamppb.Timestamp

	if !stats.StartedAt.IsZero() {
		startedAt = timestamppb.New(stats.StartedAt)
	}

	if !stats.EndedAt.IsZero() {
		endedAt = timestamppb.New(stats.EndedAt)
	}

	return &pb.SessionStats{
		SessionId:         stats.SessionID,
		Backend:           stats.Backend,
		StartedAt:         startedAt,
		EndedAt:           endedAt,
		FramesProcessed:   stats.FramesProcessed,
		FramesWithoutFace: stats.FramesWithoutFace,
		DrowsyEvents:      stats.DrowsyEvents,
		YawnEvents:        stats.YawnEvents,
	}
}
