package simulator

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/oshokin/face-sentinel/internal/config"
	"github.com/oshokin/face-sentinel/internal/logger"
	pb "github.com/oshokin/face-sentinel/internal/pb/v1"
	"github.com/oshokin/face-sentinel/internal/service/common"
)

// Options controls the face-sentinel-simulator process.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional server address override.
	ServerAddress string
	// FramesPath is the JSONL capture file to replay.
	FramesPath string
	// FPS is the replay rate in frames per second.
	FPS int
	// Backend selects the landmark index scheme of the capture.
	Backend string
}

// DefaultFPS approximates a webcam capture rate.
const DefaultFPS = 20

var errFramesPathRequired = errors.New("frames file must be provided")

// frameRecord is one line of the JSONL capture file.
type frameRecord struct {
	FaceDetected  bool               `json:"face_detected"`
	Landmarks     [][2]float64       `json:"landmarks"`
	Blendshapes   map[string]float64 `json:"blendshapes,omitempty"`
	EmotionScores map[string]float64 `json:"emotion_scores,omitempty"`
}

// Run replays the capture file and blocks until it is exhausted or the
// context is canceled.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "face-sentinel-simulator")

	if opts.FramesPath == "" {
		return errFramesPathRequired
	}

	serverAddress := opts.ServerAddress
	if serverAddress == "" {
		settings, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		serverAddress = settings.GRPCAddress
	}

	frames, err := loadFrames(opts.FramesPath)
	if err != nil {
		return err
	}

	fps := opts.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}

	client, err := common.Dial(ctx, serverAddress)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	actor, err := common.DetectActor()
	if err != nil {
		return err
	}

	started, err := client.StartSession(ctx, actor, nil, opts.Backend)
	if err != nil {
		return err
	}

	sessionID := started.GetSessionId()

	logger.InfoKV(ctx, "Replay session started",
		"session_id", sessionID,
		"server_address", serverAddress,
		"frames", len(frames),
		"fps", fps)

	if err = replay(ctx, client, sessionID, frames, fps); err != nil {
		return err
	}

	stopped, err := client.StopSession(ctx, sessionID)
	if err != nil {
		return err
	}

	stats := stopped.GetStats()

	logger.InfoKV(ctx, "Replay finished",
		"frames_processed", stats.GetFramesProcessed(),
		"frames_without_face", stats.GetFramesWithoutFace(),
		"drowsy_events", stats.GetDrowsyEvents(),
		"yawn_events", stats.GetYawnEvents())

	return nil
}

// replay streams the frames at the requested rate while logging the
// events coming back.
func replay(ctx context.Context, client *common.Client, sessionID string, frames []*frameRecord, fps int) error {
	stream, err := client.StreamFrames(ctx)
	if err != nil {
		return err
	}

	// Drain events concurrently; Recv ends with the stream.
	go func() {
		for {
			event, recvErr := stream.Recv()
			if recvErr != nil {
				return
			}

			logger.InfoKV(ctx, "Detection event",
				"event_type", event.GetType(),
				"metric_value", event.GetMetricValue(),
				"emotion_label", event.GetEmotionLabel())
		}
	}()

	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)

	defer ticker.Stop()

	capturedAt := time.Now()

	for _, frame := range frames {
		if err = stream.Send(toProtoFrame(sessionID, frame, capturedAt)); err != nil {
			return fmt.Errorf("send frame: %w", err)
		}

		capturedAt = capturedAt.Add(interval)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return stream.CloseSend()
}

// loadFrames parses the JSONL capture file. Blank lines are skipped;
// a malformed line is an error, not a silent gap in the timeline.
func loadFrames(path string) ([]*frameRecord, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open frames file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	var (
		frames []*frameRecord
		line   int
	)

	reader := bufio.NewReader(file)

	for {
		raw, readErr := reader.ReadBytes('\n')
		if len(raw) > 0 {
			line++

			trimmed := bytes.TrimSpace(raw)
			if len(trimmed) > 0 {
				var record frameRecord
				if err = json.Unmarshal(trimmed, &record); err != nil {
					return nil, fmt.Errorf("parse frames file line %d: %w", line, err)
				}

				frames = append(frames, &record)
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("read frames file: %w", readErr)
		}
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("frames file %s holds no frames", path)
	}

	return frames, nil
}

// toProtoFrame converts a capture record into its wire form.
func toProtoFrame(sessionID string, record *frameRecord, capturedAt time.Time) *pb.LandmarkFrame {
	landmarks := make([]*pb.Point, 0, len(record.Landmarks))
	for _, point := range record.Landmarks {
		landmarks = append(landmarks, &pb.Point{X: point[0], Y: point[1]})
	}

	return &pb.LandmarkFrame{
		SessionId:     sessionID,
		FaceDetected:  record.FaceDetected,
		Landmarks:     landmarks,
		CapturedAt:    timestamppb.New(capturedAt),
		Blendshapes:   toProtoScores(record.Blendshapes),
		EmotionScores: toProtoScores(record.EmotionScores),
	}
}

// toProtoScores converts a score map into repeated named scores.
func toProtoScores(scores map[string]float64) []*pb.BlendshapeScore {
	if len(scores) == 0 {
		return nil
	}

	result := make([]*pb.BlendshapeScore, 0, len(scores))
	for name, score := range scores {
		result = append(result, &pb.BlendshapeScore{Name: name, Score: score})
	}

	return result
}
