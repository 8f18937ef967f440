package simulator

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeFrames(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "frames.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))

	return path
}

// TestLoadFrames parses records, skips blank lines, and keeps order.
func TestLoadFrames(t *testing.T) {
	t.Parallel()

	path := writeFrames(t, `{"face_detected":true,"landmarks":[[1,2],[3,4]],"emotion_scores":{"happy":0.9}}

{"face_detected":false}
`)

	frames, err := loadFrames(path)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	require.True(t, frames[0].FaceDetected)
	require.Equal(t, [][2]float64{{1, 2}, {3, 4}}, frames[0].Landmarks)
	require.InDelta(t, 0.9, frames[0].EmotionScores["happy"], 1e-9)
	require.False(t, frames[1].FaceDetected)
}

// TestLoadFrames_Errors covers missing, malformed, and empty files.
func TestLoadFrames_Errors(t *testing.T) {
	t.Parallel()

	_, err := loadFrames(filepath.Join(t.TempDir(), "missing.jsonl"))
	require.Error(t, err)

	_, err = loadFrames(writeFrames(t, "{broken\n"))
	require.ErrorContains(t, err, "line 1")

	_, err = loadFrames(writeFrames(t, "\n\n"))
	require.ErrorContains(t, err, "no frames")
}

// TestToProtoFrame verifies the wire conversion.
func TestToProtoFrame(t *testing.T) {
	t.Parallel()

	capturedAt := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	record := &frameRecord{
		FaceDetected: true,
		Landmarks:    [][2]float64{{1, 2}},
		Blendshapes:  map[string]float64{"jawOpen": 0.8},
	}

	frame := toProtoFrame("session-1", record, capturedAt)

	require.Equal(t, "session-1", frame.GetSessionId())
	require.True(t, frame.GetFaceDetected())
	require.Len(t, frame.GetLandmarks(), 1)
	require.Equal(t, 1.0, frame.GetLandmarks()[0].GetX())
	require.Equal(t, capturedAt, frame.GetCapturedAt().AsTime())
	require.Len(t, frame.GetBlendshapes(), 1)
	require.Equal(t, "jawOpen", frame.GetBlendshapes()[0].GetName())
}

// TestRun_RequiresFramesPath rejects a missing capture file up front.
func TestRun_RequiresFramesPath(t *testing.T) {
	t.Parallel()

	err := Run(context.Background(), &Options{})
	require.ErrorIs(t, err, errFramesPathRequired)
}
