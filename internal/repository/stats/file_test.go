package stats

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

func testStats(sessionID string) *domain.Stats {
	return &domain.Stats{
		SessionID:         sessionID,
		Backend:           "dlib68",
		StartedAt:         time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC),
		EndedAt:           time.Date(2026, 8, 25, 10, 5, 0, 0, time.UTC),
		FramesProcessed:   9000,
		FramesWithoutFace: 12,
		DrowsyEvents:      3,
		YawnEvents:        1,
	}
}

// TestFileRepository_EmptyFileIsEmptyCollection verifies a missing file
// reads as zero sessions rather than an error.
func TestFileRepository_EmptyFileIsEmptyCollection(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.json"))

	sessions, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	require.Empty(t, sessions)
}

// TestFileRepository_AppendAndLoad verifies a round trip through disk.
func TestFileRepository_AppendAndLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testStats("session-1")))
	require.NoError(t, repo.Append(ctx, testStats("session-2")))

	sessions, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "session-1", sessions[0].SessionID)
	require.Equal(t, "session-2", sessions[1].SessionID)
	require.Equal(t, testStats("session-1"), sessions[0])

	// The file must be readable by a fresh repository instance.
	reopened, err := NewFileRepository(path).LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, reopened, 2)
}

// TestFileRepository_FindBySession covers the lookup and ErrNotFound.
func TestFileRepository_FindBySession(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "stats.json"))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testStats("session-1")))

	found, err := repo.FindBySession(ctx, "session-1")
	require.NoError(t, err)
	require.Equal(t, uint64(3), found.DrowsyEvents)

	_, err = repo.FindBySession(ctx, "session-404")
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_RunningSessionOmitsEndedAt: a zero EndedAt must
// survive the round trip as zero, not as the Unix epoch.
func TestFileRepository_RunningSessionOmitsEndedAt(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "stats.json"))
	ctx := context.Background()

	running := testStats("session-1")
	running.EndedAt = time.Time{}

	require.NoError(t, repo.Append(ctx, running))

	found, err := repo.FindBySession(ctx, "session-1")
	require.NoError(t, err)
	require.True(t, found.EndedAt.IsZero())
}

// TestFileRepository_CorruptFile surfaces a decode error.
func TestFileRepository_CorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "stats.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := NewFileRepository(path).LoadAll(context.Background())
	require.Error(t, err)
}
