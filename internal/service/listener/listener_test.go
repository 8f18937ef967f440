package listener

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestRun_ReactsToTokens feeds the pipe end to end: tokens go in,
// alert commands run, unknown lines are ignored.
func TestRun_ReactsToTokens(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	pipePath := filepath.Join(dir, "status_pipe")
	drowsyMark := filepath.Join(dir, "drowsy")
	yawnMark := filepath.Join(dir, "yawn")

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, &Options{
			PipePath:      pipePath,
			DrowsyCommand: fmt.Sprintf("touch %s", drowsyMark),
			YawnCommand:   fmt.Sprintf("touch %s", yawnMark),
		})
	}()

	// The listener creates the FIFO itself.
	require.Eventually(t, func() bool {
		info, err := os.Stat(pipePath)

		return err == nil && info.Mode()&os.ModeNamedPipe != 0
	}, 5*time.Second, 10*time.Millisecond)

	writer, err := os.OpenFile(pipePath, os.O_WRONLY, 0)
	require.NoError(t, err)

	_, err = writer.WriteString("DROWSY\nnoise\nYAWN\n")
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	require.Eventually(t, func() bool {
		_, drowsyErr := os.Stat(drowsyMark)
		_, yawnErr := os.Stat(yawnMark)

		return drowsyErr == nil && yawnErr == nil
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop on context cancel")
	}
}

// TestRun_ReusesExistingFIFO: a pipe created by the server beforehand
// is fine.
func TestRun_ReusesExistingFIFO(t *testing.T) {
	t.Parallel()

	pipePath := filepath.Join(t.TempDir(), "status_pipe")
	require.NoError(t, syscall.Mkfifo(pipePath, 0o644))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)

	go func() {
		done <- Run(ctx, &Options{PipePath: pipePath})
	}()

	// Give the listener a moment to attach, then shut it down.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop on context cancel")
	}
}

// TestHandleToken_EmptyCommandIsLogOnly must not panic or spawn anything.
func TestHandleToken_EmptyCommandIsLogOnly(t *testing.T) {
	t.Parallel()

	handleToken(context.Background(), "DROWSY", &Options{})
	handleToken(context.Background(), "", &Options{})
	handleToken(context.Background(), "garbage", &Options{})
}
