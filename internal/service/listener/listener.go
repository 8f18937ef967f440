package listener

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"github.com/oshokin/face-sentinel/internal/config"
	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
	"github.com/oshokin/face-sentinel/internal/logger"
)

// Options controls the face-sentinel-listener process.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file. It is
	// only consulted when PipePath is empty.
	ConfigPath string
	// PipePath overrides the named pipe to read event tokens from.
	PipePath string
	// DrowsyCommand is the shell command executed on a DROWSY token.
	DrowsyCommand string
	// YawnCommand is the shell command executed on a YAWN token.
	YawnCommand string
}

// Run reads event tokens from the status pipe until the context is
// canceled. The pipe is created if it does not exist yet, so the
// listener may start before the server.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "face-sentinel-listener")

	pipePath := opts.PipePath
	if pipePath == "" {
		settings, err := config.Load(opts.ConfigPath)
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}

		pipePath = settings.PipePath
		if pipePath == "" {
			pipePath = config.DefaultPipePath
		}
	}

	if err := syscall.Mkfifo(pipePath, 0o644); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create FIFO at %s: %w", pipePath, err)
	}

	// Opening read-write keeps a writer end alive, so reads block while
	// the server is away instead of spinning on EOF.
	pipe, err := os.OpenFile(pipePath, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open FIFO at %s: %w", pipePath, err)
	}

	// Closing the pipe unblocks the scanner when the context ends.
	go func() {
		<-ctx.Done()
		_ = pipe.Close()
	}()

	logger.InfoKV(ctx, "Listening for detection events", "pipe_path", pipePath)

	scanner := bufio.NewScanner(pipe)
	for scanner.Scan() {
		handleToken(ctx, strings.TrimSpace(scanner.Text()), opts)
	}

	if err = scanner.Err(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("read FIFO: %w", err)
	}

	logger.Info(ctx, "Listener stopped")

	return nil
}

// handleToken reacts to a single event token from the pipe. Unknown
// tokens are ignored: the pipe is a shared system path and other
// writers may scribble on it.
func handleToken(ctx context.Context, token string, opts *Options) {
	switch domain.EventType(token) {
	case domain.EventDrowsy:
		logger.WarnKV(ctx, "Drowsiness alert", "token", token)
		runAlertCommand(ctx, opts.DrowsyCommand)
	case domain.EventYawn:
		logger.WarnKV(ctx, "Yawn alert", "token", token)
		runAlertCommand(ctx, opts.YawnCommand)
	default:
		if token != "" {
			logger.DebugKV(ctx, "Ignoring unknown token", "token", token)
		}
	}
}

// runAlertCommand executes the configured shell command without
// blocking the read loop; a missing command means log-only alerts.
func runAlertCommand(ctx context.Context, command string) {
	if command == "" {
		return
	}

	go func() {
		cmd := exec.CommandContext(ctx, "/bin/sh", "-c", command)
		if output, err := cmd.CombinedOutput(); err != nil {
			logger.ErrorKV(ctx, "alert command failed",
				"command", command,
				"output", string(output),
				"error", err)
		}
	}()
}
