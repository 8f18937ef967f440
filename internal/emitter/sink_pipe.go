package emitter

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	domain "github.com/oshokin/face-sentinel/internal/domain/detection"
)

// PipeSink writes the literal event token followed by a newline
// ("DROWSY\n", "YAWN\n") to a named pipe. The listener process on the
// other end turns those tokens into audible alerts.
//
// The FIFO is opened lazily in non-blocking mode, so the sink works the
// same whether the listener is running or not: with no reader attached,
// events are silently discarded, and the sink reattaches as soon as a
// reader appears.
type PipeSink struct {
	path string
	file *os.File
}

// NewPipeSink creates the FIFO at path if it does not exist yet.
func NewPipeSink(path string) (*PipeSink, error) {
	if err := syscall.Mkfifo(path, 0o644); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("failed to create FIFO at %s: %w", path, err)
	}

	return &PipeSink{path: path}, nil
}

// Name implements Sink.
func (s *PipeSink) Name() string {
	return "pipe"
}

// Emit implements Sink. A missing or vanished reader is a normal
// condition, not a delivery error.
func (s *PipeSink) Emit(event domain.Event) error {
	if s.file == nil {
		file, err := os.OpenFile(s.path, os.O_WRONLY|syscall.O_NONBLOCK, 0)
		if err != nil {
			// ENXIO means nobody has the read end open: the listener
			// is not running. Drop the event and retry next time.
			if errors.Is(err, syscall.ENXIO) {
				return nil
			}

			return fmt.Errorf("failed to open FIFO at %s: %w", s.path, err)
		}

		s.file = file
	}

	if _, err := s.file.WriteString(string(event.Type) + "\n"); err != nil {
		// Any write failure invalidates the descriptor; reopen lazily.
		_ = s.file.Close()
		s.file = nil

		if errors.Is(err, syscall.EPIPE) || errors.Is(err, syscall.EAGAIN) {
			return nil
		}

		return fmt.Errorf("failed to write event to FIFO: %w", err)
	}

	return nil
}

// Close implements Sink. The FIFO itself stays on disk so a running
// listener keeps its read end.
func (s *PipeSink) Close() error {
	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	return err
}
