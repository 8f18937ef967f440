//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another copy of this executable is
// alive. Two servers would fight over the status FIFO and interleave
// its line protocol, so the second instance refuses to start.
var ErrAlreadyRunning = errors.New("another instance is already running")

// EnsureSingleInstance scans the process table for another copy of the
// current executable and fails if one exists.
func EnsureSingleInstance() error {
	executable, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}

	executableName := filepath.Base(executable)

	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() != executableName {
			continue
		}

		return fmt.Errorf("%w (PID %d)", ErrAlreadyRunning, process.Pid())
	}

	return nil
}
