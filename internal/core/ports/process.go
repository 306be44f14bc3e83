package ports

import (
	"context"

	"go.trai.ch/vlr/internal/core/domain"
)

//go:generate mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks

// ProcessLauncher starts external programs.
type ProcessLauncher interface {
	// Start launches path with args. The child is not tied to ctx; it lives until it
	// exits or is killed.
	Start(ctx context.Context, path string, args []string) (Process, error)
}

// Process is a running child program.
type Process interface {
	// PID returns the operating system process id.
	PID() int
	// Wait blocks until the child exits and returns its exit status.
	// A child terminated by a signal reports domain.SignalledExitCode.
	Wait() domain.ExitOutcome
	// Kill terminates the child immediately.
	Kill() error
}
