package supervisor

import (
	"context"
	"sync/atomic"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Child is a handle to a running extractor.
type Child struct {
	process          ports.Process
	channelAvailable atomic.Bool
	exitCode         atomic.Pointer[int]

	exited     chan struct{}
	eventsDone chan struct{}
}

func newChild(proc ports.Process) *Child {
	c := &Child{
		process:    proc,
		exited:     make(chan struct{}),
		eventsDone: make(chan struct{}),
	}
	go func() {
		outcome := proc.Wait()
		c.exitCode.Store(&outcome.Code)
		close(c.exited)
	}()
	return c
}

// PID returns the process id of the extractor, or 0 without a process handle.
func (c *Child) PID() int {
	if c == nil || c.process == nil {
		return 0
	}
	return c.process.PID()
}

// ExitCode returns the exit code once the extractor has exited.
func (c *Child) ExitCode() (int, bool) {
	code := c.exitCode.Load()
	if code == nil {
		return 0, false
	}
	return *code, true
}

// EventChannelAvailable reports whether the event channel was connected and started.
func (c *Child) EventChannelAvailable() bool {
	return c.channelAvailable.Load()
}

// AwaitExit blocks until the extractor exits and all of its events were delivered.
// A nonzero exit code is returned as domain.ErrChildFailure alongside the outcome.
func (c *Child) AwaitExit(ctx context.Context) (domain.ExitOutcome, error) {
	select {
	case <-c.exited:
	case <-ctx.Done():
		return domain.ExitOutcome{}, zerr.Wrap(ctx.Err(), "stopped waiting for extractor")
	}

	select {
	case <-c.eventsDone:
	case <-ctx.Done():
		return domain.ExitOutcome{}, zerr.Wrap(ctx.Err(), "stopped waiting for extractor events")
	}

	code, _ := c.ExitCode()
	outcome := domain.ExitOutcome{Code: code}
	return outcome, outcome.Err()
}

// Abort kills the extractor. It is a no-op once the extractor has exited and fails
// with domain.ErrNoProcessHandle when no process is known.
func (c *Child) Abort() error {
	if c == nil || c.process == nil {
		return zerr.Wrap(domain.ErrNoProcessHandle, "cannot abort extractor")
	}
	select {
	case <-c.exited:
		return nil
	default:
	}
	if err := c.process.Kill(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to kill extractor"), "pid", c.process.PID())
	}
	return nil
}
