package ports

import (
	"context"

	"go.trai.ch/vlr/internal/core/domain"
)

// ProgressReporter is the sink the engines report to.
// Implementations must be safe to call from a worker goroutine.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type ProgressReporter interface {
	// OnProgress reports a caption and an overall fraction in [0, 1].
	OnProgress(label string, fraction float64)

	// OnDone is called exactly once when a verification run ends.
	OnDone(outcome domain.Outcome)

	// OnError reports a human-readable failure message. For failed runs it is
	// called before OnDone.
	OnError(message string)
}

// Renderer is the abstraction for output rendering.
// It allows the same progress stream to drive either a rich TUI or linear CI logs.
type Renderer interface {
	ProgressReporter

	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to stop accepting new events and prepare for shutdown.
	// It should flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	// For synchronous renderers, this may return immediately.
	Wait() error

	// OnNotification shows a status message from the extractor.
	OnNotification(text string)
}
