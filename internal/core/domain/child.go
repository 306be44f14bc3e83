package domain

import "go.trai.ch/zerr"

// EventKind distinguishes the two kinds of event the extractor emits.
type EventKind int

const (
	// EventNotification carries a human-readable status message.
	EventNotification EventKind = iota
	// EventProgress carries a completion percentage in [0, 100].
	EventProgress
)

// String returns the string representation of the EventKind.
func (k EventKind) String() string {
	switch k {
	case EventNotification:
		return "notification"
	case EventProgress:
		return "progress"
	default:
		return "unknown"
	}
}

// ChildEvent is one event received from the extractor's event channel.
type ChildEvent struct {
	Kind    EventKind
	Message string
	Percent float64
}

// SignalledExitCode is reported for a child that was terminated by a signal.
const SignalledExitCode = -1

// ExitOutcome is the exit status of the extractor.
type ExitOutcome struct {
	Code int
}

// Success reports whether the extractor exited with code zero.
func (e ExitOutcome) Success() bool {
	return e.Code == 0
}

// Err returns nil on success and ErrChildFailure carrying the exit code otherwise.
func (e ExitOutcome) Err() error {
	if e.Success() {
		return nil
	}
	return zerr.With(zerr.Wrap(ErrChildFailure, "extractor failed"), "exit_code", e.Code)
}
