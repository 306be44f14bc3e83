package domain

import (
	"time"

	"github.com/google/uuid"
)

// OutcomeKind classifies how a verification run ended.
type OutcomeKind string

const (
	// OutcomeSucceeded means every file matched its expected digest.
	OutcomeSucceeded OutcomeKind = "succeeded"
	// OutcomeFailed means a file was missing, unreadable or corrupt.
	OutcomeFailed OutcomeKind = "failed"
	// OutcomeCancelled means the run stopped on request.
	OutcomeCancelled OutcomeKind = "cancelled"
)

// Outcome is the result of a verification run.
type Outcome struct {
	Kind OutcomeKind
	// Err is set for failed runs and carries the path and OS error as metadata.
	Err error
	// Path is the relative path of the offending file, if any.
	Path          string
	JobID         uuid.UUID
	VerifiedBytes int64
	TotalBytes    int64
	Duration      time.Duration
	// Skipped is set when the run was answered from the ledger without hashing.
	Skipped bool
}

// Fraction returns the verified fraction of the run in [0, 1].
func (o Outcome) Fraction() float64 {
	if o.TotalBytes <= 0 {
		if o.Kind == OutcomeSucceeded {
			return 1
		}
		return 0
	}
	return float64(o.VerifiedBytes) / float64(o.TotalBytes)
}

// Succeeded reports whether the run verified every file.
func (o Outcome) Succeeded() bool {
	return o.Kind == OutcomeSucceeded
}
