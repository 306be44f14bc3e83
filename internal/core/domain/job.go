package domain

import (
	"sync/atomic"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// JobState represents the lifecycle state of a verification job.
type JobState int32

const (
	// JobIdle is the state of a job that has not been run.
	JobIdle JobState = iota
	// JobPrecomputing indicates the engine is stat-ing every entry to learn the total size.
	JobPrecomputing
	// JobHashing indicates the engine is hashing files in manifest order.
	JobHashing
	// JobSucceeded indicates every file matched its expected digest.
	JobSucceeded
	// JobFailed indicates a file was missing, unreadable or corrupt.
	JobFailed
	// JobCancelled indicates the job stopped because cancellation was requested.
	JobCancelled
)

// String returns the string representation of the JobState.
func (s JobState) String() string {
	switch s {
	case JobIdle:
		return "idle"
	case JobPrecomputing:
		return "precomputing"
	case JobHashing:
		return "hashing"
	case JobSucceeded:
		return "succeeded"
	case JobFailed:
		return "failed"
	case JobCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transitions are possible from s.
func (s JobState) IsTerminal() bool {
	return s == JobSucceeded || s == JobFailed || s == JobCancelled
}

// VerificationJob is one verification run over a manifest.
// Counters and flags are safe to read from any goroutine while the engine runs the job.
type VerificationJob struct {
	ID      uuid.UUID
	Entries []ManifestEntry

	totalBytes      atomic.Int64
	verifiedBytes   atomic.Int64
	cancelRequested atomic.Bool
	state           atomic.Int32
}

// NewVerificationJob creates an idle job over the given entries.
func NewVerificationJob(entries []ManifestEntry) *VerificationJob {
	return &VerificationJob{
		ID:      uuid.New(),
		Entries: entries,
	}
}

// State returns the current state of the job.
func (j *VerificationJob) State() JobState {
	return JobState(j.state.Load())
}

// Begin moves the job from Idle to Precomputing.
// A job can only be run once.
func (j *VerificationJob) Begin() error {
	if !j.state.CompareAndSwap(int32(JobIdle), int32(JobPrecomputing)) {
		return zerr.With(zerr.Wrap(ErrJobNotIdle, "cannot run job"), "state", j.State().String())
	}
	return nil
}

// StartHashing fixes the total size and moves the job from Precomputing to Hashing.
func (j *VerificationJob) StartHashing(total int64) bool {
	j.totalBytes.Store(total)
	return j.state.CompareAndSwap(int32(JobPrecomputing), int32(JobHashing))
}

// Finish moves a running job into a terminal state.
func (j *VerificationJob) Finish(to JobState) bool {
	if !to.IsTerminal() {
		return false
	}
	for {
		cur := j.State()
		if cur != JobPrecomputing && cur != JobHashing {
			return false
		}
		if j.state.CompareAndSwap(int32(cur), int32(to)) {
			return true
		}
	}
}

// Cancel requests cooperative cancellation.
// It only has an effect while the job is precomputing or hashing and reports
// whether the job is now marked cancelled. Repeated calls are harmless.
func (j *VerificationJob) Cancel() bool {
	switch j.State() {
	case JobPrecomputing, JobHashing:
		j.cancelRequested.Store(true)
		return true
	default:
		return j.cancelRequested.Load()
	}
}

// CancelRequested reports whether Cancel took effect.
func (j *VerificationJob) CancelRequested() bool {
	return j.cancelRequested.Load()
}

// AddVerified adds n hashed bytes to the running counter, never exceeding the total.
// It returns the new counter value.
func (j *VerificationJob) AddVerified(n int64) int64 {
	total := j.totalBytes.Load()
	for {
		cur := j.verifiedBytes.Load()
		next := cur + n
		if next > total {
			next = total
		}
		if j.verifiedBytes.CompareAndSwap(cur, next) {
			return next
		}
	}
}

// VerifiedBytes returns the number of bytes hashed so far.
func (j *VerificationJob) VerifiedBytes() int64 {
	return j.verifiedBytes.Load()
}

// TotalBytes returns the summed size of all entries, known once hashing started.
func (j *VerificationJob) TotalBytes() int64 {
	return j.totalBytes.Load()
}

// Fraction returns verified/total in [0, 1].
// An empty job reports 1 once it has succeeded and 0 before.
func (j *VerificationJob) Fraction() float64 {
	total := j.totalBytes.Load()
	if total <= 0 {
		if j.State() == JobSucceeded {
			return 1
		}
		return 0
	}
	f := float64(j.verifiedBytes.Load()) / float64(total)
	if f > 1 {
		return 1
	}
	return f
}
