// Package verifier implements the disc integrity verification engine.
package verifier

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

// CompleteLabel is the caption of the final progress report of a successful run.
const CompleteLabel = "Verification complete"

// Engine hashes every manifest entry in order and compares it with its expected digest.
type Engine struct {
	sizes     ports.SizeResolver
	hasher    ports.StreamHasher
	telemetry ports.Telemetry
	logger    ports.Logger
}

// NewEngine creates a new Engine.
func NewEngine(
	sizes ports.SizeResolver,
	hasher ports.StreamHasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Engine {
	return &Engine{
		sizes:     sizes,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
	}
}

// Run verifies job and reports to reporter.
//
// The run fails fast on the first missing, unreadable or corrupt file. Cancellation,
// through job.Cancel or ctx, is checked at every chunk boundary and between files.
// reporter.OnDone is called exactly once, preceded by OnError for failed runs.
// A job that was already run is rejected with domain.ErrJobNotIdle and nothing is reported.
func (e *Engine) Run(ctx context.Context, job *domain.VerificationJob, reporter ports.ProgressReporter) domain.Outcome {
	if err := job.Begin(); err != nil {
		return domain.Outcome{Kind: domain.OutcomeFailed, Err: err, JobID: job.ID}
	}

	stopWatch := context.AfterFunc(ctx, func() { job.Cancel() })
	defer stopWatch()

	start := time.Now()
	e.logger.Info("verification started", "job", job.ID.String(), "files", len(job.Entries))

	outcome := e.run(ctx, job, reporter)
	outcome.JobID = job.ID
	outcome.Duration = time.Since(start)

	switch outcome.Kind {
	case domain.OutcomeSucceeded:
		job.Finish(domain.JobSucceeded)
		reporter.OnProgress(caption(CompleteLabel, 1), 1)
	case domain.OutcomeCancelled:
		job.Finish(domain.JobCancelled)
	default:
		job.Finish(domain.JobFailed)
		reporter.OnError(failureMessage(&outcome))
	}
	outcome.VerifiedBytes = job.VerifiedBytes()
	outcome.TotalBytes = job.TotalBytes()

	reporter.OnDone(outcome)

	e.logger.Info("verification finished",
		"job", job.ID.String(),
		"outcome", string(outcome.Kind),
		"verified_bytes", outcome.VerifiedBytes,
		"total_bytes", outcome.TotalBytes,
		"duration", outcome.Duration.String(),
	)
	if outcome.Err != nil {
		e.logger.Error(outcome.Err)
	}
	return outcome
}

func (e *Engine) run(ctx context.Context, job *domain.VerificationJob, reporter ports.ProgressReporter) domain.Outcome {
	total, err := e.sizes.TotalSize(job.Entries)
	if err != nil {
		return domain.Outcome{Kind: domain.OutcomeFailed, Err: err, Path: metaString(err, "path")}
	}
	if cancelled(ctx, job) {
		return domain.Outcome{Kind: domain.OutcomeCancelled}
	}
	job.StartHashing(total)

	for i := range job.Entries {
		if cancelled(ctx, job) {
			return domain.Outcome{Kind: domain.OutcomeCancelled, Path: job.Entries[i].RelativePath}
		}
		if outcome, done := e.verifyEntry(ctx, job, &job.Entries[i], reporter); done {
			return outcome
		}
	}

	return domain.Outcome{Kind: domain.OutcomeSucceeded}
}

// verifyEntry hashes one file. It reports done with a terminal outcome when the run must stop.
func (e *Engine) verifyEntry(
	ctx context.Context,
	job *domain.VerificationJob,
	entry *domain.ManifestEntry,
	reporter ports.ProgressReporter,
) (domain.Outcome, bool) {
	vctx, vertex := e.telemetry.Record(ctx, entry.RelativePath,
		ports.WithKey(job.ID.String()+"/"+entry.RelativePath))

	base := filepath.Base(entry.RelativePath)
	reporter.OnProgress(caption(base, job.Fraction()), job.Fraction())

	onProgress := func(n int64) {
		job.AddVerified(n)
		fraction := job.Fraction()
		reporter.OnProgress(caption(base, fraction), fraction)
	}

	digest, err := e.hasher.Hash(vctx, entry.Path, onProgress, job.CancelRequested)
	switch {
	case errors.Is(err, domain.ErrHashStopped):
		vertex.Complete(zerr.Wrap(domain.ErrCancelled, "verification cancelled"))
		return domain.Outcome{Kind: domain.OutcomeCancelled, Path: entry.RelativePath}, true
	case err != nil:
		err = zerr.With(zerr.Wrap(err, "failed to hash file"), "file", entry.RelativePath)
		vertex.Complete(err)
		return domain.Outcome{Kind: domain.OutcomeFailed, Err: err, Path: entry.RelativePath}, true
	}

	if !strings.EqualFold(digest, entry.ExpectedDigest) {
		err := zerr.Wrap(domain.ErrCorruptFile, "checksum mismatch")
		err = zerr.With(err, "path", entry.RelativePath)
		err = zerr.With(err, "expected", strings.ToLower(entry.ExpectedDigest))
		err = zerr.With(err, "actual", digest)
		vertex.Complete(err)
		return domain.Outcome{Kind: domain.OutcomeFailed, Err: err, Path: entry.RelativePath}, true
	}

	vertex.Complete(nil)
	e.logger.Debug("file verified", "path", entry.RelativePath, "digest", digest)
	return domain.Outcome{}, false
}

func cancelled(ctx context.Context, job *domain.VerificationJob) bool {
	if ctx.Err() != nil {
		job.Cancel()
		return true
	}
	return job.CancelRequested()
}

func caption(name string, fraction float64) string {
	return fmt.Sprintf("%s (%.0f%%)", name, fraction*100)
}

// failureMessage names the file and the underlying OS error or mismatch.
func failureMessage(o *domain.Outcome) string {
	switch {
	case errors.Is(o.Err, domain.ErrCorruptFile):
		return fmt.Sprintf("%s: checksum mismatch (expected %s, got %s)",
			o.Path, metaString(o.Err, "expected"), metaString(o.Err, "actual"))
	case errors.Is(o.Err, domain.ErrFileMissing):
		return fmt.Sprintf("%s: missing (%s)", o.Path, metaString(o.Err, "os_error"))
	case errors.Is(o.Err, domain.ErrIO):
		return fmt.Sprintf("%s: read error (%s)", o.Path, metaString(o.Err, "os_error"))
	case o.Path != "":
		return fmt.Sprintf("%s: %v", o.Path, o.Err)
	default:
		return o.Err.Error()
	}
}

// metaString returns the first string value stored under key along the error chain.
func metaString(err error, key string) string {
	for err != nil {
		var ze *zerr.Error
		if !errors.As(err, &ze) {
			return ""
		}
		if v, ok := ze.Metadata()[key]; ok {
			return fmt.Sprint(v)
		}
		err = ze.Unwrap()
	}
	return ""
}
