package app

import (
	"context"
	"errors"
	"io"
	"time"

	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/adapters/report"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/vlr/internal/engine/verifier"
	"go.trai.ch/zerr"
)

// VerifyOptions controls a verification run.
type VerifyOptions struct {
	// SkipVerified answers from the ledger when the manifest already verified successfully.
	SkipVerified bool
	// Format selects a machine-readable report. Empty writes no report.
	Format string
	// Output receives the report. Defaults to stdout.
	Output io.Writer
}

// Verify checks the mission data under cfg against its manifest.
func (a *App) Verify(ctx context.Context, cfg *domain.Config, opts VerifyOptions) error {
	var format report.Format
	if opts.Format != "" {
		f, err := report.ParseFormat(opts.Format)
		if err != nil {
			return err
		}
		format = f
	}

	manifestPath := cfg.ManifestPath()
	dataRoot := cfg.MissionRoot()

	entries, err := a.parser.Parse(manifestPath, dataRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to read manifest")
	}

	store, fingerprint := a.openLedger(cfg, manifestPath)

	telemetry, closeTrace, err := a.telemetryFor(cfg)
	if err != nil {
		return err
	}
	defer closeTrace()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := a.newRenderer("Verifying "+dataRoot, cfg.OutputMode, cancel)

	var outcome domain.Outcome
	err = runWithRenderer(ctx, renderer, func(ctx context.Context) error {
		if opts.SkipVerified && store != nil {
			if rec, getErr := store.Get(fingerprint); getErr == nil && rec.Covers(dataRoot) {
				a.logger.Info("manifest already verified", "manifest", manifestPath, "verified_at", rec.Timestamp.String())
				_, vertex := telemetry.Record(ctx, "manifest", ports.WithKey(fingerprint))
				vertex.Cached()
				vertex.Complete(nil)
				outcome = domain.Outcome{
					Kind:          domain.OutcomeSucceeded,
					VerifiedBytes: rec.TotalBytes,
					TotalBytes:    rec.TotalBytes,
					Skipped:       true,
				}
				renderer.OnProgress(verifier.CompleteLabel, 1)
				renderer.OnDone(outcome)
				return nil
			}
		}

		engine := verifier.NewEngine(a.sizes, fs.NewStreamHasher(cfg.ChunkSize), telemetry, a.logger)
		outcome = engine.Run(ctx, domain.NewVerificationJob(entries), renderer)
		return nil
	})
	if err != nil {
		return errors.Join(domain.ErrVerificationFailed, err)
	}

	if store != nil && !outcome.Skipped && outcome.Kind != domain.OutcomeCancelled {
		a.record(store, fingerprint, manifestPath, dataRoot, &outcome)
	}

	if opts.Format != "" {
		w := opts.Output
		if w == nil {
			w = a.stdout
		}
		r := report.New(&outcome, manifestPath, dataRoot)
		if err := report.Write(w, format, &r); err != nil {
			return zerr.Wrap(err, "failed to write report")
		}
	}

	switch outcome.Kind {
	case domain.OutcomeSucceeded:
		return nil
	case domain.OutcomeCancelled:
		return zerr.Wrap(domain.ErrCancelled, "verification cancelled")
	default:
		return errors.Join(domain.ErrVerificationFailed, outcome.Err)
	}
}

// openLedger opens the ledger and fingerprints the manifest. Ledger problems
// only cost the skip optimisation, so they are logged and a nil store is returned.
func (a *App) openLedger(cfg *domain.Config, manifestPath string) (ports.VerificationLedger, string) {
	if cfg.LedgerPath == "" {
		return nil, ""
	}
	fingerprint, err := a.fingerprinter.Fingerprint(manifestPath)
	if err != nil {
		a.logger.Warn("failed to fingerprint manifest", "manifest", manifestPath, "error", err.Error())
		return nil, ""
	}
	store, err := a.ledgers(cfg.LedgerPath)
	if err != nil {
		a.logger.Warn("failed to open verification ledger", "path", cfg.LedgerPath, "error", err.Error())
		return nil, ""
	}
	return store, fingerprint
}

func (a *App) record(store ports.VerificationLedger, fingerprint, manifestPath, dataRoot string, outcome *domain.Outcome) {
	rec := domain.VerificationRecord{
		Fingerprint:   fingerprint,
		ManifestPath:  manifestPath,
		DataRoot:      dataRoot,
		JobID:         outcome.JobID.String(),
		Outcome:       outcome.Kind,
		FailedPath:    outcome.Path,
		VerifiedBytes: outcome.VerifiedBytes,
		TotalBytes:    outcome.TotalBytes,
		Timestamp:     time.Now().UTC(),
	}
	if err := store.Put(rec); err != nil {
		a.logger.Warn("failed to record verification", "manifest", manifestPath, "error", err.Error())
	}
}
