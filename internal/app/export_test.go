package app

import (
	"context"

	"go.trai.ch/vlr/internal/core/ports"
)

// WithLedger replaces the ledger store for testing.
func (a *App) WithLedger(l ports.VerificationLedger) *App {
	a.ledgers = func(string) (ports.VerificationLedger, error) { return l, nil }
	return a
}

// RunWithRenderer exposes runWithRenderer for testing.
func RunWithRenderer(ctx context.Context, r ports.Renderer, work func(context.Context) error) error {
	return runWithRenderer(ctx, r, work)
}
