package ports

import "go.trai.ch/vlr/internal/core/domain"

// VerificationLedger stores the last verification result per manifest.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type VerificationLedger interface {
	// Get retrieves the record for a manifest fingerprint.
	// Returns nil, nil if not found.
	Get(fingerprint string) (*domain.VerificationRecord, error)

	// Put stores the record, replacing any previous record for the same fingerprint.
	Put(record domain.VerificationRecord) error
}
