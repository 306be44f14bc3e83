package ports

import (
	"context"

	"go.trai.ch/vlr/internal/core/domain"
)

// StreamHasher computes the content digest of a file in fixed-size chunks.
//
//go:generate mockgen -destination=mocks/hasher_mock.go -package=mocks -source=hasher.go
type StreamHasher interface {
	// Hash returns the lowercase hex digest of the file at path.
	// onProgress is called with the size of every chunk read; shouldStop is checked
	// after each chunk and makes Hash return domain.ErrHashStopped when it reports true.
	Hash(ctx context.Context, path string, onProgress func(n int64), shouldStop func() bool) (string, error)
}

// Fingerprinter computes a fast content fingerprint used to key stored records.
type Fingerprinter interface {
	Fingerprint(path string) (string, error)
}

// SizeResolver checks manifest entries on disk before hashing.
type SizeResolver interface {
	// TotalSize returns the summed size of all entries, failing with
	// domain.ErrFileMissing on the first entry that is not a readable regular file.
	TotalSize(entries []domain.ManifestEntry) (int64, error)
}
