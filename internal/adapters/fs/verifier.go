package fs

import (
	"os"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SizeResolver = (*Verifier)(nil)

// Verifier checks that manifest entries exist before any hashing starts.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// TotalSize stats every entry in order and returns their summed size.
// The first entry that is absent, unreadable or not a regular file fails
// with domain.ErrFileMissing.
func (v *Verifier) TotalSize(entries []domain.ManifestEntry) (int64, error) {
	var total int64
	for _, entry := range entries {
		info, err := os.Stat(entry.Path)
		if err != nil {
			return 0, zerr.With(zerr.With(zerr.Wrap(domain.ErrFileMissing, "failed to stat file"),
				"path", entry.RelativePath), "os_error", err.Error())
		}
		if !info.Mode().IsRegular() {
			return 0, zerr.With(zerr.With(zerr.Wrap(domain.ErrFileMissing, "not a regular file"),
				"path", entry.RelativePath), "os_error", "is a directory or special file")
		}
		total += info.Size()
	}
	return total, nil
}
