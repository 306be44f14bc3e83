package ports

import (
	"context"
	"io"

	"go.trai.ch/vlr/internal/core/domain"
)

//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks

// ManifestParser reads checksum manifests.
type ManifestParser interface {
	// Parse reads the manifest at manifestPath and resolves every entry against dataRoot.
	Parse(manifestPath, dataRoot string) ([]domain.ManifestEntry, error)
}

// ManifestGenerator writes checksum manifests for a directory tree.
type ManifestGenerator interface {
	// Generate hashes every regular file under dataRoot and writes one record per file to w.
	// It returns the number of records written.
	Generate(ctx context.Context, dataRoot string, w io.Writer) (int, error)
}
