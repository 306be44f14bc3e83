package manifest

import (
	"bufio"
	"context"
	"io"
	"path/filepath"

	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestGenerator = (*Generator)(nil)

// Generator writes manifests for a directory tree, the inverse of Parser.
type Generator struct {
	walker  *fs.Walker
	hasher  ports.StreamHasher
	logger  ports.Logger
	ignores []string
}

// NewGenerator creates a Generator. Files named like the manifest itself are not listed.
func NewGenerator(walker *fs.Walker, hasher ports.StreamHasher, logger ports.Logger, manifestName string) *Generator {
	if manifestName == "" {
		manifestName = domain.DefaultManifestName
	}
	return &Generator{
		walker:  walker,
		hasher:  hasher,
		logger:  logger,
		ignores: []string{manifestName},
	}
}

// Generate hashes every regular file under dataRoot in lexical path order and
// writes one record per file.
func (g *Generator) Generate(ctx context.Context, dataRoot string, w io.Writer) (int, error) {
	files, err := g.walker.WalkFiles(ctx, dataRoot, g.ignores)
	if err != nil {
		return 0, err
	}

	bw := bufio.NewWriter(w)
	for i, rel := range files {
		digest, err := g.hasher.Hash(ctx, filepath.Join(dataRoot, filepath.FromSlash(rel)), nil, nil)
		if err != nil {
			return i, err
		}
		if _, err := bw.WriteString(digest + domain.RecordSeparator + rel + "\n"); err != nil {
			return i, zerr.Wrap(err, "failed to write manifest")
		}
		g.logger.Debug("hashed file", "path", rel, "digest", digest)
	}

	if err := bw.Flush(); err != nil {
		return len(files), zerr.Wrap(err, "failed to write manifest")
	}

	g.logger.Info("manifest generated", "root", dataRoot, "files", len(files))
	return len(files), nil
}
