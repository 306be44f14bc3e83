package app

import (
	"context"
	"io"

	"go.trai.ch/zerr"
)

// GenerateManifest writes a checksum manifest for every file below dataRoot to w.
func (a *App) GenerateManifest(ctx context.Context, dataRoot string, w io.Writer) error {
	n, err := a.generator.Generate(ctx, dataRoot, w)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to generate manifest"), "data_root", dataRoot)
	}
	a.logger.Info("manifest generated", "data_root", dataRoot, "files", n)
	return nil
}
