package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/zerr"
)

func entry(root, rel string) domain.ManifestEntry {
	return domain.ManifestEntry{RelativePath: rel, Path: filepath.Join(root, rel)}
}

func TestVerifier_TotalSize(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out1.txt"), []byte("content"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out2.txt"), []byte("more content"), 0o600))

	total, err := verifier.TotalSize([]domain.ManifestEntry{entry(tmpDir, "out1.txt"), entry(tmpDir, "out2.txt")})
	require.NoError(t, err)
	assert.Equal(t, int64(19), total)
}

func TestVerifier_MissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out1.txt"), []byte("content"), 0o600))

	_, err := fs.NewVerifier().TotalSize([]domain.ManifestEntry{entry(tmpDir, "out1.txt"), entry(tmpDir, "missing.txt")})
	require.ErrorIs(t, err, domain.ErrFileMissing)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, "missing.txt", zErr.Metadata()["path"])
}

func TestVerifier_DirectoryIsMissing(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir"), 0o750))

	_, err := fs.NewVerifier().TotalSize([]domain.ManifestEntry{entry(tmpDir, "dir")})
	require.ErrorIs(t, err, domain.ErrFileMissing)
}

func TestVerifier_Empty(t *testing.T) {
	total, err := fs.NewVerifier().TotalSize(nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}
