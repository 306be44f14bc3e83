package manifest_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/adapters/manifest"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestGenerator_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any(), gomock.Any()).AnyTimes()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sol0001"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sol0001", "img.dat"), []byte("hello world"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.DefaultManifestName), []byte("stale"), 0o600))

	gen := manifest.NewGenerator(fs.NewWalker(), fs.NewStreamHasher(domain.DefaultChunkSize), log, "")

	var buf bytes.Buffer
	n, err := gen.Generate(context.Background(), root, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t,
		"d41d8cd98f00b204e9800998ecf8427e  a.txt\n"+
			"5eb63bbbe01eeed093cb22bb8f5acdc3  sol0001/img.dat\n",
		buf.String())

	manifestPath := filepath.Join(root, domain.DefaultManifestName)
	require.NoError(t, os.WriteFile(manifestPath, buf.Bytes(), 0o600))

	entries, err := manifest.NewParser(log).Parse(manifestPath, root)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, filepath.Join(root, "sol0001", "img.dat"), entries[1].Path)
}

func TestGenerator_HashError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	hasher := mocks.NewMockStreamHasher(ctrl)

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a"), []byte("a"), 0o600))

	hasher.EXPECT().Hash(gomock.Any(), filepath.Join(root, "a"), gomock.Any(), gomock.Any()).
		Return("", domain.ErrIO)

	gen := manifest.NewGenerator(fs.NewWalker(), hasher, log, "")
	n, err := gen.Generate(context.Background(), root, &bytes.Buffer{})
	require.ErrorIs(t, err, domain.ErrIO)
	assert.Zero(t, n)
}
