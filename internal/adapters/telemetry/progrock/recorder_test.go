package progrock_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/telemetry/progrock"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/vlr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRecord_AttachesVertexToContext(t *testing.T) {
	recorder := progrock.New(mocks.NewMockLogger(gomock.NewController(t)))

	ctx, vertex := recorder.Record(context.Background(), "data/a.img", ports.WithKey("job/data/a.img"))
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)
}

func TestRecorder_LogsCompletedVertices(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	logger.EXPECT().Debug("step completed", "step", "sol0001/img.dat", "duration", gomock.Any())
	logger.EXPECT().Warn("step failed", "step", "sol0002/img.dat", "duration", gomock.Any(), "error", "digest mismatch")
	logger.EXPECT().Debug("step answered from ledger", "step", "manifest")

	recorder := progrock.New(logger)
	ctx := context.Background()

	_, ok := recorder.Record(ctx, "sol0001/img.dat")
	_, failed := recorder.Record(ctx, "sol0002/img.dat")

	_, err := failed.Stderr().Write([]byte("mismatch\n"))
	require.NoError(t, err)

	ok.Log(domain.LogLevelDebug, "digest matched")
	ok.Complete(nil)
	failed.Complete(errors.New("digest mismatch"))

	_, cached := recorder.Record(ctx, "manifest")
	cached.Cached()
	cached.Complete(nil)

	require.NoError(t, recorder.Close())
}

func TestNewJournal_WritesStatusLines(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	path := filepath.Join(t.TempDir(), "trace.jsonl")
	recorder, err := progrock.NewJournal(path, logger)
	require.NoError(t, err)

	_, vertex := recorder.Record(context.Background(), "manifest")
	vertex.Cached()
	vertex.Complete(nil)
	require.NoError(t, recorder.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name":"manifest"`)
	assert.Contains(t, string(data), `"cached":true`)
}

func TestNewJournal_UnwritablePath(t *testing.T) {
	logger := mocks.NewMockLogger(gomock.NewController(t))

	_, err := progrock.NewJournal(filepath.Join(t.TempDir(), "missing", "trace.jsonl"), logger)
	require.Error(t, err)
}

func TestNewVertexConfig_DefaultsKeyToName(t *testing.T) {
	assert.Equal(t, "a", ports.NewVertexConfig("a").Key)
	assert.Equal(t, "k", ports.NewVertexConfig("a", ports.WithKey("k")).Key)
}
