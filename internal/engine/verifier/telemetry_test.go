package verifier_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports/mocks"
	"go.trai.ch/vlr/internal/engine/verifier"
	"go.uber.org/mock/gomock"
)

func TestRun_RecordsVertexPerFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	dir := t.TempDir()
	empty := writeFile(t, dir, "empty.bin", nil)
	empty.ExpectedDigest = md5Empty
	bad := writeFile(t, dir, "bad.bin", []byte("b"))
	bad.ExpectedDigest = md5A
	job := domain.NewVerificationJob([]domain.ManifestEntry{empty, bad})

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).Times(1)

	okVertex := mocks.NewMockVertex(ctrl)
	badVertex := mocks.NewMockVertex(ctrl)
	telemetry := mocks.NewMockTelemetry(ctrl)

	gomock.InOrder(
		telemetry.EXPECT().Record(gomock.Any(), "empty.bin", gomock.Any()).
			Return(context.Background(), okVertex),
		okVertex.EXPECT().Complete(nil),
		telemetry.EXPECT().Record(gomock.Any(), "bad.bin", gomock.Any()).
			Return(context.Background(), badVertex),
		badVertex.EXPECT().Complete(gomock.Any()).Do(func(err error) {
			assert.ErrorIs(t, err, domain.ErrCorruptFile)
		}),
	)

	engine := verifier.NewEngine(fs.NewVerifier(), fs.NewStreamHasher(domain.DefaultChunkSize), telemetry, logger)
	outcome := engine.Run(context.Background(), job, &recordingReporter{})

	assert.Equal(t, domain.OutcomeFailed, outcome.Kind)
}
