package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/config"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func TestLoad_Defaults(t *testing.T) {
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()

	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultManifestName, cfg.ManifestName)
	assert.Equal(t, domain.DefaultChunkSize, cfg.ChunkSize)
	assert.Equal(t, domain.DefaultConnectRetryInterval, cfg.ConnectRetryInterval)
	assert.Equal(t, time.Duration(0), cfg.ConnectTimeout)
	assert.Equal(t, domain.OutputAuto, cfg.OutputMode)
	assert.NotEmpty(t, cfg.ChannelAddress)
	assert.NotEmpty(t, cfg.LedgerPath)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
data_root: /media/disc
mission_data_root: mission
chunk_size: 65536
connect_timeout: 30s
extractor_path: /opt/extractor
output_mode: linear
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/media/disc", cfg.DataRoot)
	assert.Equal(t, 65536, cfg.ChunkSize)
	assert.Equal(t, 30*time.Second, cfg.ConnectTimeout)
	assert.Equal(t, "/opt/extractor", cfg.ExtractorPath)
	assert.Equal(t, domain.OutputLinear, cfg.OutputMode)
	assert.Equal(t, filepath.Join("/media/disc", "mission", "Checksums"), cfg.ManifestPath())
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 65536\n"), 0o600))
	t.Setenv("VLR_CHUNK_SIZE", "4096")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.ChunkSize)
}

func TestLoad_InvalidChunkSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: 10\n"), 0o600))

	_, err := newLoader(t).Load(path)
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chunk_size: [\n"), 0o600))

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
}
