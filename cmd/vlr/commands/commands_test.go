package commands_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/cmd/vlr/commands"
	"go.trai.ch/vlr/internal/app"
	"go.trai.ch/vlr/internal/build"
	"go.trai.ch/vlr/internal/core/domain"
)

type mockApp struct {
	configPath string
	cfg        *domain.Config

	verifyFunc   func(ctx context.Context, cfg *domain.Config, opts app.VerifyOptions) error
	recoverFunc  func(ctx context.Context, cfg *domain.Config, opts domain.RecoveryOptions) error
	generateFunc func(ctx context.Context, dataRoot string, w io.Writer) error
}

func (m *mockApp) LoadConfig(path string) (*domain.Config, error) {
	m.configPath = path
	if m.cfg == nil {
		m.cfg = &domain.Config{
			DataRoot:             "/media/disc",
			ChunkSize:            domain.DefaultChunkSize,
			ConnectRetryInterval: domain.DefaultConnectRetryInterval,
			OutputMode:           domain.OutputAuto,
		}
	}
	return m.cfg, nil
}

func (m *mockApp) Verify(ctx context.Context, cfg *domain.Config, opts app.VerifyOptions) error {
	if m.verifyFunc != nil {
		return m.verifyFunc(ctx, cfg, opts)
	}
	return nil
}

func (m *mockApp) Recover(ctx context.Context, cfg *domain.Config, opts domain.RecoveryOptions) error {
	if m.recoverFunc != nil {
		return m.recoverFunc(ctx, cfg, opts)
	}
	return nil
}

func (m *mockApp) GenerateManifest(ctx context.Context, dataRoot string, w io.Writer) error {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, dataRoot, w)
	}
	return nil
}

func TestCommands_Verify(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedCfg *domain.Config
		var capturedOpts app.VerifyOptions

		mock := &mockApp{
			verifyFunc: func(_ context.Context, cfg *domain.Config, opts app.VerifyOptions) error {
				capturedCfg = cfg
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"verify", "--config", "vlr.yaml", "--trace", "/tmp/verify.jsonl",
			"--data-root", "/mnt/cd", "--manifest", "SUMS", "--chunk-size", "4096",
			"--format", "json", "--skip-verified", "--ci",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		require.NotNil(t, capturedCfg)
		assert.Equal(t, "vlr.yaml", mock.configPath)
		assert.Equal(t, "/tmp/verify.jsonl", capturedCfg.TracePath)
		assert.Equal(t, "/mnt/cd", capturedCfg.DataRoot)
		assert.Equal(t, "SUMS", capturedCfg.ManifestName)
		assert.Equal(t, 4096, capturedCfg.ChunkSize)
		assert.Equal(t, domain.OutputLinear, capturedCfg.OutputMode)
		assert.True(t, capturedOpts.SkipVerified)
		assert.Equal(t, "json", capturedOpts.Format)
	})

	t.Run("keeps config values for unset flags", func(t *testing.T) {
		var capturedCfg *domain.Config
		mock := &mockApp{
			verifyFunc: func(_ context.Context, cfg *domain.Config, _ app.VerifyOptions) error {
				capturedCfg = cfg
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"verify"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/media/disc", capturedCfg.DataRoot)
		assert.Equal(t, domain.OutputAuto, capturedCfg.OutputMode)
	})

	t.Run("rejects a tiny chunk size", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(context.Context, *domain.Config, app.VerifyOptions) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"verify", "--chunk-size", "10"})

		err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrInvalidConfig)
	})

	t.Run("returns error on verify failure", func(t *testing.T) {
		mock := &mockApp{
			verifyFunc: func(context.Context, *domain.Config, app.VerifyOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"verify"})

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Recover(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedCfg *domain.Config
		var capturedOpts domain.RecoveryOptions

		mock := &mockApp{
			recoverFunc: func(_ context.Context, cfg *domain.Config, opts domain.RecoveryOptions) error {
				capturedCfg = cfg
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"recover", "/mnt/cd/data", "/home/me/out",
			"--extractor", "/opt/extract", "--connect-timeout", "3s", "--pty",
			"--overwrite", "--directorize-sol", "--filter-lander", "2",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "/opt/extract", capturedCfg.ExtractorPath)
		assert.Equal(t, 3*time.Second, capturedCfg.ConnectTimeout)
		assert.True(t, capturedCfg.UsePTY)
		assert.Equal(t, "/mnt/cd/data", capturedOpts.InputRoot)
		assert.Equal(t, "/home/me/out", capturedOpts.OutputRoot)
		assert.True(t, capturedOpts.Overwrite)
		assert.True(t, capturedOpts.DirectorizeSol)
		assert.False(t, capturedOpts.DirectorizeMonth)
		assert.Equal(t, "2", capturedOpts.FilterLander)
		assert.Equal(t, domain.DefaultFilter, capturedOpts.FilterDiode)
	})

	t.Run("requires both roots", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"recover", "/only/one"})

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_ManifestGenerate(t *testing.T) {
	t.Run("writes to stdout", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, dataRoot string, w io.Writer) error {
				_, err := io.WriteString(w, "manifest for "+dataRoot)
				return err
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"manifest", "generate", "/mnt/cd"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, "manifest for /mnt/cd", buf.String())
	})

	t.Run("writes to a file", func(t *testing.T) {
		mock := &mockApp{
			generateFunc: func(_ context.Context, _ string, w io.Writer) error {
				_, err := io.WriteString(w, "content")
				return err
			},
		}

		out := filepath.Join(t.TempDir(), "Checksums")
		cli := commands.New(mock)
		cli.SetArgs([]string{"manifest", "generate", "/mnt/cd", "-o", out})

		require.NoError(t, cli.Execute(context.Background()))
		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
