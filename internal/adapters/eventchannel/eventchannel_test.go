package eventchannel_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/adapters/eventchannel"
	"go.trai.ch/vlr/internal/core/domain"
)

// socketAddress returns a short socket path; unix socket paths are limited to ~100 bytes.
func socketAddress(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "vlr")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	return filepath.Join(dir, "x.sock")
}

func TestDial_NothingListening(t *testing.T) {
	_, err := eventchannel.NewDialer().Dial(context.Background(), socketAddress(t))
	require.Error(t, err)
}

func TestSubscribeStartAndEvents(t *testing.T) {
	addr := socketAddress(t)
	srv, err := eventchannel.Listen(addr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := eventchannel.NewDialer().Dial(ctx, addr)
	require.NoError(t, err)
	defer client.Close() //nolint:errcheck // test cleanup

	stream, err := client.Subscribe(ctx)
	require.NoError(t, err)

	extractorDone := make(chan error, 1)
	go func() {
		if err := srv.WaitStarted(ctx); err != nil {
			extractorDone <- err
			return
		}
		_ = srv.Notify("Extracting")
		_ = srv.Progress(12.5)
		_ = srv.Progress(7)
		_ = srv.Notify("Done")
		extractorDone <- srv.Close()
	}()

	require.NoError(t, client.Start(ctx))

	var events []domain.ChildEvent
	for {
		ev, err := stream.Recv()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		events = append(events, ev)
	}
	require.NoError(t, <-extractorDone)

	assert.Equal(t, []domain.ChildEvent{
		{Kind: domain.EventNotification, Message: "Extracting"},
		{Kind: domain.EventProgress, Percent: 12.5},
		{Kind: domain.EventProgress, Percent: 7},
		{Kind: domain.EventNotification, Message: "Done"},
	}, events)
}

func TestListen_ReplacesStaleSocket(t *testing.T) {
	addr := socketAddress(t)
	require.NoError(t, os.WriteFile(addr, nil, 0o600))

	srv, err := eventchannel.Listen(addr)
	require.NoError(t, err)
	assert.Equal(t, addr, srv.Address())
	require.NoError(t, srv.Close())

	_, statErr := os.Stat(addr)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPublishAfterClose(t *testing.T) {
	srv, err := eventchannel.Listen(socketAddress(t))
	require.NoError(t, err)
	require.NoError(t, srv.Close())

	require.Error(t, srv.Notify("late"))
}

func TestWaitStarted_Cancelled(t *testing.T) {
	srv, err := eventchannel.Listen(socketAddress(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, srv.WaitStarted(ctx), context.Canceled)
}
