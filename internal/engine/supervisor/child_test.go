package supervisor_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports/mocks"
	"go.trai.ch/vlr/internal/engine/supervisor"
	"go.uber.org/mock/gomock"
)

func TestChild_AbortWithoutProcess(t *testing.T) {
	var child *supervisor.Child
	require.ErrorIs(t, child.Abort(), domain.ErrNoProcessHandle)
	require.ErrorIs(t, (&supervisor.Child{}).Abort(), domain.ErrNoProcessHandle)
}

func TestChild_AbortKillsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)

	killed := make(chan struct{})
	proc := mocks.NewMockProcess(ctrl)
	proc.EXPECT().PID().Return(4242).AnyTimes()
	proc.EXPECT().Wait().DoAndReturn(func() domain.ExitOutcome {
		<-killed
		return domain.ExitOutcome{Code: domain.SignalledExitCode}
	})
	proc.EXPECT().Kill().DoAndReturn(func() error {
		close(killed)
		return nil
	}).Times(1)

	launcher := mocks.NewMockProcessLauncher(ctrl)
	launcher.EXPECT().Start(gomock.Any(), "/opt/extractor", []string{"--suppress"}).Return(proc, nil)

	stream := mocks.NewMockEventStream(ctrl)
	stream.EXPECT().Recv().DoAndReturn(func() (domain.ChildEvent, error) {
		<-killed
		return domain.ChildEvent{}, io.EOF
	})

	channel := mocks.NewMockEventChannel(ctrl)
	gomock.InOrder(
		channel.EXPECT().Subscribe(gomock.Any()).Return(stream, nil),
		channel.EXPECT().Start(gomock.Any()).Return(nil),
	)
	channel.EXPECT().Close().Return(nil)

	dialer := mocks.NewMockEventChannelDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), "/run/vlr.sock").Return(channel, nil)

	sup := supervisor.New(launcher, dialer, quietLogger(t), supervisor.Options{Address: "/run/vlr.sock"})

	child, err := sup.Launch(context.Background(), "/opt/extractor", []string{"--suppress"}, supervisor.Hooks{})
	require.NoError(t, err)
	assert.Equal(t, 4242, child.PID())

	_, exited := child.ExitCode()
	assert.False(t, exited)

	require.NoError(t, child.Abort())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	outcome, err := child.AwaitExit(ctx)
	require.ErrorIs(t, err, domain.ErrChildFailure)
	assert.Equal(t, domain.SignalledExitCode, outcome.Code)

	require.NoError(t, child.Abort(), "aborting an exited child is a no-op")
}

func TestChild_AwaitExitHonoursContext(t *testing.T) {
	ctrl := gomock.NewController(t)

	release := make(chan struct{})

	proc := mocks.NewMockProcess(ctrl)
	proc.EXPECT().PID().Return(7).AnyTimes()
	proc.EXPECT().Wait().DoAndReturn(func() domain.ExitOutcome {
		<-release
		return domain.ExitOutcome{}
	})

	launcher := mocks.NewMockProcessLauncher(ctrl)
	launcher.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).Return(proc, nil)

	stream := mocks.NewMockEventStream(ctrl)
	stream.EXPECT().Recv().DoAndReturn(func() (domain.ChildEvent, error) {
		<-release
		return domain.ChildEvent{}, io.EOF
	})
	channel := mocks.NewMockEventChannel(ctrl)
	channel.EXPECT().Subscribe(gomock.Any()).Return(stream, nil)
	channel.EXPECT().Start(gomock.Any()).Return(nil)
	channel.EXPECT().Close().Return(nil).AnyTimes()
	dialer := mocks.NewMockEventChannelDialer(ctrl)
	dialer.EXPECT().Dial(gomock.Any(), gomock.Any()).Return(channel, nil)

	sup := supervisor.New(launcher, dialer, quietLogger(t), supervisor.Options{})
	child, err := sup.Launch(context.Background(), "x", nil, supervisor.Hooks{})
	require.NoError(t, err)
	t.Cleanup(func() {
		close(release)
		_, _ = child.AwaitExit(context.Background())
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = child.AwaitExit(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
