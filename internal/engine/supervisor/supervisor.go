// Package supervisor launches the extractor and relays its events.
package supervisor

import (
	"context"
	"time"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
)

// Options configure how the supervisor finds the extractor's event channel.
type Options struct {
	// Address is where the extractor serves its event channel.
	Address string
	// RetryInterval is the pause between connection attempts.
	RetryInterval time.Duration
	// ConnectTimeout bounds the wait for the event channel. Zero waits until the child exits.
	ConnectTimeout time.Duration
}

// Supervisor launches the extractor, waits for its event channel and forwards its events.
type Supervisor struct {
	launcher ports.ProcessLauncher
	dialer   ports.EventChannelDialer
	logger   ports.Logger
	opts     Options
}

// New creates a new Supervisor.
func New(launcher ports.ProcessLauncher, dialer ports.EventChannelDialer, logger ports.Logger, opts Options) *Supervisor {
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = domain.DefaultConnectRetryInterval
	}
	return &Supervisor{
		launcher: launcher,
		dialer:   dialer,
		logger:   logger,
		opts:     opts,
	}
}

// Launch starts the extractor and blocks until its event channel is connected and
// started, or until the child exits without ever exposing it. In the latter case the
// returned Child delivers no events and AwaitExit reports the exit code.
//
// hooks.Pump runs once per connection attempt. Cancelling ctx or exceeding the
// connect timeout kills the child; the timeout fails with domain.ErrChannelTimeout.
func (s *Supervisor) Launch(ctx context.Context, path string, args []string, hooks Hooks) (*Child, error) {
	proc, err := s.launcher.Start(ctx, path, args)
	if err != nil {
		return nil, err
	}
	child := newChild(proc)
	s.logger.Info("extractor started", "pid", proc.PID(), "path", path)

	channel, err := s.connect(ctx, child, &hooks)
	if err != nil {
		_ = child.Abort()
		<-child.exited
		return nil, err
	}
	if channel == nil {
		s.logger.Warn("extractor exited before exposing its event channel", "pid", proc.PID())
		close(child.eventsDone)
		return child, nil
	}

	if err := s.subscribe(ctx, child, channel, &hooks); err != nil {
		_ = channel.Close()
		_ = child.Abort()
		<-child.exited
		return nil, err
	}
	return child, nil
}

// connect polls the event channel until it answers. It returns a nil channel when the
// child exits first.
func (s *Supervisor) connect(ctx context.Context, child *Child, hooks *Hooks) (ports.EventChannel, error) {
	ticker := time.NewTicker(s.opts.RetryInterval)
	defer ticker.Stop()

	var timeout <-chan time.Time
	if s.opts.ConnectTimeout > 0 {
		timer := time.NewTimer(s.opts.ConnectTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	for attempt := 1; ; attempt++ {
		hooks.pump()

		channel, err := s.dialer.Dial(ctx, s.opts.Address)
		if err == nil {
			s.logger.Debug("event channel connected", "address", s.opts.Address, "attempts", attempt)
			return channel, nil
		}

		select {
		case <-child.exited:
			return nil, nil
		case <-ctx.Done():
			return nil, zerr.Wrap(domain.ErrCancelled, "stopped waiting for extractor event channel")
		case <-timeout:
			err := zerr.Wrap(domain.ErrChannelTimeout, "extractor event channel did not appear")
			err = zerr.With(err, "address", s.opts.Address)
			return nil, zerr.With(err, "timeout", s.opts.ConnectTimeout.String())
		case <-ticker.C:
		}
	}
}

// subscribe opens the event stream before starting the extractor so that no early
// events are lost, then relays events on a dedicated goroutine.
func (s *Supervisor) subscribe(ctx context.Context, child *Child, channel ports.EventChannel, hooks *Hooks) error {
	stream, err := channel.Subscribe(ctx)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to subscribe to extractor events"), "address", s.opts.Address)
	}
	if err := channel.Start(ctx); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to start extractor"), "address", s.opts.Address)
	}
	child.channelAvailable.Store(true)

	go func() {
		defer close(child.eventsDone)
		defer channel.Close() //nolint:errcheck // Best effort close in defer
		if err := relay(stream, hooks); err != nil {
			s.logger.Debug("event stream ended", "error", err.Error())
		}
	}()
	return nil
}
