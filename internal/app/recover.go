package app

import (
	"context"
	"errors"

	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/vlr/internal/engine/supervisor"
	"go.trai.ch/zerr"
)

// Recover runs the extractor over opts.InputRoot and relays its events to the renderer.
func (a *App) Recover(ctx context.Context, cfg *domain.Config, opts domain.RecoveryOptions) error {
	opts.EventChannel = cfg.ChannelAddress

	sup := supervisor.New(a.launchers(cfg.UsePTY), a.dialer, a.logger, supervisor.Options{
		Address:        cfg.ChannelAddress,
		RetryInterval:  cfg.ConnectRetryInterval,
		ConnectTimeout: cfg.ConnectTimeout,
	})

	telemetry, closeTrace, err := a.telemetryFor(cfg)
	if err != nil {
		return err
	}
	defer closeTrace()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := a.newRenderer("Recovering "+opts.InputRoot, cfg.OutputMode, cancel)

	return runWithRenderer(ctx, renderer, func(ctx context.Context) error {
		err := a.supervise(ctx, sup, telemetry, cfg.ExtractorPath, opts, renderer)
		if err != nil && !errors.Is(err, domain.ErrCancelled) {
			renderer.OnError(supervisor.FailureMessage(err))
		}
		return err
	})
}

func (a *App) supervise(
	ctx context.Context,
	sup *supervisor.Supervisor,
	telemetry ports.Telemetry,
	extractor string,
	opts domain.RecoveryOptions,
	renderer ports.Renderer,
) (err error) {
	vctx, vertex := telemetry.Record(ctx, "extractor", ports.WithKey(opts.InputRoot))
	defer func() { vertex.Complete(err) }()

	child, err := sup.Launch(vctx, extractor, opts.Args(), supervisor.Hooks{
		OnNotification: func(text string) {
			vertex.Log(domain.LogLevelInfo, text)
			renderer.OnNotification(text)
		},
		OnCaption: renderer.OnProgress,
	})
	if err != nil {
		return err
	}

	exit, err := child.AwaitExit(ctx)
	if ctx.Err() != nil {
		if abortErr := child.Abort(); abortErr != nil {
			a.logger.Warn("failed to stop extractor", "pid", child.PID(), "error", abortErr.Error())
		}
		return zerr.Wrap(domain.ErrCancelled, "recovery cancelled")
	}
	if err != nil {
		return err
	}

	a.logger.Info("extractor finished", "pid", child.PID(), "exit_code", exit.Code)
	return nil
}
