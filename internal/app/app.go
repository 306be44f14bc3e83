// Package app implements the application layer for vlr.
package app

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/vlr/internal/adapters/detector"
	"go.trai.ch/vlr/internal/adapters/ledger"
	"go.trai.ch/vlr/internal/adapters/linear"
	"go.trai.ch/vlr/internal/adapters/logger"
	"go.trai.ch/vlr/internal/adapters/telemetry/progrock"
	"go.trai.ch/vlr/internal/adapters/tui"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// LauncherFactory returns a process launcher, attached to a pseudo terminal when usePTY is set.
type LauncherFactory func(usePTY bool) ports.ProcessLauncher

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	parser        ports.ManifestParser
	generator     ports.ManifestGenerator
	sizes         ports.SizeResolver
	fingerprinter ports.Fingerprinter
	telemetry     ports.Telemetry
	dialer        ports.EventChannelDialer
	launchers     LauncherFactory
	logger        ports.Logger
	ledgers       func(path string) (ports.VerificationLedger, error)

	stdout     io.Writer
	stderr     io.Writer
	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	parser ports.ManifestParser,
	generator ports.ManifestGenerator,
	sizes ports.SizeResolver,
	fingerprinter ports.Fingerprinter,
	telemetry ports.Telemetry,
	dialer ports.EventChannelDialer,
	launchers LauncherFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader:  loader,
		parser:        parser,
		generator:     generator,
		sizes:         sizes,
		fingerprinter: fingerprinter,
		telemetry:     telemetry,
		dialer:        dialer,
		launchers:     launchers,
		logger:        log,
		ledgers:       openLedgerStore,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithOutput redirects reports and linear output. Used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// LoadConfig loads the configuration and applies its log level.
func (a *App) LoadConfig(path string) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if l, ok := a.logger.(*logger.Logger); ok {
		l.SetLevel(logger.ParseLevel(cfg.LogLevel))
	}
	return cfg, nil
}

// newRenderer picks the TUI or the linear renderer for the environment.
// interrupt is called when the user presses ctrl+c inside the TUI.
func (a *App) newRenderer(title string, mode domain.OutputMode, interrupt func()) ports.Renderer {
	if detector.ResolveMode(detector.DetectEnvironment(), mode) == domain.OutputTUI {
		model := tui.NewModel(title).WithInterrupt(interrupt)
		// The program is not bound to ctx: the worker ends it through Stop once the
		// cancelled run has reported its outcome.
		opts := append([]tea.ProgramOption{tea.WithOutput(a.stderr)}, a.teaOptions...)
		return tui.NewRenderer(&model, opts...)
	}
	return linear.NewRenderer(a.stdout, a.stderr)
}

// runWithRenderer runs work next to the renderer and joins both.
// The renderer is stopped as soon as work returns.
func runWithRenderer(ctx context.Context, renderer ports.Renderer, work func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			_ = renderer.Stop()
		}()
		return work(gctx)
	})

	return g.Wait()
}

func openLedgerStore(path string) (ports.VerificationLedger, error) {
	return ledger.NewStore(path)
}

// telemetryFor returns the recorder for one run. With cfg.TracePath set the run
// is also journaled to that file, which the returned func closes.
func (a *App) telemetryFor(cfg *domain.Config) (ports.Telemetry, func(), error) {
	if cfg.TracePath == "" {
		return a.telemetry, func() {}, nil
	}
	rec, err := progrock.NewJournal(cfg.TracePath, a.logger)
	if err != nil {
		return nil, nil, err
	}
	return rec, func() {
		if err := rec.Close(); err != nil {
			a.logger.Warn("failed to close trace journal", "path", cfg.TracePath, "error", err.Error())
		}
	}, nil
}
