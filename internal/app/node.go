package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vlr/internal/adapters/config"
	"go.trai.ch/vlr/internal/adapters/eventchannel"
	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/adapters/logger"
	"go.trai.ch/vlr/internal/adapters/manifest"
	"go.trai.ch/vlr/internal/adapters/process"
	"go.trai.ch/vlr/internal/adapters/telemetry/progrock"
	"go.trai.ch/vlr/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			manifest.ParserNodeID,
			manifest.GeneratorNodeID,
			fs.VerifierNodeID,
			fs.FingerprinterNodeID,
			progrock.NodeID,
			eventchannel.NodeID,
			process.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	parser, err := graft.Dep[ports.ManifestParser](ctx)
	if err != nil {
		return nil, err
	}

	generator, err := graft.Dep[ports.ManifestGenerator](ctx)
	if err != nil {
		return nil, err
	}

	sizes, err := graft.Dep[ports.SizeResolver](ctx)
	if err != nil {
		return nil, err
	}

	fingerprinter, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	dialer, err := graft.Dep[ports.EventChannelDialer](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[*process.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	launchers := func(usePTY bool) ports.ProcessLauncher {
		return launcher.WithPTY(usePTY)
	}

	return New(loader, parser, generator, sizes, fingerprinter, telemetry, dialer, launchers, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          app,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
