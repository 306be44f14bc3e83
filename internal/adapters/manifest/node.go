package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vlr/internal/adapters/fs"
	"go.trai.ch/vlr/internal/adapters/logger"
	"go.trai.ch/vlr/internal/core/domain"
	"go.trai.ch/vlr/internal/core/ports"
)

const (
	// ParserNodeID is the unique identifier for the manifest parser Graft node.
	ParserNodeID graft.ID = "adapter.manifest.parser"
	// GeneratorNodeID is the unique identifier for the manifest generator Graft node.
	GeneratorNodeID graft.ID = "adapter.manifest.generator"
)

func init() {
	graft.Register(graft.Node[ports.ManifestParser]{
		ID:        ParserNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestParser, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewParser(log), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestGenerator]{
		ID:        GeneratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestGenerator, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewGenerator(walker, fs.NewStreamHasher(domain.DefaultChunkSize), log, domain.DefaultManifestName), nil
		},
	})
}
