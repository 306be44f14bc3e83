package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vlr/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node for the directory walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// VerifierNodeID is the Graft node for the size resolver.
	VerifierNodeID graft.ID = "adapter.fs.verifier"
	// FingerprinterNodeID is the Graft node for the manifest fingerprinter.
	FingerprinterNodeID graft.ID = "adapter.fs.fingerprinter"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.SizeResolver]{
		ID:        VerifierNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SizeResolver, error) {
			return NewVerifier(), nil
		},
	})

	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
