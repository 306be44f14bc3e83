package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/vlr/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
}

// NewApp resolves the dependency graph and returns the configured Components.
// The adapters must be registered, typically by importing internal/wiring.
func NewApp(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	if err != nil {
		return nil, err
	}
	return components, nil
}
