package ports

import "go.trai.ch/vlr/internal/core/domain"

// ConfigLoader defines the interface for loading the process configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load builds the configuration from defaults, the config file and the environment.
	// An empty path searches the default locations.
	Load(path string) (*domain.Config, error)
}
