// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/vlr/internal/adapters/config"
	_ "go.trai.ch/vlr/internal/adapters/eventchannel"
	_ "go.trai.ch/vlr/internal/adapters/fs"
	_ "go.trai.ch/vlr/internal/adapters/logger"
	_ "go.trai.ch/vlr/internal/adapters/manifest"
	_ "go.trai.ch/vlr/internal/adapters/process"
	_ "go.trai.ch/vlr/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/vlr/internal/app"
)
