// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/trim/internal/adapters/config"
	_ "go.trai.ch/trim/internal/adapters/detector"
	_ "go.trai.ch/trim/internal/adapters/logger"
	_ "go.trai.ch/trim/internal/adapters/state"
	_ "go.trai.ch/trim/internal/adapters/taskgraph"
	_ "go.trai.ch/trim/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/trim/internal/app"
)
