package app

import (
	"go.trai.ch/trim/internal/core/ports"
)

// Components contains the initialized application components.
// This struct provides controlled access to components needed by the CLI
// layer; the telemetry handle is exposed so the process can close the
// recording session on exit.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}
