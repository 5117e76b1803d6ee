package ports

import "go.trai.ch/trim/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace manifest.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the manifest at the given path and returns the workspace.
	Load(path string) (*domain.Workspace, error)
}
