package ports

import "go.trai.ch/fred/internal/core/domain"

// ConfigLoader defines the interface for loading host settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings from the given working directory.
	// A missing settings file yields the defaults.
	Load(cwd string) (*domain.Settings, error)
}
