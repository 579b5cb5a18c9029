package app

import (
	"go.trai.ch/fred/internal/adapters/fs" //nolint:depguard // Wired in app layer
	"go.trai.ch/fred/internal/core/domain"
	"go.trai.ch/fred/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings *domain.Settings
	Runner   ports.ProcessRunner
	Hasher   ports.ContentHasher
	Walker   *fs.Walker
	Resolver *fs.Resolver
}
