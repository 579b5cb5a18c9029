// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fred/internal/adapters/config"
	_ "go.trai.ch/fred/internal/adapters/fs"
	_ "go.trai.ch/fred/internal/adapters/logger"
	_ "go.trai.ch/fred/internal/adapters/shell"
	_ "go.trai.ch/fred/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/fred/internal/app"
	_ "go.trai.ch/fred/internal/engine/scheduler"
)
